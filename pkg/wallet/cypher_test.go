package wallet

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncryptDecrypt(t *testing.T) {
	plaintext := "super secret signing key"
	passphrase := "supersecurekey"

	cyphertext, err := Encrypt(EncryptOpts{
		PlainText:  plaintext,
		Passphrase: passphrase,
	})
	require.NoError(t, err)

	revealedtext, err := Decrypt(DecryptOpts{
		CypherText: cyphertext,
		Passphrase: passphrase,
	})
	require.NoError(t, err)
	assert.Equal(t, plaintext, revealedtext)
}

func TestDecryptWithWrongPassphrase(t *testing.T) {
	cyphertext, err := Encrypt(EncryptOpts{
		PlainText:  "super secret signing key",
		Passphrase: "supersecurekey",
	})
	require.NoError(t, err)

	_, err = Decrypt(DecryptOpts{
		CypherText: cyphertext,
		Passphrase: "nottherightone",
	})
	assert.Equal(t, ErrInvalidPassphrase, err)
}

func TestEncryptIsSalted(t *testing.T) {
	opts := EncryptOpts{
		PlainText:  "super secret signing key",
		Passphrase: "supersecurekey",
	}
	first, err := Encrypt(opts)
	require.NoError(t, err)
	second, err := Encrypt(opts)
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestFailingEncrypt(t *testing.T) {
	tests := []struct {
		opts EncryptOpts
		err  error
	}{
		{
			opts: EncryptOpts{
				PlainText:  "",
				Passphrase: "supersecurekey",
			},
			err: ErrNullPlainText,
		},
		{
			opts: EncryptOpts{
				PlainText:  "super secret signing key",
				Passphrase: "",
			},
			err: ErrNullPassphrase,
		},
	}
	for _, tt := range tests {
		_, err := Encrypt(tt.opts)
		assert.Equal(t, tt.err, err)
	}
}

func TestFailingDecrypt(t *testing.T) {
	tests := []struct {
		opts DecryptOpts
		err  error
	}{
		{
			opts: DecryptOpts{
				CypherText: "",
				Passphrase: "supersecurekey",
			},
			err: ErrNullCypherText,
		},
		{
			opts: DecryptOpts{
				CypherText: "not base64",
				Passphrase: "supersecurekey",
			},
			err: ErrInvalidCypherText,
		},
		{
			opts: DecryptOpts{
				CypherText: "dG9vc2hvcnQ=",
				Passphrase: "supersecurekey",
			},
			err: ErrInvalidCypherText,
		},
	}
	for _, tt := range tests {
		_, err := Decrypt(tt.opts)
		assert.Equal(t, tt.err, err)
	}
}
