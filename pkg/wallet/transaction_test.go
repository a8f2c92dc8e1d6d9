package wallet

import (
	"crypto/ed25519"
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testKeyPair(t *testing.T, account uint32) *KeyPair {
	t.Helper()
	w, err := NewWalletFromMnemonic(NewWalletFromMnemonicOpts{
		Mnemonic: testMnemonic,
	})
	require.NoError(t, err)
	keyPair, err := w.DeriveSigningKeyPair(DeriveSigningKeyPairOpts{Account: account})
	require.NoError(t, err)
	return keyPair
}

// A recent blockhash is any 32-byte value in base58; reuse a public key.
func testBlockhash(t *testing.T) string {
	return testKeyPair(t, 40).Address()
}

func TestNewTransferTransactionWireFormat(t *testing.T) {
	sender := testKeyPair(t, 0)
	recipient := testKeyPair(t, 1)
	blockhash := testBlockhash(t)
	lamports := uint64(1_500_000)

	tx, err := NewTransferTransaction(NewTransferTransactionOpts{
		FromAddress:     sender.Address(),
		ToAddress:       recipient.Address(),
		Lamports:        lamports,
		RecentBlockhash: blockhash,
	})
	require.NoError(t, err)

	msg := tx.Message.Serialize()

	// header
	assert.Equal(t, byte(1), msg[0])
	assert.Equal(t, byte(0), msg[1])
	assert.Equal(t, byte(1), msg[2])

	// account keys: sender, recipient, system program
	assert.Equal(t, byte(3), msg[3])
	assert.Equal(t, []byte(sender.PublicKey), msg[4:36])
	assert.Equal(t, []byte(recipient.PublicKey), msg[36:68])
	assert.Equal(t, SystemProgramID[:], msg[68:100])

	// recent blockhash
	expectedHash, err := decodeBlockhash(blockhash)
	require.NoError(t, err)
	assert.Equal(t, expectedHash[:], msg[100:132])

	// single instruction: program index 2, accounts [0, 1], 12 bytes of data
	assert.Equal(t, byte(1), msg[132])
	assert.Equal(t, byte(2), msg[133])
	assert.Equal(t, byte(2), msg[134])
	assert.Equal(t, []byte{0, 1}, msg[135:137])
	assert.Equal(t, byte(12), msg[137])

	data := msg[138:150]
	assert.Equal(t, systemTransferIndex, binary.LittleEndian.Uint32(data[:4]))
	assert.Equal(t, lamports, binary.LittleEndian.Uint64(data[4:]))
	assert.Equal(t, 150, len(msg))
}

func TestSignAndSerializeTransaction(t *testing.T) {
	sender := testKeyPair(t, 0)
	recipient := testKeyPair(t, 1)

	tx, err := NewTransferTransaction(NewTransferTransactionOpts{
		FromAddress:     sender.Address(),
		ToAddress:       recipient.Address(),
		Lamports:        25_000,
		RecentBlockhash: testBlockhash(t),
	})
	require.NoError(t, err)

	// unsigned transactions cannot be serialized
	_, err = tx.Serialize()
	assert.Equal(t, ErrMissingSignature, err)

	err = SignTransaction(SignTransactionOpts{Tx: tx, SecretKey: sender.SecretKey})
	require.NoError(t, err)

	raw, err := tx.Serialize()
	require.NoError(t, err)

	// signature count, signature, then the message
	assert.Equal(t, byte(1), raw[0])
	sig := raw[1:65]
	msg := raw[65:]
	assert.Equal(t, tx.Message.Serialize(), msg)
	assert.True(t, ed25519.Verify(sender.PublicKey, msg, sig))
}

func TestSignTransactionWithForeignKey(t *testing.T) {
	sender := testKeyPair(t, 0)
	recipient := testKeyPair(t, 1)
	intruder := testKeyPair(t, 2)

	tx, err := NewTransferTransaction(NewTransferTransactionOpts{
		FromAddress:     sender.Address(),
		ToAddress:       recipient.Address(),
		Lamports:        25_000,
		RecentBlockhash: testBlockhash(t),
	})
	require.NoError(t, err)

	err = SignTransaction(SignTransactionOpts{Tx: tx, SecretKey: intruder.SecretKey})
	assert.Equal(t, ErrUnknownSigner, err)

	// a truncated key is malformed, not merely the wrong signer
	err = SignTransaction(SignTransactionOpts{Tx: tx, SecretKey: sender.SecretKey[:32]})
	assert.Equal(t, ErrInvalidSecretKey, err)
}

func TestNewTransferTransactionToSelf(t *testing.T) {
	sender := testKeyPair(t, 0)

	tx, err := NewTransferTransaction(NewTransferTransactionOpts{
		FromAddress:     sender.Address(),
		ToAddress:       sender.Address(),
		Lamports:        25_000,
		RecentBlockhash: testBlockhash(t),
	})
	require.NoError(t, err)

	// the sender entry is deduped, instruction references it twice
	assert.Equal(t, 2, len(tx.Message.AccountKeys))
	assert.Equal(t, []uint8{0, 0}, tx.Message.Instructions[0].Accounts)
	assert.Equal(t, uint8(1), tx.Message.Instructions[0].ProgramIDIndex)
}

func TestFailingNewTransferTransaction(t *testing.T) {
	sender := testKeyPair(t, 0)
	recipient := testKeyPair(t, 1)
	blockhash := testBlockhash(t)

	tests := []struct {
		name string
		opts NewTransferTransactionOpts
		err  error
	}{
		{
			"invalid sender",
			NewTransferTransactionOpts{
				FromAddress:     "tooshort",
				ToAddress:       recipient.Address(),
				Lamports:        1,
				RecentBlockhash: blockhash,
			},
			ErrInvalidAddress,
		},
		{
			"invalid recipient",
			NewTransferTransactionOpts{
				FromAddress:     sender.Address(),
				ToAddress:       "not an address at all",
				Lamports:        1,
				RecentBlockhash: blockhash,
			},
			ErrInvalidAddress,
		},
		{
			"zero amount",
			NewTransferTransactionOpts{
				FromAddress:     sender.Address(),
				ToAddress:       recipient.Address(),
				Lamports:        0,
				RecentBlockhash: blockhash,
			},
			ErrZeroTransferAmount,
		},
		{
			"null blockhash",
			NewTransferTransactionOpts{
				FromAddress:     sender.Address(),
				ToAddress:       recipient.Address(),
				Lamports:        1,
				RecentBlockhash: "",
			},
			ErrNullRecentBlockhash,
		},
		{
			"invalid blockhash",
			NewTransferTransactionOpts{
				FromAddress:     sender.Address(),
				ToAddress:       recipient.Address(),
				Lamports:        1,
				RecentBlockhash: "tooshort",
			},
			ErrInvalidRecentBlockhash,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewTransferTransaction(tt.opts)
			assert.Equal(t, tt.err, err)
		})
	}
}

func TestEncodeCompactU16(t *testing.T) {
	tests := []struct {
		input  int
		output []byte
	}{
		{0, []byte{0x00}},
		{1, []byte{0x01}},
		{127, []byte{0x7f}},
		{128, []byte{0x80, 0x01}},
		{16383, []byte{0xff, 0x7f}},
		{16384, []byte{0x80, 0x80, 0x01}},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.output, encodeCompactU16(tt.input))
	}
}
