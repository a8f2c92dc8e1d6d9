package wallet

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDerivationPath(t *testing.T) {
	tests := []struct {
		input  string
		output DerivationPath
		err    error
	}{
		// Plain absolute derivation paths
		{"m/44'/501'/0'/0'", DerivationPath{HardenedKeyStart + 44, HardenedKeyStart + 501, HardenedKeyStart, HardenedKeyStart}, nil},
		{"m/44'/501'/128'/0'", DerivationPath{HardenedKeyStart + 44, HardenedKeyStart + 501, HardenedKeyStart + 128, HardenedKeyStart}, nil},

		// Hexadecimal absolute derivation paths
		{"m/0x2c'/0x1f5'/0x00'/0x00'", DerivationPath{HardenedKeyStart + 44, HardenedKeyStart + 501, HardenedKeyStart, HardenedKeyStart}, nil},

		// Relative derivation paths
		{"44'/501'/0'/0'", DerivationPath{HardenedKeyStart + 44, HardenedKeyStart + 501, HardenedKeyStart, HardenedKeyStart}, nil},
		{"0'/0'", DerivationPath{HardenedKeyStart, HardenedKeyStart}, nil},

		// Invalid derivation paths
		{"", nil, ErrNullDerivationPath},
		{"m", nil, ErrMalformedDerivationPath},
		{"m/", nil, ErrMalformedDerivationPath},
		{"/44'/501'/0'/0'", nil, ErrMalformedDerivationPath},
		{"0'", nil, ErrMalformedDerivationPath},

		// Softened levels are rejected for this curve
		{"m/44'/501'/0'/0", nil, ErrNotHardenedDerivationPath},
		{"m/44/501/0/0", nil, ErrNotHardenedDerivationPath},
	}
	for _, tt := range tests {
		path, err := ParseDerivationPath(tt.input)
		if tt.err != nil {
			assert.Equal(t, tt.err, err)
		} else {
			require.NoError(t, err)
		}
		assert.Equal(t, tt.output, path)
	}
}

func TestParseDerivationPathOutOfRange(t *testing.T) {
	_, err := ParseDerivationPath("m/44'/501'/2147483648'/0'")
	assert.Error(t, err)
	_, err = ParseDerivationPath("m/44'/501'/-1'/0'")
	assert.Error(t, err)
}

func TestDerivationPathString(t *testing.T) {
	path, err := AccountDerivationPath(7)
	require.NoError(t, err)
	assert.Equal(t, "m/44'/501'/7'/0'", path.String())

	parsed, err := ParseDerivationPath(path.String())
	require.NoError(t, err)
	assert.Equal(t, path, parsed)
}

func TestAccountDerivationPathOutOfRange(t *testing.T) {
	_, err := AccountDerivationPath(MaxHardenedValue + 1)
	assert.Equal(t, ErrOutOfRangeDerivationPathAccount, err)
}
