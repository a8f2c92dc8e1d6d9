package wallet

import (
	"math"

	"github.com/tyler-smith/go-bip39"
)

const (
	// HardenedKeyStart is the index offset marking hardened derivation as
	// defined by BIP32/SLIP-0010.
	HardenedKeyStart = uint32(0x80000000)
	// MaxHardenedValue is the max value for hardened indexes of derivation
	// paths
	MaxHardenedValue = math.MaxUint32 - HardenedKeyStart
)

func generateMnemonic(entropySize int) (string, error) {
	entropy, err := bip39.NewEntropy(entropySize)
	if err != nil {
		return "", err
	}
	return bip39.NewMnemonic(entropy)
}

func generateSeedFromMnemonic(mnemonic, passphrase string) []byte {
	return bip39.NewSeed(mnemonic, passphrase)
}

func isMnemonicValid(mnemonic string) bool {
	return bip39.IsMnemonicValid(mnemonic)
}

func zeroBytes(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
