package wallet

import (
	"fmt"
	"math/big"
	"strings"
)

// DerivationPath is the internal representation of a hierarchical
// deterministic wallet account
type DerivationPath []uint32

const (
	// Bip44Purpose is the purpose level of BIP44 derivation paths
	Bip44Purpose = 44
	// CoinTypeSolana is the registered coin type of the target ledger
	CoinTypeSolana = 501
	// ExternalChain is the change level of all derived accounts
	ExternalChain = 0
)

// AccountDerivationPath returns the absolute derivation path
// m/44'/501'/account'/0' of the account identified by the given index. It is
// the only path shape the wallet ever derives, with the account index as its
// single variable level.
func AccountDerivationPath(account uint32) (DerivationPath, error) {
	if account > MaxHardenedValue {
		return nil, ErrOutOfRangeDerivationPathAccount
	}
	return DerivationPath{
		HardenedKeyStart + Bip44Purpose,
		HardenedKeyStart + CoinTypeSolana,
		HardenedKeyStart + account,
		HardenedKeyStart + ExternalChain,
	}, nil
}

// ParseDerivationPath converts a derivation path string to the
// internal binary representation. Every level must be hardened since the
// signing curve does not support public parent derivation.
func ParseDerivationPath(strPath string) (DerivationPath, error) {
	var path DerivationPath

	elems := strings.Split(strPath, "/")
	switch {
	case strPath == "":
		return nil, ErrNullDerivationPath

	case containsEmptyString(elems):
		return nil, ErrMalformedDerivationPath
	case len(elems) < 2:
		return nil, ErrMalformedDerivationPath

	case len(elems) > 1:
		if strings.TrimSpace(elems[0]) == "m" {
			elems = elems[1:]
		}

	default:
		return nil, ErrInvalidDerivationPath
	}

	for _, elem := range elems {
		elem = strings.TrimSpace(elem)

		if !strings.HasSuffix(elem, "'") {
			return nil, ErrNotHardenedDerivationPath
		}
		elem = strings.TrimSpace(strings.TrimSuffix(elem, "'"))

		// use big int for conversion
		bigval, ok := new(big.Int).SetString(elem, 0)
		if !ok {
			return nil, fmt.Errorf("invalid elem '%s' in path", elem)
		}

		if bigval.Sign() < 0 || bigval.Cmp(big.NewInt(int64(MaxHardenedValue))) > 0 {
			return nil, fmt.Errorf(
				"elem %v must be in hardened range [0, %d]", bigval, MaxHardenedValue,
			)
		}

		path = append(path, HardenedKeyStart+uint32(bigval.Uint64()))
	}

	return path, nil
}

// String converts a binary derivation path to its canonical representation
func (path DerivationPath) String() string {
	if len(path) <= 0 {
		return ""
	}

	result := "m"
	for _, component := range path {
		var hardened bool
		if component >= HardenedKeyStart {
			component -= HardenedKeyStart
			hardened = true
		}
		result = fmt.Sprintf("%s/%d", result, component)
		if hardened {
			result += "'"
		}
	}
	return result
}

func containsEmptyString(composedPath []string) bool {
	for _, s := range composedPath {
		if s == "" {
			return true
		}
	}
	return false
}
