// Package lamports converts between the ledger's base unit and its
// human-readable coin denomination without ever going through floats.
package lamports

import (
	"errors"
	"math/big"

	"github.com/shopspring/decimal"
)

const (
	// LamportsPerCoin is the number of base units making up one whole coin.
	LamportsPerCoin = 1_000_000_000
	// Precision is the number of decimal places of the coin denomination.
	Precision = 9
)

var (
	// ErrInvalidAmount ...
	ErrInvalidAmount = errors.New("amount must be a positive number")
	// ErrTooManyDecimals ...
	ErrTooManyDecimals = errors.New("amount has more decimal places than the coin precision")
	// ErrAmountTooBig ...
	ErrAmountTooBig = errors.New("amount exceeds the maximum representable value")
)

var lamportsPerCoin = decimal.New(LamportsPerCoin, 0)

// FromCoin converts a coin-denominated amount into base units. Amounts more
// precise than a single base unit are rejected rather than rounded.
func FromCoin(amount decimal.Decimal) (uint64, error) {
	if amount.Sign() <= 0 {
		return 0, ErrInvalidAmount
	}
	scaled := amount.Mul(lamportsPerCoin)
	if !scaled.Equal(scaled.Truncate(0)) {
		return 0, ErrTooManyDecimals
	}
	if !scaled.BigInt().IsUint64() {
		return 0, ErrAmountTooBig
	}
	return scaled.BigInt().Uint64(), nil
}

// ParseCoin parses a coin-denominated decimal string into base units.
func ParseCoin(amount string) (uint64, error) {
	parsed, err := decimal.NewFromString(amount)
	if err != nil {
		return 0, ErrInvalidAmount
	}
	return FromCoin(parsed)
}

// ToCoin converts an amount of base units into the coin denomination.
func ToCoin(amount uint64) decimal.Decimal {
	return decimal.NewFromBigInt(new(big.Int).SetUint64(amount), 0).
		Div(lamportsPerCoin)
}
