// Package units converts human-facing decimal quantities into the integer
// base-unit representation the on-chain order book expects, and back.
//
// Rounding rule: every decimal-to-integer conversion rounds half away from
// zero (0.5 -> 1, 1.5 -> 2). The rule is fixed here, in one place, because
// tie handling is financially observable; tests pin it explicitly.
//
// The inverse conversions render at DisplayPrecision fractional digits and
// reparse, so they are lossy beyond that precision by contract.
package units

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/deepbookgo/deepbook-client-go/config"
)

// DisplayPrecision is the number of fractional digits used when rendering
// integer units back to a decimal.
const DisplayPrecision = 9

var (
	// ErrNegativeAmount reports a negative input where only non-negative
	// quantities are representable on chain.
	ErrNegativeAmount = errors.New("amount must not be negative")

	// ErrOverflow reports a scaled value that does not fit the contract's
	// unsigned 64-bit integer width.
	ErrOverflow = errors.New("scaled amount overflows uint64")
)

// ToUnits scales a decimal amount by the asset's scalar and rounds half
// away from zero. Overflow of uint64 is an error, never a truncation.
func ToUnits(amount decimal.Decimal, scalar uint64) (uint64, error) {
	if amount.IsNegative() {
		return 0, fmt.Errorf("%w: %s", ErrNegativeAmount, amount)
	}
	scaled := amount.Mul(decimal.NewFromUint64(scalar)).Round(0)
	bi := scaled.BigInt()
	if !bi.IsUint64() {
		return 0, fmt.Errorf("%w: %s * %d", ErrOverflow, amount, scalar)
	}
	return bi.Uint64(), nil
}

// ToDecimal renders integer units as a decimal amount at DisplayPrecision.
func ToDecimal(unitsValue, scalar uint64) decimal.Decimal {
	q := decimal.NewFromUint64(unitsValue).Div(decimal.NewFromUint64(scalar))
	return decimal.RequireFromString(q.StringFixed(DisplayPrecision))
}

// InputPrice converts a human price into the book's integer representation:
//
//	round(price * FloatScalar * quoteScalar / baseScalar)
//
// The term order is part of the contract: both multiplications happen
// before the single division, so no precision is shed early. Reordering
// changes rounding results at the margins.
func InputPrice(price decimal.Decimal, baseScalar, quoteScalar uint64) (uint64, error) {
	if price.IsNegative() {
		return 0, fmt.Errorf("%w: %s", ErrNegativeAmount, price)
	}
	scaled := price.
		Mul(decimal.NewFromUint64(config.FloatScalar)).
		Mul(decimal.NewFromUint64(quoteScalar)).
		Div(decimal.NewFromUint64(baseScalar)).
		Round(0)
	bi := scaled.BigInt()
	if !bi.IsUint64() {
		return 0, fmt.Errorf("%w: price %s", ErrOverflow, price)
	}
	return bi.Uint64(), nil
}

// PriceToDecimal is the inverse of InputPrice, rendered at
// DisplayPrecision. Used to read mid prices back out of the book.
func PriceToDecimal(inputPrice uint64, baseScalar, quoteScalar uint64) decimal.Decimal {
	q := decimal.NewFromUint64(inputPrice).
		Mul(decimal.NewFromUint64(baseScalar)).
		Div(decimal.NewFromUint64(config.FloatScalar)).
		Div(decimal.NewFromUint64(quoteScalar))
	return decimal.RequireFromString(q.StringFixed(DisplayPrecision))
}
