package domain

import (
	"fmt"

	"github.com/SscSPs/atm_simulator/internal/apperrors"
	"github.com/shopspring/decimal"
)

// MoneyPrecision is the number of minor-unit digits an amount may carry.
const MoneyPrecision = 2

// Amounts whose exponent falls outside this window are rejected before any
// arithmetic, since rescaling them costs time proportional to the exponent.
const (
	minAmountExponent = -18
	maxAmountExponent = 18
)

// MaxAmount is the largest amount accepted for one operation or as the opening balance.
var MaxAmount = decimal.New(1, 12)

// ValidateAmount checks an operation amount: strictly positive, at most MaxAmount
// and no sub-cent digits. Sub-cent amounts are rejected rather than rounded.
func ValidateAmount(amount decimal.Decimal) error {
	if amount.Sign() <= 0 {
		return fmt.Errorf("%w: got %s", apperrors.ErrInvalidAmount, AmountString(amount))
	}
	return validateMagnitude(amount, "amount")
}

// ValidateOpeningBalance is ValidateAmount that also admits zero.
func ValidateOpeningBalance(balance decimal.Decimal) error {
	if balance.IsNegative() {
		return fmt.Errorf("%w: opening balance %s is negative", apperrors.ErrInvalidAmount, AmountString(balance))
	}
	if balance.IsZero() {
		return nil
	}
	return validateMagnitude(balance, "opening balance")
}

// validateMagnitude expects a positive amount.
func validateMagnitude(amount decimal.Decimal, what string) error {
	if amount.Exponent() < minAmountExponent {
		return fmt.Errorf("%w: %s has more than %d decimal places", apperrors.ErrInvalidAmount, what, MoneyPrecision)
	}
	if ExceedsMaxAmount(amount) {
		return fmt.Errorf("%w: %s exceeds %s", apperrors.ErrInvalidAmount, what, MaxAmount.StringFixed(MoneyPrecision))
	}
	if !amount.Equal(amount.Truncate(MoneyPrecision)) {
		return fmt.Errorf("%w: %s %s has more than %d decimal places", apperrors.ErrInvalidAmount, what, amount.String(), MoneyPrecision)
	}
	return nil
}

// ExceedsMaxAmount reports whether amount is greater than MaxAmount.
// Amounts with an exponent below the accepted window report false.
func ExceedsMaxAmount(amount decimal.Decimal) bool {
	switch exp := amount.Exponent(); {
	case exp > maxAmountExponent:
		return amount.Sign() > 0
	case exp < minAmountExponent:
		return false
	default:
		return amount.GreaterThan(MaxAmount)
	}
}

// AmountString formats amount for logs and responses without expanding
// exponents outside the accepted window.
func AmountString(amount decimal.Decimal) string {
	if exp := amount.Exponent(); exp < minAmountExponent || exp > maxAmountExponent {
		return "out of range"
	}
	return amount.String()
}
