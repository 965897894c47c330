package apperrors

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrInvalidAmount indicates a zero, negative or sub-cent amount.
// It wraps ErrValidation so callers can treat it as a generic validation failure.
var ErrInvalidAmount = fmt.Errorf("%w: amount must be a positive value with at most two decimal places", ErrValidation)

// ErrInsufficientFunds indicates a withdrawal larger than the current balance.
var ErrInsufficientFunds = errors.New("insufficient funds")

// ErrParse indicates that user-entered text is not a number.
// Only the presentation layer produces it; it never reaches the ledger.
var ErrParse = errors.New("please enter a valid amount")

// InsufficientFundsError carries the balance that a withdrawal was rejected against.
type InsufficientFundsError struct {
	Balance   decimal.Decimal
	Requested decimal.Decimal
}

func (e *InsufficientFundsError) Error() string {
	return fmt.Sprintf("%s: requested %s, current balance %s",
		ErrInsufficientFunds.Error(), e.Requested.StringFixed(2), e.Balance.StringFixed(2))
}

// Unwrap lets errors.Is(err, ErrInsufficientFunds) match.
func (e *InsufficientFundsError) Unwrap() error {
	return ErrInsufficientFunds
}
