package utils

import (
	"fmt"
	"strings"

	"github.com/SscSPs/atm_simulator/internal/apperrors"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

// maxAmountTextLen bounds the digits accepted from users.
const maxAmountTextLen = 32

// plainDecimalTag allows an optional sign, digits and an optional fraction.
// Exponents, separators and bare dots fail "numeric".
var plainDecimalTag = fmt.Sprintf("numeric,max=%d", maxAmountTextLen)

var amountValidate = validator.New()

// ParseAmount turns user-entered text into a decimal amount.
// Surrounding whitespace and a leading currency symbol are ignored. Malformed or overlong
// input fails with an error wrapping apperrors.ErrParse; sign and precision are left to the ledger.
func ParseAmount(text string, currency string) (decimal.Decimal, error) {
	trimmed := strings.TrimSpace(text)
	if currency != "" {
		trimmed = strings.TrimSpace(strings.TrimPrefix(trimmed, currency))
	}
	if trimmed == "" {
		return decimal.Zero, fmt.Errorf("%w: empty input", apperrors.ErrParse)
	}
	if len(trimmed) > maxAmountTextLen {
		return decimal.Zero, fmt.Errorf("%w: longer than %d characters", apperrors.ErrParse, maxAmountTextLen)
	}
	if err := amountValidate.Var(trimmed, plainDecimalTag); err != nil {
		return decimal.Zero, fmt.Errorf("%w: %q", apperrors.ErrParse, trimmed)
	}

	amount, err := decimal.NewFromString(trimmed)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: %q", apperrors.ErrParse, trimmed)
	}
	return amount, nil
}
