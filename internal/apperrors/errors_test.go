package apperrors_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/SscSPs/atm_simulator/internal/apperrors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestErrInvalidAmount_IsValidation(t *testing.T) {
	assert.True(t, errors.Is(apperrors.ErrInvalidAmount, apperrors.ErrValidation))
	assert.False(t, errors.Is(apperrors.ErrInsufficientFunds, apperrors.ErrValidation))
}

func TestInsufficientFundsError(t *testing.T) {
	err := fmt.Errorf("withdraw: %w", &apperrors.InsufficientFundsError{
		Balance:   decimal.RequireFromString("1500"),
		Requested: decimal.RequireFromString("2000"),
	})

	assert.ErrorIs(t, err, apperrors.ErrInsufficientFunds)

	var insufficient *apperrors.InsufficientFundsError
	if assert.ErrorAs(t, err, &insufficient) {
		assert.True(t, insufficient.Balance.Equal(decimal.NewFromInt(1500)))
	}
	assert.Contains(t, err.Error(), "current balance 1500.00")
	assert.Contains(t, err.Error(), "requested 2000.00")
}
