package domain

import (
	"time"

	"github.com/SscSPs/atm_simulator/internal/apperrors"
	"github.com/shopspring/decimal"
)

// Account is the single bank account served by the ATM.
// Balance is never negative; Credit and Debit are the only mutators.
type Account struct {
	AccountID string
	Balance   decimal.Decimal
	OpenedAt  time.Time
}

// NewAccount opens an account with the given balance.
func NewAccount(accountID string, openingBalance decimal.Decimal, openedAt time.Time) (*Account, error) {
	if err := ValidateOpeningBalance(openingBalance); err != nil {
		return nil, err
	}
	return &Account{
		AccountID: accountID,
		Balance:   openingBalance,
		OpenedAt:  openedAt,
	}, nil
}

// Credit adds amount to the balance.
func (a *Account) Credit(amount decimal.Decimal) error {
	if err := ValidateAmount(amount); err != nil {
		return err
	}
	a.Balance = a.Balance.Add(amount)
	return nil
}

// Debit removes amount from the balance. It fails with *apperrors.InsufficientFundsError
// when amount exceeds the balance; the balance is left untouched on any error.
func (a *Account) Debit(amount decimal.Decimal) error {
	if err := ValidateAmount(amount); err != nil {
		return err
	}
	if amount.GreaterThan(a.Balance) {
		return &apperrors.InsufficientFundsError{Balance: a.Balance, Requested: amount}
	}
	a.Balance = a.Balance.Sub(amount)
	return nil
}
