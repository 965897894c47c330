package services

import (
	"context"

	"github.com/shopspring/decimal"
)

// LedgerReaderSvc defines read operations on the account balance
type LedgerReaderSvc interface {
	// GetBalance returns the current balance. It has no side effects.
	GetBalance(ctx context.Context) decimal.Decimal
}

// LedgerWriterSvc defines validated balance mutations
type LedgerWriterSvc interface {
	// Deposit adds amount and returns the new balance.
	// A zero, negative or sub-cent amount fails with apperrors.ErrInvalidAmount.
	Deposit(ctx context.Context, amount decimal.Decimal) (decimal.Decimal, error)

	// Withdraw removes amount and returns the new balance.
	// An amount above the balance fails with *apperrors.InsufficientFundsError.
	Withdraw(ctx context.Context, amount decimal.Decimal) (decimal.Decimal, error)
}

// LedgerSvcFacade combines the ledger read and write operations
type LedgerSvcFacade interface {
	LedgerReaderSvc
	LedgerWriterSvc
}
