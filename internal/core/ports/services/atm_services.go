package services

import (
	"context"

	"github.com/SscSPs/atm_simulator/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ATMSvcFacade is the boundary offered to every presentation layer.
// Each operation emits at most one notification and also returns it.
type ATMSvcFacade interface {
	// CheckBalance reports the current balance. It always succeeds.
	CheckBalance(ctx context.Context) domain.Notification

	// Deposit delegates to the ledger. On failure the returned notification
	// describes the failure and the ledger error is returned unchanged.
	Deposit(ctx context.Context, amount decimal.Decimal) (domain.Notification, error)

	// Withdraw delegates to the ledger. Success is only announced when the balance changed.
	Withdraw(ctx context.Context, amount decimal.Decimal) (domain.Notification, error)

	LedgerReaderSvc
}

// Notifier receives the notifications emitted by the ATM facade.
type Notifier interface {
	Notify(ctx context.Context, n domain.Notification)
}

// NotifierFunc adapts a plain function to the Notifier interface.
type NotifierFunc func(ctx context.Context, n domain.Notification)

// Notify calls f(ctx, n).
func (f NotifierFunc) Notify(ctx context.Context, n domain.Notification) {
	f(ctx, n)
}

// MultiNotifier fans a notification out to several notifiers in order.
type MultiNotifier []Notifier

// Notify forwards n to every non-nil notifier.
func (m MultiNotifier) Notify(ctx context.Context, n domain.Notification) {
	for _, notifier := range m {
		if notifier != nil {
			notifier.Notify(ctx, n)
		}
	}
}
