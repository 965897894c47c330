package services

import (
	"context"
	"errors"
	"log/slog"

	"github.com/SscSPs/atm_simulator/internal/apperrors"
	"github.com/SscSPs/atm_simulator/internal/core/domain"
	portssvc "github.com/SscSPs/atm_simulator/internal/core/ports/services"
	"github.com/shopspring/decimal"
)

// atmService implements the ATMSvcFacade interface on top of a ledger
type atmService struct {
	BaseService
	ledger   portssvc.LedgerSvcFacade
	notifier portssvc.Notifier
}

// ATMOption is a functional option for configuring the ATM service
type ATMOption func(*atmService)

// WithNotifier replaces the default log notifier
func WithNotifier(notifier portssvc.Notifier) ATMOption {
	return func(s *atmService) {
		s.notifier = notifier
	}
}

// WithATMLogger sets the logger used when the context carries none
func WithATMLogger(logger *slog.Logger) ATMOption {
	return func(s *atmService) {
		s.logger = logger
	}
}

// NewATMService creates the operation facade over ledger
func NewATMService(ledger portssvc.LedgerSvcFacade, options ...ATMOption) portssvc.ATMSvcFacade {
	svc := &atmService{ledger: ledger}
	for _, option := range options {
		option(svc)
	}
	if svc.notifier == nil {
		svc.notifier = NewLogNotifier(svc.logger)
	}
	return svc
}

// Ensure atmService implements the ATMSvcFacade interface
var _ portssvc.ATMSvcFacade = (*atmService)(nil)

func (s *atmService) CheckBalance(ctx context.Context) domain.Notification {
	n := domain.Notification{
		Operation: domain.OperationCheckBalance,
		Kind:      domain.BalanceReported,
		Amount:    decimal.Zero,
		Balance:   s.ledger.GetBalance(ctx),
	}
	s.LogDebug(ctx, "Balance checked", slog.String("balance", n.Balance.StringFixed(domain.MoneyPrecision)))
	s.notifier.Notify(ctx, n)
	return n
}

func (s *atmService) GetBalance(ctx context.Context) decimal.Decimal {
	return s.ledger.GetBalance(ctx)
}

func (s *atmService) Deposit(ctx context.Context, amount decimal.Decimal) (domain.Notification, error) {
	balance, err := s.ledger.Deposit(ctx, amount)
	if err != nil {
		return s.reportFailure(ctx, domain.OperationDeposit, amount, balance, err)
	}

	n := domain.Notification{
		Operation: domain.OperationDeposit,
		Kind:      domain.DepositSucceeded,
		Amount:    amount,
		Balance:   balance,
	}
	s.notifier.Notify(ctx, n)
	return n, nil
}

func (s *atmService) Withdraw(ctx context.Context, amount decimal.Decimal) (domain.Notification, error) {
	// The ledger only returns nil after it changed the balance, so a nil error
	// is the "balance differs from before" observation.
	balance, err := s.ledger.Withdraw(ctx, amount)
	if err != nil {
		return s.reportFailure(ctx, domain.OperationWithdraw, amount, balance, err)
	}

	n := domain.Notification{
		Operation: domain.OperationWithdraw,
		Kind:      domain.WithdrawalSucceeded,
		Amount:    amount,
		Balance:   balance,
	}
	s.notifier.Notify(ctx, n)
	return n, nil
}

// reportFailure emits exactly one failure notification for a ledger error and returns
// the error unchanged. Errors the ledger is not expected to produce emit nothing.
func (s *atmService) reportFailure(ctx context.Context, op domain.Operation, amount, balance decimal.Decimal, err error) (domain.Notification, error) {
	n := domain.Notification{Operation: op, Amount: amount, Balance: balance}

	var insufficient *apperrors.InsufficientFundsError
	switch {
	case errors.As(err, &insufficient):
		n.Kind = domain.InsufficientFunds
		n.Balance = insufficient.Balance
	case errors.Is(err, apperrors.ErrInvalidAmount):
		n.Kind = domain.InvalidAmount
	default:
		s.LogError(ctx, err, "Unexpected ledger error", slog.String("operation", string(op)))
		return domain.Notification{}, err
	}

	s.notifier.Notify(ctx, n)
	return n, err
}
