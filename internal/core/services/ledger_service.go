package services

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/SscSPs/atm_simulator/internal/core/domain"
	portssvc "github.com/SscSPs/atm_simulator/internal/core/ports/services"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ledgerService owns the single account and serializes every access to it.
type ledgerService struct {
	BaseService
	mu      sync.Mutex
	account *domain.Account
}

// LedgerOption is a functional option for configuring the ledger service
type LedgerOption func(*ledgerService)

// WithLedgerLogger sets the logger used when the context carries none
func WithLedgerLogger(logger *slog.Logger) LedgerOption {
	return func(s *ledgerService) {
		s.logger = logger
	}
}

// NewLedgerService opens the account with openingBalance.
// It fails with apperrors.ErrInvalidAmount if the balance is negative or has sub-cent digits.
func NewLedgerService(openingBalance decimal.Decimal, options ...LedgerOption) (portssvc.LedgerSvcFacade, error) {
	svc := &ledgerService{}
	for _, option := range options {
		option(svc)
	}

	account, err := domain.NewAccount(uuid.NewString(), openingBalance, time.Now())
	if err != nil {
		return nil, fmt.Errorf("failed to open account: %w", err)
	}
	svc.account = account

	svc.LogInfo(context.Background(), "Account opened",
		slog.String("account_id", account.AccountID),
		slog.String("balance", account.Balance.StringFixed(domain.MoneyPrecision)),
		slog.Time("opened_at", account.OpenedAt))
	return svc, nil
}

// Ensure ledgerService implements the LedgerSvcFacade interface
var _ portssvc.LedgerSvcFacade = (*ledgerService)(nil)

func (s *ledgerService) GetBalance(ctx context.Context) decimal.Decimal {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.account.Balance
}

func (s *ledgerService) Deposit(ctx context.Context, amount decimal.Decimal) (decimal.Decimal, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.account.Credit(amount); err != nil {
		s.LogWarn(ctx, err, "Deposit rejected",
			slog.String("account_id", s.account.AccountID),
			slog.String("amount", domain.AmountString(amount)))
		return s.account.Balance, err
	}

	s.LogInfo(ctx, "Deposit applied",
		slog.String("account_id", s.account.AccountID),
		slog.String("amount", domain.AmountString(amount)),
		slog.String("balance", s.account.Balance.StringFixed(domain.MoneyPrecision)))
	return s.account.Balance, nil
}

func (s *ledgerService) Withdraw(ctx context.Context, amount decimal.Decimal) (decimal.Decimal, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.account.Debit(amount); err != nil {
		s.LogWarn(ctx, err, "Withdrawal rejected",
			slog.String("account_id", s.account.AccountID),
			slog.String("amount", domain.AmountString(amount)))
		return s.account.Balance, err
	}

	s.LogInfo(ctx, "Withdrawal applied",
		slog.String("account_id", s.account.AccountID),
		slog.String("amount", domain.AmountString(amount)),
		slog.String("balance", s.account.Balance.StringFixed(domain.MoneyPrecision)))
	return s.account.Balance, nil
}
