package services_test

import (
	"bytes"
	"context"
	"log/slog"
	"math/rand"
	"sync"
	"testing"
	"time"

	"github.com/SscSPs/atm_simulator/internal/apperrors"
	portssvc "github.com/SscSPs/atm_simulator/internal/core/ports/services"
	"github.com/SscSPs/atm_simulator/internal/core/services"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))
}

type LedgerServiceTestSuite struct {
	suite.Suite
	ctx    context.Context
	ledger portssvc.LedgerSvcFacade
}

func (suite *LedgerServiceTestSuite) SetupTest() {
	suite.ctx = context.Background()
	ledger, err := services.NewLedgerService(dec("1000.00"), services.WithLedgerLogger(discardLogger()))
	suite.Require().NoError(err)
	suite.ledger = ledger
}

func (suite *LedgerServiceTestSuite) requireBalance(want string) {
	got := suite.ledger.GetBalance(suite.ctx)
	suite.Require().True(got.Equal(dec(want)), "balance %s, want %s", got.StringFixed(2), want)
}

func (suite *LedgerServiceTestSuite) TestNewLedgerService_RejectsInvalidOpeningBalance() {
	_, err := services.NewLedgerService(dec("-1.00"), services.WithLedgerLogger(discardLogger()))
	suite.ErrorIs(err, apperrors.ErrInvalidAmount)

	_, err = services.NewLedgerService(dec("1.001"), services.WithLedgerLogger(discardLogger()))
	suite.ErrorIs(err, apperrors.ErrInvalidAmount)
}

// Scenario: 1000.00 -> deposit 500.00 -> 1500.00
func (suite *LedgerServiceTestSuite) TestDeposit_Success() {
	balance, err := suite.ledger.Deposit(suite.ctx, dec("500.00"))

	suite.Require().NoError(err)
	suite.True(balance.Equal(dec("1500.00")))
	suite.requireBalance("1500.00")
}

// Scenario: 1500.00 -> withdraw 2000.00 -> InsufficientFunds, 1500.00
func (suite *LedgerServiceTestSuite) TestWithdraw_InsufficientFunds() {
	_, err := suite.ledger.Deposit(suite.ctx, dec("500.00"))
	suite.Require().NoError(err)

	balance, err := suite.ledger.Withdraw(suite.ctx, dec("2000.00"))

	suite.ErrorIs(err, apperrors.ErrInsufficientFunds)
	var insufficient *apperrors.InsufficientFundsError
	suite.Require().ErrorAs(err, &insufficient)
	suite.True(insufficient.Balance.Equal(dec("1500.00")))
	suite.True(balance.Equal(dec("1500.00")))
	suite.requireBalance("1500.00")
}

// Scenario: 1500.00 -> withdraw -5.00 -> InvalidAmount, unchanged
func (suite *LedgerServiceTestSuite) TestWithdraw_NegativeAmount() {
	_, err := suite.ledger.Deposit(suite.ctx, dec("500.00"))
	suite.Require().NoError(err)

	_, err = suite.ledger.Withdraw(suite.ctx, dec("-5.00"))

	suite.ErrorIs(err, apperrors.ErrInvalidAmount)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.requireBalance("1500.00")
}

// Scenario: 1500.00 -> withdraw 1500.00 -> 0.00, then check balance reports 0.00
func (suite *LedgerServiceTestSuite) TestWithdraw_WholeBalance() {
	_, err := suite.ledger.Deposit(suite.ctx, dec("500.00"))
	suite.Require().NoError(err)

	balance, err := suite.ledger.Withdraw(suite.ctx, dec("1500.00"))

	suite.Require().NoError(err)
	suite.True(balance.IsZero())
	suite.requireBalance("0.00")
	suite.requireBalance("0.00")
}

func (suite *LedgerServiceTestSuite) TestRejectionIdempotence() {
	for _, amount := range []string{"0", "-0.01", "-5.00", "-1000000"} {
		_, err := suite.ledger.Deposit(suite.ctx, dec(amount))
		suite.ErrorIs(err, apperrors.ErrInvalidAmount, "deposit %s", amount)
		_, err = suite.ledger.Withdraw(suite.ctx, dec(amount))
		suite.ErrorIs(err, apperrors.ErrInvalidAmount, "withdraw %s", amount)
		suite.requireBalance("1000.00")
	}
}

func (suite *LedgerServiceTestSuite) TestSubCentAmountsRejected() {
	_, err := suite.ledger.Deposit(suite.ctx, dec("0.005"))
	suite.ErrorIs(err, apperrors.ErrInvalidAmount)
	_, err = suite.ledger.Withdraw(suite.ctx, dec("10.999"))
	suite.ErrorIs(err, apperrors.ErrInvalidAmount)
	suite.requireBalance("1000.00")
}

func (suite *LedgerServiceTestSuite) TestExtremeExponentsRejectedWithoutBlocking() {
	start := time.Now()

	_, err := suite.ledger.Deposit(suite.ctx, decimal.New(1, 10000000))
	suite.ErrorIs(err, apperrors.ErrInvalidAmount)
	_, err = suite.ledger.Deposit(suite.ctx, decimal.New(1, -10000000))
	suite.ErrorIs(err, apperrors.ErrInvalidAmount)
	_, err = suite.ledger.Withdraw(suite.ctx, decimal.New(1, 10000000))
	suite.ErrorIs(err, apperrors.ErrInvalidAmount)

	suite.Less(time.Since(start), time.Second)
	suite.requireBalance("1000.00")
}

func (suite *LedgerServiceTestSuite) TestAmountAboveMaximumRejected() {
	_, err := suite.ledger.Deposit(suite.ctx, dec("1000000000000.01"))
	suite.ErrorIs(err, apperrors.ErrInvalidAmount)
	suite.requireBalance("1000.00")
}

func (suite *LedgerServiceTestSuite) TestNoFloatingPointDrift() {
	for i := 0; i < 1000; i++ {
		_, err := suite.ledger.Deposit(suite.ctx, dec("0.10"))
		suite.Require().NoError(err)
	}
	suite.requireBalance("1100.00")
}

// Random operation sequences keep the balance non-negative and move it by exactly the amount.
func (suite *LedgerServiceTestSuite) TestRandomSequencesHoldInvariants() {
	rng := rand.New(rand.NewSource(42))

	for i := 0; i < 2000; i++ {
		before := suite.ledger.GetBalance(suite.ctx)
		// cents in [-5000, 200000)
		amount := decimal.New(rng.Int63n(205000)-5000, -2)

		var (
			after decimal.Decimal
			err   error
		)
		deposit := rng.Intn(2) == 0
		if deposit {
			after, err = suite.ledger.Deposit(suite.ctx, amount)
		} else {
			after, err = suite.ledger.Withdraw(suite.ctx, amount)
		}

		suite.Require().False(suite.ledger.GetBalance(suite.ctx).IsNegative(), "balance went negative")

		switch {
		case amount.Sign() <= 0:
			suite.Require().ErrorIs(err, apperrors.ErrInvalidAmount)
			suite.Require().True(after.Equal(before))
		case deposit:
			suite.Require().NoError(err)
			suite.Require().True(after.Equal(before.Add(amount)))
		case amount.GreaterThan(before):
			suite.Require().ErrorIs(err, apperrors.ErrInsufficientFunds)
			suite.Require().True(after.Equal(before))
		default:
			suite.Require().NoError(err)
			suite.Require().True(after.Equal(before.Sub(amount)))
		}
	}
}

func (suite *LedgerServiceTestSuite) TestConcurrentAccessIsSerialized() {
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			_, _ = suite.ledger.Deposit(suite.ctx, dec("10.00"))
		}()
		go func() {
			defer wg.Done()
			_, _ = suite.ledger.Withdraw(suite.ctx, dec("10.00"))
		}()
	}
	wg.Wait()

	// Every withdrawal can succeed because the opening balance covers all of them.
	suite.requireBalance("1000.00")
}

func TestLedgerServiceTestSuite(t *testing.T) {
	suite.Run(t, new(LedgerServiceTestSuite))
}
