package console

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/SscSPs/atm_simulator/internal/apperrors"
	"github.com/SscSPs/atm_simulator/internal/core/domain"
	portssvc "github.com/SscSPs/atm_simulator/internal/core/ports/services"
	"github.com/SscSPs/atm_simulator/internal/middleware"
	"github.com/SscSPs/atm_simulator/internal/utils"
	"github.com/shopspring/decimal"
)

const (
	commandPrompt = "> "
	menu          = `ATM Simulator
  1) balance            Check balance
  2) deposit [amount]   Deposit money
  3) withdraw [amount]  Withdraw money
  4) exit               Leave the ATM
`
)

// Session is an interactive menu over the ATM. Outcomes of operations are
// printed by the notifier installed on the ATM (see NewNotifier); the session
// itself prints the menu, prompts, parse errors and the balance line.
type Session struct {
	atm      portssvc.ATMSvcFacade
	io       LineIO
	currency domain.Currency
	logger   *slog.Logger

	// Set while Run is active; see startReader.
	requests chan struct{}
	results  chan lineResult
}

// NewSession creates a session reading commands from lio.
func NewSession(atm portssvc.ATMSvcFacade, lio LineIO, currency domain.Currency, logger *slog.Logger) *Session {
	if logger == nil {
		logger = slog.Default()
	}
	return &Session{
		atm:      atm,
		io:       lio,
		currency: currency,
		logger:   logger,
	}
}

type lineResult struct {
	line string
	err  error
}

// Run processes commands until exit, end of input or ctx cancellation.
// Exit and end of input return nil.
func (s *Session) Run(ctx context.Context) error {
	ctx = middleware.WithLogger(ctx, s.logger)
	stopReader := s.startReader()
	defer stopReader()

	s.printf("%s\n", menu)
	s.printBalance(ctx)

	for {
		s.io.SetPrompt(commandPrompt)
		line, err := s.readLine(ctx)
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}

		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}
		arg := strings.Join(fields[1:], " ")

		switch strings.ToLower(fields[0]) {
		case "1", "balance":
			s.atm.CheckBalance(ctx)
		case "2", "deposit":
			if err := s.runAmountCommand(ctx, arg, s.atm.Deposit); err != nil {
				return err
			}
		case "3", "withdraw":
			if err := s.runAmountCommand(ctx, arg, s.atm.Withdraw); err != nil {
				return err
			}
		case "4", "exit", "quit":
			s.printf("%s\n", utils.GoodbyeMessage)
			return nil
		case "help", "?":
			s.printf("%s", menu)
		default:
			s.printf("Unknown command %q. Type help for the menu.\n", fields[0])
		}
		s.printBalance(ctx)
	}
}

type amountOperation func(ctx context.Context, amount decimal.Decimal) (domain.Notification, error)

// runAmountCommand reads the amount (prompting when arg is empty), parses it
// and calls op. It only returns errors that should end the session.
func (s *Session) runAmountCommand(ctx context.Context, arg string, op amountOperation) error {
	text := arg
	if text == "" {
		s.io.SetPrompt("Amount: " + s.currency.Symbol)
		line, err := s.readLine(ctx)
		if errors.Is(err, io.EOF) {
			// Treat a missing amount like an empty one; the next read ends the session.
			line = ""
		} else if err != nil {
			return err
		}
		text = line
	}

	amount, err := utils.ParseAmount(text, s.currency.Symbol)
	if err != nil {
		s.printf("%s\n", utils.ParseErrorMessage)
		return nil
	}

	if _, err := op(ctx, amount); err != nil {
		if errors.Is(err, apperrors.ErrInvalidAmount) || errors.Is(err, apperrors.ErrInsufficientFunds) {
			// Already reported by the notifier.
			return nil
		}
		s.logger.Error("ATM operation failed", slog.String("error", err.Error()))
		s.printf("Operation failed. Please try again.\n")
	}
	return nil
}

// startReader launches the one goroutine that calls ReadLine. It reads only on
// request, so nothing is consumed from the input while no prompt is shown. If Run
// ends while a read is pending, that single read stays blocked until the input
// yields a line or the process exits; the goroutine then returns.
func (s *Session) startReader() (stop func()) {
	s.requests = make(chan struct{})
	s.results = make(chan lineResult, 1)

	requests, results := s.requests, s.results
	go func() {
		for range requests {
			line, err := s.io.ReadLine()
			results <- lineResult{line: line, err: err}
		}
	}()
	return func() { close(requests) }
}

// readLine blocks on the next line but gives up when ctx is done.
func (s *Session) readLine(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	select {
	case s.requests <- struct{}{}:
	case <-ctx.Done():
		return "", ctx.Err()
	}
	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case r := <-s.results:
		return r.line, r.err
	}
}

func (s *Session) printBalance(ctx context.Context) {
	s.printf("%s\n", utils.BalanceLine(s.atm.GetBalance(ctx), s.currency))
}

func (s *Session) printf(format string, args ...any) {
	if _, err := fmt.Fprintf(s.io, format, args...); err != nil {
		s.logger.Warn("Failed to write to console", slog.String("error", err.Error()))
	}
}
