package console_test

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/SscSPs/atm_simulator/internal/console"
	"github.com/SscSPs/atm_simulator/internal/core/domain"
	"github.com/SscSPs/atm_simulator/internal/core/services"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var usd = domain.DefaultCurrency

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// runSession drives a session over the real services with input and returns what was printed.
func runSession(t *testing.T, opening, input string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	lio := console.NewScannerIO(strings.NewReader(input), &out)

	ledger, err := services.NewLedgerService(decimal.RequireFromString(opening), services.WithLedgerLogger(discardLogger()))
	require.NoError(t, err)
	atm := services.NewATMService(ledger,
		services.WithATMLogger(discardLogger()),
		services.WithNotifier(console.NewNotifier(lio, usd)))

	err = console.NewSession(atm, lio, usd, discardLogger()).Run(context.Background())
	return out.String(), err
}

func TestSession_Walkthrough(t *testing.T) {
	input := strings.Join([]string{
		"2 500",
		"withdraw",
		"2000",
		"withdraw -5",
		"deposit abc",
		"deposit 0.005",
		"1",
		"3 $1500.00",
		"balance",
		"exit",
	}, "\n") + "\n"

	out, err := runSession(t, "1000.00", input)
	require.NoError(t, err)

	expected := []string{
		"Current Balance: $1000.00",
		"Deposit successful. New balance: $1500.00",
		"Current Balance: $1500.00",
		"Amount: $",
		"Insufficient funds. Your current balance is $1500.00",
		"Invalid withdrawal amount. Please enter a positive value.",
		"Please enter a valid amount.",
		"Invalid deposit amount. Please use at most 2 decimal places.",
		"Your current balance is $1500.00",
		"Withdrawal successful. New balance: $0.00",
		"Your current balance is $0.00",
		"Current Balance: $0.00",
		"Thank you for using the ATM. Goodbye!",
	}
	last := 0
	for _, want := range expected {
		idx := strings.Index(out[last:], want)
		require.GreaterOrEqual(t, idx, 0, "missing %q after offset %d in:\n%s", want, last, out)
		last += idx + len(want)
	}
	assert.Equal(t, 1, strings.Count(out, "Deposit successful"))
}

func TestSession_EndOfInputReturnsNil(t *testing.T) {
	out, err := runSession(t, "0.00", "")

	assert.NoError(t, err)
	assert.Contains(t, out, "Current Balance: $0.00")
	assert.NotContains(t, out, "Goodbye")
}

func TestSession_MissingAmountAtEndOfInput(t *testing.T) {
	out, err := runSession(t, "10.00", "deposit")

	assert.NoError(t, err)
	assert.Contains(t, out, "Please enter a valid amount.")
	assert.Contains(t, out, "Current Balance: $10.00")
}

func TestSession_UnknownCommandAndHelp(t *testing.T) {
	out, err := runSession(t, "10.00", "transfer\nhelp\nquit\n")

	assert.NoError(t, err)
	assert.Contains(t, out, `Unknown command "transfer"`)
	assert.Equal(t, 2, strings.Count(out, "ATM Simulator"))
	assert.Contains(t, out, "Goodbye!")
}

func TestSession_CommandsAreCaseInsensitive(t *testing.T) {
	out, err := runSession(t, "10.00", "DEPOSIT 5\nExit\n")

	assert.NoError(t, err)
	assert.Contains(t, out, "Deposit successful. New balance: $15.00")
	assert.Contains(t, out, "Goodbye!")
}

func TestSession_ContextCancellation(t *testing.T) {
	ledger, err := services.NewLedgerService(decimal.NewFromInt(1), services.WithLedgerLogger(discardLogger()))
	require.NoError(t, err)
	atm := services.NewATMService(ledger, services.WithATMLogger(discardLogger()))

	// The pipe never delivers a line, so Run can only return through ctx.
	pr, pw := io.Pipe()
	defer pw.Close()
	lio := console.NewScannerIO(pr, io.Discard)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- console.NewSession(atm, lio, usd, discardLogger()).Run(ctx)
	}()
	cancel()

	select {
	case err := <-done:
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(2 * time.Second):
		t.Fatal("session did not stop after cancellation")
	}
}

// countingIO records how many lines the session asked for.
type countingIO struct {
	console.LineIO
	reads atomic.Int32
}

func (c *countingIO) ReadLine() (string, error) {
	c.reads.Add(1)
	return c.LineIO.ReadLine()
}

func TestSession_ReadsOnlyWhatItPromptsFor(t *testing.T) {
	ledger, err := services.NewLedgerService(decimal.NewFromInt(1), services.WithLedgerLogger(discardLogger()))
	require.NoError(t, err)
	atm := services.NewATMService(ledger, services.WithATMLogger(discardLogger()))
	lio := &countingIO{LineIO: console.NewScannerIO(strings.NewReader("1\nexit\nbalance\nbalance\n"), io.Discard)}

	require.NoError(t, console.NewSession(atm, lio, usd, discardLogger()).Run(context.Background()))

	assert.Equal(t, int32(2), lio.reads.Load())
	assert.Never(t, func() bool { return lio.reads.Load() != 2 }, 50*time.Millisecond, 5*time.Millisecond)
}

func TestSession_PendingReadFinishesAfterCancellation(t *testing.T) {
	ledger, err := services.NewLedgerService(decimal.NewFromInt(1), services.WithLedgerLogger(discardLogger()))
	require.NoError(t, err)
	atm := services.NewATMService(ledger, services.WithATMLogger(discardLogger()))

	pr, pw := io.Pipe()
	defer pw.Close()
	lio := &countingIO{LineIO: console.NewScannerIO(pr, io.Discard)}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- console.NewSession(atm, lio, usd, discardLogger()).Run(ctx)
	}()
	require.Eventually(t, func() bool { return lio.reads.Load() == 1 }, 2*time.Second, 5*time.Millisecond)
	cancel()
	require.ErrorIs(t, <-done, context.Canceled)

	// The blocked read consumes one line; no further reads follow.
	_, err = io.WriteString(pw, "balance\n")
	require.NoError(t, err)
	assert.Never(t, func() bool { return lio.reads.Load() != 1 }, 50*time.Millisecond, 5*time.Millisecond)
}

func TestNotifier_RendersOneLine(t *testing.T) {
	var buf bytes.Buffer
	n := console.NewNotifier(&buf, usd)

	n.Notify(context.Background(), domain.Notification{
		Operation: domain.OperationWithdraw,
		Kind:      domain.WithdrawalSucceeded,
		Amount:    decimal.NewFromInt(20),
		Balance:   decimal.NewFromInt(980),
	})

	assert.Equal(t, "Withdrawal successful. New balance: $980.00\n", buf.String())
}
