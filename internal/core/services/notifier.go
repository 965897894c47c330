package services

import (
	"context"
	"log/slog"

	"github.com/SscSPs/atm_simulator/internal/core/domain"
	portssvc "github.com/SscSPs/atm_simulator/internal/core/ports/services"
	"github.com/SscSPs/atm_simulator/internal/middleware"
)

// logNotifier writes notifications as structured log records.
type logNotifier struct {
	logger *slog.Logger
}

// NewLogNotifier returns a notifier that logs through the request-scoped logger,
// falling back to logger (or slog.Default() when nil).
func NewLogNotifier(logger *slog.Logger) portssvc.Notifier {
	return &logNotifier{logger: logger}
}

func (l *logNotifier) Notify(ctx context.Context, n domain.Notification) {
	logger := middleware.GetLoggerFromCtx(ctx)
	if logger == slog.Default() && l.logger != nil {
		logger = l.logger
	}

	level := slog.LevelInfo
	if !n.Succeeded() {
		level = slog.LevelWarn
	}
	logger.Log(ctx, level, "ATM notification",
		slog.String("operation", string(n.Operation)),
		slog.String("kind", string(n.Kind)),
		slog.String("amount", domain.AmountString(n.Amount)),
		slog.String("balance", n.Balance.StringFixed(domain.MoneyPrecision)))
}
