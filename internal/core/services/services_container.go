package services

import (
	"log/slog"

	portssvc "github.com/SscSPs/atm_simulator/internal/core/ports/services"
	"github.com/SscSPs/atm_simulator/internal/platform/config"
)

// NewServiceContainer opens the account from cfg and wires the ledger and ATM facade.
// Extra ATM options (typically WithNotifier) are applied after the defaults.
func NewServiceContainer(cfg *config.Config, logger *slog.Logger, atmOptions ...ATMOption) (*portssvc.ServiceContainer, error) {
	ledger, err := NewLedgerService(cfg.InitialBalance, WithLedgerLogger(logger))
	if err != nil {
		return nil, err
	}

	options := append([]ATMOption{WithATMLogger(logger)}, atmOptions...)

	return &portssvc.ServiceContainer{
		Ledger: ledger,
		ATM:    NewATMService(ledger, options...),
	}, nil
}
