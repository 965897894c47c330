package utils

import (
	"fmt"

	"github.com/SscSPs/atm_simulator/internal/core/domain"
	"github.com/shopspring/decimal"
)

// Fixed user-facing texts.
const (
	ParseErrorMessage = "Please enter a valid amount."
	GoodbyeMessage    = "Thank you for using the ATM. Goodbye!"
)

// RenderNotification produces the message shown to the user for n.
func RenderNotification(n domain.Notification, currency domain.Currency) string {
	switch n.Kind {
	case domain.BalanceReported:
		return "Your current balance is " + FormatMoney(n.Balance, currency)
	case domain.DepositSucceeded:
		return "Deposit successful. New balance: " + FormatMoney(n.Balance, currency)
	case domain.WithdrawalSucceeded:
		return "Withdrawal successful. New balance: " + FormatMoney(n.Balance, currency)
	case domain.InsufficientFunds:
		return "Insufficient funds. Your current balance is " + FormatMoney(n.Balance, currency)
	case domain.InvalidAmount:
		noun := "deposit"
		if n.Operation == domain.OperationWithdraw {
			noun = "withdrawal"
		}
		if domain.ExceedsMaxAmount(n.Amount) {
			return fmt.Sprintf("Invalid %s amount. The maximum is %s.", noun, FormatMoney(domain.MaxAmount, currency))
		}
		// Otherwise a positive amount can only be rejected for its sub-cent digits.
		if n.Amount.IsPositive() {
			return fmt.Sprintf("Invalid %s amount. Please use at most %d decimal places.", noun, currency.Precision)
		}
		return fmt.Sprintf("Invalid %s amount. Please enter a positive value.", noun)
	default:
		return fmt.Sprintf("Unknown outcome %q", n.Kind)
	}
}

// BalanceLine is the status line redrawn after every operation.
func BalanceLine(balance decimal.Decimal, currency domain.Currency) string {
	return "Current Balance: " + FormatMoney(balance, currency)
}
