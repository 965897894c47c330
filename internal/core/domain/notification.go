package domain

import "github.com/shopspring/decimal"

// Operation names an ATM operation.
type Operation string

const (
	OperationCheckBalance Operation = "check_balance"
	OperationDeposit      Operation = "deposit"
	OperationWithdraw     Operation = "withdraw"
)

// NotificationKind classifies the outcome of an operation.
type NotificationKind string

const (
	BalanceReported     NotificationKind = "BALANCE_REPORTED"
	DepositSucceeded    NotificationKind = "DEPOSIT_SUCCEEDED"
	WithdrawalSucceeded NotificationKind = "WITHDRAWAL_SUCCEEDED"
	InvalidAmount       NotificationKind = "INVALID_AMOUNT"
	InsufficientFunds   NotificationKind = "INSUFFICIENT_FUNDS"
)

// Notification describes the outcome of one ATM operation.
// It carries data only; presentation decides how to render it.
type Notification struct {
	Operation Operation        `json:"operation"`
	Kind      NotificationKind `json:"kind"`
	Amount    decimal.Decimal  `json:"amount"`  // requested amount, zero for balance checks
	Balance   decimal.Decimal  `json:"balance"` // balance after the operation
}

// Succeeded reports whether the notification announces a successful operation.
func (n Notification) Succeeded() bool {
	switch n.Kind {
	case BalanceReported, DepositSucceeded, WithdrawalSucceeded:
		return true
	default:
		return false
	}
}
