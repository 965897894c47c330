package dto

import (
	"github.com/SscSPs/atm_simulator/internal/core/domain"
	"github.com/SscSPs/atm_simulator/internal/utils"
)

// AmountRequest is the body of deposit and withdraw requests.
// Amount is a decimal string such as "500.00" so no precision is lost in JSON.
type AmountRequest struct {
	Amount string `json:"amount" binding:"required,money" example:"500.00"`
}

// OperationResponse describes the outcome of an ATM operation.
type OperationResponse struct {
	Operation domain.Operation        `json:"operation" example:"deposit"`
	Kind      domain.NotificationKind `json:"kind" example:"DEPOSIT_SUCCEEDED"`
	Amount    string                  `json:"amount,omitempty" example:"500.00"`
	Balance   string                  `json:"balance" example:"1500.00"`
	Currency  string                  `json:"currency" example:"USD"`
	Message   string                  `json:"message" example:"Deposit successful. New balance: $1500.00"`
}

// ErrorResponse is returned for requests that never reached the ATM.
type ErrorResponse struct {
	Error string `json:"error" example:"Please enter a valid amount."`
}

// ToOperationResponse converts a domain.Notification to OperationResponse DTO
func ToOperationResponse(n domain.Notification, currency domain.Currency) OperationResponse {
	resp := OperationResponse{
		Operation: n.Operation,
		Kind:      n.Kind,
		Balance:   utils.FormatWithCurrencyPrecision(n.Balance, currency),
		Currency:  currency.CurrencyCode,
		Message:   utils.RenderNotification(n, currency),
	}
	if n.Operation != domain.OperationCheckBalance {
		// Echo the amount as received so sub-cent rejections stay visible.
		resp.Amount = domain.AmountString(n.Amount)
	}
	return resp
}
