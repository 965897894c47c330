package utils

import (
	"github.com/SscSPs/atm_simulator/internal/core/domain"
	"github.com/shopspring/decimal"
)

// FormatWithCurrencyPrecision formats an amount with the correct precision for a given currency
// Example: amount 12.3456 with USD (precision 2) returns "12.35"
// Example: amount 12 with USD (precision 2) returns "12.00"
func FormatWithCurrencyPrecision(amount decimal.Decimal, currency domain.Currency) string {
	return amount.StringFixed(int32(currency.Precision))
}

// FormatMoney prefixes the currency symbol: 1500 with USD returns "$1500.00"
func FormatMoney(amount decimal.Decimal, currency domain.Currency) string {
	return currency.Symbol + FormatWithCurrencyPrecision(amount, currency)
}
