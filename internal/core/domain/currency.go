package domain

// Currency describes how amounts are displayed.
type Currency struct {
	CurrencyCode string // e.g., "USD"
	Symbol       string // e.g., "$"
	Precision    int    // digits after the decimal point
}

// DefaultCurrency is the currency used when none is configured.
var DefaultCurrency = Currency{
	CurrencyCode: "USD",
	Symbol:       "$",
	Precision:    MoneyPrecision,
}
