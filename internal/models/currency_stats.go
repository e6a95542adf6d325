package models

import "github.com/shopspring/decimal"

// CurrencyStats represents one aggregated row of the session statistics
// query: all payments of one currency within one session.
type CurrencyStats struct {
	CurrencyID          int64           `json:"currencyID"`
	CurrencyName        string          `json:"currencyName"`
	TotalAmount         decimal.Decimal `json:"totalAmount"`     // in the payment currency
	TotalBaseAmount     decimal.Decimal `json:"totalBaseAmount"` // in the base currency
	TransactionCount    int64           `json:"transactionCount"`
	ManuallyEditedCount int64           `json:"manuallyEditedCount"`
}
