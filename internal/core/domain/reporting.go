package domain

// CurrencyStats is one per-currency row of the session statistics supplied
// by the external statistics source.
type CurrencyStats struct {
	CurrencyID          int64   `json:"currencyID"`
	CurrencyName        string  `json:"currencyName"`
	TotalAmount         float64 `json:"totalAmount"`     // In the payment currency
	TotalBaseAmount     float64 `json:"totalBaseAmount"` // In the base currency
	TransactionCount    int64   `json:"transactionCount"`
	ManuallyEditedCount int64   `json:"manuallyEditedCount"`
}

// ForeignPaymentGroup accumulates an order's foreign payment lines for a
// single currency. Rate is the last manually-edited rate seen among the
// group's lines when any line was edited, otherwise the first-seen rate.
type ForeignPaymentGroup struct {
	Currency       *Currency `json:"currency"`
	Total          float64   `json:"total"` // In the group currency
	Rate           float64   `json:"rate"`
	ManuallyEdited bool      `json:"manuallyEdited"`
}

// ActiveRate is one deduplicated foreign currency currently in use on an
// order's payment lines, for the rate-info display bar.
type ActiveRate struct {
	CurrencyID     int64   `json:"currencyID"`
	CurrencyName   string  `json:"currencyName"`
	Rate           float64 `json:"rate"`
	ManuallyEdited bool    `json:"manuallyEdited"`
}
