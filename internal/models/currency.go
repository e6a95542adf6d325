package models

import "github.com/shopspring/decimal"

// Currency represents a row of the currencies registry table. Rounding and
// Rate are NUMERIC columns and scan into decimals; conversion to float64
// happens at the mapping layer.
type Currency struct {
	CurrencyID int64           `json:"currencyID"` // Primary Key
	Name       string          `json:"name"`       // e.g., "US Dollar"
	Symbol     string          `json:"symbol"`     // e.g., "$"
	Rounding   decimal.Decimal `json:"rounding"`   // smallest representable step, e.g. 0.01
	Rate       decimal.Decimal `json:"rate"`       // last-known rate against the base currency
	Active     bool            `json:"active"`
}
