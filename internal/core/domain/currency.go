package domain

import "github.com/SscSPs/pos_multi_currency/internal/utils/currencymath"

// Currency represents a currency known to the POS registry.
type Currency struct {
	CurrencyID int64   `json:"currencyID"` // Primary Key
	Name       string  `json:"name"`       // e.g., "USD"
	Symbol     string  `json:"symbol"`     // e.g., "$"
	Rounding   float64 `json:"rounding"`   // Smallest representable increment, e.g. 0.01
	Rate       float64 `json:"rate"`       // Last-known rate vs base, kept as a local fallback snapshot
	Active     bool    `json:"active"`
}

// DecimalPlaces derives the display precision from the currency rounding.
// Safe on a nil receiver: an unknown currency formats with the default two
// decimal places.
func (c *Currency) DecimalPlaces() int {
	if c == nil {
		return currencymath.DecimalsFromRounding(0)
	}
	return currencymath.DecimalsFromRounding(c.Rounding)
}

// Format renders an amount in this currency: fixed decimals derived from the
// rounding, prefixed with the symbol and a non-breaking space when showSymbol
// is set. A nil currency formats as a bare two-decimal number.
func (c *Currency) Format(amount float64, showSymbol bool) string {
	if c == nil {
		return currencymath.Format(amount, 0, "", false)
	}
	return currencymath.Format(amount, c.Rounding, c.Symbol, showSymbol)
}

// RateTable maps a currency id to the number of units of that currency per
// one unit of the base currency. The base currency's own entry resolves to
// 1.0 whether or not it is stored. Tables are replaced wholesale on refresh,
// never mutated in place, so a reader holding one always sees a consistent
// snapshot.
type RateTable map[int64]float64

// RateFor returns the stored rate for currencyID, 1.0 for the base currency
// and 1.0 for currencies with no entry.
func (t RateTable) RateFor(currencyID, baseCurrencyID int64) float64 {
	if currencyID == baseCurrencyID {
		return 1.0
	}
	if rate, ok := t[currencyID]; ok && rate > 0 {
		return rate
	}
	return 1.0
}

// RateSnapshot is one fetch from the external rate source.
type RateSnapshot struct {
	Rates          RateTable `json:"rates"`
	BaseCurrencyID int64     `json:"baseCurrencyID"`
}

// MultiCurrencyConfig is the configuration loaded once per POS session from
// the external configuration source.
type MultiCurrencyConfig struct {
	Enabled       bool       `json:"enabled"`
	AllowRateEdit bool       `json:"allowRateEdit"`
	CanEditRate   bool       `json:"canEditRate"` // Whether the requesting user passes the rate-edit permission check
	BaseCurrency  *Currency  `json:"baseCurrency"`
	Currencies    []Currency `json:"currencies"` // Allowed currencies, base included
}
