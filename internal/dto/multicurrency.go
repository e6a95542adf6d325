package dto

import (
	"github.com/SscSPs/pos_multi_currency/internal/core/domain"
	"github.com/SscSPs/pos_multi_currency/internal/utils/currencymath"
)

// MultiCurrencyConfigResponse is the session configuration snapshot served
// to the POS frontend on startup.
type MultiCurrencyConfigResponse struct {
	Enabled       bool               `json:"enabled"`
	Active        bool               `json:"active"` // enabled AND session toggle on
	AllowRateEdit bool               `json:"allowRateEdit"`
	CanEditRate   bool               `json:"canEditRate"`
	BaseCurrency  *CurrencyResponse  `json:"baseCurrency,omitempty"`
	Currencies    []CurrencyResponse `json:"currencies"`
}

// RatesResponse is the current rate table with its pivot currency.
type RatesResponse struct {
	Rates          domain.RateTable `json:"rates"`
	BaseCurrencyID int64            `json:"baseCurrencyID"`
}

// ValidateRateRequest asks whether a manually entered rate is acceptable for
// the given payment currency. ManualRate carries no binding constraint; a
// non-positive rate gets an advisory rejection in the response body.
type ValidateRateRequest struct {
	CurrencyID int64   `json:"currencyID" binding:"required,gt=0"`
	ManualRate float64 `json:"manualRate"`
}

// ValidateRateResponse carries the advisory validation outcome.
type ValidateRateResponse struct {
	Valid      bool    `json:"valid"`
	Message    string  `json:"message,omitempty"`
	MarketRate float64 `json:"marketRate"`
}

// ToValidateRateResponse converts a kernel validation to the API shape.
func ToValidateRateResponse(v currencymath.Validation, marketRate float64) ValidateRateResponse {
	return ValidateRateResponse{
		Valid:      v.Valid,
		Message:    v.Message,
		MarketRate: marketRate,
	}
}

// SessionEnabledRequest toggles multi-currency for the running session.
// A pointer distinguishes an explicit false from an absent field.
type SessionEnabledRequest struct {
	Enabled *bool `json:"enabled" binding:"required"`
}
