package dto

import (
	"github.com/SscSPs/pos_multi_currency/internal/core/domain"
)

// CreateCurrencyRequest defines the data needed to register a new currency.
type CreateCurrencyRequest struct {
	CurrencyID int64   `json:"currencyID" binding:"required,gt=0"`
	Name       string  `json:"name" binding:"required"`
	Symbol     string  `json:"symbol"`
	Rounding   float64 `json:"rounding" binding:"gte=0"`
	Rate       float64 `json:"rate" binding:"gte=0"`
}

// CurrencyResponse defines the data returned for a registry currency.
type CurrencyResponse struct {
	CurrencyID    int64   `json:"currencyID"`
	Name          string  `json:"name"`
	Symbol        string  `json:"symbol"`
	Rounding      float64 `json:"rounding"`
	DecimalPlaces int     `json:"decimalPlaces"`
	Rate          float64 `json:"rate"`
}

// ToCurrencyResponse converts a domain.Currency to CurrencyResponse DTO
func ToCurrencyResponse(curr *domain.Currency) CurrencyResponse {
	return CurrencyResponse{
		CurrencyID:    curr.CurrencyID,
		Name:          curr.Name,
		Symbol:        curr.Symbol,
		Rounding:      curr.Rounding,
		DecimalPlaces: curr.DecimalPlaces(),
		Rate:          curr.Rate,
	}
}

// ToListCurrencyResponse converts a slice of domain.Currency to a slice of CurrencyResponse DTOs
func ToListCurrencyResponse(currencies []domain.Currency) []CurrencyResponse {
	res := make([]CurrencyResponse, len(currencies))
	for i := range currencies {
		res[i] = ToCurrencyResponse(&currencies[i])
	}
	return res
}
