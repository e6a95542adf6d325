package mapping

import (
	"github.com/SscSPs/pos_multi_currency/internal/core/domain"
	"github.com/SscSPs/pos_multi_currency/internal/models"
	"github.com/shopspring/decimal"
)

// ToModelCurrency converts a domain Currency to a model Currency
func ToModelCurrency(d domain.Currency) models.Currency {
	return models.Currency{
		CurrencyID: d.CurrencyID,
		Name:       d.Name,
		Symbol:     d.Symbol,
		Rounding:   decimal.NewFromFloat(d.Rounding),
		Rate:       decimal.NewFromFloat(d.Rate),
		Active:     d.Active,
	}
}

// ToDomainCurrency converts a model Currency to a domain Currency
func ToDomainCurrency(m models.Currency) domain.Currency {
	return domain.Currency{
		CurrencyID: m.CurrencyID,
		Name:       m.Name,
		Symbol:     m.Symbol,
		Rounding:   m.Rounding.InexactFloat64(),
		Rate:       m.Rate.InexactFloat64(),
		Active:     m.Active,
	}
}

// ToDomainCurrencySlice converts a slice of model Currencies to a slice of domain Currencies
func ToDomainCurrencySlice(ms []models.Currency) []domain.Currency {
	ds := make([]domain.Currency, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainCurrency(m)
	}
	return ds
}
