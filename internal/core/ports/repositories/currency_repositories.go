package repositories

import (
	"context"

	"github.com/SscSPs/pos_multi_currency/internal/core/domain"
)

// CurrencyReader defines read operations against the currency registry.
type CurrencyReader interface {
	// FindCurrencyByID resolves a currency id to its registry record.
	FindCurrencyByID(ctx context.Context, currencyID int64) (*domain.Currency, error)

	// ListCurrencies retrieves all active currencies.
	ListCurrencies(ctx context.Context) ([]domain.Currency, error)
}

// CurrencyWriter defines write operations for the registry, primarily for
// initial setup and rate-snapshot upkeep.
type CurrencyWriter interface {
	// SaveCurrency inserts or updates a registry record.
	SaveCurrency(ctx context.Context, currency domain.Currency) error
}

// CurrencyRepositoryFacade combines all currency registry interfaces.
type CurrencyRepositoryFacade interface {
	CurrencyReader
	CurrencyWriter
}
