package repositories

import (
	"context"

	"github.com/SscSPs/pos_multi_currency/internal/core/domain"
)

// MultiCurrencyConfigRepository is the external configuration source: given
// a POS config identifier it yields the multi-currency settings and the
// allowed-currency records for the session.
type MultiCurrencyConfigRepository interface {
	// FetchConfig loads the multi-currency configuration for a POS config.
	FetchConfig(ctx context.Context, configID int64) (*domain.MultiCurrencyConfig, error)
}

// RateRepository is the external rate source: given a POS config identifier
// it yields a fresh snapshot of per-currency rates against the base.
type RateRepository interface {
	// FetchRates retrieves the latest rate snapshot.
	FetchRates(ctx context.Context, configID int64) (*domain.RateSnapshot, error)
}
