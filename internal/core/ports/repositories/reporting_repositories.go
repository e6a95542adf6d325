package repositories

import (
	"context"

	"github.com/SscSPs/pos_multi_currency/internal/core/domain"
)

// StatisticsRepository is the external statistics source: per-currency
// payment aggregates for one POS session.
type StatisticsRepository interface {
	// GetSessionCurrencyStats retrieves one row per payment currency used in
	// the session. An unknown session yields an empty slice, not an error.
	GetSessionCurrencyStats(ctx context.Context, configID, sessionID int64) ([]domain.CurrencyStats, error)
}
