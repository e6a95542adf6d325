package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/SscSPs/pos_multi_currency/internal/apperrors"
	"github.com/SscSPs/pos_multi_currency/internal/core/domain"
	portsrepo "github.com/SscSPs/pos_multi_currency/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

type PgxRateRepository struct {
	BaseRepository
}

// newPgxRateRepository creates a new repository for exchange rate snapshots.
func newPgxRateRepository(pool *pgxpool.Pool) portsrepo.RateRepository {
	return &PgxRateRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure implementation matches interface
var _ portsrepo.RateRepository = (*PgxRateRepository)(nil)

// FetchRates retrieves the latest rate snapshot for a POS configuration.
// Rates are stored as NUMERIC against the configuration's base currency.
func (r *PgxRateRepository) FetchRates(ctx context.Context, configID int64) (*domain.RateSnapshot, error) {
	var baseCurrencyID int64
	err := r.Pool.QueryRow(ctx,
		`SELECT base_currency_id FROM pos_config WHERE config_id = $1;`,
		configID,
	).Scan(&baseCurrencyID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to fetch base currency for config %d: %w", configID, err)
	}

	query := `
		SELECT er.currency_id, er.rate
		FROM exchange_rates er
		JOIN pos_config_currencies pcc
			ON pcc.currency_id = er.currency_id AND pcc.config_id = er.config_id
		WHERE er.config_id = $1;
	`
	rows, err := r.Pool.Query(ctx, query, configID)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to query exchange rates for config %d: %v", apperrors.ErrUnavailable, configID, err)
	}
	defer rows.Close()

	rates := domain.RateTable{}
	for rows.Next() {
		var currencyID int64
		var rate decimal.Decimal
		if err := rows.Scan(&currencyID, &rate); err != nil {
			return nil, fmt.Errorf("failed to scan exchange rate: %w", err)
		}
		rates[currencyID] = rate.InexactFloat64()
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read exchange rates: %w", err)
	}

	return &domain.RateSnapshot{
		Rates:          rates,
		BaseCurrencyID: baseCurrencyID,
	}, nil
}
