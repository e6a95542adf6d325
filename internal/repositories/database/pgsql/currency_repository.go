package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/SscSPs/pos_multi_currency/internal/apperrors"
	"github.com/SscSPs/pos_multi_currency/internal/core/domain"
	portsrepo "github.com/SscSPs/pos_multi_currency/internal/core/ports/repositories"
	"github.com/SscSPs/pos_multi_currency/internal/models"
	"github.com/SscSPs/pos_multi_currency/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxCurrencyRepository struct {
	BaseRepository
}

// newPgxCurrencyRepository creates a new repository for currency registry data.
func newPgxCurrencyRepository(pool *pgxpool.Pool) portsrepo.CurrencyRepositoryFacade {
	return &PgxCurrencyRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure implementation matches interface
var _ portsrepo.CurrencyRepositoryFacade = (*PgxCurrencyRepository)(nil)

// SaveCurrency inserts or updates a currency (primarily for initial setup
// and rate-snapshot upkeep).
func (r *PgxCurrencyRepository) SaveCurrency(ctx context.Context, currency domain.Currency) error {
	modelCurr := mapping.ToModelCurrency(currency)

	query := `
		INSERT INTO currencies (currency_id, name, symbol, rounding, rate, active)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (currency_id) DO UPDATE SET
			name = EXCLUDED.name,
			symbol = EXCLUDED.symbol,
			rounding = EXCLUDED.rounding,
			rate = EXCLUDED.rate,
			active = EXCLUDED.active;
	`

	_, err := r.Pool.Exec(ctx, query,
		modelCurr.CurrencyID,
		modelCurr.Name,
		modelCurr.Symbol,
		modelCurr.Rounding,
		modelCurr.Rate,
		modelCurr.Active,
	)

	if err != nil {
		return fmt.Errorf("failed to save currency %d: %w", modelCurr.CurrencyID, err)
	}
	return nil
}

// FindCurrencyByID retrieves a currency by its id.
func (r *PgxCurrencyRepository) FindCurrencyByID(ctx context.Context, currencyID int64) (*domain.Currency, error) {
	query := `
		SELECT currency_id, name, symbol, rounding, rate, active
		FROM currencies
		WHERE currency_id = $1;
	`
	var modelCurr models.Currency
	err := r.Pool.QueryRow(ctx, query, currencyID).Scan(
		&modelCurr.CurrencyID,
		&modelCurr.Name,
		&modelCurr.Symbol,
		&modelCurr.Rounding,
		&modelCurr.Rate,
		&modelCurr.Active,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find currency by id %d: %w", currencyID, err)
	}

	domainCurr := mapping.ToDomainCurrency(modelCurr)
	return &domainCurr, nil
}

// ListCurrencies retrieves all active currencies.
func (r *PgxCurrencyRepository) ListCurrencies(ctx context.Context) ([]domain.Currency, error) {
	query := `
		SELECT currency_id, name, symbol, rounding, rate, active
		FROM currencies
		WHERE active
		ORDER BY name;
	`
	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query currencies: %w", err)
	}
	defer rows.Close()

	modelCurrencies, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.Currency, error) {
		var currency models.Currency
		err := row.Scan(
			&currency.CurrencyID,
			&currency.Name,
			&currency.Symbol,
			&currency.Rounding,
			&currency.Rate,
			&currency.Active,
		)
		return currency, err
	})

	if err != nil {
		return nil, fmt.Errorf("failed to scan currencies: %w", err)
	}

	return mapping.ToDomainCurrencySlice(modelCurrencies), nil
}
