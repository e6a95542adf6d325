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

type PgxConfigRepository struct {
	BaseRepository
}

// newPgxConfigRepository creates a new repository for POS configuration data.
func newPgxConfigRepository(pool *pgxpool.Pool) portsrepo.MultiCurrencyConfigRepository {
	return &PgxConfigRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure implementation matches interface
var _ portsrepo.MultiCurrencyConfigRepository = (*PgxConfigRepository)(nil)

// FetchConfig loads the multi-currency settings, the allowed currencies and
// the base currency for one POS configuration.
func (r *PgxConfigRepository) FetchConfig(ctx context.Context, configID int64) (*domain.MultiCurrencyConfig, error) {
	query := `
		SELECT config_id, name, multi_currency_enabled, allow_rate_edit, can_edit_rate, base_currency_id
		FROM pos_config
		WHERE config_id = $1;
	`
	var modelCfg models.PosConfig
	err := r.Pool.QueryRow(ctx, query, configID).Scan(
		&modelCfg.ConfigID,
		&modelCfg.Name,
		&modelCfg.MultiCurrencyEnabled,
		&modelCfg.AllowRateEdit,
		&modelCfg.CanEditRate,
		&modelCfg.BaseCurrencyID,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("%w: failed to fetch pos config %d: %v", apperrors.ErrUnavailable, configID, err)
	}

	currencies, err := r.fetchConfigCurrencies(ctx, configID)
	if err != nil {
		return nil, err
	}

	config := &domain.MultiCurrencyConfig{
		Enabled:       modelCfg.MultiCurrencyEnabled,
		AllowRateEdit: modelCfg.AllowRateEdit,
		CanEditRate:   modelCfg.CanEditRate,
		Currencies:    currencies,
	}

	// The base currency is usually part of the allowed set; fall back to a
	// direct registry lookup when it is not.
	for i := range currencies {
		if currencies[i].CurrencyID == modelCfg.BaseCurrencyID {
			config.BaseCurrency = &currencies[i]
			break
		}
	}
	if config.BaseCurrency == nil && modelCfg.BaseCurrencyID > 0 {
		base, err := r.fetchCurrency(ctx, modelCfg.BaseCurrencyID)
		if err != nil {
			return nil, err
		}
		config.BaseCurrency = base
	}

	return config, nil
}

// fetchConfigCurrencies lists the currencies selectable for payment under
// this configuration.
func (r *PgxConfigRepository) fetchConfigCurrencies(ctx context.Context, configID int64) ([]domain.Currency, error) {
	query := `
		SELECT c.currency_id, c.name, c.symbol, c.rounding, c.rate, c.active
		FROM currencies c
		JOIN pos_config_currencies pcc ON pcc.currency_id = c.currency_id
		WHERE pcc.config_id = $1 AND c.active
		ORDER BY c.name;
	`
	rows, err := r.Pool.Query(ctx, query, configID)
	if err != nil {
		return nil, fmt.Errorf("failed to query config currencies for %d: %w", configID, err)
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
		return nil, fmt.Errorf("failed to scan config currencies: %w", err)
	}

	return mapping.ToDomainCurrencySlice(modelCurrencies), nil
}

func (r *PgxConfigRepository) fetchCurrency(ctx context.Context, currencyID int64) (*domain.Currency, error) {
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
		return nil, fmt.Errorf("failed to fetch base currency %d: %w", currencyID, err)
	}

	domainCurr := mapping.ToDomainCurrency(modelCurr)
	return &domainCurr, nil
}
