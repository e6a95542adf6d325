package pgsql

import (
	"context"
	"fmt"

	"github.com/SscSPs/pos_multi_currency/internal/apperrors"
	"github.com/SscSPs/pos_multi_currency/internal/core/domain"
	portsrepo "github.com/SscSPs/pos_multi_currency/internal/core/ports/repositories"
	"github.com/SscSPs/pos_multi_currency/internal/models"
	"github.com/SscSPs/pos_multi_currency/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxStatisticsRepository struct {
	BaseRepository
}

// newPgxStatisticsRepository creates a new repository for session payment statistics.
func newPgxStatisticsRepository(pool *pgxpool.Pool) portsrepo.StatisticsRepository {
	return &PgxStatisticsRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure implementation matches interface
var _ portsrepo.StatisticsRepository = (*PgxStatisticsRepository)(nil)

// GetSessionCurrencyStats aggregates a session's payments per currency. An
// unknown session simply produces zero rows.
func (r *PgxStatisticsRepository) GetSessionCurrencyStats(ctx context.Context, configID, sessionID int64) ([]domain.CurrencyStats, error) {
	query := `
		SELECT
			p.currency_id,
			c.name,
			SUM(p.payment_currency_amount) AS total_amount,
			SUM(p.amount) AS total_base_amount,
			COUNT(*) AS transaction_count,
			COUNT(*) FILTER (WHERE p.rate_manually_edited) AS manually_edited_count
		FROM pos_payments p
		JOIN currencies c ON c.currency_id = p.currency_id
		WHERE p.config_id = $1 AND p.session_id = $2
		GROUP BY p.currency_id, c.name
		ORDER BY c.name;
	`
	rows, err := r.Pool.Query(ctx, query, configID, sessionID)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to query session statistics for session %d: %v", apperrors.ErrUnavailable, sessionID, err)
	}
	defer rows.Close()

	modelStats, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.CurrencyStats, error) {
		var stats models.CurrencyStats
		err := row.Scan(
			&stats.CurrencyID,
			&stats.CurrencyName,
			&stats.TotalAmount,
			&stats.TotalBaseAmount,
			&stats.TransactionCount,
			&stats.ManuallyEditedCount,
		)
		return stats, err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan session statistics: %w", err)
	}

	return mapping.ToDomainCurrencyStatsSlice(modelStats), nil
}
