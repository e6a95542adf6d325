package pgsql

import (
	portsrepo "github.com/SscSPs/pos_multi_currency/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		CurrencyRepo:   newPgxCurrencyRepository(dbPool),
		ConfigRepo:     newPgxConfigRepository(dbPool),
		RateRepo:       newPgxRateRepository(dbPool),
		StatisticsRepo: newPgxStatisticsRepository(dbPool),
	}
}
