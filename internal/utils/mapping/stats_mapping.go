package mapping

import (
	"github.com/SscSPs/pos_multi_currency/internal/core/domain"
	"github.com/SscSPs/pos_multi_currency/internal/models"
)

// ToDomainCurrencyStats converts a model CurrencyStats to a domain CurrencyStats
func ToDomainCurrencyStats(m models.CurrencyStats) domain.CurrencyStats {
	return domain.CurrencyStats{
		CurrencyID:          m.CurrencyID,
		CurrencyName:        m.CurrencyName,
		TotalAmount:         m.TotalAmount.InexactFloat64(),
		TotalBaseAmount:     m.TotalBaseAmount.InexactFloat64(),
		TransactionCount:    m.TransactionCount,
		ManuallyEditedCount: m.ManuallyEditedCount,
	}
}

// ToDomainCurrencyStatsSlice converts a slice of model CurrencyStats to domain CurrencyStats
func ToDomainCurrencyStatsSlice(ms []models.CurrencyStats) []domain.CurrencyStats {
	ds := make([]domain.CurrencyStats, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainCurrencyStats(m)
	}
	return ds
}
