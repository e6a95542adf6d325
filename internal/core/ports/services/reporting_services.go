package services

import (
	"context"

	"github.com/SscSPs/pos_multi_currency/internal/core/domain"
	"github.com/SscSPs/pos_multi_currency/internal/dto"
)

// ReportingSvcFacade defines the display-oriented rollups over committed
// payment lines and session aggregates.
type ReportingSvcFacade interface {
	// SummarizeForeignPayments groups an order's foreign payment lines by
	// currency into display-ready receipt rows.
	SummarizeForeignPayments(order *domain.Order) []dto.ForeignPaymentSummaryRow

	// ActiveRates lists the deduplicated foreign currencies in use on an
	// order's payment lines with the rate each is trading at.
	ActiveRates(order *domain.Order) []domain.ActiveRate

	// OrderForeignStats rolls up an order's foreign-currency usage.
	OrderForeignStats(order *domain.Order) dto.OrderForeignStatsResponse

	// SessionStatistics fetches and enriches the per-currency rollup for a
	// session. Fetch failures degrade to an empty response, never an error.
	SessionStatistics(ctx context.Context, sessionID int64) dto.SessionStatisticsResponse
}
