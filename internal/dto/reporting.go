package dto

import (
	"fmt"
	"strconv"

	"github.com/SscSPs/pos_multi_currency/internal/core/domain"
	"github.com/SscSPs/pos_multi_currency/internal/utils/currencymath"
	"github.com/shopspring/decimal"
)

// ForeignPaymentSummaryRow is one receipt row: the order's foreign payments
// for a single currency, with a human-readable rate label.
type ForeignPaymentSummaryRow struct {
	CurrencyID     int64   `json:"currencyID"`
	CurrencyName   string  `json:"currencyName"`
	Total          float64 `json:"total"`
	FormattedTotal string  `json:"formattedTotal"`
	RateLabel      string  `json:"rateLabel"`
	ManuallyEdited bool    `json:"manuallyEdited"`
}

// ToForeignPaymentSummaryRows renders the grouped foreign payments of an
// order. baseCurrency names the left side of the "1 base = X foreign" label.
func ToForeignPaymentSummaryRows(groups []domain.ForeignPaymentGroup, baseCurrency *domain.Currency) []ForeignPaymentSummaryRow {
	baseName := ""
	if baseCurrency != nil {
		baseName = baseCurrency.Name
	}
	rows := make([]ForeignPaymentSummaryRow, len(groups))
	for i, g := range groups {
		rows[i] = ForeignPaymentSummaryRow{
			CurrencyID:     g.Currency.CurrencyID,
			CurrencyName:   g.Currency.Name,
			Total:          g.Total,
			FormattedTotal: g.Currency.Format(g.Total, true),
			RateLabel:      rateLabel(baseName, g.Rate, g.Currency.Name),
			ManuallyEdited: g.ManuallyEdited,
		}
	}
	return rows
}

// SessionCurrencyStatsRow is one per-currency row of the session rollup,
// enriched with formatted totals for display.
type SessionCurrencyStatsRow struct {
	CurrencyID          int64   `json:"currencyID"`
	CurrencyName        string  `json:"currencyName"`
	TotalAmount         float64 `json:"totalAmount"`
	TotalBaseAmount     float64 `json:"totalBaseAmount"`
	TransactionCount    int64   `json:"transactionCount"`
	ManuallyEditedCount int64   `json:"manuallyEditedCount"`
	FormattedTotal      string  `json:"formattedTotal"`
	FormattedBaseTotal  string  `json:"formattedBaseTotal"`
}

// SessionStatisticsResponse is the full session rollup with grand totals.
// An unknown session or a fetch failure yields zero rows and zero totals.
type SessionStatisticsResponse struct {
	SessionID int64                     `json:"sessionID"`
	Rows      []SessionCurrencyStatsRow `json:"rows"`
	Totals    struct {
		TotalBaseAmount     decimal.Decimal `json:"totalBaseAmount"`
		TransactionCount    int64           `json:"transactionCount"`
		ManuallyEditedCount int64           `json:"manuallyEditedCount"`
	} `json:"totals"`
}

// ToSessionStatisticsResponse enriches raw statistics rows with formatted
// amounts and computes grand totals. resolve maps a currency id to its
// registry record; a nil result falls back to plain two-decimal formatting.
func ToSessionStatisticsResponse(
	sessionID int64,
	rows []domain.CurrencyStats,
	resolve func(currencyID int64) *domain.Currency,
	baseCurrency *domain.Currency,
) SessionStatisticsResponse {
	response := SessionStatisticsResponse{
		SessionID: sessionID,
		Rows:      make([]SessionCurrencyStatsRow, len(rows)),
	}

	totalBase := decimal.Zero
	for i, row := range rows {
		currency := resolve(row.CurrencyID)
		response.Rows[i] = SessionCurrencyStatsRow{
			CurrencyID:          row.CurrencyID,
			CurrencyName:        row.CurrencyName,
			TotalAmount:         row.TotalAmount,
			TotalBaseAmount:     row.TotalBaseAmount,
			TransactionCount:    row.TransactionCount,
			ManuallyEditedCount: row.ManuallyEditedCount,
			FormattedTotal:      currency.Format(row.TotalAmount, true),
			FormattedBaseTotal:  baseCurrency.Format(row.TotalBaseAmount, true),
		}

		totalBase = totalBase.Add(decimal.NewFromFloat(row.TotalBaseAmount))
		response.Totals.TransactionCount += row.TransactionCount
		response.Totals.ManuallyEditedCount += row.ManuallyEditedCount
	}

	response.Totals.TotalBaseAmount = totalBase
	return response
}

// OrderForeignStatsResponse mirrors the per-order foreign usage summary.
type OrderForeignStatsResponse struct {
	HasForeignPayments   bool    `json:"hasForeignPayments"`
	ForeignCurrencyCount int     `json:"foreignCurrencyCount"`
	TotalForeignAmount   float64 `json:"totalForeignAmount"`
	ManualRateCount      int     `json:"manualRateCount"`
}

// ToOrderForeignStatsResponse converts the domain rollup to the API shape.
func ToOrderForeignStatsResponse(stats domain.ForeignStats) OrderForeignStatsResponse {
	return OrderForeignStatsResponse{
		HasForeignPayments:   stats.HasForeignPayments,
		ForeignCurrencyCount: stats.ForeignCurrencyCount,
		TotalForeignAmount:   stats.TotalForeignAmount,
		ManualRateCount:      stats.ManualRateCount,
	}
}

func rateLabel(baseName string, rate float64, currencyName string) string {
	formatted := strconv.FormatFloat(currencymath.RoundTo(rate, 4), 'f', 4, 64)
	return fmt.Sprintf("1 %s = %s %s", baseName, formatted, currencyName)
}
