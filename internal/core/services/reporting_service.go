package services

import (
	"context"
	"log/slog"

	"github.com/SscSPs/pos_multi_currency/internal/core/domain"
	portsrepo "github.com/SscSPs/pos_multi_currency/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/pos_multi_currency/internal/core/ports/services"
	"github.com/SscSPs/pos_multi_currency/internal/dto"
	"github.com/SscSPs/pos_multi_currency/internal/utils/currencymath"
)

// reportingService builds the display rollups: receipt summaries over an
// order's payment lines and per-session statistics from the external
// aggregation source.
type reportingService struct {
	BaseService
	configID      int64
	statsRepo     portsrepo.StatisticsRepository
	currencyRepo  portsrepo.CurrencyReader
	multiCurrency portssvc.MultiCurrencyReaderSvc
}

// NewReportingService creates a new reporting service.
func NewReportingService(
	configID int64,
	statsRepo portsrepo.StatisticsRepository,
	currencyRepo portsrepo.CurrencyReader,
	multiCurrency portssvc.MultiCurrencyReaderSvc,
) portssvc.ReportingSvcFacade {
	return &reportingService{
		configID:      configID,
		statsRepo:     statsRepo,
		currencyRepo:  currencyRepo,
		multiCurrency: multiCurrency,
	}
}

var _ portssvc.ReportingSvcFacade = (*reportingService)(nil)

// SummarizeForeignPayments groups the order's foreign payment lines by
// payment currency, in first-use order. The rate shown per group is the
// last manually-edited rate among the group's lines when any was edited,
// else the first-seen rate.
func (s *reportingService) SummarizeForeignPayments(order *domain.Order) []dto.ForeignPaymentSummaryRow {
	if order == nil {
		return []dto.ForeignPaymentSummaryRow{}
	}

	index := make(map[int64]int)
	groups := make([]domain.ForeignPaymentGroup, 0)
	for _, payment := range order.Payments() {
		if !payment.IsMultiCurrency() {
			continue
		}
		currency := payment.Currency()
		i, ok := index[currency.CurrencyID]
		if !ok {
			i = len(groups)
			index[currency.CurrencyID] = i
			groups = append(groups, domain.ForeignPaymentGroup{
				Currency: currency,
				Rate:     payment.ExchangeRate(),
			})
		}
		groups[i].Total += payment.PaymentCurrencyAmount()
		if payment.RateManuallyEdited() {
			groups[i].Rate = payment.ExchangeRate()
			groups[i].ManuallyEdited = true
		}
	}

	return dto.ToForeignPaymentSummaryRows(groups, order.Currency())
}

// ActiveRates lists the deduplicated foreign currencies in use on the
// order's payment lines, each with the 4-decimal display rate of the first
// line that used it.
func (s *reportingService) ActiveRates(order *domain.Order) []domain.ActiveRate {
	if order == nil {
		return []domain.ActiveRate{}
	}

	seen := make(map[int64]struct{})
	rates := make([]domain.ActiveRate, 0)
	for _, payment := range order.Payments() {
		if !payment.IsMultiCurrency() {
			continue
		}
		currency := payment.Currency()
		if _, ok := seen[currency.CurrencyID]; ok {
			continue
		}
		seen[currency.CurrencyID] = struct{}{}
		rates = append(rates, domain.ActiveRate{
			CurrencyID:     currency.CurrencyID,
			CurrencyName:   currency.Name,
			Rate:           currencymath.RoundTo(payment.ExchangeRate(), 4),
			ManuallyEdited: payment.RateManuallyEdited(),
		})
	}
	return rates
}

// OrderForeignStats rolls up the order's foreign-currency usage for the
// order summary. A nil order reports no foreign payments.
func (s *reportingService) OrderForeignStats(order *domain.Order) dto.OrderForeignStatsResponse {
	if order == nil {
		return dto.OrderForeignStatsResponse{}
	}
	return dto.ToOrderForeignStatsResponse(order.ForeignStats())
}

// SessionStatistics fetches the per-currency rollup for a session and
// enriches it for display. A missing session or a fetch failure degrades to
// an empty response with zero grand totals; no error reaches the caller.
func (s *reportingService) SessionStatistics(ctx context.Context, sessionID int64) dto.SessionStatisticsResponse {
	empty := dto.SessionStatisticsResponse{
		SessionID: sessionID,
		Rows:      []dto.SessionCurrencyStatsRow{},
	}
	if sessionID <= 0 {
		return empty
	}

	rows, err := s.statsRepo.GetSessionCurrencyStats(ctx, s.configID, sessionID)
	if err != nil {
		s.LogWarn(ctx, "Session statistics fetch failed, returning empty rollup",
			slog.Int64("session_id", sessionID), slog.String("error", err.Error()))
		return empty
	}

	resolve := func(currencyID int64) *domain.Currency {
		currency, err := s.currencyRepo.FindCurrencyByID(ctx, currencyID)
		if err != nil {
			return nil
		}
		return currency
	}
	return dto.ToSessionStatisticsResponse(sessionID, rows, resolve, s.multiCurrency.BaseCurrency())
}
