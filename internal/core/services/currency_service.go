package services

import (
	"context"
	"fmt"
	"math"

	"github.com/SscSPs/pos_multi_currency/internal/apperrors"
	"github.com/SscSPs/pos_multi_currency/internal/core/domain"
	portsrepo "github.com/SscSPs/pos_multi_currency/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/pos_multi_currency/internal/core/ports/services"
	"github.com/SscSPs/pos_multi_currency/internal/dto"
)

// currencyService fronts the currency registry.
type currencyService struct {
	BaseService
	currencyRepo portsrepo.CurrencyRepositoryFacade
}

// NewCurrencyService creates a new registry service.
func NewCurrencyService(currencyRepo portsrepo.CurrencyRepositoryFacade) portssvc.CurrencySvcFacade {
	return &currencyService{currencyRepo: currencyRepo}
}

var _ portssvc.CurrencySvcFacade = (*currencyService)(nil)

// CreateCurrency registers a currency (admin operation, primarily setup).
func (s *currencyService) CreateCurrency(ctx context.Context, req dto.CreateCurrencyRequest) (*domain.Currency, error) {
	// Binding covers required/gt/gte; NaN and Inf survive JSON-less callers.
	if math.IsNaN(req.Rate) || math.IsInf(req.Rate, 0) || math.IsNaN(req.Rounding) || math.IsInf(req.Rounding, 0) {
		return nil, fmt.Errorf("%w: rate and rounding must be finite numbers", apperrors.ErrValidation)
	}
	currency := domain.Currency{
		CurrencyID: req.CurrencyID,
		Name:       req.Name,
		Symbol:     req.Symbol,
		Rounding:   req.Rounding,
		Rate:       req.Rate,
		Active:     true,
	}

	if err := s.currencyRepo.SaveCurrency(ctx, currency); err != nil {
		return nil, fmt.Errorf("failed to create currency in service: %w", err)
	}

	return &currency, nil
}

// GetCurrencyByID resolves a currency id to its registry record.
func (s *currencyService) GetCurrencyByID(ctx context.Context, currencyID int64) (*domain.Currency, error) {
	currency, err := s.currencyRepo.FindCurrencyByID(ctx, currencyID)
	if err != nil {
		return nil, fmt.Errorf("failed to get currency by id in service: %w", err)
	}
	return currency, nil
}

// ListCurrencies retrieves all active currencies.
func (s *currencyService) ListCurrencies(ctx context.Context) ([]domain.Currency, error) {
	currencies, err := s.currencyRepo.ListCurrencies(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list currencies in service: %w", err)
	}
	// Return empty slice if no currencies found, not nil
	if currencies == nil {
		return []domain.Currency{}, nil
	}
	return currencies, nil
}
