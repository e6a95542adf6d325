package services

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/SscSPs/pos_multi_currency/internal/core/domain"
	portsrepo "github.com/SscSPs/pos_multi_currency/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/pos_multi_currency/internal/core/ports/services"
	"github.com/SscSPs/pos_multi_currency/internal/utils/currencymath"
)

// multiCurrencyService holds the multi-currency state of one POS session:
// the configuration loaded at session start, the session-scoped enabled
// toggle, and the rate table currently in effect. The rate table is replaced
// wholesale on every refresh so that a reader holding a reference always
// sees the snapshot that was current when it read.
type multiCurrencyService struct {
	BaseService

	configID     int64
	maxDeviation float64
	configRepo   portsrepo.MultiCurrencyConfigRepository
	rateRepo     portsrepo.RateRepository
	currencyRepo portsrepo.CurrencyReader

	// refreshMu serializes RefreshRates calls so a slow stale response can
	// never clobber a newer table.
	refreshMu sync.Mutex

	mu             sync.RWMutex
	enabled        bool
	allowRateEdit  bool
	canEditRate    bool
	sessionEnabled bool
	initialized    bool
	currencies     []domain.Currency
	baseCurrency   *domain.Currency
	baseCurrencyID int64
	rates          domain.RateTable
}

// NewMultiCurrencyService creates the session's multi-currency service. The
// session starts enabled; Init must be called before the derived accessors
// report meaningful configuration state. A non-positive maxDeviation falls
// back to the default guardrail.
func NewMultiCurrencyService(
	configID int64,
	maxDeviation float64,
	configRepo portsrepo.MultiCurrencyConfigRepository,
	rateRepo portsrepo.RateRepository,
	currencyRepo portsrepo.CurrencyReader,
) portssvc.MultiCurrencySvcFacade {
	if maxDeviation <= 0 {
		maxDeviation = currencymath.DefaultMaxDeviation
	}
	return &multiCurrencyService{
		configID:       configID,
		maxDeviation:   maxDeviation,
		configRepo:     configRepo,
		rateRepo:       rateRepo,
		currencyRepo:   currencyRepo,
		sessionEnabled: true,
		rates:          domain.RateTable{},
	}
}

var _ portssvc.MultiCurrencySvcFacade = (*multiCurrencyService)(nil)

// Init loads the multi-currency configuration. A load failure leaves the
// service in a well-defined disabled state (disabled, empty allowed set)
// instead of a half-populated one, and is not surfaced as an error: the POS
// degrades to single-currency operation. When the configuration is enabled,
// rates are refreshed before the service declares itself initialized.
func (s *multiCurrencyService) Init(ctx context.Context) error {
	cfg, err := s.configRepo.FetchConfig(ctx, s.configID)
	if err != nil {
		s.LogWarn(ctx, "Failed to load multi-currency config, disabling for this session",
			slog.Int64("config_id", s.configID), slog.String("error", err.Error()))
		s.mu.Lock()
		s.enabled = false
		s.allowRateEdit = false
		s.canEditRate = false
		s.currencies = nil
		s.baseCurrency = nil
		s.baseCurrencyID = 0
		s.rates = domain.RateTable{}
		s.initialized = true
		s.mu.Unlock()
		return nil
	}

	s.mu.Lock()
	s.enabled = cfg.Enabled
	s.allowRateEdit = cfg.AllowRateEdit
	s.canEditRate = cfg.CanEditRate
	s.currencies = cfg.Currencies
	s.baseCurrency = cfg.BaseCurrency
	if cfg.BaseCurrency != nil {
		s.baseCurrencyID = cfg.BaseCurrency.CurrencyID
	}
	// Seed the table from the per-currency snapshots so the session is
	// usable even if the first refresh fails.
	s.rates = s.localRatesLocked()
	enabled := s.enabled
	s.mu.Unlock()

	if enabled {
		s.RefreshRates(ctx)
	}

	s.mu.Lock()
	s.initialized = true
	s.mu.Unlock()

	s.LogInfo(ctx, "Multi-currency config loaded",
		slog.Int64("config_id", s.configID),
		slog.Bool("enabled", cfg.Enabled),
		slog.Int("currencies", len(cfg.Currencies)))
	return nil
}

// RefreshRates fetches a fresh snapshot from the rate source and atomically
// replaces the stored table. The base currency id is only overwritten when
// the response supplies one. On failure the table is rebuilt from the
// last-known per-currency snapshots: stale rates beat an empty table, and
// the fallback never fails. Concurrent calls are serialized.
func (s *multiCurrencyService) RefreshRates(ctx context.Context) domain.RateTable {
	s.refreshMu.Lock()
	defer s.refreshMu.Unlock()

	snapshot, err := s.rateRepo.FetchRates(ctx, s.configID)
	if err != nil || snapshot == nil {
		if err != nil {
			s.LogWarn(ctx, "Rate refresh failed, rebuilding from local snapshots",
				slog.Int64("config_id", s.configID), slog.String("error", err.Error()))
		}
		s.mu.Lock()
		s.rates = s.localRatesLocked()
		table := s.rates
		s.mu.Unlock()
		return table
	}

	// Copy into a fresh table: the source keeps no handle on what we serve.
	table := make(domain.RateTable, len(snapshot.Rates))
	for currencyID, rate := range snapshot.Rates {
		table[currencyID] = rate
	}

	s.mu.Lock()
	s.rates = table
	if snapshot.BaseCurrencyID > 0 {
		s.baseCurrencyID = snapshot.BaseCurrencyID
	}
	s.mu.Unlock()

	s.LogInfo(ctx, "Exchange rates refreshed",
		slog.Int64("config_id", s.configID), slog.Int("rates", len(table)))
	return table
}

// localRatesLocked rebuilds a rate table from the per-currency rate
// snapshots captured at config load. Callers must hold s.mu.
func (s *multiCurrencyService) localRatesLocked() domain.RateTable {
	table := make(domain.RateTable, len(s.currencies))
	for _, currency := range s.currencies {
		rate := currency.Rate
		if rate <= 0 {
			rate = 1.0
		}
		table[currency.CurrencyID] = rate
	}
	return table
}

func (s *multiCurrencyService) IsActive() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.enabled && s.sessionEnabled
}

func (s *multiCurrencyService) IsConfigured() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.enabled
}

func (s *multiCurrencyService) AllowRateEdit() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.allowRateEdit
}

func (s *multiCurrencyService) CanEditRate() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.canEditRate && s.allowRateEdit
}

func (s *multiCurrencyService) AllowedCurrencies() []domain.Currency {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.Currency, len(s.currencies))
	copy(out, s.currencies)
	return out
}

func (s *multiCurrencyService) BaseCurrency() *domain.Currency {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.baseCurrency
}

func (s *multiCurrencyService) BaseCurrencyID() int64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.baseCurrencyID
}

// Rates returns the table currently in effect. The table is a snapshot:
// refreshes install a new one rather than mutating it.
func (s *multiCurrencyService) Rates() domain.RateTable {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.rates
}

// SetSessionEnabled toggles multi-currency for the running session without
// altering the persisted configuration.
func (s *multiCurrencyService) SetSessionEnabled(enabled bool) {
	s.mu.Lock()
	s.sessionEnabled = enabled
	s.mu.Unlock()
}

// AssignPaymentCurrency resolves the currency through the registry and
// stamps it onto the line with the rates currently in effect.
func (s *multiCurrencyService) AssignPaymentCurrency(ctx context.Context, line *domain.Payment, currencyID int64) error {
	currency, err := s.currencyRepo.FindCurrencyByID(ctx, currencyID)
	if err != nil {
		return fmt.Errorf("failed to resolve payment currency %d: %w", currencyID, err)
	}
	line.SetPaymentCurrency(currency, s.Rates(), s.BaseCurrencyID())
	return nil
}

// StampFixedCurrency applies a payment method's fixed currency to a line.
// Methods without a fixed currency are a no-op: the cashier selects the
// currency instead.
func (s *multiCurrencyService) StampFixedCurrency(ctx context.Context, line *domain.Payment, method *domain.PaymentMethod) error {
	if method == nil || method.FixedCurrencyID == 0 {
		return nil
	}
	return s.AssignPaymentCurrency(ctx, line, method.FixedCurrencyID)
}

// ValidateManualRate checks a proposed manual rate against the market rate
// for the currency. The outcome is advisory: the payment line accepts any
// positive override, the caller decides whether to require confirmation.
func (s *multiCurrencyService) ValidateManualRate(manualRate float64, currencyID int64) currencymath.Validation {
	marketRate := s.Rates().RateFor(currencyID, s.BaseCurrencyID())
	return currencymath.ValidateRate(manualRate, marketRate, s.maxDeviation)
}
