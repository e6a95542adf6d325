package services

import (
	"context"

	"github.com/SscSPs/pos_multi_currency/internal/core/domain"
	"github.com/SscSPs/pos_multi_currency/internal/utils/currencymath"
)

// MultiCurrencyReaderSvc exposes the derived state of the session's
// multi-currency configuration.
type MultiCurrencyReaderSvc interface {
	// IsActive reports whether multi-currency handling is on for the session
	// (configuration enabled AND session toggle enabled).
	IsActive() bool

	// IsConfigured reports whether the backend configuration enables
	// multi-currency, regardless of the session toggle.
	IsConfigured() bool

	// AllowRateEdit reports whether the configuration permits manual rate
	// edits at all, independent of per-user permission.
	AllowRateEdit() bool

	// CanEditRate reports whether rate editing is both allowed by the
	// configuration and permitted for the current user.
	CanEditRate() bool

	// AllowedCurrencies returns the currencies selectable for payment.
	AllowedCurrencies() []domain.Currency

	// BaseCurrency returns the pivot currency, nil before a successful load.
	BaseCurrency() *domain.Currency

	// BaseCurrencyID returns the pivot currency id, 0 before a load.
	BaseCurrencyID() int64

	// Rates returns the rate table snapshot currently in effect.
	Rates() domain.RateTable
}

// MultiCurrencyLifecycleSvc covers session lifecycle and rate management.
type MultiCurrencyLifecycleSvc interface {
	// Init loads the configuration from the external source. Load failure
	// leaves the service in a well-defined disabled state and is not
	// surfaced as an error.
	Init(ctx context.Context) error

	// RefreshRates fetches a fresh snapshot from the rate source, falling
	// back to last-known per-currency rates on failure. It returns the table
	// now in effect and never fails.
	RefreshRates(ctx context.Context) domain.RateTable

	// SetSessionEnabled toggles multi-currency for this session without
	// touching the persisted configuration.
	SetSessionEnabled(enabled bool)
}

// MultiCurrencyPaymentSvc applies session rate state to payment lines.
type MultiCurrencyPaymentSvc interface {
	// AssignPaymentCurrency resolves the currency id through the registry
	// and stamps it onto the payment line with the current rates.
	AssignPaymentCurrency(ctx context.Context, line *domain.Payment, currencyID int64) error

	// StampFixedCurrency applies a payment method's fixed currency to a
	// fresh line; a method without a fixed currency is a no-op.
	StampFixedCurrency(ctx context.Context, line *domain.Payment, method *domain.PaymentMethod) error

	// ValidateManualRate checks a proposed manual rate against the current
	// market rate for the currency using the configured deviation guardrail.
	ValidateManualRate(manualRate float64, currencyID int64) currencymath.Validation
}

// MultiCurrencySvcFacade combines all multi-currency session interfaces
type MultiCurrencySvcFacade interface {
	MultiCurrencyReaderSvc
	MultiCurrencyLifecycleSvc
	MultiCurrencyPaymentSvc
}
