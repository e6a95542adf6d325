package domain_test

import (
	"math"
	"testing"

	"github.com/SscSPs/pos_multi_currency/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	usdCurrency = domain.Currency{CurrencyID: 1, Name: "USD", Symbol: "$", Rounding: 0.01, Rate: 1.0, Active: true}
	eurCurrency = domain.Currency{CurrencyID: 2, Name: "EUR", Symbol: "€", Rounding: 0.01, Rate: 0.9, Active: true}
	jpyCurrency = domain.Currency{CurrencyID: 3, Name: "JPY", Symbol: "¥", Rounding: 1, Rate: 150.0, Active: true}
)

func testRates() domain.RateTable {
	return domain.RateTable{2: 0.9, 3: 150.0}
}

func cashMethod() *domain.PaymentMethod {
	return &domain.PaymentMethod{PaymentMethodID: 10, Name: "Cash"}
}

func TestPayment_NoCurrencyMirrorsBaseAmount(t *testing.T) {
	order := domain.NewOrder(&usdCurrency)
	p := order.AddPayment(cashMethod(), 100)

	assert.Equal(t, 100.0, p.Amount())
	assert.Equal(t, 100.0, p.PaymentCurrencyAmount())
	assert.Equal(t, 1.0, p.ExchangeRate())
	assert.False(t, p.IsMultiCurrency())
	assert.False(t, p.RateManuallyEdited())

	p.SetAmount(42.505)
	assert.Equal(t, 42.51, p.Amount())
	assert.Equal(t, 42.51, p.PaymentCurrencyAmount())
}

func TestPayment_SetPaymentCurrency(t *testing.T) {
	order := domain.NewOrder(&usdCurrency)
	p := order.AddPayment(cashMethod(), 100)

	p.SetPaymentCurrency(&eurCurrency, testRates(), usdCurrency.CurrencyID)

	require.NotNil(t, p.Currency())
	assert.Equal(t, eurCurrency.CurrencyID, p.Currency().CurrencyID)
	assert.InDelta(t, 0.9, p.ExchangeRate(), 1e-9)
	assert.Equal(t, 90.0, p.PaymentCurrencyAmount())
	assert.True(t, p.IsMultiCurrency())
	assert.False(t, p.RateManuallyEdited())
}

func TestPayment_SetPaymentCurrency_RoundsToCurrencyPrecision(t *testing.T) {
	order := domain.NewOrder(&usdCurrency)
	p := order.AddPayment(cashMethod(), 10.55)

	// JPY has rounding 1, so the converted amount carries no decimals.
	p.SetPaymentCurrency(&jpyCurrency, testRates(), usdCurrency.CurrencyID)
	assert.Equal(t, 1583.0, p.PaymentCurrencyAmount()) // 10.55 * 150 = 1582.5 -> 1583
}

func TestPayment_SetPaymentCurrency_SilentNoOps(t *testing.T) {
	t.Run("nil currency", func(t *testing.T) {
		order := domain.NewOrder(&usdCurrency)
		p := order.AddPayment(cashMethod(), 100)
		p.SetPaymentCurrency(nil, testRates(), usdCurrency.CurrencyID)
		assert.Nil(t, p.Currency())
		assert.Equal(t, 100.0, p.PaymentCurrencyAmount())
	})

	t.Run("unresolved order currency", func(t *testing.T) {
		order := domain.NewOrder(nil)
		p := order.AddPayment(cashMethod(), 100)
		p.SetPaymentCurrency(&eurCurrency, testRates(), usdCurrency.CurrencyID)
		assert.Nil(t, p.Currency())
		assert.Equal(t, 1.0, p.ExchangeRate())
	})
}

func TestPayment_SetManualRate(t *testing.T) {
	order := domain.NewOrder(&usdCurrency)
	p := order.AddPayment(cashMethod(), 100)
	p.SetPaymentCurrency(&eurCurrency, testRates(), usdCurrency.CurrencyID)
	assert.Equal(t, 90.0, p.PaymentCurrencyAmount())

	p.SetManualRate(0.95)
	assert.InDelta(t, 0.95, p.ExchangeRate(), 1e-9)
	assert.Equal(t, 95.0, p.PaymentCurrencyAmount())
	assert.True(t, p.RateManuallyEdited())

	// Re-assigning the currency resets the override.
	p.SetPaymentCurrency(&eurCurrency, testRates(), usdCurrency.CurrencyID)
	assert.InDelta(t, 0.9, p.ExchangeRate(), 1e-9)
	assert.False(t, p.RateManuallyEdited())
}

func TestPayment_SetManualRate_RejectsInvalidInput(t *testing.T) {
	order := domain.NewOrder(&usdCurrency)
	p := order.AddPayment(cashMethod(), 100)
	p.SetPaymentCurrency(&eurCurrency, testRates(), usdCurrency.CurrencyID)

	for _, rate := range []float64{0, -0.5, math.NaN(), math.Inf(1)} {
		p.SetManualRate(rate)
		assert.InDelta(t, 0.9, p.ExchangeRate(), 1e-9, "rate %v must be ignored", rate)
		assert.False(t, p.RateManuallyEdited())
		assert.Equal(t, 90.0, p.PaymentCurrencyAmount())
	}
}

func TestPayment_AmountChangeResyncsConvertedAmount(t *testing.T) {
	order := domain.NewOrder(&usdCurrency)
	p := order.AddPayment(cashMethod(), 100)
	p.SetPaymentCurrency(&eurCurrency, testRates(), usdCurrency.CurrencyID)

	p.SetAmount(50)
	assert.Equal(t, 50.0, p.Amount())
	assert.Equal(t, 45.0, p.PaymentCurrencyAmount())
}

func TestPayment_IsMultiCurrency(t *testing.T) {
	order := domain.NewOrder(&usdCurrency)

	unset := order.AddPayment(cashMethod(), 10)
	assert.False(t, unset.IsMultiCurrency())

	sameCurrency := order.AddPayment(cashMethod(), 10)
	sameCurrency.SetPaymentCurrency(&usdCurrency, testRates(), usdCurrency.CurrencyID)
	assert.False(t, sameCurrency.IsMultiCurrency())

	foreign := order.AddPayment(cashMethod(), 10)
	foreign.SetPaymentCurrency(&eurCurrency, testRates(), usdCurrency.CurrencyID)
	assert.True(t, foreign.IsMultiCurrency())
}

func TestOrder_ForeignStats(t *testing.T) {
	order := domain.NewOrder(&usdCurrency)
	rates := testRates()

	domestic := order.AddPayment(cashMethod(), 20)
	domestic.SetPaymentCurrency(&usdCurrency, rates, usdCurrency.CurrencyID)

	first := order.AddPayment(cashMethod(), 50)
	first.SetPaymentCurrency(&eurCurrency, rates, usdCurrency.CurrencyID)

	second := order.AddPayment(cashMethod(), 30)
	second.SetPaymentCurrency(&eurCurrency, rates, usdCurrency.CurrencyID)
	second.SetManualRate(0.92)

	third := order.AddPayment(cashMethod(), 10)
	third.SetPaymentCurrency(&jpyCurrency, rates, usdCurrency.CurrencyID)

	stats := order.ForeignStats()
	assert.True(t, stats.HasForeignPayments)
	assert.Equal(t, 2, stats.ForeignCurrencyCount)
	assert.Equal(t, 90.0, stats.TotalForeignAmount)
	assert.Equal(t, 1, stats.ManualRateCount)
}

func TestOrder_ForeignStats_Empty(t *testing.T) {
	order := domain.NewOrder(&usdCurrency)
	order.AddPayment(cashMethod(), 25)

	stats := order.ForeignStats()
	assert.False(t, stats.HasForeignPayments)
	assert.Zero(t, stats.ForeignCurrencyCount)
	assert.Zero(t, stats.TotalForeignAmount)
	assert.Zero(t, stats.ManualRateCount)
}
