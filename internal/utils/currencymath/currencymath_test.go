package currencymath_test

import (
	"math"
	"testing"

	"github.com/SscSPs/pos_multi_currency/internal/utils/currencymath"
	"github.com/stretchr/testify/assert"
)

const (
	usd int64 = 1
	eur int64 = 2
	gbp int64 = 3
)

func testRates() map[int64]float64 {
	// 1 USD (base) = 0.9 EUR = 0.8 GBP
	return map[int64]float64{eur: 0.9, gbp: 0.8}
}

func TestRoundTo(t *testing.T) {
	tests := []struct {
		name     string
		value    float64
		decimals int
		want     float64
	}{
		{"two decimals", 1.005, 2, 1.01},
		{"truncating half case", 2.675, 2, 2.68}, // plain float rounding would yield 2.67
		{"zero decimals", 2.5, 0, 3},
		{"negative value", -1.004, 2, -1.0},
		{"already rounded", 95.0, 2, 95.0},
		{"six decimals", 0.1234565, 6, 0.123457},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, currencymath.RoundTo(tt.value, tt.decimals), 1e-9)
		})
	}
}

func TestRoundTo_Idempotent(t *testing.T) {
	for _, v := range []float64{0.005, 1.2345678, 99.999999, 1.0 / 3.0, 1234.5678} {
		once := currencymath.RoundTo(v, 2)
		assert.Equal(t, once, currencymath.RoundTo(once, 2), "value %v", v)
	}
}

func TestDecimalsFromRounding(t *testing.T) {
	tests := []struct {
		rounding float64
		want     int
	}{
		{0.01, 2},
		{1, 0},
		{0, 2},  // default fallback
		{-1, 2}, // default fallback
		{0.001, 3},
		{0.05, 1}, // -log10(0.05) ~ 1.3 rounds to 1
		{100, 0},  // never negative
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, currencymath.DecimalsFromRounding(tt.rounding), "rounding %v", tt.rounding)
	}
}

func TestConvertAmount_Identity(t *testing.T) {
	for _, amount := range []float64{0, 1.0 / 3.0, 99.99, -42.5} {
		got := currencymath.ConvertAmount(amount, eur, eur, testRates(), usd)
		assert.Equal(t, amount, got, "identity conversion must be exact")
	}
}

func TestConvertAmount_PivotsThroughBase(t *testing.T) {
	rates := testRates()

	// base -> foreign and back
	assert.InDelta(t, 90.0, currencymath.ConvertAmount(100, usd, eur, rates, usd), 1e-9)
	assert.InDelta(t, 100.0, currencymath.ConvertAmount(90, eur, usd, rates, usd), 1e-9)

	// cross-rate between two non-base currencies is derived, never stored
	assert.InDelta(t, 100*(0.8/0.9), currencymath.ConvertAmount(100, eur, gbp, rates, usd), 1e-9)
}

func TestConvertAmount_RoundTrip(t *testing.T) {
	rates := testRates()
	for _, amount := range []float64{0.01, 1.0 / 7.0, 1234.56, 1e6} {
		there := currencymath.ConvertAmount(amount, eur, gbp, rates, usd)
		back := currencymath.ConvertAmount(there, gbp, eur, rates, usd)
		assert.InDelta(t, amount, back, math.Abs(amount)*1e-12)
	}
}

func TestConvertAmount_MissingCurrencyDefaultsToPar(t *testing.T) {
	rates := testRates()
	const unknown int64 = 99
	assert.InDelta(t, 100.0, currencymath.ConvertAmount(100, usd, unknown, rates, usd), 1e-9)
	assert.InDelta(t, 90.0, currencymath.ConvertAmount(100, unknown, eur, rates, usd), 1e-9)
}

func TestEffectiveRate(t *testing.T) {
	rates := testRates()

	assert.Equal(t, 1.0, currencymath.EffectiveRate(eur, eur, rates, usd))
	assert.InDelta(t, 0.9, currencymath.EffectiveRate(usd, eur, rates, usd), 1e-9)
	assert.InDelta(t, 1/0.9, currencymath.EffectiveRate(eur, usd, rates, usd), 1e-9)
	assert.InDelta(t, 0.8/0.9, currencymath.EffectiveRate(eur, gbp, rates, usd), 1e-9)
}

func TestFormat(t *testing.T) {
	tests := []struct {
		name       string
		amount     float64
		rounding   float64
		symbol     string
		showSymbol bool
		want       string
	}{
		{"symbol with nbsp", 90.0, 0.01, "€", true, "€ 90.00"},
		{"symbol suppressed", 90.0, 0.01, "€", false, "90.00"},
		{"no symbol known", 1234.5, 0.01, "", true, "1234.50"},
		{"zero-decimal currency", 1234.5, 1, "¥", true, "¥ 1234"},
		{"default precision", 12.3456, 0, "", false, "12.35"},
		{"three decimals", 1.2, 0.001, "", false, "1.200"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, currencymath.Format(tt.amount, tt.rounding, tt.symbol, tt.showSymbol))
		})
	}
}

func TestValidateRate(t *testing.T) {
	tests := []struct {
		name         string
		manual       float64
		market       float64
		maxDeviation float64
		wantValid    bool
		wantMessage  string
	}{
		{"negative rate", -1, 1.0, 0.5, false, "Rate must be a positive number."},
		{"zero rate", 0, 1.0, 0.5, false, "Rate must be a positive number."},
		{"nan rate", math.NaN(), 1.0, 0.5, false, "Rate must be a positive number."},
		{"infinite rate", math.Inf(1), 1.0, 0.5, false, "Rate must be a positive number."},
		{"exact match", 1.0, 1.0, 0.5, true, ""},
		{"within deviation", 1.2, 1.0, 0.5, true, ""},
		{"beyond deviation", 2.0, 1.0, 0.5, false, "Rate deviates more than 50% from market. Confirm to proceed."},
		{"custom threshold", 1.2, 1.0, 0.1, false, "Rate deviates more than 10% from market. Confirm to proceed."},
		{"no market rate known", 123.45, 0, 0.5, true, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := currencymath.ValidateRate(tt.manual, tt.market, tt.maxDeviation)
			assert.Equal(t, tt.wantValid, got.Valid)
			assert.Equal(t, tt.wantMessage, got.Message)
		})
	}
}
