// Package currencymath holds the pure conversion and formatting primitives
// used for multi-currency payments. Every cross-currency rate is derived by
// pivoting through the base currency, so the rate table stays linear in the
// number of currencies and internally consistent (no arbitrage between
// stored pairs).
package currencymath

import (
	"fmt"
	"math"
	"strconv"
)

// epsilon counters binary floating-point truncation at the rounding
// halfway point (same constant as Number.EPSILON, 2^-52).
const epsilon = 2.220446049250313e-16

// DefaultMaxDeviation is the relative deviation from the market rate beyond
// which a manually entered rate triggers an advisory warning.
const DefaultMaxDeviation = 0.5

// Validation is the outcome of checking a manually entered rate. An invalid
// result with a deviation message is advisory: the caller may still proceed
// after confirmation.
type Validation struct {
	Valid   bool   `json:"valid"`
	Message string `json:"message,omitempty"`
}

// RoundTo rounds value to the given number of decimal places, half away from
// zero. Idempotent: rounding an already-rounded value is a no-op.
func RoundTo(value float64, decimals int) float64 {
	factor := math.Pow(10, float64(decimals))
	return math.Round((value+epsilon)*factor) / factor
}

// DecimalsFromRounding derives display precision from a currency's rounding
// increment, e.g. 0.01 -> 2, 1 -> 0. A missing or non-positive rounding
// falls back to the default two decimal places.
func DecimalsFromRounding(rounding float64) int {
	if rounding <= 0 || math.IsNaN(rounding) {
		return 2
	}
	decimals := int(math.Round(-math.Log10(rounding)))
	if decimals < 0 {
		return 0
	}
	return decimals
}

// ConvertAmount converts an amount between two currencies by pivoting
// through the base currency. Identical source and target return the amount
// untouched, avoiding a floating round-trip. Currencies missing from the
// table are treated as trading at par with the base.
func ConvertAmount(amount float64, sourceCurrencyID, targetCurrencyID int64, rates map[int64]float64, baseCurrencyID int64) float64 {
	if sourceCurrencyID == targetCurrencyID {
		return amount
	}
	sourceRate := pivotRate(sourceCurrencyID, rates, baseCurrencyID)
	targetRate := pivotRate(targetCurrencyID, rates, baseCurrencyID)
	return amount * (targetRate / sourceRate)
}

// EffectiveRate returns how many units of the payment currency one unit of
// the order currency buys.
func EffectiveRate(orderCurrencyID, paymentCurrencyID int64, rates map[int64]float64, baseCurrencyID int64) float64 {
	if orderCurrencyID == paymentCurrencyID {
		return 1.0
	}
	return ConvertAmount(1, orderCurrencyID, paymentCurrencyID, rates, baseCurrencyID)
}

// Format renders an amount with the precision implied by the currency
// rounding. When showSymbol is set and a symbol is known, the symbol is
// prefixed with a non-breaking space before the number.
func Format(amount float64, rounding float64, symbol string, showSymbol bool) string {
	formatted := strconv.FormatFloat(amount, 'f', DecimalsFromRounding(rounding), 64)
	if showSymbol && symbol != "" {
		return symbol + " " + formatted
	}
	return formatted
}

// ValidateRate checks a manually entered rate. A non-positive or non-finite
// rate is rejected outright. When a positive market rate is known and the
// relative deviation exceeds maxDeviation, the result is invalid with an
// advisory message; the mutation itself is never blocked here.
func ValidateRate(manualRate, marketRate, maxDeviation float64) Validation {
	if manualRate <= 0 || math.IsNaN(manualRate) || math.IsInf(manualRate, 0) {
		return Validation{Valid: false, Message: "Rate must be a positive number."}
	}
	if marketRate > 0 && !math.IsNaN(marketRate) && !math.IsInf(marketRate, 0) {
		deviation := math.Abs(manualRate-marketRate) / marketRate
		if deviation > maxDeviation {
			return Validation{
				Valid: false,
				Message: fmt.Sprintf(
					"Rate deviates more than %d%% from market. Confirm to proceed.",
					int(math.Round(maxDeviation*100)),
				),
			}
		}
	}
	return Validation{Valid: true}
}

func pivotRate(currencyID int64, rates map[int64]float64, baseCurrencyID int64) float64 {
	if currencyID == baseCurrencyID {
		return 1.0
	}
	if rate, ok := rates[currencyID]; ok && rate > 0 {
		return rate
	}
	return 1.0
}
