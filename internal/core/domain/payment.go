package domain

import (
	"math"

	"github.com/SscSPs/pos_multi_currency/internal/utils/currencymath"
	"github.com/google/uuid"
)

// rateDecimals is the precision exchange rates are stored at.
const rateDecimals = 6

// PaymentMethod describes how a payment line is settled. A method may be
// locked to a single currency (e.g. a USD-only card terminal); such lines
// skip currency selection entirely.
type PaymentMethod struct {
	PaymentMethodID int64  `json:"paymentMethodID"`
	Name            string `json:"name"`
	FixedCurrencyID int64  `json:"fixedCurrencyID,omitempty"` // 0 means no fixed currency
}

// Order owns a currency and a set of payment lines. The order currency is
// assigned at construction and is what every line's base amount is expressed
// in.
type Order struct {
	OrderID  string
	currency *Currency
	payments []*Payment
}

// NewOrder creates an order in the given currency. A nil currency is
// tolerated: payment lines on such an order refuse currency assignment until
// the order currency is resolved.
func NewOrder(currency *Currency) *Order {
	return &Order{
		OrderID:  uuid.NewString(),
		currency: currency,
	}
}

// Currency returns the order currency, nil when unresolved.
func (o *Order) Currency() *Currency {
	return o.currency
}

// CurrencyID returns the order currency id, 0 when unresolved.
func (o *Order) CurrencyID() int64 {
	if o.currency == nil {
		return 0
	}
	return o.currency.CurrencyID
}

// Payments returns the order's payment lines in insertion order.
func (o *Order) Payments() []*Payment {
	return o.payments
}

// AddPayment appends a new payment line for the given amount in the order
// currency. The line starts without a payment currency: its converted amount
// mirrors the base amount until a currency is assigned.
func (o *Order) AddPayment(method *PaymentMethod, amount float64) *Payment {
	p := &Payment{
		PaymentID:    uuid.NewString(),
		order:        o,
		method:       method,
		exchangeRate: 1.0,
	}
	p.SetAmount(amount)
	o.payments = append(o.payments, p)
	return p
}

// ForeignStats summarises the order's foreign-currency usage.
type ForeignStats struct {
	HasForeignPayments   bool    `json:"hasForeignPayments"`
	ForeignCurrencyCount int     `json:"foreignCurrencyCount"`
	TotalForeignAmount   float64 `json:"totalForeignAmount"` // Sum of foreign lines in the order currency
	ManualRateCount      int     `json:"manualRateCount"`
}

// ForeignStats rolls up the foreign payment lines of the order.
func (o *Order) ForeignStats() ForeignStats {
	var stats ForeignStats
	seen := make(map[int64]struct{})
	for _, p := range o.payments {
		if !p.IsMultiCurrency() {
			continue
		}
		stats.HasForeignPayments = true
		stats.TotalForeignAmount += p.Amount()
		if p.RateManuallyEdited() {
			stats.ManualRateCount++
		}
		if _, ok := seen[p.paymentCurrency.CurrencyID]; !ok {
			seen[p.paymentCurrency.CurrencyID] = struct{}{}
			stats.ForeignCurrencyCount++
		}
	}
	return stats
}

// Payment is one payment line of an order. Its base amount is expressed in
// the order currency; once a payment currency is assigned the line also
// carries the converted amount and the rate used, kept in sync eagerly on
// every mutation. There is no deferred recomputation: the converted amount
// is always valid after a mutator returns.
type Payment struct {
	PaymentID string

	order  *Order
	method *PaymentMethod

	amount                float64
	paymentCurrency       *Currency
	paymentCurrencyAmount float64
	exchangeRate          float64
	rateManuallyEdited    bool
}

// Method returns the payment method of the line, nil when unknown.
func (p *Payment) Method() *PaymentMethod {
	return p.method
}

// Amount returns the line amount in the order currency.
func (p *Payment) Amount() float64 {
	return p.amount
}

// SetAmount sets the line amount in the order currency, rounded to the order
// currency precision, and re-synchronizes the converted amount.
func (p *Payment) SetAmount(value float64) {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		value = 0
	}
	p.amount = currencymath.RoundTo(value, p.order.Currency().DecimalPlaces())
	p.syncCurrencyAmount()
}

// Currency returns the payment currency, nil when none was assigned.
func (p *Payment) Currency() *Currency {
	return p.paymentCurrency
}

// ExchangeRate returns the rate in effect: 1 unit of order currency equals
// this many units of payment currency.
func (p *Payment) ExchangeRate() float64 {
	return p.exchangeRate
}

// RateManuallyEdited reports whether a cashier overrode the computed rate.
func (p *Payment) RateManuallyEdited() bool {
	return p.rateManuallyEdited
}

// SetPaymentCurrency assigns the payment currency and computes the exchange
// rate from the rate table. A nil currency or an unresolved order currency
// is a silent no-op. Assigning a currency clears any manual rate override.
func (p *Payment) SetPaymentCurrency(currency *Currency, rates RateTable, baseCurrencyID int64) {
	if currency == nil || p.order.Currency() == nil {
		return
	}
	p.paymentCurrency = currency
	rate := currencymath.EffectiveRate(p.order.CurrencyID(), currency.CurrencyID, rates, baseCurrencyID)
	p.exchangeRate = currencymath.RoundTo(rate, rateDecimals)
	p.rateManuallyEdited = false
	p.syncCurrencyAmount()
}

// SetManualRate overrides the exchange rate with a cashier-entered value.
// Non-finite or non-positive rates are ignored and leave the line untouched.
// Deviation checking against the market rate is a caller concern; a positive
// override is always accepted here.
func (p *Payment) SetManualRate(newRate float64) {
	if newRate <= 0 || math.IsNaN(newRate) || math.IsInf(newRate, 0) {
		return
	}
	p.exchangeRate = currencymath.RoundTo(newRate, rateDecimals)
	p.rateManuallyEdited = true
	p.syncCurrencyAmount()
}

// PaymentCurrencyAmount returns the line amount expressed in the payment
// currency. Without an assigned payment currency it mirrors the base amount.
func (p *Payment) PaymentCurrencyAmount() float64 {
	return p.paymentCurrencyAmount
}

// IsMultiCurrency reports whether the line is paid in a foreign currency,
// i.e. a payment currency is set and differs from the order currency.
func (p *Payment) IsMultiCurrency() bool {
	if p.paymentCurrency == nil {
		return false
	}
	return p.paymentCurrency.CurrencyID != p.order.CurrencyID()
}

// syncCurrencyAmount re-establishes the amount invariant after any mutation
// of the base amount or the rate.
func (p *Payment) syncCurrencyAmount() {
	if p.paymentCurrency == nil {
		p.paymentCurrencyAmount = p.amount
		return
	}
	p.paymentCurrencyAmount = currencymath.RoundTo(
		p.amount*p.exchangeRate,
		p.paymentCurrency.DecimalPlaces(),
	)
}
