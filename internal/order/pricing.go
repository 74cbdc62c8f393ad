package order

import "github.com/shopspring/decimal"

// Surcharge rates are venue-wide constants, not configurable per order.
var (
	vatRate           = decimal.New(12, -2) // 12% value-added tax
	serviceChargeRate = decimal.New(10, -2) // 10% service charge
)

// PricingResult holds the money amounts derived from an order's lines.
// It is recomputed on every request and never stored.
type PricingResult struct {
	Subtotal      decimal.Decimal
	VAT           decimal.Decimal
	ServiceCharge decimal.Decimal
	GrandTotal    decimal.Decimal
}

// Price derives subtotal, VAT, service charge, and grand total from the
// current lines. Amounts are exact decimals; rounding to two places happens
// only at the presentation boundary. A subtotal forced negative by bad input
// is clamped to zero so totals never go negative.
func (o *Order) Price() PricingResult {
	subtotal := decimal.Zero
	for _, l := range o.Lines {
		subtotal = subtotal.Add(l.LineTotal())
	}
	if subtotal.IsNegative() {
		subtotal = decimal.Zero
	}

	vat := subtotal.Mul(vatRate)
	serviceCharge := subtotal.Mul(serviceChargeRate)

	return PricingResult{
		Subtotal:      subtotal,
		VAT:           vat,
		ServiceCharge: serviceCharge,
		GrandTotal:    subtotal.Add(vat).Add(serviceCharge),
	}
}
