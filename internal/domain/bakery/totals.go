package bakery

import (
	"github.com/shopspring/decimal"
)

// TaxConfig holds the bakery module's pricing rates. The rates are
// free-form numeric input and deliberately unbounded: negative or >100
// values are stored as-is.
type TaxConfig struct {
	VATRatePercent      decimal.Decimal `json:"vat_rate_percent"`
	DiscountRatePercent decimal.Decimal `json:"discount_rate_percent"`
}

// DefaultTaxConfig returns the rates a fresh installation starts with
// (5.5% VAT, the French reduced rate for baked goods, no discount).
func DefaultTaxConfig() TaxConfig {
	return TaxConfig{
		VATRatePercent:      decimal.NewFromFloat(5.5),
		DiscountRatePercent: decimal.Zero,
	}
}

// Totals is the four-stage derived total of a cart: discount is applied
// first, then VAT on the discounted base.
type Totals struct {
	Subtotal       decimal.Decimal `json:"subtotal"`
	DiscountAmount decimal.Decimal `json:"discount_amount"`
	TaxableBase    decimal.Decimal `json:"taxable_base"`
	TaxAmount      decimal.Decimal `json:"tax_amount"`
	Total          decimal.Decimal `json:"total"`
}

var oneHundred = decimal.NewFromInt(100)

// ComputeTotals derives the totals of a cart priced against a catalog.
// Lines referencing a product missing from the catalog contribute 0.
// The taxable base is clamped at zero so a discount over 100% cannot
// produce a negative tax.
func ComputeTotals(cart Cart, catalog Catalog, cfg TaxConfig) Totals {
	subtotal := decimal.Zero
	for _, line := range cart {
		p := catalog.FindByID(line.ProductID)
		if p == nil {
			continue
		}
		subtotal = subtotal.Add(p.Price.Mul(decimal.NewFromInt(int64(line.Quantity))))
	}

	discount := subtotal.Mul(cfg.DiscountRatePercent).Div(oneHundred)
	base := subtotal.Sub(discount)
	if base.IsNegative() {
		base = decimal.Zero
	}
	tax := base.Mul(cfg.VATRatePercent).Div(oneHundred)

	return Totals{
		Subtotal:       subtotal,
		DiscountAmount: discount,
		TaxableBase:    base,
		TaxAmount:      tax,
		Total:          base.Add(tax),
	}
}
