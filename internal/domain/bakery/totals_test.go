package bakery

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func testCatalog() Catalog {
	return Catalog{
		{ID: "p1", Name: "Baguette", Price: decimal.NewFromFloat(1.3)},
		{ID: "p2", Name: "Croissant", Price: decimal.NewFromFloat(1.1)},
	}
}

func rates(vat, discount float64) TaxConfig {
	return TaxConfig{
		VATRatePercent:      decimal.NewFromFloat(vat),
		DiscountRatePercent: decimal.NewFromFloat(discount),
	}
}

func TestComputeTotals(t *testing.T) {
	catalog := testCatalog()

	t.Run("empty cart yields zero totals", func(t *testing.T) {
		totals := ComputeTotals(Cart{}, catalog, rates(5.5, 0))

		assert.True(t, totals.Subtotal.IsZero())
		assert.True(t, totals.Total.IsZero())
	})

	t.Run("subtotal sums price times quantity", func(t *testing.T) {
		cart := Cart{{ProductID: "p1", Quantity: 2}, {ProductID: "p2", Quantity: 3}}
		totals := ComputeTotals(cart, catalog, rates(0, 0))

		// 2*1.30 + 3*1.10 = 5.90
		assert.True(t, totals.Subtotal.Equal(decimal.NewFromFloat(5.9)), totals.Subtotal.String())
		assert.True(t, totals.Total.Equal(decimal.NewFromFloat(5.9)))
	})

	t.Run("discount applies before vat", func(t *testing.T) {
		cart := Cart{{ProductID: "p1", Quantity: 10}} // 13.00
		totals := ComputeTotals(cart, catalog, rates(10, 50))

		assert.True(t, totals.DiscountAmount.Equal(decimal.NewFromFloat(6.5)), totals.DiscountAmount.String())
		assert.True(t, totals.TaxableBase.Equal(decimal.NewFromFloat(6.5)))
		assert.True(t, totals.TaxAmount.Equal(decimal.NewFromFloat(0.65)))
		assert.True(t, totals.Total.Equal(decimal.NewFromFloat(7.15)))
	})

	t.Run("discount plus base equals subtotal for rates up to 100", func(t *testing.T) {
		cart := Cart{{ProductID: "p1", Quantity: 3}, {ProductID: "p2", Quantity: 1}}
		for _, rate := range []float64{0, 5.5, 33.3, 100} {
			totals := ComputeTotals(cart, catalog, rates(20, rate))
			sum := totals.DiscountAmount.Add(totals.TaxableBase)
			assert.True(t, sum.Equal(totals.Subtotal), "rate %v: %s != %s", rate, sum, totals.Subtotal)
		}
	})

	t.Run("taxable base clamps at zero above 100 percent discount", func(t *testing.T) {
		cart := Cart{{ProductID: "p1", Quantity: 1}}
		totals := ComputeTotals(cart, catalog, rates(20, 150))

		assert.True(t, totals.TaxableBase.IsZero())
		assert.True(t, totals.TaxAmount.IsZero())
		assert.True(t, totals.Total.IsZero())
		// The raw discount amount is still reported unclamped.
		assert.True(t, totals.DiscountAmount.Equal(decimal.NewFromFloat(1.95)), totals.DiscountAmount.String())
	})

	t.Run("missing products contribute nothing", func(t *testing.T) {
		cart := Cart{{ProductID: "ghost", Quantity: 5}, {ProductID: "p2", Quantity: 1}}
		totals := ComputeTotals(cart, catalog, rates(0, 0))

		assert.True(t, totals.Subtotal.Equal(decimal.NewFromFloat(1.1)), totals.Subtotal.String())
	})

	t.Run("negative rates pass through unbounded", func(t *testing.T) {
		cart := Cart{{ProductID: "p2", Quantity: 1}} // 1.10
		totals := ComputeTotals(cart, catalog, rates(0, -100))

		// A negative discount inflates the base instead of erroring.
		assert.True(t, totals.TaxableBase.Equal(decimal.NewFromFloat(2.2)), totals.TaxableBase.String())
	})
}
