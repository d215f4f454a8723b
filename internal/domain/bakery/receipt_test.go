package bakery

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderReceiptText(t *testing.T) {
	catalog := testCatalog()
	cart := Cart{{ProductID: "p1", Quantity: 2}, {ProductID: "p2", Quantity: 1}}
	cfg := rates(5.5, 10)
	totals := ComputeTotals(cart, catalog, cfg)
	ts := time.Date(2025, time.March, 14, 9, 26, 53, 0, time.UTC)

	text := RenderReceiptText(cart, catalog, totals, cfg, ts)
	lines := strings.Split(text, "\n")

	require.GreaterOrEqual(t, len(lines), 9)
	assert.Equal(t, "Ticket Boulangerie", lines[0])
	assert.Equal(t, "14/03/2025 09:26:53", lines[1])
	assert.Empty(t, lines[2])

	assert.Contains(t, lines[3], "Baguette x2")
	assert.Contains(t, lines[4], "Croissant x1")
	assert.Empty(t, lines[5])

	assert.True(t, strings.HasPrefix(lines[6], "Sous-total: "))
	assert.True(t, strings.HasPrefix(lines[7], "Remise (10%): -"))
	assert.True(t, strings.HasPrefix(lines[8], "Base TVA: "))
	assert.True(t, strings.HasPrefix(lines[9], "TVA (5.5%): "))
	assert.True(t, strings.HasPrefix(lines[10], "TOTAL TTC: "))
}

func TestRenderReceiptTextSkipsMissingProducts(t *testing.T) {
	catalog := testCatalog()
	cart := Cart{{ProductID: "ghost", Quantity: 3}}
	cfg := DefaultTaxConfig()
	totals := ComputeTotals(cart, catalog, cfg)

	text := RenderReceiptText(cart, catalog, totals, cfg, time.Now())

	assert.NotContains(t, text, "ghost")
	assert.Contains(t, text, "TOTAL TTC: ")
}
