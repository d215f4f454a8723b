package bakery

import (
	"fmt"
	"strings"
	"time"

	"github.com/comptoir/backend/internal/domain/shared/valueobject"
	"github.com/shopspring/decimal"
)

// receiptTimeLayout is the fr-FR date/time rendering printed on receipts.
const receiptTimeLayout = "02/01/2006 15:04:05"

func money(d decimal.Decimal) string {
	return valueobject.NewMoneyEUR(d).Format()
}

// RenderReceiptText formats a cart and its totals into the plain-text
// receipt: header line, timestamp, one line per item, a blank line, then
// the five labeled totals. Both the print view and the PDF document are
// laid out from this text.
func RenderReceiptText(cart Cart, catalog Catalog, totals Totals, cfg TaxConfig, ts time.Time) string {
	var b strings.Builder
	b.WriteString("Ticket Boulangerie\n")
	b.WriteString(ts.Format(receiptTimeLayout))
	b.WriteString("\n\n")

	for _, line := range cart {
		p := catalog.FindByID(line.ProductID)
		if p == nil {
			continue
		}
		lineTotal := valueobject.NewMoneyEUR(p.Price).MultiplyByInt(int64(line.Quantity))
		fmt.Fprintf(&b, "%s x%d — %s\n", p.Name, line.Quantity, lineTotal.Format())
	}

	b.WriteString("\n")
	fmt.Fprintf(&b, "Sous-total: %s\n", money(totals.Subtotal))
	fmt.Fprintf(&b, "Remise (%s%%): -%s\n", cfg.DiscountRatePercent.String(), money(totals.DiscountAmount))
	fmt.Fprintf(&b, "Base TVA: %s\n", money(totals.TaxableBase))
	fmt.Fprintf(&b, "TVA (%s%%): %s\n", cfg.VATRatePercent.String(), money(totals.TaxAmount))
	fmt.Fprintf(&b, "TOTAL TTC: %s", money(totals.Total))
	return b.String()
}
