package bakery

// CreateProductRequest is the input for adding a catalog product. The
// price arrives as free-form text and is parsed with explicit error
// reporting.
type CreateProductRequest struct {
	Name  string `json:"name" binding:"required"`
	Price string `json:"price" binding:"required"`
}

// ProductResponse is the API shape of a catalog product.
type ProductResponse struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	Price          string `json:"price"`
	PriceFormatted string `json:"price_formatted"`
}

// AddToCartRequest identifies the product to add.
type AddToCartRequest struct {
	ProductID string `json:"product_id" binding:"required"`
}

// CartLineResponse is one cart line joined with its catalog product.
// Lines whose product is missing from the catalog are reported with an
// empty name and a zero line total.
type CartLineResponse struct {
	ProductID          string `json:"product_id"`
	Name               string `json:"name"`
	Quantity           int    `json:"quantity"`
	LineTotal          string `json:"line_total"`
	LineTotalFormatted string `json:"line_total_formatted"`
}

// CartResponse is the cart with its derived totals.
type CartResponse struct {
	Lines  []CartLineResponse `json:"lines"`
	Totals TotalsResponse     `json:"totals"`
}

// TotalsResponse carries the four-stage derived totals, both as raw
// decimal strings (for arithmetic-faithful clients) and formatted for
// display.
type TotalsResponse struct {
	Subtotal                string `json:"subtotal"`
	DiscountAmount          string `json:"discount_amount"`
	TaxableBase             string `json:"taxable_base"`
	TaxAmount               string `json:"tax_amount"`
	Total                   string `json:"total"`
	SubtotalFormatted       string `json:"subtotal_formatted"`
	DiscountAmountFormatted string `json:"discount_amount_formatted"`
	TaxableBaseFormatted    string `json:"taxable_base_formatted"`
	TaxAmountFormatted      string `json:"tax_amount_formatted"`
	TotalFormatted          string `json:"total_formatted"`
}

// RatesResponse is the API shape of the tax configuration.
type RatesResponse struct {
	VATRatePercent      string `json:"vat_rate_percent"`
	DiscountRatePercent string `json:"discount_rate_percent"`
}

// UpdateRatesRequest replaces both rates. Values arrive as text and are
// parsed with explicit error reporting; no bounds are enforced.
type UpdateRatesRequest struct {
	VATRatePercent      string `json:"vat_rate_percent" binding:"required"`
	DiscountRatePercent string `json:"discount_rate_percent" binding:"required"`
}
