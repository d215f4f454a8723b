package bakery

import (
	"context"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/comptoir/backend/internal/domain/bakery"
	"github.com/comptoir/backend/internal/domain/shared"
	"github.com/comptoir/backend/internal/domain/shared/valueobject"
	"github.com/comptoir/backend/internal/infrastructure/export"
	"github.com/comptoir/backend/internal/infrastructure/printing"
)

// Service handles the bakery module: catalog, cart, rates, receipt and
// exports. Every operation loads its collection, mutates it and writes it
// back within the same call; there is a single logical writer per key.
type Service struct {
	catalogRepo bakery.CatalogRepository
	cartRepo    bakery.CartRepository
	rateRepo    bakery.RateRepository
	renderer    printing.PDFRenderer
	now         func() time.Time
}

// NewService creates a bakery Service
func NewService(
	catalogRepo bakery.CatalogRepository,
	cartRepo bakery.CartRepository,
	rateRepo bakery.RateRepository,
	renderer printing.PDFRenderer,
) *Service {
	return &Service{
		catalogRepo: catalogRepo,
		cartRepo:    cartRepo,
		rateRepo:    rateRepo,
		renderer:    renderer,
		now:         time.Now,
	}
}

// Catalog lists the products, optionally filtered by a case-insensitive
// name search term.
func (s *Service) Catalog(ctx context.Context, search string) []ProductResponse {
	catalog := s.catalogRepo.List(ctx).FilterByName(search)
	out := make([]ProductResponse, 0, len(catalog))
	for _, p := range catalog {
		out = append(out, toProductResponse(p))
	}
	return out
}

// AddProduct appends a new product to the catalog
func (s *Service) AddProduct(ctx context.Context, req CreateProductRequest) (*ProductResponse, error) {
	price, err := shared.ParseDecimal("price", req.Price)
	if err != nil {
		return nil, err
	}
	product, err := bakery.NewProduct(strings.TrimSpace(req.Name), price)
	if err != nil {
		return nil, err
	}

	catalog := s.catalogRepo.List(ctx)
	catalog = append(catalog, *product)
	s.catalogRepo.Replace(ctx, catalog)

	resp := toProductResponse(*product)
	return &resp, nil
}

// ImportCatalog replaces the catalog wholesale with a JSON array payload.
// A payload that is not a JSON array leaves the catalog unchanged.
func (s *Service) ImportCatalog(ctx context.Context, raw []byte) (int, error) {
	products, err := export.DecodeArray[bakery.Product](raw)
	if err != nil {
		return 0, err
	}
	s.catalogRepo.Replace(ctx, products)
	return len(products), nil
}

// ExportCatalogCSV renders the catalog as delimited text
func (s *Service) ExportCatalogCSV(ctx context.Context) string {
	catalog := s.catalogRepo.List(ctx)
	rows := make([]export.Row, 0, len(catalog))
	for _, p := range catalog {
		rows = append(rows, export.Row{
			{Name: "id", Value: p.ID},
			{Name: "name", Value: p.Name},
			{Name: "price", Value: p.Price.InexactFloat64()},
		})
	}
	return export.Encode(rows)
}

// Cart returns the cart lines joined with the catalog, plus totals
func (s *Service) Cart(ctx context.Context) CartResponse {
	catalog := s.catalogRepo.List(ctx)
	cart := s.cartRepo.List(ctx)
	cfg := s.rateRepo.Rates(ctx)

	lines := make([]CartLineResponse, 0, len(cart))
	for _, line := range cart {
		resp := CartLineResponse{
			ProductID: line.ProductID,
			Quantity:  line.Quantity,
		}
		if p := catalog.FindByID(line.ProductID); p != nil {
			lineTotal := valueobject.NewMoneyEUR(p.Price).MultiplyByInt(int64(line.Quantity))
			resp.Name = p.Name
			resp.LineTotal = lineTotal.Amount().String()
			resp.LineTotalFormatted = lineTotal.Format()
		} else {
			zero := valueobject.ZeroEUR()
			resp.LineTotal = zero.Amount().String()
			resp.LineTotalFormatted = zero.Format()
		}
		lines = append(lines, resp)
	}

	return CartResponse{
		Lines:  lines,
		Totals: toTotalsResponse(bakery.ComputeTotals(cart, catalog, cfg)),
	}
}

// AddToCart increments the line for the product or appends a new one.
// Product IDs absent from the catalog are tolerated.
func (s *Service) AddToCart(ctx context.Context, productID string) {
	cart := s.cartRepo.List(ctx)
	cart.Add(productID)
	s.cartRepo.Replace(ctx, cart)
}

// RemoveFromCart deletes the line for the product, if present
func (s *Service) RemoveFromCart(ctx context.Context, productID string) {
	cart := s.cartRepo.List(ctx)
	cart.Remove(productID)
	s.cartRepo.Replace(ctx, cart)
}

// ClearCart empties the cart
func (s *Service) ClearCart(ctx context.Context) {
	s.cartRepo.Replace(ctx, bakery.Cart{})
}

// Rates returns the current tax configuration
func (s *Service) Rates(ctx context.Context) RatesResponse {
	cfg := s.rateRepo.Rates(ctx)
	return RatesResponse{
		VATRatePercent:      cfg.VATRatePercent.String(),
		DiscountRatePercent: cfg.DiscountRatePercent.String(),
	}
}

// UpdateRates replaces both rates. Values are parsed but deliberately not
// bounds-checked: negative and >100 rates are stored as-is.
func (s *Service) UpdateRates(ctx context.Context, req UpdateRatesRequest) (*RatesResponse, error) {
	vat, err := shared.ParseDecimal("vat_rate_percent", req.VATRatePercent)
	if err != nil {
		return nil, err
	}
	discount, err := shared.ParseDecimal("discount_rate_percent", req.DiscountRatePercent)
	if err != nil {
		return nil, err
	}

	cfg := bakery.TaxConfig{VATRatePercent: vat, DiscountRatePercent: discount}
	s.rateRepo.SetRates(ctx, cfg)

	resp := s.Rates(ctx)
	return &resp, nil
}

// Totals computes the derived totals of the current cart
func (s *Service) Totals(ctx context.Context) TotalsResponse {
	catalog := s.catalogRepo.List(ctx)
	cart := s.cartRepo.List(ctx)
	cfg := s.rateRepo.Rates(ctx)
	return toTotalsResponse(bakery.ComputeTotals(cart, catalog, cfg))
}

// ReceiptText renders the current cart as the plain-text receipt
func (s *Service) ReceiptText(ctx context.Context) string {
	catalog := s.catalogRepo.List(ctx)
	cart := s.cartRepo.List(ctx)
	cfg := s.rateRepo.Rates(ctx)
	totals := bakery.ComputeTotals(cart, catalog, cfg)
	return bakery.RenderReceiptText(cart, catalog, totals, cfg, s.now())
}

// ReceiptPrintView wraps the receipt text in an HTML page that opens the
// print dialog when loaded
func (s *Service) ReceiptPrintView(ctx context.Context) string {
	return printing.PrintViewHTML(s.ReceiptText(ctx))
}

// ReceiptPDF lays the receipt text out as a paginated document and
// renders it to PDF
func (s *Service) ReceiptPDF(ctx context.Context) ([]byte, error) {
	text := s.ReceiptText(ctx)
	pages := printing.ReceiptPaginator().Paginate(strings.Split(text, "\n"))
	result, err := s.renderer.Render(ctx, &printing.RenderRequest{
		HTML:  printing.DocumentHTML("Ticket Boulangerie", pages),
		Title: "Ticket Boulangerie",
	})
	if err != nil {
		return nil, err
	}
	return result.PDFData, nil
}

// ExportCartCSV renders the cart as delimited text, one row per line
// joined with its product. Lines with missing products are skipped, not
// exported as empty rows.
func (s *Service) ExportCartCSV(ctx context.Context) string {
	catalog := s.catalogRepo.List(ctx)
	cart := s.cartRepo.List(ctx)
	rows := make([]export.Row, 0, len(cart))
	for _, line := range cart {
		p := catalog.FindByID(line.ProductID)
		if p == nil {
			continue
		}
		lineTotal := p.Price.Mul(decimal.NewFromInt(int64(line.Quantity)))
		rows = append(rows, export.Row{
			{Name: "produit", Value: p.Name},
			{Name: "quantite", Value: line.Quantity},
			{Name: "prix_unitaire", Value: p.Price.InexactFloat64()},
			{Name: "total_ht", Value: lineTotal.InexactFloat64()},
		})
	}
	return export.Encode(rows)
}

func toProductResponse(p bakery.Product) ProductResponse {
	return ProductResponse{
		ID:             p.ID,
		Name:           p.Name,
		Price:          p.Price.String(),
		PriceFormatted: valueobject.NewMoneyEUR(p.Price).Format(),
	}
}

func toTotalsResponse(t bakery.Totals) TotalsResponse {
	format := func(d decimal.Decimal) string {
		return valueobject.NewMoneyEUR(d).Format()
	}
	return TotalsResponse{
		Subtotal:                t.Subtotal.String(),
		DiscountAmount:          t.DiscountAmount.String(),
		TaxableBase:             t.TaxableBase.String(),
		TaxAmount:               t.TaxAmount.String(),
		Total:                   t.Total.String(),
		SubtotalFormatted:       format(t.Subtotal),
		DiscountAmountFormatted: format(t.DiscountAmount),
		TaxableBaseFormatted:    format(t.TaxableBase),
		TaxAmountFormatted:      format(t.TaxAmount),
		TotalFormatted:          format(t.Total),
	}
}
