package bakery

import (
	"strings"

	"github.com/comptoir/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// Product is a catalog entry. Products are never mutated in place: the
// catalog is replaced wholesale on every change, mirroring the persisted
// JSON collection it is loaded from. There is no delete path for products,
// only for cart lines.
type Product struct {
	ID    string          `json:"id"`
	Name  string          `json:"name"`
	Price decimal.Decimal `json:"price"`
}

// NewProduct creates a catalog product with a fresh ID.
// The name must not be blank; the price has already been through
// shared.ParseDecimal at the input boundary and carries no further bounds.
func NewProduct(name string, price decimal.Decimal) (*Product, error) {
	if strings.TrimSpace(name) == "" {
		return nil, shared.NewDomainError("INVALID_NAME", "Product name is required")
	}
	return &Product{
		ID:    shared.NewID(),
		Name:  name,
		Price: price,
	}, nil
}

// Catalog is the product list of the bakery module.
type Catalog []Product

// FindByID returns the product with the given ID, or nil when absent.
func (c Catalog) FindByID(id string) *Product {
	for i := range c {
		if c[i].ID == id {
			return &c[i]
		}
	}
	return nil
}

// FilterByName returns the products whose name contains the given term,
// case-insensitively. An empty term returns the whole catalog.
func (c Catalog) FilterByName(term string) Catalog {
	if strings.TrimSpace(term) == "" {
		return c
	}
	term = strings.ToLower(term)
	out := make(Catalog, 0, len(c))
	for _, p := range c {
		if strings.Contains(strings.ToLower(p.Name), term) {
			out = append(out, p)
		}
	}
	return out
}

// DefaultCatalog returns the demo catalog a fresh installation starts with.
func DefaultCatalog() Catalog {
	return Catalog{
		{ID: "p1", Name: "Baguette tradition", Price: decimal.NewFromFloat(1.3)},
		{ID: "p2", Name: "Pain complet", Price: decimal.NewFromFloat(2.4)},
		{ID: "p3", Name: "Croissant", Price: decimal.NewFromFloat(1.1)},
	}
}
