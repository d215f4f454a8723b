package bakery

import "context"

// The bakery module owns three independently persisted slices of state.
// Repositories follow the persisted-store contract: loads fall back to the
// collection's defaults and saves are best-effort, so neither surfaces an
// error to the caller.

// CatalogRepository persists the product catalog.
type CatalogRepository interface {
	List(ctx context.Context) Catalog
	Replace(ctx context.Context, catalog Catalog)
}

// CartRepository persists the current cart.
type CartRepository interface {
	List(ctx context.Context) Cart
	Replace(ctx context.Context, cart Cart)
}

// RateRepository persists the VAT and discount rates. The two rates live
// under separate store keys and are loaded/saved independently.
type RateRepository interface {
	Rates(ctx context.Context) TaxConfig
	SetRates(ctx context.Context, cfg TaxConfig)
}
