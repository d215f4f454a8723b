package persistence

import (
	"context"

	"github.com/comptoir/backend/internal/domain/bakery"
	"github.com/comptoir/backend/internal/domain/casefile"
	"github.com/comptoir/backend/internal/domain/shell"
	"github.com/comptoir/backend/internal/domain/ticketing"
)

// Store keys, one per logical collection. The names are part of the
// persisted format; renaming one orphans existing state files.
const (
	keyBakeryProducts = "bakery.products"
	keyBakeryCart     = "bakery.cart"
	keyBakeryVAT      = "bakery.tva"
	keyBakeryDiscount = "bakery.remise"
	keyEvents         = "events.list"
	keyCases          = "cases.list"
	keyActiveTab      = "shell.tab"
)

// CatalogRepository implements bakery.CatalogRepository on the store.
type CatalogRepository struct {
	col *Collection[bakery.Product]
}

// NewCatalogRepository creates the product catalog repository
func NewCatalogRepository(store KeyValueStore) *CatalogRepository {
	return &CatalogRepository{col: NewCollection(store, keyBakeryProducts, bakery.DefaultCatalog())}
}

func (r *CatalogRepository) List(ctx context.Context) bakery.Catalog {
	return bakery.Catalog(r.col.List(ctx))
}

func (r *CatalogRepository) Replace(ctx context.Context, catalog bakery.Catalog) {
	r.col.Replace(ctx, catalog)
}

// CartRepository implements bakery.CartRepository on the store.
type CartRepository struct {
	col *Collection[bakery.CartLine]
}

// NewCartRepository creates the cart repository; a fresh cart is empty
func NewCartRepository(store KeyValueStore) *CartRepository {
	return &CartRepository{col: NewCollection[bakery.CartLine](store, keyBakeryCart, nil)}
}

func (r *CartRepository) List(ctx context.Context) bakery.Cart {
	return bakery.Cart(r.col.List(ctx))
}

func (r *CartRepository) Replace(ctx context.Context, cart bakery.Cart) {
	r.col.Replace(ctx, cart)
}

// RateRepository implements bakery.RateRepository. The VAT and discount
// rates live under two separate keys and load/save independently.
type RateRepository struct {
	store KeyValueStore
}

// NewRateRepository creates the rate repository
func NewRateRepository(store KeyValueStore) *RateRepository {
	return &RateRepository{store: store}
}

func (r *RateRepository) Rates(ctx context.Context) bakery.TaxConfig {
	cfg := bakery.DefaultTaxConfig()
	r.store.Load(ctx, keyBakeryVAT, &cfg.VATRatePercent)
	r.store.Load(ctx, keyBakeryDiscount, &cfg.DiscountRatePercent)
	return cfg
}

func (r *RateRepository) SetRates(ctx context.Context, cfg bakery.TaxConfig) {
	r.store.Save(ctx, keyBakeryVAT, cfg.VATRatePercent)
	r.store.Save(ctx, keyBakeryDiscount, cfg.DiscountRatePercent)
}

// EventRepository implements ticketing.EventRepository on the store.
type EventRepository struct {
	col *Collection[ticketing.Event]
}

// NewEventRepository creates the event repository
func NewEventRepository(store KeyValueStore) *EventRepository {
	return &EventRepository{col: NewCollection(store, keyEvents, ticketing.DefaultEvents())}
}

func (r *EventRepository) List(ctx context.Context) ticketing.List {
	return ticketing.List(r.col.List(ctx))
}

func (r *EventRepository) Replace(ctx context.Context, events ticketing.List) {
	r.col.Replace(ctx, events)
}

// CaseRepository implements casefile.CaseRepository on the store.
type CaseRepository struct {
	col *Collection[casefile.Case]
}

// NewCaseRepository creates the case repository
func NewCaseRepository(store KeyValueStore) *CaseRepository {
	return &CaseRepository{col: NewCollection(store, keyCases, casefile.DefaultCases())}
}

func (r *CaseRepository) List(ctx context.Context) casefile.List {
	return casefile.List(r.col.List(ctx))
}

func (r *CaseRepository) Replace(ctx context.Context, cases casefile.List) {
	r.col.Replace(ctx, cases)
}

// TabRepository implements shell.TabRepository on the store.
type TabRepository struct {
	store KeyValueStore
}

// NewTabRepository creates the active-tab repository
func NewTabRepository(store KeyValueStore) *TabRepository {
	return &TabRepository{store: store}
}

func (r *TabRepository) ActiveTab(ctx context.Context) shell.Tab {
	var raw string
	if !r.store.Load(ctx, keyActiveTab, &raw) {
		return shell.DefaultTab
	}
	tab, err := shell.ParseTab(raw)
	if err != nil {
		return shell.DefaultTab
	}
	return tab
}

func (r *TabRepository) SetActiveTab(ctx context.Context, tab shell.Tab) {
	r.store.Save(ctx, keyActiveTab, string(tab))
}
