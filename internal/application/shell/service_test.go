package shell

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/comptoir/backend/internal/domain/bakery"
	"github.com/comptoir/backend/internal/infrastructure/persistence"
)

func newTestService() (*Service, *persistence.MemoryStore) {
	store := persistence.NewMemoryStore()
	svc := NewService(
		persistence.NewTabRepository(store),
		persistence.NewCatalogRepository(store),
		persistence.NewCartRepository(store),
		persistence.NewRateRepository(store),
		persistence.NewEventRepository(store),
		persistence.NewCaseRepository(store),
	)
	return svc, store
}

func TestActiveTabDefaults(t *testing.T) {
	svc, _ := newTestService()
	assert.Equal(t, "dashboard", svc.ActiveTab(context.Background()).ActiveTab)
}

func TestSetActiveTab(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	tab, err := svc.SetActiveTab(ctx, "events")
	require.NoError(t, err)
	assert.Equal(t, "events", tab.ActiveTab)
	assert.Equal(t, "events", svc.ActiveTab(ctx).ActiveTab)

	_, err = svc.SetActiveTab(ctx, "settings")
	assert.Error(t, err)
	assert.Equal(t, "events", svc.ActiveTab(ctx).ActiveTab)
}

func TestDashboard(t *testing.T) {
	svc, store := newTestService()
	ctx := context.Background()

	// Empty cart, default demo events (no sales), two demo cases.
	dash := svc.Dashboard(ctx)
	assert.Equal(t, "0", dash.RevenueTTC)
	assert.Zero(t, dash.TicketsSold)
	assert.Equal(t, 2, dash.ActiveCases)
	assert.Equal(t, "dashboard", dash.ActiveTab)

	// Seed a cart and some sales, then read again.
	cartRepo := persistence.NewCartRepository(store)
	cartRepo.Replace(ctx, bakery.Cart{{ProductID: "p1", Quantity: 2}})

	eventRepo := persistence.NewEventRepository(store)
	events := eventRepo.List(ctx)
	events.FindByID("e1").IncrementSold()
	events.FindByID("e2").IncrementSold()
	eventRepo.Replace(ctx, events)

	dash = svc.Dashboard(ctx)
	// 2*1.30 with 5.5% VAT: 2.60 + 0.143 = 2.743
	assert.Equal(t, "2.743", dash.RevenueTTC)
	assert.Equal(t, 2, dash.TicketsSold)
	assert.Contains(t, dash.RevenueTTCFormatted, "€")
}
