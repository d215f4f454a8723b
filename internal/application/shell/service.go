package shell

import (
	"context"

	"github.com/comptoir/backend/internal/domain/bakery"
	"github.com/comptoir/backend/internal/domain/casefile"
	"github.com/comptoir/backend/internal/domain/shared/valueobject"
	"github.com/comptoir/backend/internal/domain/shell"
	"github.com/comptoir/backend/internal/domain/ticketing"
)

// TabResponse is the API shape of the shell's active tab.
type TabResponse struct {
	ActiveTab string `json:"active_tab"`
}

// SetTabRequest selects the active tab.
type SetTabRequest struct {
	Tab string `json:"tab" binding:"required"`
}

// DashboardResponse carries the cross-module summary shown on the home
// tab. Revenue reflects the current cart, since the till keeps no sale
// history.
type DashboardResponse struct {
	RevenueTTC          string `json:"revenue_ttc"`
	RevenueTTCFormatted string `json:"revenue_ttc_formatted"`
	TicketsSold         int    `json:"tickets_sold"`
	ActiveCases         int    `json:"active_cases"`
	ActiveTab           string `json:"active_tab"`
}

// Service is the shell: it owns the active tab and reads the other
// modules' collections for the dashboard summary, without mutating them.
type Service struct {
	tabRepo     shell.TabRepository
	catalogRepo bakery.CatalogRepository
	cartRepo    bakery.CartRepository
	rateRepo    bakery.RateRepository
	eventRepo   ticketing.EventRepository
	caseRepo    casefile.CaseRepository
}

// NewService creates the shell Service
func NewService(
	tabRepo shell.TabRepository,
	catalogRepo bakery.CatalogRepository,
	cartRepo bakery.CartRepository,
	rateRepo bakery.RateRepository,
	eventRepo ticketing.EventRepository,
	caseRepo casefile.CaseRepository,
) *Service {
	return &Service{
		tabRepo:     tabRepo,
		catalogRepo: catalogRepo,
		cartRepo:    cartRepo,
		rateRepo:    rateRepo,
		eventRepo:   eventRepo,
		caseRepo:    caseRepo,
	}
}

// ActiveTab returns the persisted active tab
func (s *Service) ActiveTab(ctx context.Context) TabResponse {
	return TabResponse{ActiveTab: string(s.tabRepo.ActiveTab(ctx))}
}

// SetActiveTab persists the tab selection
func (s *Service) SetActiveTab(ctx context.Context, name string) (*TabResponse, error) {
	tab, err := shell.ParseTab(name)
	if err != nil {
		return nil, err
	}
	s.tabRepo.SetActiveTab(ctx, tab)
	return &TabResponse{ActiveTab: string(tab)}, nil
}

// Dashboard assembles the cross-module summary
func (s *Service) Dashboard(ctx context.Context) DashboardResponse {
	totals := bakery.ComputeTotals(
		s.cartRepo.List(ctx),
		s.catalogRepo.List(ctx),
		s.rateRepo.Rates(ctx),
	)
	return DashboardResponse{
		RevenueTTC:          totals.Total.String(),
		RevenueTTCFormatted: valueobject.NewMoneyEUR(totals.Total).Format(),
		TicketsSold:         s.eventRepo.List(ctx).TotalSold(),
		ActiveCases:         len(s.caseRepo.List(ctx)),
		ActiveTab:           string(s.tabRepo.ActiveTab(ctx)),
	}
}
