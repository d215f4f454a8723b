package shell

import (
	"context"

	"github.com/comptoir/backend/internal/domain/shared"
)

// Tab identifies which module the shell currently shows. The shell holds a
// single active-tab value; modules never communicate with each other.
type Tab string

const (
	TabDashboard Tab = "dashboard"
	TabBakery    Tab = "bakery"
	TabEvents    Tab = "events"
	TabCases     Tab = "cases"
)

// DefaultTab is the tab shown on a fresh session.
const DefaultTab = TabDashboard

// ParseTab validates a tab name.
func ParseTab(s string) (Tab, error) {
	switch Tab(s) {
	case TabDashboard, TabBakery, TabEvents, TabCases:
		return Tab(s), nil
	}
	return "", shared.NewDomainError("INVALID_TAB", "Unknown tab: "+s)
}

// TabRepository persists the active tab across sessions.
type TabRepository interface {
	ActiveTab(ctx context.Context) Tab
	SetActiveTab(ctx context.Context, tab Tab)
}
