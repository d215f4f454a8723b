package ticketing

import (
	"strings"

	"github.com/comptoir/backend/internal/domain/shared"
)

// Event is a tracked event with a capacity and a running sold counter.
// Sold is not capped at capacity: overselling is allowed and only the
// displayed remaining count clamps at zero.
type Event struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	Date     string `json:"date"` // ISO date (yyyy-mm-dd)
	Capacity int    `json:"capacity"`
	Sold     int    `json:"sold"`
}

// NewEvent creates an event with a fresh ID and a zero sold counter.
// Title and date are both required.
func NewEvent(title, date string, capacity int) (*Event, error) {
	if strings.TrimSpace(title) == "" {
		return nil, shared.NewDomainError("INVALID_TITLE", "Event title is required")
	}
	if strings.TrimSpace(date) == "" {
		return nil, shared.NewDomainError("INVALID_DATE", "Event date is required")
	}
	return &Event{
		ID:       shared.NewID(),
		Title:    title,
		Date:     date,
		Capacity: capacity,
	}, nil
}

// IncrementSold records one more sold ticket. There is no capacity cap.
func (e *Event) IncrementSold() {
	e.Sold++
}

// Remaining is the displayed remaining-ticket count, clamped at zero for
// oversold events.
func (e *Event) Remaining() int {
	if r := e.Capacity - e.Sold; r > 0 {
		return r
	}
	return 0
}

// List is the event collection owned by the ticketing module.
type List []Event

// FindByID returns the event with the given ID, or nil when absent.
func (l List) FindByID(id string) *Event {
	for i := range l {
		if l[i].ID == id {
			return &l[i]
		}
	}
	return nil
}

// TotalSold sums the sold counters across the list.
func (l List) TotalSold() int {
	total := 0
	for _, e := range l {
		total += e.Sold
	}
	return total
}

// DefaultEvents returns the demo events a fresh installation starts with.
func DefaultEvents() List {
	return List{
		{ID: "e1", Title: "Concert indie – Café des Arts", Date: "2025-11-15", Capacity: 120},
		{ID: "e2", Title: "Soirée électro – Le Warehouse", Date: "2025-12-05", Capacity: 350},
	}
}
