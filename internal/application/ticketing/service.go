package ticketing

import (
	"context"
	"strings"
	"time"

	"github.com/comptoir/backend/internal/domain/shared"
	"github.com/comptoir/backend/internal/domain/ticketing"
	"github.com/comptoir/backend/internal/infrastructure/export"
	"github.com/comptoir/backend/internal/infrastructure/scanner"
)

// Service handles the ticketing module: event tracking, manual and scanned
// sales, and export.
type Service struct {
	repo    ticketing.EventRepository
	scanner scanner.TicketScanner
}

// NewService creates a ticketing Service
func NewService(repo ticketing.EventRepository, sc scanner.TicketScanner) *Service {
	return &Service{repo: repo, scanner: sc}
}

// Events lists the tracked events
func (s *Service) Events(ctx context.Context) []EventResponse {
	events := s.repo.List(ctx)
	out := make([]EventResponse, 0, len(events))
	for _, e := range events {
		out = append(out, toEventResponse(e))
	}
	return out
}

// AddEvent tracks a new event
func (s *Service) AddEvent(ctx context.Context, req CreateEventRequest) (*EventResponse, error) {
	capacity, err := shared.ParseCount("capacity", req.Capacity)
	if err != nil {
		return nil, err
	}
	event, err := ticketing.NewEvent(strings.TrimSpace(req.Title), strings.TrimSpace(req.Date), capacity)
	if err != nil {
		return nil, err
	}

	events := s.repo.List(ctx)
	events = append(events, *event)
	s.repo.Replace(ctx, events)

	resp := toEventResponse(*event)
	return &resp, nil
}

// RemoveEvent stops tracking an event. Removing an absent event is a
// no-op.
func (s *Service) RemoveEvent(ctx context.Context, id string) {
	events := s.repo.List(ctx)
	out := events[:0]
	for _, e := range events {
		if e.ID != id {
			out = append(out, e)
		}
	}
	s.repo.Replace(ctx, out)
}

// RecordSale increments the sold counter for an event by one. There is no
// capacity cap: oversold events keep counting.
func (s *Service) RecordSale(ctx context.Context, id string) (*EventResponse, error) {
	events := s.repo.List(ctx)
	event := events.FindByID(id)
	if event == nil {
		return nil, shared.ErrNotFound
	}
	event.IncrementSold()
	s.repo.Replace(ctx, events)

	resp := toEventResponse(*event)
	return &resp, nil
}

// Scan asks the scanner for a ticket read and records a sale when the
// read is valid. An invalid read leaves the counter untouched and is not
// an error.
func (s *Service) Scan(ctx context.Context, id string) (*ScanResponse, error) {
	events := s.repo.List(ctx)
	event := events.FindByID(id)
	if event == nil {
		return nil, shared.ErrNotFound
	}

	result, err := s.scanner.RequestScan(ctx, id)
	if err != nil {
		return nil, err
	}
	if result.Valid {
		event.IncrementSold()
		s.repo.Replace(ctx, events)
	}

	return &ScanResponse{
		EventID:   id,
		Valid:     result.Valid,
		Sold:      event.Sold,
		Remaining: event.Remaining(),
		ScannedAt: result.ScannedAt.Format(time.RFC3339),
	}, nil
}

// ExportCSV renders the event list as delimited text
func (s *Service) ExportCSV(ctx context.Context) string {
	events := s.repo.List(ctx)
	rows := make([]export.Row, 0, len(events))
	for _, e := range events {
		rows = append(rows, export.Row{
			{Name: "id", Value: e.ID},
			{Name: "title", Value: e.Title},
			{Name: "date", Value: e.Date},
			{Name: "capacity", Value: e.Capacity},
			{Name: "sold", Value: e.Sold},
		})
	}
	return export.Encode(rows)
}

func toEventResponse(e ticketing.Event) EventResponse {
	return EventResponse{
		ID:        e.ID,
		Title:     e.Title,
		Date:      e.Date,
		Capacity:  e.Capacity,
		Sold:      e.Sold,
		Remaining: e.Remaining(),
	}
}
