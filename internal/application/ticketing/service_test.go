package ticketing

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/comptoir/backend/internal/domain/shared"
	"github.com/comptoir/backend/internal/infrastructure/persistence"
	"github.com/comptoir/backend/internal/infrastructure/scanner"
)

type fakeScanner struct {
	valid bool
	err   error
}

func (f *fakeScanner) RequestScan(_ context.Context, eventID string) (scanner.Result, error) {
	if f.err != nil {
		return scanner.Result{}, f.err
	}
	return scanner.Result{EventID: eventID, Valid: f.valid, ScannedAt: time.Now()}, nil
}

func newTestService(sc scanner.TicketScanner) *Service {
	if sc == nil {
		sc = &fakeScanner{valid: true}
	}
	return NewService(persistence.NewEventRepository(persistence.NewMemoryStore()), sc)
}

func TestEventsIncludeRemaining(t *testing.T) {
	svc := newTestService(nil)

	events := svc.Events(context.Background())
	require.Len(t, events, 2)
	assert.Equal(t, 120, events[0].Capacity)
	assert.Equal(t, 120, events[0].Remaining)
}

func TestAddEvent(t *testing.T) {
	svc := newTestService(nil)
	ctx := context.Background()

	created, err := svc.AddEvent(ctx, CreateEventRequest{Title: "Concert jazz", Date: "2025-10-01", Capacity: "80"})
	require.NoError(t, err)
	assert.Equal(t, 80, created.Capacity)
	assert.Len(t, svc.Events(ctx), 3)

	// Capacity is optional and defaults to zero.
	created, err = svc.AddEvent(ctx, CreateEventRequest{Title: "Apéro quartier", Date: "2025-10-02"})
	require.NoError(t, err)
	assert.Zero(t, created.Capacity)

	_, err = svc.AddEvent(ctx, CreateEventRequest{Title: "Mauvaise capacité", Date: "2025-10-03", Capacity: "-5"})
	assert.Error(t, err)
}

func TestRemoveEvent(t *testing.T) {
	svc := newTestService(nil)
	ctx := context.Background()

	svc.RemoveEvent(ctx, "e1")
	events := svc.Events(ctx)
	require.Len(t, events, 1)
	assert.Equal(t, "e2", events[0].ID)

	// Removing an absent event is a no-op.
	svc.RemoveEvent(ctx, "ghost")
	assert.Len(t, svc.Events(ctx), 1)
}

func TestRecordSale(t *testing.T) {
	svc := newTestService(nil)
	ctx := context.Background()

	event, err := svc.RecordSale(ctx, "e1")
	require.NoError(t, err)
	assert.Equal(t, 1, event.Sold)
	assert.Equal(t, 119, event.Remaining)

	// The increment is persisted.
	assert.Equal(t, 1, svc.Events(ctx)[0].Sold)

	_, err = svc.RecordSale(ctx, "ghost")
	assert.ErrorIs(t, err, shared.ErrNotFound)
}

func TestScanValidRecordsSale(t *testing.T) {
	svc := newTestService(&fakeScanner{valid: true})
	ctx := context.Background()

	result, err := svc.Scan(ctx, "e1")
	require.NoError(t, err)
	assert.True(t, result.Valid)
	assert.Equal(t, 1, result.Sold)
	assert.NotEmpty(t, result.ScannedAt)
}

func TestScanInvalidLeavesCounter(t *testing.T) {
	svc := newTestService(&fakeScanner{valid: false})
	ctx := context.Background()

	result, err := svc.Scan(ctx, "e1")
	require.NoError(t, err)
	assert.False(t, result.Valid)
	assert.Zero(t, result.Sold)
	assert.Zero(t, svc.Events(ctx)[0].Sold)
}

func TestScanUnknownEvent(t *testing.T) {
	svc := newTestService(nil)

	_, err := svc.Scan(context.Background(), "ghost")
	assert.ErrorIs(t, err, shared.ErrNotFound)
}

func TestExportCSV(t *testing.T) {
	svc := newTestService(nil)

	out := svc.ExportCSV(context.Background())
	lines := strings.Split(out, "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "id,title,date,capacity,sold", lines[0])
	assert.Contains(t, lines[1], `"Concert indie – Café des Arts"`)
	assert.True(t, strings.HasSuffix(lines[1], ",120,0"))
}
