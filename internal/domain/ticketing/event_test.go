package ticketing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/comptoir/backend/internal/domain/shared"
)

func TestNewEvent(t *testing.T) {
	e, err := NewEvent("Concert jazz", "2025-10-01", 80)
	require.NoError(t, err)
	assert.NotEmpty(t, e.ID)
	assert.Equal(t, 80, e.Capacity)
	assert.Zero(t, e.Sold)

	var domainErr *shared.DomainError

	_, err = NewEvent("  ", "2025-10-01", 80)
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "INVALID_TITLE", domainErr.Code)

	_, err = NewEvent("Concert jazz", "", 80)
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "INVALID_DATE", domainErr.Code)
}

func TestEventOversell(t *testing.T) {
	e := Event{ID: "e1", Title: "Petit club", Date: "2025-10-01", Capacity: 2}

	e.IncrementSold()
	e.IncrementSold()
	assert.Equal(t, 0, e.Remaining())

	// Selling past capacity keeps counting; only the display clamps.
	e.IncrementSold()
	assert.Equal(t, 3, e.Sold)
	assert.Equal(t, 0, e.Remaining())
}

func TestEventRemaining(t *testing.T) {
	e := Event{Capacity: 120, Sold: 35}
	assert.Equal(t, 85, e.Remaining())
}

func TestListFindByID(t *testing.T) {
	list := DefaultEvents()

	e := list.FindByID("e2")
	require.NotNil(t, e)

	// FindByID returns a pointer into the list so sales mutate in place.
	e.IncrementSold()
	assert.Equal(t, 1, list.FindByID("e2").Sold)

	assert.Nil(t, list.FindByID("ghost"))
}

func TestListTotalSold(t *testing.T) {
	list := List{{Sold: 3}, {Sold: 0}, {Sold: 7}}
	assert.Equal(t, 10, list.TotalSold())
	assert.Zero(t, List{}.TotalSold())
}
