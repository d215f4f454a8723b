package casefile

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/comptoir/backend/internal/domain/shared"
)

func TestNewCase(t *testing.T) {
	c, err := NewCase("Compte NL – Revolut", "Demander les relevés complets.")
	require.NoError(t, err)
	assert.NotEmpty(t, c.ID)
	assert.Equal(t, "Compte NL – Revolut", c.Title)

	_, err = NewCase("", "note sans titre")
	var domainErr *shared.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "INVALID_TITLE", domainErr.Code)
}

func TestNewCaseNoteOptional(t *testing.T) {
	c, err := NewCase("Sans note", "")
	require.NoError(t, err)
	assert.Empty(t, c.Note)
}

func TestListRemove(t *testing.T) {
	list := DefaultCases()
	require.Len(t, list, 2)

	list.Remove("c1")
	require.Len(t, list, 1)
	assert.Equal(t, "c2", list[0].ID)

	list.Remove("ghost")
	assert.Len(t, list, 1)
}
