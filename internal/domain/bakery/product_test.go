package bakery

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/comptoir/backend/internal/domain/shared"
)

func TestNewProduct(t *testing.T) {
	p, err := NewProduct("Chausson aux pommes", decimal.NewFromFloat(1.8))
	require.NoError(t, err)
	assert.NotEmpty(t, p.ID)
	assert.Equal(t, "Chausson aux pommes", p.Name)

	_, err = NewProduct("   ", decimal.NewFromFloat(1))
	require.Error(t, err)
	var domainErr *shared.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "INVALID_NAME", domainErr.Code)
}

func TestCatalogFindByID(t *testing.T) {
	catalog := DefaultCatalog()

	p := catalog.FindByID("p2")
	require.NotNil(t, p)
	assert.Equal(t, "Pain complet", p.Name)

	assert.Nil(t, catalog.FindByID("ghost"))
}

func TestCatalogFilterByName(t *testing.T) {
	catalog := DefaultCatalog()

	assert.Len(t, catalog.FilterByName(""), 3)
	assert.Len(t, catalog.FilterByName("  "), 3)

	matched := catalog.FilterByName("PAIN")
	require.Len(t, matched, 1)
	assert.Equal(t, "Pain complet", matched[0].Name)

	assert.Empty(t, catalog.FilterByName("brioche"))
}
