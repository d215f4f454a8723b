package shared

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDecimal(t *testing.T) {
	d, err := ParseDecimal("price", "1.35")
	require.NoError(t, err)
	assert.True(t, d.Equal(decimal.NewFromFloat(1.35)))

	d, err = ParseDecimal("rate", " -5.5 ")
	require.NoError(t, err)
	assert.True(t, d.IsNegative())

	tests := []struct {
		name string
		raw  string
	}{
		{"empty", ""},
		{"blank", "   "},
		{"text", "abc"},
		{"trailing garbage", "1.2x"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseDecimal("price", tt.raw)
			require.Error(t, err)
			var domainErr *DomainError
			require.ErrorAs(t, err, &domainErr)
			assert.Equal(t, "INVALID_NUMBER", domainErr.Code)
			assert.Contains(t, domainErr.Message, "price")
		})
	}
}

func TestParseCount(t *testing.T) {
	n, err := ParseCount("capacity", "120")
	require.NoError(t, err)
	assert.Equal(t, 120, n)

	// Empty counts as zero, the field is optional.
	n, err = ParseCount("capacity", "")
	require.NoError(t, err)
	assert.Zero(t, n)

	_, err = ParseCount("capacity", "-3")
	assert.Error(t, err)

	_, err = ParseCount("capacity", "12.5")
	assert.Error(t, err)
}
