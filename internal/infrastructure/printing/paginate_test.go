package printing

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func numbered(n int) []string {
	lines := make([]string, n)
	for i := range lines {
		lines[i] = fmt.Sprintf("ligne %d", i)
	}
	return lines
}

func TestPaginateEmpty(t *testing.T) {
	pages := ReceiptPaginator().Paginate(nil)
	require.Len(t, pages, 1)
	assert.Empty(t, pages[0])
}

func TestPaginateSinglePage(t *testing.T) {
	pages := ReceiptPaginator().Paginate(numbered(10))
	require.Len(t, pages, 1)
	assert.Len(t, pages[0], 10)
}

func TestReceiptPaginatorBreaksAfter41Lines(t *testing.T) {
	// Receipt layout: y starts at 40, steps 18, breaks past 760. Line 41
	// would land at y=778, so the first page holds exactly 41 lines.
	pages := ReceiptPaginator().Paginate(numbered(45))
	require.Len(t, pages, 2)
	assert.Len(t, pages[0], 41)
	assert.Len(t, pages[1], 4)
	assert.Equal(t, "ligne 41", pages[1][0])
}

func TestReportPaginatorContinuationPagesHoldMore(t *testing.T) {
	// Report layout starts lower on page one (y=100) than on continuation
	// pages (y=60), so later pages fit more lines.
	pages := ReportPaginator().Paginate(numbered(100))
	require.Len(t, pages, 3)
	assert.Len(t, pages[0], 42)
	assert.Len(t, pages[1], 44)
	assert.Len(t, pages[2], 14)
}

func TestPaginateKeepsOrder(t *testing.T) {
	lines := numbered(90)
	pages := ReceiptPaginator().Paginate(lines)

	var flat []string
	for _, p := range pages {
		flat = append(flat, p...)
	}
	assert.Equal(t, lines, flat)
}
