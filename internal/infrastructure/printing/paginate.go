package printing

// Paginator lays text lines onto pages: each line advances a vertical
// cursor by LineHeight, starting at StartY; when the cursor passes
// PageBreakY the layout continues on a new page at ContinueY.
type Paginator struct {
	StartY     float64
	ContinueY  float64
	LineHeight float64
	PageBreakY float64
}

// ReceiptPaginator is the receipt layout: 12pt text from y=40 at 18pt
// line height on A4. The constants are part of the printed format; changing
// them reflows every page break.
func ReceiptPaginator() Paginator {
	return Paginator{StartY: 40, ContinueY: 40, LineHeight: 18, PageBreakY: 760}
}

// ReportPaginator matches the case-report layout (body from y=100,
// continuing at y=60 after a break).
func ReportPaginator() Paginator {
	return Paginator{StartY: 100, ContinueY: 60, LineHeight: 16, PageBreakY: 760}
}

// Paginate splits lines into pages.
func (p Paginator) Paginate(lines []string) [][]string {
	pages := [][]string{}
	var page []string
	y := p.StartY
	for _, line := range lines {
		if y > p.PageBreakY {
			pages = append(pages, page)
			page = nil
			y = p.ContinueY
		}
		page = append(page, line)
		y += p.LineHeight
	}
	if len(page) > 0 || len(pages) == 0 {
		pages = append(pages, page)
	}
	return pages
}
