package printing

import (
	"html"
	"strings"
)

// PrintViewHTML wraps document text in the monospace print view opened by
// the print action; the page invokes the platform print dialog on load.
func PrintViewHTML(text string) string {
	var b strings.Builder
	b.WriteString("<!DOCTYPE html><html><head><meta charset=\"utf-8\"><title>Impression</title></head>")
	b.WriteString("<body onload=\"window.print()\">")
	b.WriteString("<pre style=\"font-family: ui-monospace, SFMono-Regular, Menlo, Monaco, Consolas, 'Liberation Mono', 'Courier New', monospace; white-space: pre-wrap;\">")
	b.WriteString(html.EscapeString(text))
	b.WriteString("</pre></body></html>")
	return b.String()
}

// DocumentHTML lays paginated lines into printable HTML, one block per
// page with a forced page break between blocks. The PDF renderer turns
// this into the downloadable file.
func DocumentHTML(title string, pages [][]string) string {
	var b strings.Builder
	b.WriteString("<!DOCTYPE html><html><head><meta charset=\"utf-8\"><title>")
	b.WriteString(html.EscapeString(title))
	b.WriteString("</title><style>")
	b.WriteString("body{font-family:Helvetica,Arial,sans-serif;font-size:12pt;margin:40pt;}")
	b.WriteString(".page{page-break-after:always;}.page:last-child{page-break-after:auto;}")
	b.WriteString("div.line{line-height:18pt;min-height:18pt;white-space:pre-wrap;}")
	b.WriteString("</style></head><body>")
	for _, page := range pages {
		b.WriteString("<div class=\"page\">")
		for _, line := range page {
			b.WriteString("<div class=\"line\">")
			b.WriteString(html.EscapeString(line))
			b.WriteString("</div>")
		}
		b.WriteString("</div>")
	}
	b.WriteString("</body></html>")
	return b.String()
}
