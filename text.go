package refdoc

import "strings"

// PageSeparator follows each page's text in a PlainTextDocument.
const PageSeparator = "\n\n"

// PlainTextDocument accumulates the visible text of crawled pages in crawl
// order, each followed by PageSeparator.
type PlainTextDocument struct {
	b     strings.Builder
	pages int
}

// Append adds one page's text.
func (d *PlainTextDocument) Append(text string) {
	d.b.WriteString(text)
	d.b.WriteString(PageSeparator)
	d.pages++
}

// Pages returns the number of appended pages.
func (d *PlainTextDocument) Pages() int {
	return d.pages
}

// String returns the concatenated document.
func (d *PlainTextDocument) String() string {
	return d.b.String()
}
