package refdoc

// DetailExtractor pulls a PageRecord out of a detail page.
// Missing markup is never an error: placeholders are substituted instead.
type DetailExtractor interface {
	ExtractDetails(html string) (*PageRecord, error)
}

// TextExtractor flattens the visible text of a page.
type TextExtractor interface {
	ExtractText(html string) (string, error)
}
