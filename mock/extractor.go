package mock

import "github.com/fwojciec/refdoc"

// Compile-time interface verification.
var (
	_ refdoc.DetailExtractor = (*DetailExtractor)(nil)
	_ refdoc.TextExtractor   = (*TextExtractor)(nil)
)

// DetailExtractor is a mock implementation of refdoc.DetailExtractor.
type DetailExtractor struct {
	ExtractDetailsFn func(html string) (*refdoc.PageRecord, error)
}

func (e *DetailExtractor) ExtractDetails(html string) (*refdoc.PageRecord, error) {
	return e.ExtractDetailsFn(html)
}

// TextExtractor is a mock implementation of refdoc.TextExtractor.
type TextExtractor struct {
	ExtractTextFn func(html string) (string, error)
}

func (e *TextExtractor) ExtractText(html string) (string, error) {
	return e.ExtractTextFn(html)
}
