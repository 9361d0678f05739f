package goquery

import (
	"strings"

	"github.com/fwojciec/refdoc"
)

// Ensure TextExtractor implements refdoc.TextExtractor at compile time.
var _ refdoc.TextExtractor = (*TextExtractor)(nil)

// TextExtractor flattens the visible text of a page, one text run per line.
type TextExtractor struct{}

// NewTextExtractor creates a new TextExtractor.
func NewTextExtractor() *TextExtractor {
	return &TextExtractor{}
}

// ExtractText returns the body text with non-rendered elements removed.
func (e *TextExtractor) ExtractText(html string) (string, error) {
	doc, err := parse(html)
	if err != nil {
		return "", err
	}

	doc.Find("script, style, noscript, template").Remove()

	return strings.Join(textLines(doc.Find("body")), "\n"), nil
}
