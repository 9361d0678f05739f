package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/refdoc"
)

// TabbedLabelPrefix is the "for" prefix of MkDocs Material content-tab
// labels that point at code examples.
const TabbedLabelPrefix = "__tabbed_"

// headerLinkSelector matches the permalink anchor MkDocs appends to
// headings. Its text is a pilcrow.
const headerLinkSelector = "a.headerlink"

// mojibakePilcrow is a UTF-8 pilcrow decoded as latin-1. It is removed from
// titles wherever it appears.
const mojibakePilcrow = "Â¶"

// Ensure DetailExtractor implements refdoc.DetailExtractor at compile time.
var _ refdoc.DetailExtractor = (*DetailExtractor)(nil)

// DetailExtractor reads title, labeled sections and code examples from an
// API reference page.
type DetailExtractor struct{}

// NewDetailExtractor creates a new DetailExtractor.
func NewDetailExtractor() *DetailExtractor {
	return &DetailExtractor{}
}

// ExtractDetails parses html into a PageRecord.
func (e *DetailExtractor) ExtractDetails(html string) (*refdoc.PageRecord, error) {
	doc, err := parse(html)
	if err != nil {
		return nil, err
	}

	rec := refdoc.NewPageRecord(extractTitle(doc))

	for _, section := range refdoc.Sections() {
		if text, ok := extractSection(doc, section); ok {
			rec.Sections[section] = text
		}
	}

	rec.Examples = extractExamples(doc)

	return rec, nil
}

func extractTitle(doc *goquery.Document) string {
	h1 := findFirstHeading(doc, 1, nil)
	if h1 == nil {
		return refdoc.UnknownTitle
	}
	heading := h1.Clone()
	heading.Find(headerLinkSelector).Remove()
	title := strings.ReplaceAll(heading.Text(), mojibakePilcrow, "")
	return strings.TrimSpace(title)
}

// extractSection reports ok=false when no h2 contains the section name.
// Otherwise it joins the paragraphs between that heading and the next h2,
// or returns NoContent when there are none.
func extractSection(doc *goquery.Document, section refdoc.Section) (string, bool) {
	heading := findFirstHeading(doc, 2, func(text string) bool {
		return strings.Contains(text, string(section))
	})
	if heading == nil {
		return "", false
	}

	var content []string
	siblingsUntil(heading, "h2").Filter("p").Each(func(_ int, p *goquery.Selection) {
		content = append(content, strings.TrimSpace(p.Text()))
	})
	if len(content) == 0 {
		return refdoc.NoContent, true
	}
	return strings.Join(content, " "), true
}

// extractExamples follows tab labels in document order to their code
// blocks. Labels without a matching code[tabindex="0"] are skipped.
func extractExamples(doc *goquery.Document) []string {
	examples := []string{}
	code := doc.Find(`code[tabindex="0"]`)
	doc.Find(`label[for^="` + TabbedLabelPrefix + `"]`).Each(func(_ int, label *goquery.Selection) {
		id, _ := label.Attr("for")
		block := code.FilterFunction(func(_ int, c *goquery.Selection) bool {
			return c.AttrOr("id", "") == id
		}).First()
		if block.Length() == 0 {
			return
		}
		examples = append(examples, strippedText(block))
	})
	return examples
}
