// Package goquery implements refdoc's HTML-facing components (link
// discovery, detail extraction, text flattening) on top of goquery.
package goquery

import (
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/refdoc"
	"golang.org/x/net/html"
)

// parse builds a document from raw HTML.
func parse(src string) (*goquery.Document, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(src))
	if err != nil {
		return nil, refdoc.Errorf(refdoc.EINVALID, "failed to parse HTML: %v", err)
	}
	return doc, nil
}

// findFirstHeading returns the first h<level> element, in document order,
// whose text satisfies match. A nil match accepts any heading.
// Returns nil when no heading qualifies.
func findFirstHeading(doc *goquery.Document, level int, match func(text string) bool) *goquery.Selection {
	var found *goquery.Selection
	doc.Find("h" + strconv.Itoa(level)).EachWithBreak(func(_ int, sel *goquery.Selection) bool {
		if match == nil || match(sel.Text()) {
			found = sel
			return false
		}
		return true
	})
	return found
}

// siblingsUntil returns the element siblings following sel, stopping before
// the first one matching stop.
func siblingsUntil(sel *goquery.Selection, stop string) *goquery.Selection {
	return sel.NextUntil(stop)
}

// strippedText concatenates every descendant text node of sel, each
// trimmed of surrounding whitespace, dropping the empty ones.
func strippedText(sel *goquery.Selection) string {
	var b strings.Builder
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			b.WriteString(strings.TrimSpace(n.Data))
			return
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	for _, n := range sel.Nodes {
		walk(n)
	}
	return b.String()
}

// textLines returns the trimmed, non-empty descendant text nodes of sel in
// document order.
func textLines(sel *goquery.Selection) []string {
	var lines []string
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			if t := strings.TrimSpace(n.Data); t != "" {
				lines = append(lines, t)
			}
			return
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	for _, n := range sel.Nodes {
		walk(n)
	}
	return lines
}
