package goquery

import (
	"slices"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/refdoc"
)

// Ensure LinkDiscoverer implements refdoc.LinkDiscoverer at compile time.
var _ refdoc.LinkDiscoverer = (*LinkDiscoverer)(nil)

// LinkDiscoverer extracts site-relative anchors from a listing page.
type LinkDiscoverer struct{}

// NewLinkDiscoverer creates a new LinkDiscoverer.
func NewLinkDiscoverer() *LinkDiscoverer {
	return &LinkDiscoverer{}
}

// DiscoverLinks returns anchor text mapped to absolute URLs. A repeated
// anchor text keeps its first position and takes the last URL.
func (d *LinkDiscoverer) DiscoverLinks(html, baseURL string, exclude []string) (*refdoc.LinkMap, error) {
	doc, err := parse(html)
	if err != nil {
		return nil, err
	}

	links := refdoc.NewLinkMap()
	base := strings.TrimRight(baseURL, "/")
	eachRelativeLink(doc, exclude, func(href string, sel *goquery.Selection) {
		links.Set(sel.Text(), base+"/"+strings.TrimLeft(href, "/"))
	})
	return links, nil
}

// DiscoverURLs returns baseURL+href for every qualifying anchor in document
// order. Duplicates are kept.
func (d *LinkDiscoverer) DiscoverURLs(html, baseURL string, exclude []string) ([]string, error) {
	doc, err := parse(html)
	if err != nil {
		return nil, err
	}

	var urls []string
	eachRelativeLink(doc, exclude, func(href string, _ *goquery.Selection) {
		urls = append(urls, baseURL+href)
	})
	return urls, nil
}

// eachRelativeLink calls fn for every anchor whose href starts with "/" and
// is not exactly equal to an excluded path.
func eachRelativeLink(doc *goquery.Document, exclude []string, fn func(href string, sel *goquery.Selection)) {
	doc.Find("a[href]").Each(func(_ int, sel *goquery.Selection) {
		href, _ := sel.Attr("href")
		if !isRelativeLink(href) {
			return
		}
		if slices.Contains(exclude, href) {
			return
		}
		fn(href, sel)
	})
}

// isRelativeLink reports whether href is a site-relative path. Absolute
// URLs and fragments are rejected; protocol-relative "//host/..." values
// start with "/" and pass.
func isRelativeLink(href string) bool {
	return href != "" && strings.HasPrefix(href, "/")
}
