package refdoc

import "iter"

// Link is an anchor discovered on a listing page.
type Link struct {
	Text string
	URL  string
}

// LinkMap maps anchor text to absolute URL in discovery order.
// Anchor text is not unique on real pages: a later anchor with the same
// text replaces the URL of the earlier one but keeps its position.
type LinkMap struct {
	m orderedMap[string]
}

// NewLinkMap returns an empty LinkMap.
func NewLinkMap() *LinkMap {
	return &LinkMap{}
}

// Set records url under text.
func (l *LinkMap) Set(text, url string) {
	l.m.set(text, url)
}

// Get returns the URL recorded for text.
func (l *LinkMap) Get(text string) (string, bool) {
	return l.m.get(text)
}

// Len returns the number of distinct anchor texts.
func (l *LinkMap) Len() int {
	return l.m.len()
}

// All iterates text/URL pairs in discovery order.
func (l *LinkMap) All() iter.Seq2[string, string] {
	return l.m.all()
}

// Links returns the entries as a slice in discovery order.
func (l *LinkMap) Links() []Link {
	links := make([]Link, 0, l.Len())
	for text, url := range l.All() {
		links = append(links, Link{Text: text, URL: url})
	}
	return links
}

// LinkDiscoverer finds crawlable detail-page links on a listing page.
//
// Only site-relative hrefs (starting with "/") are considered, and an href
// is dropped when it is exactly equal to an entry of exclude. Matching is
// exact, so excluding "/docs/references" does not exclude
// "/docs/references/api".
type LinkDiscoverer interface {
	// DiscoverLinks returns anchor text mapped to URLs built as
	// baseURL without trailing slash + "/" + href without leading slash.
	DiscoverLinks(html, baseURL string, exclude []string) (*LinkMap, error)

	// DiscoverURLs returns URLs in document order built by plain
	// concatenation of baseURL and href, with no normalization.
	DiscoverURLs(html, baseURL string, exclude []string) ([]string, error)
}
