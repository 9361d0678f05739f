package mock

import "github.com/fwojciec/refdoc"

var _ refdoc.LinkDiscoverer = (*LinkDiscoverer)(nil)

// LinkDiscoverer is a mock implementation of refdoc.LinkDiscoverer.
type LinkDiscoverer struct {
	DiscoverLinksFn func(html, baseURL string, exclude []string) (*refdoc.LinkMap, error)
	DiscoverURLsFn  func(html, baseURL string, exclude []string) ([]string, error)
}

func (d *LinkDiscoverer) DiscoverLinks(html, baseURL string, exclude []string) (*refdoc.LinkMap, error) {
	return d.DiscoverLinksFn(html, baseURL, exclude)
}

func (d *LinkDiscoverer) DiscoverURLs(html, baseURL string, exclude []string) ([]string, error) {
	return d.DiscoverURLsFn(html, baseURL, exclude)
}
