// Package crawl provides the scraping pipelines: it fetches a listing page,
// discovers detail pages, extracts each one in turn and hands the collected
// result back for writing.
package crawl

import (
	"context"

	"github.com/fwojciec/refdoc"
)

// Crawler runs the structured and plain-text pipelines over one site.
// Pages are fetched strictly one after another; the first failure aborts
// the run and nothing collected so far is returned.
type Crawler struct {
	Fetcher     refdoc.Fetcher
	Links       refdoc.LinkDiscoverer
	Details     refdoc.DetailExtractor
	Text        refdoc.TextExtractor
	BaseURL     string
	ListingPath string
	Exclude     []string
}

// ListingURL returns the URL of the page that enumerates detail pages.
func (c *Crawler) ListingURL() string {
	return c.BaseURL + c.ListingPath
}

// Extract fetches the listing page, then every linked detail page, and
// returns the records keyed by link text in discovery order.
// The progress callback, if provided, is called after each page.
func (c *Crawler) Extract(ctx context.Context, progress refdoc.ProgressFunc) (*refdoc.Dataset, error) {
	listing, err := c.Fetcher.Fetch(ctx, c.ListingURL())
	if err != nil {
		return nil, err
	}

	links, err := c.Links.DiscoverLinks(listing, c.BaseURL, c.Exclude)
	if err != nil {
		return nil, err
	}

	ds := refdoc.NewDataset()
	total := links.Len()
	completed := 0
	for text, url := range links.All() {
		html, err := c.Fetcher.Fetch(ctx, url)
		if err != nil {
			return nil, err
		}

		rec, err := c.Details.ExtractDetails(html)
		if err != nil {
			return nil, err
		}
		ds.Set(text, rec)

		completed++
		if progress != nil {
			progress(refdoc.Progress{Item: text, Completed: completed, Total: total})
		}
	}

	return ds, nil
}

// ExtractText fetches the listing page, then every linked page, and
// returns their visible text concatenated in crawl order.
// The progress callback, if provided, is called after each page.
func (c *Crawler) ExtractText(ctx context.Context, progress refdoc.ProgressFunc) (*refdoc.PlainTextDocument, error) {
	listing, err := c.Fetcher.Fetch(ctx, c.ListingURL())
	if err != nil {
		return nil, err
	}

	urls, err := c.Links.DiscoverURLs(listing, c.BaseURL, c.Exclude)
	if err != nil {
		return nil, err
	}

	doc := &refdoc.PlainTextDocument{}
	for i, url := range urls {
		html, err := c.Fetcher.Fetch(ctx, url)
		if err != nil {
			return nil, err
		}

		text, err := c.Text.ExtractText(html)
		if err != nil {
			return nil, err
		}
		doc.Append(text)

		if progress != nil {
			progress(refdoc.Progress{Item: url, Completed: i + 1, Total: len(urls)})
		}
	}

	return doc, nil
}
