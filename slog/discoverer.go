package slog

import (
	"log/slog"
	"time"

	"github.com/fwojciec/refdoc"
)

// Ensure LoggingLinkDiscoverer implements refdoc.LinkDiscoverer.
var _ refdoc.LinkDiscoverer = (*LoggingLinkDiscoverer)(nil)

// LoggingLinkDiscoverer wraps a LinkDiscoverer and logs how many links each
// listing page produced.
type LoggingLinkDiscoverer struct {
	next   refdoc.LinkDiscoverer
	logger *slog.Logger
}

// NewLoggingLinkDiscoverer creates a new LoggingLinkDiscoverer.
func NewLoggingLinkDiscoverer(next refdoc.LinkDiscoverer, logger *slog.Logger) *LoggingLinkDiscoverer {
	return &LoggingLinkDiscoverer{next: next, logger: logger}
}

// DiscoverLinks delegates to the wrapped discoverer and logs the result.
func (d *LoggingLinkDiscoverer) DiscoverLinks(html, baseURL string, exclude []string) (links *refdoc.LinkMap, err error) {
	defer func(begin time.Time) {
		count := 0
		if links != nil {
			count = links.Len()
		}
		d.logger.Info("link discovery",
			"base", baseURL,
			"count", count,
			"excluded", len(exclude),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return d.next.DiscoverLinks(html, baseURL, exclude)
}

// DiscoverURLs delegates to the wrapped discoverer and logs the result.
func (d *LoggingLinkDiscoverer) DiscoverURLs(html, baseURL string, exclude []string) (urls []string, err error) {
	defer func(begin time.Time) {
		d.logger.Info("url discovery",
			"base", baseURL,
			"count", len(urls),
			"excluded", len(exclude),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return d.next.DiscoverURLs(html, baseURL, exclude)
}
