package goquery_test

import (
	"testing"

	"github.com/fwojciec/refdoc"
	"github.com/fwojciec/refdoc/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Ensure LinkDiscoverer implements refdoc.LinkDiscoverer at compile time.
var _ refdoc.LinkDiscoverer = (*goquery.LinkDiscoverer)(nil)

var defaultExclude = []string{
	"/ctrader-automate/documentation",
	"/ctrader-automate/tutorials",
	"/ctrader-automate/references",
	"/ctrader-automate/forum",
}

func TestLinkDiscoverer_DiscoverLinks(t *testing.T) {
	t.Parallel()

	t.Run("keeps relative links and drops excluded ones", func(t *testing.T) {
		t.Parallel()

		html := `<html><body>
<a href="/ctrader-automate/references/api">Api</a>
<a href="/ctrader-automate/forum">Forum</a>
</body></html>`

		d := goquery.NewLinkDiscoverer()
		links, err := d.DiscoverLinks(html, "https://help.ctrader.com", []string{"/ctrader-automate/forum"})

		require.NoError(t, err)
		assert.Equal(t, []refdoc.Link{
			{Text: "Api", URL: "https://help.ctrader.com/ctrader-automate/references/api"},
		}, links.Links())
	})

	t.Run("drops absolute, fragment, empty and scheme links", func(t *testing.T) {
		t.Parallel()

		html := `<html><body>
<a href="https://other.example.com/page">External</a>
<a href="#section">Fragment</a>
<a href="">Empty</a>
<a>No href</a>
<a href="mailto:a@example.com">Mail</a>
<a href="relative/path">Bare relative</a>
<a href="/docs/kept">Kept</a>
</body></html>`

		d := goquery.NewLinkDiscoverer()
		links, err := d.DiscoverLinks(html, "https://example.com", nil)

		require.NoError(t, err)
		assert.Equal(t, []refdoc.Link{
			{Text: "Kept", URL: "https://example.com/docs/kept"},
		}, links.Links())
	})

	t.Run("exclusion is exact match, not prefix", func(t *testing.T) {
		t.Parallel()

		html := `<html><body>
<a href="/ctrader-automate/references">References</a>
<a href="/ctrader-automate/references/">References slash</a>
<a href="/ctrader-automate/references/robot">Robot</a>
</body></html>`

		d := goquery.NewLinkDiscoverer()
		links, err := d.DiscoverLinks(html, "https://help.ctrader.com", defaultExclude)

		require.NoError(t, err)
		assert.Equal(t, []refdoc.Link{
			{Text: "References slash", URL: "https://help.ctrader.com/ctrader-automate/references/"},
			{Text: "Robot", URL: "https://help.ctrader.com/ctrader-automate/references/robot"},
		}, links.Links())
	})

	t.Run("normalizes slashes between base and href", func(t *testing.T) {
		t.Parallel()

		html := `<html><body><a href="//docs//page">Page</a></body></html>`

		d := goquery.NewLinkDiscoverer()
		links, err := d.DiscoverLinks(html, "https://example.com///", nil)

		require.NoError(t, err)
		url, ok := links.Get("Page")
		require.True(t, ok)
		assert.Equal(t, "https://example.com/docs//page", url)
	})

	t.Run("later anchor with the same text overwrites the URL", func(t *testing.T) {
		t.Parallel()

		html := `<html><body>
<a href="/a">Api</a>
<a href="/b">Other</a>
<a href="/c">Api</a>
</body></html>`

		d := goquery.NewLinkDiscoverer()
		links, err := d.DiscoverLinks(html, "https://example.com", nil)

		require.NoError(t, err)
		assert.Equal(t, []refdoc.Link{
			{Text: "Api", URL: "https://example.com/c"},
			{Text: "Other", URL: "https://example.com/b"},
		}, links.Links())
	})

	t.Run("uses full anchor text as key", func(t *testing.T) {
		t.Parallel()

		html := `<html><body><a href="/robot"><span>Ro</span><em>bot</em></a></body></html>`

		d := goquery.NewLinkDiscoverer()
		links, err := d.DiscoverLinks(html, "https://example.com", nil)

		require.NoError(t, err)
		_, ok := links.Get("Robot")
		assert.True(t, ok)
	})

	t.Run("returns empty map when no links qualify", func(t *testing.T) {
		t.Parallel()

		d := goquery.NewLinkDiscoverer()
		links, err := d.DiscoverLinks(`<html><body><p>nothing</p></body></html>`, "https://example.com", nil)

		require.NoError(t, err)
		assert.Equal(t, 0, links.Len())
	})
}

func TestLinkDiscoverer_DiscoverURLs(t *testing.T) {
	t.Parallel()

	t.Run("concatenates base and href without normalization", func(t *testing.T) {
		t.Parallel()

		html := `<html><body>
<a href="/ctrader-automate/references/api">Api</a>
<a href="/ctrader-automate/forum">Forum</a>
<a href="https://example.com/x">External</a>
</body></html>`

		d := goquery.NewLinkDiscoverer()
		urls, err := d.DiscoverURLs(html, "https://help.ctrader.com/", defaultExclude)

		require.NoError(t, err)
		assert.Equal(t, []string{"https://help.ctrader.com//ctrader-automate/references/api"}, urls)
	})

	t.Run("keeps duplicates in document order", func(t *testing.T) {
		t.Parallel()

		html := `<html><body>
<a href="/b">B</a>
<a href="/a">A</a>
<a href="/b">B again</a>
</body></html>`

		d := goquery.NewLinkDiscoverer()
		urls, err := d.DiscoverURLs(html, "https://example.com", nil)

		require.NoError(t, err)
		assert.Equal(t, []string{
			"https://example.com/b",
			"https://example.com/a",
			"https://example.com/b",
		}, urls)
	})
}
