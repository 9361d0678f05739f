// Package htmltomarkdown renders refdoc HTML artifacts as Markdown.
package htmltomarkdown

import (
	"strings"

	"github.com/JohannesKaufmann/html-to-markdown/v2/converter"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/base"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/commonmark"
	"github.com/fwojciec/refdoc"
)

// DefaultCodeLanguage is the fence language used for example blocks.
// Automate API examples are C#.
const DefaultCodeLanguage = "csharp"

// Ensure Converter implements refdoc.Converter at compile time.
var _ refdoc.Converter = (*Converter)(nil)

// Converter wraps html-to-markdown to convert the extracted-dataset HTML
// document to Markdown.
type Converter struct {
	conv     *converter.Converter
	codeLang string
}

// Option configures a Converter.
type Option func(*Converter)

// WithCodeLanguage sets the fence language for bare <pre> blocks.
// An empty language leaves fences untagged.
func WithCodeLanguage(lang string) Option {
	return func(c *Converter) {
		c.codeLang = lang
	}
}

// NewConverter creates a new Converter.
func NewConverter(opts ...Option) *Converter {
	c := &Converter{
		codeLang: DefaultCodeLanguage,
	}
	for _, opt := range opts {
		opt(c)
	}
	c.conv = converter.NewConverter(
		converter.WithPlugins(
			base.NewBasePlugin(),
			commonmark.NewCommonmarkPlugin(),
		),
	)
	return c
}

// Convert transforms HTML content into Markdown.
func (c *Converter) Convert(html string) (string, error) {
	if strings.TrimSpace(html) == "" {
		return "", refdoc.Errorf(refdoc.EINVALID, "empty HTML input")
	}

	if c.codeLang != "" {
		html = tagCodeBlocks(html, c.codeLang)
	}

	result, err := c.conv.ConvertString(html)
	if err != nil {
		return "", refdoc.Errorf(refdoc.EINTERNAL, "convert to markdown: %v", err)
	}

	return result, nil
}

// tagCodeBlocks wraps the body of every bare <pre> in a language-tagged
// <code> so the commonmark plugin emits a fenced block with that language.
func tagCodeBlocks(html, lang string) string {
	html = strings.ReplaceAll(html, "<pre>", `<pre><code class="language-`+lang+`">`)
	return strings.ReplaceAll(html, "</pre>", "</code></pre>")
}
