package fs

import (
	"bytes"
	"context"
	"encoding/json"
	"html"
	"strings"

	"github.com/fwojciec/refdoc"
)

// JSONIndent is the indentation of the JSON artifact.
const JSONIndent = "    "

// Ensure DatasetWriter implements refdoc.DatasetWriter at compile time.
var _ refdoc.DatasetWriter = (*DatasetWriter)(nil)

// DatasetWriter writes a Dataset as an HTML document and a JSON file, and
// optionally as Markdown converted from the HTML.
type DatasetWriter struct {
	HTMLPath string
	JSONPath string

	// MarkdownPath enables the Markdown artifact when set together with
	// Converter.
	MarkdownPath string
	Converter    refdoc.Converter
}

// WriteDataset renders every artifact and moves them into place only after
// all of them were written.
func (w *DatasetWriter) WriteDataset(ctx context.Context, ds *refdoc.Dataset) error {
	doc := RenderHTML(ds)

	data, err := MarshalDataset(ds)
	if err != nil {
		return err
	}

	var md string
	writeMarkdown := w.MarkdownPath != "" && w.Converter != nil
	if writeMarkdown {
		if md, err = w.Converter.Convert(doc); err != nil {
			return err
		}
	}

	if err := ctx.Err(); err != nil {
		return err
	}

	var s staging
	if err := s.stage(w.HTMLPath, []byte(doc)); err != nil {
		s.abort()
		return err
	}
	if err := s.stage(w.JSONPath, data); err != nil {
		s.abort()
		return err
	}
	if writeMarkdown {
		if err := s.stage(w.MarkdownPath, []byte(md)); err != nil {
			s.abort()
			return err
		}
	}
	if err := s.commit(); err != nil {
		s.abort()
		return err
	}
	return nil
}

// RenderHTML renders the dataset as a minimal HTML document: an h1 per key,
// an h2 and paragraph per present section in enumeration order, and an
// "Example" h4 with a pre block per example.
func RenderHTML(ds *refdoc.Dataset) string {
	var b strings.Builder
	b.WriteString("<html><body>")
	for key, rec := range ds.All() {
		b.WriteString("<h1>")
		b.WriteString(html.EscapeString(key))
		b.WriteString("</h1>")
		if rec == nil {
			continue
		}
		for _, section := range refdoc.Sections() {
			text, ok := rec.Sections[section]
			if !ok {
				continue
			}
			b.WriteString("<h2>")
			b.WriteString(string(section))
			b.WriteString("</h2><p>")
			b.WriteString(html.EscapeString(text))
			b.WriteString("</p>")
		}
		for _, example := range rec.Examples {
			b.WriteString("<h4>Example</h4><pre>")
			b.WriteString(html.EscapeString(example))
			b.WriteString("</pre>")
		}
	}
	b.WriteString("</body></html>")
	return b.String()
}

// MarshalDataset encodes the dataset as UTF-8 JSON indented with
// JSONIndent, keeping insertion order and leaving HTML characters
// unescaped.
func MarshalDataset(ds *refdoc.Dataset) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", JSONIndent)
	if err := enc.Encode(ds); err != nil {
		return nil, refdoc.Errorf(refdoc.EINTERNAL, "encode dataset: %v", err)
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}
