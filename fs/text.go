package fs

import (
	"context"

	"github.com/fwojciec/refdoc"
)

// Ensure TextWriter implements refdoc.TextWriter at compile time.
var _ refdoc.TextWriter = (*TextWriter)(nil)

// TextWriter writes the plain-text document to a single UTF-8 file.
type TextWriter struct {
	Path string
}

// NewTextWriter creates a new TextWriter for path.
func NewTextWriter(path string) *TextWriter {
	return &TextWriter{Path: path}
}

// WriteText writes text to Path, replacing any previous file.
func (w *TextWriter) WriteText(ctx context.Context, text string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	var s staging
	if err := s.stage(w.Path, []byte(text)); err != nil {
		s.abort()
		return err
	}
	if err := s.commit(); err != nil {
		s.abort()
		return err
	}
	return nil
}
