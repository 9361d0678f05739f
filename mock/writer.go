package mock

import (
	"context"

	"github.com/fwojciec/refdoc"
)

// Compile-time interface verification.
var (
	_ refdoc.DatasetWriter = (*DatasetWriter)(nil)
	_ refdoc.TextWriter    = (*TextWriter)(nil)
)

// DatasetWriter is a mock implementation of refdoc.DatasetWriter.
type DatasetWriter struct {
	WriteDatasetFn func(ctx context.Context, ds *refdoc.Dataset) error
}

func (w *DatasetWriter) WriteDataset(ctx context.Context, ds *refdoc.Dataset) error {
	return w.WriteDatasetFn(ctx, ds)
}

// TextWriter is a mock implementation of refdoc.TextWriter.
type TextWriter struct {
	WriteTextFn func(ctx context.Context, text string) error
}

func (w *TextWriter) WriteText(ctx context.Context, text string) error {
	return w.WriteTextFn(ctx, text)
}
