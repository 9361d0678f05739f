package refdoc

import "context"

// DatasetWriter serializes a complete Dataset. It is called once, after
// every page has been extracted.
type DatasetWriter interface {
	WriteDataset(ctx context.Context, ds *Dataset) error
}

// TextWriter persists a PlainTextDocument's contents.
type TextWriter interface {
	WriteText(ctx context.Context, text string) error
}
