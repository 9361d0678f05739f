package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/refdoc"
)

// Compile-time interface verification.
var (
	_ refdoc.DatasetWriter = (*LoggingDatasetWriter)(nil)
	_ refdoc.TextWriter    = (*LoggingTextWriter)(nil)
)

// LoggingDatasetWriter wraps a DatasetWriter with logging.
type LoggingDatasetWriter struct {
	next   refdoc.DatasetWriter
	logger *slog.Logger
}

// NewLoggingDatasetWriter creates a new LoggingDatasetWriter.
func NewLoggingDatasetWriter(next refdoc.DatasetWriter, logger *slog.Logger) *LoggingDatasetWriter {
	return &LoggingDatasetWriter{next: next, logger: logger}
}

// WriteDataset delegates to the wrapped writer and logs the operation.
func (w *LoggingDatasetWriter) WriteDataset(ctx context.Context, ds *refdoc.Dataset) (err error) {
	defer func(begin time.Time) {
		w.logger.Info("write dataset",
			"entries", ds.Len(),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return w.next.WriteDataset(ctx, ds)
}

// LoggingTextWriter wraps a TextWriter with logging.
type LoggingTextWriter struct {
	next   refdoc.TextWriter
	logger *slog.Logger
}

// NewLoggingTextWriter creates a new LoggingTextWriter.
func NewLoggingTextWriter(next refdoc.TextWriter, logger *slog.Logger) *LoggingTextWriter {
	return &LoggingTextWriter{next: next, logger: logger}
}

// WriteText delegates to the wrapped writer and logs the operation.
func (w *LoggingTextWriter) WriteText(ctx context.Context, text string) (err error) {
	defer func(begin time.Time) {
		w.logger.Info("write text",
			"bytes", len(text),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return w.next.WriteText(ctx, text)
}
