// Package slog provides logging decorators for the analysis pipeline's
// service interfaces.
package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/clauscan/clauscan"
)

// Ensure LoggingExtractor implements clauscan.Extractor.
var _ clauscan.Extractor = (*LoggingExtractor)(nil)

// LoggingExtractor wraps an Extractor with debug logging.
type LoggingExtractor struct {
	next   clauscan.Extractor
	logger *slog.Logger
}

// NewLoggingExtractor creates a new LoggingExtractor.
func NewLoggingExtractor(next clauscan.Extractor, logger *slog.Logger) *LoggingExtractor {
	return &LoggingExtractor{next: next, logger: logger}
}

// Extract delegates to the wrapped extractor and logs the operation.
func (e *LoggingExtractor) Extract(ctx context.Context, doc *clauscan.Document) (text *clauscan.ExtractedText, err error) {
	defer func(begin time.Time) {
		backend := ""
		chars := 0
		if text != nil {
			backend = text.Backend
			chars = text.CharCount
		}
		e.logger.Info("text extraction",
			"document", doc.Name,
			"format", doc.Format,
			"backend", backend,
			"chars", chars,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return e.next.Extract(ctx, doc)
}
