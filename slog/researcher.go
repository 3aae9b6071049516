package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/clauscan/clauscan"
)

// Ensure LoggingResearcher implements clauscan.Researcher.
var _ clauscan.Researcher = (*LoggingResearcher)(nil)

// LoggingResearcher wraps a Researcher with debug logging.
type LoggingResearcher struct {
	next   clauscan.Researcher
	logger *slog.Logger
}

// NewLoggingResearcher creates a new LoggingResearcher.
func NewLoggingResearcher(next clauscan.Researcher, logger *slog.Logger) *LoggingResearcher {
	return &LoggingResearcher{next: next, logger: logger}
}

// Research delegates to the wrapped researcher and logs the operation.
func (r *LoggingResearcher) Research(ctx context.Context, jurisdiction, topic string) (research *clauscan.ResearchContext, err error) {
	defer func(begin time.Time) {
		hits := 0
		if research != nil {
			hits = len(research.Hits)
		}
		r.logger.Info("jurisdiction research",
			"jurisdiction", jurisdiction,
			"topic", topic,
			"hits", hits,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return r.next.Research(ctx, jurisdiction, topic)
}
