package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/clauscan/clauscan"
)

// Ensure LoggingGenerator implements clauscan.Generator.
var _ clauscan.Generator = (*LoggingGenerator)(nil)

// LoggingGenerator wraps a Generator with debug logging.
type LoggingGenerator struct {
	next   clauscan.Generator
	logger *slog.Logger
}

// NewLoggingGenerator creates a new LoggingGenerator.
func NewLoggingGenerator(next clauscan.Generator, logger *slog.Logger) *LoggingGenerator {
	return &LoggingGenerator{next: next, logger: logger}
}

// Generate delegates to the wrapped generator and logs the operation.
// Prompt text is never logged: contracts are confidential.
func (g *LoggingGenerator) Generate(ctx context.Context, req *clauscan.GenerateRequest) (response string, err error) {
	defer func(begin time.Time) {
		g.logger.Info("llm generation",
			"prompt_chars", len(req.Prompt),
			"response_chars", len(response),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return g.next.Generate(ctx, req)
}
