package clauscan

import "context"

// GenerateRequest describes one model invocation.
type GenerateRequest struct {
	// System is the system instruction, if any.
	System string

	// Prompt is the user prompt.
	Prompt string

	// JSON requests a JSON-only response from the model.
	JSON bool
}

// Generator produces a raw text completion for a prompt. Implementations
// classify transport failures using the application error codes:
// EUNAVAILABLE for retryable failures (timeouts, rate limiting, 5xx) and
// EUNAUTHORIZED or EINVALID for failures that must not be retried.
type Generator interface {
	Generate(ctx context.Context, req *GenerateRequest) (string, error)
}
