package analyze

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/clauscan/clauscan"
)

// Schema is the structural contract a model response must satisfy to be
// accepted as a stage result.
type Schema interface {
	// Hint describes the expected JSON shape. It is included in repair
	// prompts when a response fails to parse.
	Hint() string

	// Validate checks structural constraints after unmarshaling.
	Validate() error
}

// DefaultRetryDelays returns the backoff delays for retryable transport
// failures: 1s, 2s, 4s.
func DefaultRetryDelays() []time.Duration {
	return []time.Duration{1 * time.Second, 2 * time.Second, 4 * time.Second}
}

// Client calls a Generator and parses responses against a schema.
// Retryable transport failures (EUNAVAILABLE) get a bounded retry with
// exponential backoff; schema failures get exactly one repair attempt.
// Calls are independent: the client holds no cache or request state.
type Client struct {
	Generator clauscan.Generator

	// RetryDelays overrides the transport backoff schedule. Useful for
	// testing without waiting for real delays.
	RetryDelays []time.Duration
}

// CallJSON submits the request, parses the response as JSON into out,
// and validates it. On a parse or validation failure it re-submits the
// raw response with a reformat instruction once; if the repaired
// response still fails, it returns ESCHEMA with the raw text attached.
func (c *Client) CallJSON(ctx context.Context, req *clauscan.GenerateRequest, out Schema) error {
	raw, err := c.generate(ctx, req)
	if err != nil {
		return err
	}

	perr := parseInto(raw, out)
	if perr == nil {
		return nil
	}

	repaired, err := c.generate(ctx, &clauscan.GenerateRequest{
		System: req.System,
		Prompt: BuildRepairPrompt(raw, out.Hint(), perr),
		JSON:   true,
	})
	if err != nil {
		return err
	}

	if perr := parseInto(repaired, out); perr != nil {
		e := clauscan.Errorf(clauscan.ESCHEMA, "model response does not match schema after repair: %v", perr)
		e.Raw = repaired
		return e
	}
	return nil
}

// generate submits the request with bounded retry on retryable
// transport failures. Non-retryable failures propagate immediately.
func (c *Client) generate(ctx context.Context, req *clauscan.GenerateRequest) (string, error) {
	delays := c.RetryDelays
	if delays == nil {
		delays = DefaultRetryDelays()
	}
	maxAttempts := len(delays) + 1 // 1 initial + N retries

	var lastErr error
	for attempt := 0; attempt < maxAttempts; attempt++ {
		raw, err := c.Generator.Generate(ctx, req)
		if err == nil {
			return raw, nil
		}
		if clauscan.ErrorCode(err) != clauscan.EUNAVAILABLE {
			return "", err
		}
		lastErr = err

		if attempt >= maxAttempts-1 {
			break
		}

		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case <-time.After(delays[attempt]):
		}
	}

	return "", lastErr
}

// parseInto parses raw model output as JSON into out and validates it.
func parseInto(raw string, out Schema) error {
	body := extractJSON(raw)
	if body == "" {
		return clauscan.Errorf(clauscan.ESCHEMA, "response contains no JSON object")
	}
	if err := json.Unmarshal([]byte(body), out); err != nil {
		return clauscan.Errorf(clauscan.ESCHEMA, "response is not valid JSON: %v", err)
	}
	return out.Validate()
}

// extractJSON strips markdown code fences and surrounding prose, keeping
// the outermost JSON object or array.
func extractJSON(raw string) string {
	raw = strings.TrimSpace(raw)

	start := strings.IndexAny(raw, "{[")
	if start < 0 {
		return ""
	}
	var end int
	if raw[start] == '{' {
		end = strings.LastIndex(raw, "}")
	} else {
		end = strings.LastIndex(raw, "]")
	}
	if end <= start {
		return ""
	}
	return raw[start : end+1]
}
