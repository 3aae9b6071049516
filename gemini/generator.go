// Package gemini implements text generation using Google Gemini.
package gemini

import (
	"context"
	"errors"

	"github.com/clauscan/clauscan"
	"google.golang.org/genai"
)

// DefaultModel is used when no model is configured.
const DefaultModel = "gemini-2.5-flash"

// Ensure Generator implements clauscan.Generator at compile time.
var _ clauscan.Generator = (*Generator)(nil)

// Generator implements clauscan.Generator using Google Gemini.
type Generator struct {
	client *genai.Client
	model  string
}

// NewGenerator creates a Generator for the given model. An empty model
// selects DefaultModel.
func NewGenerator(client *genai.Client, model string) *Generator {
	if model == "" {
		model = DefaultModel
	}
	return &Generator{client: client, model: model}
}

// Model returns the configured model name.
func (g *Generator) Model() string {
	return g.model
}

// Generate sends the request to Gemini and returns the response text.
func (g *Generator) Generate(ctx context.Context, req *clauscan.GenerateRequest) (string, error) {
	if req == nil || req.Prompt == "" {
		return "", clauscan.Errorf(clauscan.EINVALID, "prompt required")
	}

	result, err := g.client.Models.GenerateContent(ctx, g.model,
		[]*genai.Content{{
			Parts: []*genai.Part{{Text: req.Prompt}},
		}},
		BuildConfig(req),
	)
	if err != nil {
		return "", classifyErr(err)
	}
	if result == nil {
		return "", clauscan.Errorf(clauscan.EINTERNAL, "gemini returned nil result")
	}

	return result.Text(), nil
}

// BuildConfig returns the GenerateContentConfig for an analysis
// request. Temperature is pinned to zero so repeated runs over the
// same contract stay comparable.
func BuildConfig(req *clauscan.GenerateRequest) *genai.GenerateContentConfig {
	temp := float32(0)
	config := &genai.GenerateContentConfig{
		Temperature: &temp,
	}
	if req.System != "" {
		config.SystemInstruction = &genai.Content{
			Parts: []*genai.Part{{Text: req.System}},
		}
	}
	if req.JSON {
		config.ResponseMIMEType = "application/json"
	}
	return config
}

// classifyErr maps Gemini API errors to clauscan error codes so the
// caller can decide whether retrying makes sense.
func classifyErr(err error) error {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return err
	}

	var apiErr genai.APIError
	if errors.As(err, &apiErr) {
		switch {
		case apiErr.Code == 429 || apiErr.Code >= 500:
			return clauscan.Errorf(clauscan.EUNAVAILABLE, "gemini: %s", apiErr.Message)
		case apiErr.Code == 401 || apiErr.Code == 403:
			return clauscan.Errorf(clauscan.EUNAUTHORIZED, "gemini: %s", apiErr.Message)
		case apiErr.Code == 400:
			return clauscan.Errorf(clauscan.EINVALID, "gemini: %s", apiErr.Message)
		}
	}
	return clauscan.Errorf(clauscan.EINTERNAL, "gemini: %s", err)
}
