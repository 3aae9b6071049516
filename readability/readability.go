// Package readability extracts contract text from HTML documents using
// go-readability. It is the fallback HTML backend for pages where
// trafilatura finds no main content.
package readability

import (
	"context"
	"strings"

	"github.com/clauscan/clauscan"
	readability "github.com/go-shiori/go-readability"
)

// Ensure Backend implements clauscan.Backend at compile time.
var _ clauscan.Backend = (*Backend)(nil)

// Backend extracts an HTML document's readable content and converts it
// to Markdown.
type Backend struct {
	converter clauscan.Converter
}

// NewBackend creates a Backend that renders extracted content through
// the given converter.
func NewBackend(converter clauscan.Converter) *Backend {
	return &Backend{converter: converter}
}

// Name returns the backend identifier used in extraction records.
func (b *Backend) Name() string {
	return "readability"
}

// ExtractText runs the readability algorithm and converts the article
// content to Markdown text.
func (b *Backend) ExtractText(ctx context.Context, data []byte) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if len(data) == 0 {
		return "", clauscan.Errorf(clauscan.EEXTRACTION, "empty HTML input")
	}

	article, err := readability.FromReader(strings.NewReader(string(data)), nil)
	if err != nil {
		return "", clauscan.Errorf(clauscan.EEXTRACTION, "readability: %s", err)
	}
	if strings.TrimSpace(article.Content) == "" {
		return "", clauscan.Errorf(clauscan.EEXTRACTION, "no readable content found")
	}

	markdown, err := b.converter.Convert(article.Content)
	if err != nil {
		return "", clauscan.Errorf(clauscan.EEXTRACTION, "convert content: %s", err)
	}

	if title := strings.TrimSpace(article.Title); title != "" {
		return "# " + title + "\n\n" + markdown, nil
	}
	return markdown, nil
}
