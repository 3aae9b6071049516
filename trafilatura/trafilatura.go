// Package trafilatura extracts contract text from HTML documents using
// go-trafilatura's main-content detection. It is the primary HTML
// backend: contracts published as web pages carry navigation and
// boilerplate that would otherwise pollute the analysis.
package trafilatura

import (
	"bytes"
	"context"
	"strings"

	"github.com/clauscan/clauscan"
	"github.com/markusmobius/go-trafilatura"
	"golang.org/x/net/html"
)

// Ensure Backend implements clauscan.Backend at compile time.
var _ clauscan.Backend = (*Backend)(nil)

// Backend extracts the main content of an HTML document and converts
// it to Markdown.
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
	return "trafilatura"
}

// ExtractText locates the main content node and converts it to
// Markdown text.
func (b *Backend) ExtractText(ctx context.Context, data []byte) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if len(data) == 0 {
		return "", clauscan.Errorf(clauscan.EEXTRACTION, "empty HTML input")
	}

	opts := trafilatura.Options{
		EnableFallback: true,
	}

	result, err := trafilatura.Extract(bytes.NewReader(data), opts)
	if err != nil {
		return "", clauscan.Errorf(clauscan.EEXTRACTION, "trafilatura: %s", err)
	}
	if result.ContentNode == nil {
		return "", clauscan.Errorf(clauscan.EEXTRACTION, "no main content found")
	}

	contentHTML, err := renderNode(result.ContentNode)
	if err != nil {
		return "", clauscan.Errorf(clauscan.EEXTRACTION, "render content: %s", err)
	}

	markdown, err := b.converter.Convert(contentHTML)
	if err != nil {
		return "", clauscan.Errorf(clauscan.EEXTRACTION, "convert content: %s", err)
	}

	if title := strings.TrimSpace(result.Metadata.Title); title != "" {
		return "# " + title + "\n\n" + markdown, nil
	}
	return markdown, nil
}

// renderNode converts an html.Node to a string.
func renderNode(n *html.Node) (string, error) {
	var buf bytes.Buffer
	if err := html.Render(&buf, n); err != nil {
		return "", err
	}
	return buf.String(), nil
}
