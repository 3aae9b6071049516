// Package docx extracts text from Word documents using a native OOXML
// parser. It is the primary DOCX backend and understands paragraphs
// and tables.
package docx

import (
	"bytes"
	"context"
	"strings"

	"github.com/clauscan/clauscan"
	"github.com/fumiama/go-docx"
)

// Ensure Backend implements clauscan.Backend at compile time.
var _ clauscan.Backend = (*Backend)(nil)

// Backend extracts text from DOCX data with github.com/fumiama/go-docx.
type Backend struct{}

// NewBackend creates a new Backend.
func NewBackend() *Backend {
	return &Backend{}
}

// Name returns the backend identifier used in extraction records.
func (b *Backend) Name() string {
	return "docx"
}

// ExtractText returns the document body as plain text, one paragraph
// per line. Table rows are rendered through the parser's flattening.
func (b *Backend) ExtractText(ctx context.Context, data []byte) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	doc, err := docx.Parse(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", clauscan.Errorf(clauscan.EEXTRACTION, "parse docx: %s", err)
	}

	var sb strings.Builder
	for _, item := range doc.Document.Body.Items {
		switch v := item.(type) {
		case *docx.Paragraph:
			sb.WriteString(v.String())
			sb.WriteString("\n")
		case *docx.Table:
			sb.WriteString(v.String())
			sb.WriteString("\n")
		}
	}
	return sb.String(), nil
}
