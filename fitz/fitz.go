// Package fitz extracts text from PDF documents using the MuPDF
// rendering library. It is the primary PDF backend: MuPDF handles
// complex layouts and embedded fonts that pure-Go parsers choke on.
package fitz

import (
	"context"
	"strings"

	"github.com/clauscan/clauscan"
	"github.com/gen2brain/go-fitz"
)

// Ensure Backend implements clauscan.Backend at compile time.
var _ clauscan.Backend = (*Backend)(nil)

// Backend extracts text from PDF data via MuPDF.
type Backend struct{}

// NewBackend creates a new Backend.
func NewBackend() *Backend {
	return &Backend{}
}

// Name returns the backend identifier used in extraction records.
func (b *Backend) Name() string {
	return "fitz"
}

// ExtractText pulls the text of every page, one page per block.
func (b *Backend) ExtractText(ctx context.Context, data []byte) (string, error) {
	doc, err := fitz.NewFromMemory(data)
	if err != nil {
		return "", clauscan.Errorf(clauscan.EEXTRACTION, "open pdf: %s", err)
	}
	defer doc.Close()

	var sb strings.Builder
	for i := 0; i < doc.NumPage(); i++ {
		if err := ctx.Err(); err != nil {
			return "", err
		}
		text, err := doc.Text(i)
		if err != nil {
			return "", clauscan.Errorf(clauscan.EEXTRACTION, "page %d: %s", i+1, err)
		}
		sb.WriteString(text)
		sb.WriteString("\n")
	}
	return sb.String(), nil
}
