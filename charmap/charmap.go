// Package charmap extracts text from plain-text documents. UTF-8 input
// passes through unchanged; anything else is decoded as Latin-1, which
// maps every byte to a rune and so never fails.
package charmap

import (
	"context"
	"unicode/utf8"

	"github.com/clauscan/clauscan"
	"golang.org/x/text/encoding/charmap"
)

// Ensure Backend implements clauscan.Backend at compile time.
var _ clauscan.Backend = (*Backend)(nil)

// Backend extracts text from TXT data.
type Backend struct{}

// NewBackend creates a new Backend.
func NewBackend() *Backend {
	return &Backend{}
}

// Name returns the backend identifier used in extraction records.
func (b *Backend) Name() string {
	return "charmap"
}

// ExtractText decodes the document bytes to a UTF-8 string.
func (b *Backend) ExtractText(ctx context.Context, data []byte) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	if utf8.Valid(data) {
		return string(data), nil
	}

	decoded, err := charmap.ISO8859_1.NewDecoder().Bytes(data)
	if err != nil {
		return "", clauscan.Errorf(clauscan.EEXTRACTION, "decode latin-1: %s", err)
	}
	return string(decoded), nil
}
