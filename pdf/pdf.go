// Package pdf extracts text from PDF documents using a pure-Go parser.
// It serves as the fallback PDF backend when MuPDF fails.
package pdf

import (
	"bytes"
	"context"
	"io"

	"github.com/clauscan/clauscan"
	"github.com/ledongthuc/pdf"
)

// Ensure Backend implements clauscan.Backend at compile time.
var _ clauscan.Backend = (*Backend)(nil)

// Backend extracts text from PDF data with github.com/ledongthuc/pdf.
type Backend struct{}

// NewBackend creates a new Backend.
func NewBackend() *Backend {
	return &Backend{}
}

// Name returns the backend identifier used in extraction records.
func (b *Backend) Name() string {
	return "pdf"
}

// ExtractText returns the document's plain text. The underlying parser
// panics on some malformed files, so the panic is recovered and
// reported as an extraction error.
func (b *Backend) ExtractText(ctx context.Context, data []byte) (text string, err error) {
	defer func() {
		if r := recover(); r != nil {
			text = ""
			err = clauscan.Errorf(clauscan.EEXTRACTION, "malformed pdf: %v", r)
		}
	}()

	if err := ctx.Err(); err != nil {
		return "", err
	}

	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", clauscan.Errorf(clauscan.EEXTRACTION, "open pdf: %s", err)
	}

	plain, err := reader.GetPlainText()
	if err != nil {
		return "", clauscan.Errorf(clauscan.EEXTRACTION, "read pdf text: %s", err)
	}

	var buf bytes.Buffer
	if _, err := io.Copy(&buf, plain); err != nil {
		return "", clauscan.Errorf(clauscan.EEXTRACTION, "read pdf text: %s", err)
	}
	return buf.String(), nil
}
