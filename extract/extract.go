// Package extract provides ordered-fallback text extraction. It tries
// the backends registered for a document's format in order, treats
// empty output as failure, and normalizes whatever text survives.
package extract

import (
	"context"
	"fmt"
	"strings"

	"github.com/clauscan/clauscan"
)

// Ensure Extractor implements clauscan.Extractor at compile time.
var _ clauscan.Extractor = (*Extractor)(nil)

// Extractor extracts text from documents using per-format backend chains.
type Extractor struct {
	backends map[clauscan.Format][]clauscan.Backend
}

// NewExtractor creates an Extractor with no backends registered.
func NewExtractor() *Extractor {
	return &Extractor{backends: make(map[clauscan.Format][]clauscan.Backend)}
}

// Register appends a backend to the fallback chain for a format.
// Backends are attempted in registration order.
func (e *Extractor) Register(format clauscan.Format, backends ...clauscan.Backend) {
	e.backends[format] = append(e.backends[format], backends...)
}

// Formats returns the formats with at least one registered backend.
func (e *Extractor) Formats() []clauscan.Format {
	formats := make([]clauscan.Format, 0, len(e.backends))
	for f := range e.backends {
		formats = append(formats, f)
	}
	return formats
}

// Extract tries each backend for the document's format in order and
// returns the first non-empty normalized text. A backend that errors or
// produces empty text is skipped; no backend is retried. Returns
// EUNSUPPORTED when the format has no registered backends and
// EEXTRACTION when every backend has been exercised and failed.
func (e *Extractor) Extract(ctx context.Context, doc *clauscan.Document) (*clauscan.ExtractedText, error) {
	if err := doc.Validate(); err != nil {
		return nil, err
	}

	chain, ok := e.backends[doc.Format]
	if !ok || len(chain) == 0 {
		return nil, clauscan.Errorf(clauscan.EUNSUPPORTED, "unsupported document format %q", doc.Format)
	}

	var attempts []string
	for _, backend := range chain {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		text, err := backend.ExtractText(ctx, doc.Data)
		if err != nil {
			attempts = append(attempts, fmt.Sprintf("%s: %v", backend.Name(), err))
			continue
		}

		normalized := clauscan.NormalizeText(text)
		if normalized == "" {
			attempts = append(attempts, fmt.Sprintf("%s: empty text", backend.Name()))
			continue
		}

		return &clauscan.ExtractedText{
			Text:      normalized,
			Backend:   backend.Name(),
			CharCount: len([]rune(normalized)),
		}, nil
	}

	return nil, clauscan.Errorf(clauscan.EEXTRACTION, "all %s backends failed: %s",
		doc.Format, strings.Join(attempts, "; "))
}
