package clauscan

import (
	"context"
	"strings"
)

// Format identifies a supported document format.
type Format string

// Supported document formats.
const (
	FormatPDF  Format = "pdf"
	FormatDOCX Format = "docx"
	FormatTXT  Format = "txt"
	FormatHTML Format = "html"
)

// ParseFormat parses a format name or file extension (with or without a
// leading dot) into a Format. Returns EUNSUPPORTED for anything outside
// the supported set.
func ParseFormat(s string) (Format, error) {
	switch Format(strings.ToLower(strings.TrimPrefix(s, "."))) {
	case FormatPDF:
		return FormatPDF, nil
	case FormatDOCX:
		return FormatDOCX, nil
	case FormatTXT, "text":
		return FormatTXT, nil
	case FormatHTML, "htm":
		return FormatHTML, nil
	}
	return "", Errorf(EUNSUPPORTED, "unsupported document format %q", s)
}

// Document represents an uploaded contract document. A document is
// immutable once created and lives only for the duration of one
// analysis request.
type Document struct {
	Name   string
	Format Format
	Data   []byte
}

// Validate returns an error if the document contains invalid fields.
func (d *Document) Validate() error {
	if d.Name == "" {
		return Errorf(EINVALID, "document name required")
	}
	if d.Format == "" {
		return Errorf(EINVALID, "document format required")
	}
	if len(d.Data) == 0 {
		return Errorf(EINVALID, "document data required")
	}
	return nil
}

// ExtractedText is the normalized text derived from a Document.
type ExtractedText struct {
	// Text is the normalized document text.
	Text string

	// Backend names the extraction backend that produced the text.
	Backend string

	// CharCount is the number of characters (runes) in Text.
	CharCount int
}

// Backend is one extraction strategy attempted for a document format.
type Backend interface {
	// Name identifies the backend in logs and extraction results.
	Name() string

	// ExtractText extracts raw text from document bytes. Returning an
	// error or empty text causes the caller to fall back to the next
	// backend in order.
	ExtractText(ctx context.Context, data []byte) (string, error)
}

// Extractor extracts normalized text from a document.
type Extractor interface {
	// Extract tries the backends configured for the document's format
	// in order and returns the first non-empty normalized text.
	// Returns EUNSUPPORTED for formats with no configured backends and
	// EEXTRACTION when every backend has been exercised and failed.
	Extract(ctx context.Context, doc *Document) (*ExtractedText, error)
}

// Converter converts HTML to Markdown.
type Converter interface {
	// Convert transforms HTML content into Markdown.
	// The input should be clean HTML (e.g., a content extractor's output).
	Convert(html string) (string, error)
}
