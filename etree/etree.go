// Package etree extracts text from Word documents by reading the raw
// OOXML markup. It is the fallback DOCX backend: it ignores document
// structure beyond paragraphs, which lets it survive files the native
// parser rejects.
package etree

import (
	"archive/zip"
	"bytes"
	"context"
	"io"
	"strings"

	"github.com/beevik/etree"
	"github.com/clauscan/clauscan"
)

// Ensure Backend implements clauscan.Backend at compile time.
var _ clauscan.Backend = (*Backend)(nil)

// Backend extracts text from DOCX data by parsing word/document.xml.
type Backend struct{}

// NewBackend creates a new Backend.
func NewBackend() *Backend {
	return &Backend{}
}

// Name returns the backend identifier used in extraction records.
func (b *Backend) Name() string {
	return "etree"
}

// ExtractText unzips the document, parses its main part, and joins the
// text runs of each paragraph, one paragraph per line.
func (b *Backend) ExtractText(ctx context.Context, data []byte) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	xmlData, err := readDocumentPart(data)
	if err != nil {
		return "", err
	}

	doc := etree.NewDocument()
	if err := doc.ReadFromBytes(xmlData); err != nil {
		return "", clauscan.Errorf(clauscan.EEXTRACTION, "parse document.xml: %s", err)
	}

	var sb strings.Builder
	for _, p := range doc.FindElements("//w:p") {
		for _, t := range p.FindElements(".//w:t") {
			sb.WriteString(t.Text())
		}
		sb.WriteString("\n")
	}
	return sb.String(), nil
}

// readDocumentPart returns the word/document.xml entry of a DOCX
// archive.
func readDocumentPart(data []byte) ([]byte, error) {
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, clauscan.Errorf(clauscan.EEXTRACTION, "open docx archive: %s", err)
	}

	for _, f := range zr.File {
		if f.Name != "word/document.xml" {
			continue
		}
		rc, err := f.Open()
		if err != nil {
			return nil, clauscan.Errorf(clauscan.EEXTRACTION, "open document.xml: %s", err)
		}
		defer rc.Close()

		xmlData, err := io.ReadAll(rc)
		if err != nil {
			return nil, clauscan.Errorf(clauscan.EEXTRACTION, "read document.xml: %s", err)
		}
		return xmlData, nil
	}
	return nil, clauscan.Errorf(clauscan.EEXTRACTION, "archive has no word/document.xml")
}
