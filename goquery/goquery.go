// Package goquery extracts contract text from HTML documents by
// scraping visible text. It is the last-resort HTML backend: no
// content detection, just the document stripped of scripts, styles,
// and page chrome.
package goquery

import (
	"bytes"
	"context"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/clauscan/clauscan"
)

// Ensure Backend implements clauscan.Backend at compile time.
var _ clauscan.Backend = (*Backend)(nil)

// Elements whose text never belongs to the contract body.
const chromeSelector = "script, style, noscript, nav, header, footer, aside"

// Block-level elements collected as lines of text.
const blockSelector = "h1, h2, h3, h4, h5, h6, p, li, td, th, blockquote, pre"

// Backend scrapes the visible text of an HTML document.
type Backend struct{}

// NewBackend creates a new Backend.
func NewBackend() *Backend {
	return &Backend{}
}

// Name returns the backend identifier used in extraction records.
func (b *Backend) Name() string {
	return "goquery"
}

// ExtractText strips page chrome and returns the remaining block-level
// text, one block per line.
func (b *Backend) ExtractText(ctx context.Context, data []byte) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if len(data) == 0 {
		return "", clauscan.Errorf(clauscan.EEXTRACTION, "empty HTML input")
	}

	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(data))
	if err != nil {
		return "", clauscan.Errorf(clauscan.EEXTRACTION, "parse html: %s", err)
	}

	doc.Find(chromeSelector).Remove()

	var lines []string
	doc.Find(blockSelector).Each(func(_ int, s *goquery.Selection) {
		// Skip containers whose text is already covered by a nested
		// block, e.g. an li wrapping a p.
		if s.Children().Is(blockSelector) {
			return
		}
		if text := strings.TrimSpace(s.Text()); text != "" {
			lines = append(lines, text)
		}
	})

	if len(lines) == 0 {
		if text := strings.TrimSpace(doc.Find("body").Text()); text != "" {
			return text, nil
		}
		return "", clauscan.Errorf(clauscan.EEXTRACTION, "no visible text found")
	}
	return strings.Join(lines, "\n"), nil
}
