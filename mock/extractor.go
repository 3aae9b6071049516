package mock

import (
	"context"

	"github.com/clauscan/clauscan"
)

var _ clauscan.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of clauscan.Extractor.
type Extractor struct {
	ExtractFn func(ctx context.Context, doc *clauscan.Document) (*clauscan.ExtractedText, error)
}

func (e *Extractor) Extract(ctx context.Context, doc *clauscan.Document) (*clauscan.ExtractedText, error) {
	return e.ExtractFn(ctx, doc)
}
