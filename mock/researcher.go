package mock

import (
	"context"

	"github.com/clauscan/clauscan"
)

var _ clauscan.Researcher = (*Researcher)(nil)

// Researcher is a mock implementation of clauscan.Researcher.
type Researcher struct {
	ResearchFn func(ctx context.Context, jurisdiction, topic string) (*clauscan.ResearchContext, error)
}

func (r *Researcher) Research(ctx context.Context, jurisdiction, topic string) (*clauscan.ResearchContext, error) {
	return r.ResearchFn(ctx, jurisdiction, topic)
}
