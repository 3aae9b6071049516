package mock

import (
	"context"

	"github.com/clauscan/clauscan"
)

var _ clauscan.Backend = (*Backend)(nil)

// Backend is a mock implementation of clauscan.Backend.
type Backend struct {
	NameFn        func() string
	ExtractTextFn func(ctx context.Context, data []byte) (string, error)
}

func (b *Backend) Name() string {
	if b.NameFn == nil {
		return "mock"
	}
	return b.NameFn()
}

func (b *Backend) ExtractText(ctx context.Context, data []byte) (string, error) {
	return b.ExtractTextFn(ctx, data)
}
