package mock

import (
	"context"

	"github.com/clauscan/clauscan"
)

var _ clauscan.Generator = (*Generator)(nil)

// Generator is a mock implementation of clauscan.Generator.
type Generator struct {
	GenerateFn func(ctx context.Context, req *clauscan.GenerateRequest) (string, error)
}

func (g *Generator) Generate(ctx context.Context, req *clauscan.GenerateRequest) (string, error) {
	return g.GenerateFn(ctx, req)
}
