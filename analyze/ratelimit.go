package analyze

import (
	"context"

	"github.com/clauscan/clauscan"
	"golang.org/x/time/rate"
)

// Ensure LimitedGenerator implements clauscan.Generator at compile time.
var _ clauscan.Generator = (*LimitedGenerator)(nil)

// LimitedGenerator wraps a Generator with a shared rate limiter so
// concurrent pipeline runs stay within the model provider's request
// limits.
type LimitedGenerator struct {
	Next    clauscan.Generator
	Limiter *rate.Limiter
}

// NewLimitedGenerator creates a LimitedGenerator allowing rps requests
// per second with a burst of one.
func NewLimitedGenerator(next clauscan.Generator, rps float64) *LimitedGenerator {
	return &LimitedGenerator{
		Next:    next,
		Limiter: rate.NewLimiter(rate.Limit(rps), 1),
	}
}

// Generate waits for the limiter and delegates to the wrapped generator.
func (g *LimitedGenerator) Generate(ctx context.Context, req *clauscan.GenerateRequest) (string, error) {
	if err := g.Limiter.Wait(ctx); err != nil {
		return "", err
	}
	return g.Next.Generate(ctx, req)
}
