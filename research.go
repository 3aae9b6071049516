package clauscan

import "context"

// Researcher retrieves jurisdiction-specific regulatory context from an
// external search API. Research is an enhancement: callers treat any
// failure as an empty ResearchContext rather than aborting the pipeline.
type Researcher interface {
	// Research queries for regulatory context on a topic (typically the
	// contract type) within a jurisdiction (typically the governing law).
	Research(ctx context.Context, jurisdiction, topic string) (*ResearchContext, error)
}
