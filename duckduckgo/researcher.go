// Package duckduckgo implements jurisdiction research using the
// DuckDuckGo text search tool.
package duckduckgo

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/clauscan/clauscan"
	"github.com/cloudwego/eino-ext/components/tool/duckduckgo/v2"
	"github.com/cloudwego/eino/components/tool"
)

// MaxResults is how many search results a single research query
// requests.
const MaxResults = 5

// Ensure Researcher implements clauscan.Researcher at compile time.
var _ clauscan.Researcher = (*Researcher)(nil)

// Researcher implements clauscan.Researcher by querying DuckDuckGo for
// contract-law context in a given jurisdiction.
type Researcher struct {
	search tool.InvokableTool
}

// NewResearcher creates a new Researcher.
func NewResearcher(ctx context.Context) (*Researcher, error) {
	search, err := duckduckgo.NewTextSearchTool(ctx, &duckduckgo.Config{
		ToolName:   "legal_search",
		ToolDesc:   "search the web for contract law context",
		MaxResults: MaxResults,
		Region:     duckduckgo.RegionWT,
		Timeout:    10 * time.Second,
	})
	if err != nil {
		return nil, clauscan.Errorf(clauscan.EINTERNAL, "create search tool: %s", err)
	}
	return &Researcher{search: search}, nil
}

// Research searches for regulatory context on the given contract topic
// under the given jurisdiction's law.
func (r *Researcher) Research(ctx context.Context, jurisdiction, topic string) (*clauscan.ResearchContext, error) {
	if jurisdiction == "" || jurisdiction == clauscan.GoverningLawUnknown {
		return &clauscan.ResearchContext{}, nil
	}

	query := BuildQuery(jurisdiction, topic)
	payload, err := json.Marshal(map[string]string{"query": query})
	if err != nil {
		return nil, clauscan.Errorf(clauscan.EINTERNAL, "marshal query: %s", err)
	}

	response, err := r.search.InvokableRun(ctx, string(payload))
	if err != nil {
		return nil, clauscan.Errorf(clauscan.EUNAVAILABLE, "duckduckgo: %s", err)
	}

	return ParseResults(response)
}

// BuildQuery composes the search query for a jurisdiction and contract
// topic.
func BuildQuery(jurisdiction, topic string) string {
	return fmt.Sprintf("%s contract law %s clauses requirements", jurisdiction, topic)
}

// searchResponse mirrors the search tool's JSON output.
type searchResponse struct {
	Results []struct {
		Title   string `json:"title"`
		URL     string `json:"url"`
		Summary string `json:"summary"`
	} `json:"results"`
}

// ParseResults decodes the search tool's JSON response into a research
// context.
func ParseResults(response string) (*clauscan.ResearchContext, error) {
	var parsed searchResponse
	if err := json.Unmarshal([]byte(response), &parsed); err != nil {
		return nil, clauscan.Errorf(clauscan.EINTERNAL, "parse search response: %s", err)
	}

	research := &clauscan.ResearchContext{}
	for _, result := range parsed.Results {
		research.Hits = append(research.Hits, clauscan.ResearchHit{
			Title:   result.Title,
			Snippet: result.Summary,
			Source:  result.URL,
		})
	}
	return research, nil
}
