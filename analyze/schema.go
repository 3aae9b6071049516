package analyze

import (
	"github.com/clauscan/clauscan"
)

// Ensure stage results implement Schema at compile time.
var (
	_ Schema = (*TypeResult)(nil)
	_ Schema = (*LawResult)(nil)
	_ Schema = (*ClausesResult)(nil)
	_ Schema = (*RiskResult)(nil)
	_ Schema = (*RecommendationsResult)(nil)
)

// TypeResult is the type detection stage output. Candidates are ranked
// most plausible first; the pipeline takes the first and performs no
// disambiguation of its own.
type TypeResult struct {
	Candidates []string `json:"candidates"`
}

func (r *TypeResult) Hint() string {
	return `{"candidates": ["NDA", "..."]} — contract type names ranked most plausible first, at least one entry`
}

func (r *TypeResult) Validate() error {
	if len(r.Candidates) == 0 {
		return clauscan.Errorf(clauscan.ESCHEMA, "candidates must contain at least one contract type")
	}
	for _, c := range r.Candidates {
		if c == "" {
			return clauscan.Errorf(clauscan.ESCHEMA, "candidates must not contain empty entries")
		}
	}
	return nil
}

// ContractType returns the first-ranked candidate, mapped to Commercial
// when the model answered outside the known set.
func (r *TypeResult) ContractType() string {
	if clauscan.ValidContractType(r.Candidates[0]) {
		return r.Candidates[0]
	}
	return clauscan.ContractCommercial
}

// LawResult is the governing law detection stage output. Candidates are
// ranked most plausible first.
type LawResult struct {
	Candidates []string `json:"candidates"`
}

func (r *LawResult) Hint() string {
	return `{"candidates": ["Delaware", "..."]} — jurisdiction names ranked most plausible first, or ["Unknown"] when no governing law is named`
}

func (r *LawResult) Validate() error {
	if len(r.Candidates) == 0 {
		return clauscan.Errorf(clauscan.ESCHEMA, "candidates must contain at least one jurisdiction")
	}
	return nil
}

// GoverningLaw returns the first-ranked candidate, normalized.
func (r *LawResult) GoverningLaw() string {
	return clauscan.NormalizeGoverningLaw(r.Candidates[0])
}

// ClausesResult is the clause extraction stage output. An empty clause
// list is valid: a contract with no recognizable risk-bearing clauses
// is a legitimate outcome.
type ClausesResult struct {
	Clauses []clauscan.ClauseFinding `json:"clauses"`
}

func (r *ClausesResult) Hint() string {
	return `{"clauses": [{"type": "termination", "excerpt": "exact clause text", "summary": "brief summary"}]} — type must be one of the listed clause types; empty list when none found`
}

func (r *ClausesResult) Validate() error {
	for _, c := range r.Clauses {
		if !clauscan.ValidClauseType(c.Type) {
			return clauscan.Errorf(clauscan.ESCHEMA, "unknown clause type %q", c.Type)
		}
		if c.Excerpt == "" {
			return clauscan.Errorf(clauscan.ESCHEMA, "clause %q has no excerpt", c.Type)
		}
	}
	return nil
}

// RiskResult is the risk assessment stage output. Every assessment must
// reference a clause finding from the extraction stage.
type RiskResult struct {
	Assessments []clauscan.RiskAssessment `json:"assessments"`

	known map[clauscan.ClauseType]bool
}

// NewRiskResult creates a RiskResult that accepts assessments only for
// the given clause findings.
func NewRiskResult(clauses []clauscan.ClauseFinding) *RiskResult {
	known := make(map[clauscan.ClauseType]bool, len(clauses))
	for _, c := range clauses {
		known[c.Type] = true
	}
	return &RiskResult{known: known}
}

func (r *RiskResult) Hint() string {
	return `{"assessments": [{"clause": "termination", "level": "low", "rationale": "why", "revision": "suggested change"}]} — clause must name an extracted clause; level is low, medium, or high`
}

func (r *RiskResult) Validate() error {
	for _, a := range r.Assessments {
		if !r.known[a.Clause] {
			return clauscan.Errorf(clauscan.ESCHEMA, "assessment references unknown clause %q", a.Clause)
		}
		if !clauscan.ValidRiskLevel(a.Level) {
			return clauscan.Errorf(clauscan.ESCHEMA, "unknown risk level %q for clause %q", a.Level, a.Clause)
		}
	}
	return nil
}

// RecommendationsResult is the recommendation stage output.
type RecommendationsResult struct {
	Recommendations []string `json:"recommendations"`
}

func (r *RecommendationsResult) Hint() string {
	return `{"recommendations": ["actionable recommendation", "..."]} — empty list when nothing to recommend`
}

func (r *RecommendationsResult) Validate() error {
	for _, rec := range r.Recommendations {
		if rec == "" {
			return clauscan.Errorf(clauscan.ESCHEMA, "recommendations must not contain empty entries")
		}
	}
	return nil
}
