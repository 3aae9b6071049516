package clauscan

import (
	"fmt"
	"strings"
)

// FormatReport renders a report as a structured markdown document:
// contract type, governing law, clause list with per-clause risk level
// and rationale, recommendations, and research sources. Incomplete
// reports carry a failure notice after the stages that did complete.
func FormatReport(r *AnalysisReport) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# Contract Analysis: %s\n\n", r.DocumentName)
	fmt.Fprintf(&b, "- **Contract type:** %s\n", orUnknown(r.ContractType))
	fmt.Fprintf(&b, "- **Governing law:** %s\n", orUnknown(r.GoverningLaw))

	if len(r.Clauses) > 0 {
		b.WriteString("\n## Clauses\n")
		risks := riskIndex(r.Risks)
		for _, clause := range r.Clauses {
			fmt.Fprintf(&b, "\n### %s\n\n", clauseTitle(clause.Type))
			if clause.Summary != "" {
				b.WriteString(clause.Summary + "\n\n")
			}
			fmt.Fprintf(&b, "> %s\n", clause.Excerpt)
			if risk, ok := risks[clause.Type]; ok {
				fmt.Fprintf(&b, "\n**Risk: %s** — %s\n", risk.Level, risk.Rationale)
				if risk.Revision != "" {
					fmt.Fprintf(&b, "\nSuggested revision: %s\n", risk.Revision)
				}
			}
		}
	} else if r.Complete() {
		b.WriteString("\nNo risk-bearing clauses were identified.\n")
	}

	if len(r.Recommendations) > 0 {
		b.WriteString("\n## Recommendations\n\n")
		for _, rec := range r.Recommendations {
			fmt.Fprintf(&b, "- %s\n", rec)
		}
	}

	if !r.Research.Empty() {
		b.WriteString("\n## Research\n\n")
		for _, hit := range r.Research.Hits {
			fmt.Fprintf(&b, "- %s (%s)\n", hit.Title, hit.Source)
		}
	}

	if !r.Complete() {
		fmt.Fprintf(&b, "\n## Incomplete\n\nAnalysis stopped at stage %q: %s\n", r.FailedStage, r.FailureReason)
	}

	return b.String()
}

func orUnknown(s string) string {
	if s == "" {
		return GoverningLawUnknown
	}
	return s
}

// clauseTitle renders a clause type as a heading, e.g.
// payment_terms → "Payment Terms".
func clauseTitle(t ClauseType) string {
	words := strings.Split(string(t), "_")
	for i, w := range words {
		if w == "" {
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}

func riskIndex(risks []RiskAssessment) map[ClauseType]RiskAssessment {
	m := make(map[ClauseType]RiskAssessment, len(risks))
	for _, r := range risks {
		if _, ok := m[r.Clause]; !ok {
			m[r.Clause] = r
		}
	}
	return m
}
