package clauscan_test

import (
	"testing"

	"github.com/clauscan/clauscan"
	"github.com/stretchr/testify/assert"
)

func TestFormatReport(t *testing.T) {
	t.Parallel()

	t.Run("renders clauses with matching risk assessments", func(t *testing.T) {
		t.Parallel()

		report := &clauscan.AnalysisReport{
			DocumentName: "nda.pdf",
			ContractType: clauscan.ContractNDA,
			GoverningLaw: "Delaware",
			Clauses: []clauscan.ClauseFinding{
				{Type: clauscan.ClauseTermination, Excerpt: "Either party may terminate with 30 days notice.", Summary: "Mutual termination right."},
			},
			Risks: []clauscan.RiskAssessment{
				{Clause: clauscan.ClauseTermination, Level: clauscan.RiskLow, Rationale: "Standard notice period.", Revision: "None needed."},
			},
			Recommendations: []string{"Add a survival clause."},
		}

		out := clauscan.FormatReport(report)

		assert.Contains(t, out, "# Contract Analysis: nda.pdf")
		assert.Contains(t, out, "**Contract type:** NDA")
		assert.Contains(t, out, "**Governing law:** Delaware")
		assert.Contains(t, out, "### Termination")
		assert.Contains(t, out, "> Either party may terminate with 30 days notice.")
		assert.Contains(t, out, "**Risk: low** — Standard notice period.")
		assert.Contains(t, out, "Suggested revision: None needed.")
		assert.Contains(t, out, "- Add a survival clause.")
		assert.NotContains(t, out, "## Incomplete")
	})

	t.Run("renders multi-word clause headings", func(t *testing.T) {
		t.Parallel()

		report := &clauscan.AnalysisReport{
			DocumentName: "msa.pdf",
			Clauses:      []clauscan.ClauseFinding{{Type: clauscan.ClausePaymentTerms, Excerpt: "Net 30."}},
		}

		out := clauscan.FormatReport(report)

		assert.Contains(t, out, "### Payment Terms")
	})

	t.Run("complete report with zero clauses says so", func(t *testing.T) {
		t.Parallel()

		report := &clauscan.AnalysisReport{DocumentName: "empty.txt", ContractType: clauscan.ContractCommercial}

		out := clauscan.FormatReport(report)

		assert.Contains(t, out, "No risk-bearing clauses were identified.")
	})

	t.Run("incomplete report carries failure notice", func(t *testing.T) {
		t.Parallel()

		report := &clauscan.AnalysisReport{
			DocumentName:  "bad.pdf",
			ContractType:  clauscan.ContractNDA,
			FailedStage:   clauscan.StageClauseExtraction,
			FailureReason: "model response does not match schema",
		}

		out := clauscan.FormatReport(report)

		assert.Contains(t, out, "**Contract type:** NDA")
		assert.Contains(t, out, "## Incomplete")
		assert.Contains(t, out, `stage "clause_extraction"`)
	})

	t.Run("renders research sources", func(t *testing.T) {
		t.Parallel()

		report := &clauscan.AnalysisReport{
			DocumentName: "nda.pdf",
			Research: &clauscan.ResearchContext{
				Hits: []clauscan.ResearchHit{{Title: "Delaware NDA enforceability", Source: "https://example.com"}},
			},
		}

		out := clauscan.FormatReport(report)

		assert.Contains(t, out, "- Delaware NDA enforceability (https://example.com)")
	})
}
