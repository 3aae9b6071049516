package analyze

import (
	"fmt"
	"strings"

	"github.com/clauscan/clauscan"
)

// System instructions for the analysis stages.
const (
	analystSystem  = "You are an expert contract analyst. Answer based only on the contract text provided. Respond with JSON only, no prose and no code fences."
	attorneySystem = "You are an expert contract attorney. Consider unusual or one-sided terms, missing standard protections, overly broad language, compliance with the governing law, and industry best practices. Respond with JSON only, no prose and no code fences."
)

// Per-stage limits on how much contract text is sent to the model, in
// characters. Later stages get larger samples because they reason over
// clause-level detail.
const (
	typeSampleLimit   = 4000
	lawSampleLimit    = 4000
	clauseSampleLimit = 6000
	riskSampleLimit   = 8000
)

// MaxResearchHits caps how many research results are injected into the
// risk assessment prompt.
const MaxResearchHits = 5

// truncate limits text to n characters (runes), cutting at the limit.
func truncate(text string, n int) string {
	runes := []rune(text)
	if len(runes) <= n {
		return text
	}
	return string(runes[:n])
}

// BuildTypePrompt builds the contract type detection request.
func BuildTypePrompt(text string) *clauscan.GenerateRequest {
	var sb strings.Builder
	sb.WriteString("Determine the type of the following contract.\n\n")
	sb.WriteString("Contract types to consider:\n")
	sb.WriteString("- NDA (Non-Disclosure Agreement)\n")
	sb.WriteString("- DPA (Data Processing Agreement)\n")
	sb.WriteString("- Employment (Employment Contract)\n")
	sb.WriteString("- MSA (Master Service Agreement)\n")
	sb.WriteString("- SLA (Service Level Agreement)\n")
	sb.WriteString("- License (License Agreement)\n")
	sb.WriteString("- Purchase (Purchase Agreement)\n")
	sb.WriteString("- Lease (Lease Agreement)\n")
	sb.WriteString("- Commercial (General Commercial Contract)\n\n")
	sb.WriteString(`Respond with JSON: {"candidates": ["..."]} listing the matching types from the list above, most plausible first.`)
	sb.WriteString("\n\n<contract>\n")
	sb.WriteString(truncate(text, typeSampleLimit))
	sb.WriteString("\n</contract>")

	return &clauscan.GenerateRequest{System: analystSystem, Prompt: sb.String(), JSON: true}
}

// BuildLawPrompt builds the governing law detection request.
func BuildLawPrompt(text string) *clauscan.GenerateRequest {
	var sb strings.Builder
	sb.WriteString("Identify the governing law or jurisdiction of the following contract. ")
	sb.WriteString(`Look for phrases like "governed by the laws of", "subject to the laws of", "jurisdiction of", and "courts of".`)
	sb.WriteString("\n\n")
	sb.WriteString(`Respond with JSON: {"candidates": ["..."]} listing country or jurisdiction names (e.g. "United States", "Delaware"), most plausible first. Use ["Unknown"] when no governing law is mentioned.`)
	sb.WriteString("\n\n<contract>\n")
	sb.WriteString(truncate(text, lawSampleLimit))
	sb.WriteString("\n</contract>")

	return &clauscan.GenerateRequest{System: analystSystem, Prompt: sb.String(), JSON: true}
}

// BuildClausesPrompt builds the clause extraction request.
func BuildClausesPrompt(text string) *clauscan.GenerateRequest {
	var sb strings.Builder
	sb.WriteString("Extract the key clauses from the following contract. Identify clauses of these types if present:\n")
	for _, t := range clauscan.ClauseTypes() {
		fmt.Fprintf(&sb, "- %s\n", t)
	}
	sb.WriteString("\n")
	sb.WriteString(`Respond with JSON: {"clauses": [{"type": "...", "excerpt": "exact clause text", "summary": "brief summary"}]} in the order the clauses appear. Omit clause types that are not present; use an empty list when none are found.`)
	sb.WriteString("\n\n<contract>\n")
	sb.WriteString(truncate(text, clauseSampleLimit))
	sb.WriteString("\n</contract>")

	return &clauscan.GenerateRequest{System: analystSystem, Prompt: sb.String(), JSON: true}
}

// BuildRiskPrompt builds the risk assessment request. It receives the
// prior stages' outputs and optional jurisdiction research for context.
func BuildRiskPrompt(contractType, governingLaw string, clauses []clauscan.ClauseFinding, research *clauscan.ResearchContext) *clauscan.GenerateRequest {
	var sb strings.Builder
	sb.WriteString("Assess the risk of each extracted contract clause.\n\n")
	fmt.Fprintf(&sb, "Contract type: %s\n", contractType)
	fmt.Fprintf(&sb, "Governing law: %s\n", governingLaw)

	if !research.Empty() {
		sb.WriteString("\nRegulatory context:\n")
		hits := research.Hits
		if len(hits) > MaxResearchHits {
			hits = hits[:MaxResearchHits]
		}
		for _, hit := range hits {
			fmt.Fprintf(&sb, "- %s: %s (%s)\n", hit.Title, hit.Snippet, hit.Source)
		}
	}

	sb.WriteString("\n<clauses>\n")
	for _, c := range clauses {
		sb.WriteString("<clause>\n")
		fmt.Fprintf(&sb, "<type>%s</type>\n", c.Type)
		fmt.Fprintf(&sb, "<text>%s</text>\n", truncate(c.Excerpt, riskSampleLimit))
		sb.WriteString("</clause>\n")
	}
	sb.WriteString("</clauses>\n\n")
	sb.WriteString(`Respond with JSON: {"assessments": [{"clause": "...", "level": "low|medium|high", "rationale": "...", "revision": "suggested improvement"}]} with one assessment per clause.`)

	return &clauscan.GenerateRequest{System: attorneySystem, Prompt: sb.String(), JSON: true}
}

// BuildRecommendationsPrompt builds the final recommendation request
// from all prior stage outputs.
func BuildRecommendationsPrompt(report *clauscan.AnalysisReport) *clauscan.GenerateRequest {
	var sb strings.Builder
	sb.WriteString("Produce overall recommendations for improving the following contract based on its risk assessment.\n\n")
	fmt.Fprintf(&sb, "Contract type: %s\n", report.ContractType)
	fmt.Fprintf(&sb, "Governing law: %s\n", report.GoverningLaw)
	sb.WriteString("\n<assessments>\n")
	for _, r := range report.Risks {
		fmt.Fprintf(&sb, "- %s: %s risk. %s\n", r.Clause, r.Level, r.Rationale)
	}
	sb.WriteString("</assessments>\n\n")
	sb.WriteString(`Respond with JSON: {"recommendations": ["..."]} listing concrete, actionable recommendations ordered by importance.`)

	return &clauscan.GenerateRequest{System: attorneySystem, Prompt: sb.String(), JSON: true}
}

// BuildRepairPrompt asks the model to reformat a malformed response so
// it conforms to the expected schema.
func BuildRepairPrompt(raw, hint string, cause error) string {
	var sb strings.Builder
	sb.WriteString("Your previous response could not be parsed: ")
	sb.WriteString(clauscan.ErrorMessage(cause))
	sb.WriteString("\n\nReformat it as JSON matching exactly this shape:\n")
	sb.WriteString(hint)
	sb.WriteString("\n\nPrevious response:\n")
	sb.WriteString(raw)

	return sb.String()
}
