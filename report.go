package clauscan

import (
	"context"
	"strings"
	"time"
)

// ContractType constants. The set mirrors the categories the analysis
// prompt asks the model to choose from; Commercial is the fallback when
// the model answers outside the set.
const (
	ContractNDA        = "NDA"
	ContractDPA        = "DPA"
	ContractEmployment = "Employment"
	ContractMSA        = "MSA"
	ContractSLA        = "SLA"
	ContractLicense    = "License"
	ContractPurchase   = "Purchase"
	ContractLease      = "Lease"
	ContractCommercial = "Commercial"
)

var contractTypes = map[string]bool{
	ContractNDA:        true,
	ContractDPA:        true,
	ContractEmployment: true,
	ContractMSA:        true,
	ContractSLA:        true,
	ContractLicense:    true,
	ContractPurchase:   true,
	ContractLease:      true,
	ContractCommercial: true,
}

// ValidContractType reports whether s is a known contract type.
func ValidContractType(s string) bool {
	return contractTypes[s]
}

// ClauseType identifies a category of risk-bearing contract clause.
type ClauseType string

// Clause types the extraction stage recognizes.
const (
	ClauseTermination       ClauseType = "termination"
	ClauseLiability         ClauseType = "liability"
	ClauseIndemnification   ClauseType = "indemnification"
	ClauseConfidentiality   ClauseType = "confidentiality"
	ClauseGoverningLaw      ClauseType = "governing_law"
	ClausePaymentTerms      ClauseType = "payment_terms"
	ClauseIP                ClauseType = "intellectual_property"
	ClauseForceMajeure      ClauseType = "force_majeure"
	ClauseDisputeResolution ClauseType = "dispute_resolution"
	ClauseNonCompete        ClauseType = "non_compete"
)

var clauseTypes = map[ClauseType]bool{
	ClauseTermination:       true,
	ClauseLiability:         true,
	ClauseIndemnification:   true,
	ClauseConfidentiality:   true,
	ClauseGoverningLaw:      true,
	ClausePaymentTerms:      true,
	ClauseIP:                true,
	ClauseForceMajeure:      true,
	ClauseDisputeResolution: true,
	ClauseNonCompete:        true,
}

// ValidClauseType reports whether t is a known clause type.
func ValidClauseType(t ClauseType) bool {
	return clauseTypes[t]
}

// ClauseTypes returns the known clause types in a stable order for
// prompt construction.
func ClauseTypes() []ClauseType {
	return []ClauseType{
		ClauseTermination,
		ClauseLiability,
		ClauseIndemnification,
		ClauseConfidentiality,
		ClauseGoverningLaw,
		ClausePaymentTerms,
		ClauseIP,
		ClauseForceMajeure,
		ClauseDisputeResolution,
		ClauseNonCompete,
	}
}

// RiskLevel grades the severity of a clause risk.
type RiskLevel string

// Risk levels.
const (
	RiskLow    RiskLevel = "low"
	RiskMedium RiskLevel = "medium"
	RiskHigh   RiskLevel = "high"
)

// ValidRiskLevel reports whether l is a known risk level.
func ValidRiskLevel(l RiskLevel) bool {
	return l == RiskLow || l == RiskMedium || l == RiskHigh
}

// ClauseFinding is one clause identified by the extraction stage.
// Findings appear in source order.
type ClauseFinding struct {
	Type    ClauseType `json:"type"`
	Excerpt string     `json:"excerpt"`
	Summary string     `json:"summary"`
}

// RiskAssessment grades one ClauseFinding. Clause references a finding
// present in the same report.
type RiskAssessment struct {
	Clause    ClauseType `json:"clause"`
	Level     RiskLevel  `json:"level"`
	Rationale string     `json:"rationale"`
	Revision  string     `json:"revision"`
}

// ResearchHit is one result from the regulatory research step.
type ResearchHit struct {
	Title   string `json:"title"`
	Snippet string `json:"snippet"`
	Source  string `json:"source"`
}

// ResearchContext holds jurisdiction research injected into the risk
// assessment stage. An empty context is valid and means research was
// unavailable or disabled.
type ResearchContext struct {
	Hits []ResearchHit `json:"hits"`
}

// Empty reports whether the context carries no research results.
func (c *ResearchContext) Empty() bool {
	return c == nil || len(c.Hits) == 0
}

// GoverningLawUnknown is the normalized value when a contract names no
// governing law.
const GoverningLawUnknown = "Unknown"

// NormalizeGoverningLaw maps the model's "no governing law" variants
// onto GoverningLawUnknown and trims whitespace from everything else.
func NormalizeGoverningLaw(s string) string {
	s = strings.TrimSpace(s)
	switch strings.ToLower(s) {
	case "", "unknown", "none", "not specified", "not mentioned":
		return GoverningLawUnknown
	}
	return s
}

// Stage identifies one step of the analysis pipeline.
type Stage string

// Pipeline stages in execution order.
const (
	StageExtraction       Stage = "extraction"
	StageTypeDetection    Stage = "type_detection"
	StageLawDetection     Stage = "law_detection"
	StageClauseExtraction Stage = "clause_extraction"
	StageRiskAssessment   Stage = "risk_assessment"
	StageRecommendation   Stage = "recommendation"
)

// AnalysisReport is the terminal artifact of one pipeline run. It is
// immutable once produced. A report with a FailedStage carries the
// output of every stage that completed before the failure.
type AnalysisReport struct {
	ID              string           `json:"id"`
	DocumentName    string           `json:"documentName"`
	Backend         string           `json:"backend"`
	TextHash        string           `json:"textHash"`
	ContractType    string           `json:"contractType"`
	GoverningLaw    string           `json:"governingLaw"`
	Clauses         []ClauseFinding  `json:"clauses"`
	Risks           []RiskAssessment `json:"risks"`
	Recommendations []string         `json:"recommendations"`
	Research        *ResearchContext `json:"research,omitempty"`
	FailedStage     Stage            `json:"failedStage,omitempty"`
	FailureReason   string           `json:"failureReason,omitempty"`
	CreatedAt       time.Time        `json:"createdAt"`
}

// Complete reports whether every stage produced output.
func (r *AnalysisReport) Complete() bool {
	return r.FailedStage == ""
}

// Validate returns an error if the report contains invalid fields or if
// a risk assessment references a clause finding absent from the report.
func (r *AnalysisReport) Validate() error {
	if r.DocumentName == "" {
		return Errorf(EINVALID, "report document name required")
	}
	found := make(map[ClauseType]bool, len(r.Clauses))
	for _, c := range r.Clauses {
		found[c.Type] = true
	}
	for _, risk := range r.Risks {
		if !found[risk.Clause] {
			return Errorf(EINVALID, "risk assessment references unknown clause %q", risk.Clause)
		}
	}
	return nil
}

// ReportService represents a service for managing analysis reports.
type ReportService interface {
	// CreateReport persists a new report.
	CreateReport(ctx context.Context, report *AnalysisReport) error

	// FindReportByID retrieves a report by ID.
	// Returns ENOTFOUND if the report does not exist.
	FindReportByID(ctx context.Context, id string) (*AnalysisReport, error)

	// FindReports retrieves reports matching the filter, newest first.
	FindReports(ctx context.Context, filter ReportFilter) ([]*AnalysisReport, error)

	// DeleteReport permanently removes a report.
	// Returns ENOTFOUND if the report does not exist.
	DeleteReport(ctx context.Context, id string) error
}

// ReportFilter represents a filter for FindReports.
type ReportFilter struct {
	ID           *string `json:"id"`
	DocumentName *string `json:"documentName"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}

// ReportWriter writes rendered reports to storage.
type ReportWriter interface {
	// WriteReport renders and persists a report, returning the path it
	// was written to.
	WriteReport(ctx context.Context, report *AnalysisReport) (string, error)
}
