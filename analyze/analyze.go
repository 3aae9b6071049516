// Package analyze orchestrates the staged contract analysis pipeline.
// It coordinates text extraction, the LLM-driven analysis stages, and
// optional jurisdiction research into one analysis report.
package analyze

import (
	"context"
	"fmt"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/clauscan/clauscan"
)

// Analyzer runs the analysis pipeline for one document per call. An
// Analyzer is stateless across runs; concurrent runs share nothing but
// the configured services.
type Analyzer struct {
	Extractor  clauscan.Extractor
	Client     *Client
	Researcher clauscan.Researcher // optional; failures degrade to empty research
}

// ProgressType indicates the type of progress event.
type ProgressType int

const (
	StageStarted ProgressType = iota
	StageCompleted
	StageFailed
	Finished
)

// ProgressEvent reports progress as pipeline stages run.
type ProgressEvent struct {
	Type  ProgressType
	Stage clauscan.Stage
	Error error
}

// ProgressFunc is a callback for reporting pipeline progress.
type ProgressFunc func(event ProgressEvent)

// Analyze runs the full pipeline on a document: extraction, type
// detection, law detection, clause extraction, research, risk
// assessment, recommendations.
//
// On a stage failure the pipeline halts and returns the partial report
// (every earlier stage's output retained, FailedStage and FailureReason
// set) together with the error. The report is never nil.
func (a *Analyzer) Analyze(ctx context.Context, doc *clauscan.Document, progress ProgressFunc) (*clauscan.AnalysisReport, error) {
	report := &clauscan.AnalysisReport{
		DocumentName: doc.Name,
		CreatedAt:    time.Now().UTC(),
	}

	// Extraction
	emit(progress, ProgressEvent{Type: StageStarted, Stage: clauscan.StageExtraction})
	text, err := a.Extractor.Extract(ctx, doc)
	if err != nil {
		return a.fail(report, clauscan.StageExtraction, err, progress)
	}
	report.Backend = text.Backend
	report.TextHash = hashText(text.Text)
	emit(progress, ProgressEvent{Type: StageCompleted, Stage: clauscan.StageExtraction})

	// Type detection
	emit(progress, ProgressEvent{Type: StageStarted, Stage: clauscan.StageTypeDetection})
	var tr TypeResult
	if err := a.Client.CallJSON(ctx, BuildTypePrompt(text.Text), &tr); err != nil {
		return a.fail(report, clauscan.StageTypeDetection, err, progress)
	}
	report.ContractType = tr.ContractType()
	emit(progress, ProgressEvent{Type: StageCompleted, Stage: clauscan.StageTypeDetection})

	// Law detection
	emit(progress, ProgressEvent{Type: StageStarted, Stage: clauscan.StageLawDetection})
	var lr LawResult
	if err := a.Client.CallJSON(ctx, BuildLawPrompt(text.Text), &lr); err != nil {
		return a.fail(report, clauscan.StageLawDetection, err, progress)
	}
	report.GoverningLaw = lr.GoverningLaw()
	emit(progress, ProgressEvent{Type: StageCompleted, Stage: clauscan.StageLawDetection})

	// Clause extraction
	emit(progress, ProgressEvent{Type: StageStarted, Stage: clauscan.StageClauseExtraction})
	var cr ClausesResult
	if err := a.Client.CallJSON(ctx, BuildClausesPrompt(text.Text), &cr); err != nil {
		return a.fail(report, clauscan.StageClauseExtraction, err, progress)
	}
	report.Clauses = cr.Clauses
	emit(progress, ProgressEvent{Type: StageCompleted, Stage: clauscan.StageClauseExtraction})

	// A contract with no recognizable risk-bearing clauses is a valid
	// Complete outcome; there is nothing to research or assess.
	if len(report.Clauses) == 0 {
		report.Risks = []clauscan.RiskAssessment{}
		report.Recommendations = []string{}
		emit(progress, ProgressEvent{Type: Finished})
		return report, nil
	}

	// Research: an enhancement, not a required input. Any failure
	// degrades to an empty context.
	research := a.research(ctx, report.GoverningLaw, report.ContractType)
	if !research.Empty() {
		report.Research = research
	}

	// Risk assessment
	emit(progress, ProgressEvent{Type: StageStarted, Stage: clauscan.StageRiskAssessment})
	rr := NewRiskResult(report.Clauses)
	if err := a.Client.CallJSON(ctx, BuildRiskPrompt(report.ContractType, report.GoverningLaw, report.Clauses, research), rr); err != nil {
		return a.fail(report, clauscan.StageRiskAssessment, err, progress)
	}
	report.Risks = alignRisks(report.Clauses, rr.Assessments)
	emit(progress, ProgressEvent{Type: StageCompleted, Stage: clauscan.StageRiskAssessment})

	// Recommendations
	emit(progress, ProgressEvent{Type: StageStarted, Stage: clauscan.StageRecommendation})
	var rec RecommendationsResult
	if err := a.Client.CallJSON(ctx, BuildRecommendationsPrompt(report), &rec); err != nil {
		return a.fail(report, clauscan.StageRecommendation, err, progress)
	}
	report.Recommendations = rec.Recommendations
	emit(progress, ProgressEvent{Type: StageCompleted, Stage: clauscan.StageRecommendation})

	emit(progress, ProgressEvent{Type: Finished})
	return report, nil
}

// research queries the Researcher, swallowing every failure. Research
// failures never surface as report-level errors.
func (a *Analyzer) research(ctx context.Context, jurisdiction, topic string) *clauscan.ResearchContext {
	if a.Researcher == nil || jurisdiction == clauscan.GoverningLawUnknown {
		return &clauscan.ResearchContext{}
	}
	rc, err := a.Researcher.Research(ctx, jurisdiction, topic)
	if err != nil || rc == nil {
		return &clauscan.ResearchContext{}
	}
	if len(rc.Hits) > MaxResearchHits {
		rc = &clauscan.ResearchContext{Hits: rc.Hits[:MaxResearchHits]}
	}
	return rc
}

// alignRisks orders assessments to match the clause findings, one per
// finding. A finding the model skipped gets a medium placeholder so the
// report still carries an assessment for every clause.
func alignRisks(clauses []clauscan.ClauseFinding, assessments []clauscan.RiskAssessment) []clauscan.RiskAssessment {
	byClause := make(map[clauscan.ClauseType]clauscan.RiskAssessment, len(assessments))
	for _, a := range assessments {
		if _, ok := byClause[a.Clause]; !ok {
			byClause[a.Clause] = a
		}
	}

	risks := make([]clauscan.RiskAssessment, 0, len(clauses))
	for _, c := range clauses {
		if a, ok := byClause[c.Type]; ok {
			risks = append(risks, a)
			continue
		}
		risks = append(risks, clauscan.RiskAssessment{
			Clause:    c.Type,
			Level:     clauscan.RiskMedium,
			Rationale: "Automated risk assessment unavailable for this clause.",
			Revision:  "Review this clause manually.",
		})
	}
	return risks
}

func (a *Analyzer) fail(report *clauscan.AnalysisReport, stage clauscan.Stage, cause error, progress ProgressFunc) (*clauscan.AnalysisReport, error) {
	report.FailedStage = stage
	report.FailureReason = cause.Error()
	emit(progress, ProgressEvent{Type: StageFailed, Stage: stage, Error: cause})
	return report, fmt.Errorf("stage %s: %w", stage, cause)
}

func emit(progress ProgressFunc, event ProgressEvent) {
	if progress != nil {
		progress(event)
	}
}

// hashText computes an xxhash fingerprint of the extracted text.
func hashText(text string) string {
	return fmt.Sprintf("%016x", xxhash.Sum64String(text))
}
