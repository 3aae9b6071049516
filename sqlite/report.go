package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/clauscan/clauscan"
	"github.com/google/uuid"
)

// Compile-time interface verification.
var _ clauscan.ReportService = (*ReportService)(nil)

// ReportService implements clauscan.ReportService using SQLite.
type ReportService struct {
	db *DB
}

// NewReportService creates a new ReportService.
func NewReportService(db *DB) *ReportService {
	return &ReportService{db: db}
}

// CreateReport persists a new report.
func (s *ReportService) CreateReport(ctx context.Context, report *clauscan.AnalysisReport) error {
	if err := report.Validate(); err != nil {
		return err
	}

	report.ID = uuid.New().String()
	report.CreatedAt = time.Now().UTC()

	clauses, err := marshalColumn(report.Clauses)
	if err != nil {
		return err
	}
	risks, err := marshalColumn(report.Risks)
	if err != nil {
		return err
	}
	recommendations, err := marshalColumn(report.Recommendations)
	if err != nil {
		return err
	}
	research := ""
	if !report.Research.Empty() {
		research, err = marshalColumn(report.Research)
		if err != nil {
			return err
		}
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO reports (id, document_name, backend, text_hash, contract_type, governing_law,
			clauses, risks, recommendations, research, failed_stage, failure_reason, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, report.ID, report.DocumentName, report.Backend, report.TextHash, report.ContractType, report.GoverningLaw,
		clauses, risks, recommendations, research, string(report.FailedStage), report.FailureReason,
		report.CreatedAt.Format(time.RFC3339))

	return err
}

// FindReportByID retrieves a report by ID.
func (s *ReportService) FindReportByID(ctx context.Context, id string) (*clauscan.AnalysisReport, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, document_name, backend, text_hash, contract_type, governing_law,
			clauses, risks, recommendations, research, failed_stage, failure_reason, created_at
		FROM reports
		WHERE id = ?
	`, id)

	report, err := scanReport(row.Scan)
	if err == sql.ErrNoRows {
		return nil, clauscan.Errorf(clauscan.ENOTFOUND, "report not found")
	}
	if err != nil {
		return nil, err
	}
	return report, nil
}

// FindReports retrieves reports matching the filter, newest first.
func (s *ReportService) FindReports(ctx context.Context, filter clauscan.ReportFilter) ([]*clauscan.AnalysisReport, error) {
	var query strings.Builder
	var args []any

	query.WriteString(`SELECT id, document_name, backend, text_hash, contract_type, governing_law,
		clauses, risks, recommendations, research, failed_stage, failure_reason, created_at
		FROM reports WHERE 1=1`)

	if filter.ID != nil {
		query.WriteString(" AND id = ?")
		args = append(args, *filter.ID)
	}
	if filter.DocumentName != nil {
		query.WriteString(" AND document_name = ?")
		args = append(args, *filter.DocumentName)
	}

	query.WriteString(" ORDER BY created_at DESC")
	appendPagination(&query, &args, filter.Limit, filter.Offset)

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var reports []*clauscan.AnalysisReport
	for rows.Next() {
		report, err := scanReport(rows.Scan)
		if err != nil {
			return nil, err
		}
		reports = append(reports, report)
	}

	return reports, rows.Err()
}

// DeleteReport permanently removes a report.
func (s *ReportService) DeleteReport(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, "DELETE FROM reports WHERE id = ?", id)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rows == 0 {
		return clauscan.Errorf(clauscan.ENOTFOUND, "report not found")
	}

	return nil
}

// scanReport reads one reports row through the given scan function.
func scanReport(scan func(dest ...any) error) (*clauscan.AnalysisReport, error) {
	var report clauscan.AnalysisReport
	var clauses, risks, recommendations, research, failedStage, createdAt string

	err := scan(&report.ID, &report.DocumentName, &report.Backend, &report.TextHash,
		&report.ContractType, &report.GoverningLaw,
		&clauses, &risks, &recommendations, &research, &failedStage, &report.FailureReason,
		&createdAt)
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal([]byte(clauses), &report.Clauses); err != nil {
		return nil, fmt.Errorf("failed to parse clauses: %w", err)
	}
	if err := json.Unmarshal([]byte(risks), &report.Risks); err != nil {
		return nil, fmt.Errorf("failed to parse risks: %w", err)
	}
	if err := json.Unmarshal([]byte(recommendations), &report.Recommendations); err != nil {
		return nil, fmt.Errorf("failed to parse recommendations: %w", err)
	}
	if research != "" {
		if err := json.Unmarshal([]byte(research), &report.Research); err != nil {
			return nil, fmt.Errorf("failed to parse research: %w", err)
		}
	}
	report.FailedStage = clauscan.Stage(failedStage)

	report.CreatedAt, err = parseRFC3339(createdAt, "created_at")
	if err != nil {
		return nil, err
	}

	return &report, nil
}

// marshalColumn serializes a list-shaped field for storage, keeping
// nil slices as empty JSON arrays.
func marshalColumn(v any) (string, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return "", fmt.Errorf("failed to marshal column: %w", err)
	}
	if string(data) == "null" {
		return "[]", nil
	}
	return string(data), nil
}
