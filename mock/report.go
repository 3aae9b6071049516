package mock

import (
	"context"

	"github.com/clauscan/clauscan"
)

var _ clauscan.ReportService = (*ReportService)(nil)

// ReportService is a mock implementation of clauscan.ReportService.
type ReportService struct {
	CreateReportFn   func(ctx context.Context, report *clauscan.AnalysisReport) error
	FindReportByIDFn func(ctx context.Context, id string) (*clauscan.AnalysisReport, error)
	FindReportsFn    func(ctx context.Context, filter clauscan.ReportFilter) ([]*clauscan.AnalysisReport, error)
	DeleteReportFn   func(ctx context.Context, id string) error
}

func (s *ReportService) CreateReport(ctx context.Context, report *clauscan.AnalysisReport) error {
	return s.CreateReportFn(ctx, report)
}

func (s *ReportService) FindReportByID(ctx context.Context, id string) (*clauscan.AnalysisReport, error) {
	return s.FindReportByIDFn(ctx, id)
}

func (s *ReportService) FindReports(ctx context.Context, filter clauscan.ReportFilter) ([]*clauscan.AnalysisReport, error) {
	return s.FindReportsFn(ctx, filter)
}

func (s *ReportService) DeleteReport(ctx context.Context, id string) error {
	return s.DeleteReportFn(ctx, id)
}

var _ clauscan.ReportWriter = (*ReportWriter)(nil)

// ReportWriter is a mock implementation of clauscan.ReportWriter.
type ReportWriter struct {
	WriteReportFn func(ctx context.Context, report *clauscan.AnalysisReport) (string, error)
}

func (w *ReportWriter) WriteReport(ctx context.Context, report *clauscan.AnalysisReport) (string, error) {
	return w.WriteReportFn(ctx, report)
}
