package main

import (
	"bytes"
	"context"
	"testing"

	"github.com/clauscan/clauscan"
	"github.com/clauscan/clauscan/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShowCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("prints the rendered report", func(t *testing.T) {
		t.Parallel()

		var stdout, stderr bytes.Buffer
		deps := testDeps(&stdout, &stderr)
		deps.Reports = &mock.ReportService{
			FindReportByIDFn: func(ctx context.Context, id string) (*clauscan.AnalysisReport, error) {
				assert.Equal(t, "r1", id)
				return &clauscan.AnalysisReport{
					ID:           "r1",
					DocumentName: "nda.pdf",
					ContractType: clauscan.ContractNDA,
					GoverningLaw: "Delaware",
				}, nil
			},
		}

		cmd := &ShowCmd{ID: "r1"}
		require.NoError(t, cmd.Run(deps))

		assert.Contains(t, stdout.String(), "# Contract Analysis: nda.pdf")
		assert.Contains(t, stdout.String(), "Delaware")
	})

	t.Run("reports missing reports on stderr", func(t *testing.T) {
		t.Parallel()

		var stdout, stderr bytes.Buffer
		deps := testDeps(&stdout, &stderr)
		deps.Reports = &mock.ReportService{
			FindReportByIDFn: func(ctx context.Context, id string) (*clauscan.AnalysisReport, error) {
				return nil, clauscan.Errorf(clauscan.ENOTFOUND, "report not found")
			},
		}

		cmd := &ShowCmd{ID: "missing"}
		err := cmd.Run(deps)

		require.Error(t, err)
		assert.Equal(t, clauscan.ENOTFOUND, clauscan.ErrorCode(err))
		assert.Contains(t, stderr.String(), "clauscan history")
	})
}

func TestDeleteCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("requires force", func(t *testing.T) {
		t.Parallel()

		var stdout, stderr bytes.Buffer
		deps := testDeps(&stdout, &stderr)

		cmd := &DeleteCmd{ID: "r1"}
		err := cmd.Run(deps)

		require.Error(t, err)
		assert.Equal(t, clauscan.EINVALID, clauscan.ErrorCode(err))
	})

	t.Run("deletes with force", func(t *testing.T) {
		t.Parallel()

		var stdout, stderr bytes.Buffer
		deps := testDeps(&stdout, &stderr)
		deleted := ""
		deps.Reports = &mock.ReportService{
			DeleteReportFn: func(ctx context.Context, id string) error {
				deleted = id
				return nil
			},
		}

		cmd := &DeleteCmd{ID: "r1", Force: true}
		require.NoError(t, cmd.Run(deps))

		assert.Equal(t, "r1", deleted)
		assert.Contains(t, stdout.String(), "Deleted report")
	})
}
