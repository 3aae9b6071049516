package fs_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/clauscan/clauscan"
	"github.com/clauscan/clauscan/fs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriter_WriteReport(t *testing.T) {
	t.Parallel()

	report := &clauscan.AnalysisReport{
		ID:           "1a9f0fa3-fdd4-434a-9dde-8b5476c36fb7",
		DocumentName: "NDA Final.pdf",
		ContractType: clauscan.ContractNDA,
		GoverningLaw: "Delaware",
		Clauses: []clauscan.ClauseFinding{
			{Type: clauscan.ClauseTermination, Excerpt: "Either party may terminate.", Summary: "Mutual termination."},
		},
		Risks: []clauscan.RiskAssessment{
			{Clause: clauscan.ClauseTermination, Level: clauscan.RiskLow, Rationale: "Standard terms."},
		},
		CreatedAt: time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC),
	}

	t.Run("writes frontmatter and report body", func(t *testing.T) {
		t.Parallel()

		base := t.TempDir()
		w := fs.NewWriter(base)

		path, err := w.WriteReport(context.Background(), report)
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(base, "nda-final-1a9f0fa3.md"), path)

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		content := string(data)
		assert.Contains(t, content, "document: NDA Final.pdf")
		assert.Contains(t, content, "governing_law: Delaware")
		assert.Contains(t, content, "analyzed: 2026-08-30")
		assert.Contains(t, content, "# Contract Analysis: NDA Final.pdf")
		assert.Contains(t, content, "**Risk: low**")
	})

	t.Run("creates the output directory", func(t *testing.T) {
		t.Parallel()

		base := filepath.Join(t.TempDir(), "nested", "reports")
		w := fs.NewWriter(base)

		path, err := w.WriteReport(context.Background(), report)
		require.NoError(t, err)
		_, err = os.Stat(path)
		require.NoError(t, err)
	})

	t.Run("rejects invalid reports", func(t *testing.T) {
		t.Parallel()

		w := fs.NewWriter(t.TempDir())
		_, err := w.WriteReport(context.Background(), &clauscan.AnalysisReport{})

		require.Error(t, err)
		assert.Equal(t, clauscan.EINVALID, clauscan.ErrorCode(err))
	})
}

func TestReportFilename(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		report clauscan.AnalysisReport
		want   string
	}{
		{
			name:   "slugifies the document name",
			report: clauscan.AnalysisReport{ID: "abcdef1234567890", DocumentName: "Master Service Agreement (v2).docx"},
			want:   "master-service-agreement-v2-abcdef12.md",
		},
		{
			name:   "handles names without extension",
			report: clauscan.AnalysisReport{ID: "abcdef1234567890", DocumentName: "contract"},
			want:   "contract-abcdef12.md",
		},
		{
			name:   "falls back when nothing slugifiable remains",
			report: clauscan.AnalysisReport{ID: "abcdef1234567890", DocumentName: "???.pdf"},
			want:   "report-abcdef12.md",
		},
		{
			name:   "omits the ID suffix when unset",
			report: clauscan.AnalysisReport{DocumentName: "nda.pdf"},
			want:   "nda.md",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, fs.ReportFilename(&tt.report))
		})
	}
}

func TestSlugify(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "nda-final", fs.Slugify("NDA Final"))
	assert.Equal(t, "a-b-c", fs.Slugify("a__b--c"))
	assert.Equal(t, "", fs.Slugify("!!!"))
}
