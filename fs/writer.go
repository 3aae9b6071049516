// Package fs writes rendered analysis reports as markdown files.
package fs

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/clauscan/clauscan"
)

// Ensure Writer implements clauscan.ReportWriter at compile time.
var _ clauscan.ReportWriter = (*Writer)(nil)

// Writer writes reports as markdown files to a directory.
type Writer struct {
	baseDir string
}

// NewWriter creates a new Writer that writes to the given base directory.
func NewWriter(baseDir string) *Writer {
	return &Writer{baseDir: baseDir}
}

// WriteReport writes a report to disk as a markdown file and returns
// the path it was written to.
func (w *Writer) WriteReport(ctx context.Context, report *clauscan.AnalysisReport) (string, error) {
	if err := report.Validate(); err != nil {
		return "", err
	}
	if err := ctx.Err(); err != nil {
		return "", err
	}

	fullPath := filepath.Join(w.baseDir, ReportFilename(report))

	if err := os.MkdirAll(w.baseDir, 0755); err != nil {
		return "", err
	}

	content := FormatFile(report)
	if err := os.WriteFile(fullPath, []byte(content), 0644); err != nil {
		return "", err
	}
	return fullPath, nil
}

// ReportFilename derives the output filename from the analyzed
// document's name and the report ID.
// Example: NDA Final.pdf → nda-final-1a9f0fa3.md
func ReportFilename(report *clauscan.AnalysisReport) string {
	base := strings.TrimSuffix(report.DocumentName, filepath.Ext(report.DocumentName))
	slug := Slugify(base)
	if slug == "" {
		slug = "report"
	}
	if id := shortID(report.ID); id != "" {
		return slug + "-" + id + ".md"
	}
	return slug + ".md"
}

// Slugify lowercases a name and replaces runs of non-alphanumeric
// characters with single hyphens.
func Slugify(s string) string {
	var b strings.Builder
	lastHyphen := true
	for _, r := range strings.ToLower(s) {
		switch {
		case r >= 'a' && r <= 'z' || r >= '0' && r <= '9':
			b.WriteRune(r)
			lastHyphen = false
		case !lastHyphen:
			b.WriteRune('-')
			lastHyphen = true
		}
	}
	return strings.Trim(b.String(), "-")
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

// FormatFile renders a report with YAML frontmatter followed by the
// markdown report body.
func FormatFile(report *clauscan.AnalysisReport) string {
	var b strings.Builder
	b.WriteString("---\n")
	b.WriteString("document: ")
	b.WriteString(report.DocumentName)
	b.WriteString("\ntype: ")
	b.WriteString(report.ContractType)
	b.WriteString("\ngoverning_law: ")
	b.WriteString(report.GoverningLaw)
	b.WriteString("\nanalyzed: ")
	b.WriteString(report.CreatedAt.Format("2006-01-02"))
	b.WriteString("\n---\n\n")
	b.WriteString(clauscan.FormatReport(report))
	return b.String()
}
