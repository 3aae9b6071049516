package main

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/clauscan/clauscan"
	"github.com/clauscan/clauscan/analyze"
	"github.com/clauscan/clauscan/fs"
	"golang.org/x/sync/errgroup"
)

// Run executes the analyze command.
func (c *AnalyzeCmd) Run(deps *Dependencies) error {
	writer := fs.NewWriter(c.Output)

	concurrency := c.Concurrency
	if concurrency < 1 {
		concurrency = 1
	}

	var mu sync.Mutex
	failed := 0

	g, ctx := errgroup.WithContext(deps.Ctx)
	g.SetLimit(concurrency)

	for _, file := range c.Files {
		g.Go(func() error {
			if err := c.analyzeFile(deps, writer, file); err != nil {
				mu.Lock()
				failed++
				mu.Unlock()
				fmt.Fprintf(deps.Stderr, "error: %s: %s\n", filepath.Base(file), clauscan.ErrorMessage(err))
			}
			// A failed document must not cancel the others.
			return ctx.Err()
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d documents failed", failed, len(c.Files))
	}
	return nil
}

// analyzeFile runs the full pipeline for one document, persists the
// report, and writes the rendered markdown.
func (c *AnalyzeCmd) analyzeFile(deps *Dependencies, writer clauscan.ReportWriter, file string) error {
	name := filepath.Base(file)

	format, err := clauscan.ParseFormat(filepath.Ext(file))
	if err != nil {
		return err
	}

	data, err := os.ReadFile(file)
	if err != nil {
		return err
	}

	doc := &clauscan.Document{Name: name, Format: format, Data: data}

	progress := func(event analyze.ProgressEvent) {
		switch event.Type {
		case analyze.StageStarted:
			deps.Logger.Info("stage started", "document", name, "stage", event.Stage)
		case analyze.StageFailed:
			fmt.Fprintf(deps.Stderr, "  %s: stage %s failed: %s\n", name, event.Stage, clauscan.ErrorMessage(event.Error))
		}
	}

	report, analyzeErr := deps.Analyzer.Analyze(deps.Ctx, doc, progress)
	if report == nil {
		return analyzeErr
	}

	// Failed reports are persisted too: partial stage output is still
	// worth keeping.
	if err := deps.Reports.CreateReport(deps.Ctx, report); err != nil {
		return err
	}

	path, err := writer.WriteReport(deps.Ctx, report)
	if err != nil {
		return err
	}

	if report.Complete() {
		fmt.Fprintf(deps.Stdout, "%s: %s under %s law, %d clauses, %s\n",
			name, report.ContractType, report.GoverningLaw, len(report.Clauses), path)
	} else {
		fmt.Fprintf(deps.Stdout, "%s: incomplete (failed at %s), %s\n", name, report.FailedStage, path)
	}

	return analyzeErr
}
