package main

import (
	"context"
	"io"
	"log/slog"

	"github.com/clauscan/clauscan"
	"github.com/clauscan/clauscan/analyze"
	"github.com/clauscan/clauscan/sqlite"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx      context.Context
	Stdout   io.Writer
	Stderr   io.Writer
	Logger   *slog.Logger
	DB       *sqlite.DB
	Reports  clauscan.ReportService
	Analyzer *analyze.Analyzer
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Verbose bool `short:"v" help:"Log pipeline progress to stderr"`

	Analyze AnalyzeCmd `cmd:"" help:"Analyze contract documents for risk"`
	History HistoryCmd `cmd:"" help:"List stored analysis reports"`
	Show    ShowCmd    `cmd:"" help:"Show a stored analysis report"`
	Delete  DeleteCmd  `cmd:"" help:"Delete a stored analysis report"`
}

// AnalyzeCmd is the "analyze" subcommand.
type AnalyzeCmd struct {
	Files        []string `arg:"" type:"existingfile" help:"Contract files to analyze (pdf, docx, txt, html)"`
	Output       string   `short:"o" default:"reports" help:"Directory for rendered markdown reports"`
	Model        string   `short:"m" help:"Gemini model to use"`
	SkipResearch bool     `help:"Skip jurisdiction research"`
	Concurrency  int      `short:"c" default:"2" help:"Concurrent document limit"`
	RPS          float64  `default:"1" help:"LLM requests per second across all documents"`
}

// HistoryCmd is the "history" subcommand.
type HistoryCmd struct {
	Document string `short:"d" help:"Filter by document name"`
	Limit    int    `short:"n" default:"20" help:"Maximum reports to list"`
}

// ShowCmd is the "show" subcommand.
type ShowCmd struct {
	ID string `arg:"" help:"Report ID"`
}

// DeleteCmd is the "delete" subcommand.
type DeleteCmd struct {
	ID    string `arg:"" help:"Report ID"`
	Force bool   `help:"Confirm deletion"`
}
