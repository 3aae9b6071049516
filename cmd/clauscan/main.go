package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/clauscan/clauscan"
	"github.com/clauscan/clauscan/analyze"
	"github.com/clauscan/clauscan/charmap"
	"github.com/clauscan/clauscan/docx"
	"github.com/clauscan/clauscan/duckduckgo"
	"github.com/clauscan/clauscan/etree"
	"github.com/clauscan/clauscan/extract"
	"github.com/clauscan/clauscan/fitz"
	"github.com/clauscan/clauscan/gemini"
	"github.com/clauscan/clauscan/goquery"
	"github.com/clauscan/clauscan/htmltomarkdown"
	"github.com/clauscan/clauscan/pdf"
	"github.com/clauscan/clauscan/readability"
	clslog "github.com/clauscan/clauscan/slog"
	"github.com/clauscan/clauscan/sqlite"
	"github.com/clauscan/clauscan/trafilatura"
	"github.com/joho/godotenv"
	"google.golang.org/genai"
)

func main() {
	ctx := context.Background()

	// Load GEMINI_API_KEY and friends from a local .env if present.
	_ = godotenv.Load()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Database path. Set before calling Run().
	DBPath string

	// SQLite database used by SQLite service implementations.
	DB *sqlite.DB

	// Services for end-to-end testing.
	ReportService clauscan.ReportService
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		DBPath: defaultDBPath(),
	}
}

// Close gracefully stops the program.
func (m *Main) Close() error {
	if m.DB != nil {
		return m.DB.Close()
	}
	return nil
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("clauscan"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'clauscan --help' to see available commands")
	}

	if args[0] == "help" || args[0] == "--help" || args[0] == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	// Kong reports the selected command with its positional arguments,
	// e.g. "analyze <files>". Global flags may precede the command on
	// the command line, so args[0] is not reliable here.
	cmd, _, _ := strings.Cut(kongCtx.Command(), " ")

	deps.Logger = newLogger(stderr, cli.Verbose)

	// Open database
	m.DB = sqlite.NewDB(m.DBPath)
	if err := m.DB.Open(); err != nil {
		fmt.Fprintf(stderr, "Hint: Set CLAUSCAN_DB to use a different database path\n")
		return fmt.Errorf("failed to open database at %q: %w", m.DBPath, err)
	}
	defer m.Close()

	m.ReportService = sqlite.NewReportService(m.DB)
	deps.DB = m.DB
	deps.Reports = m.ReportService

	// Wire the analysis pipeline only for the analyze command: it
	// needs an API key and network access, the rest of the commands
	// work offline.
	if cmd == "analyze" {
		apiKey := os.Getenv("GEMINI_API_KEY")
		if apiKey == "" {
			return fmt.Errorf("GEMINI_API_KEY not set. Get a key at https://aistudio.google.com/apikey")
		}

		client, err := genai.NewClient(ctx, &genai.ClientConfig{
			APIKey:  apiKey,
			Backend: genai.BackendGeminiAPI,
		})
		if err != nil {
			fmt.Fprintln(stderr, "Hint: Check your GEMINI_API_KEY is valid")
			return fmt.Errorf("failed to connect to Gemini API: %w", err)
		}

		var generator clauscan.Generator = gemini.NewGenerator(client, cli.Analyze.Model)
		generator = clslog.NewLoggingGenerator(generator, deps.Logger)
		generator = analyze.NewLimitedGenerator(generator, cli.Analyze.RPS)

		var researcher clauscan.Researcher
		if !cli.Analyze.SkipResearch {
			r, err := duckduckgo.NewResearcher(ctx)
			if err != nil {
				return fmt.Errorf("failed to create researcher: %w", err)
			}
			researcher = clslog.NewLoggingResearcher(r, deps.Logger)
		}

		deps.Analyzer = &analyze.Analyzer{
			Extractor:  clslog.NewLoggingExtractor(newExtractor(), deps.Logger),
			Client:     &analyze.Client{Generator: generator, RetryDelays: analyze.DefaultRetryDelays()},
			Researcher: researcher,
		}
	}

	return kongCtx.Run(deps)
}

// newExtractor builds the extractor with the full backend chains, in
// fallback order.
func newExtractor() *extract.Extractor {
	converter := htmltomarkdown.NewConverter()

	ext := extract.NewExtractor()
	ext.Register(clauscan.FormatPDF, fitz.NewBackend(), pdf.NewBackend())
	ext.Register(clauscan.FormatDOCX, docx.NewBackend(), etree.NewBackend())
	ext.Register(clauscan.FormatTXT, charmap.NewBackend())
	ext.Register(clauscan.FormatHTML, trafilatura.NewBackend(converter), readability.NewBackend(converter), goquery.NewBackend())
	return ext
}

// newLogger returns the CLI logger. Pipeline logging goes to stderr so
// report output on stdout stays clean.
func newLogger(stderr io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelInfo
	}
	return slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))
}

func defaultDBPath() string {
	if path := os.Getenv("CLAUSCAN_DB"); path != "" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "clauscan.db"
	}
	dir := filepath.Join(home, ".clauscan")
	_ = os.MkdirAll(dir, 0755)
	return filepath.Join(dir, "clauscan.db")
}
