package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/skeptic"
	"github.com/fwojciec/skeptic/analyze"
	"github.com/fwojciec/skeptic/fs"
	"github.com/fwojciec/skeptic/gemini"
	"github.com/fwojciec/skeptic/goquery"
	skeptichttp "github.com/fwojciec/skeptic/http"
	"github.com/fwojciec/skeptic/htmltomarkdown"
	"github.com/fwojciec/skeptic/openai"
	"github.com/fwojciec/skeptic/readability"
	"github.com/fwojciec/skeptic/scrape"
	skepticslog "github.com/fwojciec/skeptic/slog"
	"github.com/fwojciec/skeptic/sqlite"
	"github.com/fwojciec/skeptic/trafilatura"
	"github.com/joho/godotenv"
)

func main() {
	ctx := context.Background()

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

	// SQLite database used by the analysis history store.
	DB *sqlite.DB

	// Service for end-to-end testing.
	AnalysisService skeptic.AnalysisService
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	// API keys and settings may live in a local .env file.
	_ = godotenv.Load()

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
		kong.Name("skeptic"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'skeptic --help' to see available commands")
	}

	cmd := args[0]
	if cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	m.DB = sqlite.NewDB(m.DBPath)
	if err := m.DB.Open(); err != nil {
		fmt.Fprintf(stderr, "Hint: Set SKEPTIC_DB to use a different database path\n")
		return fmt.Errorf("failed to open database at %q: %w", m.DBPath, err)
	}
	defer m.Close()

	m.AnalysisService = sqlite.NewAnalysisService(m.DB)
	deps.DB = m.DB
	deps.Analyses = m.AnalysisService
	deps.Writer = fs.NewReportWriter()

	if cmd == "analyze" {
		if err := m.wireAnalyze(ctx, &cli.Analyze, deps, stderr); err != nil {
			return err
		}
	}

	return kongCtx.Run(deps)
}

// wireAnalyze builds the scrape pipeline and the LLM analyzer from the
// analyze command's flags.
func (m *Main) wireAnalyze(ctx context.Context, cmd *AnalyzeCmd, deps *Dependencies, stderr io.Writer) error {
	level := slog.LevelInfo
	if cmd.Quiet {
		level = slog.LevelError
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	var primary skeptic.Extractor
	switch cmd.Engine {
	case "trafilatura":
		primary = trafilatura.NewExtractor()
	default:
		primary = readability.NewExtractor()
	}

	config := skeptic.ScrapeConfig{
		MinContentLength: cmd.MinLength,
		MaxContentLength: cmd.MaxLength,
		Timeout:          cmd.Timeout,
		UserAgent:        skeptic.DefaultUserAgent,
	}

	fetcher := skepticslog.NewLoggingFetcher(
		skeptichttp.NewFetcher(
			skeptichttp.WithTimeout(cmd.Timeout),
			skeptichttp.WithUserAgent(config.UserAgent),
		),
		logger,
	)

	deps.Scraper = skepticslog.NewLoggingScraper(
		scrape.New(fetcher, primary, goquery.NewExtractor(), htmltomarkdown.NewConverter(), config),
		logger,
	)

	completer, model, err := newCompleter(ctx, cmd, stderr)
	if err != nil {
		return err
	}

	deps.Analyzer = analyze.NewAnalyzer(skepticslog.NewLoggingCompleter(completer, logger), model)
	return nil
}

// newCompleter creates the LLM backend selected by --provider and
// returns it with the effective model name.
func newCompleter(ctx context.Context, cmd *AnalyzeCmd, stderr io.Writer) (skeptic.Completer, string, error) {
	switch cmd.Provider {
	case "gemini":
		apiKey := os.Getenv("GEMINI_API_KEY")
		if apiKey == "" {
			fmt.Fprintln(stderr, "GEMINI_API_KEY environment variable not set. Get an API key at https://aistudio.google.com/apikey")
			return nil, "", fmt.Errorf("GEMINI_API_KEY not set")
		}

		client, err := gemini.NewClient(ctx, apiKey)
		if err != nil {
			fmt.Fprintln(stderr, "Hint: Check your GEMINI_API_KEY is valid")
			return nil, "", fmt.Errorf("failed to connect to Gemini API: %w", err)
		}

		model := cmd.Model
		if model == "" {
			model = gemini.DefaultModel
		}
		return gemini.NewCompleter(client, gemini.WithModel(model)), model, nil

	default:
		apiKey := os.Getenv("OPENAI_API_KEY")
		if apiKey == "" {
			fmt.Fprintln(stderr, "OPENAI_API_KEY environment variable not set. Get an API key at https://platform.openai.com/api-keys")
			return nil, "", fmt.Errorf("OPENAI_API_KEY not set")
		}

		model := cmd.Model
		if model == "" {
			model = openai.DefaultModel
		}
		return openai.NewCompleter(apiKey, openai.WithModel(model)), model, nil
	}
}

func defaultDBPath() string {
	if path := os.Getenv("SKEPTIC_DB"); path != "" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "skeptic.db"
	}
	dir := filepath.Join(home, ".skeptic")
	_ = os.MkdirAll(dir, 0755)
	return filepath.Join(dir, "skeptic.db")
}
