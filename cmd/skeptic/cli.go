package main

import (
	"context"
	"io"
	"time"

	"github.com/fwojciec/skeptic"
	"github.com/fwojciec/skeptic/sqlite"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx      context.Context
	Stdout   io.Writer
	Stderr   io.Writer
	DB       *sqlite.DB
	Analyses skeptic.AnalysisService
	Scraper  skeptic.Scraper
	Analyzer skeptic.Analyzer
	Writer   skeptic.ReportWriter
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Analyze AnalyzeCmd `cmd:"" help:"Fetch an article and produce a critical analysis report"`
	History HistoryCmd `cmd:"" help:"List past analyses"`
	Show    ShowCmd    `cmd:"" help:"Print the report for a past analysis"`
	Delete  DeleteCmd  `cmd:"" help:"Delete a past analysis"`
}

// AnalyzeCmd is the "analyze" subcommand.
type AnalyzeCmd struct {
	URL       string        `arg:"" help:"Article URL to analyze"`
	Output    string        `short:"o" default:"critical_analysis_report.md" help:"Report output path"`
	Engine    string        `default:"readability" enum:"readability,trafilatura" help:"Primary extraction engine"`
	Provider  string        `default:"openai" enum:"openai,gemini" help:"LLM provider"`
	Model     string        `help:"Model name (provider default when empty)"`
	Timeout   time.Duration `default:"10s" help:"Fetch timeout"`
	MinLength int           `default:"100" help:"Minimum article length in characters"`
	MaxLength int           `default:"10000" help:"Maximum article length in characters"`
	Refresh   bool          `help:"Re-analyze even when a cached analysis exists"`
	Quiet     bool          `short:"q" help:"Suppress report preview and progress logging"`
}

// HistoryCmd is the "history" subcommand.
type HistoryCmd struct {
	Limit  int `default:"20" help:"Maximum number of analyses to list"`
	Offset int `help:"Number of analyses to skip"`
}

// ShowCmd is the "show" subcommand.
type ShowCmd struct {
	ID string `arg:"" help:"Analysis ID"`
}

// DeleteCmd is the "delete" subcommand.
type DeleteCmd struct {
	ID    string `arg:"" help:"Analysis ID"`
	Force bool   `help:"Confirm deletion"`
}
