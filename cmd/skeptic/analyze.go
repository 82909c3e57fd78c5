package main

import (
	"fmt"

	"github.com/fwojciec/skeptic"
)

// Run executes the analyze command.
func (c *AnalyzeCmd) Run(deps *Dependencies) error {
	if !c.Refresh {
		cached, err := deps.Analyses.FindAnalysisByURL(deps.Ctx, c.URL)
		if err == nil {
			fmt.Fprintf(deps.Stdout, "Using cached analysis from %s (use --refresh to re-analyze)\n",
				cached.CreatedAt.Format("2006-01-02 15:04"))
			return c.writeReport(deps, cached)
		}
		if skeptic.ErrorCode(err) != skeptic.ENOTFOUND {
			fmt.Fprintf(deps.Stderr, "error: %s\n", skeptic.ErrorMessage(err))
			return err
		}
	}

	article, err := deps.Scraper.Scrape(deps.Ctx, c.URL)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", skeptic.ErrorMessage(err))
		return err
	}

	analysis, err := deps.Analyzer.Analyze(deps.Ctx, article)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", skeptic.ErrorMessage(err))
		return err
	}

	if err := deps.Analyses.CreateAnalysis(deps.Ctx, analysis); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", skeptic.ErrorMessage(err))
		return err
	}

	return c.writeReport(deps, analysis)
}

// writeReport formats the analysis, writes it to the output path, and
// previews it on stdout unless quiet.
func (c *AnalyzeCmd) writeReport(deps *Dependencies, analysis *skeptic.Analysis) error {
	report := skeptic.FormatReport(analysis)

	if err := deps.Writer.WriteReport(deps.Ctx, c.Output, report); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", skeptic.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Report written to %s\n", c.Output)
	if !c.Quiet {
		fmt.Fprintln(deps.Stdout)
		fmt.Fprint(deps.Stdout, report)
	}
	return nil
}
