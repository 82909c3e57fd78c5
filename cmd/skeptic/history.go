package main

import (
	"fmt"

	"github.com/fwojciec/skeptic"
)

// Run executes the history command.
func (c *HistoryCmd) Run(deps *Dependencies) error {
	analyses, err := deps.Analyses.FindAnalyses(deps.Ctx, skeptic.AnalysisFilter{
		Limit:  c.Limit,
		Offset: c.Offset,
	})
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", skeptic.ErrorMessage(err))
		return err
	}

	if len(analyses) == 0 {
		fmt.Fprintln(deps.Stdout, "No analyses found. Use 'skeptic analyze' to create one.")
		return nil
	}

	for _, a := range analyses {
		title := a.ArticleTitle
		if title == "" {
			title = "(untitled)"
		}
		fmt.Fprintf(deps.Stdout, "%s  %s  %s  %s\n",
			a.ID, a.CreatedAt.Format("2006-01-02 15:04"), title, a.ArticleURL)
	}

	return nil
}
