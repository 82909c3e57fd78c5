package main

import (
	"fmt"

	"github.com/fwojciec/skeptic"
)

// Run executes the show command.
func (c *ShowCmd) Run(deps *Dependencies) error {
	analysis, err := deps.Analyses.FindAnalysisByID(deps.Ctx, c.ID)
	if err != nil {
		if skeptic.ErrorCode(err) == skeptic.ENOTFOUND {
			fmt.Fprintf(deps.Stderr, "error: analysis %q not found. Use 'skeptic history' to see available analyses.\n", c.ID)
		} else {
			fmt.Fprintf(deps.Stderr, "error: %s\n", skeptic.ErrorMessage(err))
		}
		return err
	}

	fmt.Fprint(deps.Stdout, skeptic.FormatReport(analysis))
	return nil
}
