package main

import (
	"fmt"

	"github.com/fwojciec/skeptic"
)

// Run executes the delete command.
func (c *DeleteCmd) Run(deps *Dependencies) error {
	if !c.Force {
		fmt.Fprintf(deps.Stderr, "error: use --force to confirm deletion\n")
		return skeptic.Errorf(skeptic.EINVALID, "use --force to confirm deletion")
	}

	if err := deps.Analyses.DeleteAnalysis(deps.Ctx, c.ID); err != nil {
		if skeptic.ErrorCode(err) == skeptic.ENOTFOUND {
			fmt.Fprintf(deps.Stderr, "error: analysis %q not found. Use 'skeptic history' to see available analyses.\n", c.ID)
		} else {
			fmt.Fprintf(deps.Stderr, "error: %s\n", skeptic.ErrorMessage(err))
		}
		return err
	}

	fmt.Fprintf(deps.Stdout, "Deleted analysis %q\n", c.ID)
	return nil
}
