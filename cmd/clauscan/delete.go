package main

import (
	"fmt"

	"github.com/clauscan/clauscan"
)

// Run executes the delete command.
func (c *DeleteCmd) Run(deps *Dependencies) error {
	if !c.Force {
		fmt.Fprintf(deps.Stderr, "error: use --force to confirm deletion\n")
		return clauscan.Errorf(clauscan.EINVALID, "use --force to confirm deletion")
	}

	if err := deps.Reports.DeleteReport(deps.Ctx, c.ID); err != nil {
		if clauscan.ErrorCode(err) == clauscan.ENOTFOUND {
			fmt.Fprintf(deps.Stderr, "error: report %q not found. Use 'clauscan history' to see stored reports.\n", c.ID)
		} else {
			fmt.Fprintf(deps.Stderr, "error: %s\n", clauscan.ErrorMessage(err))
		}
		return err
	}

	fmt.Fprintf(deps.Stdout, "Deleted report %q\n", c.ID)
	return nil
}
