package main

import (
	"fmt"

	"github.com/clauscan/clauscan"
)

// Run executes the show command.
func (c *ShowCmd) Run(deps *Dependencies) error {
	report, err := deps.Reports.FindReportByID(deps.Ctx, c.ID)
	if err != nil {
		if clauscan.ErrorCode(err) == clauscan.ENOTFOUND {
			fmt.Fprintf(deps.Stderr, "error: report %q not found. Use 'clauscan history' to see stored reports.\n", c.ID)
		} else {
			fmt.Fprintf(deps.Stderr, "error: %s\n", clauscan.ErrorMessage(err))
		}
		return err
	}

	fmt.Fprintln(deps.Stdout, clauscan.FormatReport(report))
	return nil
}
