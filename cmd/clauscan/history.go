package main

import (
	"fmt"

	"github.com/clauscan/clauscan"
)

// Run executes the history command.
func (c *HistoryCmd) Run(deps *Dependencies) error {
	filter := clauscan.ReportFilter{Limit: c.Limit}
	if c.Document != "" {
		filter.DocumentName = &c.Document
	}

	reports, err := deps.Reports.FindReports(deps.Ctx, filter)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", clauscan.ErrorMessage(err))
		return err
	}

	if len(reports) == 0 {
		fmt.Fprintln(deps.Stdout, "No reports found. Use 'clauscan analyze' to create one.")
		return nil
	}

	for _, r := range reports {
		status := "complete"
		if !r.Complete() {
			status = fmt.Sprintf("failed at %s", r.FailedStage)
		}
		fmt.Fprintf(deps.Stdout, "%s  %s  %s  %s  %s\n",
			r.ID, r.CreatedAt.Format("2006-01-02 15:04"), r.DocumentName, r.ContractType, status)
	}

	return nil
}
