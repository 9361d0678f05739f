package main

import (
	"fmt"

	"github.com/fwojciec/refdoc"
)

// Run executes the extract command.
func (c *ExtractCmd) Run(deps *Dependencies) error {
	line := newProgressLine(deps.Stdout)

	ds, err := deps.Crawler.Extract(deps.Ctx, line.update)
	line.finish()
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", refdoc.ErrorMessage(err))
		return err
	}

	if err := deps.DatasetWriter.WriteDataset(deps.Ctx, ds); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", refdoc.ErrorMessage(err))
		return err
	}
	logArtifacts(deps)

	fmt.Fprintln(deps.Stdout, "Extraction completed. Data saved in HTML and JSON formats.")
	return nil
}
