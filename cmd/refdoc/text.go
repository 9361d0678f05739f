package main

import (
	"fmt"

	"github.com/fwojciec/refdoc"
)

// Run executes the text command.
func (c *TextCmd) Run(deps *Dependencies) error {
	line := newProgressLine(deps.Stdout)

	doc, err := deps.Crawler.ExtractText(deps.Ctx, line.update)
	line.finish()
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", refdoc.ErrorMessage(err))
		return err
	}

	if err := deps.TextWriter.WriteText(deps.Ctx, doc.String()); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", refdoc.ErrorMessage(err))
		return err
	}
	logArtifacts(deps)

	path := c.Output
	if len(deps.Artifacts) > 0 {
		path = deps.Artifacts[0]
	}
	fmt.Fprintf(deps.Stdout, "Extraction completed. Text saved to %s.\n", path)
	return nil
}
