package main

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/fwojciec/refdoc"
	"github.com/fwojciec/refdoc/crawl"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx           context.Context
	Stdout        io.Writer
	Stderr        io.Writer
	Crawler       *crawl.Crawler
	DatasetWriter refdoc.DatasetWriter
	TextWriter    refdoc.TextWriter
	Logger        *slog.Logger

	// Artifacts lists the files the command writes, in write order.
	Artifacts []string
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	BaseURL     string        `name:"base-url" default:"https://help.ctrader.com" help:"Site root that discovered links are joined onto"`
	ListingPath string        `name:"listing-path" default:"/ctrader-automate/references/" help:"Path of the page that lists reference pages"`
	Exclude     []string      `name:"exclude" default:"/ctrader-automate/documentation,/ctrader-automate/tutorials,/ctrader-automate/references,/ctrader-automate/forum" help:"Link paths to skip, matched exactly (repeatable)"`
	Timeout     time.Duration `default:"30s" help:"Per-request timeout"`
	Verbose     bool          `short:"v" help:"Log fetches and writes to stderr"`

	Extract ExtractCmd `cmd:"" help:"Extract reference pages into HTML and JSON"`
	Text    TextCmd    `cmd:"" help:"Extract the visible text of reference pages"`
}

// ExtractCmd is the "extract" subcommand.
type ExtractCmd struct {
	HTML     string `name:"html" default:"cTrader_docu_extracted.html" help:"HTML output path"`
	JSON     string `name:"json" default:"cTrader_docu_extracted.json" help:"JSON output path"`
	Markdown string `name:"markdown" help:"Also write Markdown converted from the HTML output to this path"`
}

// TextCmd is the "text" subcommand.
type TextCmd struct {
	Output string `short:"o" default:"cTrader_docu_text.txt" help:"Text output path, relative to the executable's directory unless absolute"`
}
