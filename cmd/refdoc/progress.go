package main

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/fwojciec/refdoc"
	"github.com/fwojciec/refdoc/crawl"
)

// progressBarWidth is the width of the bar drawn before the status text.
const progressBarWidth = 30

// progressItemWidth caps the item shown in the status text so the line
// does not wrap on an 80-column terminal, which would break the redraw.
const progressItemWidth = 18

// progressLine redraws crawl progress in place on a single terminal line.
type progressLine struct {
	w     io.Writer
	bar   progress.Model
	drawn int
}

func newProgressLine(w io.Writer) *progressLine {
	return &progressLine{
		w:   w,
		bar: progress.New(progress.WithDefaultGradient(), progress.WithoutPercentage(), progress.WithWidth(progressBarWidth)),
	}
}

// update overwrites the line with p. Shorter status text is padded so
// nothing from the previous draw remains visible.
func (l *progressLine) update(p refdoc.Progress) {
	p.Item = crawl.TruncateItem(p.Item, progressItemWidth)
	status := crawl.FormatProgress(p)
	width := utf8.RuneCountInString(status)
	pad := max(l.drawn-width, 0)
	fmt.Fprintf(l.w, "\r%s %s%s", l.bar.ViewAs(p.Percent()/100), status, strings.Repeat(" ", pad))
	l.drawn = width
}

// finish ends the progress line if anything was drawn.
func (l *progressLine) finish() {
	if l.drawn > 0 {
		fmt.Fprintln(l.w)
	}
}
