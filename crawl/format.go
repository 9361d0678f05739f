package crawl

import (
	"fmt"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/refdoc"
)

// ComputeHash computes a hash of the content using xxhash.
func ComputeHash(content []byte) string {
	return fmt.Sprintf("%016x", xxhash.Sum64(content))
}

// Ellipsis marks text dropped by TruncateItem.
const Ellipsis = "…"

// TruncateItem shortens a progress item to at most width runes. Items are
// page URLs or link texts, whose tail identifies the page, so the head is
// dropped and replaced by Ellipsis.
func TruncateItem(item string, width int) string {
	if width <= 0 {
		return ""
	}
	runes := []rune(item)
	if len(runes) <= width {
		return item
	}
	if width == 1 {
		return Ellipsis
	}
	return Ellipsis + string(runes[len(runes)-width+1:])
}

// FormatBytes formats bytes in human-readable form.
func FormatBytes(bytes int) string {
	const (
		KB = 1024
		MB = KB * 1024
	)
	switch {
	case bytes >= MB:
		return fmt.Sprintf("%.1f MB", float64(bytes)/float64(MB))
	case bytes >= KB:
		return fmt.Sprintf("%.1f KB", float64(bytes)/float64(KB))
	default:
		return fmt.Sprintf("%d B", bytes)
	}
}

// FormatProgress renders the one-line status shown while crawling, e.g.
// "Processing: Robot (3/10) 30.00%".
func FormatProgress(p refdoc.Progress) string {
	return fmt.Sprintf("Processing: %s (%d/%d) %.2f%%", p.Item, p.Completed, p.Total, p.Percent())
}
