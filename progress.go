package refdoc

// Progress reports the page about to be recorded during a crawl.
type Progress struct {
	Item      string
	Completed int
	Total     int
}

// Percent returns Completed/Total as a percentage, or 0 when Total is 0.
func (p Progress) Percent() float64 {
	if p.Total == 0 {
		return 0
	}
	return float64(p.Completed) / float64(p.Total) * 100
}

// ProgressFunc is called once per processed page.
type ProgressFunc func(Progress)
