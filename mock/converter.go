package mock

import "github.com/fwojciec/refdoc"

var _ refdoc.Converter = (*Converter)(nil)

// Converter is a mock implementation of refdoc.Converter.
type Converter struct {
	ConvertFn func(html string) (string, error)
}

func (c *Converter) Convert(html string) (string, error) {
	return c.ConvertFn(html)
}
