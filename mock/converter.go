package mock

import "github.com/fwojciec/skeptic"

var _ skeptic.Converter = (*Converter)(nil)

// Converter is a mock implementation of skeptic.Converter.
type Converter struct {
	ConvertFn func(html string) (string, error)
}

func (c *Converter) Convert(html string) (string, error) {
	return c.ConvertFn(html)
}
