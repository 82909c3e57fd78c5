package mock

import "github.com/fwojciec/skeptic"

var _ skeptic.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of skeptic.Extractor.
type Extractor struct {
	ExtractFn func(html string) (*skeptic.ExtractResult, error)
}

func (e *Extractor) Extract(html string) (*skeptic.ExtractResult, error) {
	return e.ExtractFn(html)
}
