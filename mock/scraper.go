package mock

import (
	"context"

	"github.com/fwojciec/skeptic"
)

var _ skeptic.Scraper = (*Scraper)(nil)

// Scraper is a mock implementation of skeptic.Scraper.
type Scraper struct {
	ScrapeFn func(ctx context.Context, url string) (*skeptic.Article, error)
}

func (s *Scraper) Scrape(ctx context.Context, url string) (*skeptic.Article, error) {
	return s.ScrapeFn(ctx, url)
}
