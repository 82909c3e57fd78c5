package skeptic

import "context"

// Scraper runs the full content-extraction pipeline for a single URL:
// fetch, extract (primary with selector fallback), convert, normalize,
// validate. Implementations hide the strategy selection.
type Scraper interface {
	Scrape(ctx context.Context, url string) (*Article, error)
}
