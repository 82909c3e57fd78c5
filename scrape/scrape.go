// Package scrape provides the article scraping pipeline. It coordinates
// fetching, two-tier content extraction, Markdown conversion, and
// normalization for a single article URL.
package scrape

import (
	"context"
	"regexp"
	"time"

	"github.com/fwojciec/skeptic"
)

// Ensure Scraper implements skeptic.Scraper at compile time.
var _ skeptic.Scraper = (*Scraper)(nil)

// Scraper runs the extraction pipeline. The primary extractor is tried
// first; when it fails or yields too little content, the fallback
// extractor runs against the same raw HTML. Extracted content is
// converted to Markdown, normalized, and validated against the quality
// floor before being returned.
type Scraper struct {
	Fetcher   skeptic.Fetcher
	Primary   skeptic.Extractor
	Fallback  skeptic.Extractor
	Converter skeptic.Converter
	Config    skeptic.ScrapeConfig

	// Boilerplate overrides the normalization deny-list when non-nil.
	Boilerplate []*regexp.Regexp

	// now is injected for tests.
	now func() time.Time
}

// New creates a Scraper with the given collaborators and configuration.
func New(fetcher skeptic.Fetcher, primary, fallback skeptic.Extractor, converter skeptic.Converter, config skeptic.ScrapeConfig) *Scraper {
	return &Scraper{
		Fetcher:   fetcher,
		Primary:   primary,
		Fallback:  fallback,
		Converter: converter,
		Config:    config,
	}
}

// Scrape fetches the URL and extracts a normalized article from it.
//
// Errors carry codes by failure class: EFETCH when the page cannot be
// retrieved (no extraction is attempted), EEXTRACT when both extraction
// methods are exhausted, ETOOSHORT when the normalized content falls
// below the minimum length.
func (s *Scraper) Scrape(ctx context.Context, url string) (*skeptic.Article, error) {
	if url == "" {
		return nil, skeptic.Errorf(skeptic.EINVALID, "URL required")
	}
	if err := s.Config.Validate(); err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, s.Config.Timeout)
	defer cancel()

	rawHTML, err := s.Fetcher.Fetch(ctx, url)
	if err != nil {
		return nil, err
	}

	// Primary extraction. A result below the quality floor is treated
	// the same as a failure: the fallback gets its chance.
	if result, err := s.Primary.Extract(rawHTML); err == nil {
		if body, err := s.render(result.ContentHTML); err == nil && len(body) >= s.Config.MinContentLength {
			return s.article(url, result, body, skeptic.MethodPrimary)
		}
	}

	result, err := s.Fallback.Extract(rawHTML)
	if err != nil {
		return nil, skeptic.Errorf(skeptic.EEXTRACT, "both extraction methods failed: %v", err)
	}

	body, err := s.render(result.ContentHTML)
	if err != nil {
		return nil, err
	}
	if len(body) < s.Config.MinContentLength {
		return nil, skeptic.Errorf(skeptic.ETOOSHORT,
			"extracted content is %d characters, below the %d character minimum", len(body), s.Config.MinContentLength)
	}

	return s.article(url, result, body, skeptic.MethodFallback)
}

// render converts extracted HTML to Markdown and normalizes it within
// the configured character budget.
func (s *Scraper) render(contentHTML string) (string, error) {
	markdown, err := s.Converter.Convert(contentHTML)
	if err != nil {
		return "", err
	}

	patterns := s.Boilerplate
	if patterns == nil {
		patterns = skeptic.DefaultBoilerplatePatterns()
	}

	return skeptic.Normalize(markdown, patterns, s.Config.MaxContentLength), nil
}

// article assembles and validates the final Article.
func (s *Scraper) article(url string, result *skeptic.ExtractResult, body string, method skeptic.ExtractionMethod) (*skeptic.Article, error) {
	now := time.Now
	if s.now != nil {
		now = s.now
	}

	article := &skeptic.Article{
		Title:     result.Title,
		Authors:   result.Authors,
		Body:      body,
		SourceURL: url,
		Method:    method,
		CharCount: len(body),
		FetchedAt: now().UTC(),
	}
	if err := article.Validate(); err != nil {
		return nil, err
	}

	return article, nil
}
