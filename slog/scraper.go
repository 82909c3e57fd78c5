package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/skeptic"
)

// Ensure LoggingScraper implements skeptic.Scraper.
var _ skeptic.Scraper = (*LoggingScraper)(nil)

// LoggingScraper wraps a Scraper with logging of the extraction outcome.
type LoggingScraper struct {
	next   skeptic.Scraper
	logger *slog.Logger
}

// NewLoggingScraper creates a new LoggingScraper.
func NewLoggingScraper(next skeptic.Scraper, logger *slog.Logger) *LoggingScraper {
	return &LoggingScraper{next: next, logger: logger}
}

// Scrape delegates to the wrapped scraper and logs which extraction
// method produced the article.
func (s *LoggingScraper) Scrape(ctx context.Context, url string) (*skeptic.Article, error) {
	begin := time.Now()
	article, err := s.next.Scrape(ctx, url)
	if err != nil {
		s.logger.Error("scrape",
			"url", url,
			"duration", time.Since(begin),
			"err", err,
		)
		return nil, err
	}

	s.logger.Info("scrape",
		"url", url,
		"method", string(article.Method),
		"chars", article.CharCount,
		"duration", time.Since(begin),
	)
	return article, nil
}
