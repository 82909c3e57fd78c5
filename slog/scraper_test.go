package slog_test

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/fwojciec/skeptic"
	"github.com/fwojciec/skeptic/mock"
	skepticslog "github.com/fwojciec/skeptic/slog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggingScraper_Scrape(t *testing.T) {
	t.Parallel()

	t.Run("logs extraction method and size", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.Scraper{
			ScrapeFn: func(ctx context.Context, url string) (*skeptic.Article, error) {
				return &skeptic.Article{
					Body:      "article text",
					SourceURL: url,
					Method:    skeptic.MethodFallback,
					CharCount: 12,
				}, nil
			},
		}

		scraper := skepticslog.NewLoggingScraper(inner, logger)
		article, err := scraper.Scrape(context.Background(), "https://example.com/news")

		require.NoError(t, err)
		assert.Equal(t, skeptic.MethodFallback, article.Method)
		output := buf.String()
		assert.Contains(t, output, "scrape")
		assert.Contains(t, output, "method=fallback")
		assert.Contains(t, output, "chars=12")
	})

	t.Run("logs error on failure", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.Scraper{
			ScrapeFn: func(ctx context.Context, url string) (*skeptic.Article, error) {
				return nil, skeptic.Errorf(skeptic.EFETCH, "connection refused")
			},
		}

		scraper := skepticslog.NewLoggingScraper(inner, logger)
		_, err := scraper.Scrape(context.Background(), "https://example.com/news")

		require.Error(t, err)
		assert.Contains(t, buf.String(), "connection refused")
	})
}
