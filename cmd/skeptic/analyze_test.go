package main_test

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/fwojciec/skeptic"
	main "github.com/fwojciec/skeptic/cmd/skeptic"
	"github.com/fwojciec/skeptic/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testDeps(stdout, stderr *bytes.Buffer) *main.Dependencies {
	return &main.Dependencies{
		Ctx:    context.Background(),
		Stdout: stdout,
		Stderr: stderr,
	}
}

func scrapedArticle() *skeptic.Article {
	return &skeptic.Article{
		Title:     "Council Approves Measure",
		Authors:   []string{"Jane Smith"},
		Body:      "The city council voted 7-2 to approve the zoning measure.",
		SourceURL: "https://example.com/news",
		Method:    skeptic.MethodPrimary,
		CharCount: 57,
		FetchedAt: time.Now().UTC(),
	}
}

func storedAnalysis() *skeptic.Analysis {
	return &skeptic.Analysis{
		ID:           "analysis-123",
		ArticleTitle: "Council Approves Measure",
		ArticleURL:   "https://example.com/news",
		CoreClaims:   []string{"The council voted 7-2"},
		Model:        "test-model",
		CreatedAt:    time.Date(2026, 8, 20, 10, 0, 0, 0, time.UTC),
	}
}

func TestAnalyzeCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("scrapes, analyzes, stores, and writes report", func(t *testing.T) {
		t.Parallel()

		stdout, stderr := &bytes.Buffer{}, &bytes.Buffer{}
		deps := testDeps(stdout, stderr)

		var written string
		deps.Analyses = &mock.AnalysisService{
			FindAnalysisByURLFn: func(ctx context.Context, url string) (*skeptic.Analysis, error) {
				return nil, skeptic.Errorf(skeptic.ENOTFOUND, "no analysis found for URL")
			},
			CreateAnalysisFn: func(ctx context.Context, analysis *skeptic.Analysis) error {
				analysis.ID = "new-id"
				return nil
			},
		}
		deps.Scraper = &mock.Scraper{
			ScrapeFn: func(ctx context.Context, url string) (*skeptic.Article, error) {
				assert.Equal(t, "https://example.com/news", url)
				return scrapedArticle(), nil
			},
		}
		deps.Analyzer = &mock.Analyzer{
			AnalyzeFn: func(ctx context.Context, article *skeptic.Article) (*skeptic.Analysis, error) {
				return storedAnalysis(), nil
			},
		}
		deps.Writer = &mock.ReportWriter{
			WriteReportFn: func(ctx context.Context, path, content string) error {
				assert.Equal(t, "report.md", path)
				written = content
				return nil
			},
		}

		cmd := &main.AnalyzeCmd{URL: "https://example.com/news", Output: "report.md", Quiet: true}
		err := cmd.Run(deps)

		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "Report written to report.md")
		assert.Contains(t, written, "Council Approves Measure")
		assert.Empty(t, stderr.String())
	})

	t.Run("reuses cached analysis", func(t *testing.T) {
		t.Parallel()

		stdout, stderr := &bytes.Buffer{}, &bytes.Buffer{}
		deps := testDeps(stdout, stderr)

		deps.Analyses = &mock.AnalysisService{
			FindAnalysisByURLFn: func(ctx context.Context, url string) (*skeptic.Analysis, error) {
				return storedAnalysis(), nil
			},
		}
		deps.Scraper = &mock.Scraper{
			ScrapeFn: func(ctx context.Context, url string) (*skeptic.Article, error) {
				t.Fatal("scrape should not run when a cached analysis exists")
				return nil, nil
			},
		}
		deps.Writer = &mock.ReportWriter{
			WriteReportFn: func(ctx context.Context, path, content string) error {
				return nil
			},
		}

		cmd := &main.AnalyzeCmd{URL: "https://example.com/news", Output: "report.md", Quiet: true}
		err := cmd.Run(deps)

		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "Using cached analysis")
	})

	t.Run("refresh bypasses the cache", func(t *testing.T) {
		t.Parallel()

		stdout, stderr := &bytes.Buffer{}, &bytes.Buffer{}
		deps := testDeps(stdout, stderr)

		scrapeCalled := false
		deps.Analyses = &mock.AnalysisService{
			FindAnalysisByURLFn: func(ctx context.Context, url string) (*skeptic.Analysis, error) {
				t.Fatal("cache should not be consulted with --refresh")
				return nil, nil
			},
			CreateAnalysisFn: func(ctx context.Context, analysis *skeptic.Analysis) error {
				return nil
			},
		}
		deps.Scraper = &mock.Scraper{
			ScrapeFn: func(ctx context.Context, url string) (*skeptic.Article, error) {
				scrapeCalled = true
				return scrapedArticle(), nil
			},
		}
		deps.Analyzer = &mock.Analyzer{
			AnalyzeFn: func(ctx context.Context, article *skeptic.Article) (*skeptic.Analysis, error) {
				return storedAnalysis(), nil
			},
		}
		deps.Writer = &mock.ReportWriter{
			WriteReportFn: func(ctx context.Context, path, content string) error {
				return nil
			},
		}

		cmd := &main.AnalyzeCmd{URL: "https://example.com/news", Output: "report.md", Refresh: true, Quiet: true}
		err := cmd.Run(deps)

		require.NoError(t, err)
		assert.True(t, scrapeCalled)
	})

	t.Run("reports scrape failure", func(t *testing.T) {
		t.Parallel()

		stdout, stderr := &bytes.Buffer{}, &bytes.Buffer{}
		deps := testDeps(stdout, stderr)

		deps.Analyses = &mock.AnalysisService{
			FindAnalysisByURLFn: func(ctx context.Context, url string) (*skeptic.Analysis, error) {
				return nil, skeptic.Errorf(skeptic.ENOTFOUND, "no analysis found for URL")
			},
		}
		deps.Scraper = &mock.Scraper{
			ScrapeFn: func(ctx context.Context, url string) (*skeptic.Article, error) {
				return nil, skeptic.Errorf(skeptic.EFETCH, "failed to fetch article")
			},
		}

		cmd := &main.AnalyzeCmd{URL: "https://example.com/news", Output: "report.md"}
		err := cmd.Run(deps)

		require.Error(t, err)
		assert.Equal(t, skeptic.EFETCH, skeptic.ErrorCode(err))
		assert.Contains(t, stderr.String(), "failed to fetch article")
	})

	t.Run("prints preview unless quiet", func(t *testing.T) {
		t.Parallel()

		stdout, stderr := &bytes.Buffer{}, &bytes.Buffer{}
		deps := testDeps(stdout, stderr)

		deps.Analyses = &mock.AnalysisService{
			FindAnalysisByURLFn: func(ctx context.Context, url string) (*skeptic.Analysis, error) {
				return storedAnalysis(), nil
			},
		}
		deps.Writer = &mock.ReportWriter{
			WriteReportFn: func(ctx context.Context, path, content string) error {
				return nil
			},
		}

		cmd := &main.AnalyzeCmd{URL: "https://example.com/news", Output: "report.md"}
		require.NoError(t, cmd.Run(deps))

		assert.Contains(t, stdout.String(), "# Critical Analysis")
	})
}
