// Package analyze produces critical analyses of articles by running a
// fixed set of prompts against an LLM completion backend.
package analyze

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/skeptic"
	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"
)

// HashContent fingerprints an article body so cached analyses can be
// matched against re-fetched content.
func HashContent(body string) string {
	return fmt.Sprintf("%016x", xxhash.Sum64String(body))
}

// DefaultRequestsPerSecond throttles completion calls so a burst of
// parallel prompts stays inside typical API rate limits.
const DefaultRequestsPerSecond = 2.0

// Ensure Analyzer implements skeptic.Analyzer at compile time.
var _ skeptic.Analyzer = (*Analyzer)(nil)

// Analyzer runs the six analysis prompts (core claims, language & tone,
// red flags, verification questions, entities, counter-argument)
// concurrently against a Completer and assembles the results.
type Analyzer struct {
	completer   skeptic.Completer
	model       string
	limiter     *rate.Limiter
	retryDelays []time.Duration
}

// Option configures an Analyzer.
type Option func(*Analyzer)

// WithRateLimit sets the completion request rate in requests per second.
func WithRateLimit(rps float64) Option {
	return func(a *Analyzer) {
		a.limiter = rate.NewLimiter(rate.Limit(rps), 1)
	}
}

// WithRetryDelays overrides the completion retry backoff schedule.
// Useful for testing without waiting for real delays.
func WithRetryDelays(delays []time.Duration) Option {
	return func(a *Analyzer) {
		a.retryDelays = delays
	}
}

// NewAnalyzer creates an Analyzer for the given completion backend.
// The model name is recorded on produced analyses.
func NewAnalyzer(completer skeptic.Completer, model string, opts ...Option) *Analyzer {
	a := &Analyzer{
		completer:   completer,
		model:       model,
		limiter:     rate.NewLimiter(rate.Limit(DefaultRequestsPerSecond), 1),
		retryDelays: DefaultRetryDelays(),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Analyze runs all analysis prompts against the article body.
// Prompts run concurrently; the first failure cancels the rest.
func (a *Analyzer) Analyze(ctx context.Context, article *skeptic.Article) (*skeptic.Analysis, error) {
	if article == nil || article.Body == "" {
		return nil, skeptic.Errorf(skeptic.EINVALID, "article body required")
	}
	if a.completer == nil {
		return nil, skeptic.Errorf(skeptic.EINTERNAL, "analyzer has no completion backend")
	}

	analysis := &skeptic.Analysis{
		ArticleTitle:   article.Title,
		ArticleURL:     article.SourceURL,
		ArticleAuthors: article.Authors,
		Method:         article.Method,
		ContentHash:    HashContent(article.Body),
		Model:          a.model,
	}

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		text, err := a.complete(ctx, BuildClaimsPrompt(article))
		if err != nil {
			return err
		}
		analysis.CoreClaims = ParseBulletPoints(text)
		return nil
	})

	g.Go(func() error {
		text, err := a.complete(ctx, BuildLanguagePrompt(article))
		if err != nil {
			return err
		}
		analysis.LanguageAnalysis = text
		return nil
	})

	g.Go(func() error {
		text, err := a.complete(ctx, BuildRedFlagsPrompt(article))
		if err != nil {
			return err
		}
		if NoRedFlags(text) {
			analysis.RedFlags = []string{"No significant red flags detected in the available content."}
		} else {
			analysis.RedFlags = ParseBulletPoints(text)
		}
		return nil
	})

	g.Go(func() error {
		text, err := a.complete(ctx, BuildQuestionsPrompt(article))
		if err != nil {
			return err
		}
		analysis.VerificationQuestions = ParseNumberedList(text)
		return nil
	})

	g.Go(func() error {
		text, err := a.complete(ctx, BuildEntitiesPrompt(article))
		if err != nil {
			return err
		}
		analysis.Entities = ParseEntityReport(text)
		return nil
	})

	g.Go(func() error {
		text, err := a.complete(ctx, BuildCounterPrompt(article))
		if err != nil {
			return err
		}
		analysis.CounterArgument = text
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return analysis, nil
}

// complete throttles, retries, and trims a single completion call.
func (a *Analyzer) complete(ctx context.Context, user string) (string, error) {
	if err := a.limiter.Wait(ctx); err != nil {
		return "", err
	}

	text, err := completeWithRetry(ctx, a.completer, systemPrompt, user, a.retryDelays)
	if err != nil {
		return "", err
	}

	return strings.TrimSpace(text), nil
}
