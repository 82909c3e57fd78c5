package skeptic

import (
	"strings"
	"time"
)

// ExtractionMethod identifies which extraction strategy produced an article.
type ExtractionMethod string

// Extraction methods, in preference order.
const (
	// MethodPrimary means the structured article parser produced the content.
	MethodPrimary ExtractionMethod = "primary"

	// MethodFallback means generic CSS-selector heuristics produced the content.
	MethodFallback ExtractionMethod = "fallback"
)

// Article holds the extracted and normalized content of a news article.
// It is immutable after the scrape pipeline returns it.
type Article struct {
	// Title is the article headline. May be empty when no title was found.
	Title string `json:"title"`

	// Authors lists the article bylines in document order.
	Authors []string `json:"authors"`

	// Body is the normalized article text as Markdown.
	// Never empty on a successfully scraped article.
	Body string `json:"body"`

	// SourceURL is the URL the article was fetched from.
	SourceURL string `json:"sourceUrl"`

	// Method records which extraction strategy produced the body.
	Method ExtractionMethod `json:"method"`

	// CharCount is len(Body). Always <= the configured maximum length.
	CharCount int `json:"charCount"`

	// FetchedAt is when the article was retrieved.
	FetchedAt time.Time `json:"fetchedAt"`
}

// Validate returns an error if the article violates pipeline invariants.
func (a *Article) Validate() error {
	if a.SourceURL == "" {
		return Errorf(EINVALID, "article source URL required")
	}
	if a.Body == "" {
		return Errorf(EINVALID, "article body required")
	}
	if a.CharCount != len(a.Body) {
		return Errorf(EINVALID, "article char count %d does not match body length %d", a.CharCount, len(a.Body))
	}
	return nil
}

// AuthorLine joins the authors for display. Returns empty string when
// no authors were found.
func (a *Article) AuthorLine() string {
	return strings.Join(a.Authors, ", ")
}

// Default scrape configuration values, matching the limits the analysis
// prompts were tuned for.
const (
	DefaultMinContentLength = 100
	DefaultMaxContentLength = 10000
	DefaultTimeout          = 10 * time.Second
)

// DefaultUserAgent is sent with article fetches. News sites routinely
// refuse requests with non-browser user agents.
const DefaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 " +
	"(KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36"

// ScrapeConfig bundles the pipeline thresholds. It is read-only after
// construction and passed explicitly into each component.
type ScrapeConfig struct {
	// MinContentLength is the quality floor: extracted content shorter
	// than this is considered unusable.
	MinContentLength int

	// MaxContentLength is the character budget for the normalized body.
	MaxContentLength int

	// Timeout bounds the article fetch.
	Timeout time.Duration

	// UserAgent is sent with the article fetch.
	UserAgent string
}

// DefaultScrapeConfig returns a ScrapeConfig with default thresholds.
func DefaultScrapeConfig() ScrapeConfig {
	return ScrapeConfig{
		MinContentLength: DefaultMinContentLength,
		MaxContentLength: DefaultMaxContentLength,
		Timeout:          DefaultTimeout,
		UserAgent:        DefaultUserAgent,
	}
}

// Validate returns an error if the configuration is inconsistent.
func (c ScrapeConfig) Validate() error {
	if c.MinContentLength <= 0 {
		return Errorf(EINVALID, "minimum content length must be positive")
	}
	if c.MaxContentLength < c.MinContentLength {
		return Errorf(EINVALID, "maximum content length %d below minimum %d", c.MaxContentLength, c.MinContentLength)
	}
	if c.Timeout <= 0 {
		return Errorf(EINVALID, "timeout must be positive")
	}
	return nil
}
