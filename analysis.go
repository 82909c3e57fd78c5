package skeptic

import (
	"context"
	"time"
)

// EntityReport groups the entities an analysis flagged for investigation.
// Each entry is an entity name followed by an investigation suggestion.
type EntityReport struct {
	People        []string `json:"people"`
	Organizations []string `json:"organizations"`
	Locations     []string `json:"locations"`
}

// Empty reports whether no entities were identified.
func (r EntityReport) Empty() bool {
	return len(r.People) == 0 && len(r.Organizations) == 0 && len(r.Locations) == 0
}

// Analysis holds the critical analysis of a single article.
type Analysis struct {
	ID string `json:"id"`

	// Article metadata captured at analysis time.
	ArticleTitle   string           `json:"articleTitle"`
	ArticleURL     string           `json:"articleUrl"`
	ArticleAuthors []string         `json:"articleAuthors"`
	Method         ExtractionMethod `json:"method"`

	// ContentHash identifies the article body the analysis was produced
	// from, so a re-fetch of changed content is analyzed anew.
	ContentHash string `json:"contentHash"`

	// CoreClaims are the main factual assertions made in the article.
	CoreClaims []string `json:"coreClaims"`

	// LanguageAnalysis assesses the article's tone and rhetoric.
	LanguageAnalysis string `json:"languageAnalysis"`

	// RedFlags lists signs of bias or poor reporting.
	RedFlags []string `json:"redFlags"`

	// VerificationQuestions are actionable questions for independently
	// verifying the article's content.
	VerificationQuestions []string `json:"verificationQuestions"`

	// Entities are key people, organizations, and locations worth
	// investigating.
	Entities EntityReport `json:"entities"`

	// CounterArgument summarizes how an opposing viewpoint might read
	// the same information.
	CounterArgument string `json:"counterArgument"`

	// Model is the LLM that produced the analysis.
	Model string `json:"model"`

	CreatedAt time.Time `json:"createdAt"`
}

// Validate returns an error if the analysis contains invalid fields.
func (a *Analysis) Validate() error {
	if a.ArticleURL == "" {
		return Errorf(EINVALID, "analysis article URL required")
	}
	if a.Model == "" {
		return Errorf(EINVALID, "analysis model required")
	}
	return nil
}

// Analyzer produces a critical analysis of an article.
type Analyzer interface {
	// Analyze runs the analysis prompts against the article body and
	// returns the assembled result. The returned analysis has no ID;
	// persistence assigns one.
	Analyze(ctx context.Context, article *Article) (*Analysis, error)
}

// Completer is the minimal LLM boundary: one system prompt, one user
// prompt, one text response. Keeping it this narrow lets the analysis
// logic run against any chat-completion backend or a test double.
type Completer interface {
	Complete(ctx context.Context, system, user string) (string, error)
}

// AnalysisService represents a service for persisting analyses.
type AnalysisService interface {
	// CreateAnalysis stores a new analysis, assigning ID and CreatedAt.
	CreateAnalysis(ctx context.Context, analysis *Analysis) error

	// FindAnalysisByID retrieves an analysis by ID.
	// Returns ENOTFOUND if it does not exist.
	FindAnalysisByID(ctx context.Context, id string) (*Analysis, error)

	// FindAnalysisByURL retrieves the most recent analysis for a URL.
	// Returns ENOTFOUND if none exists.
	FindAnalysisByURL(ctx context.Context, url string) (*Analysis, error)

	// FindAnalyses retrieves analyses matching the filter, most recent
	// first.
	FindAnalyses(ctx context.Context, filter AnalysisFilter) ([]*Analysis, error)

	// DeleteAnalysis permanently removes an analysis.
	// Returns ENOTFOUND if it does not exist.
	DeleteAnalysis(ctx context.Context, id string) error
}

// AnalysisFilter represents a filter for FindAnalyses.
type AnalysisFilter struct {
	ID  *string `json:"id"`
	URL *string `json:"url"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}
