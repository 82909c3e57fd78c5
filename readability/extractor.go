// Package readability implements skeptic.Extractor using the
// go-readability article parser. It is the default primary extraction
// strategy.
package readability

import (
	"strings"

	"github.com/fwojciec/skeptic"
	"github.com/go-shiori/go-readability"
)

// Ensure Extractor implements skeptic.Extractor at compile time.
var _ skeptic.Extractor = (*Extractor)(nil)

// Extractor wraps go-readability to extract article content from HTML.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract processes raw HTML and returns the article content.
func (e *Extractor) Extract(rawHTML string) (*skeptic.ExtractResult, error) {
	if rawHTML == "" {
		return nil, skeptic.Errorf(skeptic.EINVALID, "empty HTML input")
	}

	article, err := readability.FromReader(strings.NewReader(rawHTML), nil)
	if err != nil {
		return nil, skeptic.Errorf(skeptic.EEXTRACT, "readability: %v", err)
	}

	if strings.TrimSpace(article.TextContent) == "" {
		return nil, skeptic.Errorf(skeptic.EEXTRACT, "readability found no article body")
	}

	return &skeptic.ExtractResult{
		Title:       article.Title,
		Authors:     ParseByline(article.Byline),
		ContentHTML: article.Content,
	}, nil
}

// ParseByline splits a byline string into individual author names.
// Bylines come in forms like "By Jane Doe and John Roe" or
// "Jane Doe, John Roe".
func ParseByline(byline string) []string {
	byline = strings.TrimSpace(byline)
	if byline == "" {
		return nil
	}

	if len(byline) > 3 && strings.EqualFold(byline[:3], "by ") {
		byline = byline[3:]
	}

	byline = strings.ReplaceAll(byline, " and ", ",")

	var authors []string
	for _, part := range strings.Split(byline, ",") {
		if name := strings.TrimSpace(part); name != "" {
			authors = append(authors, name)
		}
	}
	return authors
}
