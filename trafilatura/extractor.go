// Package trafilatura implements skeptic.Extractor using go-trafilatura,
// selectable as an alternative primary extraction strategy.
package trafilatura

import (
	"bytes"
	"strings"

	"github.com/fwojciec/skeptic"
	"github.com/markusmobius/go-trafilatura"
	"golang.org/x/net/html"
)

// Ensure Extractor implements skeptic.Extractor at compile time.
var _ skeptic.Extractor = (*Extractor)(nil)

// Extractor wraps go-trafilatura to extract article content from HTML.
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

	opts := trafilatura.Options{
		EnableFallback: true,
	}

	result, err := trafilatura.Extract(strings.NewReader(rawHTML), opts)
	if err != nil {
		return nil, skeptic.Errorf(skeptic.EEXTRACT, "trafilatura: %v", err)
	}

	if result.ContentNode == nil {
		return nil, skeptic.Errorf(skeptic.EEXTRACT, "trafilatura found no article body")
	}

	contentHTML, err := renderNode(result.ContentNode)
	if err != nil {
		return nil, err
	}

	return &skeptic.ExtractResult{
		Title:       result.Metadata.Title,
		Authors:     splitAuthors(result.Metadata.Author),
		ContentHTML: contentHTML,
	}, nil
}

// splitAuthors splits trafilatura's "A; B" author metadata into names.
func splitAuthors(author string) []string {
	if strings.TrimSpace(author) == "" {
		return nil
	}

	var authors []string
	for _, part := range strings.Split(author, ";") {
		if name := strings.TrimSpace(part); name != "" {
			authors = append(authors, name)
		}
	}
	return authors
}

// renderNode converts an html.Node to a string.
func renderNode(n *html.Node) (string, error) {
	var buf bytes.Buffer
	if err := html.Render(&buf, n); err != nil {
		return "", err
	}
	return buf.String(), nil
}
