// Package goquery implements skeptic.Extractor using generic CSS-selector
// heuristics. It is the fallback strategy for pages the structured article
// parsers cannot handle.
package goquery

import (
	"html"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/skeptic"
)

// MinSelectorContentLength is the floor below which a selector match is
// not considered substantial article content.
const MinSelectorContentLength = 200

// SelectorConfig defines a CSS selector with a source label for logging
// and debugging.
type SelectorConfig struct {
	Selector string
	Source   string
}

// ContentSelectors is the ordered list of article-body selectors, most
// specific first. The first selector whose text passes
// MinSelectorContentLength wins; there is no scoring across selectors.
func ContentSelectors() []SelectorConfig {
	return []SelectorConfig{
		{Selector: ".entry-content", Source: "entry-content"},
		{Selector: ".article-content", Source: "article-content"},
		{Selector: ".post-content", Source: "post-content"},
		{Selector: ".story-body", Source: "story-body"},
		{Selector: "article .content", Source: "article-inner-content"},
		{Selector: `[data-module="ArticleBody"]`, Source: "data-module"},
		{Selector: ".article-body", Source: "article-body"},
		{Selector: "main article", Source: "main-article"},
		{Selector: "article", Source: "article"},
	}
}

// titleSelectors is the ordered list of headline selectors.
var titleSelectors = []string{
	"h1.entry-title",
	"h1.headline",
	"h1.article-title",
	".headline h1",
	"article h1",
	"h1",
	"title",
}

// authorSelectors is the ordered list of byline selectors.
var authorSelectors = []string{
	".author",
	".byline",
	`[rel="author"]`,
	".article-author",
	".post-author",
}

// noiseSelector matches elements that never contain article content.
const noiseSelector = "script, style, noscript, nav, footer, header, aside"

// Ensure Extractor implements skeptic.Extractor at compile time.
var _ skeptic.Extractor = (*Extractor)(nil)

// Extractor extracts article content with an ordered CSS-selector scan.
type Extractor struct {
	selectors []SelectorConfig
}

// Option configures an Extractor.
type Option func(*Extractor)

// WithSelectors overrides the default content selector list.
func WithSelectors(selectors []SelectorConfig) Option {
	return func(e *Extractor) {
		e.selectors = selectors
	}
}

// NewExtractor creates a new Extractor with the default selector list.
func NewExtractor(opts ...Option) *Extractor {
	e := &Extractor{
		selectors: ContentSelectors(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Extract parses the HTML and scans the content selectors in priority
// order, returning the first match with enough text. As a last resort it
// joins all paragraph text on the page.
func (e *Extractor) Extract(rawHTML string) (*skeptic.ExtractResult, error) {
	if rawHTML == "" {
		return nil, skeptic.Errorf(skeptic.EINVALID, "empty HTML input")
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(rawHTML))
	if err != nil {
		return nil, skeptic.Errorf(skeptic.EINVALID, "failed to parse HTML: %v", err)
	}

	doc.Find(noiseSelector).Remove()

	title := extractFirstText(doc, titleSelectors)
	authors := extractAuthors(doc)

	for _, config := range e.selectors {
		sel := doc.Find(config.Selector).First()
		if sel.Length() == 0 {
			continue
		}
		if len(strings.TrimSpace(sel.Text())) < MinSelectorContentLength {
			continue
		}

		contentHTML, err := goquery.OuterHtml(sel)
		if err != nil {
			return nil, skeptic.Errorf(skeptic.EINTERNAL, "render selection: %v", err)
		}

		return &skeptic.ExtractResult{
			Title:       title,
			Authors:     authors,
			ContentHTML: contentHTML,
		}, nil
	}

	// Last resort: join all paragraph text.
	contentHTML := paragraphHTML(doc)
	if contentHTML == "" {
		return nil, skeptic.Errorf(skeptic.EEXTRACT, "no selector matched substantial content")
	}

	return &skeptic.ExtractResult{
		Title:       title,
		Authors:     authors,
		ContentHTML: contentHTML,
	}, nil
}

// extractFirstText returns the text of the first selector with a
// non-empty match.
func extractFirstText(doc *goquery.Document, selectors []string) string {
	for _, selector := range selectors {
		if text := strings.TrimSpace(doc.Find(selector).First().Text()); text != "" {
			return text
		}
	}
	return ""
}

// extractAuthors returns the byline from the first matching author
// selector, if any.
func extractAuthors(doc *goquery.Document) []string {
	for _, selector := range authorSelectors {
		text := strings.TrimSpace(doc.Find(selector).First().Text())
		if text == "" {
			continue
		}
		return splitByline(text)
	}
	return nil
}

// splitByline splits a byline into author names.
func splitByline(byline string) []string {
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

// paragraphHTML rebuilds a content fragment from every paragraph on the
// page, preserving document order.
func paragraphHTML(doc *goquery.Document) string {
	var b strings.Builder
	doc.Find("p").Each(func(_ int, sel *goquery.Selection) {
		text := strings.TrimSpace(sel.Text())
		if text == "" {
			return
		}
		b.WriteString("<p>")
		b.WriteString(html.EscapeString(text))
		b.WriteString("</p>")
	})
	return b.String()
}
