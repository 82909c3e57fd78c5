package skeptic

// ExtractResult holds the content extracted from an article page.
type ExtractResult struct {
	// Title is the article headline, if one was found.
	Title string

	// Authors lists bylines found on the page, in document order.
	Authors []string

	// ContentHTML is the main article content as clean HTML.
	// Boilerplate (nav, footer, sidebar, ads) has been removed.
	ContentHTML string
}

// Extractor extracts the main article content from raw HTML.
// Implementations are interchangeable strategies: structured article
// parsers and generic selector heuristics both satisfy this interface,
// so the fallback path can be tested independently.
type Extractor interface {
	// Extract processes raw HTML and returns the article content.
	// Returns EINVALID for empty input and EEXTRACT when no article
	// body can be identified.
	Extract(html string) (*ExtractResult, error)
}
