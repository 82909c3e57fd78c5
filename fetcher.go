package skeptic

import "context"

// Fetcher retrieves raw HTML from URLs.
type Fetcher interface {
	// Fetch performs a single GET request and returns the response body.
	// The context controls timeout and cancellation. Failures (network
	// errors, timeouts, non-2xx statuses) carry the EFETCH code.
	Fetch(ctx context.Context, url string) (html string, err error)

	// Close releases any resources held by the fetcher.
	Close() error
}
