package skeptic

import "context"

// ReportWriter writes rendered reports to storage.
type ReportWriter interface {
	// WriteReport writes the report content to the given path, creating
	// parent directories as needed.
	WriteReport(ctx context.Context, path string, content string) error
}
