// Package fs implements report persistence on the local filesystem.
package fs

import (
	"context"
	"os"
	"path/filepath"

	"github.com/fwojciec/skeptic"
)

// Ensure ReportWriter implements skeptic.ReportWriter at compile time.
var _ skeptic.ReportWriter = (*ReportWriter)(nil)

// ReportWriter writes analysis reports to local files.
type ReportWriter struct{}

// NewReportWriter creates a new ReportWriter.
func NewReportWriter() *ReportWriter {
	return &ReportWriter{}
}

// WriteReport writes the report content to path, creating parent
// directories as needed.
func (w *ReportWriter) WriteReport(ctx context.Context, path, content string) error {
	if path == "" {
		return skeptic.Errorf(skeptic.EINVALID, "report path required")
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return skeptic.Errorf(skeptic.EINTERNAL, "create report directory: %v", err)
		}
	}

	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return skeptic.Errorf(skeptic.EINTERNAL, "write report: %v", err)
	}

	return nil
}
