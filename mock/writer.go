package mock

import (
	"context"

	"github.com/fwojciec/skeptic"
)

var _ skeptic.ReportWriter = (*ReportWriter)(nil)

// ReportWriter is a mock implementation of skeptic.ReportWriter.
type ReportWriter struct {
	WriteReportFn func(ctx context.Context, path string, content string) error
}

func (w *ReportWriter) WriteReport(ctx context.Context, path string, content string) error {
	return w.WriteReportFn(ctx, path, content)
}
