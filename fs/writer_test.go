package fs_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/fwojciec/skeptic"
	"github.com/fwojciec/skeptic/fs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReportWriter_WriteReport(t *testing.T) {
	t.Parallel()

	t.Run("writes content to path", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "report.md")
		w := fs.NewReportWriter()

		err := w.WriteReport(context.Background(), path, "# Report\n\nContent.\n")
		require.NoError(t, err)

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, "# Report\n\nContent.\n", string(data))
	})

	t.Run("creates parent directories", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "reports", "2026", "report.md")
		w := fs.NewReportWriter()

		err := w.WriteReport(context.Background(), path, "content")
		require.NoError(t, err)

		_, err = os.Stat(path)
		assert.NoError(t, err)
	})

	t.Run("overwrites existing file", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "report.md")
		require.NoError(t, os.WriteFile(path, []byte("old"), 0644))

		w := fs.NewReportWriter()
		require.NoError(t, w.WriteReport(context.Background(), path, "new"))

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, "new", string(data))
	})

	t.Run("empty path is invalid", func(t *testing.T) {
		t.Parallel()

		w := fs.NewReportWriter()
		err := w.WriteReport(context.Background(), "", "content")
		assert.Equal(t, skeptic.EINVALID, skeptic.ErrorCode(err))
	})

	t.Run("cancelled context aborts", func(t *testing.T) {
		t.Parallel()

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		w := fs.NewReportWriter()
		err := w.WriteReport(ctx, filepath.Join(t.TempDir(), "report.md"), "content")
		assert.Error(t, err)
	})
}
