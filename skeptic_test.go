package skeptic_test

import (
	"errors"
	"testing"

	"github.com/fwojciec/skeptic"
	"github.com/stretchr/testify/assert"
)

func TestErrorf(t *testing.T) {
	t.Parallel()

	err := skeptic.Errorf(skeptic.ENOTFOUND, "analysis %q not found", "test")

	assert.Equal(t, skeptic.ENOTFOUND, skeptic.ErrorCode(err))
	assert.Equal(t, "analysis \"test\" not found", skeptic.ErrorMessage(err))
}

func TestErrorCode_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, skeptic.ErrorCode(nil))
}

func TestErrorCode_NonApplicationError(t *testing.T) {
	t.Parallel()

	assert.Equal(t, skeptic.EINTERNAL, skeptic.ErrorCode(errors.New("boom")))
}

func TestErrorMessage_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, skeptic.ErrorMessage(nil))
}

func TestArticle_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		article skeptic.Article
		code    string
	}{
		{
			name: "valid",
			article: skeptic.Article{
				SourceURL: "https://example.com/a",
				Body:      "content",
				CharCount: 7,
			},
		},
		{
			name:    "missing source URL",
			article: skeptic.Article{Body: "content", CharCount: 7},
			code:    skeptic.EINVALID,
		},
		{
			name:    "missing body",
			article: skeptic.Article{SourceURL: "https://example.com/a"},
			code:    skeptic.EINVALID,
		},
		{
			name: "char count mismatch",
			article: skeptic.Article{
				SourceURL: "https://example.com/a",
				Body:      "content",
				CharCount: 3,
			},
			code: skeptic.EINVALID,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := tt.article.Validate()
			if tt.code == "" {
				assert.NoError(t, err)
			} else {
				assert.Equal(t, tt.code, skeptic.ErrorCode(err))
			}
		})
	}
}

func TestScrapeConfig_Validate(t *testing.T) {
	t.Parallel()

	t.Run("defaults are valid", func(t *testing.T) {
		t.Parallel()
		assert.NoError(t, skeptic.DefaultScrapeConfig().Validate())
	})

	t.Run("max below min", func(t *testing.T) {
		t.Parallel()

		cfg := skeptic.DefaultScrapeConfig()
		cfg.MaxContentLength = cfg.MinContentLength - 1

		assert.Equal(t, skeptic.EINVALID, skeptic.ErrorCode(cfg.Validate()))
	})
}
