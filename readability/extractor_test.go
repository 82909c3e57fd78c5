package readability_test

import (
	"testing"

	"github.com/fwojciec/skeptic"
	"github.com/fwojciec/skeptic/readability"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractor_RejectsEmptyInput(t *testing.T) {
	t.Parallel()

	ext := readability.NewExtractor()
	_, err := ext.Extract("")

	require.Error(t, err)
	assert.Equal(t, skeptic.EINVALID, skeptic.ErrorCode(err))
}

func TestExtractor_ExtractsTitle(t *testing.T) {
	t.Parallel()

	html := `<!DOCTYPE html>
<html>
<head><title>Mayor Announces Budget Cuts</title></head>
<body><article><p>The mayor announced sweeping budget cuts on Monday affecting several city departments.</p></article></body>
</html>`

	ext := readability.NewExtractor()
	result, err := ext.Extract(html)

	require.NoError(t, err)
	assert.Equal(t, "Mayor Announces Budget Cuts", result.Title)
}

func TestExtractor_KeepsArticleBody(t *testing.T) {
	t.Parallel()

	html := `<!DOCTYPE html>
<html>
<head><title>Test</title></head>
<body>
<nav><a href="/home">Home Nav Link</a></nav>
<article><p>This is the important article paragraph text that must be kept in the output.</p></article>
<footer><p>Footer copyright text 2024</p></footer>
</body>
</html>`

	ext := readability.NewExtractor()
	result, err := ext.Extract(html)

	require.NoError(t, err)
	assert.Contains(t, result.ContentHTML, "important article paragraph text")
	assert.NotContains(t, result.ContentHTML, "Home Nav Link")
	assert.NotContains(t, result.ContentHTML, "Footer copyright text")
}

func TestExtractor_NoBodyIsExtractError(t *testing.T) {
	t.Parallel()

	html := `<!DOCTYPE html><html><head><title>Empty</title></head><body></body></html>`

	ext := readability.NewExtractor()
	_, err := ext.Extract(html)

	require.Error(t, err)
	assert.Equal(t, skeptic.EEXTRACT, skeptic.ErrorCode(err))
}

func TestParseByline(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		byline string
		want   []string
	}{
		{
			name:   "empty",
			byline: "",
			want:   nil,
		},
		{
			name:   "single author with By prefix",
			byline: "By Jane Doe",
			want:   []string{"Jane Doe"},
		},
		{
			name:   "two authors joined with and",
			byline: "By Jane Doe and John Roe",
			want:   []string{"Jane Doe", "John Roe"},
		},
		{
			name:   "comma separated",
			byline: "Jane Doe, John Roe",
			want:   []string{"Jane Doe", "John Roe"},
		},
		{
			name:   "whitespace only",
			byline: "   ",
			want:   nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, readability.ParseByline(tt.byline))
		})
	}
}
