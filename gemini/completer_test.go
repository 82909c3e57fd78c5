package gemini_test

import (
	"context"
	"testing"

	"github.com/fwojciec/skeptic"
	"github.com/fwojciec/skeptic/gemini"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompleter_Complete_ReturnsErrorWhenUserPromptEmpty(t *testing.T) {
	t.Parallel()

	c := gemini.NewCompleter(nil) // nil client ok for this test

	_, err := c.Complete(context.Background(), "system", "")

	require.Error(t, err)
	assert.Equal(t, skeptic.EINVALID, skeptic.ErrorCode(err))
	assert.Contains(t, skeptic.ErrorMessage(err), "user prompt required")
}

func TestBuildConfig(t *testing.T) {
	t.Parallel()

	config := gemini.BuildConfig("be skeptical")

	require.NotNil(t, config.Temperature)
	assert.InDelta(t, 0.3, float64(*config.Temperature), 0.001)
	require.NotNil(t, config.SystemInstruction)
	require.Len(t, config.SystemInstruction.Parts, 1)
	assert.Equal(t, "be skeptical", config.SystemInstruction.Parts[0].Text)
}

func TestBuildConfig_NoSystemInstruction(t *testing.T) {
	t.Parallel()

	config := gemini.BuildConfig("")

	assert.Nil(t, config.SystemInstruction)
}
