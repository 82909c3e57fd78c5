// Package gemini implements the completion boundary using Google Gemini.
package gemini

import (
	"context"

	"github.com/fwojciec/skeptic"
	"google.golang.org/genai"
)

// DefaultModel is used when no model is configured.
const DefaultModel = "gemini-2.5-flash"

// Ensure Completer implements skeptic.Completer at compile time.
var _ skeptic.Completer = (*Completer)(nil)

// Completer implements skeptic.Completer using Google Gemini.
type Completer struct {
	client *genai.Client
	model  string
}

// Option configures a Completer.
type Option func(*Completer)

// WithModel overrides the default model.
func WithModel(model string) Option {
	return func(c *Completer) {
		if model != "" {
			c.model = model
		}
	}
}

// NewCompleter creates a Completer around an existing Gemini client.
func NewCompleter(client *genai.Client, opts ...Option) *Completer {
	c := &Completer{client: client, model: DefaultModel}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// NewClient creates a Gemini API client for the given API key.
func NewClient(ctx context.Context, apiKey string) (*genai.Client, error) {
	return genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
}

// Complete sends a single system+user exchange and returns the response
// text.
func (c *Completer) Complete(ctx context.Context, system, user string) (string, error) {
	if user == "" {
		return "", skeptic.Errorf(skeptic.EINVALID, "user prompt required")
	}

	result, err := c.client.Models.GenerateContent(ctx, c.model,
		[]*genai.Content{{
			Parts: []*genai.Part{{Text: user}},
		}},
		BuildConfig(system),
	)
	if err != nil {
		return "", skeptic.Errorf(skeptic.EINTERNAL, "gemini completion: %v", err)
	}
	if result == nil {
		return "", skeptic.Errorf(skeptic.EINTERNAL, "gemini returned nil result")
	}

	return result.Text(), nil
}

// BuildConfig returns the GenerateContentConfig for Gemini API calls.
func BuildConfig(system string) *genai.GenerateContentConfig {
	temp := float32(0.3)
	config := &genai.GenerateContentConfig{
		Temperature: &temp,
	}
	if system != "" {
		config.SystemInstruction = &genai.Content{
			Parts: []*genai.Part{{Text: system}},
		}
	}
	return config
}
