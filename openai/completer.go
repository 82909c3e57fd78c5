// Package openai implements the completion boundary using the OpenAI
// chat completions API.
package openai

import (
	"context"

	"github.com/fwojciec/skeptic"
	gopenai "github.com/sashabaranov/go-openai"
)

// DefaultModel is used when no model is configured.
const DefaultModel = "gpt-4o-mini"

const (
	temperature = 0.3
	maxTokens   = 1000
)

// Ensure Completer implements skeptic.Completer at compile time.
var _ skeptic.Completer = (*Completer)(nil)

// Completer implements skeptic.Completer using OpenAI chat completions.
type Completer struct {
	client *gopenai.Client
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

// NewCompleter creates a Completer backed by the given API key.
func NewCompleter(apiKey string, opts ...Option) *Completer {
	return NewCompleterWithClient(gopenai.NewClient(apiKey), opts...)
}

// NewCompleterWithClient creates a Completer around an existing client.
// Useful for pointing at an OpenAI-compatible endpoint.
func NewCompleterWithClient(client *gopenai.Client, opts ...Option) *Completer {
	c := &Completer{client: client, model: DefaultModel}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Complete sends a single system+user exchange and returns the response
// text.
func (c *Completer) Complete(ctx context.Context, system, user string) (string, error) {
	if user == "" {
		return "", skeptic.Errorf(skeptic.EINVALID, "user prompt required")
	}

	resp, err := c.client.CreateChatCompletion(ctx, gopenai.ChatCompletionRequest{
		Model: c.model,
		Messages: []gopenai.ChatCompletionMessage{
			{Role: gopenai.ChatMessageRoleSystem, Content: system},
			{Role: gopenai.ChatMessageRoleUser, Content: user},
		},
		Temperature: temperature,
		MaxTokens:   maxTokens,
	})
	if err != nil {
		return "", skeptic.Errorf(skeptic.EINTERNAL, "openai completion: %v", err)
	}
	if len(resp.Choices) == 0 {
		return "", skeptic.Errorf(skeptic.EINTERNAL, "openai returned no choices")
	}

	return resp.Choices[0].Message.Content, nil
}
