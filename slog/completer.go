package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/skeptic"
)

// Ensure LoggingCompleter implements skeptic.Completer.
var _ skeptic.Completer = (*LoggingCompleter)(nil)

// LoggingCompleter wraps a Completer with logging of prompt and
// response sizes.
type LoggingCompleter struct {
	next   skeptic.Completer
	logger *slog.Logger
}

// NewLoggingCompleter creates a new LoggingCompleter.
func NewLoggingCompleter(next skeptic.Completer, logger *slog.Logger) *LoggingCompleter {
	return &LoggingCompleter{next: next, logger: logger}
}

// Complete delegates to the wrapped completer and logs the outcome.
func (c *LoggingCompleter) Complete(ctx context.Context, system, user string) (string, error) {
	begin := time.Now()
	text, err := c.next.Complete(ctx, system, user)
	if err != nil {
		c.logger.Error("complete",
			"prompt_bytes", len(user),
			"duration", time.Since(begin),
			"err", err,
		)
		return "", err
	}

	c.logger.Debug("complete",
		"prompt_bytes", len(user),
		"response_bytes", len(text),
		"duration", time.Since(begin),
	)
	return text, nil
}
