package analyze

import (
	"context"
	"time"

	"github.com/fwojciec/skeptic"
)

// DefaultRetryDelays returns the backoff delays for completion retries:
// 1s, 2s, 4s.
func DefaultRetryDelays() []time.Duration {
	return []time.Duration{1 * time.Second, 2 * time.Second, 4 * time.Second}
}

// completeWithRetry calls the completer with exponential backoff. One
// initial attempt plus one retry per delay; the last error is wrapped
// with EINTERNAL when all attempts fail.
func completeWithRetry(ctx context.Context, completer skeptic.Completer, system, user string, delays []time.Duration) (string, error) {
	maxAttempts := len(delays) + 1

	var lastErr error
	for attempt := 0; attempt < maxAttempts; attempt++ {
		text, err := completer.Complete(ctx, system, user)
		if err == nil {
			return text, nil
		}
		lastErr = err

		if attempt >= maxAttempts-1 {
			break
		}

		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case <-time.After(delays[attempt]):
		}
	}

	return "", skeptic.Errorf(skeptic.EINTERNAL, "completion failed after %d attempts: %v", maxAttempts, lastErr)
}
