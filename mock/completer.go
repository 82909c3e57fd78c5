package mock

import (
	"context"

	"github.com/fwojciec/skeptic"
)

var _ skeptic.Completer = (*Completer)(nil)

// Completer is a mock implementation of skeptic.Completer.
type Completer struct {
	CompleteFn func(ctx context.Context, system, user string) (string, error)
}

func (c *Completer) Complete(ctx context.Context, system, user string) (string, error) {
	return c.CompleteFn(ctx, system, user)
}
