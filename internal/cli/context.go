package cli

import (
	"context"
	"errors"
)

// ErrNoCLI is returned when a command runs without an opened CLI session
var ErrNoCLI = errors.New("cli session not initialized")

type cliContextKey struct{}

// WithCLI returns a copy of ctx carrying c
func WithCLI(ctx context.Context, c *CLI) context.Context {
	return context.WithValue(ctx, cliContextKey{}, c)
}

// GetCLIFromContext returns the session stored by WithCLI
func GetCLIFromContext(ctx context.Context) (*CLI, error) {
	c, ok := ctx.Value(cliContextKey{}).(*CLI)
	if !ok || c == nil {
		return nil, ErrNoCLI
	}
	return c, nil
}
