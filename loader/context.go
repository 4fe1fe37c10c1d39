package loader

import "context"

type ctxKey struct{}

// NewContext attaches a Logger for loads performed under this context.
func NewContext(parent context.Context, logger Logger) context.Context {
	return context.WithValue(parent, ctxKey{}, logger)
}

// TryFromContext returns the Logger attached by NewContext, if any.
func TryFromContext(ctx context.Context) (Logger, bool) {
	l, ok := ctx.Value(ctxKey{}).(Logger)
	return l, ok
}
