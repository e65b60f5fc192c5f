// Package requestid carries the per-request correlation id through contexts.
package requestid

import "context"

// Header is the HTTP header the id travels in, inbound and upstream.
const Header = "X-Request-ID"

type ctxKey struct{}

func WithID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, ctxKey{}, id)
}

// FromContext returns the id stored in ctx, or "" when there is none.
func FromContext(ctx context.Context) string {
	id, _ := ctx.Value(ctxKey{}).(string)
	return id
}
