package ratelimit

import "context"

// Limiter decides whether a caller identified by key may make another
// request in the current window. Implementations are safe for
// concurrent use.
type Limiter interface {
	Allow(ctx context.Context, key string) (bool, error)
}
