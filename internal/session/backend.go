// Package session keeps per-browser state on the gateway: the backend access
// token, the signed-in user, a consume-once handoff slot and per-form submit
// flags.
package session

import (
	"context"
	"time"
)

// Backend is a TTL key-value store. Implementations must be safe for
// concurrent use.
type Backend interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Delete(ctx context.Context, keys ...string) error
	// Take returns the value and removes it in one step.
	Take(ctx context.Context, key string) ([]byte, bool, error)
	// SetIfNotExists stores value only when key is absent or expired.
	SetIfNotExists(ctx context.Context, key string, value []byte, ttl time.Duration) (bool, error)
}
