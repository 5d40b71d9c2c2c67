package ports

import (
	"context"
	"time"
)

// Cache is a keyed store with per-entry expiry. Implementations must be
// safe for concurrent use; a miss is (zero, false, nil).
type Cache[V any] interface {
	Get(ctx context.Context, key string) (V, bool, error)
	Set(ctx context.Context, key string, value V, ttl time.Duration) error
}
