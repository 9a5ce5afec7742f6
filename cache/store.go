package cache

import "context"

// Store is the process-local cache consumed by the directory service.
// It exposes exactly three operations: no enumeration, no direct access
// to the eviction policy. Implementations must bound memory via a
// capacity- or time-based policy and be safe for concurrent use.
type Store interface {
	// Get returns the cached value for key, reporting whether one was
	// present.
	Get(ctx context.Context, key string) (any, bool)

	// Add stores value under key. A value added is retrievable until it
	// is evicted explicitly or displaced by the policy.
	Add(ctx context.Context, key string, value any)

	// Evict removes key from the store. Evicting an absent key is a
	// no-op, never an error.
	Evict(ctx context.Context, key string)
}

// Get is a type-safe accessor over Store. A present value of the wrong
// type is treated as a miss rather than a panic, so a key-space collision
// degrades to an extra repository read.
func Get[T any](ctx context.Context, store Store, key string) (T, bool) {
	var zero T
	v, ok := store.Get(ctx, key)
	if !ok {
		return zero, false
	}
	typed, ok := v.(T)
	if !ok {
		return zero, false
	}
	return typed, true
}
