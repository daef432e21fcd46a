// Package cachemanager provides a typed in-memory cache and a read-through
// wrapper used to memoize input file reads.
package cachemanager

import (
	"context"
	"time"
)

type CacheManager[K comparable, V any] interface {
	Get(ctx context.Context, key K) (V, bool)
	Set(ctx context.Context, key K, value V, ttl time.Duration)
}
