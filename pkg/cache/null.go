package cache

import (
	"context"
	"time"
)

// NullCache stores nothing. It backs the "none" backend and --no-cache, and
// the CLI falls back to it when the configured backend cannot be opened, so
// every layout is solved and every preview rendered afresh.
type NullCache struct{}

// NewNullCache returns a cache with caching disabled.
func NewNullCache() Cache { return NullCache{} }

// Get is always a miss.
func (NullCache) Get(context.Context, string) ([]byte, bool, error) { return nil, false, nil }

// Set discards the value.
func (NullCache) Set(context.Context, string, []byte, time.Duration) error { return nil }

func (NullCache) Delete(context.Context, string) error { return nil }

func (NullCache) Close() error { return nil }

var _ Cache = NullCache{}
