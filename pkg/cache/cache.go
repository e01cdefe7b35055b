// Package cache provides pluggable storage for computed layouts and rendered
// preview artifacts.
//
// # Backends
//
//   - [FileCache]: one JSON file per entry under a directory (CLI default)
//   - [SQLiteCache]: a single SQLite database file
//   - [RedisCache]: a shared Redis instance (API deployments)
//   - [MongoCache]: a MongoDB collection with a TTL index
//   - [NullCache]: never stores anything
//
// All backends implement [Cache] and are safe for concurrent use. A cache is
// never load-bearing: callers treat every error as a miss.
//
// # Keys
//
// A [Keyer] derives keys from the inputs that determine a value. Layout keys
// hash the quote content together with the engine version; artifact keys hash
// the layout document together with the render options. [NewScopedKeyer]
// prefixes every key for namespace isolation.
package cache

import (
	"context"
	"fmt"
	"strings"
	"time"
)

// Default TTLs for cached values.
const (
	TTLLayout   = 7 * 24 * time.Hour
	TTLArtifact = 7 * 24 * time.Hour
)

// Cache stores opaque byte values under string keys.
type Cache interface {
	// Get returns the value for key. A missing or expired entry is a miss
	// (hit == false) with a nil error.
	Get(ctx context.Context, key string) (data []byte, hit bool, err error)

	// Set stores data under key. A ttl of 0 means no expiry.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases any resources held by the cache.
	Close() error
}

// Backend names accepted by [Open].
const (
	BackendFile   = "file"
	BackendSQLite = "sqlite"
	BackendRedis  = "redis"
	BackendMongo  = "mongo"
	BackendNone   = "none"
)

// Config selects and configures a cache backend.
type Config struct {
	Backend       string `mapstructure:"backend"`
	Dir           string `mapstructure:"dir"`
	SQLitePath    string `mapstructure:"sqlite_path"`
	RedisURL      string `mapstructure:"redis_url"`
	MongoURI      string `mapstructure:"mongo_uri"`
	MongoDatabase string `mapstructure:"mongo_database"`
}

// Open creates the cache backend named by cfg.Backend. An empty backend
// selects the file cache.
func Open(ctx context.Context, cfg Config) (Cache, error) {
	switch strings.ToLower(cfg.Backend) {
	case "", BackendFile:
		if cfg.Dir == "" {
			return nil, fmt.Errorf("file cache: directory is required")
		}
		return NewFileCache(cfg.Dir)
	case BackendSQLite:
		c, err := NewSQLiteCache(ctx, cfg.SQLitePath)
		if err != nil {
			return nil, err
		}
		return c, nil
	case BackendRedis:
		c, err := NewRedisCache(ctx, cfg.RedisURL)
		if err != nil {
			return nil, err
		}
		return c, nil
	case BackendMongo:
		c, err := NewMongoCache(ctx, cfg.MongoURI, cfg.MongoDatabase)
		if err != nil {
			return nil, err
		}
		return c, nil
	case BackendNone:
		return NewNullCache(), nil
	}
	return nil, fmt.Errorf("unknown cache backend %q (must be one of: file, sqlite, redis, mongo, none)", cfg.Backend)
}
