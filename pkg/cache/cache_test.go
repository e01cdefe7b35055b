package cache

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/matzehuels/quotefit/pkg/quote"
)

func TestNullCache(t *testing.T) {
	ctx := context.Background()
	c := NewNullCache()
	defer c.Close()

	// Get always returns miss
	data, hit, err := c.Get(ctx, "key")
	if err != nil {
		t.Fatalf("Get error: %v", err)
	}
	if hit {
		t.Error("NullCache.Get should always return miss")
	}
	if data != nil {
		t.Error("NullCache.Get should return nil data")
	}

	// Set does nothing (no error)
	if err := c.Set(ctx, "key", []byte("value"), time.Hour); err != nil {
		t.Errorf("Set error: %v", err)
	}

	// Still a miss after Set
	_, hit, _ = c.Get(ctx, "key")
	if hit {
		t.Error("NullCache should not store data")
	}

	// Delete does nothing (no error)
	if err := c.Delete(ctx, "key"); err != nil {
		t.Errorf("Delete error: %v", err)
	}
}

// exerciseCache runs the shared Cache contract against a backend.
func exerciseCache(t *testing.T, c Cache) {
	t.Helper()
	ctx := context.Background()

	if _, hit, err := c.Get(ctx, "missing"); err != nil || hit {
		t.Fatalf("Get(missing) = hit %v, err %v; want miss", hit, err)
	}

	if err := c.Set(ctx, "k1", []byte("layout"), time.Hour); err != nil {
		t.Fatalf("Set error: %v", err)
	}
	data, hit, err := c.Get(ctx, "k1")
	if err != nil || !hit {
		t.Fatalf("Get(k1) = hit %v, err %v; want hit", hit, err)
	}
	if string(data) != "layout" {
		t.Errorf("Get(k1) = %q, want %q", data, "layout")
	}

	// Overwrite
	if err := c.Set(ctx, "k1", []byte("svg"), 0); err != nil {
		t.Fatalf("Set error: %v", err)
	}
	if data, _, _ := c.Get(ctx, "k1"); string(data) != "svg" {
		t.Errorf("Get(k1) after overwrite = %q, want %q", data, "svg")
	}

	// Expired entries are misses
	if err := c.Set(ctx, "short", []byte("x"), time.Millisecond); err != nil {
		t.Fatalf("Set error: %v", err)
	}
	time.Sleep(20 * time.Millisecond)
	if _, hit, _ := c.Get(ctx, "short"); hit {
		t.Error("expired entry should be a miss")
	}

	if err := c.Delete(ctx, "k1"); err != nil {
		t.Fatalf("Delete error: %v", err)
	}
	if _, hit, _ := c.Get(ctx, "k1"); hit {
		t.Error("deleted entry should be a miss")
	}
	if err := c.Delete(ctx, "k1"); err != nil {
		t.Errorf("Delete of missing key error: %v", err)
	}
}

func TestFileCache(t *testing.T) {
	c, err := NewFileCache(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileCache error: %v", err)
	}
	defer c.Close()
	exerciseCache(t, c)
}

func TestFileCacheCorruptEntry(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	c, err := NewFileCache(dir)
	if err != nil {
		t.Fatal(err)
	}
	fc := c.(*FileCache)

	if err := c.Set(ctx, "key", []byte("v"), 0); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(fc.path("key"), []byte("not json"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, hit, err := c.Get(ctx, "key"); hit || err != nil {
		t.Errorf("corrupt entry: hit %v err %v, want miss", hit, err)
	}
}

func TestFileCacheClear(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	c, err := NewFileCache(dir)
	if err != nil {
		t.Fatal(err)
	}
	for _, k := range []string{"a", "b", "c"} {
		if err := c.Set(ctx, k, []byte(k), 0); err != nil {
			t.Fatal(err)
		}
	}

	n, err := c.(*FileCache).Clear()
	if err != nil {
		t.Fatalf("Clear error: %v", err)
	}
	if n != 3 {
		t.Errorf("Clear() = %d, want 3", n)
	}
	entries, _ := os.ReadDir(dir)
	if len(entries) != 0 {
		t.Errorf("directory has %d entries after Clear, want 0", len(entries))
	}

	if n, err := ClearDir(filepath.Join(dir, "missing")); n != 0 || err != nil {
		t.Errorf("ClearDir(missing) = %d, %v; want 0, nil", n, err)
	}
}

func TestSQLiteCache(t *testing.T) {
	c, err := NewSQLiteCache(context.Background(), ":memory:")
	if err != nil {
		t.Fatalf("NewSQLiteCache error: %v", err)
	}
	defer c.Close()
	exerciseCache(t, c)
}

func TestSQLiteCachePurge(t *testing.T) {
	ctx := context.Background()
	c, err := NewSQLiteCache(ctx, filepath.Join(t.TempDir(), "cache.db"))
	if err != nil {
		t.Fatalf("NewSQLiteCache error: %v", err)
	}
	defer c.Close()

	_ = c.Set(ctx, "keep", []byte("x"), 0)
	_ = c.Set(ctx, "drop", []byte("x"), time.Millisecond)
	time.Sleep(10 * time.Millisecond)

	n, err := c.Purge(ctx)
	if err != nil {
		t.Fatalf("Purge error: %v", err)
	}
	if n != 1 {
		t.Errorf("Purge() = %d, want 1", n)
	}
	if _, hit, _ := c.Get(ctx, "keep"); !hit {
		t.Error("entry without ttl should survive Purge")
	}
}

func TestSQLiteCacheClear(t *testing.T) {
	ctx := context.Background()
	c, err := NewSQLiteCache(ctx, filepath.Join(t.TempDir(), "cache.db"))
	if err != nil {
		t.Fatalf("NewSQLiteCache error: %v", err)
	}
	defer c.Close()

	_ = c.Set(ctx, "a", []byte("x"), 0)
	_ = c.Set(ctx, "b", []byte("y"), time.Hour)

	n, err := c.Clear(ctx)
	if err != nil {
		t.Fatalf("Clear error: %v", err)
	}
	if n != 2 {
		t.Errorf("Clear() = %d, want 2", n)
	}
	if _, hit, _ := c.Get(ctx, "a"); hit {
		t.Error("Get after Clear should miss")
	}
}

func TestRedisCache(t *testing.T) {
	url := os.Getenv("QUOTEFIT_TEST_REDIS_URL")
	if url == "" {
		t.Skip("QUOTEFIT_TEST_REDIS_URL not set")
	}
	opts, err := redis.ParseURL(url)
	if err != nil {
		t.Fatal(err)
	}
	c := NewRedisCacheFromClient(redis.NewClient(opts))
	defer c.Close()
	exerciseCache(t, c)
}

func TestMongoCache(t *testing.T) {
	uri := os.Getenv("QUOTEFIT_TEST_MONGO_URI")
	if uri == "" {
		t.Skip("QUOTEFIT_TEST_MONGO_URI not set")
	}
	c, err := NewMongoCache(context.Background(), uri, "quotefit_test")
	if err != nil {
		t.Fatalf("NewMongoCache error: %v", err)
	}
	defer c.Close()
	exerciseCache(t, c)
}

func TestOpen(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()

	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{"default is file", Config{Dir: dir}, false},
		{"file", Config{Backend: "file", Dir: dir}, false},
		{"file without dir", Config{Backend: "file"}, true},
		{"sqlite", Config{Backend: "sqlite", SQLitePath: ":memory:"}, false},
		{"sqlite without path", Config{Backend: "sqlite"}, true},
		{"redis without url", Config{Backend: "redis"}, true},
		{"mongo without uri", Config{Backend: "mongo"}, true},
		{"none", Config{Backend: "none"}, false},
		{"unknown", Config{Backend: "memcached"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := Open(ctx, tt.cfg)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Open() error = %v, wantErr %v", err, tt.wantErr)
			}
			if c != nil {
				c.Close()
			}
		})
	}
}

func TestHash(t *testing.T) {
	// Test determinism
	h1 := Hash([]byte("hello"))
	h2 := Hash([]byte("hello"))
	if h1 != h2 {
		t.Error("Hash should be deterministic")
	}

	// Test different inputs produce different hashes
	h3 := Hash([]byte("world"))
	if h1 == h3 {
		t.Error("Different inputs should produce different hashes")
	}

	// Test hash length (SHA-256 produces 64 hex chars)
	if len(h1) != 64 {
		t.Errorf("Hash length should be 64, got %d", len(h1))
	}
}

func TestHashKey(t *testing.T) {
	k := hashKey("layout", LayoutKeyOpts{Content: quote.Content{ItemCount: 12}, Engine: "v1"})
	if !strings.HasPrefix(k, "layout:") || len(k) != len("layout:")+64 {
		t.Errorf("hashKey() = %q, want layout:<64 hex chars>", k)
	}
	other := hashKey("layout", LayoutKeyOpts{Content: quote.Content{ItemCount: 13}, Engine: "v1"})
	if k == other {
		t.Error("hashKey() should differ when the item count differs")
	}
}

func TestDefaultKeyer(t *testing.T) {
	k := NewDefaultKeyer()

	// LayoutKey depends on every content field
	lk1 := k.LayoutKey(LayoutKeyOpts{Content: quote.Content{ItemCount: 3}, Engine: "1"})
	lk2 := k.LayoutKey(LayoutKeyOpts{Content: quote.Content{ItemCount: 3, HasDiscount: true}, Engine: "1"})
	lk3 := k.LayoutKey(LayoutKeyOpts{Content: quote.Content{ItemCount: 3}, Engine: "2"})
	if lk1 == lk2 || lk1 == lk3 {
		t.Error("Different LayoutKeyOpts should produce different keys")
	}
	if lk1 != k.LayoutKey(LayoutKeyOpts{Content: quote.Content{ItemCount: 3}, Engine: "1"}) {
		t.Error("LayoutKey should be deterministic")
	}

	// ArtifactKey
	ak1 := k.ArtifactKey("hash123", ArtifactKeyOpts{Format: "svg"})
	ak2 := k.ArtifactKey("hash123", ArtifactKeyOpts{Format: "png", Scale: 2})
	ak3 := k.ArtifactKey("hash456", ArtifactKeyOpts{Format: "svg"})
	if ak1 == ak2 || ak1 == ak3 {
		t.Error("Different ArtifactKeyOpts should produce different keys")
	}
}

func TestScopedKeyer(t *testing.T) {
	inner := NewDefaultKeyer()
	scoped := NewScopedKeyer(inner, "staging:")

	opts := LayoutKeyOpts{Content: quote.Content{ItemCount: 12}}
	if got, want := scoped.LayoutKey(opts), "staging:"+inner.LayoutKey(opts); got != want {
		t.Errorf("ScopedKeyer LayoutKey = %s, want %s", got, want)
	}

	artifactKey := scoped.ArtifactKey("h", ArtifactKeyOpts{Format: "pdf"})
	if len(artifactKey) < 15 || artifactKey[:8] != "staging:" {
		t.Errorf("ScopedKeyer ArtifactKey should be prefixed: %s", artifactKey)
	}
}

func TestScopedKeyerNilInner(t *testing.T) {
	// Should use DefaultKeyer when inner is nil
	scoped := NewScopedKeyer(nil, "prefix:")
	opts := LayoutKeyOpts{}
	if got, want := scoped.LayoutKey(opts), "prefix:"+NewDefaultKeyer().LayoutKey(opts); got != want {
		t.Errorf("Unexpected key with nil inner: %s", got)
	}
}

func TestRetryableError(t *testing.T) {
	// Retryable(nil) returns nil
	if Retryable(nil) != nil {
		t.Error("Retryable(nil) should return nil")
	}

	// Non-nil error is wrapped
	err := Retryable(ErrUnavailable)
	if err == nil {
		t.Fatal("Retryable should return wrapped error")
	}
	if !IsRetryable(err) {
		t.Error("IsRetryable should return true for wrapped error")
	}

	// Error message is preserved
	if err.Error() != ErrUnavailable.Error() {
		t.Errorf("Error message should be preserved: %s", err.Error())
	}

	// Non-wrapped errors are not retryable
	if IsRetryable(ErrUnavailable) {
		t.Error("IsRetryable should return false for unwrapped error")
	}
}

func TestRetryWithBackoff(t *testing.T) {
	ctx := context.Background()
	saved := retryDelay
	retryDelay = time.Millisecond
	defer func() { retryDelay = saved }()

	// Success on first try
	calls := 0
	err := RetryWithBackoff(ctx, func() error {
		calls++
		return nil
	})
	if err != nil {
		t.Errorf("Should succeed: %v", err)
	}
	if calls != 1 {
		t.Errorf("Should call once: %d", calls)
	}

	// Non-retryable error stops immediately
	calls = 0
	err = RetryWithBackoff(ctx, func() error {
		calls++
		return ErrUnavailable
	})
	if err != ErrUnavailable {
		t.Errorf("Should return non-retryable error: %v", err)
	}
	if calls != 1 {
		t.Errorf("Should not retry non-retryable error: %d", calls)
	}

	// Retryable error triggers retries
	calls = 0
	err = RetryWithBackoff(ctx, func() error {
		calls++
		if calls < 2 {
			return Retryable(ErrUnavailable)
		}
		return nil
	})
	if err != nil {
		t.Errorf("Should succeed after retry: %v", err)
	}
	if calls != 2 {
		t.Errorf("Should retry once: %d", calls)
	}
}

func TestRetryWithBackoffContextCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel() // Cancel immediately

	err := RetryWithBackoff(ctx, func() error {
		return Retryable(ErrUnavailable)
	})
	if err != context.Canceled {
		t.Errorf("Should return context error: %v", err)
	}
}
