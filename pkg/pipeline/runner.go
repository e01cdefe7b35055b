package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/matzehuels/quotefit/pkg/cache"
	"github.com/matzehuels/quotefit/pkg/layout"
	"github.com/matzehuels/quotefit/pkg/observability"
)

// Cache key types reported to observability hooks.
const (
	keyTypeLayout   = "layout"
	keyTypeArtifact = "artifact"
)

// Runner encapsulates pipeline execution with caching.
// Both CLI and API use this to avoid duplicating caching logic.
//
// The Runner is stateless except for the cache and logger - it doesn't
// store pipeline results. Multiple goroutines can safely use the same
// Runner with different options.
type Runner struct {
	Cache  cache.Cache
	Keyer  cache.Keyer
	Logger *log.Logger
}

// NewRunner creates a runner with the given cache and keyer.
// If keyer is nil, a DefaultKeyer is used.
// If cache is nil, a NullCache is used (caching disabled).
func NewRunner(c cache.Cache, keyer cache.Keyer, logger *log.Logger) *Runner {
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{
		Cache:  c,
		Keyer:  keyer,
		Logger: logger,
	}
}

// Execute runs the complete solve → render pipeline with caching.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	r.applyLogger(&opts)
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}

	result := &Result{
		RunID:     uuid.NewString(),
		Artifacts: make(map[string][]byte),
	}
	logger := opts.Logger.With("run", result.RunID)

	// Stage 1: Solve
	solveStart := time.Now()
	res, layoutHit, err := r.SolveWithCacheInfo(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("solve: %w", err)
	}
	result.Layout = res
	result.Stats.SolveTime = time.Since(solveStart)
	result.Stats.ItemCount = res.Budget.ItemCount
	result.Stats.TermsCount = res.Budget.TermsCount
	result.Stats.Phase = res.Phase.String()
	result.CacheInfo.LayoutHit = layoutHit

	if data, err := MarshalLayout(res); err == nil {
		result.LayoutHash = cache.Hash(data)
	}

	logger.Info("solved layout",
		"items", res.Budget.ItemCount,
		"terms", res.Budget.TermsCount,
		"phase", res.Phase,
		"height", fmt.Sprintf("%.1f", res.TotalHeight),
		"duration", result.Stats.SolveTime)

	// Stage 2: Render
	renderStart := time.Now()
	artifacts, renderHit, err := r.RenderWithCacheInfo(ctx, res, opts)
	if err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	result.Artifacts = artifacts
	result.Stats.RenderTime = time.Since(renderStart)
	result.CacheInfo.RenderHit = renderHit

	logger.Info("rendered outputs",
		"formats", opts.Formats,
		"duration", result.Stats.RenderTime)

	return result, nil
}

// SolveWithCacheInfo solves the layout with caching and returns cache hit info.
func (r *Runner) SolveWithCacheInfo(ctx context.Context, opts Options) (layout.Result, bool, error) {
	r.applyLogger(&opts)
	if err := opts.ValidateForSolve(); err != nil {
		return layout.Result{}, false, err
	}

	hooks := observability.Pipeline()
	hooks.OnSolveStart(ctx, opts.Content.ItemCount, opts.Content.TermsCount())
	start := time.Now()

	cacheKey := r.Keyer.LayoutKey(opts.LayoutKeyOpts())

	// Try cache first (unless refresh requested)
	if !opts.Refresh {
		if data, hit, err := r.Cache.Get(ctx, cacheKey); err == nil && hit {
			if res, err := UnmarshalLayout(data); err == nil {
				observability.Cache().OnCacheHit(ctx, keyTypeLayout)
				hooks.OnSolveComplete(ctx, res.Phase.String(), res.Fits, time.Since(start))
				return res, true, nil // Cache hit
			}
			// If deserialization fails, fall through to recompute
		}
		observability.Cache().OnCacheMiss(ctx, keyTypeLayout)
	}

	res := layout.Solve(opts.Content)
	hooks.OnSolveComplete(ctx, res.Phase.String(), res.Fits, time.Since(start))

	if !res.Fits {
		opts.Logger.Warn("content overflows the page",
			"items", res.Budget.ItemCount,
			"overflow", fmt.Sprintf("%.1fmm", res.Overflow))
	}

	if data, err := MarshalLayout(res); err == nil {
		if err := r.Cache.Set(ctx, cacheKey, data, cache.TTLLayout); err == nil {
			observability.Cache().OnCacheSet(ctx, keyTypeLayout, len(data))
		} else {
			opts.Logger.Debug("cache write failed", "key", keyTypeLayout, "error", err)
		}
	}

	return res, false, nil // Cache miss
}

// Solve is a convenience wrapper that calls SolveWithCacheInfo and discards the cache hit info.
func (r *Runner) Solve(ctx context.Context, opts Options) (layout.Result, error) {
	res, _, err := r.SolveWithCacheInfo(ctx, opts)
	return res, err
}

// RenderWithCacheInfo generates artifacts with caching and returns cache hit info.
// Only formats missing from the cache are rendered.
func (r *Runner) RenderWithCacheInfo(ctx context.Context, res layout.Result, opts Options) (map[string][]byte, bool, error) {
	r.applyLogger(&opts)
	if err := opts.ValidateForRender(); err != nil {
		return nil, false, err
	}

	layoutData, err := MarshalLayout(res)
	if err != nil {
		return nil, false, fmt.Errorf("serialize layout for cache key: %w", err)
	}
	layoutHash := cache.Hash(layoutData)

	artifacts := make(map[string][]byte, len(opts.Formats))
	var missing []string
	for _, format := range opts.Formats {
		cacheKey := r.Keyer.ArtifactKey(layoutHash, opts.ArtifactKeyOpts(format))
		if !opts.Refresh {
			if data, hit, err := r.Cache.Get(ctx, cacheKey); err == nil && hit {
				observability.Cache().OnCacheHit(ctx, keyTypeArtifact)
				artifacts[format] = data
				continue
			}
			observability.Cache().OnCacheMiss(ctx, keyTypeArtifact)
		}
		missing = append(missing, format)
	}

	if len(missing) == 0 {
		return artifacts, true, nil // All artifacts from cache
	}

	hooks := observability.Pipeline()
	hooks.OnRenderStart(ctx, missing)
	start := time.Now()

	renderOpts := opts
	renderOpts.Formats = missing
	rendered, err := Render(ctx, res, renderOpts)
	hooks.OnRenderComplete(ctx, missing, time.Since(start), err)
	if err != nil {
		return nil, false, err
	}

	for format, data := range rendered {
		artifacts[format] = data
		cacheKey := r.Keyer.ArtifactKey(layoutHash, opts.ArtifactKeyOpts(format))
		if err := r.Cache.Set(ctx, cacheKey, data, cache.TTLArtifact); err == nil {
			observability.Cache().OnCacheSet(ctx, keyTypeArtifact, len(data))
		}
	}

	return artifacts, false, nil // Cache miss
}

// Render is a convenience wrapper that calls RenderWithCacheInfo and discards the cache hit info.
func (r *Runner) Render(ctx context.Context, res layout.Result, opts Options) (map[string][]byte, error) {
	artifacts, _, err := r.RenderWithCacheInfo(ctx, res, opts)
	return artifacts, err
}

// Close releases resources held by the runner (primarily the cache).
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}

// applyLogger sets the runner's logger on options if not already set.
func (r *Runner) applyLogger(opts *Options) {
	if opts.Logger == nil {
		opts.Logger = r.Logger
	}
}
