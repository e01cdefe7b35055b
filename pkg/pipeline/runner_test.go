package pipeline

import (
	"bytes"
	"context"
	"slices"
	"sync"
	"testing"
	"time"

	"github.com/matzehuels/quotefit/pkg/cache"
	"github.com/matzehuels/quotefit/pkg/layout"
	"github.com/matzehuels/quotefit/pkg/observability"
	"github.com/matzehuels/quotefit/pkg/quote"
)

func newTestRunner(t *testing.T) *Runner {
	t.Helper()
	c, err := cache.NewFileCache(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileCache() error: %v", err)
	}
	r := NewRunner(c, nil, nil)
	t.Cleanup(func() { r.Close() })
	return r
}

func TestNewRunnerDefaults(t *testing.T) {
	r := NewRunner(nil, nil, nil)
	if r.Cache == nil || r.Keyer == nil || r.Logger == nil {
		t.Errorf("NewRunner(nil, nil, nil) = %+v, want defaults", r)
	}
}

func TestExecute(t *testing.T) {
	r := newTestRunner(t)
	ctx := context.Background()
	opts := Options{
		Content: quote.Content{ItemCount: 40, HasDiscount: true},
		Formats: []string{FormatSVG, FormatPNG, FormatJSON},
	}

	first, err := r.Execute(ctx, opts)
	if err != nil {
		t.Fatalf("Execute() error: %v", err)
	}
	if first.RunID == "" {
		t.Error("RunID is empty")
	}
	if first.Stats.Phase != "proportional" {
		t.Errorf("Stats.Phase = %q, want %q", first.Stats.Phase, "proportional")
	}
	if first.CacheInfo.LayoutHit || first.CacheInfo.RenderHit {
		t.Errorf("first run CacheInfo = %+v, want misses", first.CacheInfo)
	}
	for _, f := range opts.Formats {
		if len(first.Artifacts[f]) == 0 {
			t.Errorf("artifact %s is empty", f)
		}
	}
	if first.Layout.Config != layout.Compute(opts.Content) {
		t.Error("Layout.Config differs from layout.Compute")
	}

	second, err := r.Execute(ctx, opts)
	if err != nil {
		t.Fatalf("Execute() second run error: %v", err)
	}
	if !second.CacheInfo.LayoutHit || !second.CacheInfo.RenderHit {
		t.Errorf("second run CacheInfo = %+v, want hits", second.CacheInfo)
	}
	if second.RunID == first.RunID {
		t.Error("RunID reused across runs")
	}
	if second.LayoutHash != first.LayoutHash {
		t.Error("LayoutHash changed between identical runs")
	}
	if !bytes.Equal(second.Artifacts[FormatSVG], first.Artifacts[FormatSVG]) {
		t.Error("cached SVG differs from rendered SVG")
	}
	if second.Layout.Config != first.Layout.Config || second.Layout.Phase != first.Layout.Phase {
		t.Error("cached layout differs from solved layout")
	}
}

func TestExecuteRefresh(t *testing.T) {
	r := newTestRunner(t)
	ctx := context.Background()
	opts := Options{Content: quote.Content{ItemCount: 5}}

	if _, err := r.Execute(ctx, opts); err != nil {
		t.Fatalf("Execute() error: %v", err)
	}
	opts.Refresh = true
	res, err := r.Execute(ctx, opts)
	if err != nil {
		t.Fatalf("Execute() refresh error: %v", err)
	}
	if res.CacheInfo.LayoutHit || res.CacheInfo.RenderHit {
		t.Errorf("refresh CacheInfo = %+v, want misses", res.CacheInfo)
	}
}

func TestExecuteInvalidOptions(t *testing.T) {
	r := NewRunner(nil, nil, nil)
	ctx := context.Background()

	if _, err := r.Execute(ctx, Options{Content: quote.Content{ItemCount: -2}}); err == nil {
		t.Error("negative item count should fail")
	}
	if _, err := r.Execute(ctx, Options{Formats: []string{"bmp"}}); err == nil {
		t.Error("unknown format should fail")
	}
}

func TestRenderPartialCache(t *testing.T) {
	r := newTestRunner(t)
	ctx := context.Background()
	res := layout.Solve(quote.Content{ItemCount: 8})

	if _, err := r.Render(ctx, res, Options{Formats: []string{FormatSVG}}); err != nil {
		t.Fatalf("Render() error: %v", err)
	}

	artifacts, hit, err := r.RenderWithCacheInfo(ctx, res, Options{Formats: []string{FormatSVG, FormatJSON}})
	if err != nil {
		t.Fatalf("RenderWithCacheInfo() error: %v", err)
	}
	if hit {
		t.Error("hit = true with json missing from cache")
	}
	if len(artifacts) != 2 {
		t.Errorf("artifacts = %d, want 2", len(artifacts))
	}
}

func TestRenderRepeatedFormatRendersOnce(t *testing.T) {
	ph := &recordingPipelineHooks{}
	observability.SetPipelineHooks(ph)
	t.Cleanup(observability.Reset)

	r := newTestRunner(t)
	res := layout.Solve(quote.Content{ItemCount: 8})
	opts := Options{Formats: []string{FormatSVG, FormatJSON, FormatSVG}}
	artifacts, err := r.Render(context.Background(), res, opts)
	if err != nil {
		t.Fatalf("Render() error: %v", err)
	}
	if len(artifacts) != 2 {
		t.Errorf("artifacts = %d, want 2", len(artifacts))
	}
	if len(ph.rendered) != 1 || !slices.Equal(ph.rendered[0], []string{FormatSVG, FormatJSON}) {
		t.Errorf("render batches = %v, want [[svg json]]", ph.rendered)
	}
}

type countingCacheHooks struct {
	mu                sync.Mutex
	hits, misses, set int
}

func (h *countingCacheHooks) OnCacheHit(context.Context, string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.hits++
}

func (h *countingCacheHooks) OnCacheMiss(context.Context, string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.misses++
}

func (h *countingCacheHooks) OnCacheSet(context.Context, string, int) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.set++
}

type recordingPipelineHooks struct {
	observability.NoopPipelineHooks
	phases   []string
	rendered [][]string
}

func (h *recordingPipelineHooks) OnRenderStart(_ context.Context, formats []string) {
	h.rendered = append(h.rendered, formats)
}

func (h *recordingPipelineHooks) OnSolveComplete(_ context.Context, phase string, _ bool, _ time.Duration) {
	h.phases = append(h.phases, phase)
}

func TestRunnerHooks(t *testing.T) {
	ch := &countingCacheHooks{}
	ph := &recordingPipelineHooks{}
	observability.SetCacheHooks(ch)
	observability.SetPipelineHooks(ph)
	t.Cleanup(observability.Reset)

	r := newTestRunner(t)
	opts := Options{Content: quote.Content{ItemCount: 90}}
	for range 2 {
		if _, err := r.Execute(context.Background(), opts); err != nil {
			t.Fatalf("Execute() error: %v", err)
		}
	}

	// layout + svg miss and set on the first run, hit on the second.
	if ch.misses != 2 || ch.set != 2 || ch.hits != 2 {
		t.Errorf("cache hooks = %d hits, %d misses, %d sets; want 2, 2, 2", ch.hits, ch.misses, ch.set)
	}
	if len(ph.phases) != 2 || ph.phases[0] != "emergency" {
		t.Errorf("solve phases = %v, want [emergency emergency]", ph.phases)
	}
}
