package cli

import (
	"context"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/quotefit/pkg/observability"
)

// debugHooks logs pipeline and cache events at debug level, so --verbose
// shows which stages hit the cache and how long each took.
type debugHooks struct {
	logger *log.Logger
}

func (h debugHooks) OnSolveStart(_ context.Context, items, terms int) {
	h.logger.Debug("solve started", "items", items, "terms", terms)
}

func (h debugHooks) OnSolveComplete(_ context.Context, phase string, fits bool, d time.Duration) {
	h.logger.Debug("solve finished", "phase", phase, "fits", fits, "duration", d)
}

func (h debugHooks) OnRenderStart(_ context.Context, formats []string) {
	h.logger.Debug("render started", "formats", formats)
}

func (h debugHooks) OnRenderComplete(_ context.Context, formats []string, d time.Duration, err error) {
	if err != nil {
		h.logger.Debug("render failed", "formats", formats, "duration", d, "error", err)
		return
	}
	h.logger.Debug("render finished", "formats", formats, "duration", d)
}

func (h debugHooks) OnCacheHit(_ context.Context, keyType string) {
	h.logger.Debug("cache hit", "type", keyType)
}

func (h debugHooks) OnCacheMiss(_ context.Context, keyType string) {
	h.logger.Debug("cache miss", "type", keyType)
}

func (h debugHooks) OnCacheSet(_ context.Context, keyType string, size int) {
	h.logger.Debug("cache set", "type", keyType, "bytes", size)
}

// registerHooks routes observability events to the CLI logger.
func (c *CLI) registerHooks() {
	h := debugHooks{logger: c.Logger}
	observability.SetPipelineHooks(h)
	observability.SetCacheHooks(h)
}
