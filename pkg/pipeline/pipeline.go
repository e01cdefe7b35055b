// Package pipeline provides the solve → render pipeline for quotefit.
//
// This package implements the complete pipeline that the CLI and the HTTP
// API share. By centralizing this logic, both entry points apply the same
// defaults, validation and caching.
//
// # Architecture
//
// The pipeline consists of two stages:
//
//  1. Solve: Fit the quote content onto the page and derive the renderer
//     configuration ([layout.Solve])
//  2. Render: Generate previews in various formats (SVG, PNG, PDF, JSON)
//
// Each stage can be run independently or as part of the complete pipeline.
//
// # Usage
//
// Create a Runner and execute the pipeline:
//
//	runner := pipeline.NewRunner(cache, nil, logger)
//	opts := pipeline.Options{
//	    Content: quote.Content{ItemCount: 40, HasDiscount: true},
//	    Formats: []string{"svg", "json"},
//	}
//	result, err := runner.Execute(ctx, opts)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	svg := result.Artifacts["svg"]
//
// Run individual stages:
//
//	// Solve only
//	res, err := runner.Solve(ctx, opts)
//
//	// Render an existing solve
//	artifacts, err := runner.Render(ctx, res, opts)
package pipeline

import (
	"io"
	"math"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/quotefit/pkg/cache"
	"github.com/matzehuels/quotefit/pkg/errors"
	"github.com/matzehuels/quotefit/pkg/layout"
	"github.com/matzehuels/quotefit/pkg/quote"
	"github.com/matzehuels/quotefit/pkg/render/sink"
)

// =============================================================================
// Default Values - Single Source of Truth for CLI and API
// =============================================================================

// DefaultScale is the default PNG resolution in pixels per millimeter.
const DefaultScale = sink.DefaultScale

// Format constants for output formats.
const (
	FormatSVG  = "svg"
	FormatPNG  = "png"
	FormatPDF  = "pdf"
	FormatJSON = "json"
)

// ValidFormats is the set of supported output formats.
var ValidFormats = map[string]bool{
	FormatSVG:  true,
	FormatPNG:  true,
	FormatPDF:  true,
	FormatJSON: true,
}

// =============================================================================
// Options - Pipeline Configuration
// =============================================================================

// Options contains all configuration for the pipeline.
// This struct supports JSON serialization for API requests.
type Options struct {
	// Solve options
	Content quote.Content `json:"content"`
	Refresh bool          `json:"refresh,omitempty"`

	// Render options
	Formats []string `json:"formats,omitempty"`
	Scale   float64  `json:"scale,omitempty"`
	Labels  bool     `json:"labels,omitempty"`
	Guides  bool     `json:"guides,omitempty"`
	Caption bool     `json:"caption,omitempty"`

	// Runtime options (not serialized)
	Logger *log.Logger `json:"-"`

	// validated tracks whether ValidateAndSetDefaults has been called.
	validated bool
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// RunID identifies this run in logs and API responses.
	RunID string

	// Layout is the solved layout.
	Layout layout.Result

	// LayoutHash is the content hash of the serialized layout.
	LayoutHash string

	// Artifacts contains rendered outputs keyed by format.
	Artifacts map[string][]byte

	// Stats contains timing and size information.
	Stats Stats

	// CacheInfo tracks which stages hit the cache.
	CacheInfo CacheInfo
}

// Stats contains pipeline execution statistics.
type Stats struct {
	ItemCount  int
	TermsCount int
	Phase      string
	SolveTime  time.Duration
	RenderTime time.Duration
}

// CacheInfo tracks cache hits for each pipeline stage.
type CacheInfo struct {
	LayoutHit bool // Whether the solved layout came from cache
	RenderHit bool // Whether all artifacts came from cache
}

// =============================================================================
// Validation Functions
// =============================================================================

// ValidateFormat checks that a format is valid.
func ValidateFormat(format string) error {
	if !ValidFormats[format] {
		return errors.New(errors.ErrCodeInvalidFormat, "invalid format: %q (must be one of: svg, png, pdf, json)", format)
	}
	return nil
}

// ValidateFormats checks that all formats are valid.
func ValidateFormats(formats []string) error {
	for _, f := range formats {
		if err := ValidateFormat(f); err != nil {
			return err
		}
	}
	return nil
}

// ValidateScale checks that a PNG scale is usable.
func ValidateScale(scale float64) error {
	if scale <= 0 || math.IsNaN(scale) || math.IsInf(scale, 0) {
		return errors.New(errors.ErrCodeInvalidInput, "scale must be a positive number, got %v", scale)
	}
	return nil
}

// =============================================================================
// Options Methods
// =============================================================================

// ValidateAndSetDefaults checks required fields and applies defaults for the full pipeline.
// This method is idempotent - calling it multiple times has the same effect as calling it once.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	if err := o.ValidateForSolve(); err != nil {
		return err
	}
	if err := o.ValidateForRender(); err != nil {
		return err
	}
	o.validated = true
	return nil
}

// ValidateForSolve checks the quote content.
func (o *Options) ValidateForSolve() error {
	if err := o.Content.Validate(); err != nil {
		return err
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	return nil
}

// SetRenderDefaults sets default values for rendering.
func (o *Options) SetRenderDefaults() {
	if len(o.Formats) == 0 {
		o.Formats = []string{FormatSVG}
	}
	if o.Scale == 0 {
		o.Scale = DefaultScale
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
}

// ValidateForRender validates and sets defaults for rendering.
// Repeated formats are dropped so each artifact is rendered once.
func (o *Options) ValidateForRender() error {
	o.SetRenderDefaults()
	if err := ValidateFormats(o.Formats); err != nil {
		return err
	}
	o.Formats = uniqueFormats(o.Formats)
	return ValidateScale(o.Scale)
}

// uniqueFormats returns formats without repeats, keeping first-seen order.
func uniqueFormats(formats []string) []string {
	seen := make(map[string]bool, len(formats))
	out := make([]string, 0, len(formats))
	for _, f := range formats {
		if !seen[f] {
			seen[f] = true
			out = append(out, f)
		}
	}
	return out
}

// LayoutKeyOpts returns cache key options for the solve stage.
func (o *Options) LayoutKeyOpts() cache.LayoutKeyOpts {
	return cache.LayoutKeyOpts{
		Content: o.Content,
		Engine:  layout.EngineVersion,
	}
}

// ArtifactKeyOpts returns cache key options for artifact rendering.
// Scale only affects PNG output and is left out of other keys.
func (o *Options) ArtifactKeyOpts(format string) cache.ArtifactKeyOpts {
	k := cache.ArtifactKeyOpts{Format: format}
	if format == FormatJSON {
		return k
	}
	k.Labels = o.Labels
	k.Guides = o.Guides
	k.Caption = o.Caption
	if format == FormatPNG {
		k.Scale = o.Scale
	}
	return k
}

// SVGOptions translates the render options to sink options.
func (o *Options) SVGOptions() []sink.SVGOption {
	var opts []sink.SVGOption
	if o.Labels {
		opts = append(opts, sink.WithLabels())
	}
	if o.Guides {
		opts = append(opts, sink.WithGuides())
	}
	if o.Caption {
		opts = append(opts, sink.WithCaption())
	}
	return opts
}
