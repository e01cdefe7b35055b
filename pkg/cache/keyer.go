package cache

import (
	"github.com/matzehuels/quotefit/pkg/quote"
)

// Keyer generates cache keys for pipeline stages.
type Keyer interface {
	// LayoutKey returns the key for a solved layout document.
	LayoutKey(opts LayoutKeyOpts) string

	// ArtifactKey returns the key for a rendered artifact of a layout.
	ArtifactKey(layoutHash string, opts ArtifactKeyOpts) string
}

// LayoutKeyOpts holds every input that determines a solved layout.
type LayoutKeyOpts struct {
	Content quote.Content `json:"content"`
	// Engine identifies the solver revision so stale layouts are not reused.
	Engine string `json:"engine"`
}

// ArtifactKeyOpts holds the render options that affect an artifact.
type ArtifactKeyOpts struct {
	Format  string  `json:"format"`
	Scale   float64 `json:"scale,omitempty"`
	Labels  bool    `json:"labels,omitempty"`
	Guides  bool    `json:"guides,omitempty"`
	Caption bool    `json:"caption,omitempty"`
}

// DefaultKeyer hashes key inputs with SHA-256.
type DefaultKeyer struct{}

// NewDefaultKeyer returns a keyer without a namespace prefix.
func NewDefaultKeyer() Keyer {
	return DefaultKeyer{}
}

// LayoutKey generates a key for layout caching.
func (DefaultKeyer) LayoutKey(opts LayoutKeyOpts) string {
	return hashKey("layout", opts)
}

// ArtifactKey generates a key for artifact caching.
func (DefaultKeyer) ArtifactKey(layoutHash string, opts ArtifactKeyOpts) string {
	return hashKey("artifact", layoutHash, opts)
}

var _ Keyer = DefaultKeyer{}
