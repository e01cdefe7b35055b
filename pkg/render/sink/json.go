package sink

import (
	"encoding/json"

	"github.com/matzehuels/quotefit/pkg/layout"
	"github.com/matzehuels/quotefit/pkg/quote"
)

// JSONOption configures JSON rendering via [RenderJSON].
type JSONOption func(*jsonRenderer)

type jsonRenderer struct {
	blocks bool
	runID  string
}

// WithJSONBlocks includes the placed block geometry.
func WithJSONBlocks() JSONOption { return func(r *jsonRenderer) { r.blocks = true } }

// WithJSONRunID records the run that produced the document.
func WithJSONRunID(id string) JSONOption { return func(r *jsonRenderer) { r.runID = id } }

type jsonOutput struct {
	RunID            string        `json:"run_id,omitempty"`
	Content          quote.Content `json:"content"`
	Phase            string        `json:"phase"`
	Expanded         bool          `json:"expanded,omitempty"`
	CompressionRatio float64       `json:"compression_ratio"`
	DefaultHeight    float64       `json:"default_height"`
	TotalHeight      float64       `json:"total_height"`
	AvailableHeight  float64       `json:"available_height"`
	Overflow         float64       `json:"overflow"`
	Fits             bool          `json:"fits"`
	Steps            []jsonStep    `json:"steps"`
	Elements         []jsonElement `json:"elements"`
	Config           layout.Config `json:"config"`
	Blocks           []jsonBlock   `json:"blocks,omitempty"`
}

type jsonStep struct {
	Phase       string  `json:"phase"`
	TotalHeight float64 `json:"total_height"`
}

type jsonElement struct {
	Name    string  `json:"name"`
	Axis    string  `json:"axis"`
	Default float64 `json:"default"`
	Min     float64 `json:"min"`
	Current float64 `json:"current"`
	Weight  float64 `json:"weight"`
}

type jsonBlock struct {
	ID     string  `json:"id"`
	Kind   string  `json:"kind"`
	Label  string  `json:"label,omitempty"`
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// RenderJSON exports the solve as an indented JSON document.
func RenderJSON(res layout.Result, opts ...JSONOption) ([]byte, error) {
	var r jsonRenderer
	for _, opt := range opts {
		opt(&r)
	}

	out := jsonOutput{
		RunID:            r.runID,
		Content:          res.Content,
		Phase:            res.Phase.String(),
		Expanded:         res.Expanded,
		CompressionRatio: res.CompressionRatio,
		DefaultHeight:    res.DefaultHeight,
		TotalHeight:      res.TotalHeight,
		AvailableHeight:  layout.AvailableHeight,
		Overflow:         res.Overflow,
		Fits:             res.Fits,
		Config:           res.Config,
	}
	for _, s := range res.Steps {
		out.Steps = append(out.Steps, jsonStep{Phase: s.Phase.String(), TotalHeight: s.TotalHeight})
	}
	for _, id := range layout.Elements() {
		e := res.Budget.Get(id)
		out.Elements = append(out.Elements, jsonElement{
			Name:    id.String(),
			Axis:    id.Axis().String(),
			Default: e.Default,
			Min:     e.Min,
			Current: e.Current,
			Weight:  res.Budget.Weight(id),
		})
	}
	if r.blocks {
		for _, b := range res.Page().Blocks {
			out.Blocks = append(out.Blocks, jsonBlock{
				ID: b.ID, Kind: string(b.Kind), Label: b.Label,
				X: b.Left, Y: b.Top, Width: b.Width(), Height: b.Height(),
			})
		}
	}

	return json.MarshalIndent(out, "", "  ")
}
