package sink

import (
	"bytes"
	"math"

	"github.com/fogleman/gg"

	"github.com/matzehuels/quotefit/pkg/errors"
	"github.com/matzehuels/quotefit/pkg/layout"
)

// DefaultScale is the default PNG resolution in pixels per millimeter.
const DefaultScale = 3.0

// glyphHeight is the pixel height of the built-in bitmap face.
const glyphHeight = 13.0

// PNGOption configures PNG rendering.
type PNGOption func(*pngRenderer)

type pngRenderer struct {
	svgOpts []SVGOption
	scale   float64
}

// WithScale sets the resolution in pixels per millimeter.
func WithScale(s float64) PNGOption {
	return func(r *pngRenderer) { r.scale = s }
}

// WithPNGSVGOptions applies SVG options (labels, guides) to the raster output.
func WithPNGSVGOptions(opts ...SVGOption) PNGOption {
	return func(r *pngRenderer) { r.svgOpts = opts }
}

// RenderPNG draws the solved page as a raster wireframe.
func RenderPNG(res layout.Result, opts ...PNGOption) ([]byte, error) {
	r := pngRenderer{scale: DefaultScale}
	for _, opt := range opts {
		opt(&r)
	}
	if r.scale <= 0 || math.IsNaN(r.scale) || math.IsInf(r.scale, 0) {
		return nil, errors.New(errors.ErrCodeInvalidInput, "png scale must be positive, got %v", r.scale)
	}
	var so svgRenderer
	for _, opt := range r.svgOpts {
		opt(&so)
	}

	page := res.Page()
	sheet := max(page.Height, page.ContentBottom)
	height := sheet
	if so.caption {
		height += captionHeight
	}
	px := func(mm float64) float64 { return mm * r.scale }

	dc := gg.NewContext(int(math.Ceil(px(page.Width))), int(math.Ceil(px(height))))
	dc.SetRGB(1, 1, 1)
	dc.Clear()

	dc.SetHexColor(outlineColor)
	dc.SetLineWidth(1)
	dc.DrawRectangle(0, 0, px(page.Width), px(page.Height))
	dc.Stroke()

	if page.ContentBottom > page.Limit {
		dc.SetRGBA(0.906, 0.298, 0.235, 0.15)
		dc.DrawRectangle(0, px(page.Limit), px(page.Width), px(page.ContentBottom-page.Limit))
		dc.Fill()
	}

	for _, b := range page.Blocks {
		dc.SetHexColor(fillFor(b.Kind))
		dc.DrawRectangle(px(b.Left), px(b.Top), px(b.Width()), px(b.Height()))
		dc.FillPreserve()
		dc.SetHexColor(outlineColor)
		dc.SetLineWidth(0.5)
		dc.Stroke()
	}

	if so.labels {
		dc.SetHexColor(textColor)
		for _, b := range page.Blocks {
			if b.Label == "" || px(b.Height()) < glyphHeight {
				continue
			}
			dc.DrawStringAnchored(b.Label, px(b.Left+1.5), px(b.CenterY()), 0, 0.5)
		}
	}

	if so.guides {
		dc.SetHexColor(guideColor)
		dc.SetLineWidth(1)
		dc.SetDash(3, 3)
		for _, x := range []float64{res.Config.MarginSide, page.Width - res.Config.MarginSide} {
			dc.DrawLine(px(x), 0, px(x), px(sheet))
			dc.Stroke()
		}
		dc.SetHexColor(limitColor)
		dc.SetLineWidth(1.5)
		dc.SetDash(6, 3)
		dc.DrawLine(0, px(page.Limit), px(page.Width), px(page.Limit))
		dc.Stroke()
		dc.SetDash()
	}

	if so.caption {
		dc.SetHexColor(textColor)
		dc.DrawStringAnchored(caption(res), px(res.Config.MarginSide), px(sheet+captionHeight/2), 0, 0.5)
	}

	var buf bytes.Buffer
	if err := dc.EncodePNG(&buf); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "encode png")
	}
	return buf.Bytes(), nil
}
