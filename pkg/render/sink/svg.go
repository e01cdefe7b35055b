package sink

import (
	"bytes"
	"fmt"
	"html"

	"github.com/matzehuels/quotefit/pkg/layout"
)

// captionHeight is the strip added below the sheet for [WithCaption].
const captionHeight = 8.0

// SVGOption configures SVG rendering.
type SVGOption func(*svgRenderer)

type svgRenderer struct {
	labels  bool
	guides  bool
	caption bool
}

// WithLabels prints element names at their derived font sizes.
func WithLabels() SVGOption { return func(r *svgRenderer) { r.labels = true } }

// WithGuides draws the side margins and the available-height limit.
func WithGuides() SVGOption { return func(r *svgRenderer) { r.guides = true } }

// WithCaption adds a summary line below the sheet.
func WithCaption() SVGOption { return func(r *svgRenderer) { r.caption = true } }

// RenderSVG draws the solved page as an A4 wireframe. Content that overflows
// the sheet extends the drawing downward so the overflow stays visible.
func RenderSVG(res layout.Result, opts ...SVGOption) []byte {
	var r svgRenderer
	for _, opt := range opts {
		opt(&r)
	}

	page := res.Page()
	sheet := max(page.Height, page.ContentBottom)
	height := sheet
	if r.caption {
		height += captionHeight
	}

	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.1f %.1f" width="%.0fmm" height="%.0fmm">`+"\n",
		page.Width, height, page.Width, height)
	fmt.Fprintf(&buf, `  <rect class="sheet" x="0" y="0" width="%.2f" height="%.2f" fill="%s" stroke="%s" stroke-width="0.3"/>`+"\n",
		page.Width, page.Height, paperColor, outlineColor)

	if page.ContentBottom > page.Limit {
		fmt.Fprintf(&buf, `  <rect class="overflow" x="0" y="%.2f" width="%.2f" height="%.2f" fill="%s" fill-opacity="0.15"/>`+"\n",
			page.Limit, page.Width, page.ContentBottom-page.Limit, overflowColor)
	}

	for _, b := range page.Blocks {
		renderBlock(&buf, b)
	}
	if r.labels {
		for _, b := range page.Blocks {
			renderLabel(&buf, b, labelSize(res.Config, b.Kind))
		}
	}
	if r.guides {
		renderGuides(&buf, page, sheet, res.Config.MarginSide)
	}
	if r.caption {
		fmt.Fprintf(&buf, `  <text class="caption" x="%.2f" y="%.2f" font-family="Helvetica, Arial, sans-serif" font-size="3.5" fill="%s">%s</text>`+"\n",
			res.Config.MarginSide, sheet+captionHeight*0.65, textColor, html.EscapeString(caption(res)))
	}

	buf.WriteString("</svg>\n")
	return buf.Bytes()
}

func renderBlock(buf *bytes.Buffer, b layout.Block) {
	fmt.Fprintf(buf, `  <rect id="block-%s" class="block block-%s" x="%.2f" y="%.2f" width="%.2f" height="%.2f" fill="%s" stroke="%s" stroke-width="0.15"/>`+"\n",
		b.ID, b.Kind, b.Left, b.Top, b.Width(), b.Height(), fillFor(b.Kind), outlineColor)
}

func renderLabel(buf *bytes.Buffer, b layout.Block, size float64) {
	if b.Label == "" || size <= 0 {
		return
	}
	// Shrink to the block so squeezed rows stay legible.
	size = min(size, b.Height()*0.8)
	fmt.Fprintf(buf, `  <text class="block-text" data-block="%s" x="%.2f" y="%.2f" font-family="Helvetica, Arial, sans-serif" font-size="%.2f" fill="%s" dominant-baseline="middle">%s</text>`+"\n",
		b.ID, b.Left+1.5, b.CenterY(), size, textColor, html.EscapeString(b.Label))
}

func renderGuides(buf *bytes.Buffer, page layout.Page, sheet, side float64) {
	for _, x := range []float64{side, page.Width - side} {
		fmt.Fprintf(buf, `  <line class="guide" x1="%.2f" y1="0" x2="%.2f" y2="%.2f" stroke="%s" stroke-width="0.2" stroke-dasharray="1,1"/>`+"\n",
			x, x, sheet, guideColor)
	}
	fmt.Fprintf(buf, `  <line class="limit" x1="0" y1="%.2f" x2="%.2f" y2="%.2f" stroke="%s" stroke-width="0.3" stroke-dasharray="2,1"/>`+"\n",
		page.Limit, page.Width, page.Limit, limitColor)
}
