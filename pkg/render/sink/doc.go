// Package sink renders a solved quote layout into output formats.
//
// # Overview
//
// A "sink" transforms a [layout.Result] into a final artifact. The page is
// drawn as a wireframe: every element becomes a labelled rectangle placed
// where the document renderer would print it, so the effect of compression
// can be inspected without the real document pipeline.
//
//   - SVG: vector wireframe in millimeter units
//   - PNG: raster wireframe drawn natively
//   - PDF: print-ready output (requires rsvg-convert)
//   - JSON: the solved budget, metrics and block geometry
//
// # SVG Output
//
// [RenderSVG] emits an A4 sheet with a viewBox of 210 by 297. Options:
//
//   - [WithLabels]: print element names at the derived font sizes
//   - [WithGuides]: draw the side margins and the available-height limit
//   - [WithCaption]: add a one-line summary of the solve below the sheet
//
// Basic usage:
//
//	res := layout.Solve(content)
//	svg := sink.RenderSVG(res, sink.WithLabels(), sink.WithGuides())
//
// # PNG Output
//
// [RenderPNG] draws the same wireframe with gg. [WithScale] sets the
// resolution in pixels per millimeter (default 3, about 76 dpi).
//
// # PDF Output
//
// [RenderPDF] renders SVG and converts it with rsvg-convert. It returns an
// UNSUPPORTED error when the converter is not installed.
//
// # JSON Output
//
// [RenderJSON] exports the phase, compression ratio, per-element values,
// the renderer [layout.Config] and, with [WithJSONBlocks], the placed
// block geometry.
//
// [layout.Result]: github.com/matzehuels/quotefit/pkg/layout.Result
// [layout.Config]: github.com/matzehuels/quotefit/pkg/layout.Config
package sink
