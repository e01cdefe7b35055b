// Package render converts SVG previews to other formats.
//
// [ToPDF] shells out to rsvg-convert (from librsvg). The preview sinks in
// [sink] use it to produce print-ready PDFs of a page wireframe:
//
//	svg := sink.RenderSVG(res)
//	pdf, err := render.ToPDF(ctx, svg)
//
// [Available] reports whether the converter is installed, so callers can
// degrade gracefully instead of failing late.
//
// [sink]: github.com/matzehuels/quotefit/pkg/render/sink
package render
