// Package pkg provides the libraries behind quotefit, which fits quote
// documents onto a single A4 page.
//
// # Overview
//
// A quote has a fixed frame (header, customer block, totals, footer) and two
// variable parts: the service rows and up to four terms sections. Quotefit
// decides how tall every part may be so the whole quote fits on one page, and
// derives the font sizes that go with those heights.
//
// # Architecture
//
//	Quote file or content flags
//	         ↓
//	    [quote] package (reduce a quote to its content summary)
//	         ↓
//	    [layout] package (budget, compression phases, derived config)
//	         ↓
//	    [render/sink] package (SVG/PNG/PDF/JSON page previews)
//
// [pipeline] ties the stages together with caching from [cache], and [api]
// serves the pipeline over HTTP.
//
// # Quick Start
//
//	import (
//	    "github.com/matzehuels/quotefit/pkg/layout"
//	    "github.com/matzehuels/quotefit/pkg/quote"
//	)
//
//	res := layout.Solve(quote.Content{ItemCount: 40, HasDiscount: true})
//	fmt.Println(res.Phase, res.Config.ServiceFontSize)
//
// # Main Packages
//
// [layout] - The engine. It builds a budget of page elements with default and
// minimum sizes, then runs up to four phases: expansion into spare space,
// proportional compression, service row squeezing and emergency floors.
//
// [quote] - Quote documents in TOML or JSON and the content summary the engine
// consumes.
//
// [render/sink] - Wireframe previews of the solved page.
//
// [pipeline] - Solve and render with caching, as used by the CLI and the API.
//
// [cache] - File, SQLite, Redis and MongoDB cache backends.
//
// [api] - HTTP handlers for computing layouts and rendering previews.
//
// [errors] - Structured error codes shared by the CLI and the API.
//
// [observability] - Hooks for metrics and tracing around pipeline stages.
//
// [layout]: github.com/matzehuels/quotefit/pkg/layout
// [quote]: github.com/matzehuels/quotefit/pkg/quote
// [render/sink]: github.com/matzehuels/quotefit/pkg/render/sink
// [pipeline]: github.com/matzehuels/quotefit/pkg/pipeline
// [cache]: github.com/matzehuels/quotefit/pkg/cache
// [api]: github.com/matzehuels/quotefit/pkg/api
// [errors]: github.com/matzehuels/quotefit/pkg/errors
// [observability]: github.com/matzehuels/quotefit/pkg/observability
package pkg
