// Package api serves the layout engine over HTTP.
//
// # Routes
//
//	GET  /healthz                liveness probe
//	GET  /version                build and engine revision
//	POST /v1/compute             derived renderer configuration only
//	POST /v1/layout              full solve document (phase, elements, blocks)
//	POST /v1/render/{format}     preview artifact (svg, png, pdf, json)
//
// Request bodies carry either a content summary or a full quote:
//
//	{"content": {"item_count": 40, "has_discount": true}}
//	{"quote": {"services": [{"description": "Setup", "price": 120}], "guarantee": "2 years"}}
//
// Errors are JSON objects with the message, the machine-readable code from
// [errors.Code] and the request ID. Every response carries an X-Request-ID
// header; a client-supplied one is echoed back.
//
// [errors.Code]: github.com/matzehuels/quotefit/pkg/errors.Code
package api
