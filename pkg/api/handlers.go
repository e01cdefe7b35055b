package api

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/matzehuels/quotefit/pkg/buildinfo"
	"github.com/matzehuels/quotefit/pkg/errors"
	"github.com/matzehuels/quotefit/pkg/layout"
	"github.com/matzehuels/quotefit/pkg/pipeline"
	"github.com/matzehuels/quotefit/pkg/quote"
	"github.com/matzehuels/quotefit/pkg/render/sink"
)

// Request is the body accepted by the /v1 endpoints. Exactly one of
// Content and Quote must be set.
type Request struct {
	Content *quote.Content `json:"content,omitempty"`
	Quote   *quote.Quote   `json:"quote,omitempty"`
	Refresh bool           `json:"refresh,omitempty"`

	// Render options, ignored by /v1/compute and /v1/layout.
	Scale   float64 `json:"scale,omitempty"`
	Labels  bool    `json:"labels,omitempty"`
	Guides  bool    `json:"guides,omitempty"`
	Caption bool    `json:"caption,omitempty"`
}

// options converts the request to pipeline options.
func (req Request) options() (pipeline.Options, error) {
	var c quote.Content
	switch {
	case req.Content != nil && req.Quote != nil:
		return pipeline.Options{}, errors.New(errors.ErrCodeInvalidInput, "set either content or quote, not both")
	case req.Content != nil:
		c = *req.Content
	case req.Quote != nil:
		c = req.Quote.Content()
	default:
		return pipeline.Options{}, errors.New(errors.ErrCodeInvalidInput, "content or quote is required")
	}
	return pipeline.Options{
		Content: c,
		Refresh: req.Refresh,
		Scale:   req.Scale,
		Labels:  req.Labels,
		Guides:  req.Guides,
		Caption: req.Caption,
	}, nil
}

// contentTypes maps output formats to response media types.
var contentTypes = map[string]string{
	pipeline.FormatSVG:  "image/svg+xml",
	pipeline.FormatPNG:  "image/png",
	pipeline.FormatPDF:  "application/pdf",
	pipeline.FormatJSON: "application/json",
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleVersion(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, buildinfo.Get(layout.EngineVersion))
}

func (s *Server) handleCompute(w http.ResponseWriter, r *http.Request) {
	opts, err := decodeRequest(w, r)
	if err != nil {
		writeError(w, r, err)
		return
	}
	res, hit, err := s.runner.SolveWithCacheInfo(r.Context(), opts)
	if err != nil {
		writeError(w, r, err)
		return
	}
	setCacheHeader(w, hit)
	writeJSON(w, http.StatusOK, res.Config)
}

func (s *Server) handleLayout(w http.ResponseWriter, r *http.Request) {
	opts, err := decodeRequest(w, r)
	if err != nil {
		writeError(w, r, err)
		return
	}
	res, hit, err := s.runner.SolveWithCacheInfo(r.Context(), opts)
	if err != nil {
		writeError(w, r, err)
		return
	}
	data, err := sink.RenderJSON(res, sink.WithJSONBlocks(), sink.WithJSONRunID(RequestID(r.Context())))
	if err != nil {
		writeError(w, r, errors.Wrap(errors.ErrCodeInternal, err, "encode layout"))
		return
	}
	setCacheHeader(w, hit)
	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write(data)
}

func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	format := chi.URLParam(r, "format")
	if err := pipeline.ValidateFormat(format); err != nil {
		writeError(w, r, err)
		return
	}
	opts, err := decodeRequest(w, r)
	if err != nil {
		writeError(w, r, err)
		return
	}
	opts.Formats = []string{format}
	opts.Logger = s.logger.With("request", RequestID(r.Context()))

	result, err := s.runner.Execute(r.Context(), opts)
	if err != nil {
		writeError(w, r, err)
		return
	}

	setCacheHeader(w, result.CacheInfo.LayoutHit && result.CacheInfo.RenderHit)
	w.Header().Set("Content-Type", contentTypes[format])
	w.Header().Set("X-Run-ID", result.RunID)
	w.Header().Set("X-Layout-Phase", result.Stats.Phase)
	_, _ = w.Write(result.Artifacts[format])
}

// decodeRequest reads a JSON Request body into pipeline options.
func decodeRequest(w http.ResponseWriter, r *http.Request) (pipeline.Options, error) {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()

	var req Request
	if err := dec.Decode(&req); err != nil {
		if err == io.EOF {
			return pipeline.Options{}, errors.New(errors.ErrCodeInvalidInput, "request body is empty")
		}
		return pipeline.Options{}, errors.Wrap(errors.ErrCodeInvalidInput, err, "decode request")
	}
	opts, err := req.options()
	if err != nil {
		return pipeline.Options{}, err
	}
	if err := opts.Content.Validate(); err != nil {
		return pipeline.Options{}, err
	}
	return opts, nil
}

func setCacheHeader(w http.ResponseWriter, hit bool) {
	if hit {
		w.Header().Set("X-Cache", "hit")
	} else {
		w.Header().Set("X-Cache", "miss")
	}
}
