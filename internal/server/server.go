// Package server exposes cut-list rendering over HTTP.
//
// The server holds one loaded project and renders sheets on demand,
// with per-request overrides passed as query parameters. Rendered SVG
// is cached keyed by the project hash and the effective options.
package server

import (
	"net/http"
	"strconv"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"

	"github.com/rebarcad/cutlist/pkg/cache"
	"github.com/rebarcad/cutlist/pkg/project"
	"github.com/rebarcad/cutlist/pkg/rebar"
	"github.com/rebarcad/cutlist/pkg/render"
)

// cacheTTL bounds how long a rendered sheet stays valid. The project
// hash already invalidates on content changes; the TTL only limits
// cache growth for rarely repeated option combinations.
const cacheTTL = time.Hour

// Server renders cut lists for one project over HTTP.
type Server struct {
	proj     *project.Project
	projHash string
	store    cache.Cache
	logger   *log.Logger
}

// New creates a server for a loaded project. projData is the raw
// project file, hashed for cache keys. A nil store disables caching.
func New(proj *project.Project, projData []byte, store cache.Cache, logger *log.Logger) *Server {
	if store == nil {
		store = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Server{
		proj:     proj,
		projHash: cache.Hash(projData),
		store:    store,
		logger:   logger,
	}
}

// Handler returns the HTTP routes:
//
//	GET /healthz      - liveness probe
//	GET /cutlist      - the full cut-list sheet as SVG
//	GET /bars/{name}  - a single bar's shape as SVG
//
// Query parameters width, row_height, precision, include_mark, scale
// and color_style override the project's render settings. Responses
// carry an X-Render-ID header for log correlation.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	r.Get("/cutlist", s.handleCutList)
	r.Get("/bars/{name}", s.handleBar)

	return r
}

func (s *Server) handleCutList(w http.ResponseWriter, r *http.Request) {
	renderID := uuid.NewString()
	logger := s.logger.With("render_id", renderID, "path", r.URL.Path)

	opts, params, err := s.requestOptions(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	key := cache.RenderKey(s.projHash, params)
	if data, ok, err := s.store.Get(r.Context(), key); err == nil && ok {
		logger.Debug("cache hit")
		writeSVG(w, renderID, data)
		return
	}

	doc := s.proj.Document()
	bars := doc.ListBars(true)
	sheet, err := render.RenderCutList(bars, nil, opts...)
	if err != nil {
		// Failed rows render empty; the sheet itself is still usable.
		logger.Warn("some rows failed to render", "err", err)
	}
	data := sheet.Bytes()

	if err := s.store.Set(r.Context(), key, data, cacheTTL); err != nil {
		logger.Warn("cache write failed", "err", err)
	}
	logger.Info("rendered cut list", "bars", len(bars), "bytes", len(data))
	writeSVG(w, renderID, data)
}

func (s *Server) handleBar(w http.ResponseWriter, r *http.Request) {
	renderID := uuid.NewString()
	name := chi.URLParam(r, "name")
	logger := s.logger.With("render_id", renderID, "bar", name)

	opts, _, err := s.requestOptions(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	bar, ok := s.findBar(name)
	if !ok {
		http.Error(w, "bar not found: "+name, http.StatusNotFound)
		return
	}

	shape, err := render.RenderShape(bar, render.AutoView(), opts...)
	if err != nil {
		logger.Error("render failed", "err", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	logger.Info("rendered bar shape")
	writeSVG(w, renderID, shape.Bytes())
}

// findBar locates a bar by object name across both bar kinds.
func (s *Server) findBar(name string) (rebar.Bar, bool) {
	doc := s.proj.Document()
	for _, b := range doc.ListBars(false) {
		if b.Name() == name {
			return b, true
		}
	}
	return nil, false
}

// requestOptions combines the project's render settings with query
// overrides. The returned params map feeds the cache key, so only
// recognized, normalized values are included.
func (s *Server) requestOptions(r *http.Request) ([]render.Option, map[string]string, error) {
	opts := s.proj.Options()
	params := make(map[string]string)
	q := r.URL.Query()

	for _, p := range []struct {
		name  string
		apply func(float64) render.Option
	}{
		{"width", render.WithWidth},
		{"row_height", render.WithRowHeight},
		{"scale", render.WithScale},
		{"font_size", render.WithFontSize},
		{"stroke_width", render.WithStrokeWidth},
	} {
		raw := q.Get(p.name)
		if raw == "" {
			continue
		}
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil || v <= 0 {
			return nil, nil, badParam(p.name, raw)
		}
		opts = append(opts, p.apply(v))
		params[p.name] = strconv.FormatFloat(v, 'f', -1, 64)
	}

	if raw := q.Get("precision"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil || v < 0 {
			return nil, nil, badParam("precision", raw)
		}
		opts = append(opts, render.WithPrecision(v))
		params["precision"] = strconv.Itoa(v)
	}
	if raw := q.Get("include_mark"); raw != "" {
		v, err := strconv.ParseBool(raw)
		if err != nil {
			return nil, nil, badParam("include_mark", raw)
		}
		opts = append(opts, render.WithMark(v))
		params["include_mark"] = strconv.FormatBool(v)
	}
	if raw := q.Get("color_style"); raw != "" {
		opts = append(opts, render.WithColorStyle(raw))
		params["color_style"] = raw
	}

	return opts, params, nil
}

type paramError struct {
	name, value string
}

func (e paramError) Error() string {
	return "invalid value for " + e.name + ": " + e.value
}

func badParam(name, value string) error {
	return paramError{name: name, value: value}
}

func writeSVG(w http.ResponseWriter, renderID string, data []byte) {
	w.Header().Set("Content-Type", "image/svg+xml")
	w.Header().Set("X-Render-ID", renderID)
	_, _ = w.Write(data)
}
