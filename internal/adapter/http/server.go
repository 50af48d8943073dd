// Package http serves the radiative forcing dashboard: the interactive page,
// the figure and export endpoints, and the operational routes.
package http

import (
	"bytes"
	"context"
	"encoding/json"
	"html/template"
	"log/slog"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/couchcryptid/radiative-forcing-dashboard/internal/chart"
	"github.com/couchcryptid/radiative-forcing-dashboard/internal/domain"
	"github.com/couchcryptid/radiative-forcing-dashboard/internal/observability"
)

// Server exposes the dashboard page, figure API, PNG export, and the
// health/readiness/metrics endpoints.
type Server struct {
	httpServer *http.Server
	logger     *slog.Logger
	dataset    *domain.Dataset
	metrics    *observability.Metrics
	tmpl       *template.Template

	// debug reparses the page template on every request so edits show up
	// without a restart.
	debug bool
}

// NewServer creates an HTTP server over the loaded dataset.
func NewServer(addr string, ds *domain.Dataset, m *observability.Metrics, logger *slog.Logger, debug bool) *Server {
	mux := http.NewServeMux()

	s := &Server{
		httpServer: &http.Server{
			Addr:         addr,
			Handler:      mux,
			ReadTimeout:  10 * time.Second,
			WriteTimeout: 10 * time.Second,
			IdleTimeout:  60 * time.Second,
		},
		logger:  logger,
		dataset: ds,
		metrics: m,
		tmpl:    template.Must(template.New("index").Parse(tmplIndex)),
		debug:   debug,
	}

	mux.HandleFunc("GET /{$}", s.handleIndex)
	mux.HandleFunc("POST /api/figure", s.handleFigure)
	mux.HandleFunc("GET /api/sources", s.handleSources)
	mux.HandleFunc("GET /chart.png", s.handleChartPNG)
	mux.HandleFunc("GET /healthz", s.handleHealth)
	mux.HandleFunc("GET /readyz", s.handleReady)
	mux.Handle("GET /metrics", promhttp.Handler())

	return s
}

// Start begins listening. Returns http.ErrServerClosed on graceful shutdown.
func (s *Server) Start() error {
	s.logger.Info("http server starting", "addr", s.httpServer.Addr)
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully drains connections within the given context deadline.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}

// ServeHTTP delegates to the underlying handler, useful for testing.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.httpServer.Handler.ServeHTTP(w, r)
}

// sourceOption is one checklist entry on the page.
type sourceOption struct {
	Label   string
	Checked bool
}

type indexData struct {
	Sources       []sourceOption
	InitialFigure template.JS
	LoadedAt      time.Time
}

func (s *Server) handleIndex(w http.ResponseWriter, _ *http.Request) {
	tmpl := s.tmpl
	if s.debug {
		var err error
		tmpl, err = template.New("index").Parse(tmplIndex)
		if err != nil {
			s.logger.Error("reparse index template", "error", err)
			http.Error(w, "template error", http.StatusInternalServerError)
			return
		}
	}

	defaults := domain.DefaultSelection()
	checked := make(map[string]struct{}, len(defaults))
	for _, d := range defaults {
		checked[d] = struct{}{}
	}

	options := make([]sourceOption, 0, s.dataset.Len())
	for _, src := range s.dataset.Sources() {
		_, ok := checked[src]
		options = append(options, sourceOption{Label: src, Checked: ok})
	}

	figure, err := json.Marshal(s.buildFigure(defaults))
	if err != nil {
		s.logger.Error("marshal initial figure", "error", err)
		http.Error(w, "figure error", http.StatusInternalServerError)
		return
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, indexData{
		Sources:       options,
		InitialFigure: template.JS(figure),
		LoadedAt:      s.dataset.LoadedAt(),
	}); err != nil {
		s.logger.Error("render index", "error", err)
		http.Error(w, "template error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	buf.WriteTo(w) //nolint:errcheck // client gone, nothing to do
}

// figureRequest is the body of POST /api/figure: the checklist selection.
type figureRequest struct {
	Sources []string `json:"sources"`
}

func (s *Server) handleFigure(w http.ResponseWriter, r *http.Request) {
	var req figureRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}

	writeJSON(w, http.StatusOK, s.buildFigure(req.Sources))
}

// buildFigure runs one filter-and-render cycle and records its metrics.
// An empty selection is valid and yields a figure with zero bars.
func (s *Server) buildFigure(sources []string) chart.Figure {
	start := time.Now()

	rows := s.dataset.Filter(sources)
	fig := chart.BuildFigure(rows)

	s.metrics.FigureRenders.Inc()
	s.metrics.SelectedSources.Observe(float64(len(sources)))
	s.metrics.RenderDuration.Observe(time.Since(start).Seconds())
	if len(rows) == 0 {
		s.metrics.EmptySelections.Inc()
	}
	return fig
}

func (s *Server) handleSources(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string][]string{
		"sources":  s.dataset.Sources(),
		"defaults": domain.DefaultSelection(),
	})
}

// handleChartPNG renders the filtered waterfall server-side. Selection comes
// from repeated ?source= parameters; with none present the default selection
// is used so a bare /chart.png matches the page's first view.
func (s *Server) handleChartPNG(w http.ResponseWriter, r *http.Request) {
	sources := r.URL.Query()["source"]
	if len(sources) == 0 {
		sources = domain.DefaultSelection()
	}

	var buf bytes.Buffer
	if err := chart.RenderPNG(&buf, s.dataset.Filter(sources)); err != nil {
		s.logger.Error("render chart png", "error", err)
		http.Error(w, "render error", http.StatusInternalServerError)
		return
	}

	s.metrics.PNGExports.Inc()
	w.Header().Set("Content-Type", "image/png")
	buf.WriteTo(w) //nolint:errcheck // client gone, nothing to do
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "healthy"})
}

func (s *Server) handleReady(w http.ResponseWriter, _ *http.Request) {
	if s.dataset.Len() == 0 {
		writeJSON(w, http.StatusServiceUnavailable, map[string]string{
			"status": "not ready",
			"error":  "dataset is empty",
		})
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ready"})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck // best-effort response
}
