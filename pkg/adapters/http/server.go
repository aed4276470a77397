package http

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/openburn/motordoc/internal/logging"
	"github.com/openburn/motordoc/internal/presentation/graph"
	"github.com/openburn/motordoc/pkg/domain"
	"github.com/openburn/motordoc/pkg/library"
	"github.com/openburn/motordoc/pkg/validation"
	"github.com/openburn/motordoc/pkg/workspace"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Server exposes a workspace over a JSON HTTP API. Destructive
// operations rely on the workspace's configured prompter; a headless
// deployment typically installs a static choice or none at all, in
// which case dirty documents refuse to be replaced.
type Server struct {
	ws     *workspace.Manager
	lib    *library.Manager
	logger *slog.Logger
	ops    *prometheus.CounterVec
	reg    *prometheus.Registry
}

// Option configures the Server.
type Option func(*Server)

// WithLogger sets the request logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Server) {
		s.logger = logger
	}
}

// WithLibrary enables the /propellants endpoint.
func WithLibrary(lib *library.Manager) Option {
	return func(s *Server) {
		s.lib = lib
	}
}

// NewHandler creates a new HTTP handler over the workspace.
func NewHandler(ws *workspace.Manager, opts ...Option) http.Handler {
	reg := prometheus.NewRegistry()
	server := &Server{
		ws:     ws,
		logger: logging.NewNop(),
		reg:    reg,
		ops: promauto.With(reg).NewCounterVec(prometheus.CounterOpts{
			Name: "motordoc_operations_total",
			Help: "Workspace operations served over HTTP, by operation and outcome.",
		}, []string{"op", "outcome"}),
	}
	for _, opt := range opts {
		opt(server)
	}

	r := chi.NewRouter()
	r.Get("/state", server.handleState)
	r.Get("/state/graph", server.handleStateGraph)
	r.Get("/design", server.handleGetDesign)
	r.Get("/design/validate", server.handleValidate)
	r.Post("/design", server.handleAddVersion)
	r.Post("/design/override", server.handleOverride)
	r.Post("/undo", server.handleUndo)
	r.Post("/redo", server.handleRedo)
	r.Post("/save", server.handleSave)
	r.Post("/open", server.handleOpen)
	r.Post("/new", server.handleNew)
	r.Get("/propellants", server.handlePropellants)
	r.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))

	return enableCORS(r)
}

func enableCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}
		next.ServeHTTP(w, r)
	})
}

type pathRequest struct {
	Path string `json:"path"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func (s *Server) handleState(w http.ResponseWriter, r *http.Request) {
	s.respondJSON(w, http.StatusOK, s.ws.State())
}

func (s *Server) handleStateGraph(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	if _, err := w.Write([]byte(graph.GenerateMermaid(s.ws.State()))); err != nil {
		s.logger.Error("failed to write graph response", "err", err)
	}
}

func (s *Server) handleGetDesign(w http.ResponseWriter, r *http.Request) {
	s.respondJSON(w, http.StatusOK, s.ws.Current())
}

func (s *Server) handleValidate(w http.ResponseWriter, r *http.Request) {
	type validateResponse struct {
		Valid  bool     `json:"valid"`
		Issues []string `json:"issues,omitempty"`
	}

	err := validation.Validate(s.ws.Current())
	if err == nil {
		s.respondJSON(w, http.StatusOK, validateResponse{Valid: true})
		return
	}

	var issues []string
	for _, e := range validation.ValidationErrors(err) {
		issues = append(issues, e.Error())
	}
	s.respondJSON(w, http.StatusOK, validateResponse{Valid: false, Issues: issues})
}

func (s *Server) handleAddVersion(w http.ResponseWriter, r *http.Request) {
	var design domain.Design
	if err := json.NewDecoder(r.Body).Decode(&design); err != nil {
		s.ops.WithLabelValues("add_version", "error").Inc()
		s.respondJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid design body"})
		return
	}
	s.ws.AddVersion(&design)
	s.ops.WithLabelValues("add_version", "ok").Inc()
	s.respondJSON(w, http.StatusOK, s.ws.State())
}

func (s *Server) handleOverride(w http.ResponseWriter, r *http.Request) {
	var design domain.Design
	if err := json.NewDecoder(r.Body).Decode(&design); err != nil {
		s.ops.WithLabelValues("override", "error").Inc()
		s.respondJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid design body"})
		return
	}
	s.ws.OverrideCurrent(&design)
	s.ops.WithLabelValues("override", "ok").Inc()
	s.respondJSON(w, http.StatusOK, s.ws.State())
}

func (s *Server) handleUndo(w http.ResponseWriter, r *http.Request) {
	s.finishOp(w, "undo", s.ws.Undo())
}

func (s *Server) handleRedo(w http.ResponseWriter, r *http.Request) {
	s.finishOp(w, "redo", s.ws.Redo())
}

func (s *Server) handleSave(w http.ResponseWriter, r *http.Request) {
	var req pathRequest
	if r.ContentLength != 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			s.ops.WithLabelValues("save", "error").Inc()
			s.respondJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
			return
		}
	}

	var err error
	if req.Path != "" {
		err = s.ws.SaveAs(r.Context(), req.Path)
	} else {
		err = s.ws.Save(r.Context())
	}
	s.finishOp(w, "save", err)
}

func (s *Server) handleOpen(w http.ResponseWriter, r *http.Request) {
	var req pathRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Path == "" {
		s.ops.WithLabelValues("open", "error").Inc()
		s.respondJSON(w, http.StatusBadRequest, errorResponse{Error: "missing path"})
		return
	}
	s.finishOp(w, "open", s.ws.Open(r.Context(), req.Path))
}

func (s *Server) handleNew(w http.ResponseWriter, r *http.Request) {
	s.finishOp(w, "new", s.ws.New(r.Context()))
}

func (s *Server) handlePropellants(w http.ResponseWriter, r *http.Request) {
	if s.lib == nil {
		s.respondJSON(w, http.StatusNotFound, errorResponse{Error: "no propellant library configured"})
		return
	}
	entries, err := s.lib.All(r.Context())
	if err != nil {
		s.logger.Error("failed to load propellant library", "err", err)
		s.respondJSON(w, http.StatusInternalServerError, errorResponse{Error: err.Error()})
		return
	}
	s.respondJSON(w, http.StatusOK, entries)
}

// finishOp maps a workspace operation result onto an HTTP response and
// records the outcome metric.
func (s *Server) finishOp(w http.ResponseWriter, op string, err error) {
	if err != nil {
		s.ops.WithLabelValues(op, "error").Inc()
		s.logger.Warn("workspace operation failed", "op", op, "err", err)
		s.respondJSON(w, statusFor(err), errorResponse{Error: err.Error()})
		return
	}
	s.ops.WithLabelValues(op, "ok").Inc()
	s.respondJSON(w, http.StatusOK, s.ws.State())
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, domain.ErrCancelled),
		errors.Is(err, domain.ErrGuardAborted),
		errors.Is(err, domain.ErrCannotUndo),
		errors.Is(err, domain.ErrCannotRedo):
		return http.StatusConflict
	case errors.Is(err, domain.ErrDesignNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrVersionMismatch):
		return http.StatusUnprocessableEntity
	case errors.Is(err, domain.ErrNoPath):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func (s *Server) respondJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		s.logger.Error("failed to encode response", "err", err)
	}
}
