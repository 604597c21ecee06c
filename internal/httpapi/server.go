// Package httpapi exposes annealing runs over HTTP.
//
// Routes:
//
//	POST /runs       solve a run file (JSON, or YAML with a yaml Content-Type)
//	GET  /runs       list stored records
//	GET  /runs/{id}  fetch one record
//	GET  /metrics    Prometheus exposition, when a gatherer is configured
//	GET  /healthz    liveness
package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/katalvlaran/anneal/annealing"
	"github.com/katalvlaran/anneal/internal/logging"
	"github.com/katalvlaran/anneal/internal/runfile"
	"github.com/katalvlaran/anneal/problems"
	"github.com/katalvlaran/anneal/results"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// maxBodyBytes bounds the size of a submitted run file.
const maxBodyBytes = 1 << 20

// Service is what the API needs from the run layer.
type Service interface {
	Submit(ctx context.Context, f runfile.File) (results.Record, error)
	Get(ctx context.Context, id string) (results.Record, error)
	List(ctx context.Context) ([]results.Record, error)
}

// Option configures the handler.
type Option func(*server)

// WithGatherer serves gatherer on /metrics.
func WithGatherer(gatherer prometheus.Gatherer) Option {
	return func(s *server) {
		s.gatherer = gatherer
	}
}

// WithLogger sets the request logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *server) {
		s.logger = logger
	}
}

type server struct {
	svc      Service
	gatherer prometheus.Gatherer
	logger   *slog.Logger
}

// NewHandler creates the HTTP handler for svc.
func NewHandler(svc Service, opts ...Option) http.Handler {
	s := &server{svc: svc, logger: logging.NewNop()}
	for _, opt := range opts {
		opt(s)
	}

	r := chi.NewRouter()
	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	r.Route("/runs", func(r chi.Router) {
		r.Post("/", s.submit)
		r.Get("/", s.list)
		r.Get("/{id}", s.get)
	})
	if s.gatherer != nil {
		r.Handle("/metrics", promhttp.HandlerFor(s.gatherer, promhttp.HandlerOpts{}))
	}
	return r
}

func (s *server) submit(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		s.fail(w, http.StatusRequestEntityTooLarge, err)
		return
	}

	ext := ".json"
	if strings.Contains(r.Header.Get("Content-Type"), "yaml") {
		ext = ".yaml"
	}
	f, err := runfile.Parse(body, ext)
	if err != nil {
		s.fail(w, http.StatusBadRequest, err)
		return
	}

	record, err := s.svc.Submit(r.Context(), f)
	if err != nil {
		s.fail(w, statusOf(err), err)
		return
	}
	s.logger.Info("run submitted", "id", record.ID, "problem", record.Problem)
	writeJSON(w, http.StatusCreated, record)
}

func (s *server) list(w http.ResponseWriter, r *http.Request) {
	records, err := s.svc.List(r.Context())
	if err != nil {
		s.fail(w, http.StatusInternalServerError, err)
		return
	}
	writeJSON(w, http.StatusOK, records)
}

func (s *server) get(w http.ResponseWriter, r *http.Request) {
	record, err := s.svc.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		s.fail(w, statusOf(err), err)
		return
	}
	writeJSON(w, http.StatusOK, record)
}

// statusOf maps service errors to HTTP status codes.
func statusOf(err error) int {
	switch {
	case errors.Is(err, results.ErrRecordNotFound):
		return http.StatusNotFound
	case errors.Is(err, annealing.ErrConfiguration):
		return http.StatusUnprocessableEntity
	case errors.Is(err, runfile.ErrUnknownProblem),
		errors.Is(err, runfile.ErrBadCities),
		errors.Is(err, annealing.ErrUnknownStrategy),
		errors.Is(err, annealing.ErrOptionDecode),
		errors.Is(err, problems.ErrBadMatrix),
		errors.Is(err, problems.ErrBadDimension):
		return http.StatusBadRequest
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

type errorResponse struct {
	Error string `json:"error"`
}

func (s *server) fail(w http.ResponseWriter, status int, err error) {
	if status >= http.StatusInternalServerError {
		s.logger.Error("request failed", "status", status, "error", err)
	} else {
		s.logger.Debug("request rejected", "status", status, "error", err)
	}
	writeJSON(w, status, errorResponse{Error: err.Error()})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
