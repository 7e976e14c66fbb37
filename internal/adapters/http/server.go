// Package http exposes registered machines over a JSON API. It is a
// demo driver around the engine: it consumes the (accepted, steps, tape)
// result triple and never parses machine definitions off the wire.
package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/aretw0/spool"
	"github.com/aretw0/spool/pkg/domain"
	"github.com/aretw0/spool/pkg/observability"
	"github.com/aretw0/spool/pkg/registry"
)

// maxInputBytes caps run input read off the wire.
const maxInputBytes = 1 << 20

// Server serves runs of registered machines.
type Server struct {
	registry *registry.Registry
	metrics  *observability.Metrics
	logger   *slog.Logger
}

// NewHandler creates the HTTP handler. The prometheus registry backs the
// /metrics endpoint; pass a fresh one per handler.
func NewHandler(reg *registry.Registry, promReg *prometheus.Registry, logger *slog.Logger) http.Handler {
	s := &Server{
		registry: reg,
		metrics:  observability.NewMetrics(promReg),
		logger:   logger,
	}

	r := chi.NewRouter()
	r.Get("/health", s.GetHealth)
	r.Get("/machines", s.ListMachines)
	r.Get("/machines/{name}", s.GetMachine)
	r.Post("/run", s.Run)
	r.Handle("/metrics", promhttp.HandlerFor(promReg, promhttp.HandlerOpts{}))

	return r
}

// RunRequest selects a registered machine and carries the run input and
// options. There is deliberately no way to submit a transition table.
type RunRequest struct {
	Machine  string `json:"machine"`
	Input    string `json:"input"`
	MaxSteps int    `json:"max_steps,omitempty"`
}

// MachineSummary is the list/detail view of a registered machine.
type MachineSummary struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	States      int    `json:"states"`
	Transitions int    `json:"transitions"`
	Blank       string `json:"blank"`
}

// Run handles the POST /run request.
func (s *Server) Run(w http.ResponseWriter, r *http.Request) {
	var body RunRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxInputBytes)).Decode(&body); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		s.logger.Warn("run: invalid request body", "error", err)
		return
	}

	machine, err := s.registry.Get(body.Machine)
	if err != nil {
		if errors.Is(err, domain.ErrMachineNotFound) {
			http.Error(w, fmt.Sprintf("Unknown machine: %s", body.Machine), http.StatusNotFound)
			return
		}
		http.Error(w, fmt.Sprintf("Lookup error: %v", err), http.StatusInternalServerError)
		s.logger.Error("run: registry lookup failed", "error", err)
		return
	}

	// One engine per request: RunState is never shared, only the
	// read-only Machine is.
	eng, err := spool.New(machine,
		spool.WithLogger(s.logger),
		spool.WithTraceHooks(s.metrics.Hooks()))
	if err != nil {
		http.Error(w, fmt.Sprintf("Engine error: %v", err), http.StatusInternalServerError)
		s.logger.Error("run: engine construction failed", "machine", body.Machine, "error", err)
		return
	}

	res := eng.Run(r.Context(), body.Input, spool.WithStepLimit(body.MaxSteps))

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(res); err != nil {
		s.logger.Error("run: response encode failed", "error", err)
	}
}

// ListMachines handles the GET /machines request.
func (s *Server) ListMachines(w http.ResponseWriter, r *http.Request) {
	names := s.registry.Names()
	out := make([]MachineSummary, 0, len(names))
	for _, name := range names {
		m, err := s.registry.Get(name)
		if err != nil {
			continue
		}
		out = append(out, summarize(m))
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(out); err != nil {
		s.logger.Error("machines: response encode failed", "error", err)
	}
}

// GetMachine handles the GET /machines/{name} request.
func (s *Server) GetMachine(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")

	m, err := s.registry.Get(name)
	if err != nil {
		http.Error(w, fmt.Sprintf("Unknown machine: %s", name), http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(summarize(m)); err != nil {
		s.logger.Error("machine: response encode failed", "error", err)
	}
}

// GetHealth handles the GET /health request.
func (s *Server) GetHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"status": "ok", "version": spool.Version})
}

func summarize(m *domain.Machine) MachineSummary {
	return MachineSummary{
		Name:        m.Name,
		Description: m.Description,
		States:      len(m.States),
		Transitions: len(m.Transitions),
		Blank:       string(rune(m.BlankSymbol())),
	}
}
