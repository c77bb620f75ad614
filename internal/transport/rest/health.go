// Package rest serves the plain-HTTP probes that sit next to the GraphQL
// endpoint.
package rest

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"
)

const probeTimeout = 3 * time.Second

// Pinger is a dependency whose reachability decides readiness.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Component is a named dependency reported by /health.
type Component struct {
	Name   string
	Pinger Pinger
}

// HealthHandler serves /live, /ready and /health.
type HealthHandler struct {
	log        *slog.Logger
	components []Component
	version    string
	now        func() time.Time
}

func NewHealthHandler(log *slog.Logger, version string, components ...Component) *HealthHandler {
	return &HealthHandler{
		log:        log.With("handler", "health"),
		components: components,
		version:    version,
		now:        time.Now,
	}
}

// HealthResponse is the body of every probe.
type HealthResponse struct {
	Status     string                     `json:"status"`
	Version    string                     `json:"version,omitempty"`
	Components map[string]ComponentStatus `json:"components,omitempty"`
	Timestamp  time.Time                  `json:"timestamp"`
}

type ComponentStatus struct {
	Status  string `json:"status"`
	Latency string `json:"latency,omitempty"`
	Error   string `json:"error,omitempty"`
}

// Live reports that the process is serving requests.
func (h *HealthHandler) Live(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{Status: "ok", Timestamp: h.now()})
}

// Ready answers 503 as soon as any component is unreachable.
func (h *HealthHandler) Ready(w http.ResponseWriter, r *http.Request) {
	statuses, ok := h.check(r.Context())
	resp := HealthResponse{Status: "ok", Timestamp: h.now()}
	if !ok {
		resp.Status = "down"
		resp.Components = statuses
		writeJSON(w, http.StatusServiceUnavailable, resp)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

// Health reports every component with its ping latency and the build version.
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	statuses, ok := h.check(r.Context())
	resp := HealthResponse{
		Status:     "ok",
		Version:    h.version,
		Components: statuses,
		Timestamp:  h.now(),
	}
	status := http.StatusOK
	if !ok {
		resp.Status = "down"
		status = http.StatusServiceUnavailable
	}
	writeJSON(w, status, resp)
}

func (h *HealthHandler) check(ctx context.Context) (map[string]ComponentStatus, bool) {
	ctx, cancel := context.WithTimeout(ctx, probeTimeout)
	defer cancel()

	statuses := make(map[string]ComponentStatus, len(h.components))
	healthy := true
	for _, c := range h.components {
		start := time.Now()
		err := c.Pinger.Ping(ctx)
		if err != nil {
			healthy = false
			statuses[c.Name] = ComponentStatus{Status: "down", Error: err.Error()}
			h.log.WarnContext(ctx, "component unhealthy",
				slog.String("component", c.Name),
				slog.String("error", err.Error()),
			)
			continue
		}
		statuses[c.Name] = ComponentStatus{Status: "ok", Latency: time.Since(start).String()}
	}
	return statuses, healthy
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck
}
