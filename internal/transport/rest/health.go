package rest

import (
	"context"
	"net/http"
	"time"
)

// pinger is anything whose reachability can be checked.
type pinger interface {
	Ping(ctx context.Context) error
}

type component struct {
	name string
	p    pinger
}

// HealthHandler serves health check endpoints.
type HealthHandler struct {
	components []component
	version    string
}

// HealthOption adds an optional dependency to the checks.
type HealthOption func(*HealthHandler)

// WithComponent registers an extra dependency under name.
func WithComponent(name string, p pinger) HealthOption {
	return func(h *HealthHandler) {
		h.components = append(h.components, component{name: name, p: p})
	}
}

// NewHealthHandler creates a HealthHandler. The database is always checked.
func NewHealthHandler(db pinger, version string, opts ...HealthOption) *HealthHandler {
	h := &HealthHandler{
		components: []component{{name: "database", p: db}},
		version:    version,
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// HealthResponse is the JSON response for /health and /ready.
type HealthResponse struct {
	Status     string                `json:"status"`
	Version    string                `json:"version,omitempty"`
	Components map[string]CompStatus `json:"components,omitempty"`
	Timestamp  time.Time             `json:"timestamp"`
}

// CompStatus is the status of an individual component.
type CompStatus struct {
	Status  string `json:"status"`
	Latency string `json:"latency,omitempty"`
}

// Live is the liveness probe. Always returns 200.
func (h *HealthHandler) Live(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{
		Status:    "ok",
		Timestamp: time.Now(),
	})
}

// Ready is the readiness probe: 200 if every component answers, 503 if not.
func (h *HealthHandler) Ready(w http.ResponseWriter, r *http.Request) {
	_, ok := h.check(r.Context())
	if !ok {
		writeJSON(w, http.StatusServiceUnavailable, HealthResponse{
			Status:    "down",
			Timestamp: time.Now(),
		})
		return
	}

	writeJSON(w, http.StatusOK, HealthResponse{
		Status:    "ok",
		Timestamp: time.Now(),
	})
}

// Health is the full health check with per-component latency and the version.
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	components, ok := h.check(r.Context())

	status, overall := http.StatusOK, "ok"
	if !ok {
		status, overall = http.StatusServiceUnavailable, "down"
	}

	writeJSON(w, status, HealthResponse{
		Status:     overall,
		Version:    h.version,
		Components: components,
		Timestamp:  time.Now(),
	})
}

func (h *HealthHandler) check(ctx context.Context) (map[string]CompStatus, bool) {
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	statuses := make(map[string]CompStatus, len(h.components))
	ok := true
	for _, c := range h.components {
		start := time.Now()
		if err := c.p.Ping(ctx); err != nil {
			statuses[c.name] = CompStatus{Status: "down"}
			ok = false
			continue
		}
		statuses[c.name] = CompStatus{Status: "ok", Latency: time.Since(start).String()}
	}
	return statuses, ok
}
