// Package health exposes the root, liveness, readiness and version handlers.
package health

import (
	"context"
	"net/http"
	"time"

	"github.com/d9705996/kysai/internal/api/render"
	"github.com/d9705996/kysai/internal/version"
)

// Pinger is implemented by anything that can check a downstream dependency.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Handler holds dependencies for the health endpoints.
type Handler struct {
	db        Pinger
	startTime time.Time
}

// New creates a Handler. db may be nil; /ready then returns 503.
func New(db Pinger) *Handler {
	return &Handler{db: db, startTime: time.Now()}
}

type rootResponse struct {
	Message string `json:"message"`
	Status  string `json:"status"`
}

type serviceResponse struct {
	Status  string `json:"status"`
	Service string `json:"service"`
}

type apiResponse struct {
	Status string `json:"status"`
	Module string `json:"module"`
	DB     string `json:"db"`
}

type versionResponse struct {
	Version       string `json:"version"`
	Commit        string `json:"commit"`
	BuildDate     string `json:"build_date"`
	UptimeSeconds int64  `json:"uptime_seconds"`
}

// ServeRoot handles GET /.
func (h *Handler) ServeRoot(w http.ResponseWriter, _ *http.Request) {
	render.JSON(w, http.StatusOK, rootResponse{Message: "Welcome to KYSAI API", Status: "running"})
}

// ServeHealth handles GET /health.
func (h *Handler) ServeHealth(w http.ResponseWriter, _ *http.Request) {
	render.JSON(w, http.StatusOK, serviceResponse{Status: "ok", Service: "kysai-backend"})
}

// ServeAPIHealth handles GET /api/v1/health. The payload is static; use
// /api/v1/ready for a real database check.
func (h *Handler) ServeAPIHealth(w http.ResponseWriter, _ *http.Request) {
	render.JSON(w, http.StatusOK, apiResponse{Status: "ok", Module: "api-v1", DB: "connected"})
}

// ServeReady handles GET /api/v1/ready.
// Returns 200 when the database answers a ping within 3s; 503 otherwise.
func (h *Handler) ServeReady(w http.ResponseWriter, r *http.Request) {
	if h.db == nil {
		render.Detail(w, http.StatusServiceUnavailable, "database connection is not initialised")
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), 3*time.Second)
	defer cancel()

	if err := h.db.Ping(ctx); err != nil {
		render.Detail(w, http.StatusServiceUnavailable, "database is unreachable: "+err.Error())
		return
	}
	render.JSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// ServeVersion handles GET /api/v1/version.
func (h *Handler) ServeVersion(w http.ResponseWriter, _ *http.Request) {
	render.JSON(w, http.StatusOK, versionResponse{
		Version:       version.Version,
		Commit:        version.Commit,
		BuildDate:     version.Date,
		UptimeSeconds: int64(time.Since(h.startTime).Seconds()),
	})
}
