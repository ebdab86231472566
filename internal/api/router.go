// Package api wires all HTTP routes onto a chi router.
package api

import (
	"log/slog"
	"net/http"

	"github.com/d9705996/kysai/internal/api/handler"
	"github.com/d9705996/kysai/internal/api/middleware"
	"github.com/d9705996/kysai/internal/api/render"
	"github.com/d9705996/kysai/internal/health"
	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Deps are the handlers and settings the router needs.
type Deps struct {
	Logger    *slog.Logger
	Health    *health.Handler
	AI        *handler.AIHandler
	Reports   *handler.ReportHandler
	Auth      *handler.AuthHandler
	JWTSecret string
	StaticDir string
}

// NewRouter builds the application router.
func NewRouter(d Deps) http.Handler {
	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.Logging(d.Logger))
	r.Use(middleware.Recovery(d.Logger))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
		MaxAge:           600,
	}))

	r.NotFound(func(w http.ResponseWriter, _ *http.Request) {
		render.Detail(w, http.StatusNotFound, "Not Found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, _ *http.Request) {
		render.Detail(w, http.StatusMethodNotAllowed, "Method Not Allowed")
	})

	// Public endpoints
	r.Get("/", d.Health.ServeRoot)
	r.Get("/health", d.Health.ServeHealth)
	r.Handle("/metrics", promhttp.Handler())
	r.Handle("/static/*", staticHandler("/static/", d.StaticDir))

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/health", d.Health.ServeAPIHealth)
		r.Get("/ready", d.Health.ServeReady)
		r.Get("/version", d.Health.ServeVersion)
		r.Post("/auth/login", d.Auth.Login)

		// Bearer tokens are optional here; valid ones attribute created rows.
		r.Group(func(r chi.Router) {
			r.Use(middleware.OptionalAuth(d.JWTSecret))

			r.Post("/generate-8d", d.AI.GenerateEightD)
			r.Post("/analyze-hse-image", d.AI.AnalyzeHSEImage)

			r.Route("/reports", func(r chi.Router) {
				r.Get("/", d.Reports.List)
				r.Get("/stats", d.Reports.Stats)
				r.Post("/hse", d.Reports.CreateHSE)
				r.Get("/{id}", d.Reports.Get)
				r.Put("/{id}/finalize", d.Reports.Finalize)
			})
		})
	})

	return r
}
