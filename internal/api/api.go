package api

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"projecteval/pkg/projecteval"
)

// NewRouter builds the HTTP API router.
func NewRouter(core *projecteval.Core, logger *slog.Logger) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(requestLoggingMiddleware(logger))
	r.Use(recoveryLoggingMiddleware(logger))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
	}))

	h := &handler{core: core, metrics: newMetrics()}

	r.Get("/api/health", h.health)
	r.Method(http.MethodGet, "/metrics", h.metrics.httpHandler())

	// Projects
	r.Get("/api/projects", h.listProjects)
	r.Post("/api/projects", h.createProject)
	r.Get("/api/projects/{id}", h.getProject)
	r.Delete("/api/projects/{id}", h.deleteProject)

	// Inputs and timeline
	r.Put("/api/projects/{id}/inputs", h.updateInputs)
	r.Put("/api/projects/{id}/period", h.updatePeriod)

	// Evaluation
	r.Post("/api/projects/{id}/calculate", h.calculate)
	r.Get("/api/projects/{id}/results", h.getResults)
	r.Get("/api/projects/{id}/summary/{section}", h.getSummary)
	r.Post("/api/projects/{id}/sensitivity", h.analyzeSensitivity)

	return r
}

type handler struct {
	core    *projecteval.Core
	metrics *metrics
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}
