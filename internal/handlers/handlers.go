package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"boco.agency/internal/middleware"
	"boco.agency/internal/services"
)

// Deps are the services the routes are built from
type Deps struct {
	Pages    *services.PageService
	Projects *services.ProjectService
	Logger   *zap.Logger
	// Metrics is optional; /metrics is only mounted when set
	Metrics interface {
		middleware.RequestObserver
		Handler() http.Handler
	}
}

// SetupRoutes configures all routes and returns the router
func SetupRoutes(deps Deps) http.Handler {
	logger := deps.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.Recovery(logger))
	r.Use(middleware.Logger(logger))
	if deps.Metrics != nil {
		r.Use(middleware.Metrics(deps.Metrics))
	}

	pageHandler := NewPageHandler(deps.Pages, logger)
	projectHandler := NewProjectHandler(deps.Projects, logger)
	carouselHandler := NewCarouselHandler(deps.Projects, logger)

	// Landing page
	r.Get("/", pageHandler.ServeLanding)

	// API routes
	r.Route("/api", func(r chi.Router) {
		r.Get("/page", pageHandler.GetPage)

		// Project endpoints
		r.Get("/projects", projectHandler.ListProjects)
		r.Get("/projects/carousel", carouselHandler.Step)
		r.Get("/projects/{index}", projectHandler.GetProject)

		// Health check
		r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
			respondJSON(w, logger, http.StatusOK, map[string]string{"status": "ok"})
		})
	})

	if deps.Metrics != nil {
		r.Method(http.MethodGet, "/metrics", deps.Metrics.Handler())
	}

	return r
}

// respondJSON writes a JSON response
func respondJSON(w http.ResponseWriter, logger *zap.Logger, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		logger.Warn("encode response", zap.Error(err))
	}
}

// respondError writes an error JSON response
func respondError(w http.ResponseWriter, logger *zap.Logger, status int, message string) {
	respondJSON(w, logger, status, map[string]string{"error": message})
}
