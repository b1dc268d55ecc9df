package handlers

import (
	"net/http"

	"github.com/a-h/templ"
	"go.uber.org/zap"

	"boco.agency/internal/models"
	"boco.agency/internal/services"
	"boco.agency/internal/views"
)

// PageHandler serves the landing page and its JSON snapshot
type PageHandler struct {
	pageService *services.PageService
	logger      *zap.Logger
}

// NewPageHandler creates a new PageHandler
func NewPageHandler(ps *services.PageService, logger *zap.Logger) *PageHandler {
	return &PageHandler{pageService: ps, logger: logger}
}

// load runs a page load and moves the carousel to the ?project slide
func (h *PageHandler) load(r *http.Request) models.PageView {
	page := h.pageService.Load(r.Context())
	page.SelectProject(parseIntParam(r, "project", 0))
	return page.View()
}

// ServeLanding handles GET /
func (h *PageHandler) ServeLanding(w http.ResponseWriter, r *http.Request) {
	view := h.load(r)
	templ.Handler(views.Page(view, views.Options{}),
		templ.WithErrorHandler(func(r *http.Request, err error) http.Handler {
			h.logger.Error("render landing page", zap.Error(err))
			return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			})
		}),
	).ServeHTTP(w, r)
}

// GetPage handles GET /api/page
func (h *PageHandler) GetPage(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, h.logger, http.StatusOK, h.load(r))
}
