package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"boco.agency/internal/services"
)

// ProjectHandler handles project-related endpoints
type ProjectHandler struct {
	projectService *services.ProjectService
	logger         *zap.Logger
}

// NewProjectHandler creates a new ProjectHandler
func NewProjectHandler(ps *services.ProjectService, logger *zap.Logger) *ProjectHandler {
	return &ProjectHandler{projectService: ps, logger: logger}
}

// ListProjects handles GET /api/projects
func (h *ProjectHandler) ListProjects(w http.ResponseWriter, r *http.Request) {
	projects, err := h.projectService.GetAll(r.Context())
	if err != nil {
		h.contentError(w, err)
		return
	}
	respondJSON(w, h.logger, http.StatusOK, projects)
}

// GetProject handles GET /api/projects/{index}
func (h *ProjectHandler) GetProject(w http.ResponseWriter, r *http.Request) {
	index, err := strconv.Atoi(chi.URLParam(r, "index"))
	if err != nil {
		respondError(w, h.logger, http.StatusBadRequest, "Invalid project index")
		return
	}

	project, err := h.projectService.GetByIndex(r.Context(), index)
	if errors.Is(err, services.ErrProjectNotFound) {
		respondError(w, h.logger, http.StatusNotFound, "Project not found")
		return
	}
	if err != nil {
		h.contentError(w, err)
		return
	}

	respondJSON(w, h.logger, http.StatusOK, project)
}

// contentError maps a failed content fetch to 502
func (h *ProjectHandler) contentError(w http.ResponseWriter, err error) {
	h.logger.Warn("content fetch failed", zap.Error(err))
	respondError(w, h.logger, http.StatusBadGateway, "Content service unavailable")
}
