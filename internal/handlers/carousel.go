package handlers

import (
	"net/http"
	"strconv"

	"go.uber.org/zap"

	"boco.agency/internal/models"
	"boco.agency/internal/services"
)

// CarouselHandler steps the projects carousel for script-driven clients
type CarouselHandler struct {
	projectService *services.ProjectService
	logger         *zap.Logger
}

// NewCarouselHandler creates a new CarouselHandler
func NewCarouselHandler(ps *services.ProjectService, logger *zap.Logger) *CarouselHandler {
	return &CarouselHandler{projectService: ps, logger: logger}
}

type carouselResponse struct {
	Position models.CarouselPosition `json:"position"`
	Project  *models.ProjectEntry    `json:"project"`
}

// Step handles GET /api/projects/carousel?index=&direction=
func (h *CarouselHandler) Step(w http.ResponseWriter, r *http.Request) {
	direction, err := services.ParseDirection(r.URL.Query().Get("direction"))
	if err != nil {
		respondError(w, h.logger, http.StatusBadRequest, err.Error())
		return
	}
	index := max(parseIntParam(r, "index", 0), 0)

	pos, project, err := h.projectService.Step(r.Context(), index, direction)
	if err != nil {
		h.logger.Warn("content fetch failed", zap.Error(err))
		respondError(w, h.logger, http.StatusBadGateway, "Content service unavailable")
		return
	}

	respondJSON(w, h.logger, http.StatusOK, carouselResponse{Position: pos, Project: project})
}

// parseIntParam parses an integer query parameter with a default value
func parseIntParam(r *http.Request, name string, defaultVal int) int {
	val := r.URL.Query().Get(name)
	if val == "" {
		return defaultVal
	}
	intVal, err := strconv.Atoi(val)
	if err != nil {
		return defaultVal
	}
	return intVal
}
