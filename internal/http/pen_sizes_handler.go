package http

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Askwho/mounjaro-hub/internal/domain/dto"
	"github.com/Askwho/mounjaro-hub/internal/i18n"
	"github.com/Askwho/mounjaro-hub/internal/middleware"
	"github.com/Askwho/mounjaro-hub/internal/service"
)

// PenSizesHandler provides HTTP handlers for pen size catalog routes.
type PenSizesHandler struct {
	penSizesService service.PenSizesService
	analyticsHandler *Handler
}

// NewPenSizesHandler creates a new PenSizesHandler instance.
func NewPenSizesHandler(penSizesService service.PenSizesService, analyticsHandler *Handler) *PenSizesHandler {
	return &PenSizesHandler{
		penSizesService:  penSizesService,
		analyticsHandler: analyticsHandler,
	}
}

// GetActivePenSizes handles GET /api/pen-sizes requests.
//
// @Summary      Get active pen sizes
// @Description  Returns the currently active pen size catalog.
// @Tags         Pen Sizes
// @Produce      json
// @Param        Authorization header string false "Bearer token (required if auth enabled)"
// @Success      200 {object} dto.SuccessResponse "Active pen sizes"
// @Failure      401 {object} dto.ErrorResponse "Unauthorized - missing or invalid JWT token"
// @Failure      404 {object} dto.ErrorResponse "No active catalog found"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Security     BearerAuth
// @Router       /api/pen-sizes [get]
func (h *PenSizesHandler) GetActivePenSizes(c *gin.Context) {
	builder := NewResponseBuilder(c)

	config, err := h.penSizesService.GetActive(c.Request.Context())
	if err != nil {
		builder.Error(http.StatusInternalServerError, i18n.ErrKeyInternalError, err)
		return
	}

	if config == nil {
		builder.Error(http.StatusNotFound, i18n.ErrKeyNotFound, nil)
		return
	}

	builder.SuccessOK(map[string]interface{}{
		"sizes":      config.Sizes,
		"version":    config.Version,
		"created_at": config.CreatedAt,
		"updated_at": config.UpdatedAt,
	})
}

// UpdatePenSizes handles PUT /api/pen-sizes requests.
//
// @Summary      Replace pen size catalog
// @Description  Stores a new active pen size catalog, superseding the previous one.
// @Tags         Pen Sizes
// @Accept       json
// @Produce      json
// @Param        request body dto.UpdatePenSizesRequest true "Replacement catalog"
// @Param        Authorization header string false "Bearer token (required if auth enabled)"
// @Success      200 {object} dto.SuccessResponse "Stored catalog"
// @Failure      400 {object} dto.ErrorResponse "Bad request"
// @Failure      401 {object} dto.ErrorResponse "Unauthorized - missing or invalid JWT token"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Security     BearerAuth
// @Router       /api/pen-sizes [put]
func (h *PenSizesHandler) UpdatePenSizes(c *gin.Context) {
	builder := NewResponseBuilder(c)

	var req dto.UpdatePenSizesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequest, err)
		return
	}

	config, err := h.penSizesService.Create(c.Request.Context(), req.Sizes, req.CreatedBy)
	if err != nil {
		if err == service.ErrInvalidPenSizes {
			builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequest, err)
		} else {
			builder.Error(http.StatusInternalServerError, i18n.ErrKeyInternalError, err)
		}
		return
	}

	if h.analyticsHandler != nil {
		h.analyticsHandler.InvalidatePenSizesCache()
	}

	if ls := contextLoggingService(c); ls != nil {
		middleware.AuditLog(ls, c, "update_pen_sizes", "Pen size catalog replaced", map[string]interface{}{
			"sizes":   req.Sizes,
			"version": config.Version,
		})
	}

	builder.SuccessOK(map[string]interface{}{
		"sizes":      config.Sizes,
		"version":    config.Version,
		"created_at": config.CreatedAt,
		"updated_at": config.UpdatedAt,
	})
}

// ListPenSizes handles GET /api/pen-sizes/history requests.
//
// @Summary      List pen size catalog history
// @Description  Returns all pen size catalog versions, newest first.
// @Tags         Pen Sizes
// @Produce      json
// @Param        limit query int false "Limit number of results"
// @Param        Authorization header string false "Bearer token (required if auth enabled)"
// @Success      200 {object} dto.SuccessResponse "Catalog history"
// @Failure      401 {object} dto.ErrorResponse "Unauthorized - missing or invalid JWT token"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Security     BearerAuth
// @Router       /api/pen-sizes/history [get]
func (h *PenSizesHandler) ListPenSizes(c *gin.Context) {
	builder := NewResponseBuilder(c)

	limit := 0
	if limitStr := c.Query("limit"); limitStr != "" {
		if l, err := strconv.Atoi(limitStr); err == nil && l > 0 {
			limit = l
		}
	}

	configs, err := h.penSizesService.List(c.Request.Context(), limit)
	if err != nil {
		builder.Error(http.StatusInternalServerError, i18n.ErrKeyInternalError, err)
		return
	}

	builder.SuccessOK(configs)
}
