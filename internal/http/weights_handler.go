package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Askwho/mounjaro-hub/internal/domain/dto"
	"github.com/Askwho/mounjaro-hub/internal/i18n"
	"github.com/Askwho/mounjaro-hub/internal/middleware"
	"github.com/Askwho/mounjaro-hub/internal/service"
)

// WeightsHandler provides HTTP handlers for weight tracking routes.
type WeightsHandler struct {
	weightsService service.WeightsService
}

// NewWeightsHandler creates a new WeightsHandler instance.
func NewWeightsHandler(weightsService service.WeightsService) *WeightsHandler {
	return &WeightsHandler{weightsService: weightsService}
}

// CreateWeight handles POST /api/weights requests.
//
// @Summary      Log a weight entry
// @Description  Records a body weight measurement.
// @Tags         Weights
// @Accept       json
// @Produce      json
// @Param        request body dto.CreateWeightRequest true "Weight entry"
// @Param        Authorization header string false "Bearer token (required if auth enabled)"
// @Success      201 {object} dto.SuccessResponse "Created entry"
// @Failure      400 {object} dto.ErrorResponse "Bad request - invalid input"
// @Failure      401 {object} dto.ErrorResponse "Unauthorized - missing or invalid JWT token"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Security     BearerAuth
// @Router       /api/weights [post]
func (h *WeightsHandler) CreateWeight(c *gin.Context) {
	builder := NewResponseBuilder(c)

	var req dto.CreateWeightRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequestBody, err)
		return
	}

	entry, err := h.weightsService.CreateWeight(c.Request.Context(), currentUserID(c), req)
	if err != nil {
		if isValidationError(err) {
			builder.ErrorWithMessage(http.StatusBadRequest, err.Error(), err)
		} else {
			builder.Error(http.StatusInternalServerError, i18n.ErrKeyInternalError, err)
		}
		return
	}

	if ls := contextLoggingService(c); ls != nil {
		middleware.AuditLog(ls, c, "create_weight", "Weight entry logged", map[string]interface{}{
			"weight_id": entry.ID,
			"weight_kg": entry.WeightKg,
		})
	}

	builder.SuccessCreated(entry)
}

// ListWeights handles GET /api/weights requests.
//
// @Summary      List weight entries
// @Description  Returns every weight entry sorted by date.
// @Tags         Weights
// @Produce      json
// @Param        Authorization header string false "Bearer token (required if auth enabled)"
// @Success      200 {object} dto.SuccessResponse "Weight entries"
// @Failure      401 {object} dto.ErrorResponse "Unauthorized - missing or invalid JWT token"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Security     BearerAuth
// @Router       /api/weights [get]
func (h *WeightsHandler) ListWeights(c *gin.Context) {
	builder := NewResponseBuilder(c)

	entries, err := h.weightsService.ListWeights(c.Request.Context(), currentUserID(c))
	if err != nil {
		builder.Error(http.StatusInternalServerError, i18n.ErrKeyInternalError, err)
		return
	}

	builder.SuccessOK(entries)
}

// WeightStats handles GET /api/weights/stats requests.
//
// @Summary      Weight statistics
// @Description  Summarizes the weight history: first and latest measurements, total change and the day span covered.
// @Tags         Weights
// @Produce      json
// @Param        Authorization header string false "Bearer token (required if auth enabled)"
// @Success      200 {object} dto.SuccessResponse "Weight statistics"
// @Failure      401 {object} dto.ErrorResponse "Unauthorized - missing or invalid JWT token"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Security     BearerAuth
// @Router       /api/weights/stats [get]
func (h *WeightsHandler) WeightStats(c *gin.Context) {
	builder := NewResponseBuilder(c)

	stats, err := h.weightsService.Stats(c.Request.Context(), currentUserID(c))
	if err != nil {
		builder.Error(http.StatusInternalServerError, i18n.ErrKeyInternalError, err)
		return
	}

	builder.SuccessOK(stats)
}

// DeleteWeight handles DELETE /api/weights/:id requests.
//
// @Summary      Delete a weight entry
// @Description  Removes a single weight entry.
// @Tags         Weights
// @Produce      json
// @Param        id path string true "Weight entry ID"
// @Param        Authorization header string false "Bearer token (required if auth enabled)"
// @Success      200 {object} dto.SuccessResponse "Deletion confirmation"
// @Failure      401 {object} dto.ErrorResponse "Unauthorized - missing or invalid JWT token"
// @Failure      404 {object} dto.ErrorResponse "Entry not found"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Security     BearerAuth
// @Router       /api/weights/{id} [delete]
func (h *WeightsHandler) DeleteWeight(c *gin.Context) {
	builder := NewResponseBuilder(c)
	weightID := c.Param("id")

	if err := h.weightsService.DeleteWeight(c.Request.Context(), currentUserID(c), weightID); err != nil {
		if isNotFound(err) {
			builder.Error(http.StatusNotFound, i18n.ErrKeyNotFound, err)
		} else {
			builder.Error(http.StatusInternalServerError, i18n.ErrKeyInternalError, err)
		}
		return
	}

	builder.SuccessOK(map[string]string{"weight_id": weightID})
}
