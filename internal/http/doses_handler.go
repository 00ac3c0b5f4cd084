package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Askwho/mounjaro-hub/internal/domain/dto"
	"github.com/Askwho/mounjaro-hub/internal/i18n"
	"github.com/Askwho/mounjaro-hub/internal/middleware"
	"github.com/Askwho/mounjaro-hub/internal/service"
)

// DosesHandler provides HTTP handlers for dose routes.
type DosesHandler struct {
	dosesService service.DosesService
}

// NewDosesHandler creates a new DosesHandler instance.
func NewDosesHandler(dosesService service.DosesService) *DosesHandler {
	return &DosesHandler{dosesService: dosesService}
}

// CreateDose handles POST /api/doses requests.
//
// @Summary      Record a dose
// @Description  Records a planned or completed dose against an existing pen.
// @Tags         Doses
// @Accept       json
// @Produce      json
// @Param        request body dto.CreateDoseRequest true "Dose information"
// @Param        Authorization header string false "Bearer token (required if auth enabled)"
// @Success      201 {object} dto.SuccessResponse "Created dose"
// @Failure      400 {object} dto.ErrorResponse "Bad request - invalid input or unknown pen"
// @Failure      401 {object} dto.ErrorResponse "Unauthorized - missing or invalid JWT token"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Security     BearerAuth
// @Router       /api/doses [post]
func (h *DosesHandler) CreateDose(c *gin.Context) {
	builder := NewResponseBuilder(c)

	var req dto.CreateDoseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequestBody, err)
		return
	}

	dose, err := h.dosesService.CreateDose(c.Request.Context(), currentUserID(c), req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrUnknownPen):
			builder.Error(http.StatusBadRequest, i18n.ErrKeyPenNotFound, err)
		case isValidationError(err):
			builder.ErrorWithMessage(http.StatusBadRequest, err.Error(), err)
		default:
			builder.Error(http.StatusInternalServerError, i18n.ErrKeyInternalError, err)
		}
		return
	}

	if ls := contextLoggingService(c); ls != nil {
		middleware.AuditLog(ls, c, "create_dose", "Dose recorded", map[string]interface{}{
			"dose_id":      dose.ID,
			"pen_id":       dose.PenID,
			"mg":           dose.Mg,
			"is_completed": dose.IsCompleted,
		})
	}

	builder.SuccessCreated(dose)
}

// UpdateDose handles PUT /api/doses/:id requests.
//
// @Summary      Edit a dose
// @Description  Applies a partial update to a dose. Omitted fields keep their stored values; is_completed uses a JSON boolean so a completed dose can be reverted to planned.
// @Tags         Doses
// @Accept       json
// @Produce      json
// @Param        id path string true "Dose ID"
// @Param        request body dto.UpdateDoseRequest true "Fields to update"
// @Param        Authorization header string false "Bearer token (required if auth enabled)"
// @Success      200 {object} dto.SuccessResponse "Updated dose"
// @Failure      400 {object} dto.ErrorResponse "Bad request - invalid input or unknown pen"
// @Failure      401 {object} dto.ErrorResponse "Unauthorized - missing or invalid JWT token"
// @Failure      404 {object} dto.ErrorResponse "Dose not found"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Security     BearerAuth
// @Router       /api/doses/{id} [put]
func (h *DosesHandler) UpdateDose(c *gin.Context) {
	builder := NewResponseBuilder(c)

	var req dto.UpdateDoseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequestBody, err)
		return
	}

	dose, err := h.dosesService.UpdateDose(c.Request.Context(), currentUserID(c), c.Param("id"), req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrUnknownPen):
			builder.Error(http.StatusBadRequest, i18n.ErrKeyPenNotFound, err)
		case isValidationError(err):
			builder.ErrorWithMessage(http.StatusBadRequest, err.Error(), err)
		case isNotFound(err):
			builder.Error(http.StatusNotFound, i18n.ErrKeyNotFound, err)
		default:
			builder.Error(http.StatusInternalServerError, i18n.ErrKeyInternalError, err)
		}
		return
	}

	if ls := contextLoggingService(c); ls != nil {
		middleware.AuditLog(ls, c, "update_dose", "Dose updated", map[string]interface{}{
			"dose_id": dose.ID,
		})
	}

	builder.SuccessOK(dose)
}

// ListDoses handles GET /api/doses requests.
//
// @Summary      List doses
// @Description  Returns every dose sorted by date, each annotated with requires_syringe (whether drawing it reaches past the pen's click capacity). Pass pen_id to filter to one pen.
// @Tags         Doses
// @Produce      json
// @Param        pen_id query string false "Filter by pen ID"
// @Param        Authorization header string false "Bearer token (required if auth enabled)"
// @Success      200 {object} dto.SuccessResponse "Doses"
// @Failure      401 {object} dto.ErrorResponse "Unauthorized - missing or invalid JWT token"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Security     BearerAuth
// @Router       /api/doses [get]
func (h *DosesHandler) ListDoses(c *gin.Context) {
	builder := NewResponseBuilder(c)
	userID := currentUserID(c)

	if penID := c.Query("pen_id"); penID != "" {
		doses, err := h.dosesService.ListDosesByPen(c.Request.Context(), userID, penID)
		if err != nil {
			builder.Error(http.StatusInternalServerError, i18n.ErrKeyInternalError, err)
			return
		}
		builder.SuccessOK(doses)
		return
	}

	doses, err := h.dosesService.ListDoses(c.Request.Context(), userID)
	if err != nil {
		builder.Error(http.StatusInternalServerError, i18n.ErrKeyInternalError, err)
		return
	}

	builder.SuccessOK(doses)
}

// DeleteDose handles DELETE /api/doses/:id requests.
//
// @Summary      Delete a dose
// @Description  Removes a single dose.
// @Tags         Doses
// @Produce      json
// @Param        id path string true "Dose ID"
// @Param        Authorization header string false "Bearer token (required if auth enabled)"
// @Success      200 {object} dto.SuccessResponse "Deletion confirmation"
// @Failure      401 {object} dto.ErrorResponse "Unauthorized - missing or invalid JWT token"
// @Failure      404 {object} dto.ErrorResponse "Dose not found"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Security     BearerAuth
// @Router       /api/doses/{id} [delete]
func (h *DosesHandler) DeleteDose(c *gin.Context) {
	builder := NewResponseBuilder(c)
	doseID := c.Param("id")

	if err := h.dosesService.DeleteDose(c.Request.Context(), currentUserID(c), doseID); err != nil {
		if isNotFound(err) {
			builder.Error(http.StatusNotFound, i18n.ErrKeyNotFound, err)
		} else {
			builder.Error(http.StatusInternalServerError, i18n.ErrKeyInternalError, err)
		}
		return
	}

	if ls := contextLoggingService(c); ls != nil {
		middleware.AuditLog(ls, c, "delete_dose", "Dose deleted", map[string]interface{}{
			"dose_id": doseID,
		})
	}

	builder.SuccessOK(map[string]string{"dose_id": doseID})
}

// DeleteAllPlanned handles DELETE /api/doses/planned requests.
//
// @Summary      Clear planned doses
// @Description  Removes every planned dose, leaving completed history intact. Used to reset a schedule before replanning.
// @Tags         Doses
// @Produce      json
// @Param        Authorization header string false "Bearer token (required if auth enabled)"
// @Success      200 {object} dto.SuccessResponse "Count of removed doses"
// @Failure      401 {object} dto.ErrorResponse "Unauthorized - missing or invalid JWT token"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Security     BearerAuth
// @Router       /api/doses/planned [delete]
func (h *DosesHandler) DeleteAllPlanned(c *gin.Context) {
	builder := NewResponseBuilder(c)

	deleted, err := h.dosesService.DeleteAllPlanned(c.Request.Context(), currentUserID(c))
	if err != nil {
		builder.Error(http.StatusInternalServerError, i18n.ErrKeyInternalError, err)
		return
	}

	if ls := contextLoggingService(c); ls != nil {
		middleware.AuditLog(ls, c, "delete_planned_doses", "Planned doses cleared", map[string]interface{}{
			"deleted": deleted,
		})
	}

	builder.SuccessOK(map[string]int64{"deleted": deleted})
}
