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

// PensHandler provides HTTP handlers for pen routes.
type PensHandler struct {
	pensService service.PensService
}

// NewPensHandler creates a new PensHandler instance.
func NewPensHandler(pensService service.PensService) *PensHandler {
	return &PensHandler{pensService: pensService}
}

// CreatePen handles POST /api/pens requests.
//
// @Summary      Register a pen
// @Description  Registers a new injector pen. The size must be one of the configured catalog sizes and the expiration date must not precede the purchase date.
// @Tags         Pens
// @Accept       json
// @Produce      json
// @Param        request body dto.CreatePenRequest true "Pen information"
// @Param        Authorization header string false "Bearer token (required if auth enabled)"
// @Success      201 {object} dto.SuccessResponse "Created pen"
// @Failure      400 {object} dto.ErrorResponse "Bad request - invalid input"
// @Failure      401 {object} dto.ErrorResponse "Unauthorized - missing or invalid JWT token"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Security     BearerAuth
// @Router       /api/pens [post]
func (h *PensHandler) CreatePen(c *gin.Context) {
	builder := NewResponseBuilder(c)

	var req dto.CreatePenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequestBody, err)
		return
	}

	pen, err := h.pensService.CreatePen(c.Request.Context(), currentUserID(c), req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidPenSize):
			builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidPenSize, err)
		case isValidationError(err):
			builder.ErrorWithMessage(http.StatusBadRequest, err.Error(), err)
		default:
			builder.Error(http.StatusInternalServerError, i18n.ErrKeyInternalError, err)
		}
		return
	}

	if ls := contextLoggingService(c); ls != nil {
		middleware.AuditLog(ls, c, "create_pen", "Pen registered", map[string]interface{}{
			"pen_id": pen.ID,
			"size":   pen.Size,
		})
	}

	builder.SuccessCreated(pen)
}

// ListPens handles GET /api/pens requests.
//
// @Summary      List pens
// @Description  Returns every pen sorted by purchase date.
// @Tags         Pens
// @Produce      json
// @Param        Authorization header string false "Bearer token (required if auth enabled)"
// @Success      200 {object} dto.SuccessResponse "Pens"
// @Failure      401 {object} dto.ErrorResponse "Unauthorized - missing or invalid JWT token"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Security     BearerAuth
// @Router       /api/pens [get]
func (h *PensHandler) ListPens(c *gin.Context) {
	builder := NewResponseBuilder(c)

	pens, err := h.pensService.ListPens(c.Request.Context(), currentUserID(c))
	if err != nil {
		builder.Error(http.StatusInternalServerError, i18n.ErrKeyInternalError, err)
		return
	}

	builder.SuccessOK(pens)
}

// GetPen handles GET /api/pens/:id requests.
//
// @Summary      Get a pen
// @Description  Returns a single pen by ID.
// @Tags         Pens
// @Produce      json
// @Param        id path string true "Pen ID"
// @Param        Authorization header string false "Bearer token (required if auth enabled)"
// @Success      200 {object} dto.SuccessResponse "Pen"
// @Failure      401 {object} dto.ErrorResponse "Unauthorized - missing or invalid JWT token"
// @Failure      404 {object} dto.ErrorResponse "Pen not found"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Security     BearerAuth
// @Router       /api/pens/{id} [get]
func (h *PensHandler) GetPen(c *gin.Context) {
	builder := NewResponseBuilder(c)

	pen, err := h.pensService.GetPen(c.Request.Context(), currentUserID(c), c.Param("id"))
	if err != nil {
		if isNotFound(err) {
			builder.Error(http.StatusNotFound, i18n.ErrKeyPenNotFound, err)
		} else {
			builder.Error(http.StatusInternalServerError, i18n.ErrKeyInternalError, err)
		}
		return
	}

	builder.SuccessOK(pen)
}

// DeletePen handles DELETE /api/pens/:id requests.
//
// @Summary      Delete a pen
// @Description  Deletes a pen together with every dose recorded against it. The response reports how many doses were removed by the cascade.
// @Tags         Pens
// @Produce      json
// @Param        id path string true "Pen ID"
// @Param        Authorization header string false "Bearer token (required if auth enabled)"
// @Success      200 {object} dto.SuccessResponse "Deletion summary"
// @Failure      401 {object} dto.ErrorResponse "Unauthorized - missing or invalid JWT token"
// @Failure      404 {object} dto.ErrorResponse "Pen not found"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Security     BearerAuth
// @Router       /api/pens/{id} [delete]
func (h *PensHandler) DeletePen(c *gin.Context) {
	builder := NewResponseBuilder(c)
	penID := c.Param("id")

	deletedDoses, err := h.pensService.DeletePen(c.Request.Context(), currentUserID(c), penID)
	if err != nil {
		if isNotFound(err) {
			builder.Error(http.StatusNotFound, i18n.ErrKeyPenNotFound, err)
		} else {
			builder.Error(http.StatusInternalServerError, i18n.ErrKeyInternalError, err)
		}
		return
	}

	if ls := contextLoggingService(c); ls != nil {
		middleware.AuditLog(ls, c, "delete_pen", "Pen deleted", map[string]interface{}{
			"pen_id":        penID,
			"deleted_doses": deletedDoses,
		})
	}

	builder.SuccessOK(map[string]interface{}{
		"pen_id":        penID,
		"deleted_doses": deletedDoses,
	})
}

// isValidationError reports whether err is a request validation error.
func isValidationError(err error) bool {
	var ve *dto.ValidationError
	return errors.As(err, &ve)
}
