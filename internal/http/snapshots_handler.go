package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Askwho/mounjaro-hub/internal/i18n"
	"github.com/Askwho/mounjaro-hub/internal/middleware"
	"github.com/Askwho/mounjaro-hub/internal/service"
)

// SnapshotsHandler provides HTTP handlers for metric snapshot routes.
type SnapshotsHandler struct {
	snapshotsService service.SnapshotsService
}

// NewSnapshotsHandler creates a new SnapshotsHandler instance.
func NewSnapshotsHandler(snapshotsService service.SnapshotsService) *SnapshotsHandler {
	return &SnapshotsHandler{snapshotsService: snapshotsService}
}

// Capture handles POST /api/snapshots/capture requests.
//
// @Summary      Capture metric snapshots
// @Description  Computes current metrics and stores one snapshot per pen plus a portfolio snapshot, keyed by the capture day. Capturing twice on the same day overwrites the earlier snapshot.
// @Tags         Snapshots
// @Produce      json
// @Param        Authorization header string false "Bearer token (required if auth enabled)"
// @Success      200 {object} dto.SuccessResponse "Capture confirmation"
// @Failure      401 {object} dto.ErrorResponse "Unauthorized - missing or invalid JWT token"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Security     BearerAuth
// @Router       /api/snapshots/capture [post]
func (h *SnapshotsHandler) Capture(c *gin.Context) {
	builder := NewResponseBuilder(c)

	if err := h.snapshotsService.Capture(c.Request.Context(), currentUserID(c)); err != nil {
		builder.Error(http.StatusInternalServerError, i18n.ErrKeyInternalError, err)
		return
	}

	if ls := contextLoggingService(c); ls != nil {
		middleware.AuditLog(ls, c, "save_snapshot", "Metric snapshots captured", nil)
	}

	builder.SuccessOK(map[string]string{"status": "captured"})
}

// PenHistory handles GET /api/snapshots/pens/:id requests.
//
// @Summary      Pen snapshot history
// @Description  Returns stored per-pen metric snapshots in a date range, oldest first. Open-ended ranges are allowed.
// @Tags         Snapshots
// @Produce      json
// @Param        id path string true "Pen ID"
// @Param        from query string false "Range start (RFC 3339)"
// @Param        to query string false "Range end (RFC 3339)"
// @Param        Authorization header string false "Bearer token (required if auth enabled)"
// @Success      200 {object} dto.SuccessResponse "Pen snapshots"
// @Failure      400 {object} dto.ErrorResponse "Bad request - malformed range"
// @Failure      401 {object} dto.ErrorResponse "Unauthorized - missing or invalid JWT token"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Security     BearerAuth
// @Router       /api/snapshots/pens/{id} [get]
func (h *SnapshotsHandler) PenHistory(c *gin.Context) {
	builder := NewResponseBuilder(c)

	from, to, ok := parseRange(c, builder)
	if !ok {
		return
	}

	snapshots, err := h.snapshotsService.PenHistory(c.Request.Context(), currentUserID(c), c.Param("id"), from, to)
	if err != nil {
		builder.Error(http.StatusInternalServerError, i18n.ErrKeyInternalError, err)
		return
	}

	builder.SuccessOK(snapshots)
}

// SystemHistory handles GET /api/snapshots/system requests.
//
// @Summary      Portfolio snapshot history
// @Description  Returns stored portfolio metric snapshots in a date range, oldest first.
// @Tags         Snapshots
// @Produce      json
// @Param        from query string false "Range start (RFC 3339)"
// @Param        to query string false "Range end (RFC 3339)"
// @Param        Authorization header string false "Bearer token (required if auth enabled)"
// @Success      200 {object} dto.SuccessResponse "Portfolio snapshots"
// @Failure      400 {object} dto.ErrorResponse "Bad request - malformed range"
// @Failure      401 {object} dto.ErrorResponse "Unauthorized - missing or invalid JWT token"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Security     BearerAuth
// @Router       /api/snapshots/system [get]
func (h *SnapshotsHandler) SystemHistory(c *gin.Context) {
	builder := NewResponseBuilder(c)

	from, to, ok := parseRange(c, builder)
	if !ok {
		return
	}

	snapshots, err := h.snapshotsService.SystemHistory(c.Request.Context(), currentUserID(c), from, to)
	if err != nil {
		builder.Error(http.StatusInternalServerError, i18n.ErrKeyInternalError, err)
		return
	}

	builder.SuccessOK(snapshots)
}

// parseRange reads optional from/to query parameters. Zero times mean an
// open-ended bound. Responds with 400 and returns ok=false on a parse error.
func parseRange(c *gin.Context, builder *ResponseBuilder) (from, to time.Time, ok bool) {
	if raw := c.Query("from"); raw != "" {
		parsed, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequest, err)
			return time.Time{}, time.Time{}, false
		}
		from = parsed
	}
	if raw := c.Query("to"); raw != "" {
		parsed, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequest, err)
			return time.Time{}, time.Time{}, false
		}
		to = parsed
	}
	return from, to, true
}
