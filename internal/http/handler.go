package http

import (
	"context"
	"net/http"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Askwho/mounjaro-hub/internal/domain/dto"
	"github.com/Askwho/mounjaro-hub/internal/i18n"
	"github.com/Askwho/mounjaro-hub/internal/middleware"
	"github.com/Askwho/mounjaro-hub/internal/service"
)

// defaultCurvePastDays and defaultCurveFutureDays bound the concentration
// curve when the client does not pass an explicit range. The future half
// covers planned doses so the projected series is visible by default.
const (
	defaultCurvePastDays   = 28
	defaultCurveFutureDays = 28
)

// penSizesCache provides thread-safe caching of the pen size catalog.
type penSizesCache struct {
	sizes     atomic.Value // holds []float64
	expiresAt atomic.Value // holds time.Time
	mu        sync.Mutex
	ttl       time.Duration
}

// newPenSizesCache creates a new pen sizes cache with the given TTL.
func newPenSizesCache(ttl time.Duration) *penSizesCache {
	c := &penSizesCache{ttl: ttl}
	c.expiresAt.Store(time.Time{})
	return c
}

// get returns cached pen sizes if valid, or nil if cache is expired/empty.
func (c *penSizesCache) get() []float64 {
	if exp := c.expiresAt.Load(); exp != nil {
		if expiresAt, ok := exp.(time.Time); ok && time.Now().Before(expiresAt) {
			if sizes := c.sizes.Load(); sizes != nil {
				if s, ok := sizes.([]float64); ok {
					return s
				}
			}
		}
	}
	return nil
}

// set stores pen sizes in the cache with TTL.
func (c *penSizesCache) set(sizes []float64) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if exp := c.expiresAt.Load(); exp != nil {
		if expiresAt, ok := exp.(time.Time); ok && time.Now().Before(expiresAt) {
			return // Another goroutine cached first.
		}
	}

	c.sizes.Store(sizes)
	c.expiresAt.Store(time.Now().Add(c.ttl))
}

// invalidate clears the cache.
func (c *penSizesCache) invalidate() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.expiresAt.Store(time.Time{})
}

// Handler provides HTTP handlers for the analytics routes.
type Handler struct {
	analytics       service.AnalyticsService
	penSizesService service.PenSizesService
	penSizesCache   *penSizesCache
}

// HandlerOption configures a Handler.
type HandlerOption func(*Handler)

// WithPenSizesCacheTTL sets the TTL for pen size catalog caching.
func WithPenSizesCacheTTL(ttl time.Duration) HandlerOption {
	return func(h *Handler) {
		h.penSizesCache = newPenSizesCache(ttl)
	}
}

// NewHandler creates a new Handler instance.
func NewHandler(analytics service.AnalyticsService, penSizesService service.PenSizesService, opts ...HandlerOption) *Handler {
	h := &Handler{
		analytics:       analytics,
		penSizesService: penSizesService,
		penSizesCache:   newPenSizesCache(30 * time.Second),
	}

	for _, opt := range opts {
		opt(h)
	}

	return h
}

// getPenSizes retrieves the pen size catalog from cache or database.
func (h *Handler) getPenSizes(ctx context.Context) []float64 {
	if sizes := h.penSizesCache.get(); sizes != nil {
		return sizes
	}

	if h.penSizesService == nil {
		return nil
	}

	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	config, err := h.penSizesService.GetActive(ctx)
	if err != nil || config == nil || len(config.Sizes) == 0 {
		return nil
	}

	h.penSizesCache.set(config.Sizes)
	return config.Sizes
}

// InvalidatePenSizesCache invalidates the pen size catalog cache.
// Call this when the catalog is updated.
func (h *Handler) InvalidatePenSizesCache() {
	h.penSizesCache.invalidate()
}

// SystemMetrics handles GET /api/metrics/system requests.
//
// @Summary      Portfolio metrics
// @Description  Computes the portfolio-wide derived metrics over every stored pen and dose: capacity totals, waste, per-pen reports and the at-risk subset. All figures are evaluated against a single timestamp captured when the request starts.
// @Tags         Metrics
// @Produce      json
// @Param        Authorization header string false "Bearer token (required if auth enabled)"
// @Success      200 {object} dto.SuccessResponse "Portfolio metrics"
// @Failure      401 {object} dto.ErrorResponse "Unauthorized - missing or invalid JWT token"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Security     BearerAuth
// @Router       /api/metrics/system [get]
func (h *Handler) SystemMetrics(c *gin.Context) {
	builder := NewResponseBuilder(c)

	system, err := h.analytics.SystemMetrics(c.Request.Context(), currentUserID(c))
	if err != nil {
		builder.Error(http.StatusInternalServerError, i18n.ErrKeyInternalError, err)
		return
	}

	builder.SuccessOK(system)
}

// PenMetrics handles GET /api/metrics/pens/:id requests.
//
// @Summary      Per-pen metrics
// @Description  Computes the full derived report for one pen: availability split, expiry state, waste and the risk assessment with its projection.
// @Tags         Metrics
// @Produce      json
// @Param        id path string true "Pen ID"
// @Param        Authorization header string false "Bearer token (required if auth enabled)"
// @Success      200 {object} dto.SuccessResponse "Pen metrics"
// @Failure      401 {object} dto.ErrorResponse "Unauthorized - missing or invalid JWT token"
// @Failure      404 {object} dto.ErrorResponse "Pen not found"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Security     BearerAuth
// @Router       /api/metrics/pens/{id} [get]
func (h *Handler) PenMetrics(c *gin.Context) {
	builder := NewResponseBuilder(c)

	metric, err := h.analytics.PenMetrics(c.Request.Context(), currentUserID(c), c.Param("id"))
	if err != nil {
		if isNotFound(err) {
			builder.Error(http.StatusNotFound, i18n.ErrKeyPenNotFound, err)
		} else {
			builder.Error(http.StatusInternalServerError, i18n.ErrKeyInternalError, err)
		}
		return
	}

	builder.SuccessOK(metric)
}

// ConcentrationCurve handles GET /api/concentration requests.
//
// @Summary      Concentration curve
// @Description  Computes the estimated active medication concentration per day over a date range, as an actual series (completed doses only) and a projected series (completed plus planned). Defaults to four weeks back and four weeks forward. Pass at to sample a single instant instead of a range.
// @Tags         Metrics
// @Produce      json
// @Param        at query string false "Sample a single instant (RFC 3339); from/to are ignored"
// @Param        from query string false "Range start (RFC 3339)"
// @Param        to query string false "Range end (RFC 3339)"
// @Param        Authorization header string false "Bearer token (required if auth enabled)"
// @Success      200 {object} dto.SuccessResponse "Daily concentration points"
// @Failure      400 {object} dto.ErrorResponse "Bad request - malformed or inverted range"
// @Failure      401 {object} dto.ErrorResponse "Unauthorized - missing or invalid JWT token"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Security     BearerAuth
// @Router       /api/concentration [get]
func (h *Handler) ConcentrationCurve(c *gin.Context) {
	builder := NewResponseBuilder(c)

	if raw := c.Query("at"); raw != "" {
		at, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequest, err)
			return
		}

		point, err := h.analytics.ConcentrationAt(c.Request.Context(), currentUserID(c), at)
		if err != nil {
			builder.Error(http.StatusInternalServerError, i18n.ErrKeyInternalError, err)
			return
		}
		builder.SuccessOK(point)
		return
	}

	now := time.Now().UTC()
	from := now.AddDate(0, 0, -defaultCurvePastDays)
	to := now.AddDate(0, 0, defaultCurveFutureDays)

	if raw := c.Query("from"); raw != "" {
		parsed, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequest, err)
			return
		}
		from = parsed
	}
	if raw := c.Query("to"); raw != "" {
		parsed, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequest, err)
			return
		}
		to = parsed
	}

	curve, err := h.analytics.ConcentrationCurve(c.Request.Context(), currentUserID(c), from, to)
	if err != nil {
		if err == service.ErrInvalidDateRange {
			builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidDateRange, err)
		} else {
			builder.Error(http.StatusInternalServerError, i18n.ErrKeyInternalError, err)
		}
		return
	}

	builder.SuccessOK(curve)
}

// Breakdown handles POST /api/breakdown requests.
//
// @Summary      Dose breakdown preview
// @Description  Computes how a dose splits between dial clicks and syringe draw given the pen size and the medication already used. Fully stateless: nothing is read from or written to storage.
// @Tags         Metrics
// @Accept       json
// @Produce      json
// @Param        request body dto.BreakdownRequest true "Pen size, prior usage and dose"
// @Param        Authorization header string false "Bearer token (required if auth enabled)"
// @Success      200 {object} dto.SuccessResponse "Breakdown result"
// @Failure      400 {object} dto.ErrorResponse "Bad request - invalid input"
// @Failure      401 {object} dto.ErrorResponse "Unauthorized - missing or invalid JWT token"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Security     BearerAuth
// @Router       /api/breakdown [post]
func (h *Handler) Breakdown(c *gin.Context) {
	builder := NewResponseBuilder(c)

	var req dto.BreakdownRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequestBody, err)
		return
	}

	if err := req.Validate(); err != nil {
		if _, ok := err.(*dto.ValidationError); ok {
			builder.ErrorWithMessage(http.StatusBadRequest, err.Error(), err)
		} else {
			builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequestBody, err)
		}
		return
	}

	// An unknown size still gets a breakdown; the catalog only gates stored
	// pens. Warn the client through the response payload instead.
	inCatalog := true
	if sizes := h.getPenSizes(c.Request.Context()); len(sizes) > 0 {
		inCatalog = false
		for _, size := range sizes {
			if size == req.PenSize {
				inCatalog = true
				break
			}
		}
	}

	breakdown := service.Breakdown(req.PenSize, req.UsedBefore, req.DoseMg)

	builder.SuccessOK(map[string]interface{}{
		"breakdown":       breakdown,
		"size_in_catalog": inCatalog,
	})
}

// Preview handles POST /api/preview requests.
//
// @Summary      Stateless portfolio preview
// @Description  Computes the same portfolio report as the stored metrics endpoint over a caller-supplied set of pens and doses, optionally pinned to a fixed reference time. Useful for what-if planning without persisting anything.
// @Tags         Metrics
// @Accept       json
// @Produce      json
// @Param        request body dto.PreviewRequest true "Inline portfolio"
// @Param        Authorization header string false "Bearer token (required if auth enabled)"
// @Success      200 {object} dto.SuccessResponse "Portfolio metrics"
// @Failure      400 {object} dto.ErrorResponse "Bad request - invalid input"
// @Failure      401 {object} dto.ErrorResponse "Unauthorized - missing or invalid JWT token"
// @Security     BearerAuth
// @Router       /api/preview [post]
func (h *Handler) Preview(c *gin.Context) {
	builder := NewResponseBuilder(c)

	var req dto.PreviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequestBody, err)
		return
	}

	var now time.Time
	if req.Now != nil {
		now = *req.Now
	}

	if ls := contextLoggingService(c); ls != nil {
		middleware.AuditLog(ls, c, "preview", "Portfolio preview requested", map[string]interface{}{
			"pen_count":  len(req.Pens),
			"dose_count": len(req.Doses),
			"pinned_now": req.Now != nil,
		})
	}

	builder.SuccessOK(h.analytics.PreviewSystemMetrics(req.Pens, req.Doses, now))
}
