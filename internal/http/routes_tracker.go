package http

import (
	"github.com/gin-gonic/gin"
)

// TrackerRoutes handles registration of the pen tracking routes: pens,
// doses, weights, analytics, snapshots and the pen size catalog.
type TrackerRoutes struct {
	handler          *Handler
	storageBacked    bool
	pensHandler      *PensHandler
	dosesHandler     *DosesHandler
	weightsHandler   *WeightsHandler
	snapshotsHandler *SnapshotsHandler
	penSizesHandler  *PenSizesHandler
}

// NewTrackerRoutes creates a new TrackerRoutes instance from the configured services.
func NewTrackerRoutes(handler *Handler, cfg *RouterConfig) *TrackerRoutes {
	routes := &TrackerRoutes{
		handler: handler,
		// Metrics and concentration need the stores behind them. Breakdown
		// and preview are pure functions of the request and stay available
		// even when storage is disabled.
		storageBacked: cfg.PensService != nil,
	}

	if cfg.PensService != nil {
		routes.pensHandler = NewPensHandler(cfg.PensService)
	}
	if cfg.DosesService != nil {
		routes.dosesHandler = NewDosesHandler(cfg.DosesService)
	}
	if cfg.WeightsService != nil {
		routes.weightsHandler = NewWeightsHandler(cfg.WeightsService)
	}
	if cfg.SnapshotsService != nil {
		routes.snapshotsHandler = NewSnapshotsHandler(cfg.SnapshotsService)
	}
	if cfg.PenSizesService != nil {
		routes.penSizesHandler = NewPenSizesHandler(cfg.PenSizesService, handler)
	}

	return routes
}

// RegisterPublicRoutes registers tracker routes without authentication.
func (r *TrackerRoutes) RegisterPublicRoutes(rg *gin.RouterGroup) {
	r.register(rg)
}

// RegisterProtectedRoutes registers tracker routes on a JWT-protected group.
func (r *TrackerRoutes) RegisterProtectedRoutes(protected *gin.RouterGroup, _ *RouterConfig) {
	r.register(protected)
}

// register attaches every tracker route to the given group. The same set is
// used in public and protected mode; only the group's middleware differs.
func (r *TrackerRoutes) register(rg *gin.RouterGroup) {
	if r.handler != nil {
		rg.POST("/breakdown", r.handler.Breakdown)
		rg.POST("/preview", r.handler.Preview)

		if r.storageBacked {
			rg.GET("/metrics/system", r.handler.SystemMetrics)
			rg.GET("/metrics/pens/:id", r.handler.PenMetrics)
			rg.GET("/concentration", r.handler.ConcentrationCurve)
		}
	}

	if r.pensHandler != nil {
		rg.POST("/pens", r.pensHandler.CreatePen)
		rg.GET("/pens", r.pensHandler.ListPens)
		rg.GET("/pens/:id", r.pensHandler.GetPen)
		rg.DELETE("/pens/:id", r.pensHandler.DeletePen)
	}

	if r.dosesHandler != nil {
		rg.POST("/doses", r.dosesHandler.CreateDose)
		rg.GET("/doses", r.dosesHandler.ListDoses)
		rg.PUT("/doses/:id", r.dosesHandler.UpdateDose)
		rg.DELETE("/doses/planned", r.dosesHandler.DeleteAllPlanned)
		rg.DELETE("/doses/:id", r.dosesHandler.DeleteDose)
	}

	if r.weightsHandler != nil {
		rg.POST("/weights", r.weightsHandler.CreateWeight)
		rg.GET("/weights", r.weightsHandler.ListWeights)
		rg.GET("/weights/stats", r.weightsHandler.WeightStats)
		rg.DELETE("/weights/:id", r.weightsHandler.DeleteWeight)
	}

	if r.snapshotsHandler != nil {
		rg.POST("/snapshots/capture", r.snapshotsHandler.Capture)
		rg.GET("/snapshots/pens/:id", r.snapshotsHandler.PenHistory)
		rg.GET("/snapshots/system", r.snapshotsHandler.SystemHistory)
	}

	if r.penSizesHandler != nil {
		rg.GET("/pen-sizes", r.penSizesHandler.GetActivePenSizes)
		rg.PUT("/pen-sizes", r.penSizesHandler.UpdatePenSizes)
		rg.GET("/pen-sizes/history", r.penSizesHandler.ListPenSizes)
	}
}

// GetHandler returns the underlying analytics handler.
func (r *TrackerRoutes) GetHandler() *Handler {
	return r.handler
}
