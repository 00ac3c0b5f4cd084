// Package app provides router configuration.
package app

import (
	"github.com/Askwho/mounjaro-hub/config"
	"github.com/Askwho/mounjaro-hub/internal/http"
	"github.com/Askwho/mounjaro-hub/internal/service"
)

// RouterComponents holds router-related components.
type RouterComponents struct {
	Handler       *http.Handler
	HealthHandler *http.HealthHandler
	Config        http.RouterConfig
}

// InitializeRouter initializes HTTP handlers and router configuration.
func InitializeRouter(
	engines *ServiceComponents,
	dbComponents *DatabaseComponents,
	cfg config.Config,
) *RouterComponents {
	var loggingService service.LoggingService
	if dbComponents != nil {
		loggingService = dbComponents.LoggingService
	}

	// The analytics service always exists: breakdown and preview are pure
	// calculations. Storage-backed operations additionally need repositories.
	var analytics service.AnalyticsService
	var pensService service.PensService
	var dosesService service.DosesService
	var weightsService service.WeightsService
	var snapshotsService service.SnapshotsService
	var penSizesService service.PenSizesService

	if dbComponents != nil {
		analyticsImpl := service.NewAnalyticsService(
			dbComponents.PensRepo,
			dbComponents.DosesRepo,
			engines.Calculator,
			engines.Decay,
		)
		analytics = analyticsImpl
		pensService = service.NewPensService(dbComponents.PensRepo, dbComponents.DosesRepo, dbComponents.PenSizesRepo, engines.Decay)
		dosesService = service.NewDosesService(dbComponents.DosesRepo, dbComponents.PensRepo, engines.Decay)
		weightsService = service.NewWeightsService(dbComponents.WeightsRepo)
		snapshotsService = service.NewSnapshotsService(analyticsImpl, dbComponents.SnapshotsRepo)
		penSizesService = service.NewPenSizesService(dbComponents.PenSizesRepo)
	} else {
		analytics = service.NewAnalyticsService(nil, nil, engines.Calculator, engines.Decay)
	}

	handler := http.NewHandler(analytics, penSizesService)
	healthHandler := http.NewHealthHandler()

	// Register circuit breakers for health monitoring
	if dbComponents != nil {
		if dbComponents.PenSizesCircuitBreaker != nil {
			healthHandler.RegisterCircuitBreaker("mongodb_pen_sizes", dbComponents.PenSizesCircuitBreaker)
		}
		if dbComponents.LogsCircuitBreaker != nil {
			healthHandler.RegisterCircuitBreaker("mongodb_logs", dbComponents.LogsCircuitBreaker)
		}
		if dbComponents.SnapshotsCircuitBreaker != nil {
			healthHandler.RegisterCircuitBreaker("mongodb_snapshots", dbComponents.SnapshotsCircuitBreaker)
		}
	}

	// Initialize authentication service
	var authService service.AuthService
	if cfg.Auth.Enabled && dbComponents != nil && dbComponents.UserRepo != nil {
		tokenService := service.NewTokenService(dbComponents.TokenRepo, service.NewTokenConfigFromAuthConfig(cfg.Auth))
		authService = service.NewAuthService(dbComponents.UserRepo, tokenService)
	}

	routerCfg := http.RouterConfig{
		RateLimit:        cfg.Server.RateLimit,
		RateWindow:       cfg.Server.RateWindow,
		EnableAuth:       cfg.Auth.Enabled,
		APIKeys:          cfg.Auth.APIKeys,
		CORSOrigins:      cfg.Server.CORSOrigins,
		SwaggerUser:      cfg.Server.SwaggerUser,
		SwaggerPass:      cfg.Server.SwaggerPass,
		LoggingService:   loggingService,
		AuthService:      authService,
		AnalyticsService: analytics,
		PensService:      pensService,
		DosesService:     dosesService,
		WeightsService:   weightsService,
		SnapshotsService: snapshotsService,
		PenSizesService:  penSizesService,
	}

	return &RouterComponents{
		Handler:       handler,
		HealthHandler: healthHandler,
		Config:        routerCfg,
	}
}
