// Package app provides application initialization and dependency injection.
package app

import (
	"github.com/gin-gonic/gin"

	"github.com/Askwho/mounjaro-hub/config"
	"github.com/Askwho/mounjaro-hub/internal/domain/model"
	"github.com/Askwho/mounjaro-hub/internal/http"
)

// InitializeApp creates and wires all application dependencies.
// This is the main orchestration function that initializes all components.
func InitializeApp(cfg config.Config) *gin.Engine {
	// Initialize logger first (needed by other components)
	InitializeLogger()

	// Initialize the calculation engines
	engines := InitializeServices(cfg.Analytics)

	// Initialize database components (MongoDB repositories and services)
	defaultPenSizes := cfg.Analytics.PenSizes
	if len(defaultPenSizes) == 0 {
		defaultPenSizes = model.DefaultPenSizes
	}
	dbComponents := InitializeDatabase(cfg.Database, defaultPenSizes)

	// Initialize router components (handlers and configuration)
	routerComponents := InitializeRouter(engines, dbComponents, cfg)

	return http.NewRouter(routerComponents.Handler, routerComponents.HealthHandler, routerComponents.Config)
}
