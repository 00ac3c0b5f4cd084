// Package app provides service initialization.
package app

import (
	"github.com/Askwho/mounjaro-hub/config"
	"github.com/Askwho/mounjaro-hub/internal/service"
)

// ServiceComponents holds the stateless calculation engines.
type ServiceComponents struct {
	Calculator service.MetricsCalculator
	Decay      service.DecayCalculator
}

// InitializeServices initializes the metric and concentration engines.
func InitializeServices(cfg config.AnalyticsConfig) *ServiceComponents {
	var metricsOpts []service.MetricsOption
	if cfg.ExpiringSoonDays > 0 {
		metricsOpts = append(metricsOpts, service.WithExpiringSoonWindow(cfg.ExpiringSoonDays))
	}
	calculator := service.NewMetricsCalculatorService(metricsOpts...)

	var decayOpts []service.DecayOption
	if cfg.HalfLifeDays > 0 {
		decayOpts = append(decayOpts, service.WithHalfLife(cfg.HalfLifeDays))
	}
	if cfg.CacheSize > 0 {
		decayOpts = append(decayOpts, service.WithCurveCache(cfg.CacheSize, cfg.CacheTTL))
	}
	decay := service.NewDecayCalculatorService(decayOpts...)

	return &ServiceComponents{
		Calculator: calculator,
		Decay:      decay,
	}
}
