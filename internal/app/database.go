// Package app provides database initialization and setup.
package app

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/Askwho/mounjaro-hub/config"
	"github.com/Askwho/mounjaro-hub/internal/circuitbreaker"
	"github.com/Askwho/mounjaro-hub/internal/domain/model"
	"github.com/Askwho/mounjaro-hub/internal/repository"
	"github.com/Askwho/mounjaro-hub/internal/service"
)

// DatabaseComponents holds database-related components.
type DatabaseComponents struct {
	PensRepo                repository.PensRepositoryInterface
	DosesRepo               repository.DosesRepositoryInterface
	WeightsRepo             repository.WeightsRepositoryInterface
	SnapshotsRepo           repository.SnapshotsRepositoryInterface
	PenSizesRepo            repository.PenSizesRepositoryInterface
	LoggingService          service.LoggingService
	PenSizesCircuitBreaker  *circuitbreaker.CircuitBreaker
	LogsCircuitBreaker      *circuitbreaker.CircuitBreaker
	SnapshotsCircuitBreaker *circuitbreaker.CircuitBreaker
	UserRepo                repository.UserRepositoryInterface
	TokenRepo               repository.TokenRepositoryInterface
}

// InitializeDatabase initializes MongoDB connection and creates required repositories and services.
// Returns nil if database is disabled or connection fails.
func InitializeDatabase(cfg config.DatabaseConfig, defaultPenSizes []float64) *DatabaseComponents {
	if !cfg.Enabled {
		return nil
	}

	db, err := repository.NewMongoDB(cfg.URI, cfg.DatabaseName)
	if err != nil {
		log.Error().Err(err).Msg("Failed to connect to MongoDB - continuing without database")
		return nil
	}

	log.Info().Msg("Connected to MongoDB")

	// Set TTL for logs
	ttlDays := int(cfg.LogsTTL.Hours() / 24)
	if err := db.SetLogsTTL(context.Background(), ttlDays); err != nil {
		log.Warn().Err(err).Msg("Failed to set logs TTL index (may already exist)")
	}

	// Initialize circuit breakers
	penSizesCB := circuitbreaker.New(circuitbreaker.Config{
		FailureThreshold: cfg.CircuitBreakerFailureThreshold,
		SuccessThreshold: cfg.CircuitBreakerSuccessThreshold,
		Timeout:          cfg.CircuitBreakerTimeout,
		Name:             "mongodb-pen-sizes",
	})

	logsCB := circuitbreaker.New(circuitbreaker.Config{
		FailureThreshold: cfg.CircuitBreakerFailureThreshold,
		SuccessThreshold: cfg.CircuitBreakerSuccessThreshold,
		Timeout:          cfg.CircuitBreakerTimeout,
		Name:             "mongodb-logs",
	})

	snapshotsCB := circuitbreaker.New(circuitbreaker.Config{
		FailureThreshold: cfg.CircuitBreakerFailureThreshold,
		SuccessThreshold: cfg.CircuitBreakerSuccessThreshold,
		Timeout:          cfg.CircuitBreakerTimeout,
		Name:             "mongodb-snapshots",
	})

	// Initialize repositories
	logsRepo := repository.NewLogsRepository(db)
	logsRepoWithCB := repository.NewLogsRepositoryWithCircuitBreaker(logsRepo, logsCB)
	loggingService := service.NewLoggingService(logsRepoWithCB)

	penSizesRepo := repository.NewPenSizesRepository(db)
	penSizesRepoWithCB := repository.NewPenSizesRepositoryWithCircuitBreaker(penSizesRepo, penSizesCB)

	snapshotsRepo := repository.NewSnapshotsRepository(db)
	snapshotsRepoWithCB := repository.NewSnapshotsRepositoryWithCircuitBreaker(snapshotsRepo, snapshotsCB)

	pensRepo := repository.NewPensRepository(db)
	dosesRepo := repository.NewDosesRepository(db)
	weightsRepo := repository.NewWeightsRepository(db)

	// Initialize auth repositories
	userRepo := repository.NewUserRepository(db.Database)
	tokenRepo := repository.NewTokenRepository(db.Database)

	// Initialize default pen sizes if none exist
	if err := initializeDefaultPenSizes(penSizesRepoWithCB, defaultPenSizes); err != nil {
		log.Warn().Err(err).Msg("Failed to initialize default pen sizes")
	}

	return &DatabaseComponents{
		PensRepo:                pensRepo,
		DosesRepo:               dosesRepo,
		WeightsRepo:             weightsRepo,
		SnapshotsRepo:           snapshotsRepoWithCB,
		PenSizesRepo:            penSizesRepoWithCB,
		LoggingService:          loggingService,
		PenSizesCircuitBreaker:  penSizesCB,
		LogsCircuitBreaker:      logsCB,
		SnapshotsCircuitBreaker: snapshotsCB,
		UserRepo:                userRepo,
		TokenRepo:               tokenRepo,
	}
}

// initializeDefaultPenSizes creates the default pen size catalog if none exists.
func initializeDefaultPenSizes(repo repository.PenSizesRepositoryInterface, defaultSizes []float64) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	active, err := repo.GetActive(ctx)
	if err != nil {
		return err
	}

	if active == nil {
		// No active catalog, create default
		if len(defaultSizes) == 0 {
			defaultSizes = model.DefaultPenSizes
		}
		_, err := repo.Create(ctx, defaultSizes, "system")
		if err != nil {
			return err
		}
		log.Info().Floats64("sizes", defaultSizes).Msg("Created default pen sizes")
	}

	return nil
}
