package service

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/Askwho/mounjaro-hub/internal/repository"
)

// ErrRepositoryNotConfigured is returned when the repository is not configured.
var ErrRepositoryNotConfigured = errors.New("repository not configured")

// ErrInvalidPenSizes is returned when a size list is empty or contains
// non-positive entries.
var ErrInvalidPenSizes = errors.New("pen sizes must be positive")

// PenSizesService provides pen size catalog operations.
type PenSizesService interface {
	GetActive(ctx context.Context) (*repository.PenSizeConfig, error)
	Create(ctx context.Context, sizes []float64, createdBy string) (*repository.PenSizeConfig, error)
	Update(ctx context.Context, id primitive.ObjectID, sizes []float64, updatedBy string) (*repository.PenSizeConfig, error)
	List(ctx context.Context, limit int) ([]repository.PenSizeConfig, error)
}

// PenSizesServiceImpl implements PenSizesService.
type PenSizesServiceImpl struct {
	penSizesRepo repository.PenSizesRepositoryInterface
}

// NewPenSizesService creates a new pen sizes service.
func NewPenSizesService(penSizesRepo repository.PenSizesRepositoryInterface) PenSizesService {
	if penSizesRepo == nil {
		return &PenSizesServiceImpl{}
	}
	return &PenSizesServiceImpl{
		penSizesRepo: penSizesRepo,
	}
}

func (s *PenSizesServiceImpl) GetActive(ctx context.Context) (*repository.PenSizeConfig, error) {
	if s.penSizesRepo == nil {
		return nil, ErrRepositoryNotConfigured
	}
	return s.penSizesRepo.GetActive(ctx)
}

func (s *PenSizesServiceImpl) Create(ctx context.Context, sizes []float64, createdBy string) (*repository.PenSizeConfig, error) {
	if s.penSizesRepo == nil {
		return nil, ErrRepositoryNotConfigured
	}
	if err := validateSizes(sizes); err != nil {
		return nil, err
	}
	return s.penSizesRepo.Create(ctx, sizes, createdBy)
}

func (s *PenSizesServiceImpl) Update(ctx context.Context, id primitive.ObjectID, sizes []float64, updatedBy string) (*repository.PenSizeConfig, error) {
	if s.penSizesRepo == nil {
		return nil, ErrRepositoryNotConfigured
	}
	if err := validateSizes(sizes); err != nil {
		return nil, err
	}
	return s.penSizesRepo.Update(ctx, id, sizes, updatedBy)
}

func (s *PenSizesServiceImpl) List(ctx context.Context, limit int) ([]repository.PenSizeConfig, error) {
	if s.penSizesRepo == nil {
		return nil, ErrRepositoryNotConfigured
	}
	return s.penSizesRepo.List(ctx, limit)
}

func validateSizes(sizes []float64) error {
	if len(sizes) == 0 {
		return ErrInvalidPenSizes
	}
	for _, size := range sizes {
		if size <= 0 {
			return ErrInvalidPenSizes
		}
	}
	return nil
}
