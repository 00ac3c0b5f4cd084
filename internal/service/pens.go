package service

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/Askwho/mounjaro-hub/internal/domain/dto"
	"github.com/Askwho/mounjaro-hub/internal/domain/model"
	"github.com/Askwho/mounjaro-hub/internal/repository"
)

// ErrInvalidPenSize is returned when a pen size is not in the configured catalog.
var ErrInvalidPenSize = errors.New("pen size is not in the configured catalog")

// PensService provides pen lifecycle operations.
type PensService interface {
	// CreatePen registers a new pen after validating its size against the catalog.
	CreatePen(ctx context.Context, userID primitive.ObjectID, req dto.CreatePenRequest) (*model.Pen, error)
	// GetPen returns a single pen by ID.
	GetPen(ctx context.Context, userID primitive.ObjectID, id string) (*model.Pen, error)
	// ListPens returns all pens sorted by purchase date.
	ListPens(ctx context.Context, userID primitive.ObjectID) ([]model.Pen, error)
	// DeletePen removes a pen and every dose recorded against it.
	DeletePen(ctx context.Context, userID primitive.ObjectID, id string) (int64, error)
	// AllowedSizes returns the active pen size catalog.
	AllowedSizes(ctx context.Context) []float64
}

// PensServiceImpl implements PensService.
type PensServiceImpl struct {
	pensRepo     repository.PensRepositoryInterface
	dosesRepo    repository.DosesRepositoryInterface
	penSizesRepo repository.PenSizesRepositoryInterface
	decay        DecayCalculator
}

// NewPensService creates a new pens service.
func NewPensService(
	pensRepo repository.PensRepositoryInterface,
	dosesRepo repository.DosesRepositoryInterface,
	penSizesRepo repository.PenSizesRepositoryInterface,
	decay DecayCalculator,
) PensService {
	return &PensServiceImpl{
		pensRepo:     pensRepo,
		dosesRepo:    dosesRepo,
		penSizesRepo: penSizesRepo,
		decay:        decay,
	}
}

// AllowedSizes returns the active pen size catalog, falling back to the
// built-in defaults when no configuration is stored or the store is
// unavailable.
func (s *PensServiceImpl) AllowedSizes(ctx context.Context) []float64 {
	if s.penSizesRepo == nil {
		return model.DefaultPenSizes
	}
	cfg, err := s.penSizesRepo.GetActive(ctx)
	if err != nil || cfg == nil || len(cfg.Sizes) == 0 {
		return model.DefaultPenSizes
	}
	return cfg.Sizes
}

// CreatePen registers a new pen after validating its size against the catalog.
func (s *PensServiceImpl) CreatePen(ctx context.Context, userID primitive.ObjectID, req dto.CreatePenRequest) (*model.Pen, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	allowed := false
	for _, size := range s.AllowedSizes(ctx) {
		if deci(size) == deci(req.Size) {
			allowed = true
			break
		}
	}
	if !allowed {
		return nil, fmt.Errorf("%w: %.1f mg", ErrInvalidPenSize, req.Size)
	}

	return s.pensRepo.Create(ctx, userID, req.Size, req.PurchaseDate, req.ExpirationDate, req.Notes)
}

// GetPen returns a single pen by ID.
func (s *PensServiceImpl) GetPen(ctx context.Context, userID primitive.ObjectID, id string) (*model.Pen, error) {
	return s.pensRepo.GetByID(ctx, userID, id)
}

// ListPens returns all pens sorted by purchase date.
func (s *PensServiceImpl) ListPens(ctx context.Context, userID primitive.ObjectID) ([]model.Pen, error) {
	return s.pensRepo.List(ctx, userID)
}

// DeletePen removes a pen and every dose recorded against it. The dose
// cascade runs first so a failed pen delete never leaves orphaned doses
// pointing at a pen that no longer exists.
func (s *PensServiceImpl) DeletePen(ctx context.Context, userID primitive.ObjectID, id string) (int64, error) {
	if _, err := s.pensRepo.GetByID(ctx, userID, id); err != nil {
		return 0, err
	}

	deleted, err := s.dosesRepo.DeleteByPen(ctx, userID, id)
	if err != nil {
		return 0, err
	}

	if err := s.pensRepo.Delete(ctx, userID, id); err != nil {
		return deleted, err
	}

	if s.decay != nil {
		s.decay.InvalidateCache()
	}
	return deleted, nil
}
