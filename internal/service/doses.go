package service

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/Askwho/mounjaro-hub/internal/domain/dto"
	"github.com/Askwho/mounjaro-hub/internal/domain/model"
	"github.com/Askwho/mounjaro-hub/internal/repository"
)

// ErrUnknownPen is returned when a dose references a pen that does not exist.
var ErrUnknownPen = errors.New("dose references an unknown pen")

// DosesService provides dose lifecycle operations.
type DosesService interface {
	// CreateDose records a new dose against an existing pen.
	CreateDose(ctx context.Context, userID primitive.ObjectID, req dto.CreateDoseRequest) (*model.Dose, error)
	// UpdateDose applies a partial update to a dose.
	UpdateDose(ctx context.Context, userID primitive.ObjectID, id string, req dto.UpdateDoseRequest) (*model.Dose, error)
	// ListDoses returns all doses sorted by date, each annotated with its
	// derived extraction flag.
	ListDoses(ctx context.Context, userID primitive.ObjectID) ([]dto.DoseResponse, error)
	// ListDosesByPen returns the doses for one pen sorted by date, annotated
	// like ListDoses.
	ListDosesByPen(ctx context.Context, userID primitive.ObjectID, penID string) ([]dto.DoseResponse, error)
	// DeleteDose removes a single dose.
	DeleteDose(ctx context.Context, userID primitive.ObjectID, id string) error
	// DeleteAllPlanned removes every planned dose, leaving completed history intact.
	DeleteAllPlanned(ctx context.Context, userID primitive.ObjectID) (int64, error)
}

// DosesServiceImpl implements DosesService.
type DosesServiceImpl struct {
	dosesRepo repository.DosesRepositoryInterface
	pensRepo  repository.PensRepositoryInterface
	decay     DecayCalculator
}

// NewDosesService creates a new doses service.
func NewDosesService(
	dosesRepo repository.DosesRepositoryInterface,
	pensRepo repository.PensRepositoryInterface,
	decay DecayCalculator,
) DosesService {
	return &DosesServiceImpl{
		dosesRepo: dosesRepo,
		pensRepo:  pensRepo,
		decay:     decay,
	}
}

// CreateDose records a new dose against an existing pen.
func (s *DosesServiceImpl) CreateDose(ctx context.Context, userID primitive.ObjectID, req dto.CreateDoseRequest) (*model.Dose, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	if _, err := s.pensRepo.GetByID(ctx, userID, req.PenID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrUnknownPen
		}
		return nil, err
	}

	dose, err := s.dosesRepo.Create(ctx, userID, req.PenID, req.Date, req.Mg, req.IsCompleted)
	if err != nil {
		return nil, err
	}

	s.invalidate()
	return dose, nil
}

// UpdateDose applies a partial update to a dose. A pen move is validated
// against the target pen before anything is written.
func (s *DosesServiceImpl) UpdateDose(ctx context.Context, userID primitive.ObjectID, id string, req dto.UpdateDoseRequest) (*model.Dose, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	update := repository.DoseUpdate{
		Date:        req.Date,
		Mg:          req.Mg,
		IsCompleted: req.IsCompleted,
	}

	if req.PenID != "" {
		if _, err := s.pensRepo.GetByID(ctx, userID, req.PenID); err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return nil, ErrUnknownPen
			}
			return nil, err
		}
		update.PenID = &req.PenID
	}

	dose, err := s.dosesRepo.Update(ctx, userID, id, update)
	if err != nil {
		return nil, err
	}

	s.invalidate()
	return dose, nil
}

// ListDoses returns all doses sorted by date, each annotated with whether
// drawing it needs a syringe given the usage before it.
func (s *DosesServiceImpl) ListDoses(ctx context.Context, userID primitive.ObjectID) ([]dto.DoseResponse, error) {
	doses, err := s.dosesRepo.List(ctx, userID)
	if err != nil {
		return nil, err
	}
	pens, err := s.pensRepo.List(ctx, userID)
	if err != nil {
		return nil, err
	}
	return annotateDoses(doses, pens), nil
}

// ListDosesByPen returns the doses for one pen sorted by date, annotated like
// ListDoses. The pen-scoped list is enough to derive the flag because only
// same-pen doses count toward prior usage.
func (s *DosesServiceImpl) ListDosesByPen(ctx context.Context, userID primitive.ObjectID, penID string) ([]dto.DoseResponse, error) {
	doses, err := s.dosesRepo.ListByPen(ctx, userID, penID)
	if err != nil {
		return nil, err
	}
	pens, err := s.pensRepo.List(ctx, userID)
	if err != nil {
		return nil, err
	}
	return annotateDoses(doses, pens), nil
}

// annotateDoses attaches the derived extraction flag to each dose.
func annotateDoses(doses []model.Dose, pens []model.Pen) []dto.DoseResponse {
	annotated := make([]dto.DoseResponse, 0, len(doses))
	for _, d := range doses {
		annotated = append(annotated, dto.DoseResponse{
			Dose:            d,
			RequiresSyringe: IsDoseSyringe(d, pens, doses),
		})
	}
	return annotated
}

// DeleteDose removes a single dose.
func (s *DosesServiceImpl) DeleteDose(ctx context.Context, userID primitive.ObjectID, id string) error {
	if err := s.dosesRepo.Delete(ctx, userID, id); err != nil {
		return err
	}
	s.invalidate()
	return nil
}

// DeleteAllPlanned removes every planned dose, leaving completed history intact.
func (s *DosesServiceImpl) DeleteAllPlanned(ctx context.Context, userID primitive.ObjectID) (int64, error) {
	deleted, err := s.dosesRepo.DeleteAllPlanned(ctx, userID)
	if err != nil {
		return 0, err
	}
	if deleted > 0 {
		s.invalidate()
	}
	return deleted, nil
}

// invalidate drops cached concentration curves after any dose mutation.
func (s *DosesServiceImpl) invalidate() {
	if s.decay != nil {
		s.decay.InvalidateCache()
	}
}
