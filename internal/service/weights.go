package service

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/Askwho/mounjaro-hub/internal/domain/dto"
	"github.com/Askwho/mounjaro-hub/internal/domain/model"
	"github.com/Askwho/mounjaro-hub/internal/repository"
)

// WeightsService provides weight tracking operations.
type WeightsService interface {
	// CreateWeight records a new weight entry.
	CreateWeight(ctx context.Context, userID primitive.ObjectID, req dto.CreateWeightRequest) (*model.Weight, error)
	// ListWeights returns all weight entries sorted by date.
	ListWeights(ctx context.Context, userID primitive.ObjectID) ([]model.Weight, error)
	// DeleteWeight removes a single weight entry.
	DeleteWeight(ctx context.Context, userID primitive.ObjectID, id string) error
	// Stats summarizes the weight history.
	Stats(ctx context.Context, userID primitive.ObjectID) (model.WeightStats, error)
}

// WeightsServiceImpl implements WeightsService.
type WeightsServiceImpl struct {
	weightsRepo repository.WeightsRepositoryInterface
}

// NewWeightsService creates a new weights service.
func NewWeightsService(weightsRepo repository.WeightsRepositoryInterface) WeightsService {
	return &WeightsServiceImpl{weightsRepo: weightsRepo}
}

// CreateWeight records a new weight entry.
func (s *WeightsServiceImpl) CreateWeight(ctx context.Context, userID primitive.ObjectID, req dto.CreateWeightRequest) (*model.Weight, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	return s.weightsRepo.Create(ctx, userID, req.Date, req.WeightKg, req.Notes)
}

// ListWeights returns all weight entries sorted by date.
func (s *WeightsServiceImpl) ListWeights(ctx context.Context, userID primitive.ObjectID) ([]model.Weight, error) {
	return s.weightsRepo.List(ctx, userID)
}

// DeleteWeight removes a single weight entry.
func (s *WeightsServiceImpl) DeleteWeight(ctx context.Context, userID primitive.ObjectID, id string) error {
	return s.weightsRepo.Delete(ctx, userID, id)
}

// Stats summarizes the weight history.
func (s *WeightsServiceImpl) Stats(ctx context.Context, userID primitive.ObjectID) (model.WeightStats, error) {
	entries, err := s.weightsRepo.List(ctx, userID)
	if err != nil {
		return model.WeightStats{}, err
	}
	return SummarizeWeights(entries), nil
}
