// Code generated manually. DO NOT EDIT.

package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/Askwho/mounjaro-hub/internal/repository"
)

type MockPenSizesRepositoryInterface struct {
	mock.Mock
}

func (m *MockPenSizesRepositoryInterface) GetActive(ctx context.Context) (*repository.PenSizeConfig, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*repository.PenSizeConfig), args.Error(1)
}

func (m *MockPenSizesRepositoryInterface) Create(ctx context.Context, sizes []float64, createdBy string) (*repository.PenSizeConfig, error) {
	args := m.Called(ctx, sizes, createdBy)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*repository.PenSizeConfig), args.Error(1)
}

func (m *MockPenSizesRepositoryInterface) Update(ctx context.Context, id primitive.ObjectID, sizes []float64, updatedBy string) (*repository.PenSizeConfig, error) {
	args := m.Called(ctx, id, sizes, updatedBy)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*repository.PenSizeConfig), args.Error(1)
}

func (m *MockPenSizesRepositoryInterface) List(ctx context.Context, limit int) ([]repository.PenSizeConfig, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]repository.PenSizeConfig), args.Error(1)
}
