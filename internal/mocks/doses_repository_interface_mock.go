// Code generated manually. DO NOT EDIT.

package mocks

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/Askwho/mounjaro-hub/internal/domain/model"
	"github.com/Askwho/mounjaro-hub/internal/repository"
)

type MockDosesRepositoryInterface struct {
	mock.Mock
}

func (m *MockDosesRepositoryInterface) Create(ctx context.Context, userID primitive.ObjectID, penID string, date time.Time, mg float64, isCompleted bool) (*model.Dose, error) {
	args := m.Called(ctx, userID, penID, date, mg, isCompleted)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Dose), args.Error(1)
}

func (m *MockDosesRepositoryInterface) Update(ctx context.Context, userID primitive.ObjectID, id string, update repository.DoseUpdate) (*model.Dose, error) {
	args := m.Called(ctx, userID, id, update)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Dose), args.Error(1)
}

func (m *MockDosesRepositoryInterface) List(ctx context.Context, userID primitive.ObjectID) ([]model.Dose, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Dose), args.Error(1)
}

func (m *MockDosesRepositoryInterface) ListByPen(ctx context.Context, userID primitive.ObjectID, penID string) ([]model.Dose, error) {
	args := m.Called(ctx, userID, penID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Dose), args.Error(1)
}

func (m *MockDosesRepositoryInterface) Delete(ctx context.Context, userID primitive.ObjectID, id string) error {
	args := m.Called(ctx, userID, id)
	return args.Error(0)
}

func (m *MockDosesRepositoryInterface) DeleteByPen(ctx context.Context, userID primitive.ObjectID, penID string) (int64, error) {
	args := m.Called(ctx, userID, penID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockDosesRepositoryInterface) DeleteAllPlanned(ctx context.Context, userID primitive.ObjectID) (int64, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(int64), args.Error(1)
}
