// Code generated manually. DO NOT EDIT.

package mocks

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/Askwho/mounjaro-hub/internal/domain/model"
)

type MockPensRepositoryInterface struct {
	mock.Mock
}

func (m *MockPensRepositoryInterface) Create(ctx context.Context, userID primitive.ObjectID, size float64, purchaseDate, expirationDate time.Time, notes string) (*model.Pen, error) {
	args := m.Called(ctx, userID, size, purchaseDate, expirationDate, notes)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Pen), args.Error(1)
}

func (m *MockPensRepositoryInterface) GetByID(ctx context.Context, userID primitive.ObjectID, id string) (*model.Pen, error) {
	args := m.Called(ctx, userID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Pen), args.Error(1)
}

func (m *MockPensRepositoryInterface) List(ctx context.Context, userID primitive.ObjectID) ([]model.Pen, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Pen), args.Error(1)
}

func (m *MockPensRepositoryInterface) Delete(ctx context.Context, userID primitive.ObjectID, id string) error {
	args := m.Called(ctx, userID, id)
	return args.Error(0)
}
