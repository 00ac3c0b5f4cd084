package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/Askwho/mounjaro-hub/internal/domain/dto"
	"github.com/Askwho/mounjaro-hub/internal/domain/model"
	"github.com/Askwho/mounjaro-hub/internal/mocks"
	"github.com/Askwho/mounjaro-hub/internal/repository"
	"github.com/Askwho/mounjaro-hub/internal/service"
)

func TestPensService_AllowedSizes(t *testing.T) {
	ctx := context.Background()

	t.Run("falls back to defaults without a catalog store", func(t *testing.T) {
		svc := service.NewPensService(nil, nil, nil, nil)
		assert.Equal(t, model.DefaultPenSizes, svc.AllowedSizes(ctx))
	})

	t.Run("falls back to defaults when store is empty", func(t *testing.T) {
		mockSizes := new(mocks.MockPenSizesRepositoryInterface)
		mockSizes.On("GetActive", mock.Anything).Return(nil, nil)

		svc := service.NewPensService(nil, nil, mockSizes, nil)
		assert.Equal(t, model.DefaultPenSizes, svc.AllowedSizes(ctx))
	})

	t.Run("uses the active catalog", func(t *testing.T) {
		mockSizes := new(mocks.MockPenSizesRepositoryInterface)
		mockSizes.On("GetActive", mock.Anything).Return(&repository.PenSizeConfig{
			Sizes:  []float64{5, 10},
			Active: true,
		}, nil)

		svc := service.NewPensService(nil, nil, mockSizes, nil)
		assert.Equal(t, []float64{5, 10}, svc.AllowedSizes(ctx))
	})
}

func TestPensService_CreatePen(t *testing.T) {
	userID := primitive.NilObjectID
	purchase := time.Date(2026, 1, 5, 0, 0, 0, 0, time.UTC)
	expiration := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name          string
		req           dto.CreatePenRequest
		setupMocks    func(*mocks.MockPensRepositoryInterface)
		expectedError error
	}{
		{
			name: "size in default catalog",
			req:  dto.CreatePenRequest{Size: 12.5, PurchaseDate: purchase, ExpirationDate: expiration},
			setupMocks: func(pensRepo *mocks.MockPensRepositoryInterface) {
				pensRepo.On("Create", mock.Anything, userID, 12.5, purchase, expiration, "").
					Return(&model.Pen{ID: "pen-1", Size: 12.5}, nil)
			},
		},
		{
			name:          "size outside catalog",
			req:           dto.CreatePenRequest{Size: 3, PurchaseDate: purchase, ExpirationDate: expiration},
			setupMocks:    func(pensRepo *mocks.MockPensRepositoryInterface) {},
			expectedError: service.ErrInvalidPenSize,
		},
		{
			name:       "expiration precedes purchase",
			req:        dto.CreatePenRequest{Size: 10, PurchaseDate: expiration, ExpirationDate: purchase},
			setupMocks: func(pensRepo *mocks.MockPensRepositoryInterface) {},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pensRepo := new(mocks.MockPensRepositoryInterface)
			tt.setupMocks(pensRepo)

			svc := service.NewPensService(pensRepo, nil, nil, nil)
			pen, err := svc.CreatePen(context.Background(), userID, tt.req)

			switch {
			case tt.expectedError != nil:
				assert.ErrorIs(t, err, tt.expectedError)
			case tt.name == "expiration precedes purchase":
				var ve *dto.ValidationError
				assert.ErrorAs(t, err, &ve)
			default:
				require.NoError(t, err)
				assert.Equal(t, tt.req.Size, pen.Size)
			}
			pensRepo.AssertExpectations(t)
		})
	}
}

func TestPensService_DeletePen(t *testing.T) {
	userID := primitive.NilObjectID
	ctx := context.Background()

	t.Run("cascades doses before removing the pen", func(t *testing.T) {
		pensRepo := new(mocks.MockPensRepositoryInterface)
		dosesRepo := new(mocks.MockDosesRepositoryInterface)

		pensRepo.On("GetByID", mock.Anything, userID, "pen-1").Return(&model.Pen{ID: "pen-1", Size: 10}, nil)
		dosesRepo.On("DeleteByPen", mock.Anything, userID, "pen-1").Return(int64(7), nil)
		pensRepo.On("Delete", mock.Anything, userID, "pen-1").Return(nil)

		svc := service.NewPensService(pensRepo, dosesRepo, nil, nil)
		deleted, err := svc.DeletePen(ctx, userID, "pen-1")
		require.NoError(t, err)
		assert.Equal(t, int64(7), deleted)
		pensRepo.AssertExpectations(t)
		dosesRepo.AssertExpectations(t)
	})

	t.Run("missing pen stops the cascade", func(t *testing.T) {
		pensRepo := new(mocks.MockPensRepositoryInterface)
		dosesRepo := new(mocks.MockDosesRepositoryInterface)

		pensRepo.On("GetByID", mock.Anything, userID, "missing").Return(nil, repository.ErrNotFound)

		svc := service.NewPensService(pensRepo, dosesRepo, nil, nil)
		_, err := svc.DeletePen(ctx, userID, "missing")
		assert.ErrorIs(t, err, repository.ErrNotFound)
		dosesRepo.AssertNotCalled(t, "DeleteByPen", mock.Anything, mock.Anything, mock.Anything)
	})
}
