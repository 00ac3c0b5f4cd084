// Code generated manually. DO NOT EDIT.

package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/Askwho/mounjaro-hub/internal/domain/model"
	"github.com/Askwho/mounjaro-hub/internal/service"
)

type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) Login(ctx context.Context, email, password string) (*service.TokenPair, *model.User, error) {
	args := m.Called(ctx, email, password)
	var pair *service.TokenPair
	if args.Get(0) != nil {
		pair = args.Get(0).(*service.TokenPair)
	}
	var user *model.User
	if args.Get(1) != nil {
		user = args.Get(1).(*model.User)
	}
	return pair, user, args.Error(2)
}

func (m *MockAuthService) Register(ctx context.Context, email, username, password, name string) (*service.TokenPair, *model.User, error) {
	args := m.Called(ctx, email, username, password, name)
	var pair *service.TokenPair
	if args.Get(0) != nil {
		pair = args.Get(0).(*service.TokenPair)
	}
	var user *model.User
	if args.Get(1) != nil {
		user = args.Get(1).(*model.User)
	}
	return pair, user, args.Error(2)
}

func (m *MockAuthService) RefreshToken(ctx context.Context, refreshToken string) (*service.TokenPair, error) {
	args := m.Called(ctx, refreshToken)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.TokenPair), args.Error(1)
}

func (m *MockAuthService) ValidateToken(ctx context.Context, tokenString string) (*service.Claims, error) {
	args := m.Called(ctx, tokenString)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.Claims), args.Error(1)
}

func (m *MockAuthService) Logout(ctx context.Context, accessToken, refreshToken string) error {
	args := m.Called(ctx, accessToken, refreshToken)
	return args.Error(0)
}
