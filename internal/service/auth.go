package service

import (
	"context"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/Askwho/mounjaro-hub/internal/domain/dto"
	"github.com/Askwho/mounjaro-hub/internal/domain/model"
	"github.com/Askwho/mounjaro-hub/internal/repository"
)

var (
	// ErrInvalidCredentials is returned when login credentials are invalid.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrUserExists is returned when trying to register a user that already exists.
	ErrUserExists = errors.New("user already exists")
	// ErrInvalidToken is returned when a token is invalid or expired.
	ErrInvalidToken = errors.New("invalid or expired token")
	// ErrTokenBlacklisted is returned when a token has been invalidated.
	ErrTokenBlacklisted = errors.New("token has been invalidated")
)

// TokenPair represents an access and refresh token pair.
type TokenPair = dto.TokenPair

// Claims represents the JWT claims.
type Claims = dto.Claims

// ClaimsWithJWT extends Claims with JWT registered claims.
type ClaimsWithJWT struct {
	dto.Claims
	jwt.RegisteredClaims
}

// AuthService provides authentication operations.
type AuthService interface {
	// Login authenticates a user and returns a token pair.
	Login(ctx context.Context, email, password string) (*TokenPair, *model.User, error)
	// Register creates a new user account and logs it in.
	Register(ctx context.Context, email, username, password, name string) (*TokenPair, *model.User, error)
	// RefreshToken exchanges a refresh token for a new token pair.
	RefreshToken(ctx context.Context, refreshToken string) (*TokenPair, error)
	// ValidateToken validates an access token and returns its claims.
	ValidateToken(ctx context.Context, tokenString string) (*Claims, error)
	// Logout invalidates the given access and refresh tokens.
	Logout(ctx context.Context, accessToken, refreshToken string) error
}

// AuthServiceImpl implements AuthService.
type AuthServiceImpl struct {
	userRepo     repository.UserRepositoryInterface
	tokenService TokenService
}

// NewAuthService creates a new authentication service.
func NewAuthService(userRepo repository.UserRepositoryInterface, tokenService TokenService) AuthService {
	return &AuthServiceImpl{
		userRepo:     userRepo,
		tokenService: tokenService,
	}
}

// Login authenticates a user by email and password.
func (s *AuthServiceImpl) Login(ctx context.Context, email, password string) (*TokenPair, *model.User, error) {
	user, err := s.userRepo.FindByEmailForAuth(ctx, email)
	if err != nil || user == nil {
		return nil, nil, ErrInvalidCredentials
	}

	if !user.Active {
		return nil, nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, nil, ErrInvalidCredentials
	}

	// A fresh login supersedes any refresh tokens issued earlier.
	if err := s.tokenService.InvalidateUserTokens(ctx, user.ID); err != nil {
		return nil, nil, err
	}

	pair, err := s.tokenService.GenerateTokenPair(ctx, user)
	if err != nil {
		return nil, nil, err
	}

	user.Password = ""
	return pair, user, nil
}

// Register creates a new user account with a bcrypt-hashed password and
// returns a token pair so the client is logged in immediately.
func (s *AuthServiceImpl) Register(ctx context.Context, email, username, password, name string) (*TokenPair, *model.User, error) {
	if existing, err := s.userRepo.FindByEmail(ctx, email); err == nil && existing != nil {
		return nil, nil, ErrUserExists
	}
	if existing, err := s.userRepo.FindByUsername(ctx, username); err == nil && existing != nil {
		return nil, nil, ErrUserExists
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, nil, err
	}

	now := time.Now()
	user := &model.User{
		Email:     email,
		Username:  username,
		Password:  string(hashed),
		Name:      name,
		Active:    true,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, nil, err
	}

	pair, err := s.tokenService.GenerateTokenPair(ctx, user)
	if err != nil {
		return nil, nil, err
	}

	user.Password = ""
	return pair, user, nil
}

// RefreshToken validates a refresh token and rotates it for a new pair.
func (s *AuthServiceImpl) RefreshToken(ctx context.Context, refreshToken string) (*TokenPair, error) {
	claims, err := s.tokenService.ValidateRefreshToken(refreshToken)
	if err != nil {
		return nil, ErrInvalidToken
	}

	stored, err := s.tokenService.FindRefreshToken(ctx, refreshToken)
	if err != nil || stored == nil {
		return nil, ErrInvalidToken
	}

	user, err := s.userRepo.FindByID(ctx, claims.UserID)
	if err != nil || user == nil || !user.Active {
		return nil, ErrInvalidToken
	}

	// Rotate: the old refresh token is single use.
	if err := s.tokenService.DeleteRefreshToken(ctx, refreshToken); err != nil {
		return nil, err
	}

	return s.tokenService.GenerateTokenPair(ctx, user)
}

// ValidateToken validates an access token and returns its claims.
func (s *AuthServiceImpl) ValidateToken(ctx context.Context, tokenString string) (*Claims, error) {
	return s.tokenService.ValidateAccessToken(ctx, tokenString)
}

// Logout invalidates both tokens. Errors are joined so a partial
// failure still reports every step that went wrong.
func (s *AuthServiceImpl) Logout(ctx context.Context, accessToken, refreshToken string) error {
	var errs []error

	if accessToken != "" {
		if err := s.tokenService.InvalidateAccessToken(ctx, accessToken); err != nil {
			errs = append(errs, err)
		}
	}

	if refreshToken != "" {
		if err := s.tokenService.DeleteRefreshToken(ctx, refreshToken); err != nil {
			errs = append(errs, err)
		}
	}

	return errors.Join(errs...)
}
