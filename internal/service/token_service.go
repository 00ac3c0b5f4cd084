package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/Askwho/mounjaro-hub/config"
	"github.com/Askwho/mounjaro-hub/internal/domain/dto"
	"github.com/Askwho/mounjaro-hub/internal/domain/model"
	"github.com/Askwho/mounjaro-hub/internal/repository"
)

// TokenService provides token-related operations.
type TokenService interface {
	// GenerateTokenPair generates a new access and refresh token pair for a user.
	GenerateTokenPair(ctx context.Context, user *model.User) (*dto.TokenPair, error)
	// ValidateAccessToken validates an access token and returns its claims.
	ValidateAccessToken(ctx context.Context, tokenString string) (*dto.Claims, error)
	// ValidateRefreshToken validates a refresh token and returns its claims.
	ValidateRefreshToken(tokenString string) (*dto.Claims, error)
	// InvalidateAccessToken blacklists an access token.
	InvalidateAccessToken(ctx context.Context, tokenString string) error
	// InvalidateUserTokens removes all refresh tokens for a user.
	InvalidateUserTokens(ctx context.Context, userID primitive.ObjectID) error
	// DeleteRefreshToken removes a specific refresh token.
	DeleteRefreshToken(ctx context.Context, tokenString string) error
	// FindRefreshToken finds a refresh token by its string value.
	FindRefreshToken(ctx context.Context, tokenString string) (*model.Token, error)
}

// TokenServiceImpl implements TokenService.
type TokenServiceImpl struct {
	secretKey        []byte
	refreshSecretKey []byte
	accessTokenTTL   time.Duration
	refreshTokenTTL  time.Duration
	tokenRepo        repository.TokenRepositoryInterface
}

// TokenConfig holds configuration for the token service.
type TokenConfig struct {
	SecretKey        string
	RefreshSecretKey string
	AccessTokenTTL   time.Duration
	RefreshTokenTTL  time.Duration
}

// NewTokenConfigFromAuthConfig creates TokenConfig from config.AuthConfig.
func NewTokenConfigFromAuthConfig(authConfig config.AuthConfig) TokenConfig {
	return TokenConfig{
		SecretKey:        authConfig.JWTSecretKey,
		RefreshSecretKey: authConfig.JWTRefreshSecret,
		AccessTokenTTL:   authConfig.AccessTokenTTL,
		RefreshTokenTTL:  authConfig.RefreshTokenTTL,
	}
}

// NewTokenService creates a new token service.
func NewTokenService(tokenRepo repository.TokenRepositoryInterface, cfg TokenConfig) TokenService {
	return &TokenServiceImpl{
		secretKey:        []byte(cfg.SecretKey),
		refreshSecretKey: []byte(cfg.RefreshSecretKey),
		accessTokenTTL:   cfg.AccessTokenTTL,
		refreshTokenTTL:  cfg.RefreshTokenTTL,
		tokenRepo:        tokenRepo,
	}
}

// GenerateTokenPair generates a new access and refresh token pair for a user.
func (s *TokenServiceImpl) GenerateTokenPair(ctx context.Context, user *model.User) (*dto.TokenPair, error) {
	if user.ID.IsZero() {
		return nil, errors.New("user ID is zero, cannot create token")
	}

	accessToken, err := s.generateToken(user, s.secretKey, s.accessTokenTTL)
	if err != nil {
		return nil, fmt.Errorf("failed to generate access token: %w", err)
	}

	refreshToken, err := s.generateToken(user, s.refreshSecretKey, s.refreshTokenTTL)
	if err != nil {
		return nil, fmt.Errorf("failed to generate refresh token: %w", err)
	}

	token := &model.Token{
		UserID:    user.ID,
		Token:     refreshToken,
		Type:      "refresh",
		ExpiresAt: time.Now().Add(s.refreshTokenTTL),
	}
	if err := s.tokenRepo.Create(ctx, token); err != nil {
		return nil, fmt.Errorf("failed to store refresh token: %w", err)
	}

	return &dto.TokenPair{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		ExpiresIn:    int64(s.accessTokenTTL.Seconds()),
	}, nil
}

// ValidateAccessToken validates an access token and returns its claims.
func (s *TokenServiceImpl) ValidateAccessToken(ctx context.Context, tokenString string) (*dto.Claims, error) {
	isBlacklisted, err := s.tokenRepo.IsBlacklisted(ctx, tokenString)
	if err != nil {
		return nil, err
	}
	if isBlacklisted {
		return nil, ErrTokenBlacklisted
	}

	return s.parseToken(tokenString, s.secretKey)
}

// ValidateRefreshToken validates a refresh token and returns its claims.
func (s *TokenServiceImpl) ValidateRefreshToken(tokenString string) (*dto.Claims, error) {
	return s.parseToken(tokenString, s.refreshSecretKey)
}

func (s *TokenServiceImpl) parseToken(tokenString string, key []byte) (*dto.Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &ClaimsWithJWT{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("invalid signing method")
		}
		return key, nil
	})

	if err != nil {
		return nil, ErrInvalidToken
	}

	if claimsWithJWT, ok := token.Claims.(*ClaimsWithJWT); ok && token.Valid {
		return &claimsWithJWT.Claims, nil
	}

	return nil, ErrInvalidToken
}

// InvalidateAccessToken blacklists an access token.
func (s *TokenServiceImpl) InvalidateAccessToken(ctx context.Context, tokenString string) error {
	token, err := jwt.ParseWithClaims(tokenString, &ClaimsWithJWT{}, func(token *jwt.Token) (interface{}, error) {
		return s.secretKey, nil
	})

	if err != nil {
		return err
	}

	claimsWithJWT, ok := token.Claims.(*ClaimsWithJWT)
	if !ok {
		return ErrInvalidToken
	}

	expiresAt := time.Now().Add(s.accessTokenTTL)
	if claimsWithJWT.ExpiresAt != nil {
		expiresAt = claimsWithJWT.ExpiresAt.Time
	}

	blacklistToken := &model.Token{
		UserID:    claimsWithJWT.UserID,
		Token:     tokenString,
		Type:      "blacklist",
		ExpiresAt: expiresAt,
	}

	return s.tokenRepo.Create(ctx, blacklistToken)
}

// InvalidateUserTokens removes all refresh tokens for a user.
func (s *TokenServiceImpl) InvalidateUserTokens(ctx context.Context, userID primitive.ObjectID) error {
	return s.tokenRepo.DeleteByUserID(ctx, userID, "refresh")
}

// DeleteRefreshToken removes a specific refresh token.
func (s *TokenServiceImpl) DeleteRefreshToken(ctx context.Context, tokenString string) error {
	return s.tokenRepo.DeleteByToken(ctx, tokenString)
}

// FindRefreshToken finds a refresh token by its string value.
func (s *TokenServiceImpl) FindRefreshToken(ctx context.Context, tokenString string) (*model.Token, error) {
	return s.tokenRepo.FindByToken(ctx, tokenString)
}

// generateToken creates a signed JWT for the user with the given key and TTL.
func (s *TokenServiceImpl) generateToken(user *model.User, key []byte, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := &ClaimsWithJWT{
		Claims: dto.Claims{
			UserID: user.ID,
			Email:  user.Email,
			Name:   user.Name,
		},
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(key)
}
