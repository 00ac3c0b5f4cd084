package http

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/Askwho/mounjaro-hub/internal/domain/dto"
	"github.com/Askwho/mounjaro-hub/internal/i18n"
	"github.com/Askwho/mounjaro-hub/internal/middleware"
	"github.com/Askwho/mounjaro-hub/internal/service"
)

// AuthHandler provides HTTP handlers for authentication routes.
type AuthHandler struct {
	authService service.AuthService
}

// NewAuthHandler creates a new authentication handler.
func NewAuthHandler(authService service.AuthService) *AuthHandler {
	return &AuthHandler{
		authService: authService,
	}
}

// Login handles POST /api/auth/login requests.
//
// @Summary      Login user
// @Description  Authenticates a user and returns a JWT token pair
// @Tags         Auth
// @Accept       json
// @Produce      json
// @Param        request body dto.LoginRequest true "Login credentials"
// @Success      200 {object} dto.LoginResponse "Successful login"
// @Failure      400 {object} dto.ErrorResponse "Bad request - invalid input"
// @Failure      401 {object} dto.ErrorResponse "Unauthorized - invalid credentials"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Router       /api/auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	builder := NewResponseBuilder(c)
	locale := i18n.GetLocale(c)

	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequestBody, err)
		return
	}

	if err := req.Validate(); err != nil {
		if validationErr, ok := err.(*dto.ValidationError); ok {
			builder.ErrorWithMessage(http.StatusBadRequest, validationErr.Error(), err)
		} else {
			builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequestBody, err)
		}
		return
	}

	tokenPair, user, err := h.authService.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if err == service.ErrInvalidCredentials {
			middleware.AuditLogError(contextLoggingService(c), c, "login_failed", "Failed login attempt", err, map[string]interface{}{
				"email": req.Email,
			})
			message := i18n.GetTranslator().Translate(i18n.ErrKeyInvalidCredentials, locale)
			builder.ErrorWithMessage(http.StatusUnauthorized, message, err)
		} else {
			middleware.AuditLogError(contextLoggingService(c), c, "login_error", "Login internal error", err, map[string]interface{}{
				"email": req.Email,
			})
			builder.Error(http.StatusInternalServerError, i18n.ErrKeyInternalError, err)
		}
		return
	}

	c.Set("user_id", user.ID)
	c.Set("user_email", user.Email)

	middleware.AuditLog(contextLoggingService(c), c, "login", "User logged in successfully", map[string]interface{}{
		"email": user.Email,
	})

	response := dto.LoginResponse{
		Token:        tokenPair.AccessToken,
		RefreshToken: tokenPair.RefreshToken,
		User: dto.UserResponse{
			Email: user.Email,
			Name:  user.Name,
		},
	}
	builder.SuccessOK(response)
}

// Register handles POST /api/auth/register requests.
//
// @Summary      Register new user
// @Description  Creates a new user account and returns a JWT token pair
// @Tags         Auth
// @Accept       json
// @Produce      json
// @Param        request body dto.RegisterRequest true "Registration information"
// @Success      201 {object} dto.LoginResponse "Successful registration"
// @Failure      400 {object} dto.ErrorResponse "Bad request - invalid input"
// @Failure      409 {object} dto.ErrorResponse "Conflict - user already exists"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Router       /api/auth/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	builder := NewResponseBuilder(c)
	locale := i18n.GetLocale(c)

	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequestBody, err)
		return
	}

	if err := req.Validate(); err != nil {
		if validationErr, ok := err.(*dto.ValidationError); ok {
			builder.ErrorWithMessage(http.StatusBadRequest, "validation error: "+validationErr.Message, err)
		} else {
			builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequestBody, err)
		}
		return
	}

	tokenPair, user, err := h.authService.Register(c.Request.Context(), req.Email, req.Username, req.Password, req.Name)
	if err != nil {
		if err == service.ErrUserExists {
			middleware.AuditLogError(contextLoggingService(c), c, "register_failed", "Failed registration attempt - user already exists", err, map[string]interface{}{
				"email": req.Email,
			})
			message := i18n.GetTranslator().Translate(i18n.ErrKeyConflict, locale)
			builder.ErrorWithMessage(http.StatusConflict, message, err)
		} else {
			builder.Error(http.StatusInternalServerError, i18n.ErrKeyInternalError, err)
		}
		return
	}

	c.Set("user_id", user.ID)
	c.Set("user_email", user.Email)

	middleware.AuditLog(contextLoggingService(c), c, "register", "New user registered successfully", map[string]interface{}{
		"email": user.Email,
		"name":  user.Name,
	})

	response := dto.LoginResponse{
		Token:        tokenPair.AccessToken,
		RefreshToken: tokenPair.RefreshToken,
		User: dto.UserResponse{
			Email: user.Email,
			Name:  user.Name,
		},
	}
	builder.SuccessCreated(response)
}

// RefreshToken handles POST /api/auth/refresh requests.
//
// @Summary      Refresh access token
// @Description  Generates a new token pair using a refresh token. The refresh token is read from the X-Refresh-Token header and rotated.
// @Tags         Auth
// @Accept       json
// @Produce      json
// @Param        X-Refresh-Token header string true "Refresh token"
// @Success      200 {object} dto.LoginResponse "Successful token refresh"
// @Failure      400 {object} dto.ErrorResponse "Bad request - missing refresh token"
// @Failure      401 {object} dto.ErrorResponse "Unauthorized - invalid refresh token"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Router       /api/auth/refresh [post]
func (h *AuthHandler) RefreshToken(c *gin.Context) {
	builder := NewResponseBuilder(c)
	locale := i18n.GetLocale(c)

	refreshToken := c.GetHeader("X-Refresh-Token")
	if refreshToken == "" {
		builder.ErrorWithMessage(http.StatusBadRequest, "X-Refresh-Token header is required", errors.New("missing refresh token"))
		return
	}

	tokenPair, err := h.authService.RefreshToken(c.Request.Context(), refreshToken)
	if err != nil {
		if err == service.ErrInvalidToken {
			message := i18n.GetTranslator().Translate(i18n.ErrKeyInvalidToken, locale)
			builder.ErrorWithMessage(http.StatusUnauthorized, message, err)
		} else {
			builder.Error(http.StatusInternalServerError, i18n.ErrKeyInternalError, err)
		}
		return
	}

	response := dto.LoginResponse{
		Token:        tokenPair.AccessToken,
		RefreshToken: tokenPair.RefreshToken,
	}
	builder.SuccessOK(response)
}

// Logout handles POST /api/auth/logout requests.
//
// @Summary      Logout user
// @Description  Invalidates the access and refresh tokens. The access token comes from the Authorization header, the refresh token from X-Refresh-Token.
// @Tags         Auth
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        Authorization header string true "Bearer token" default(Bearer )
// @Param        X-Refresh-Token header string true "Refresh token"
// @Success      200 {object} dto.SuccessResponse "Successful logout"
// @Failure      400 {object} dto.ErrorResponse "Bad request - missing refresh token"
// @Failure      401 {object} dto.ErrorResponse "Unauthorized"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Router       /api/auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	builder := NewResponseBuilder(c)

	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		builder.Error(http.StatusUnauthorized, i18n.ErrKeyTokenRequired, errors.New("authorization header required"))
		return
	}

	const bearerPrefix = "Bearer "
	if !strings.HasPrefix(authHeader, bearerPrefix) {
		builder.Error(http.StatusUnauthorized, i18n.ErrKeyInvalidToken, errors.New("invalid authorization header format"))
		return
	}

	accessToken := strings.TrimPrefix(authHeader, bearerPrefix)
	if accessToken == "" {
		builder.Error(http.StatusUnauthorized, i18n.ErrKeyTokenRequired, errors.New("access token required"))
		return
	}

	refreshToken := c.GetHeader("X-Refresh-Token")
	if refreshToken == "" {
		builder.ErrorWithMessage(http.StatusBadRequest, "X-Refresh-Token header is required", errors.New("missing refresh token"))
		return
	}

	if err := h.authService.Logout(c.Request.Context(), accessToken, refreshToken); err != nil {
		builder.Error(http.StatusInternalServerError, i18n.ErrKeyInternalError, err)
		return
	}

	middleware.AuditLog(contextLoggingService(c), c, "logout", "User logged out successfully", nil)

	builder.SuccessOK(map[string]string{"message": "Logged out successfully"})
}
