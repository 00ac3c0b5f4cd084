package http

import (
	"github.com/gin-gonic/gin"

	"github.com/Askwho/mounjaro-hub/internal/middleware"
	"github.com/Askwho/mounjaro-hub/internal/service"
)

// AuthRoutes handles authentication route registration.
type AuthRoutes struct {
	handler     *AuthHandler
	authService service.AuthService
}

// NewAuthRoutes creates a new AuthRoutes instance.
func NewAuthRoutes(authService service.AuthService) *AuthRoutes {
	return &AuthRoutes{
		handler:     NewAuthHandler(authService),
		authService: authService,
	}
}

// RegisterPublicRoutes registers public authentication routes.
// These routes don't require authentication.
func (r *AuthRoutes) RegisterPublicRoutes(rg *gin.RouterGroup) {
	auth := rg.Group("/auth")
	{
		auth.POST("/login", r.handler.Login)
		auth.POST("/register", r.handler.Register)
		auth.POST("/refresh", r.handler.RefreshToken)
	}
}

// GetProtectedGroup returns a protected router group with JWT auth middleware
// applied. Other route registrars attach their protected routes to it.
func (r *AuthRoutes) GetProtectedGroup(rg *gin.RouterGroup, cfg *RouterConfig) *gin.RouterGroup {
	protected := rg.Group("")
	protected.Use(middleware.JWTAuth(r.authService))

	if cfg.RateLimit > 0 {
		userLimiter := middleware.NewRateLimiter(cfg.RateLimit, cfg.RateWindow)
		protected.Use(userLimiter.UserRateLimit())
	}

	return protected
}
