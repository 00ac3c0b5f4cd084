// Package middleware provides JWT authentication middleware.
package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/Askwho/mounjaro-hub/internal/domain/dto"
	"github.com/Askwho/mounjaro-hub/internal/i18n"
	"github.com/Askwho/mounjaro-hub/internal/service"
)

// JWTAuth returns a middleware that validates JWT access tokens.
func JWTAuth(authService service.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		locale := i18n.GetLocale(c)
		requestID := GetRequestID(c)

		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			message := i18n.GetTranslator().Translate(i18n.ErrKeyTokenRequired, locale)
			errorResp := dto.NewError(dto.ErrCodeUnauthorized, message).
				WithRequestID(requestID)
			c.AbortWithStatusJSON(http.StatusUnauthorized, errorResp)
			return
		}

		if !strings.HasPrefix(authHeader, "Bearer ") {
			message := i18n.GetTranslator().Translate(i18n.ErrKeyInvalidToken, locale)
			errorResp := dto.NewError(dto.ErrCodeUnauthorized, message).
				WithRequestID(requestID)
			c.AbortWithStatusJSON(http.StatusUnauthorized, errorResp)
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == "" {
			message := i18n.GetTranslator().Translate(i18n.ErrKeyTokenRequired, locale)
			errorResp := dto.NewError(dto.ErrCodeUnauthorized, message).
				WithRequestID(requestID)
			c.AbortWithStatusJSON(http.StatusUnauthorized, errorResp)
			return
		}

		claims, err := authService.ValidateToken(c.Request.Context(), tokenString)
		if err != nil {
			message := i18n.GetTranslator().Translate(i18n.ErrKeyInvalidToken, locale)
			errorResp := dto.NewError(dto.ErrCodeUnauthorized, message).
				WithRequestID(requestID)
			c.AbortWithStatusJSON(http.StatusUnauthorized, errorResp)
			return
		}

		c.Set("user_id", claims.UserID)
		c.Set("user_email", claims.Email)
		c.Set("user_name", claims.Name)
		c.Set("user_claims", claims)

		c.Next()
	}
}

// GetUserID retrieves the authenticated user's ID from the gin context.
func GetUserID(c *gin.Context) (primitive.ObjectID, bool) {
	if userID, exists := c.Get("user_id"); exists {
		if id, ok := userID.(primitive.ObjectID); ok {
			return id, true
		}
	}
	return primitive.NilObjectID, false
}
