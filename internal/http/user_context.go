package http

import (
	"errors"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/Askwho/mounjaro-hub/internal/middleware"
	"github.com/Askwho/mounjaro-hub/internal/repository"
	"github.com/Askwho/mounjaro-hub/internal/service"
)

// localUserID owns all data when the service runs without authentication.
// Single-user deployments store everything under the zero ObjectID.
var localUserID = primitive.NilObjectID

// currentUserID returns the authenticated user's ID, or the local single-user
// ID when no JWT middleware populated the context.
func currentUserID(c *gin.Context) primitive.ObjectID {
	if id, ok := middleware.GetUserID(c); ok {
		return id
	}
	return localUserID
}

// isNotFound reports whether err means the requested document does not exist.
func isNotFound(err error) bool {
	return errors.Is(err, repository.ErrNotFound) || errors.Is(err, mongo.ErrNoDocuments)
}

// contextLoggingService extracts the logging service placed in the gin
// context by the router, for audit logging from handlers.
func contextLoggingService(c *gin.Context) service.LoggingService {
	if loggingService, exists := c.Get("logging_service"); exists {
		if ls, ok := loggingService.(service.LoggingService); ok {
			return ls
		}
	}
	return nil
}
