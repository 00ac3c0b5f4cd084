// Package middleware provides audit logging utilities.
package middleware

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/Askwho/mounjaro-hub/internal/domain/model"
	"github.com/Askwho/mounjaro-hub/internal/service"
)

// AuditLog logs a user action for audit purposes. Use it for critical
// actions like login, logout and data mutations (dose edits, pen deletes).
func AuditLog(loggingService service.LoggingService, c *gin.Context, actionType string, message string, fields map[string]interface{}) {
	if loggingService == nil {
		return
	}

	entry := newAuditEntry(c, "info", actionType, message, fields)

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = loggingService.CreateLog(ctx, entry)
	}()
}

// AuditLogError logs an error action for audit purposes.
func AuditLogError(loggingService service.LoggingService, c *gin.Context, actionType string, message string, err error, fields map[string]interface{}) {
	if loggingService == nil {
		return
	}

	entry := newAuditEntry(c, "error", actionType, message, fields)
	if err != nil {
		entry.Error = err.Error()
	}

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = loggingService.CreateLog(ctx, entry)
	}()
}

func newAuditEntry(c *gin.Context, level, actionType, message string, fields map[string]interface{}) *model.LogEntry {
	entry := &model.LogEntry{
		Timestamp:  time.Now(),
		Level:      level,
		Message:    message,
		RequestID:  GetRequestID(c),
		Method:     c.Request.Method,
		Path:       c.Request.URL.Path,
		IP:         c.ClientIP(),
		UserAgent:  c.Request.UserAgent(),
		ActionType: actionType,
		Fields:     fields,
	}

	if userID, exists := c.Get("user_id"); exists {
		if id, ok := userID.(primitive.ObjectID); ok {
			entry.UserID = id.Hex()
		}
	}
	if userEmail, exists := c.Get("user_email"); exists {
		if email, ok := userEmail.(string); ok {
			entry.UserEmail = email
		}
	}

	return entry
}
