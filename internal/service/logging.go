package service

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/Askwho/mounjaro-hub/internal/domain/model"
	"github.com/Askwho/mounjaro-hub/internal/repository"
)

// LoggingService defines the interface for request log persistence.
type LoggingService interface {
	// CreateLog stores a single log entry.
	CreateLog(ctx context.Context, entry *model.LogEntry) error

	// CreateLogs stores multiple log entries in bulk.
	CreateLogs(ctx context.Context, entries []*model.LogEntry) error

	// QueryLogs retrieves log entries matching the query options.
	QueryLogs(ctx context.Context, opts model.LogQueryOptions) ([]*model.LogEntry, error)

	// CountLogs returns the count of log entries matching the query options.
	CountLogs(ctx context.Context, opts model.LogQueryOptions) (int64, error)
}

// LoggingServiceImpl implements the LoggingService interface.
type LoggingServiceImpl struct {
	repo repository.LogsRepositoryInterface
}

// NewLoggingService creates a new logging service implementation.
func NewLoggingService(repo repository.LogsRepositoryInterface) LoggingService {
	return &LoggingServiceImpl{
		repo: repo,
	}
}

// CreateLog stores a single log entry.
func (s *LoggingServiceImpl) CreateLog(ctx context.Context, entry *model.LogEntry) error {
	fillDefaults(entry)
	return s.repo.Create(ctx, entry)
}

// CreateLogs stores multiple log entries in bulk.
func (s *LoggingServiceImpl) CreateLogs(ctx context.Context, entries []*model.LogEntry) error {
	if len(entries) == 0 {
		return nil
	}
	for _, entry := range entries {
		fillDefaults(entry)
	}
	return s.repo.CreateMany(ctx, entries)
}

// QueryLogs retrieves log entries matching the query options.
func (s *LoggingServiceImpl) QueryLogs(ctx context.Context, opts model.LogQueryOptions) ([]*model.LogEntry, error) {
	return s.repo.Query(ctx, opts)
}

// CountLogs returns the count of log entries matching the query options.
func (s *LoggingServiceImpl) CountLogs(ctx context.Context, opts model.LogQueryOptions) (int64, error) {
	return s.repo.Count(ctx, opts)
}

func fillDefaults(entry *model.LogEntry) {
	if entry.ID.IsZero() {
		entry.ID = primitive.NewObjectID()
	}
	if entry.Timestamp.IsZero() {
		entry.Timestamp = time.Now()
	}
}
