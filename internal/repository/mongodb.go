// Package repository provides data access layer for MongoDB.
package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoConfig holds MongoDB connection pool configuration.
type MongoConfig struct {
	// MaxPoolSize is the maximum number of connections in the pool.
	MaxPoolSize uint64
	// MinPoolSize is the minimum number of connections to keep in the pool.
	MinPoolSize uint64
	// MaxConnIdleTime is how long a connection can remain idle before being closed.
	MaxConnIdleTime time.Duration
	// ConnectTimeout is the timeout for establishing a connection.
	ConnectTimeout time.Duration
	// ServerSelectionTimeout is how long to wait for server selection.
	ServerSelectionTimeout time.Duration
	// SocketTimeout is the timeout for socket read/write operations.
	SocketTimeout time.Duration
	// EnableCompression enables wire protocol compression.
	EnableCompression bool
}

// DefaultMongoConfig returns production-optimized MongoDB configuration.
func DefaultMongoConfig() MongoConfig {
	return MongoConfig{
		MaxPoolSize:            50,
		MinPoolSize:            10,
		MaxConnIdleTime:        10 * time.Minute,
		ConnectTimeout:         10 * time.Second,
		ServerSelectionTimeout: 5 * time.Second,
		SocketTimeout:          30 * time.Second,
		EnableCompression:      true,
	}
}

// MongoDB provides MongoDB client and database access.
type MongoDB struct {
	Client          *mongo.Client
	Database        *mongo.Database
	Pens            *mongo.Collection
	Doses           *mongo.Collection
	Weights         *mongo.Collection
	PenSizes        *mongo.Collection
	PenSnapshots    *mongo.Collection
	SystemSnapshots *mongo.Collection
	Logs            *mongo.Collection
	Users           *mongo.Collection
	Tokens          *mongo.Collection
}

// NewMongoDB creates a new MongoDB connection with default configuration.
func NewMongoDB(uri, databaseName string) (*MongoDB, error) {
	return NewMongoDBWithConfig(uri, databaseName, DefaultMongoConfig())
}

// NewMongoDBWithConfig creates a new MongoDB connection with custom configuration.
func NewMongoDBWithConfig(uri, databaseName string, cfg MongoConfig) (*MongoDB, error) {
	ctx, cancel := context.WithTimeout(context.Background(), cfg.ConnectTimeout)
	defer cancel()

	clientOptions := options.Client().
		ApplyURI(uri).
		SetMaxPoolSize(cfg.MaxPoolSize).
		SetMinPoolSize(cfg.MinPoolSize).
		SetMaxConnIdleTime(cfg.MaxConnIdleTime).
		SetConnectTimeout(cfg.ConnectTimeout).
		SetServerSelectionTimeout(cfg.ServerSelectionTimeout).
		SetSocketTimeout(cfg.SocketTimeout)

	if cfg.EnableCompression {
		clientOptions.SetCompressors([]string{"zstd", "snappy", "zlib"})
	}

	clientOptions.SetRetryWrites(true)
	clientOptions.SetRetryReads(true)

	client, err := mongo.Connect(ctx, clientOptions)
	if err != nil {
		return nil, err
	}

	if err := client.Ping(ctx, nil); err != nil {
		return nil, err
	}

	db := client.Database(databaseName)
	mongoDB := &MongoDB{
		Client:          client,
		Database:        db,
		Pens:            db.Collection("pens"),
		Doses:           db.Collection("doses"),
		Weights:         db.Collection("weights"),
		PenSizes:        db.Collection("pen_sizes"),
		PenSnapshots:    db.Collection("pen_snapshots"),
		SystemSnapshots: db.Collection("system_snapshots"),
		Logs:            db.Collection("logs"),
		Users:           db.Collection("users"),
		Tokens:          db.Collection("tokens"),
	}

	if err := mongoDB.createIndexes(ctx); err != nil {
		return nil, err
	}

	return mongoDB, nil
}

// createIndexes creates necessary indexes for collections.
func (m *MongoDB) createIndexes(ctx context.Context) error {
	// Pens: all queries are per user.
	pensUserIndex := mongo.IndexModel{
		Keys:    bson.D{{Key: "user_id", Value: 1}},
		Options: options.Index().SetUnique(false),
	}
	if _, err := m.Pens.Indexes().CreateOne(ctx, pensUserIndex); err != nil {
		return err
	}

	// Doses: per-user listing and per-pen filtering.
	dosesUserPenIndex := mongo.IndexModel{
		Keys:    bson.D{{Key: "user_id", Value: 1}, {Key: "pen_id", Value: 1}},
		Options: options.Index().SetUnique(false),
	}
	_, _ = m.Doses.Indexes().CreateOne(ctx, dosesUserPenIndex)

	dosesUserDateIndex := mongo.IndexModel{
		Keys:    bson.D{{Key: "user_id", Value: 1}, {Key: "date", Value: 1}},
		Options: options.Index().SetUnique(false),
	}
	_, _ = m.Doses.Indexes().CreateOne(ctx, dosesUserDateIndex)

	// Weights: ordered per-user history.
	weightsUserDateIndex := mongo.IndexModel{
		Keys:    bson.D{{Key: "user_id", Value: 1}, {Key: "date", Value: 1}},
		Options: options.Index().SetUnique(false),
	}
	_, _ = m.Weights.Indexes().CreateOne(ctx, weightsUserDateIndex)

	// Pen sizes index: active configurations.
	penSizesIndex := mongo.IndexModel{
		Keys:    bson.D{{Key: "active", Value: 1}},
		Options: options.Index().SetUnique(false),
	}
	_, _ = m.PenSizes.Indexes().CreateOne(ctx, penSizesIndex)

	// Snapshots: one document per (user, pen, day) and per (user, day);
	// saving again on the same day overwrites.
	penSnapshotIndex := mongo.IndexModel{
		Keys:    bson.D{{Key: "user_id", Value: 1}, {Key: "pen_id", Value: 1}, {Key: "date", Value: 1}},
		Options: options.Index().SetUnique(true),
	}
	_, _ = m.PenSnapshots.Indexes().CreateOne(ctx, penSnapshotIndex)

	systemSnapshotIndex := mongo.IndexModel{
		Keys:    bson.D{{Key: "user_id", Value: 1}, {Key: "date", Value: 1}},
		Options: options.Index().SetUnique(true),
	}
	_, _ = m.SystemSnapshots.Indexes().CreateOne(ctx, systemSnapshotIndex)

	// Logs index: request_id for querying. The TTL index is managed by SetLogsTTL.
	requestIDIndex := mongo.IndexModel{
		Keys:    bson.D{{Key: "request_id", Value: 1}},
		Options: options.Index().SetUnique(false),
	}
	_, _ = m.Logs.Indexes().CreateOne(ctx, requestIDIndex)

	// Users indexes.
	emailIndex := mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	}
	_, _ = m.Users.Indexes().CreateOne(ctx, emailIndex)

	// Tokens indexes.
	tokenIndex := mongo.IndexModel{
		Keys:    bson.D{{Key: "token", Value: 1}},
		Options: options.Index().SetUnique(true),
	}
	_, _ = m.Tokens.Indexes().CreateOne(ctx, tokenIndex)

	userIDTypeIndex := mongo.IndexModel{
		Keys:    bson.D{{Key: "user_id", Value: 1}, {Key: "type", Value: 1}},
		Options: options.Index().SetUnique(false),
	}
	_, _ = m.Tokens.Indexes().CreateOne(ctx, userIDTypeIndex)

	// TTL index for tokens (auto-delete expired tokens).
	tokenTTLIndex := mongo.IndexModel{
		Keys:    bson.D{{Key: "expires_at", Value: 1}},
		Options: options.Index().SetExpireAfterSeconds(0), // 0 means use expires_at field
	}
	_, _ = m.Tokens.Indexes().CreateOne(ctx, tokenTTLIndex)

	return nil
}

// SetLogsTTL updates the TTL index for the logs collection.
func (m *MongoDB) SetLogsTTL(ctx context.Context, ttlDays int) error {
	// Drop the existing TTL index if present; it may carry a different TTL.
	_, _ = m.Logs.Indexes().DropOne(ctx, "timestamp_1")

	ttlSeconds := int32(ttlDays * 24 * 60 * 60)
	ttlIndex := mongo.IndexModel{
		Keys:    bson.D{{Key: "timestamp", Value: 1}},
		Options: options.Index().SetExpireAfterSeconds(ttlSeconds),
	}
	_, err := m.Logs.Indexes().CreateOne(ctx, ttlIndex)
	if err != nil {
		errMsg := err.Error()
		if errMsg == "index already exists" || errMsg == "IndexOptionsConflict" {
			return nil
		}
	}
	return err
}

// Close closes the MongoDB connection.
func (m *MongoDB) Close(ctx context.Context) error {
	return m.Client.Disconnect(ctx)
}

// HealthCheck verifies the MongoDB connection is healthy.
func (m *MongoDB) HealthCheck(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	return m.Client.Ping(ctx, nil)
}
