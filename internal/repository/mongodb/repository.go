package mongodb

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"

	"github.com/mamadbah2/abanico/internal/domain/models"
)

const projectionsCollection = "projections"

// ErrNotFound is returned when a projection record does not exist.
var ErrNotFound = errors.New("projection not found")

// MongoDBRepository stores calculated projections.
type MongoDBRepository struct {
	client     *mongo.Client
	collection *mongo.Collection
	logger     *zap.Logger
}

// NewMongoDBRepository connects to MongoDB and returns a repository over the projections collection.
func NewMongoDBRepository(ctx context.Context, uri string, dbName string, logger *zap.Logger) (*MongoDBRepository, error) {
	clientOptions := options.Client().ApplyURI(uri)
	client, err := mongo.Connect(ctx, clientOptions)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to mongodb: %w", err)
	}

	if err := client.Ping(ctx, nil); err != nil {
		return nil, fmt.Errorf("failed to ping mongodb: %w", err)
	}

	repo := NewWithCollection(client.Database(dbName).Collection(projectionsCollection), logger)
	repo.client = client
	return repo, nil
}

// NewWithCollection builds a repository over an existing collection handle.
func NewWithCollection(collection *mongo.Collection, logger *zap.Logger) *MongoDBRepository {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &MongoDBRepository{collection: collection, logger: logger}
}

// EnsureIndexes creates the calculated_at index used for recency queries.
func (r *MongoDBRepository) EnsureIndexes(ctx context.Context) error {
	_, err := r.collection.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "calculated_at", Value: -1}},
	})
	if err != nil {
		return fmt.Errorf("create projections index: %w", err)
	}
	return nil
}

// SaveProjection inserts a projection record.
func (r *MongoDBRepository) SaveProjection(ctx context.Context, record models.ProjectionRecord) error {
	if _, err := r.collection.InsertOne(ctx, record); err != nil {
		return fmt.Errorf("failed to insert projection %s: %w", record.ID, err)
	}
	r.logger.Debug("projection stored", zap.String("id", record.ID))
	return nil
}

// FindProjection loads a projection record by id.
func (r *MongoDBRepository) FindProjection(ctx context.Context, id string) (models.ProjectionRecord, error) {
	var record models.ProjectionRecord
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&record)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return models.ProjectionRecord{}, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	if err != nil {
		return models.ProjectionRecord{}, fmt.Errorf("failed to load projection %s: %w", id, err)
	}
	return record, nil
}

// Close closes the MongoDB connection.
func (r *MongoDBRepository) Close(ctx context.Context) error {
	if r.client == nil {
		return nil
	}
	return r.client.Disconnect(ctx)
}
