package cache

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoStore persists compiled artifacts in a MongoDB collection.
type MongoStore struct {
	client    *mongo.Client
	database  *mongo.Database
	artifacts *mongo.Collection
}

// NewMongoStore connects to MongoDB and returns a MongoStore backed by the
// given database's "artifacts" collection.
func NewMongoStore(ctx context.Context, connectionString, dbName string) (*MongoStore, error) {
	clientOptions := options.Client().ApplyURI(connectionString)
	client, err := mongo.Connect(ctx, clientOptions)
	if err != nil {
		return nil, err
	}

	if err := client.Ping(ctx, nil); err != nil {
		return nil, err
	}

	db := client.Database(dbName)
	return &MongoStore{
		client:    client,
		database:  db,
		artifacts: db.Collection("artifacts"),
	}, nil
}

// Close closes the MongoDB connection.
func (s *MongoStore) Close(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}

// Get retrieves a compiled artifact by content hash.
func (s *MongoStore) Get(ctx context.Context, hash string) (*Artifact, error) {
	var artifact Artifact
	err := s.artifacts.FindOne(ctx, bson.M{"_id": hash}).Decode(&artifact)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}
	return &artifact, nil
}

// Put upserts a compiled artifact.
func (s *MongoStore) Put(ctx context.Context, artifact *Artifact) error {
	_, err := s.artifacts.ReplaceOne(
		ctx,
		bson.M{"_id": artifact.Hash},
		artifact,
		options.Replace().SetUpsert(true),
	)
	return err
}
