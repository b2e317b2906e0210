package repository

import (
	"context"
	"fmt"
	"jersey_store/internal/domain"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type mongoDocumentStore struct {
	db  *mongo.Database
	log *logrus.Logger
}

func NewMongoDocumentStore(db *mongo.Database, logger *logrus.Logger) domain.DocumentStore {
	return &mongoDocumentStore{
		db:  db,
		log: logger,
	}
}

func (s *mongoDocumentStore) Insert(ctx context.Context, collection string, document any) (string, error) {
	res, err := s.db.Collection(collection).InsertOne(ctx, document)
	if err != nil {
		s.log.Errorf("Failed to insert document into collection '%s': %v", collection, err)
		return "", fmt.Errorf("could not insert document into %s: %w", collection, err)
	}

	oid, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		// Custom _id in the payload; stringify whatever the driver assigned.
		return fmt.Sprintf("%v", res.InsertedID), nil
	}

	s.log.Infof("Document inserted into collection '%s' with ID: %s", collection, oid.Hex())
	return oid.Hex(), nil
}

func (s *mongoDocumentStore) Find(ctx context.Context, collection string, filter any, limit int64) ([]map[string]any, error) {
	cursor, err := s.db.Collection(collection).Find(ctx, filter, options.Find().SetLimit(limit))
	if err != nil {
		s.log.Errorf("Failed to query collection '%s': %v", collection, err)
		return nil, fmt.Errorf("could not query %s: %w", collection, err)
	}
	defer cursor.Close(ctx)

	var documents []map[string]any
	for cursor.Next(ctx) {
		doc := bson.M{}
		if err := cursor.Decode(&doc); err != nil {
			s.log.Errorf("Failed to decode document from collection '%s': %v", collection, err)
			return nil, fmt.Errorf("error decoding document from %s: %w", collection, err)
		}
		if oid, ok := doc["_id"].(primitive.ObjectID); ok {
			doc["_id"] = oid.Hex()
		}
		documents = append(documents, doc)
	}

	if err := cursor.Err(); err != nil {
		s.log.Errorf("Error during document iteration for collection '%s': %v", collection, err)
		return nil, fmt.Errorf("error iterating documents from %s: %w", collection, err)
	}

	s.log.Debugf("Retrieved %d documents from collection '%s'", len(documents), collection)
	return documents, nil
}

func (s *mongoDocumentStore) Collections(ctx context.Context) ([]string, error) {
	names, err := s.db.ListCollectionNames(ctx, bson.D{})
	if err != nil {
		return nil, fmt.Errorf("could not list collections: %w", err)
	}
	return names, nil
}

func (s *mongoDocumentStore) Name() string {
	return s.db.Name()
}
