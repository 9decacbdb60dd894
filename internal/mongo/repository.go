package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/mongo"
)

// Repository holds the collection coordinates shared by the mongo repositories
type Repository struct {
	dbName         string
	collectionName string
	client         *mongo.Client
}

// NewRepository creates a new mongo repository bound to a collection
func NewRepository(client *mongo.Client, dbName, collectionName string) *Repository {
	return &Repository{
		dbName:         dbName,
		collectionName: collectionName,
		client:         client,
	}
}

func (mongoRepository *Repository) getCollection() *mongo.Collection {
	return mongoRepository.client.Database(
		mongoRepository.dbName,
	).Collection(mongoRepository.collectionName)
}

// Insert inserts a document in the collection and returns its id
func (mongoRepository *Repository) Insert(ctx context.Context, document interface{}) (interface{}, error) {
	collection := mongoRepository.getCollection()
	result, err := collection.InsertOne(ctx, document)
	if err != nil {
		return nil, fmt.Errorf("Insertion error: %v", err)
	}
	return result.InsertedID, nil
}
