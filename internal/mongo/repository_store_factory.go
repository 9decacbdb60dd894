package mongo

import (
	"context"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"calorie-counter-api/internal/config"
	"calorie-counter-api/internal/repository"
)

// RepositoryStoreFactory is the implementation of the mongo repository store factory
type RepositoryStoreFactory struct{}

var _ repository.StoreFactoryer = &RepositoryStoreFactory{}

// CreateRepositoryStore connects to mongo and creates a repository store
func (repositoryFactory *RepositoryStoreFactory) CreateRepositoryStore(
	config *config.Config,
) (repository.Storer, error) {
	client, err := mongo.Connect(context.Background(), options.Client().ApplyURI(config.UserDB.URI))
	if err != nil {
		return nil, err
	}

	return &RepositoryStore{
		client:         client,
		userRepository: NewUserRepository(client, config.UserDB.Name),
	}, nil
}
