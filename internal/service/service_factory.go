package service

import (
	"fmt"

	"github.com/rs/zerolog/log"

	"calorie-counter-api/internal/config"
	"calorie-counter-api/internal/memory"
	"calorie-counter-api/internal/mongo"
	"calorie-counter-api/internal/postgres"
	"calorie-counter-api/internal/repository"
)

// Factoryer is a factory for creating a service manager
type Factoryer interface {
	CreateServiceManager(*config.Config) (Managerer, error)
}

// Factory is the implementation of the service factory
type Factory struct{}

var _ Factoryer = &Factory{}

// CreateServiceManager creates the repository store selected by the configuration and the
// services on top of it
func (serviceFactory *Factory) CreateServiceManager(config *config.Config) (Managerer, error) {
	if config == nil {
		return nil, &Error{Message: "Configuration is nil"}
	}
	storeFactory, err := storeFactoryFor(config.Storage)
	if err != nil {
		return nil, err
	}

	store, err := storeFactory.CreateRepositoryStore(config)
	if err != nil {
		log.Error().Err(err).Msg(fmt.Sprintf(
			"Failed to create repository store. storage: %s environment: %s",
			config.Storage,
			config.Environment,
		))
		return nil, err
	}

	return NewManager(store), nil
}

func storeFactoryFor(storage string) (repository.StoreFactoryer, error) {
	switch storage {
	case config.MemoryStorage:
		return &memory.RepositoryStoreFactory{}, nil
	case config.MongoStorage:
		return &mongo.RepositoryStoreFactory{}, nil
	case config.PostgresStorage:
		return &postgres.RepositoryStoreFactory{}, nil
	default:
		return nil, &Error{Message: fmt.Sprintf("Unknown storage: %s", storage)}
	}
}
