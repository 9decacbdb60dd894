package memory

import (
	"calorie-counter-api/internal/config"
	"calorie-counter-api/internal/repository"
)

// RepositoryStoreFactory is the implementation of the in-memory repository store factory
type RepositoryStoreFactory struct{}

var _ repository.StoreFactoryer = &RepositoryStoreFactory{}

// CreateRepositoryStore creates an in-memory repository store. The configuration is not used.
func (repositoryFactory *RepositoryStoreFactory) CreateRepositoryStore(
	_ *config.Config,
) (repository.Storer, error) {
	return NewRepositoryStore(), nil
}
