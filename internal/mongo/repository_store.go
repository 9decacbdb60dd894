package mongo

import (
	"context"

	"calorie-counter-api/internal/repository"
)

// Clienter specific client interface
type Clienter interface {
	Disconnect(ctx context.Context) error
}

// RepositoryStore is a mongo specific repository store
type RepositoryStore struct {
	userRepository repository.UserRepositoryer
	client         Clienter
}

var _ repository.Storer = &RepositoryStore{}

// GetUserRepository returns the user repository
func (mongoRepository *RepositoryStore) GetUserRepository() repository.UserRepositoryer {
	return mongoRepository.userRepository
}

// Close closes the mongo repository
func (mongoRepository *RepositoryStore) Close() error {
	if mongoRepository.client != nil {
		return mongoRepository.client.Disconnect(context.Background())
	}
	return &repository.Error{
		Message: "Repository client is nil",
	}
}
