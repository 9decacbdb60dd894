package postgres

import (
	"calorie-counter-api/internal/repository"
)

// Pooler is the connection pool owned by the store
type Pooler interface {
	Close()
}

// RepositoryStore is a postgres specific repository store
type RepositoryStore struct {
	userRepository repository.UserRepositoryer
	pool           Pooler
}

var _ repository.Storer = &RepositoryStore{}

// GetUserRepository returns the user repository
func (postgresRepository *RepositoryStore) GetUserRepository() repository.UserRepositoryer {
	return postgresRepository.userRepository
}

// Close closes the connection pool
func (postgresRepository *RepositoryStore) Close() error {
	if postgresRepository.pool == nil {
		return &repository.Error{
			Message: "Repository pool is nil",
		}
	}
	postgresRepository.pool.Close()
	return nil
}
