package memory

import (
	"calorie-counter-api/internal/repository"
)

// RepositoryStore is the in-memory repository store
type RepositoryStore struct {
	userRepository *UserRepository
}

var _ repository.Storer = &RepositoryStore{}

// NewRepositoryStore creates a store with an empty user repository
func NewRepositoryStore() *RepositoryStore {
	return &RepositoryStore{userRepository: NewUserRepository()}
}

// GetUserRepository returns the user repository
func (memoryRepository *RepositoryStore) GetUserRepository() repository.UserRepositoryer {
	return memoryRepository.userRepository
}

// Close discards every stored record
func (memoryRepository *RepositoryStore) Close() error {
	if memoryRepository.userRepository == nil {
		return &repository.Error{
			Message: "Repository user repository is nil",
		}
	}
	memoryRepository.userRepository.clear()
	return nil
}
