package service

import (
	"calorie-counter-api/internal/repository"
)

// Managerer is the interface for the service manager
type Managerer interface {
	GetUserService() UserServicer
	Close() error
}

// Manager is the implementation of the service manager
type Manager struct {
	userService UserServicer
	repository  repository.Storer
}

var _ Managerer = &Manager{}

// NewManager creates a service manager backed by the repository store
func NewManager(repository repository.Storer) *Manager {
	return &Manager{
		userService: NewUserService(repository.GetUserRepository()),
		repository:  repository,
	}
}

// GetUserService returns the user service
func (service *Manager) GetUserService() UserServicer {
	return service.userService
}

// Close closes the service
func (service *Manager) Close() error {
	if service.repository != nil {
		return service.repository.Close()
	}
	return &Error{Message: "Service repository is nil"}
}
