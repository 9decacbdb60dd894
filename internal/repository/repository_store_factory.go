package repository

import (
	"calorie-counter-api/internal/config"
)

// StoreFactoryer is the interface for the repository store factories
type StoreFactoryer interface {
	CreateRepositoryStore(config *config.Config) (Storer, error)
}
