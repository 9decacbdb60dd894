package repository

// Storer is the interface for the repository store
type Storer interface {
	GetUserRepository() UserRepositoryer
	Close() error
}
