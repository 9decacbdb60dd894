package memory

import (
	"context"
	"slices"
	"sync"

	"calorie-counter-api/internal/model"
	"calorie-counter-api/internal/repository"
)

// UserRepository keeps user records in insertion order in process memory.
// Records are copied on the way in and on the way out, so callers never share state with the store.
type UserRepository struct {
	mutex sync.RWMutex
	users []model.User
}

var _ repository.UserRepositoryer = &UserRepository{}

// NewUserRepository creates an empty in-memory user repository
func NewUserRepository() *UserRepository {
	return &UserRepository{}
}

// FindAllUsers returns a copy of every stored user in insertion order
func (userRepository *UserRepository) FindAllUsers(_ context.Context) ([]model.User, error) {
	userRepository.mutex.RLock()
	defer userRepository.mutex.RUnlock()

	users := make([]model.User, len(userRepository.users))
	copy(users, userRepository.users)
	return users, nil
}

// SaveUser appends the user. Existing records with the same email are left in place.
func (userRepository *UserRepository) SaveUser(_ context.Context, user *model.User) error {
	if user == nil {
		return repository.ErrNilUser
	}
	userRepository.mutex.Lock()
	defer userRepository.mutex.Unlock()

	userRepository.users = append(userRepository.users, *user)
	return nil
}

// FindUserByEmail returns the first user with the email, nil if there is none
func (userRepository *UserRepository) FindUserByEmail(_ context.Context, email string) (*model.User, error) {
	userRepository.mutex.RLock()
	defer userRepository.mutex.RUnlock()

	index := userRepository.indexOf(email)
	if index == -1 {
		return nil, nil
	}
	return userRepository.users[index].Clone(), nil
}

// UpdateUser replaces the first user sharing the given user's email and returns the stored value.
// It returns nil and changes nothing when no user has that email.
func (userRepository *UserRepository) UpdateUser(_ context.Context, user *model.User) (*model.User, error) {
	if user == nil {
		return nil, repository.ErrNilUser
	}
	userRepository.mutex.Lock()
	defer userRepository.mutex.Unlock()

	index := userRepository.indexOf(user.Email)
	if index == -1 {
		return nil, nil
	}
	userRepository.users[index] = *user
	return userRepository.users[index].Clone(), nil
}

// DeleteUser removes the first user with the email, if any
func (userRepository *UserRepository) DeleteUser(_ context.Context, email string) error {
	userRepository.mutex.Lock()
	defer userRepository.mutex.Unlock()

	index := userRepository.indexOf(email)
	if index == -1 {
		return nil
	}
	userRepository.users = slices.Delete(userRepository.users, index, index+1)
	return nil
}

// FindUsersByGender returns the users with the gender in insertion order, never nil
func (userRepository *UserRepository) FindUsersByGender(_ context.Context, gender string) ([]model.User, error) {
	userRepository.mutex.RLock()
	defer userRepository.mutex.RUnlock()

	users := []model.User{}
	for _, user := range userRepository.users {
		if user.Gender == gender {
			users = append(users, user)
		}
	}
	return users, nil
}

// clear drops every record
func (userRepository *UserRepository) clear() {
	userRepository.mutex.Lock()
	defer userRepository.mutex.Unlock()

	userRepository.users = nil
}

// indexOf must be called with the mutex held
func (userRepository *UserRepository) indexOf(email string) int {
	for index, user := range userRepository.users {
		if user.Email == email {
			return index
		}
	}
	return -1
}
