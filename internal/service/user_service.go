package service

import (
	"context"
	"fmt"

	"calorie-counter-api/internal/log"
	"calorie-counter-api/internal/model"
	"calorie-counter-api/internal/repository"
)

// UserServicer is the interface for the user service
type UserServicer interface {
	FindAllUsers(ctx context.Context) ([]model.User, error)
	SaveUser(ctx context.Context, user *model.User) error
	FindUserByEmail(ctx context.Context, email string) (*model.User, error)
	UpdateUser(ctx context.Context, user *model.User) (*model.User, error)
	DeleteUser(ctx context.Context, email string) error
	FindUsersByGender(ctx context.Context, gender string) ([]model.User, error)
}

// UserService forwards every operation to the user repository
type UserService struct {
	userRepository repository.UserRepositoryer
}

var _ UserServicer = &UserService{}

// NewUserService creates a new user service
func NewUserService(userRepository repository.UserRepositoryer) UserServicer {
	return &UserService{
		userRepository,
	}
}

// FindAllUsers gets every stored user in insertion order
func (service *UserService) FindAllUsers(ctx context.Context) ([]model.User, error) {
	users, err := service.userRepository.FindAllUsers(ctx)
	if err != nil {
		return nil, failure(ctx, err, "Error finding users")
	}
	return users, nil
}

// SaveUser stores the user as a new record
func (service *UserService) SaveUser(ctx context.Context, user *model.User) error {
	if err := service.userRepository.SaveUser(ctx, user); err != nil {
		return failure(ctx, err, "Error saving user")
	}
	return nil
}

// FindUserByEmail gets the first user with the email, nil when there is none
func (service *UserService) FindUserByEmail(ctx context.Context, email string) (*model.User, error) {
	user, err := service.userRepository.FindUserByEmail(ctx, email)
	if err != nil {
		return nil, failure(ctx, err, fmt.Sprintf("Error finding user by email: %v", email))
	}
	return user, nil
}

// UpdateUser replaces the first user with the same email, nil when there is none
func (service *UserService) UpdateUser(ctx context.Context, user *model.User) (*model.User, error) {
	updatedUser, err := service.userRepository.UpdateUser(ctx, user)
	if err != nil {
		return nil, failure(ctx, err, "Error updating user")
	}
	return updatedUser, nil
}

// DeleteUser removes the first user with the email
func (service *UserService) DeleteUser(ctx context.Context, email string) error {
	if err := service.userRepository.DeleteUser(ctx, email); err != nil {
		return failure(ctx, err, fmt.Sprintf("Error deleting user by email: %v", email))
	}
	return nil
}

// FindUsersByGender gets the users with the gender in insertion order
func (service *UserService) FindUsersByGender(ctx context.Context, gender string) ([]model.User, error) {
	users, err := service.userRepository.FindUsersByGender(ctx, gender)
	if err != nil {
		return nil, failure(ctx, err, fmt.Sprintf("Error finding users by gender: %v", gender))
	}
	return users, nil
}

func failure(ctx context.Context, err error, message string) error {
	if logger, loggerErr := log.GetLoggerFromContext(ctx); loggerErr == nil {
		logger.Error(err, message)
	}
	return fmt.Errorf("%s: %w", message, err)
}
