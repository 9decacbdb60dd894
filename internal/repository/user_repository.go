package repository

import (
	"context"

	"calorie-counter-api/internal/model"
)

// UserRepositoryer is the interface for the user record store.
//
// Lookups match the email or gender field exactly. When several records share an email, the
// earliest inserted one is the one found, replaced or removed. Absence is reported with a nil
// user and a nil error.
type UserRepositoryer interface {
	FindAllUsers(ctx context.Context) ([]model.User, error)
	SaveUser(ctx context.Context, user *model.User) error
	FindUserByEmail(ctx context.Context, email string) (*model.User, error)
	UpdateUser(ctx context.Context, user *model.User) (*model.User, error)
	DeleteUser(ctx context.Context, email string) error
	FindUsersByGender(ctx context.Context, gender string) ([]model.User, error)
}
