package postgres

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"calorie-counter-api/internal/model"
	"calorie-counter-api/internal/repository"
)

const usersTable = "users"

// Schema creates the users table. Email is not unique.
var Schema = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id             BIGSERIAL PRIMARY KEY,
		email          TEXT NOT NULL,
		gender         TEXT NOT NULL DEFAULT '',
		first_name     TEXT NOT NULL DEFAULT '',
		last_name      TEXT NOT NULL DEFAULT '',
		age            INTEGER NOT NULL DEFAULT 0,
		weight         DOUBLE PRECISION NOT NULL DEFAULT 0,
		height         DOUBLE PRECISION NOT NULL DEFAULT 0,
		activity_level TEXT NOT NULL DEFAULT ''
	)`,
	`CREATE INDEX IF NOT EXISTS users_email_idx ON users (email)`,
}

var userColumns = []string{
	"email", "gender", "first_name", "last_name", "age", "weight", "height", "activity_level",
}

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// Querier is the subset of pgxpool.Pool the repository needs
type Querier interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// UserRepository is a postgres specific user repository. Rows are ordered by id, which
// follows insertion order.
type UserRepository struct {
	db Querier
}

var _ repository.UserRepositoryer = &UserRepository{}

// NewUserRepository creates a new postgres user repository
func NewUserRepository(db Querier) *UserRepository {
	return &UserRepository{db: db}
}

func scanUser(row pgx.Row) (*model.User, error) {
	user := &model.User{}
	err := row.Scan(
		&user.Email, &user.Gender, &user.FirstName, &user.LastName,
		&user.Age, &user.Weight, &user.Height, &user.ActivityLevel,
	)
	if err != nil {
		return nil, err
	}
	return user, nil
}

func scanUsers(rows pgx.Rows) ([]model.User, error) {
	defer rows.Close()
	users := []model.User{}
	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan user row: %w", err)
		}
		users = append(users, *user)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating user rows: %w", err)
	}
	return users, nil
}

// FindAllUsers gets every user ordered by insertion
func (userRepository *UserRepository) FindAllUsers(ctx context.Context) ([]model.User, error) {
	return userRepository.list(ctx, nil)
}

// SaveUser inserts a new row for the user
func (userRepository *UserRepository) SaveUser(ctx context.Context, user *model.User) error {
	if user == nil {
		return repository.ErrNilUser
	}
	sql, args, err := psql.Insert(usersTable).
		Columns(userColumns...).
		Values(userValues(user)...).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build insert user query: %w", err)
	}
	if _, err := userRepository.db.Exec(ctx, sql, args...); err != nil {
		return fmt.Errorf("failed to save user: %w", err)
	}
	return nil
}

// FindUserByEmail gets the first user with the email, nil when there is none
func (userRepository *UserRepository) FindUserByEmail(ctx context.Context, email string) (*model.User, error) {
	sql, args, err := psql.Select(userColumns...).
		From(usersTable).
		Where(sq.Eq{"email": email}).
		OrderBy("id").
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build find user by email query: %w", err)
	}

	user, err := scanUser(userRepository.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find user by email: %w", err)
	}
	return user, nil
}

// UpdateUser overwrites the first row with the user's email, nil when there is none
func (userRepository *UserRepository) UpdateUser(ctx context.Context, user *model.User) (*model.User, error) {
	if user == nil {
		return nil, repository.ErrNilUser
	}
	update := psql.Update(usersTable).Where(firstWithEmail(user.Email))
	values := userValues(user)
	for index, column := range userColumns {
		update = update.Set(column, values[index])
	}
	sql, args, err := update.Suffix(returningUserColumns()).ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build update user query: %w", err)
	}

	updatedUser, err := scanUser(userRepository.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to update user: %w", err)
	}
	return updatedUser, nil
}

// DeleteUser removes the first row with the email, if any
func (userRepository *UserRepository) DeleteUser(ctx context.Context, email string) error {
	sql, args, err := psql.Delete(usersTable).Where(firstWithEmail(email)).ToSql()
	if err != nil {
		return fmt.Errorf("failed to build delete user query: %w", err)
	}
	if _, err := userRepository.db.Exec(ctx, sql, args...); err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}
	return nil
}

// FindUsersByGender gets the users with the gender ordered by insertion
func (userRepository *UserRepository) FindUsersByGender(ctx context.Context, gender string) ([]model.User, error) {
	return userRepository.list(ctx, sq.Eq{"gender": gender})
}

func (userRepository *UserRepository) list(ctx context.Context, where sq.Sqlizer) ([]model.User, error) {
	builder := psql.Select(userColumns...).From(usersTable).OrderBy("id")
	if where != nil {
		builder = builder.Where(where)
	}
	sql, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list users query: %w", err)
	}
	rows, err := userRepository.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query users: %w", err)
	}
	return scanUsers(rows)
}

func firstWithEmail(email string) sq.Sqlizer {
	return sq.Expr("id = (SELECT id FROM users WHERE email = ? ORDER BY id LIMIT 1)", email)
}

func returningUserColumns() string {
	suffix := "RETURNING "
	for index, column := range userColumns {
		if index > 0 {
			suffix += ", "
		}
		suffix += column
	}
	return suffix
}

func userValues(user *model.User) []interface{} {
	return []interface{}{
		user.Email, user.Gender, user.FirstName, user.LastName,
		user.Age, user.Weight, user.Height, user.ActivityLevel,
	}
}
