package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"calorie-counter-api/internal/config"
	"calorie-counter-api/internal/repository"
)

// RepositoryStoreFactory is the implementation of the postgres repository store factory
type RepositoryStoreFactory struct{}

var _ repository.StoreFactoryer = &RepositoryStoreFactory{}

// CreateRepositoryStore opens a connection pool, makes sure the schema exists and creates a store
func (repositoryFactory *RepositoryStoreFactory) CreateRepositoryStore(
	config *config.Config,
) (repository.Storer, error) {
	ctx := context.Background()
	pool, err := pgxpool.New(ctx, config.Postgres.DSN)
	if err != nil {
		return nil, fmt.Errorf("could not create connection pool: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping database failed: %w", err)
	}
	if err := CreateSchema(ctx, pool); err != nil {
		pool.Close()
		return nil, err
	}

	return &RepositoryStore{
		pool:           pool,
		userRepository: NewUserRepository(pool),
	}, nil
}

// CreateSchema creates the tables the repositories use when they are missing
func CreateSchema(ctx context.Context, db Querier) error {
	for _, statement := range Schema {
		if _, err := db.Exec(ctx, statement); err != nil {
			return fmt.Errorf("could not create schema: %w", err)
		}
	}
	return nil
}
