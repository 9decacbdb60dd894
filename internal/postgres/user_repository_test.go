package postgres

import (
	"context"
	"os"
	"testing"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"calorie-counter-api/internal/model"
	"calorie-counter-api/internal/repository"
)

// PostgresTestDSNKey names the environment variable pointing the integration tests at a database
const PostgresTestDSNKey = "POSTGRES_TEST_DSN"

func newUser(email, gender string) *model.User {
	user := model.NewUser()
	user.Email = email
	user.Gender = gender
	return user
}

func setupTestRepository(test *testing.T) *UserRepository {
	dsn := os.Getenv(PostgresTestDSNKey)
	if dsn == "" {
		test.Skipf("%s not set, skipping postgres integration tests", PostgresTestDSNKey)
	}
	ctx := context.Background()
	pool, err := pgxpool.New(ctx, dsn)
	require.NoError(test, err)
	test.Cleanup(pool.Close)

	require.NoError(test, CreateSchema(ctx, pool))
	_, err = pool.Exec(ctx, "TRUNCATE users RESTART IDENTITY")
	require.NoError(test, err)

	return NewUserRepository(pool)
}

func TestQueries(test *testing.T) {
	test.Run("Delete_Targets_First_Row", func(test *testing.T) {
		sql, args, err := psql.Delete(usersTable).Where(firstWithEmail("a@x.com")).ToSql()

		assert.NoError(test, err)
		assert.Equal(test, "DELETE FROM users WHERE id = (SELECT id FROM users WHERE email = $1 ORDER BY id LIMIT 1)", sql)
		assert.Equal(test, []interface{}{"a@x.com"}, args)
	})

	test.Run("Returning_Columns", func(test *testing.T) {
		assert.Equal(
			test,
			"RETURNING email, gender, first_name, last_name, age, weight, height, activity_level",
			returningUserColumns(),
		)
	})

	test.Run("User_Values_Follow_Columns", func(test *testing.T) {
		user := model.NewUser()

		values := userValues(user)

		assert.Len(test, values, len(userColumns))
		assert.Equal(test, user.Email, values[0])
		assert.Equal(test, user.ActivityLevel, values[len(values)-1])
	})
}

func TestPostgresUserRepository(test *testing.T) {
	ctx := context.Background()

	test.Run("SaveUser_FindUserByEmail_Success", func(test *testing.T) {
		repo := setupTestRepository(test)
		user := model.NewUser()

		require.NoError(test, repo.SaveUser(ctx, user))

		foundUser, err := repo.FindUserByEmail(ctx, user.Email)
		assert.NoError(test, err)
		assert.Equal(test, user, foundUser)
	})

	test.Run("SaveUser_Nil_Error", func(test *testing.T) {
		repo := NewUserRepository(nil)

		err := repo.SaveUser(ctx, nil)

		assert.Equal(test, repository.ErrNilUser, err)
	})

	test.Run("FindUserByEmail_Not_Found", func(test *testing.T) {
		repo := setupTestRepository(test)

		foundUser, err := repo.FindUserByEmail(ctx, "notfound@example.com")

		assert.NoError(test, err)
		assert.Nil(test, foundUser)
	})

	test.Run("UpdateUser_Success", func(test *testing.T) {
		repo := setupTestRepository(test)
		require.NoError(test, repo.SaveUser(ctx, newUser("a@x.com", model.GenderFemale)))
		require.NoError(test, repo.SaveUser(ctx, newUser("a@x.com", model.GenderFemale)))

		updated := newUser("a@x.com", model.GenderMale)
		updated.Weight = 90

		result, err := repo.UpdateUser(ctx, updated)
		assert.NoError(test, err)
		assert.Equal(test, updated, result)

		users, err := repo.FindAllUsers(ctx)
		assert.NoError(test, err)
		assert.Equal(test, []model.User{*updated, *newUser("a@x.com", model.GenderFemale)}, users)
	})

	test.Run("UpdateUser_Not_Found", func(test *testing.T) {
		repo := setupTestRepository(test)

		result, err := repo.UpdateUser(ctx, newUser("missing@x.com", model.GenderMale))

		assert.NoError(test, err)
		assert.Nil(test, result)
	})

	test.Run("DeleteUser_Not_Found_No_Change", func(test *testing.T) {
		repo := setupTestRepository(test)
		require.NoError(test, repo.SaveUser(ctx, newUser("a@x.com", model.GenderFemale)))

		require.NoError(test, repo.DeleteUser(ctx, "missing@x.com"))

		users, err := repo.FindAllUsers(ctx)
		assert.NoError(test, err)
		assert.Len(test, users, 1)
	})

	test.Run("Scenario_Save_Filter_Delete", func(test *testing.T) {
		repo := setupTestRepository(test)
		a := newUser("a@x.com", model.GenderFemale)
		b := newUser("b@x.com", model.GenderMale)
		require.NoError(test, repo.SaveUser(ctx, a))
		require.NoError(test, repo.SaveUser(ctx, b))

		users, err := repo.FindAllUsers(ctx)
		assert.NoError(test, err)
		assert.Equal(test, []model.User{*a, *b}, users)

		males, err := repo.FindUsersByGender(ctx, model.GenderMale)
		assert.NoError(test, err)
		assert.Equal(test, []model.User{*b}, males)

		none, err := repo.FindUsersByGender(ctx, "other")
		assert.NoError(test, err)
		assert.NotNil(test, none)
		assert.Empty(test, none)

		require.NoError(test, repo.DeleteUser(ctx, "a@x.com"))

		users, err = repo.FindAllUsers(ctx)
		assert.NoError(test, err)
		assert.Equal(test, []model.User{*b}, users)
	})
}

type MockPool struct {
	mock.Mock
}

func (m *MockPool) Close() {
	m.Called()
}

func TestPostgresRepositoryStore(test *testing.T) {
	test.Run("Close_Pool_Nil_Error", func(test *testing.T) {
		store := &RepositoryStore{}

		err := store.Close()

		assert.Error(test, err)
		assert.Equal(test, "Repository pool is nil", err.Error())
	})

	test.Run("Close_Success", func(test *testing.T) {
		pool := new(MockPool)
		pool.On("Close").Return()

		store := &RepositoryStore{pool: pool}

		err := store.Close()

		assert.NoError(test, err)
		pool.AssertCalled(test, "Close")
	})
}
