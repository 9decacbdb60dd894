package memory

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"calorie-counter-api/internal/model"
	"calorie-counter-api/internal/repository"
)

func newUser(email, gender string) *model.User {
	user := model.NewUser()
	user.Email = email
	user.Gender = gender
	return user
}

func TestMemoryUserRepository(test *testing.T) {
	ctx := context.Background()

	test.Run("SaveUser_FindUserByEmail_Success", func(test *testing.T) {
		repo := NewUserRepository()
		user := model.NewUser()

		err := repo.SaveUser(ctx, user)
		assert.NoError(test, err)

		foundUser, err := repo.FindUserByEmail(ctx, user.Email)
		assert.NoError(test, err)
		assert.Equal(test, user, foundUser)
		assert.NotSame(test, user, foundUser)
	})

	test.Run("SaveUser_Nil_Error", func(test *testing.T) {
		repo := NewUserRepository()

		err := repo.SaveUser(ctx, nil)

		assert.Equal(test, repository.ErrNilUser, err)
		users, _ := repo.FindAllUsers(ctx)
		assert.Empty(test, users)
	})

	test.Run("SaveUser_Duplicate_Email_Appends", func(test *testing.T) {
		repo := NewUserRepository()
		first := newUser("a@x.com", model.GenderFemale)
		second := newUser("a@x.com", model.GenderMale)

		require.NoError(test, repo.SaveUser(ctx, first))
		require.NoError(test, repo.SaveUser(ctx, second))

		users, err := repo.FindAllUsers(ctx)
		assert.NoError(test, err)
		assert.Len(test, users, 2)

		foundUser, err := repo.FindUserByEmail(ctx, "a@x.com")
		assert.NoError(test, err)
		assert.Equal(test, model.GenderFemale, foundUser.Gender)
	})

	test.Run("SaveUser_Caller_Mutation_Not_Stored", func(test *testing.T) {
		repo := NewUserRepository()
		user := model.NewUser()
		require.NoError(test, repo.SaveUser(ctx, user))

		user.FirstName = "Changed"

		foundUser, err := repo.FindUserByEmail(ctx, user.Email)
		assert.NoError(test, err)
		assert.Equal(test, "Test", foundUser.FirstName)
	})

	test.Run("FindUserByEmail_Not_Found", func(test *testing.T) {
		repo := NewUserRepository()
		require.NoError(test, repo.SaveUser(ctx, model.NewUser()))

		foundUser, err := repo.FindUserByEmail(ctx, "notfound@example.com")

		assert.NoError(test, err)
		assert.Nil(test, foundUser)
	})

	test.Run("FindUserByEmail_Case_Sensitive", func(test *testing.T) {
		repo := NewUserRepository()
		require.NoError(test, repo.SaveUser(ctx, newUser("a@x.com", model.GenderFemale)))

		foundUser, err := repo.FindUserByEmail(ctx, "A@X.COM")
		assert.NoError(test, err)
		assert.Nil(test, foundUser)

		foundUser, err = repo.FindUserByEmail(ctx, " a@x.com")
		assert.NoError(test, err)
		assert.Nil(test, foundUser)
	})

	test.Run("FindAllUsers_Returns_Copy", func(test *testing.T) {
		repo := NewUserRepository()
		require.NoError(test, repo.SaveUser(ctx, model.NewUser()))

		users, err := repo.FindAllUsers(ctx)
		require.NoError(test, err)
		users[0].Email = "changed@example.com"

		stored, err := repo.FindAllUsers(ctx)
		assert.NoError(test, err)
		assert.Len(test, stored, 1)
		assert.Equal(test, "test@example.com", stored[0].Email)
	})

	test.Run("FindAllUsers_Empty", func(test *testing.T) {
		repo := NewUserRepository()

		users, err := repo.FindAllUsers(ctx)

		assert.NoError(test, err)
		assert.NotNil(test, users)
		assert.Empty(test, users)
	})

	test.Run("UpdateUser_Success", func(test *testing.T) {
		repo := NewUserRepository()
		require.NoError(test, repo.SaveUser(ctx, newUser("a@x.com", model.GenderFemale)))
		require.NoError(test, repo.SaveUser(ctx, newUser("b@x.com", model.GenderMale)))

		updated := newUser("a@x.com", model.GenderFemale)
		updated.Weight = 58
		updated.ActivityLevel = "active"

		result, err := repo.UpdateUser(ctx, updated)
		assert.NoError(test, err)
		assert.Equal(test, updated, result)

		users, err := repo.FindAllUsers(ctx)
		assert.NoError(test, err)
		assert.Equal(test, []model.User{*updated, *newUser("b@x.com", model.GenderMale)}, users)
	})

	test.Run("UpdateUser_Not_Found", func(test *testing.T) {
		repo := NewUserRepository()
		require.NoError(test, repo.SaveUser(ctx, newUser("a@x.com", model.GenderFemale)))
		before, _ := repo.FindAllUsers(ctx)

		result, err := repo.UpdateUser(ctx, newUser("missing@x.com", model.GenderMale))

		assert.NoError(test, err)
		assert.Nil(test, result)
		after, _ := repo.FindAllUsers(ctx)
		assert.Equal(test, before, after)
	})

	test.Run("UpdateUser_Duplicate_Email_Replaces_First", func(test *testing.T) {
		repo := NewUserRepository()
		first := newUser("a@x.com", model.GenderFemale)
		second := newUser("a@x.com", model.GenderFemale)
		second.FirstName = "Second"
		require.NoError(test, repo.SaveUser(ctx, first))
		require.NoError(test, repo.SaveUser(ctx, second))

		updated := newUser("a@x.com", model.GenderMale)
		_, err := repo.UpdateUser(ctx, updated)
		require.NoError(test, err)

		users, _ := repo.FindAllUsers(ctx)
		assert.Equal(test, model.GenderMale, users[0].Gender)
		assert.Equal(test, "Second", users[1].FirstName)
	})

	test.Run("UpdateUser_Nil_Error", func(test *testing.T) {
		repo := NewUserRepository()

		result, err := repo.UpdateUser(ctx, nil)

		assert.Nil(test, result)
		assert.Equal(test, repository.ErrNilUser, err)
	})

	test.Run("DeleteUser_Success", func(test *testing.T) {
		repo := NewUserRepository()
		require.NoError(test, repo.SaveUser(ctx, newUser("a@x.com", model.GenderFemale)))

		err := repo.DeleteUser(ctx, "a@x.com")
		assert.NoError(test, err)

		foundUser, err := repo.FindUserByEmail(ctx, "a@x.com")
		assert.NoError(test, err)
		assert.Nil(test, foundUser)
	})

	test.Run("DeleteUser_Not_Found_No_Change", func(test *testing.T) {
		repo := NewUserRepository()
		require.NoError(test, repo.SaveUser(ctx, newUser("a@x.com", model.GenderFemale)))
		before, _ := repo.FindAllUsers(ctx)

		err := repo.DeleteUser(ctx, "missing@x.com")

		assert.NoError(test, err)
		after, _ := repo.FindAllUsers(ctx)
		assert.Equal(test, before, after)
	})

	test.Run("DeleteUser_Duplicate_Email_Removes_First", func(test *testing.T) {
		repo := NewUserRepository()
		first := newUser("a@x.com", model.GenderFemale)
		second := newUser("a@x.com", model.GenderMale)
		require.NoError(test, repo.SaveUser(ctx, first))
		require.NoError(test, repo.SaveUser(ctx, second))

		require.NoError(test, repo.DeleteUser(ctx, "a@x.com"))

		users, _ := repo.FindAllUsers(ctx)
		assert.Equal(test, []model.User{*second}, users)
	})

	test.Run("DeleteUser_Clears_Released_Slot", func(test *testing.T) {
		repo := NewUserRepository()
		require.NoError(test, repo.SaveUser(ctx, newUser("a@x.com", model.GenderFemale)))
		require.NoError(test, repo.SaveUser(ctx, newUser("b@x.com", model.GenderMale)))
		require.NoError(test, repo.SaveUser(ctx, newUser("c@x.com", model.GenderMale)))

		require.NoError(test, repo.DeleteUser(ctx, "a@x.com"))

		require.Len(test, repo.users, 2)
		released := repo.users[len(repo.users):3]
		assert.Equal(test, model.User{}, released[0])
	})

	test.Run("FindUsersByGender_Insertion_Order", func(test *testing.T) {
		repo := NewUserRepository()
		require.NoError(test, repo.SaveUser(ctx, newUser("m1@x.com", model.GenderMale)))
		require.NoError(test, repo.SaveUser(ctx, newUser("f1@x.com", model.GenderFemale)))
		require.NoError(test, repo.SaveUser(ctx, newUser("m2@x.com", model.GenderMale)))

		users, err := repo.FindUsersByGender(ctx, model.GenderMale)

		assert.NoError(test, err)
		assert.Len(test, users, 2)
		assert.Equal(test, "m1@x.com", users[0].Email)
		assert.Equal(test, "m2@x.com", users[1].Email)
	})

	test.Run("FindUsersByGender_None_Empty", func(test *testing.T) {
		repo := NewUserRepository()
		require.NoError(test, repo.SaveUser(ctx, newUser("m1@x.com", model.GenderMale)))

		users, err := repo.FindUsersByGender(ctx, "Male")

		assert.NoError(test, err)
		assert.NotNil(test, users)
		assert.Empty(test, users)
	})

	test.Run("Scenario_Save_Filter_Delete", func(test *testing.T) {
		repo := NewUserRepository()
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

		require.NoError(test, repo.DeleteUser(ctx, "a@x.com"))

		users, err = repo.FindAllUsers(ctx)
		assert.NoError(test, err)
		assert.Equal(test, []model.User{*b}, users)
	})

	test.Run("SaveUser_Concurrent_No_Lost_Writes", func(test *testing.T) {
		repo := NewUserRepository()
		const writers = 50

		var waitGroup sync.WaitGroup
		for i := 0; i < writers; i++ {
			waitGroup.Add(1)
			go func(i int) {
				defer waitGroup.Done()
				email := fmt.Sprintf("user%d@x.com", i)
				assert.NoError(test, repo.SaveUser(ctx, newUser(email, model.GenderMale)))
				_, _ = repo.FindUserByEmail(ctx, email)
				_, _ = repo.FindUsersByGender(ctx, model.GenderMale)
			}(i)
		}
		waitGroup.Wait()

		users, err := repo.FindAllUsers(ctx)
		assert.NoError(test, err)
		assert.Len(test, users, writers)
	})
}

func TestMemoryRepositoryStore(test *testing.T) {
	test.Run("Close_Clears_Records", func(test *testing.T) {
		ctx := context.Background()
		store, err := (&RepositoryStoreFactory{}).CreateRepositoryStore(nil)
		require.NoError(test, err)
		require.NoError(test, store.GetUserRepository().SaveUser(ctx, model.NewUser()))

		assert.NoError(test, store.Close())

		users, err := store.GetUserRepository().FindAllUsers(ctx)
		assert.NoError(test, err)
		assert.Empty(test, users)
	})

	test.Run("Close_Nil_Repository_Error", func(test *testing.T) {
		store := &RepositoryStore{}

		err := store.Close()

		assert.Error(test, err)
		assert.Equal(test, "Repository user repository is nil", err.Error())
	})
}
