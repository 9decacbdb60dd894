package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUser(test *testing.T) {
	test.Run("Clone_Is_Independent", func(test *testing.T) {
		user := NewUser()

		clone := user.Clone()
		clone.Email = "other@example.com"
		clone.Weight = 80

		assert.Equal(test, "test@example.com", user.Email)
		assert.Equal(test, 62.5, user.Weight)
		assert.NotSame(test, user, clone)
	})

	test.Run("Clone_Nil", func(test *testing.T) {
		var user *User
		assert.Nil(test, user.Clone())
	})
}
