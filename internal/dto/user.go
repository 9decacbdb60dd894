package dto

import (
	"calorie-counter-api/internal/model"
)

// UserDTO is the JSON representation of a user
type UserDTO struct {
	Email         string  `json:"email"`
	Gender        string  `json:"gender"`
	FirstName     string  `json:"firstName"`
	LastName      string  `json:"lastName"`
	Age           int     `json:"age"`
	Weight        float64 `json:"weight"`
	Height        float64 `json:"height"`
	ActivityLevel string  `json:"activityLevel"`
}

// ConvertUserToUserDTO converts a user to a user DTO
func ConvertUserToUserDTO(user *model.User) *UserDTO {
	return &UserDTO{
		Email:         user.Email,
		Gender:        user.Gender,
		FirstName:     user.FirstName,
		LastName:      user.LastName,
		Age:           user.Age,
		Weight:        user.Weight,
		Height:        user.Height,
		ActivityLevel: user.ActivityLevel,
	}
}

// ConvertUsersToUserDTOs converts a list of users, never returning nil
func ConvertUsersToUserDTOs(users []model.User) []UserDTO {
	userDTOs := make([]UserDTO, len(users))
	for index := range users {
		userDTOs[index] = *ConvertUserToUserDTO(&users[index])
	}
	return userDTOs
}

// ConvertUserDTOToUser converts a user DTO to a user
func ConvertUserDTOToUser(userDTO *UserDTO) *model.User {
	return &model.User{
		Email:         userDTO.Email,
		Gender:        userDTO.Gender,
		FirstName:     userDTO.FirstName,
		LastName:      userDTO.LastName,
		Age:           userDTO.Age,
		Weight:        userDTO.Weight,
		Height:        userDTO.Height,
		ActivityLevel: userDTO.ActivityLevel,
	}
}
