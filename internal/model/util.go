package model

// NewUser creates a sample user
func NewUser() *User {
	return &User{
		Email:         "test@example.com",
		Gender:        GenderFemale,
		FirstName:     "Test",
		LastName:      "User",
		Age:           30,
		Weight:        62.5,
		Height:        168,
		ActivityLevel: "moderate",
	}
}
