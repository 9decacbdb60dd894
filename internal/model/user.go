package model

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Well known gender values. They are conventions only and are never enforced.
const (
	GenderMale   = "male"
	GenderFemale = "female"
)

// User is the model for a calorie counter user
type User struct {
	ID            primitive.ObjectID `bson:"_id,omitempty"`
	Email         string             `bson:"email"`
	Gender        string             `bson:"gender"`
	FirstName     string             `bson:"firstName"`
	LastName      string             `bson:"lastName"`
	Age           int                `bson:"age"`
	Weight        float64            `bson:"weight"`
	Height        float64            `bson:"height"`
	ActivityLevel string             `bson:"activityLevel"`
}

// Clone returns an independent copy of the user
func (user *User) Clone() *User {
	if user == nil {
		return nil
	}
	clone := *user
	return &clone
}
