package mongo

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"calorie-counter-api/internal/model"
	"calorie-counter-api/internal/repository"
)

const userCollectionName = "user"

// ObjectIDs are generated by the driver on insert, so ascending _id follows insertion order for a
// single writer process. Between processes it only orders to the second: documents inserted by
// different instances within the same second are ordered by each process's random ObjectID bytes.
var insertionOrder = bson.D{{Key: "_id", Value: 1}}

// UserRepository is a mongo specific user repository
type UserRepository struct {
	*Repository
}

var _ repository.UserRepositoryer = &UserRepository{}

// NewUserRepository creates a new mongo user repository
func NewUserRepository(client *mongo.Client, dbName string) *UserRepository {
	return &UserRepository{
		Repository: NewRepository(client, dbName, userCollectionName),
	}
}

// FindAllUsers gets every user in insertion order
func (userRepository *UserRepository) FindAllUsers(ctx context.Context) ([]model.User, error) {
	return userRepository.find(ctx, bson.M{})
}

// SaveUser inserts a new user document. The user's ID is ignored so that repeated saves
// of the same record create separate documents.
func (userRepository *UserRepository) SaveUser(ctx context.Context, user *model.User) error {
	if user == nil {
		return repository.ErrNilUser
	}
	document := *user
	document.ID = primitive.NilObjectID

	_, err := userRepository.Insert(ctx, &document)
	return err
}

// FindUserByEmail gets the first user with the email, returns nil if user is not found
func (userRepository *UserRepository) FindUserByEmail(ctx context.Context, email string) (*model.User, error) {
	collection := userRepository.getCollection()
	filter := bson.M{"email": email}
	var foundUser model.User

	err := collection.FindOne(ctx, filter, options.FindOne().SetSort(insertionOrder)).Decode(&foundUser)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("Error finding user by email: %v", err)
	}

	return &foundUser, nil
}

// UpdateUser replaces the first user document with the same email and returns the stored document.
// Returns nil when no document matches.
func (userRepository *UserRepository) UpdateUser(ctx context.Context, user *model.User) (*model.User, error) {
	if user == nil {
		return nil, repository.ErrNilUser
	}
	collection := userRepository.getCollection()
	filter := bson.M{"email": user.Email}

	// The replacement must not carry an _id, the matched document keeps its own
	replacement := *user
	replacement.ID = primitive.NilObjectID

	opts := options.FindOneAndReplace().
		SetReturnDocument(options.After).
		SetSort(insertionOrder)

	var updatedUser model.User
	err := collection.FindOneAndReplace(ctx, filter, &replacement, opts).Decode(&updatedUser)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("Error updating user: %v", err)
	}

	return &updatedUser, nil
}

// DeleteUser deletes the first user with the email, does nothing if there is none
func (userRepository *UserRepository) DeleteUser(ctx context.Context, email string) error {
	collection := userRepository.getCollection()
	filter := bson.M{"email": email}
	opts := options.FindOne().
		SetSort(insertionOrder).
		SetProjection(bson.M{"_id": 1})

	var found struct {
		ID primitive.ObjectID `bson:"_id"`
	}
	err := collection.FindOne(ctx, filter, opts).Decode(&found)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil
		}
		return fmt.Errorf("Error finding user to delete by email: %v", err)
	}

	_, err = collection.DeleteOne(ctx, bson.M{"_id": found.ID})
	if err != nil {
		return fmt.Errorf("Error deleting user by ID %s: %v", found.ID.Hex(), err)
	}
	return nil
}

// FindUsersByGender gets the users with the gender in insertion order
func (userRepository *UserRepository) FindUsersByGender(ctx context.Context, gender string) ([]model.User, error) {
	return userRepository.find(ctx, bson.M{"gender": gender})
}

func (userRepository *UserRepository) find(ctx context.Context, filter bson.M) ([]model.User, error) {
	collection := userRepository.getCollection()

	cursor, err := collection.Find(ctx, filter, options.Find().SetSort(insertionOrder))
	if err != nil {
		return nil, fmt.Errorf("Error finding users: %v", err)
	}

	users := []model.User{}
	if err := cursor.All(ctx, &users); err != nil {
		return nil, fmt.Errorf("Error decoding users: %v", err)
	}
	if users == nil {
		users = []model.User{}
	}
	return users, nil
}
