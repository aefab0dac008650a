package repository

import (
	"context"
	"errors"

	"github.com/shopkit/adminpanel/internal/models"
	"github.com/shopkit/adminpanel/internal/repository/mongodb"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// UserRepository implements read access to the users collection
type UserRepository struct {
	users *mongo.Collection
}

// NewUserRepository creates new UserRepository instance
func NewUserRepository(db *mongodb.DB) *UserRepository {
	return &UserRepository{users: db.Collection("users")}
}

// GetUserByID returns user by id
func (ur *UserRepository) GetUserByID(ctx context.Context, id primitive.ObjectID) (*models.User, error) {
	user := models.User{}
	err := ur.users.FindOne(ctx, bson.M{"_id": id}).Decode(&user)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, models.ErrUserNotFound
		}
		return nil, err
	}

	return &user, nil
}
