package service

import (
	"context"

	"github.com/shopkit/adminpanel/internal/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// UserService checks session users against the users collection
type UserService struct {
	users UserRepository
}

// NewUserService creates new UserService instance
func NewUserService(users UserRepository) *UserService {
	return &UserService{users: users}
}

// AdminUser returns the user when it exists and has the admin flag.
// Returns ErrUserNotFound for a stale session, ErrPermissionDenied for
// a non-admin user.
func (us *UserService) AdminUser(ctx context.Context, id string) (*models.User, error) {
	uid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, models.ErrUserNotFound
	}

	user, err := us.users.GetUserByID(ctx, uid)
	if err != nil {
		return nil, err
	}

	if !user.IsAdmin {
		return nil, models.ErrPermissionDenied
	}

	return user, nil
}
