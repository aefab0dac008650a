package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// User is a purchasing customer or an admin operator.
// Owned by the authentication system, this service only reads it.
type User struct {
	ID      primitive.ObjectID `bson:"_id,omitempty"`
	Phone   string             `bson:"phone"`
	Locale  string             `bson:"locale"`
	IsAdmin bool               `bson:"isAdmin"`
}

// TokenPayload is payload of session token
type TokenPayload struct {
	UserID string
}
