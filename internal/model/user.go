package model

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// Roles a user can hold. Admins are verified at creation time.
const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

// User represents an account in the publication backend.
type User struct {
	ID           bson.ObjectID `bson:"_id,omitempty"  json:"id"`
	Username     string        `bson:"username"       json:"username"`
	Email        string        `bson:"email"          json:"email"`
	PasswordHash string        `bson:"password_hash"  json:"-"`
	Phone        string        `bson:"phone"          json:"phone"`
	Role         string        `bson:"role"           json:"role"`
	IsVerified   bool          `bson:"is_verified"    json:"is_verified"`
	CreatedAt    time.Time     `bson:"created_at"     json:"created_at"`
	UpdatedAt    time.Time     `bson:"updated_at"     json:"updated_at"`
}

// IsAdmin reports whether the user holds the admin role.
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
