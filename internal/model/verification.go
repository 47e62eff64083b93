package model

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// Verification is a one-time email verification code bound to a user.
// Active flips to true exactly once, when the code is redeemed.
type Verification struct {
	ID        bson.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID    bson.ObjectID `bson:"user_id"       json:"user_id"`
	Code      string        `bson:"code"          json:"-"`
	Active    bool          `bson:"active"        json:"active"`
	ExpiresAt time.Time     `bson:"expires_at"    json:"expires_at"`
	CreatedAt time.Time     `bson:"created_at"    json:"created_at"`
	UpdatedAt time.Time     `bson:"updated_at"    json:"updated_at"`
}
