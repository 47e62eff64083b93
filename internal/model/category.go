package model

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// Category groups news articles. Names are stored lowercased and are unique
// among active categories only, so a deactivated name can be reused.
type Category struct {
	ID        bson.ObjectID `bson:"_id,omitempty" json:"id"`
	Name      string        `bson:"name"          json:"name"`
	Active    bool          `bson:"active"        json:"active"`
	CreatedAt time.Time     `bson:"created_at"    json:"created_at"`
	UpdatedAt time.Time     `bson:"updated_at"    json:"updated_at"`
}
