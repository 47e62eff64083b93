package model

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// Comment is a user comment on a news article.
type Comment struct {
	ID        bson.ObjectID `bson:"_id,omitempty" json:"id"`
	NewsID    bson.ObjectID `bson:"news_id"       json:"news_id"`
	UserID    bson.ObjectID `bson:"user_id"       json:"user_id"`
	Text      string        `bson:"text"          json:"text"`
	Likes     int64         `bson:"likes"         json:"likes"`
	CreatedAt time.Time     `bson:"created_at"    json:"created_at"`
	UpdatedAt time.Time     `bson:"updated_at"    json:"updated_at"`
}
