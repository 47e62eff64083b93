package model

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// Media is an uploaded file attached to a news article by reference.
type Media struct {
	ID        bson.ObjectID `bson:"_id,omitempty" json:"id"`
	NewsID    bson.ObjectID `bson:"news_id"       json:"news_id"`
	Src       string        `bson:"src"           json:"src"`
	CreatedAt time.Time     `bson:"created_at"    json:"created_at"`
	UpdatedAt time.Time     `bson:"updated_at"    json:"updated_at"`
}
