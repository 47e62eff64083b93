package model

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// News is a published article. Media files referenced by Photos and Video
// live on disk; the document stores only their public paths.
type News struct {
	ID           bson.ObjectID `bson:"_id,omitempty"  json:"id"`
	Title        string        `bson:"title"          json:"title"`
	Description  string        `bson:"description"    json:"description"`
	Author       string        `bson:"author"         json:"author"`
	CategoryID   bson.ObjectID `bson:"category_id"    json:"category_id"`
	PublishedAt  string        `bson:"published_at"   json:"published_at"`
	IsTopNews    bool          `bson:"is_top_news"    json:"is_top_news"`
	PlaceOfMedia string        `bson:"place_of_media" json:"place_of_media"`
	Photos       []string      `bson:"photos"         json:"photos"`
	Video        string        `bson:"video"          json:"video"`
	Views        int64         `bson:"views"          json:"views"`
	Active       bool          `bson:"active"         json:"active"`
	CreatedAt    time.Time     `bson:"created_at"     json:"created_at"`
	UpdatedAt    time.Time     `bson:"updated_at"     json:"updated_at"`
}
