package repository

import (
	"context"
	"regexp"
	"time"

	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"newsdesk/internal/model"
	"newsdesk/internal/query"
)

// NewsRepository defines the interface for news database operations.
type NewsRepository interface {
	CreateNews(ctx context.Context, news *model.News) (*model.News, error)
	GetNews(ctx context.Context, id string) (*model.News, error)
	ViewNews(ctx context.Context, id string) (*model.News, error)
	UpdateNews(ctx context.Context, id string, params UpdateNewsParams) (*model.News, error)
	DeactivateNews(ctx context.Context, id string) (*model.News, error)
	ListNews(ctx context.Context, q query.Query) ([]*model.News, int64, error)
	SearchNews(ctx context.Context, term string, q query.Query) ([]*model.News, int64, error)
}

// UpdateNewsParams defines the optional parameters for updating a news item.
// Only the fields that are not nil will be updated.
type UpdateNewsParams struct {
	Title        *string
	Description  *string
	Author       *string
	CategoryID   *bson.ObjectID
	IsTopNews    *bool
	PlaceOfMedia *string
	Photos       *[]string
	Video        *string
	Active       *bool
}

const newsCollection = "news"

type newsMongoRepository struct {
	db *mongo.Database
}

func NewNewsMongoRepository(ctx context.Context, logger *zerolog.Logger, db *mongo.Database) NewsRepository {
	collection := db.Collection(newsCollection)

	indexes := []mongo.IndexModel{
		{
			Keys: bson.D{{Key: "category_id", Value: 1}},
		},
		{
			Keys: bson.D{{Key: "title", Value: 1}},
		},
	}

	_, err := collection.Indexes().CreateMany(ctx, indexes)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to create news indexes")
	}

	return &newsMongoRepository{db: db}
}

func (r *newsMongoRepository) CreateNews(ctx context.Context, news *model.News) (*model.News, error) {
	now := time.Now()
	news.CreatedAt = now
	news.UpdatedAt = now
	if news.PublishedAt == "" {
		news.PublishedAt = now.Format(time.RFC3339)
	}

	result, err := r.db.Collection(newsCollection).InsertOne(ctx, news)
	if err != nil {
		return nil, err
	}

	if objectID, ok := result.InsertedID.(bson.ObjectID); ok {
		news.ID = objectID
	}

	return news, nil
}

func (r *newsMongoRepository) GetNews(ctx context.Context, id string) (*model.News, error) {
	objectID, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return nil, mongo.ErrNoDocuments
	}

	var news model.News
	if err := r.db.Collection(newsCollection).FindOne(ctx, bson.M{"_id": objectID}).Decode(&news); err != nil {
		return nil, err
	}

	return &news, nil
}

// ViewNews fetches a single article and bumps its view counter in the same
// write.
func (r *newsMongoRepository) ViewNews(ctx context.Context, id string) (*model.News, error) {
	objectID, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return nil, mongo.ErrNoDocuments
	}

	var news model.News
	err = r.db.Collection(newsCollection).FindOneAndUpdate(
		ctx,
		bson.M{"_id": objectID},
		bson.M{"$inc": bson.M{"views": 1}},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&news)
	if err != nil {
		return nil, err
	}

	return &news, nil
}

func (r *newsMongoRepository) UpdateNews(
	ctx context.Context,
	id string,
	params UpdateNewsParams,
) (*model.News, error) {
	objectID, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return nil, mongo.ErrNoDocuments
	}

	updateMap := bson.M{}
	if params.Title != nil {
		updateMap["title"] = *params.Title
	}
	if params.Description != nil {
		updateMap["description"] = *params.Description
	}
	if params.Author != nil {
		updateMap["author"] = *params.Author
	}
	if params.CategoryID != nil {
		updateMap["category_id"] = *params.CategoryID
	}
	if params.IsTopNews != nil {
		updateMap["is_top_news"] = *params.IsTopNews
	}
	if params.PlaceOfMedia != nil {
		updateMap["place_of_media"] = *params.PlaceOfMedia
	}
	if params.Photos != nil {
		updateMap["photos"] = *params.Photos
	}
	if params.Video != nil {
		updateMap["video"] = *params.Video
	}
	if params.Active != nil {
		updateMap["active"] = *params.Active
	}
	updateMap["updated_at"] = time.Now()

	var news model.News
	err = r.db.Collection(newsCollection).FindOneAndUpdate(
		ctx,
		bson.M{"_id": objectID},
		bson.M{"$set": updateMap},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&news)
	if err != nil {
		return nil, err
	}

	return &news, nil
}

func (r *newsMongoRepository) DeactivateNews(ctx context.Context, id string) (*model.News, error) {
	active := false
	return r.UpdateNews(ctx, id, UpdateNewsParams{Active: &active})
}

func (r *newsMongoRepository) ListNews(ctx context.Context, q query.Query) ([]*model.News, int64, error) {
	return findPage[model.News](ctx, r.db.Collection(newsCollection), q)
}

// SearchNews matches the term case-insensitively against title and
// description of active articles.
func (r *newsMongoRepository) SearchNews(
	ctx context.Context,
	term string,
	q query.Query,
) ([]*model.News, int64, error) {
	pattern := regexp.QuoteMeta(term)
	filter := bson.M{
		"active": true,
		"$or": bson.A{
			bson.M{"title": bson.M{"$regex": pattern, "$options": "i"}},
			bson.M{"description": bson.M{"$regex": pattern, "$options": "i"}},
		},
	}

	coll := r.db.Collection(newsCollection)

	cursor, err := coll.Find(ctx, filter, findOptions(q))
	if err != nil {
		return nil, 0, err
	}

	var docs []*model.News
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, 0, err
	}

	total, err := coll.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	return docs, total, nil
}
