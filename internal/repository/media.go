package repository

import (
	"context"
	"time"

	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"newsdesk/internal/model"
	"newsdesk/internal/query"
)

// MediaRepository defines the interface for media database operations.
type MediaRepository interface {
	CreateMedia(ctx context.Context, media *model.Media) (*model.Media, error)
	GetMedia(ctx context.Context, id string) (*model.Media, error)
	UpdateMediaSrc(ctx context.Context, id string, src string) (*model.Media, error)
	GetMediaByIDs(ctx context.Context, ids []bson.ObjectID) ([]*model.Media, error)
	DeleteMediaByIDs(ctx context.Context, ids []bson.ObjectID) (int64, error)
	ListMedia(ctx context.Context, q query.Query) ([]*model.Media, int64, error)
}

const mediaCollection = "media"

type mediaMongoRepository struct {
	db *mongo.Database
}

func NewMediaMongoRepository(ctx context.Context, logger *zerolog.Logger, db *mongo.Database) MediaRepository {
	collection := db.Collection(mediaCollection)

	indexes := []mongo.IndexModel{
		{
			Keys: bson.D{{Key: "news_id", Value: 1}, {Key: "src", Value: 1}},
		},
	}

	_, err := collection.Indexes().CreateMany(ctx, indexes)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to create media indexes")
	}

	return &mediaMongoRepository{db: db}
}

func (r *mediaMongoRepository) CreateMedia(ctx context.Context, media *model.Media) (*model.Media, error) {
	now := time.Now()
	media.CreatedAt = now
	media.UpdatedAt = now

	result, err := r.db.Collection(mediaCollection).InsertOne(ctx, media)
	if err != nil {
		return nil, err
	}

	if objectID, ok := result.InsertedID.(bson.ObjectID); ok {
		media.ID = objectID
	}

	return media, nil
}

func (r *mediaMongoRepository) GetMedia(ctx context.Context, id string) (*model.Media, error) {
	objectID, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return nil, mongo.ErrNoDocuments
	}

	var media model.Media
	if err := r.db.Collection(mediaCollection).FindOne(ctx, bson.M{"_id": objectID}).Decode(&media); err != nil {
		return nil, err
	}

	return &media, nil
}

func (r *mediaMongoRepository) UpdateMediaSrc(ctx context.Context, id string, src string) (*model.Media, error) {
	objectID, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return nil, mongo.ErrNoDocuments
	}

	var media model.Media
	err = r.db.Collection(mediaCollection).FindOneAndUpdate(
		ctx,
		bson.M{"_id": objectID},
		bson.M{"$set": bson.M{"src": src, "updated_at": time.Now()}},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&media)
	if err != nil {
		return nil, err
	}

	return &media, nil
}

func (r *mediaMongoRepository) GetMediaByIDs(ctx context.Context, ids []bson.ObjectID) ([]*model.Media, error) {
	cursor, err := r.db.Collection(mediaCollection).Find(ctx, bson.M{"_id": bson.M{"$in": ids}})
	if err != nil {
		return nil, err
	}

	var media []*model.Media
	if err := cursor.All(ctx, &media); err != nil {
		return nil, err
	}

	return media, nil
}

func (r *mediaMongoRepository) DeleteMediaByIDs(ctx context.Context, ids []bson.ObjectID) (int64, error) {
	result, err := r.db.Collection(mediaCollection).DeleteMany(ctx, bson.M{"_id": bson.M{"$in": ids}})
	if err != nil {
		return 0, err
	}

	return result.DeletedCount, nil
}

func (r *mediaMongoRepository) ListMedia(ctx context.Context, q query.Query) ([]*model.Media, int64, error) {
	return findPage[model.Media](ctx, r.db.Collection(mediaCollection), q)
}
