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

// CategoryRepository defines the interface for category database operations.
type CategoryRepository interface {
	CreateCategory(ctx context.Context, category *model.Category) (*model.Category, error)
	GetCategory(ctx context.Context, id string) (*model.Category, error)
	UpdateCategory(ctx context.Context, id string, params UpdateCategoryParams) (*model.Category, error)
	DeactivateCategory(ctx context.Context, id string) (*model.Category, error)
	ListCategories(ctx context.Context, q query.Query) ([]*model.Category, int64, error)
}

// UpdateCategoryParams defines the optional parameters for updating a
// category. Only the fields that are not nil will be updated.
type UpdateCategoryParams struct {
	Name   *string
	Active *bool
}

const categoryCollection = "categories"

type categoryMongoRepository struct {
	db *mongo.Database
}

func NewCategoryMongoRepository(ctx context.Context, logger *zerolog.Logger, db *mongo.Database) CategoryRepository {
	collection := db.Collection(categoryCollection)

	// Uniqueness holds among active categories only; a deactivated name may
	// be reused.
	indexes := []mongo.IndexModel{
		{
			Keys: bson.D{{Key: "name", Value: 1}},
			Options: options.Index().
				SetUnique(true).
				SetPartialFilterExpression(bson.D{{Key: "active", Value: true}}),
		},
	}

	_, err := collection.Indexes().CreateMany(ctx, indexes)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to create category indexes")
	}

	return &categoryMongoRepository{db: db}
}

func (r *categoryMongoRepository) CreateCategory(
	ctx context.Context,
	category *model.Category,
) (*model.Category, error) {
	now := time.Now()
	category.CreatedAt = now
	category.UpdatedAt = now

	result, err := r.db.Collection(categoryCollection).InsertOne(ctx, category)
	if err != nil {
		return nil, err
	}

	if objectID, ok := result.InsertedID.(bson.ObjectID); ok {
		category.ID = objectID
	}

	return category, nil
}

func (r *categoryMongoRepository) GetCategory(ctx context.Context, id string) (*model.Category, error) {
	objectID, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return nil, mongo.ErrNoDocuments
	}

	var category model.Category
	if err := r.db.Collection(categoryCollection).FindOne(ctx, bson.M{"_id": objectID}).Decode(&category); err != nil {
		return nil, err
	}

	return &category, nil
}

func (r *categoryMongoRepository) UpdateCategory(
	ctx context.Context,
	id string,
	params UpdateCategoryParams,
) (*model.Category, error) {
	objectID, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return nil, mongo.ErrNoDocuments
	}

	updateMap := bson.M{}
	if params.Name != nil {
		updateMap["name"] = *params.Name
	}
	if params.Active != nil {
		updateMap["active"] = *params.Active
	}
	updateMap["updated_at"] = time.Now()

	var category model.Category
	err = r.db.Collection(categoryCollection).FindOneAndUpdate(
		ctx,
		bson.M{"_id": objectID},
		bson.M{"$set": updateMap},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&category)
	if err != nil {
		return nil, err
	}

	return &category, nil
}

func (r *categoryMongoRepository) DeactivateCategory(ctx context.Context, id string) (*model.Category, error) {
	active := false
	return r.UpdateCategory(ctx, id, UpdateCategoryParams{Active: &active})
}

func (r *categoryMongoRepository) ListCategories(
	ctx context.Context,
	q query.Query,
) ([]*model.Category, int64, error) {
	return findPage[model.Category](ctx, r.db.Collection(categoryCollection), q)
}
