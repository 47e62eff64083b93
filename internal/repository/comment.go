package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"newsdesk/internal/model"
	"newsdesk/internal/query"
)

// CommentRepository defines the interface for comment database operations.
type CommentRepository interface {
	CreateComment(ctx context.Context, comment *model.Comment) (*model.Comment, error)
	GetComment(ctx context.Context, id string) (*model.Comment, error)
	UpdateComment(ctx context.Context, id string, params UpdateCommentParams) (*model.Comment, error)
	DeleteComment(ctx context.Context, id string) (*model.Comment, error)
	ListComments(ctx context.Context, q query.Query) ([]*model.Comment, int64, error)
}

// UpdateCommentParams defines the optional parameters for updating a comment.
// Only the fields that are not nil will be updated.
type UpdateCommentParams struct {
	Text  *string
	Likes *int64
}

const commentCollection = "comments"

type commentMongoRepository struct {
	db *mongo.Database
}

func NewCommentMongoRepository(db *mongo.Database) CommentRepository {
	return &commentMongoRepository{db: db}
}

func (r *commentMongoRepository) CreateComment(ctx context.Context, comment *model.Comment) (*model.Comment, error) {
	now := time.Now()
	comment.CreatedAt = now
	comment.UpdatedAt = now

	result, err := r.db.Collection(commentCollection).InsertOne(ctx, comment)
	if err != nil {
		return nil, err
	}

	if objectID, ok := result.InsertedID.(bson.ObjectID); ok {
		comment.ID = objectID
	}

	return comment, nil
}

func (r *commentMongoRepository) GetComment(ctx context.Context, id string) (*model.Comment, error) {
	objectID, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return nil, mongo.ErrNoDocuments
	}

	var comment model.Comment
	if err := r.db.Collection(commentCollection).FindOne(ctx, bson.M{"_id": objectID}).Decode(&comment); err != nil {
		return nil, err
	}

	return &comment, nil
}

func (r *commentMongoRepository) UpdateComment(
	ctx context.Context,
	id string,
	params UpdateCommentParams,
) (*model.Comment, error) {
	objectID, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return nil, mongo.ErrNoDocuments
	}

	updateMap := bson.M{}
	if params.Text != nil {
		updateMap["text"] = *params.Text
	}
	if params.Likes != nil {
		updateMap["likes"] = *params.Likes
	}
	updateMap["updated_at"] = time.Now()

	var comment model.Comment
	err = r.db.Collection(commentCollection).FindOneAndUpdate(
		ctx,
		bson.M{"_id": objectID},
		bson.M{"$set": updateMap},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&comment)
	if err != nil {
		return nil, err
	}

	return &comment, nil
}

func (r *commentMongoRepository) DeleteComment(ctx context.Context, id string) (*model.Comment, error) {
	objectID, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return nil, mongo.ErrNoDocuments
	}

	var comment model.Comment
	if err := r.db.Collection(commentCollection).FindOneAndDelete(ctx, bson.M{"_id": objectID}).Decode(&comment); err != nil {
		return nil, err
	}

	return &comment, nil
}

func (r *commentMongoRepository) ListComments(ctx context.Context, q query.Query) ([]*model.Comment, int64, error) {
	return findPage[model.Comment](ctx, r.db.Collection(commentCollection), q)
}
