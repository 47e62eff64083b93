package repository

import (
	"context"
	"time"

	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"newsdesk/internal/model"
)

// VerificationRepository defines the interface for verification code operations.
type VerificationRepository interface {
	// CreateVerification stores a fresh code for a user.
	CreateVerification(ctx context.Context, verification *model.Verification) (*model.Verification, error)

	// GetVerificationByUserID retrieves the record bound to a user.
	GetVerificationByUserID(ctx context.Context, userID bson.ObjectID) (*model.Verification, error)

	// GetVerificationByCode retrieves a record by the submitted code.
	// Codes are matched globally, not scoped to a user.
	GetVerificationByCode(ctx context.Context, code string) (*model.Verification, error)

	// MarkVerificationActive flips the record's active flag, consuming the code.
	MarkVerificationActive(ctx context.Context, id bson.ObjectID) error
}

const verificationCollection = "user_verifications"

type verificationMongoRepository struct {
	db *mongo.Database
}

// NewVerificationMongoRepository creates a new MongoDB repository for
// verification codes.
func NewVerificationMongoRepository(
	ctx context.Context,
	logger *zerolog.Logger,
	db *mongo.Database,
) VerificationRepository {
	collection := db.Collection(verificationCollection)

	indexes := []mongo.IndexModel{
		{
			Keys: bson.D{{Key: "user_id", Value: 1}},
		},
		{
			Keys: bson.D{{Key: "code", Value: 1}},
		},
		{
			Keys:    bson.D{{Key: "expires_at", Value: 1}},
			Options: options.Index().SetExpireAfterSeconds(0), // TTL index
		},
	}

	_, err := collection.Indexes().CreateMany(ctx, indexes)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to create verification indexes")
	}

	return &verificationMongoRepository{db: db}
}

func (r *verificationMongoRepository) CreateVerification(
	ctx context.Context,
	verification *model.Verification,
) (*model.Verification, error) {
	now := time.Now()
	verification.CreatedAt = now
	verification.UpdatedAt = now
	verification.Active = false

	result, err := r.db.Collection(verificationCollection).InsertOne(ctx, verification)
	if err != nil {
		return nil, err
	}

	if objectID, ok := result.InsertedID.(bson.ObjectID); ok {
		verification.ID = objectID
	}

	return verification, nil
}

func (r *verificationMongoRepository) GetVerificationByUserID(
	ctx context.Context,
	userID bson.ObjectID,
) (*model.Verification, error) {
	var verification model.Verification
	err := r.db.Collection(verificationCollection).
		FindOne(ctx, bson.M{"user_id": userID}).
		Decode(&verification)
	if err != nil {
		return nil, err
	}

	return &verification, nil
}

func (r *verificationMongoRepository) GetVerificationByCode(
	ctx context.Context,
	code string,
) (*model.Verification, error) {
	var verification model.Verification
	err := r.db.Collection(verificationCollection).
		FindOne(ctx, bson.M{"code": code}).
		Decode(&verification)
	if err != nil {
		return nil, err
	}

	return &verification, nil
}

func (r *verificationMongoRepository) MarkVerificationActive(ctx context.Context, id bson.ObjectID) error {
	_, err := r.db.Collection(verificationCollection).UpdateOne(
		ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{"active": true, "updated_at": time.Now()}},
	)
	return err
}
