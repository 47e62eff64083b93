package usecase

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"newsdesk/internal/model"
	"newsdesk/internal/query"
	"newsdesk/internal/repository"
)

// CommentUsecase defines the interface for comment management use cases.
type CommentUsecase interface {
	CreateComment(ctx context.Context, params CreateCommentParams) (*model.Comment, error)
	GetComment(ctx context.Context, id string) (*model.Comment, error)
	UpdateComment(ctx context.Context, id string, authorID bson.ObjectID, params UpdateCommentParams) (*model.Comment, error)
	DeleteComment(ctx context.Context, id string, authorID bson.ObjectID) error
	ListComments(ctx context.Context, q query.Query) ([]*model.Comment, int64, error)
}

// CreateCommentParams defines the parameters for posting a comment. UserID
// comes from the authenticated request, never from the payload.
type CreateCommentParams struct {
	NewsID string
	UserID bson.ObjectID
	Text   string
}

// UpdateCommentParams defines the optional parameters for updating a comment.
type UpdateCommentParams struct {
	Text  *string
	Likes *int64
}

var (
	ErrCommentNotFound  = errors.New("comment not found")
	ErrNotCommentAuthor = errors.New("you are not authorized to modify this comment")
)

type commentUsecase struct {
	commentRepo repository.CommentRepository
	newsRepo    repository.NewsRepository
}

// NewCommentUsecase creates a new instance of CommentUsecase.
func NewCommentUsecase(
	commentRepo repository.CommentRepository,
	newsRepo repository.NewsRepository,
) CommentUsecase {
	return &commentUsecase{
		commentRepo: commentRepo,
		newsRepo:    newsRepo,
	}
}

func (u *commentUsecase) CreateComment(ctx context.Context, params CreateCommentParams) (*model.Comment, error) {
	news, err := u.newsRepo.GetNews(ctx, params.NewsID)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNewsNotFound
		}

		return nil, err
	}

	comment, err := u.commentRepo.CreateComment(ctx, &model.Comment{
		NewsID: news.ID,
		UserID: params.UserID,
		Text:   params.Text,
	})
	if err != nil {
		return nil, err
	}

	return comment, nil
}

func (u *commentUsecase) GetComment(ctx context.Context, id string) (*model.Comment, error) {
	comment, err := u.commentRepo.GetComment(ctx, id)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrCommentNotFound
		}

		return nil, err
	}

	return comment, nil
}

func (u *commentUsecase) UpdateComment(
	ctx context.Context,
	id string,
	authorID bson.ObjectID,
	params UpdateCommentParams,
) (*model.Comment, error) {
	comment, err := u.commentRepo.GetComment(ctx, id)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrCommentNotFound
		}

		return nil, err
	}

	if comment.UserID != authorID {
		return nil, ErrNotCommentAuthor
	}

	updated, err := u.commentRepo.UpdateComment(ctx, id, repository.UpdateCommentParams{
		Text:  params.Text,
		Likes: params.Likes,
	})
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrCommentNotFound
		}

		return nil, err
	}

	return updated, nil
}

func (u *commentUsecase) DeleteComment(ctx context.Context, id string, authorID bson.ObjectID) error {
	comment, err := u.commentRepo.GetComment(ctx, id)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return ErrCommentNotFound
		}

		return err
	}

	if comment.UserID != authorID {
		return ErrNotCommentAuthor
	}

	if _, err := u.commentRepo.DeleteComment(ctx, id); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return ErrCommentNotFound
		}

		return err
	}

	return nil
}

func (u *commentUsecase) ListComments(ctx context.Context, q query.Query) ([]*model.Comment, int64, error) {
	return u.commentRepo.ListComments(ctx, q)
}
