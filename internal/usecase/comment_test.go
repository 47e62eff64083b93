package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"newsdesk/internal/model"
	"newsdesk/internal/query"
	"newsdesk/internal/repository"
)

// MockCommentRepository is a mock implementation of
// repository.CommentRepository.
type MockCommentRepository struct {
	mock.Mock
}

func (m *MockCommentRepository) CreateComment(ctx context.Context, comment *model.Comment) (*model.Comment, error) {
	args := m.Called(ctx, comment)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Comment), args.Error(1)
}

func (m *MockCommentRepository) GetComment(ctx context.Context, id string) (*model.Comment, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Comment), args.Error(1)
}

func (m *MockCommentRepository) UpdateComment(
	ctx context.Context,
	id string,
	params repository.UpdateCommentParams,
) (*model.Comment, error) {
	args := m.Called(ctx, id, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Comment), args.Error(1)
}

func (m *MockCommentRepository) DeleteComment(ctx context.Context, id string) (*model.Comment, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Comment), args.Error(1)
}

func (m *MockCommentRepository) ListComments(ctx context.Context, q query.Query) ([]*model.Comment, int64, error) {
	args := m.Called(ctx, q)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]*model.Comment), args.Get(1).(int64), args.Error(2)
}

// MockNewsRepository is a mock implementation of repository.NewsRepository.
type MockNewsRepository struct {
	mock.Mock
}

func (m *MockNewsRepository) CreateNews(ctx context.Context, news *model.News) (*model.News, error) {
	args := m.Called(ctx, news)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.News), args.Error(1)
}

func (m *MockNewsRepository) GetNews(ctx context.Context, id string) (*model.News, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.News), args.Error(1)
}

func (m *MockNewsRepository) ViewNews(ctx context.Context, id string) (*model.News, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.News), args.Error(1)
}

func (m *MockNewsRepository) UpdateNews(
	ctx context.Context,
	id string,
	params repository.UpdateNewsParams,
) (*model.News, error) {
	args := m.Called(ctx, id, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.News), args.Error(1)
}

func (m *MockNewsRepository) DeactivateNews(ctx context.Context, id string) (*model.News, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.News), args.Error(1)
}

func (m *MockNewsRepository) ListNews(ctx context.Context, q query.Query) ([]*model.News, int64, error) {
	args := m.Called(ctx, q)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]*model.News), args.Get(1).(int64), args.Error(2)
}

func (m *MockNewsRepository) SearchNews(
	ctx context.Context,
	term string,
	q query.Query,
) ([]*model.News, int64, error) {
	args := m.Called(ctx, term, q)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]*model.News), args.Get(1).(int64), args.Error(2)
}

func TestCreateComment(t *testing.T) {
	ctx := context.Background()

	t.Run("attaches the comment to an existing article", func(t *testing.T) {
		newsID := bson.NewObjectID()
		authorID := bson.NewObjectID()

		newsRepo := new(MockNewsRepository)
		newsRepo.On("GetNews", ctx, newsID.Hex()).Return(&model.News{ID: newsID}, nil)

		commentRepo := new(MockCommentRepository)
		commentRepo.On("CreateComment", ctx, mock.MatchedBy(func(c *model.Comment) bool {
			return c.NewsID == newsID && c.UserID == authorID && c.Text == "great read"
		})).Return(&model.Comment{NewsID: newsID, UserID: authorID, Text: "great read"}, nil)

		u := NewCommentUsecase(commentRepo, newsRepo)

		comment, err := u.CreateComment(ctx, CreateCommentParams{
			NewsID: newsID.Hex(),
			UserID: authorID,
			Text:   "great read",
		})

		assert.NoError(t, err)
		assert.Equal(t, newsID, comment.NewsID)
	})

	t.Run("rejects a comment on a missing article", func(t *testing.T) {
		newsRepo := new(MockNewsRepository)
		newsRepo.On("GetNews", ctx, mock.Anything).Return(nil, mongo.ErrNoDocuments)

		u := NewCommentUsecase(new(MockCommentRepository), newsRepo)

		_, err := u.CreateComment(ctx, CreateCommentParams{
			NewsID: bson.NewObjectID().Hex(),
			UserID: bson.NewObjectID(),
			Text:   "great read",
		})

		assert.ErrorIs(t, err, ErrNewsNotFound)
	})
}

func TestCommentAuthorship(t *testing.T) {
	ctx := context.Background()

	commentID := bson.NewObjectID()
	author := bson.NewObjectID()
	stranger := bson.NewObjectID()
	stored := &model.Comment{ID: commentID, UserID: author, Text: "original"}

	t.Run("author can update", func(t *testing.T) {
		text := "edited"

		commentRepo := new(MockCommentRepository)
		commentRepo.On("GetComment", ctx, commentID.Hex()).Return(stored, nil)
		commentRepo.On("UpdateComment", ctx, commentID.Hex(), repository.UpdateCommentParams{Text: &text}).
			Return(&model.Comment{ID: commentID, UserID: author, Text: text}, nil)

		u := NewCommentUsecase(commentRepo, new(MockNewsRepository))

		updated, err := u.UpdateComment(ctx, commentID.Hex(), author, UpdateCommentParams{Text: &text})

		assert.NoError(t, err)
		assert.Equal(t, text, updated.Text)
	})

	t.Run("non-author cannot update", func(t *testing.T) {
		text := "edited"

		commentRepo := new(MockCommentRepository)
		commentRepo.On("GetComment", ctx, commentID.Hex()).Return(stored, nil)

		u := NewCommentUsecase(commentRepo, new(MockNewsRepository))

		_, err := u.UpdateComment(ctx, commentID.Hex(), stranger, UpdateCommentParams{Text: &text})

		assert.ErrorIs(t, err, ErrNotCommentAuthor)
		commentRepo.AssertNotCalled(t, "UpdateComment", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("non-author cannot delete", func(t *testing.T) {
		commentRepo := new(MockCommentRepository)
		commentRepo.On("GetComment", ctx, commentID.Hex()).Return(stored, nil)

		u := NewCommentUsecase(commentRepo, new(MockNewsRepository))

		err := u.DeleteComment(ctx, commentID.Hex(), stranger)

		assert.ErrorIs(t, err, ErrNotCommentAuthor)
		commentRepo.AssertNotCalled(t, "DeleteComment", mock.Anything, mock.Anything)
	})

	t.Run("author can delete", func(t *testing.T) {
		commentRepo := new(MockCommentRepository)
		commentRepo.On("GetComment", ctx, commentID.Hex()).Return(stored, nil)
		commentRepo.On("DeleteComment", ctx, commentID.Hex()).Return(stored, nil)

		u := NewCommentUsecase(commentRepo, new(MockNewsRepository))

		assert.NoError(t, u.DeleteComment(ctx, commentID.Hex(), author))
	})

	t.Run("missing comment", func(t *testing.T) {
		commentRepo := new(MockCommentRepository)
		commentRepo.On("GetComment", ctx, mock.Anything).Return(nil, mongo.ErrNoDocuments)

		u := NewCommentUsecase(commentRepo, new(MockNewsRepository))

		err := u.DeleteComment(ctx, bson.NewObjectID().Hex(), author)

		assert.ErrorIs(t, err, ErrCommentNotFound)
	})
}
