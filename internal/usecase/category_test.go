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

// MockCategoryRepository is a mock implementation of
// repository.CategoryRepository.
type MockCategoryRepository struct {
	mock.Mock
}

func (m *MockCategoryRepository) CreateCategory(ctx context.Context, category *model.Category) (*model.Category, error) {
	args := m.Called(ctx, category)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Category), args.Error(1)
}

func (m *MockCategoryRepository) GetCategory(ctx context.Context, id string) (*model.Category, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Category), args.Error(1)
}

func (m *MockCategoryRepository) UpdateCategory(
	ctx context.Context,
	id string,
	params repository.UpdateCategoryParams,
) (*model.Category, error) {
	args := m.Called(ctx, id, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Category), args.Error(1)
}

func (m *MockCategoryRepository) DeactivateCategory(ctx context.Context, id string) (*model.Category, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Category), args.Error(1)
}

func (m *MockCategoryRepository) ListCategories(ctx context.Context, q query.Query) ([]*model.Category, int64, error) {
	args := m.Called(ctx, q)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]*model.Category), args.Get(1).(int64), args.Error(2)
}

func TestCreateCategory(t *testing.T) {
	ctx := context.Background()

	t.Run("name is normalized before storage", func(t *testing.T) {
		categoryRepo := new(MockCategoryRepository)
		categoryRepo.On("CreateCategory", ctx, mock.MatchedBy(func(c *model.Category) bool {
			return c.Name == "politics" && c.Active
		})).Return(&model.Category{ID: bson.NewObjectID(), Name: "politics", Active: true}, nil)

		u := NewCategoryUsecase(categoryRepo)

		category, err := u.CreateCategory(ctx, "  Politics ")

		assert.NoError(t, err)
		assert.Equal(t, "politics", category.Name)
	})

	t.Run("duplicate active name", func(t *testing.T) {
		categoryRepo := new(MockCategoryRepository)
		categoryRepo.On("CreateCategory", ctx, mock.Anything).Return(nil, mongo.WriteException{
			WriteErrors: []mongo.WriteError{{Code: 11000}},
		})

		u := NewCategoryUsecase(categoryRepo)

		_, err := u.CreateCategory(ctx, "politics")

		assert.ErrorIs(t, err, ErrCategoryExists)
	})
}

func TestUpdateCategory(t *testing.T) {
	ctx := context.Background()
	id := bson.NewObjectID().Hex()

	t.Run("renames with normalization", func(t *testing.T) {
		name := " Sports "
		normalized := "sports"

		categoryRepo := new(MockCategoryRepository)
		categoryRepo.On("UpdateCategory", ctx, id, repository.UpdateCategoryParams{Name: &normalized}).
			Return(&model.Category{Name: normalized, Active: true}, nil)

		u := NewCategoryUsecase(categoryRepo)

		category, err := u.UpdateCategory(ctx, id, UpdateCategoryParams{Name: &name})

		assert.NoError(t, err)
		assert.Equal(t, normalized, category.Name)
	})

	t.Run("missing category", func(t *testing.T) {
		categoryRepo := new(MockCategoryRepository)
		categoryRepo.On("UpdateCategory", ctx, id, mock.Anything).Return(nil, mongo.ErrNoDocuments)

		u := NewCategoryUsecase(categoryRepo)

		active := false
		_, err := u.UpdateCategory(ctx, id, UpdateCategoryParams{Active: &active})

		assert.ErrorIs(t, err, ErrCategoryNotFound)
	})

	t.Run("rename collides with an active category", func(t *testing.T) {
		name := "politics"

		categoryRepo := new(MockCategoryRepository)
		categoryRepo.On("UpdateCategory", ctx, id, mock.Anything).Return(nil, mongo.WriteException{
			WriteErrors: []mongo.WriteError{{Code: 11000}},
		})

		u := NewCategoryUsecase(categoryRepo)

		_, err := u.UpdateCategory(ctx, id, UpdateCategoryParams{Name: &name})

		assert.ErrorIs(t, err, ErrCategoryExists)
	})
}

func TestDeactivateCategory(t *testing.T) {
	ctx := context.Background()

	t.Run("soft delete keeps the document", func(t *testing.T) {
		id := bson.NewObjectID()

		categoryRepo := new(MockCategoryRepository)
		categoryRepo.On("DeactivateCategory", ctx, id.Hex()).
			Return(&model.Category{ID: id, Name: "politics", Active: false}, nil)

		u := NewCategoryUsecase(categoryRepo)

		category, err := u.DeactivateCategory(ctx, id.Hex())

		assert.NoError(t, err)
		assert.False(t, category.Active)
	})

	t.Run("missing category", func(t *testing.T) {
		categoryRepo := new(MockCategoryRepository)
		categoryRepo.On("DeactivateCategory", ctx, mock.Anything).Return(nil, mongo.ErrNoDocuments)

		u := NewCategoryUsecase(categoryRepo)

		_, err := u.DeactivateCategory(ctx, bson.NewObjectID().Hex())

		assert.ErrorIs(t, err, ErrCategoryNotFound)
	})
}
