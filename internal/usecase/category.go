package usecase

import (
	"context"
	"errors"
	"strings"

	"go.mongodb.org/mongo-driver/v2/mongo"

	"newsdesk/internal/model"
	"newsdesk/internal/query"
	"newsdesk/internal/repository"
)

// CategoryUsecase defines the interface for category management use cases.
type CategoryUsecase interface {
	CreateCategory(ctx context.Context, name string) (*model.Category, error)
	GetCategory(ctx context.Context, id string) (*model.Category, error)
	UpdateCategory(ctx context.Context, id string, params UpdateCategoryParams) (*model.Category, error)
	DeactivateCategory(ctx context.Context, id string) (*model.Category, error)
	ListCategories(ctx context.Context, q query.Query) ([]*model.Category, int64, error)
}

// UpdateCategoryParams defines the optional parameters for updating a category.
type UpdateCategoryParams struct {
	Name   *string
	Active *bool
}

var (
	ErrCategoryNotFound = errors.New("category not found")
	ErrCategoryExists   = errors.New("an active category with this name already exists")
)

type categoryUsecase struct {
	categoryRepo repository.CategoryRepository
}

// NewCategoryUsecase creates a new instance of CategoryUsecase.
func NewCategoryUsecase(categoryRepo repository.CategoryRepository) CategoryUsecase {
	return &categoryUsecase{categoryRepo: categoryRepo}
}

func (u *categoryUsecase) CreateCategory(ctx context.Context, name string) (*model.Category, error) {
	category, err := u.categoryRepo.CreateCategory(ctx, &model.Category{
		Name:   normalizeCategoryName(name),
		Active: true,
	})
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, ErrCategoryExists
		}

		return nil, err
	}

	return category, nil
}

func (u *categoryUsecase) GetCategory(ctx context.Context, id string) (*model.Category, error) {
	category, err := u.categoryRepo.GetCategory(ctx, id)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrCategoryNotFound
		}

		return nil, err
	}

	return category, nil
}

func (u *categoryUsecase) UpdateCategory(
	ctx context.Context,
	id string,
	params UpdateCategoryParams,
) (*model.Category, error) {
	repoParams := repository.UpdateCategoryParams{Active: params.Active}
	if params.Name != nil {
		name := normalizeCategoryName(*params.Name)
		repoParams.Name = &name
	}

	category, err := u.categoryRepo.UpdateCategory(ctx, id, repoParams)
	if err != nil {
		switch {
		case errors.Is(err, mongo.ErrNoDocuments):
			return nil, ErrCategoryNotFound
		case mongo.IsDuplicateKeyError(err):
			return nil, ErrCategoryExists
		}

		return nil, err
	}

	return category, nil
}

func (u *categoryUsecase) DeactivateCategory(ctx context.Context, id string) (*model.Category, error) {
	category, err := u.categoryRepo.DeactivateCategory(ctx, id)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrCategoryNotFound
		}

		return nil, err
	}

	return category, nil
}

func (u *categoryUsecase) ListCategories(ctx context.Context, q query.Query) ([]*model.Category, int64, error) {
	return u.categoryRepo.ListCategories(ctx, q)
}

// normalizeCategoryName lowercases and trims a name so uniqueness among
// active categories is case-insensitive.
func normalizeCategoryName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
