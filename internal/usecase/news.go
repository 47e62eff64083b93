package usecase

import (
	"context"
	"errors"

	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"newsdesk/internal/model"
	"newsdesk/internal/query"
	"newsdesk/internal/repository"
)

// NewsUsecase defines the interface for news management use cases.
type NewsUsecase interface {
	CreateNews(ctx context.Context, params CreateNewsParams) (*model.News, error)
	GetNews(ctx context.Context, id string) (*model.News, error)
	UpdateNews(ctx context.Context, id string, params UpdateNewsParams) (*model.News, error)
	DeactivateNews(ctx context.Context, id string) (*model.News, error)
	ListNews(ctx context.Context, q query.Query) ([]*model.News, int64, error)
	SearchNews(ctx context.Context, term string, q query.Query) ([]*model.News, int64, error)
}

// CreateNewsParams defines the parameters for creating a news article. Photo
// and video paths are resolved by the upload layer before they reach here.
type CreateNewsParams struct {
	Title        string
	Description  string
	Author       string
	CategoryID   string
	IsTopNews    bool
	PlaceOfMedia string
	Photos       []string
	Video        string
}

// UpdateNewsParams defines the optional parameters for updating an article.
type UpdateNewsParams struct {
	Title        *string
	Description  *string
	Author       *string
	CategoryID   *string
	IsTopNews    *bool
	PlaceOfMedia *string
	Photos       *[]string
	Video        *string
}

var ErrNewsNotFound = errors.New("news not found")

// FileRemover deletes a stored media file by its public path.
type FileRemover interface {
	Remove(publicPath string) error
}

type newsUsecase struct {
	newsRepo     repository.NewsRepository
	categoryRepo repository.CategoryRepository
	files        FileRemover
	logger       *zerolog.Logger
}

// NewNewsUsecase creates a new instance of NewsUsecase.
func NewNewsUsecase(
	newsRepo repository.NewsRepository,
	categoryRepo repository.CategoryRepository,
	files FileRemover,
	logger *zerolog.Logger,
) NewsUsecase {
	return &newsUsecase{
		newsRepo:     newsRepo,
		categoryRepo: categoryRepo,
		files:        files,
		logger:       logger,
	}
}

func (u *newsUsecase) CreateNews(ctx context.Context, params CreateNewsParams) (*model.News, error) {
	category, err := u.categoryRepo.GetCategory(ctx, params.CategoryID)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrCategoryNotFound
		}

		return nil, err
	}

	news, err := u.newsRepo.CreateNews(ctx, &model.News{
		Title:        params.Title,
		Description:  params.Description,
		Author:       params.Author,
		CategoryID:   category.ID,
		IsTopNews:    params.IsTopNews,
		PlaceOfMedia: params.PlaceOfMedia,
		Photos:       params.Photos,
		Video:        params.Video,
		Active:       true,
	})
	if err != nil {
		return nil, err
	}

	return news, nil
}

// GetNews returns a single article, counting the read as a view.
func (u *newsUsecase) GetNews(ctx context.Context, id string) (*model.News, error) {
	news, err := u.newsRepo.ViewNews(ctx, id)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNewsNotFound
		}

		return nil, err
	}

	return news, nil
}

func (u *newsUsecase) UpdateNews(ctx context.Context, id string, params UpdateNewsParams) (*model.News, error) {
	existing, err := u.newsRepo.GetNews(ctx, id)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNewsNotFound
		}

		return nil, err
	}

	repoParams := repository.UpdateNewsParams{
		Title:        params.Title,
		Description:  params.Description,
		Author:       params.Author,
		IsTopNews:    params.IsTopNews,
		PlaceOfMedia: params.PlaceOfMedia,
		Photos:       params.Photos,
		Video:        params.Video,
	}

	if params.CategoryID != nil {
		category, err := u.categoryRepo.GetCategory(ctx, *params.CategoryID)
		if err != nil {
			if errors.Is(err, mongo.ErrNoDocuments) {
				return nil, ErrCategoryNotFound
			}

			return nil, err
		}
		categoryID := category.ID
		repoParams.CategoryID = &categoryID
	}

	news, err := u.newsRepo.UpdateNews(ctx, id, repoParams)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNewsNotFound
		}

		return nil, err
	}

	// The database write comes first; a superseded video file is removed only
	// after the new document is persisted, so a crash leaves at worst an
	// orphaned file rather than a dangling reference.
	if params.Video != nil && existing.Video != "" && existing.Video != *params.Video {
		if err := u.files.Remove(existing.Video); err != nil {
			u.logger.Warn().Err(err).Str("path", existing.Video).Msg("failed to remove superseded video")
		}
	}

	return news, nil
}

func (u *newsUsecase) DeactivateNews(ctx context.Context, id string) (*model.News, error) {
	news, err := u.newsRepo.DeactivateNews(ctx, id)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNewsNotFound
		}

		return nil, err
	}

	return news, nil
}

func (u *newsUsecase) ListNews(ctx context.Context, q query.Query) ([]*model.News, int64, error) {
	return u.newsRepo.ListNews(ctx, q)
}

func (u *newsUsecase) SearchNews(
	ctx context.Context,
	term string,
	q query.Query,
) ([]*model.News, int64, error) {
	return u.newsRepo.SearchNews(ctx, term, q)
}
