package usecase

import (
	"context"
	"errors"

	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"newsdesk/internal/model"
	"newsdesk/internal/query"
	"newsdesk/internal/repository"
)

// MediaUsecase defines the interface for media management use cases.
type MediaUsecase interface {
	// AttachMedia creates one media record per stored file path.
	AttachMedia(ctx context.Context, newsID string, srcs []string) ([]*model.Media, error)

	// ReplaceMedia points an existing record at a new file and removes the
	// superseded one from disk.
	ReplaceMedia(ctx context.Context, id string, newSrc string) (*model.Media, error)

	// DeleteMedia removes records and their backing files.
	DeleteMedia(ctx context.Context, ids []string) error

	ListMedia(ctx context.Context, q query.Query) ([]*model.Media, int64, error)
}

var ErrMediaNotFound = errors.New("media not found")

type mediaUsecase struct {
	mediaRepo repository.MediaRepository
	newsRepo  repository.NewsRepository
	files     FileRemover
	logger    *zerolog.Logger
}

// NewMediaUsecase creates a new instance of MediaUsecase.
func NewMediaUsecase(
	mediaRepo repository.MediaRepository,
	newsRepo repository.NewsRepository,
	files FileRemover,
	logger *zerolog.Logger,
) MediaUsecase {
	return &mediaUsecase{
		mediaRepo: mediaRepo,
		newsRepo:  newsRepo,
		files:     files,
		logger:    logger,
	}
}

func (u *mediaUsecase) AttachMedia(ctx context.Context, newsID string, srcs []string) ([]*model.Media, error) {
	news, err := u.newsRepo.GetNews(ctx, newsID)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNewsNotFound
		}

		return nil, err
	}

	records := make([]*model.Media, 0, len(srcs))
	for _, src := range srcs {
		media, err := u.mediaRepo.CreateMedia(ctx, &model.Media{
			NewsID: news.ID,
			Src:    src,
		})
		if err != nil {
			return nil, err
		}
		records = append(records, media)
	}

	return records, nil
}

func (u *mediaUsecase) ReplaceMedia(ctx context.Context, id string, newSrc string) (*model.Media, error) {
	existing, err := u.mediaRepo.GetMedia(ctx, id)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrMediaNotFound
		}

		return nil, err
	}

	media, err := u.mediaRepo.UpdateMediaSrc(ctx, id, newSrc)
	if err != nil {
		return nil, err
	}

	// Old file removal happens only after the record points elsewhere.
	if existing.Src != "" && existing.Src != newSrc {
		if err := u.files.Remove(existing.Src); err != nil {
			u.logger.Warn().Err(err).Str("path", existing.Src).Msg("failed to remove superseded media file")
		}
	}

	return media, nil
}

func (u *mediaUsecase) DeleteMedia(ctx context.Context, ids []string) error {
	objectIDs := make([]bson.ObjectID, 0, len(ids))
	for _, id := range ids {
		objectID, err := bson.ObjectIDFromHex(id)
		if err != nil {
			return ErrMediaNotFound
		}
		objectIDs = append(objectIDs, objectID)
	}

	records, err := u.mediaRepo.GetMediaByIDs(ctx, objectIDs)
	if err != nil {
		return err
	}
	if len(records) == 0 {
		return ErrMediaNotFound
	}

	if _, err := u.mediaRepo.DeleteMediaByIDs(ctx, objectIDs); err != nil {
		return err
	}

	for _, media := range records {
		if err := u.files.Remove(media.Src); err != nil {
			u.logger.Warn().Err(err).Str("path", media.Src).Msg("failed to remove media file")
		}
	}

	return nil
}

func (u *mediaUsecase) ListMedia(ctx context.Context, q query.Query) ([]*model.Media, int64, error) {
	return u.mediaRepo.ListMedia(ctx, q)
}
