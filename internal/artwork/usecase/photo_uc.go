package usecase

import (
	"context"

	"github.com/rakib120822/artify-server/internal/artwork/domain"
	"go.uber.org/zap"
)

type PhotoUsecase struct {
	artworkUC *ArtworkUsecase
	repo      domain.ArtworkRepository
	storage   domain.PhotoStorage
	logger    *zap.Logger
}

func NewPhotoUsecase(artworkUC *ArtworkUsecase, repo domain.ArtworkRepository, storage domain.PhotoStorage, logger *zap.Logger) *PhotoUsecase {
	return &PhotoUsecase{
		artworkUC: artworkUC,
		repo:      repo,
		storage:   storage,
		logger:    logger,
	}
}

// Upload stores a photo for an artwork and appends its URL to the artwork
// document. Only the owner may attach photos.
func (uc *PhotoUsecase) Upload(ctx context.Context, artworkID, userEmail, fileName string, data []byte) (string, error) {
	if len(data) == 0 {
		return "", domain.ErrValidation
	}
	if _, err := uc.artworkUC.authorize(ctx, artworkID, userEmail); err != nil {
		return "", err
	}

	url, err := uc.storage.Upload(ctx, fileName, data)
	if err != nil {
		uc.logger.Error("PhotoUsecase.Upload: storage upload failed",
			zap.String("artwork_id", artworkID), zap.Error(err))
		return "", err
	}

	if err := uc.repo.AppendPhoto(ctx, artworkID, url); err != nil {
		uc.logger.Error("PhotoUsecase.Upload: failed to append photo URL",
			zap.String("artwork_id", artworkID), zap.String("url", url), zap.Error(err))
		return "", err
	}

	uc.artworkUC.invalidate(ctx, artworkID)

	uc.logger.Info("PhotoUsecase.Upload: photo attached",
		zap.String("artwork_id", artworkID), zap.String("url", url))
	return url, nil
}
