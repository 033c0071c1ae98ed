package usecase

import (
	"context"
	"time"

	"github.com/rakib120822/artify-server/internal/artwork/domain"
	"go.uber.org/zap"
)

const (
	// LatestArtworksLimit is the page size of the "latest artworks" view.
	LatestArtworksLimit = 6

	artworkCacheTTL = 1 * time.Hour
	latestCacheTTL  = 5 * time.Minute
)

type ArtworkUsecase struct {
	repo      domain.ArtworkRepository
	cache     domain.ArtworkCache
	publisher domain.EventPublisher
	mailer    domain.Mailer
	logger    *zap.Logger
}

func NewArtworkUsecase(
	repo domain.ArtworkRepository,
	cache domain.ArtworkCache,
	publisher domain.EventPublisher,
	mailer domain.Mailer,
	logger *zap.Logger,
) *ArtworkUsecase {
	return &ArtworkUsecase{
		repo:      repo,
		cache:     cache,
		publisher: publisher,
		mailer:    mailer,
		logger:    logger,
	}
}

// authorize loads the artwork and confirms the caller owns it. The loaded
// artwork is returned so callers don't need a second lookup.
func (uc *ArtworkUsecase) authorize(ctx context.Context, id, userEmail string) (*domain.Artwork, error) {
	artwork, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if artwork.ArtistEmail != userEmail {
		uc.logger.Warn("ArtworkUsecase.authorize: ownership check failed",
			zap.String("artwork_id", id),
			zap.String("owner", artwork.ArtistEmail),
			zap.String("caller", userEmail))
		return nil, domain.ErrForbidden
	}
	return artwork, nil
}

func (uc *ArtworkUsecase) Create(ctx context.Context, artwork *domain.Artwork) (*domain.Artwork, error) {
	if artwork.ArtistEmail == "" || artwork.Title == "" {
		return nil, domain.ErrValidation
	}

	if err := uc.repo.Create(ctx, artwork); err != nil {
		uc.logger.Error("ArtworkUsecase.Create: failed to create artwork",
			zap.String("artist_email", artwork.ArtistEmail), zap.Error(err))
		return nil, err
	}
	uc.logger.Info("ArtworkUsecase.Create: artwork created",
		zap.String("artwork_id", artwork.ID), zap.String("artist_email", artwork.ArtistEmail))

	uc.invalidateLatest(ctx)

	if err := uc.publisher.PublishArtworkCreated(ctx, artwork); err != nil {
		uc.logger.Error("ArtworkUsecase.Create: failed to publish created event",
			zap.String("artwork_id", artwork.ID), zap.Error(err))
	}
	if err := uc.mailer.SendArtworkCreatedEmail(artwork.ArtistEmail, artwork.Title); err != nil {
		uc.logger.Warn("ArtworkUsecase.Create: failed to send created email",
			zap.String("artist_email", artwork.ArtistEmail), zap.Error(err))
	}
	return artwork, nil
}

func (uc *ArtworkUsecase) GetByID(ctx context.Context, id string) (*domain.Artwork, error) {
	cached, err := uc.cache.GetArtwork(ctx, id)
	if err != nil {
		uc.logger.Warn("ArtworkUsecase.GetByID: cache read failed", zap.String("artwork_id", id), zap.Error(err))
	}
	if cached != nil {
		return cached, nil
	}

	artwork, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := uc.cache.SetArtwork(ctx, artwork, artworkCacheTTL); err != nil {
		uc.logger.Warn("ArtworkUsecase.GetByID: cache write failed", zap.String("artwork_id", id), zap.Error(err))
	}
	return artwork, nil
}

func (uc *ArtworkUsecase) List(ctx context.Context) ([]*domain.Artwork, error) {
	return uc.repo.FindAll(ctx)
}

func (uc *ArtworkUsecase) Latest(ctx context.Context) ([]*domain.Artwork, error) {
	cached, err := uc.cache.GetLatest(ctx)
	if err != nil {
		uc.logger.Warn("ArtworkUsecase.Latest: cache read failed", zap.Error(err))
	}
	if cached != nil {
		return cached, nil
	}

	artworks, err := uc.repo.FindLatest(ctx, LatestArtworksLimit)
	if err != nil {
		return nil, err
	}
	if err := uc.cache.SetLatest(ctx, artworks, latestCacheTTL); err != nil {
		uc.logger.Warn("ArtworkUsecase.Latest: cache write failed", zap.Error(err))
	}
	return artworks, nil
}

func (uc *ArtworkUsecase) ListByArtist(ctx context.Context, artistEmail string) ([]*domain.Artwork, error) {
	if artistEmail == "" {
		return nil, domain.ErrValidation
	}
	return uc.repo.FindByArtist(ctx, artistEmail)
}

// Search matches case-insensitively against title and artist name. An empty
// query returns the full collection; that is intended behavior, not an
// unconstrained pattern slipping through.
func (uc *ArtworkUsecase) Search(ctx context.Context, query string) ([]*domain.Artwork, error) {
	return uc.repo.Search(ctx, query)
}

func (uc *ArtworkUsecase) Update(ctx context.Context, id, userEmail string, update domain.ArtworkUpdate) (*domain.Artwork, error) {
	if _, err := uc.authorize(ctx, id, userEmail); err != nil {
		return nil, err
	}

	if err := uc.repo.Update(ctx, id, update); err != nil {
		uc.logger.Error("ArtworkUsecase.Update: failed to update artwork",
			zap.String("artwork_id", id), zap.Error(err))
		return nil, err
	}
	uc.invalidate(ctx, id)

	artwork, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := uc.publisher.PublishArtworkUpdated(ctx, artwork); err != nil {
		uc.logger.Error("ArtworkUsecase.Update: failed to publish updated event",
			zap.String("artwork_id", id), zap.Error(err))
	}
	return artwork, nil
}

func (uc *ArtworkUsecase) Delete(ctx context.Context, id, userEmail string) error {
	if _, err := uc.authorize(ctx, id, userEmail); err != nil {
		return err
	}

	if err := uc.repo.Delete(ctx, id); err != nil {
		uc.logger.Error("ArtworkUsecase.Delete: failed to delete artwork",
			zap.String("artwork_id", id), zap.Error(err))
		return err
	}
	uc.invalidate(ctx, id)

	if err := uc.publisher.PublishArtworkDeleted(ctx, id); err != nil {
		uc.logger.Error("ArtworkUsecase.Delete: failed to publish deleted event",
			zap.String("artwork_id", id), zap.Error(err))
	}
	uc.logger.Info("ArtworkUsecase.Delete: artwork deleted",
		zap.String("artwork_id", id), zap.String("user_email", userEmail))
	return nil
}

func (uc *ArtworkUsecase) invalidate(ctx context.Context, id string) {
	if err := uc.cache.DeleteArtwork(ctx, id); err != nil {
		uc.logger.Warn("ArtworkUsecase: cache invalidation failed", zap.String("artwork_id", id), zap.Error(err))
	}
	uc.invalidateLatest(ctx)
}

func (uc *ArtworkUsecase) invalidateLatest(ctx context.Context) {
	if err := uc.cache.InvalidateLatest(ctx); err != nil {
		uc.logger.Warn("ArtworkUsecase: latest cache invalidation failed", zap.Error(err))
	}
}
