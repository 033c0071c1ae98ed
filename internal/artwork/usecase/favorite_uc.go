package usecase

import (
	"context"
	"errors"

	"github.com/rakib120822/artify-server/internal/artwork/domain"
	"go.uber.org/zap"
)

type FavoriteUsecase struct {
	repo        domain.FavoriteRepository
	artworkRepo domain.ArtworkRepository
	logger      *zap.Logger
}

func NewFavoriteUsecase(repo domain.FavoriteRepository, artworkRepo domain.ArtworkRepository, logger *zap.Logger) *FavoriteUsecase {
	return &FavoriteUsecase{
		repo:        repo,
		artworkRepo: artworkRepo,
		logger:      logger,
	}
}

// Add is idempotent: favoriting an already-favorited artwork is a no-op that
// reports alreadyExists instead of an error. There is no ownership check; any
// user may favorite any artwork.
func (uc *FavoriteUsecase) Add(ctx context.Context, userEmail, artworkID string) (favorite *domain.Favorite, alreadyExists bool, err error) {
	if userEmail == "" || artworkID == "" {
		return nil, false, domain.ErrValidation
	}
	if _, err := uc.artworkRepo.FindByID(ctx, artworkID); err != nil {
		return nil, false, err
	}

	favorite = &domain.Favorite{UserEmail: userEmail, ArtworkID: artworkID}
	err = uc.repo.Add(ctx, favorite)
	if err != nil {
		if errors.Is(err, domain.ErrDuplicateFavorite) {
			uc.logger.Info("FavoriteUsecase.Add: already in favorites",
				zap.String("user_email", userEmail), zap.String("artwork_id", artworkID))
			return nil, true, nil
		}
		uc.logger.Error("FavoriteUsecase.Add: failed to add favorite",
			zap.String("user_email", userEmail), zap.String("artwork_id", artworkID), zap.Error(err))
		return nil, false, err
	}
	return favorite, false, nil
}

// Remove is idempotent: removing a pair that does not exist is a no-op, not
// an error. removed reports whether a stored pair was actually deleted.
func (uc *FavoriteUsecase) Remove(ctx context.Context, userEmail, artworkID string) (removed bool, err error) {
	if userEmail == "" || artworkID == "" {
		return false, domain.ErrValidation
	}

	removed, err = uc.repo.Remove(ctx, userEmail, artworkID)
	if err != nil {
		uc.logger.Error("FavoriteUsecase.Remove: failed to remove favorite",
			zap.String("user_email", userEmail), zap.String("artwork_id", artworkID), zap.Error(err))
		return false, err
	}
	if !removed {
		uc.logger.Info("FavoriteUsecase.Remove: no favorite to remove",
			zap.String("user_email", userEmail), zap.String("artwork_id", artworkID))
	}
	return removed, nil
}

// List returns the raw favorite pairs of a user, newest first.
func (uc *FavoriteUsecase) List(ctx context.Context, userEmail string) ([]*domain.Favorite, error) {
	if userEmail == "" {
		return nil, domain.ErrValidation
	}
	return uc.repo.FindByUserEmail(ctx, userEmail)
}

// ResolveArtworks loads the full artwork records behind a user's favorites.
func (uc *FavoriteUsecase) ResolveArtworks(ctx context.Context, userEmail string) ([]*domain.Artwork, error) {
	favorites, err := uc.List(ctx, userEmail)
	if err != nil {
		return nil, err
	}

	ids := make([]string, 0, len(favorites))
	for _, f := range favorites {
		ids = append(ids, f.ArtworkID)
	}
	if len(ids) == 0 {
		return []*domain.Artwork{}, nil
	}
	return uc.artworkRepo.FindByIDs(ctx, ids)
}
