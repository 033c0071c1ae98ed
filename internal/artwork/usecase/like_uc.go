package usecase

import (
	"context"

	"github.com/rakib120822/artify-server/internal/artwork/domain"
	"go.uber.org/zap"
)

// ToggleResult carries the confirmed state after a toggle: the new direction,
// the re-read artwork (with its counter) and the user's current like-set.
type ToggleResult struct {
	Liked     bool
	Artwork   *domain.Artwork
	UserLikes *domain.UserLikes
}

type LikeUsecase struct {
	likeRepo    domain.LikeRepository
	artworkRepo domain.ArtworkRepository
	cache       domain.ArtworkCache
	publisher   domain.EventPublisher
	logger      *zap.Logger
}

func NewLikeUsecase(
	likeRepo domain.LikeRepository,
	artworkRepo domain.ArtworkRepository,
	cache domain.ArtworkCache,
	publisher domain.EventPublisher,
	logger *zap.Logger,
) *LikeUsecase {
	return &LikeUsecase{
		likeRepo:    likeRepo,
		artworkRepo: artworkRepo,
		cache:       cache,
		publisher:   publisher,
		logger:      logger,
	}
}

// Toggle flips the (user, artwork) like state. The like-set write is the
// commit point: both directions are conditional updates that apply only when
// the set is in the expected state, so two concurrent toggles for the same
// pair cannot both increment or both decrement the counter.
func (uc *LikeUsecase) Toggle(ctx context.Context, email, artworkID string) (*ToggleResult, error) {
	if email == "" {
		return nil, domain.ErrValidation
	}

	// Any authenticated user may like any artwork; this is an existence
	// check, not an ownership check.
	if _, err := uc.artworkRepo.FindByID(ctx, artworkID); err != nil {
		return nil, err
	}

	added, err := uc.likeRepo.AddLike(ctx, email, artworkID)
	if err != nil {
		return nil, err
	}

	liked := added
	if added {
		if _, err := uc.artworkRepo.IncrementLike(ctx, artworkID, 1); err != nil {
			return nil, err
		}
	} else {
		removed, err := uc.likeRepo.RemoveLike(ctx, email, artworkID)
		if err != nil {
			return nil, err
		}
		if removed {
			applied, err := uc.artworkRepo.IncrementLike(ctx, artworkID, -1)
			if err != nil {
				return nil, err
			}
			if !applied {
				// Counter was already at zero while the like-set still held
				// the id. Clamp and keep going; the set is authoritative.
				uc.logger.Warn("LikeUsecase.Toggle: like counter clamped at zero",
					zap.String("artwork_id", artworkID), zap.String("email", email))
			}
		}
	}

	if err := uc.cache.DeleteArtwork(ctx, artworkID); err != nil {
		uc.logger.Warn("LikeUsecase.Toggle: cache invalidation failed",
			zap.String("artwork_id", artworkID), zap.Error(err))
	}

	artwork, err := uc.artworkRepo.FindByID(ctx, artworkID)
	if err != nil {
		return nil, err
	}
	userLikes, err := uc.likeRepo.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}

	if err := uc.publisher.PublishArtworkLiked(ctx, artworkID, email, liked); err != nil {
		uc.logger.Error("LikeUsecase.Toggle: failed to publish liked event",
			zap.String("artwork_id", artworkID), zap.Error(err))
	}

	uc.logger.Info("LikeUsecase.Toggle: toggled like",
		zap.String("artwork_id", artworkID),
		zap.String("email", email),
		zap.Bool("liked", liked),
		zap.Int64("like_count", artwork.Like))

	return &ToggleResult{Liked: liked, Artwork: artwork, UserLikes: userLikes}, nil
}

func (uc *LikeUsecase) GetUserLikes(ctx context.Context, email string) (*domain.UserLikes, error) {
	if email == "" {
		return nil, domain.ErrValidation
	}
	return uc.likeRepo.FindByEmail(ctx, email)
}
