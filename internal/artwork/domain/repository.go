package domain

import (
	"context"
	"time"
)

type ArtworkRepository interface {
	Create(ctx context.Context, artwork *Artwork) error
	Update(ctx context.Context, id string, update ArtworkUpdate) error
	Delete(ctx context.Context, id string) error
	FindByID(ctx context.Context, id string) (*Artwork, error)
	FindAll(ctx context.Context) ([]*Artwork, error)
	FindLatest(ctx context.Context, limit int64) ([]*Artwork, error)
	FindByArtist(ctx context.Context, artistEmail string) ([]*Artwork, error)
	FindByIDs(ctx context.Context, ids []string) ([]*Artwork, error)
	Search(ctx context.Context, query string) ([]*Artwork, error)
	// IncrementLike adjusts the like counter by delta. A decrement is guarded
	// so the counter never goes below zero; applied reports whether the
	// counter actually changed.
	IncrementLike(ctx context.Context, id string, delta int) (applied bool, err error)
	AppendPhoto(ctx context.Context, id string, url string) error
}

type FavoriteRepository interface {
	// Add inserts the pair and returns ErrDuplicateFavorite when it already
	// exists.
	Add(ctx context.Context, favorite *Favorite) error
	// Remove deletes the pair; removed is false when there was nothing to
	// delete.
	Remove(ctx context.Context, userEmail, artworkID string) (removed bool, err error)
	FindByUserEmail(ctx context.Context, userEmail string) ([]*Favorite, error)
}

type LikeRepository interface {
	// AddLike puts artworkID into the user's like-set only if it is not
	// already there, creating the user document on first use. added is false
	// when the artwork was already liked.
	AddLike(ctx context.Context, email, artworkID string) (added bool, err error)
	// RemoveLike pulls artworkID from the like-set only if it is present.
	RemoveLike(ctx context.Context, email, artworkID string) (removed bool, err error)
	// FindByEmail returns the user's like-set; an unknown user yields an
	// empty set, not an error.
	FindByEmail(ctx context.Context, email string) (*UserLikes, error)
}

// ArtworkCache is a best-effort read cache. A miss is (nil, nil); failures are
// logged by callers and never fail a request.
type ArtworkCache interface {
	GetArtwork(ctx context.Context, id string) (*Artwork, error)
	SetArtwork(ctx context.Context, artwork *Artwork, ttl time.Duration) error
	DeleteArtwork(ctx context.Context, id string) error
	GetLatest(ctx context.Context) ([]*Artwork, error)
	SetLatest(ctx context.Context, artworks []*Artwork, ttl time.Duration) error
	InvalidateLatest(ctx context.Context) error
}

type EventPublisher interface {
	PublishArtworkCreated(ctx context.Context, artwork *Artwork) error
	PublishArtworkUpdated(ctx context.Context, artwork *Artwork) error
	PublishArtworkDeleted(ctx context.Context, artworkID string) error
	PublishArtworkLiked(ctx context.Context, artworkID, userEmail string, liked bool) error
}

type PhotoStorage interface {
	Upload(ctx context.Context, fileName string, data []byte) (url string, err error)
}

type Mailer interface {
	SendArtworkCreatedEmail(toEmail, artworkTitle string) error
}
