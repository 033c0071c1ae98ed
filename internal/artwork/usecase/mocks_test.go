package usecase

import (
	"context"
	"time"

	"github.com/rakib120822/artify-server/internal/artwork/domain"
	"github.com/stretchr/testify/mock"
)

type MockArtworkRepository struct{ mock.Mock }

func (m *MockArtworkRepository) Create(ctx context.Context, artwork *domain.Artwork) error {
	args := m.Called(ctx, artwork)
	return args.Error(0)
}
func (m *MockArtworkRepository) Update(ctx context.Context, id string, update domain.ArtworkUpdate) error {
	args := m.Called(ctx, id, update)
	return args.Error(0)
}
func (m *MockArtworkRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
func (m *MockArtworkRepository) FindByID(ctx context.Context, id string) (*domain.Artwork, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Artwork), args.Error(1)
}
func (m *MockArtworkRepository) FindAll(ctx context.Context) ([]*domain.Artwork, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Artwork), args.Error(1)
}
func (m *MockArtworkRepository) FindLatest(ctx context.Context, limit int64) ([]*domain.Artwork, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Artwork), args.Error(1)
}
func (m *MockArtworkRepository) FindByArtist(ctx context.Context, artistEmail string) ([]*domain.Artwork, error) {
	args := m.Called(ctx, artistEmail)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Artwork), args.Error(1)
}
func (m *MockArtworkRepository) FindByIDs(ctx context.Context, ids []string) ([]*domain.Artwork, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Artwork), args.Error(1)
}
func (m *MockArtworkRepository) Search(ctx context.Context, query string) ([]*domain.Artwork, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Artwork), args.Error(1)
}
func (m *MockArtworkRepository) IncrementLike(ctx context.Context, id string, delta int) (bool, error) {
	args := m.Called(ctx, id, delta)
	return args.Bool(0), args.Error(1)
}
func (m *MockArtworkRepository) AppendPhoto(ctx context.Context, id string, url string) error {
	args := m.Called(ctx, id, url)
	return args.Error(0)
}

type MockFavoriteRepository struct{ mock.Mock }

func (m *MockFavoriteRepository) Add(ctx context.Context, favorite *domain.Favorite) error {
	args := m.Called(ctx, favorite)
	return args.Error(0)
}
func (m *MockFavoriteRepository) Remove(ctx context.Context, userEmail, artworkID string) (bool, error) {
	args := m.Called(ctx, userEmail, artworkID)
	return args.Bool(0), args.Error(1)
}
func (m *MockFavoriteRepository) FindByUserEmail(ctx context.Context, userEmail string) ([]*domain.Favorite, error) {
	args := m.Called(ctx, userEmail)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Favorite), args.Error(1)
}

type MockLikeRepository struct{ mock.Mock }

func (m *MockLikeRepository) AddLike(ctx context.Context, email, artworkID string) (bool, error) {
	args := m.Called(ctx, email, artworkID)
	return args.Bool(0), args.Error(1)
}
func (m *MockLikeRepository) RemoveLike(ctx context.Context, email, artworkID string) (bool, error) {
	args := m.Called(ctx, email, artworkID)
	return args.Bool(0), args.Error(1)
}
func (m *MockLikeRepository) FindByEmail(ctx context.Context, email string) (*domain.UserLikes, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.UserLikes), args.Error(1)
}

type MockArtworkCache struct{ mock.Mock }

func (m *MockArtworkCache) GetArtwork(ctx context.Context, id string) (*domain.Artwork, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Artwork), args.Error(1)
}
func (m *MockArtworkCache) SetArtwork(ctx context.Context, artwork *domain.Artwork, ttl time.Duration) error {
	args := m.Called(ctx, artwork, ttl)
	return args.Error(0)
}
func (m *MockArtworkCache) DeleteArtwork(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
func (m *MockArtworkCache) GetLatest(ctx context.Context) ([]*domain.Artwork, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Artwork), args.Error(1)
}
func (m *MockArtworkCache) SetLatest(ctx context.Context, artworks []*domain.Artwork, ttl time.Duration) error {
	args := m.Called(ctx, artworks, ttl)
	return args.Error(0)
}
func (m *MockArtworkCache) InvalidateLatest(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

type MockEventPublisher struct{ mock.Mock }

func (m *MockEventPublisher) PublishArtworkCreated(ctx context.Context, artwork *domain.Artwork) error {
	args := m.Called(ctx, artwork)
	return args.Error(0)
}
func (m *MockEventPublisher) PublishArtworkUpdated(ctx context.Context, artwork *domain.Artwork) error {
	args := m.Called(ctx, artwork)
	return args.Error(0)
}
func (m *MockEventPublisher) PublishArtworkDeleted(ctx context.Context, artworkID string) error {
	args := m.Called(ctx, artworkID)
	return args.Error(0)
}
func (m *MockEventPublisher) PublishArtworkLiked(ctx context.Context, artworkID, userEmail string, liked bool) error {
	args := m.Called(ctx, artworkID, userEmail, liked)
	return args.Error(0)
}

type MockMailer struct{ mock.Mock }

func (m *MockMailer) SendArtworkCreatedEmail(toEmail, artworkTitle string) error {
	args := m.Called(toEmail, artworkTitle)
	return args.Error(0)
}

type MockPhotoStorage struct{ mock.Mock }

func (m *MockPhotoStorage) Upload(ctx context.Context, fileName string, data []byte) (string, error) {
	args := m.Called(ctx, fileName, data)
	return args.String(0), args.Error(1)
}
