package usecase

import (
	"context"
	"testing"

	"github.com/rakib120822/artify-server/internal/artwork/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

const (
	testArtworkID = "507f1f77bcf86cd799439011"
	testUserEmail = "u2@x.com"
)

func newLikeUsecaseForTest() (*LikeUsecase, *MockLikeRepository, *MockArtworkRepository, *MockArtworkCache, *MockEventPublisher) {
	likeRepo := new(MockLikeRepository)
	artworkRepo := new(MockArtworkRepository)
	artworkCache := new(MockArtworkCache)
	publisher := new(MockEventPublisher)
	uc := NewLikeUsecase(likeRepo, artworkRepo, artworkCache, publisher, zap.NewNop())
	return uc, likeRepo, artworkRepo, artworkCache, publisher
}

func TestLikeToggle_NotLikedBecomesLiked(t *testing.T) {
	uc, likeRepo, artworkRepo, artworkCache, publisher := newLikeUsecaseForTest()
	ctx := context.Background()

	artwork := &domain.Artwork{ID: testArtworkID, ArtistEmail: "u1@x.com", Like: 0}
	afterLike := &domain.Artwork{ID: testArtworkID, ArtistEmail: "u1@x.com", Like: 1}

	artworkRepo.On("FindByID", ctx, testArtworkID).Return(artwork, nil).Once()
	likeRepo.On("AddLike", ctx, testUserEmail, testArtworkID).Return(true, nil).Once()
	artworkRepo.On("IncrementLike", ctx, testArtworkID, 1).Return(true, nil).Once()
	artworkCache.On("DeleteArtwork", ctx, testArtworkID).Return(nil).Once()
	artworkRepo.On("FindByID", ctx, testArtworkID).Return(afterLike, nil).Once()
	likeRepo.On("FindByEmail", ctx, testUserEmail).
		Return(&domain.UserLikes{Email: testUserEmail, Likes: []string{testArtworkID}}, nil).Once()
	publisher.On("PublishArtworkLiked", ctx, testArtworkID, testUserEmail, true).Return(nil).Once()

	result, err := uc.Toggle(ctx, testUserEmail, testArtworkID)

	assert.NoError(t, err)
	assert.True(t, result.Liked)
	assert.Equal(t, int64(1), result.Artwork.Like)
	assert.Equal(t, []string{testArtworkID}, result.UserLikes.Likes)
	likeRepo.AssertExpectations(t)
	artworkRepo.AssertExpectations(t)
}

func TestLikeToggle_LikedBecomesNotLiked(t *testing.T) {
	uc, likeRepo, artworkRepo, artworkCache, publisher := newLikeUsecaseForTest()
	ctx := context.Background()

	artwork := &domain.Artwork{ID: testArtworkID, Like: 1}
	afterUnlike := &domain.Artwork{ID: testArtworkID, Like: 0}

	artworkRepo.On("FindByID", ctx, testArtworkID).Return(artwork, nil).Once()
	likeRepo.On("AddLike", ctx, testUserEmail, testArtworkID).Return(false, nil).Once()
	likeRepo.On("RemoveLike", ctx, testUserEmail, testArtworkID).Return(true, nil).Once()
	artworkRepo.On("IncrementLike", ctx, testArtworkID, -1).Return(true, nil).Once()
	artworkCache.On("DeleteArtwork", ctx, testArtworkID).Return(nil).Once()
	artworkRepo.On("FindByID", ctx, testArtworkID).Return(afterUnlike, nil).Once()
	likeRepo.On("FindByEmail", ctx, testUserEmail).
		Return(&domain.UserLikes{Email: testUserEmail, Likes: []string{}}, nil).Once()
	publisher.On("PublishArtworkLiked", ctx, testArtworkID, testUserEmail, false).Return(nil).Once()

	result, err := uc.Toggle(ctx, testUserEmail, testArtworkID)

	assert.NoError(t, err)
	assert.False(t, result.Liked)
	assert.Equal(t, int64(0), result.Artwork.Like)
	assert.Empty(t, result.UserLikes.Likes)
	likeRepo.AssertExpectations(t)
	artworkRepo.AssertExpectations(t)
}

// A clamped decrement (counter already at zero while the set still held the
// id) is an integrity warning, not an error.
func TestLikeToggle_CounterNeverGoesNegative(t *testing.T) {
	uc, likeRepo, artworkRepo, artworkCache, publisher := newLikeUsecaseForTest()
	ctx := context.Background()

	artwork := &domain.Artwork{ID: testArtworkID, Like: 0}

	artworkRepo.On("FindByID", ctx, testArtworkID).Return(artwork, nil)
	likeRepo.On("AddLike", ctx, testUserEmail, testArtworkID).Return(false, nil).Once()
	likeRepo.On("RemoveLike", ctx, testUserEmail, testArtworkID).Return(true, nil).Once()
	artworkRepo.On("IncrementLike", ctx, testArtworkID, -1).Return(false, nil).Once()
	artworkCache.On("DeleteArtwork", ctx, testArtworkID).Return(nil).Once()
	likeRepo.On("FindByEmail", ctx, testUserEmail).
		Return(&domain.UserLikes{Email: testUserEmail, Likes: []string{}}, nil).Once()
	publisher.On("PublishArtworkLiked", ctx, testArtworkID, testUserEmail, false).Return(nil).Once()

	result, err := uc.Toggle(ctx, testUserEmail, testArtworkID)

	assert.NoError(t, err)
	assert.False(t, result.Liked)
	assert.Equal(t, int64(0), result.Artwork.Like)
	artworkRepo.AssertExpectations(t)
}

func TestLikeToggle_ArtworkNotFound(t *testing.T) {
	uc, likeRepo, artworkRepo, _, _ := newLikeUsecaseForTest()
	ctx := context.Background()

	artworkRepo.On("FindByID", ctx, testArtworkID).Return(nil, domain.ErrArtworkNotFound).Once()

	result, err := uc.Toggle(ctx, testUserEmail, testArtworkID)

	assert.Nil(t, result)
	assert.ErrorIs(t, err, domain.ErrArtworkNotFound)
	likeRepo.AssertNotCalled(t, "AddLike", mock.Anything, mock.Anything, mock.Anything)
}

func TestLikeToggle_MissingIdentity(t *testing.T) {
	uc, _, _, _, _ := newLikeUsecaseForTest()

	result, err := uc.Toggle(context.Background(), "", testArtworkID)

	assert.Nil(t, result)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestGetUserLikes_UnknownUserHasEmptySet(t *testing.T) {
	uc, likeRepo, _, _, _ := newLikeUsecaseForTest()
	ctx := context.Background()

	likeRepo.On("FindByEmail", ctx, testUserEmail).
		Return(&domain.UserLikes{Email: testUserEmail, Likes: []string{}}, nil).Once()

	userLikes, err := uc.GetUserLikes(ctx, testUserEmail)

	assert.NoError(t, err)
	assert.Empty(t, userLikes.Likes)
}
