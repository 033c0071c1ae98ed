package mongodb

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rakib120822/artify-server/internal/artwork/domain"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

const userLikesCollectionName = "userLikesCollection"

type LikeRepository struct {
	collection *mongo.Collection
	logger     *zap.Logger
}

// NewLikeRepository ensures the unique email index; the conditional updates in
// AddLike rely on it to stay race-free.
func NewLikeRepository(db *mongo.Database, logger *zap.Logger) *LikeRepository {
	r := &LikeRepository{
		collection: db.Collection(userLikesCollectionName),
		logger:     logger,
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	_, err := r.collection.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		logger.Warn("LikeRepository: failed to ensure unique email index", zap.Error(err))
	}
	return r
}

// AddLike is a single conditional update: it matches only when artworkID is
// absent from the like-set, so the membership test and the write cannot be
// torn apart by a concurrent toggle. The upsert creates the user document on
// first like; a duplicate-key error means another writer got there first with
// the same id, which reads as "already liked".
func (r *LikeRepository) AddLike(ctx context.Context, email, artworkID string) (bool, error) {
	filter := bson.M{"email": email, "likes": bson.M{"$ne": artworkID}}
	update := bson.M{"$addToSet": bson.M{"likes": artworkID}}

	res, err := r.collection.UpdateOne(ctx, filter, update, options.Update().SetUpsert(true))
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return false, nil
		}
		r.logger.Error("LikeRepository.AddLike: UpdateOne failed",
			zap.String("email", email), zap.String("artwork_id", artworkID), zap.Error(err))
		return false, fmt.Errorf("failed to add like: %w", err)
	}
	return res.ModifiedCount == 1 || res.UpsertedCount == 1, nil
}

// RemoveLike matches only when artworkID is present, mirroring AddLike.
func (r *LikeRepository) RemoveLike(ctx context.Context, email, artworkID string) (bool, error) {
	filter := bson.M{"email": email, "likes": artworkID}
	update := bson.M{"$pull": bson.M{"likes": artworkID}}

	res, err := r.collection.UpdateOne(ctx, filter, update)
	if err != nil {
		r.logger.Error("LikeRepository.RemoveLike: UpdateOne failed",
			zap.String("email", email), zap.String("artwork_id", artworkID), zap.Error(err))
		return false, fmt.Errorf("failed to remove like: %w", err)
	}
	return res.ModifiedCount == 1, nil
}

func (r *LikeRepository) FindByEmail(ctx context.Context, email string) (*domain.UserLikes, error) {
	var doc userLikesDocument
	err := r.collection.FindOne(ctx, bson.M{"email": email}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			// An unknown user simply has an empty like-set.
			return &domain.UserLikes{Email: email, Likes: []string{}}, nil
		}
		r.logger.Error("LikeRepository.FindByEmail: FindOne failed",
			zap.String("email", email), zap.Error(err))
		return nil, fmt.Errorf("failed to find user likes: %w", err)
	}
	return toDomainUserLikes(&doc), nil
}
