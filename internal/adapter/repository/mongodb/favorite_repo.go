package mongodb

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rakib120822/artify-server/internal/artwork/domain"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

const favoriteCollectionName = "favoriteCollection"

type FavoriteRepository struct {
	collection *mongo.Collection
	logger     *zap.Logger
}

// NewFavoriteRepository ensures the unique (user_email, artwork_id) index so
// duplicate favorites cannot exist even under concurrent inserts.
func NewFavoriteRepository(db *mongo.Database, logger *zap.Logger) *FavoriteRepository {
	r := &FavoriteRepository{
		collection: db.Collection(favoriteCollectionName),
		logger:     logger,
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	_, err := r.collection.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{
			{Key: "user_email", Value: 1},
			{Key: "artwork_id", Value: 1},
		},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		logger.Warn("FavoriteRepository: failed to ensure unique favorite index", zap.Error(err))
	}
	return r
}

func (r *FavoriteRepository) Add(ctx context.Context, favorite *domain.Favorite) error {
	favorite.CreatedAt = time.Now().UTC()
	doc := &favoriteDocument{
		UserEmail: favorite.UserEmail,
		ArtworkID: favorite.ArtworkID,
		CreatedAt: favorite.CreatedAt,
	}

	res, err := r.collection.InsertOne(ctx, doc)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return domain.ErrDuplicateFavorite
		}
		r.logger.Error("FavoriteRepository.Add: InsertOne failed",
			zap.String("user_email", favorite.UserEmail),
			zap.String("artwork_id", favorite.ArtworkID),
			zap.Error(err))
		return fmt.Errorf("failed to insert favorite: %w", err)
	}

	oid, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return errors.New("failed to retrieve generated favorite ID")
	}
	favorite.ID = oid.Hex()
	return nil
}

func (r *FavoriteRepository) Remove(ctx context.Context, userEmail, artworkID string) (bool, error) {
	res, err := r.collection.DeleteOne(ctx, bson.M{"user_email": userEmail, "artwork_id": artworkID})
	if err != nil {
		r.logger.Error("FavoriteRepository.Remove: DeleteOne failed",
			zap.String("user_email", userEmail),
			zap.String("artwork_id", artworkID),
			zap.Error(err))
		return false, fmt.Errorf("failed to remove favorite: %w", err)
	}
	return res.DeletedCount > 0, nil
}

func (r *FavoriteRepository) FindByUserEmail(ctx context.Context, userEmail string) ([]*domain.Favorite, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := r.collection.Find(ctx, bson.M{"user_email": userEmail}, opts)
	if err != nil {
		r.logger.Error("FavoriteRepository.FindByUserEmail: Find failed",
			zap.String("user_email", userEmail), zap.Error(err))
		return nil, fmt.Errorf("failed to query favorites: %w", err)
	}
	defer cursor.Close(ctx)

	var docs []*favoriteDocument
	if err := cursor.All(ctx, &docs); err != nil {
		r.logger.Error("FavoriteRepository.FindByUserEmail: cursor decode failed", zap.Error(err))
		return nil, fmt.Errorf("failed to decode favorites: %w", err)
	}
	return toDomainFavorites(docs), nil
}
