package mongodb

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"time"

	"github.com/rakib120822/artify-server/internal/artwork/domain"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

const artworkCollectionName = "artworkCollection"

type ArtworkRepository struct {
	collection *mongo.Collection
	logger     *zap.Logger
}

func NewArtworkRepository(db *mongo.Database, logger *zap.Logger) *ArtworkRepository {
	return &ArtworkRepository{
		collection: db.Collection(artworkCollectionName),
		logger:     logger,
	}
}

func (r *ArtworkRepository) Create(ctx context.Context, artwork *domain.Artwork) error {
	now := time.Now().UTC()
	artwork.CreatedAt = now
	artwork.UpdatedAt = now
	artwork.Like = 0

	doc, err := toArtworkDocument(artwork)
	if err != nil {
		return err
	}

	res, err := r.collection.InsertOne(ctx, doc)
	if err != nil {
		r.logger.Error("ArtworkRepository.Create: InsertOne failed", zap.Error(err))
		return fmt.Errorf("failed to insert artwork: %w", err)
	}

	oid, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return errors.New("failed to retrieve generated artwork ID")
	}
	artwork.ID = oid.Hex()
	return nil
}

func (r *ArtworkRepository) Update(ctx context.Context, id string, update domain.ArtworkUpdate) error {
	oid, err := parseObjectID(id)
	if err != nil {
		return err
	}

	set := bson.M{"updated_at": time.Now().UTC()}
	if update.Title != "" {
		set["title"] = update.Title
	}
	if update.Description != "" {
		set["description"] = update.Description
	}
	if update.ArtistName != "" {
		set["artist_name"] = update.ArtistName
	}
	if update.Price > 0 {
		set["price"] = update.Price
	}

	res, err := r.collection.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": set})
	if err != nil {
		r.logger.Error("ArtworkRepository.Update: UpdateOne failed", zap.String("artwork_id", id), zap.Error(err))
		return fmt.Errorf("failed to update artwork %s: %w", id, err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrArtworkNotFound
	}
	return nil
}

func (r *ArtworkRepository) Delete(ctx context.Context, id string) error {
	oid, err := parseObjectID(id)
	if err != nil {
		return err
	}
	res, err := r.collection.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		r.logger.Error("ArtworkRepository.Delete: DeleteOne failed", zap.String("artwork_id", id), zap.Error(err))
		return fmt.Errorf("failed to delete artwork %s: %w", id, err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrArtworkNotFound
	}
	return nil
}

func (r *ArtworkRepository) FindByID(ctx context.Context, id string) (*domain.Artwork, error) {
	oid, err := parseObjectID(id)
	if err != nil {
		return nil, err
	}

	var doc artworkDocument
	err = r.collection.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrArtworkNotFound
		}
		r.logger.Error("ArtworkRepository.FindByID: FindOne failed", zap.String("artwork_id", id), zap.Error(err))
		return nil, fmt.Errorf("failed to find artwork %s: %w", id, err)
	}
	return toDomainArtwork(&doc), nil
}

func (r *ArtworkRepository) FindAll(ctx context.Context) ([]*domain.Artwork, error) {
	return r.find(ctx, bson.M{}, nil)
}

func (r *ArtworkRepository) FindLatest(ctx context.Context, limit int64) ([]*domain.Artwork, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetLimit(limit)
	return r.find(ctx, bson.M{}, opts)
}

func (r *ArtworkRepository) FindByArtist(ctx context.Context, artistEmail string) ([]*domain.Artwork, error) {
	return r.find(ctx, bson.M{"artist_email": artistEmail}, nil)
}

func (r *ArtworkRepository) FindByIDs(ctx context.Context, ids []string) ([]*domain.Artwork, error) {
	oids := make([]primitive.ObjectID, 0, len(ids))
	for _, id := range ids {
		oid, err := parseObjectID(id)
		if err != nil {
			// Skip ids that can never match; favorites may reference artworks
			// written before the schema was canonicalized.
			r.logger.Warn("ArtworkRepository.FindByIDs: skipping malformed id", zap.String("artwork_id", id))
			continue
		}
		oids = append(oids, oid)
	}
	if len(oids) == 0 {
		return []*domain.Artwork{}, nil
	}
	return r.find(ctx, bson.M{"_id": bson.M{"$in": oids}}, nil)
}

// Search matches the query as a case-insensitive substring of the title or
// the artist name. An empty query deliberately matches the whole collection.
func (r *ArtworkRepository) Search(ctx context.Context, query string) ([]*domain.Artwork, error) {
	return r.find(ctx, buildSearchFilter(query), nil)
}

func buildSearchFilter(query string) bson.M {
	if query == "" {
		return bson.M{}
	}
	pattern := primitive.Regex{Pattern: regexp.QuoteMeta(query), Options: "i"}
	return bson.M{"$or": bson.A{
		bson.M{"title": pattern},
		bson.M{"artist_name": pattern},
	}}
}

// IncrementLike adjusts the denormalized like counter. Decrements are guarded
// with a like > 0 filter so the counter can never go negative; applied is
// false when the guard rejected the write.
func (r *ArtworkRepository) IncrementLike(ctx context.Context, id string, delta int) (bool, error) {
	oid, err := parseObjectID(id)
	if err != nil {
		return false, err
	}

	filter := bson.M{"_id": oid}
	if delta < 0 {
		filter["like"] = bson.M{"$gt": 0}
	}

	res, err := r.collection.UpdateOne(ctx, filter, bson.M{"$inc": bson.M{"like": delta}})
	if err != nil {
		r.logger.Error("ArtworkRepository.IncrementLike: UpdateOne failed",
			zap.String("artwork_id", id), zap.Int("delta", delta), zap.Error(err))
		return false, fmt.Errorf("failed to update like counter for artwork %s: %w", id, err)
	}
	return res.ModifiedCount == 1, nil
}

func (r *ArtworkRepository) AppendPhoto(ctx context.Context, id string, url string) error {
	oid, err := parseObjectID(id)
	if err != nil {
		return err
	}
	res, err := r.collection.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$push": bson.M{"photos": url}})
	if err != nil {
		r.logger.Error("ArtworkRepository.AppendPhoto: UpdateOne failed", zap.String("artwork_id", id), zap.Error(err))
		return fmt.Errorf("failed to append photo to artwork %s: %w", id, err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrArtworkNotFound
	}
	return nil
}

func (r *ArtworkRepository) find(ctx context.Context, filter bson.M, opts *options.FindOptions) ([]*domain.Artwork, error) {
	var cursor *mongo.Cursor
	var err error
	if opts != nil {
		cursor, err = r.collection.Find(ctx, filter, opts)
	} else {
		cursor, err = r.collection.Find(ctx, filter)
	}
	if err != nil {
		r.logger.Error("ArtworkRepository.find: Find failed", zap.Error(err))
		return nil, fmt.Errorf("failed to query artworks: %w", err)
	}
	defer cursor.Close(ctx)

	var docs []*artworkDocument
	if err := cursor.All(ctx, &docs); err != nil {
		r.logger.Error("ArtworkRepository.find: cursor decode failed", zap.Error(err))
		return nil, fmt.Errorf("failed to decode artworks: %w", err)
	}
	return toDomainArtworks(docs), nil
}
