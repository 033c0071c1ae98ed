package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/rakib120822/artify-server/internal/artwork/domain"
	"github.com/rakib120822/artify-server/internal/config"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const (
	artworkKeyPrefix = "artwork:"
	latestKey        = "artworks:latest"
)

type ArtworkCache struct {
	client *redis.Client
	logger *zap.Logger
}

func NewRedisClient(cfg *config.RedisConfig, logger *zap.Logger) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Address,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	pingCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := rdb.Ping(pingCtx).Err(); err != nil {
		logger.Error("Failed to connect to Redis", zap.String("address", cfg.Address), zap.Error(err))
		return nil, fmt.Errorf("failed to ping redis at %s: %w", cfg.Address, err)
	}
	logger.Info("Successfully connected to Redis", zap.String("address", cfg.Address))
	return rdb, nil
}

func NewArtworkCache(client *redis.Client, logger *zap.Logger) *ArtworkCache {
	return &ArtworkCache{client: client, logger: logger}
}

func (c *ArtworkCache) GetArtwork(ctx context.Context, id string) (*domain.Artwork, error) {
	data, err := c.client.Get(ctx, artworkKeyPrefix+id).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil // cache miss
	}
	if err != nil {
		return nil, fmt.Errorf("cache get artwork %s: %w", id, err)
	}
	var artwork domain.Artwork
	if err := json.Unmarshal(data, &artwork); err != nil {
		return nil, fmt.Errorf("cache decode artwork %s: %w", id, err)
	}
	return &artwork, nil
}

func (c *ArtworkCache) SetArtwork(ctx context.Context, artwork *domain.Artwork, ttl time.Duration) error {
	data, err := json.Marshal(artwork)
	if err != nil {
		return fmt.Errorf("cache encode artwork %s: %w", artwork.ID, err)
	}
	return c.client.Set(ctx, artworkKeyPrefix+artwork.ID, data, ttl).Err()
}

func (c *ArtworkCache) DeleteArtwork(ctx context.Context, id string) error {
	return c.client.Del(ctx, artworkKeyPrefix+id).Err()
}

func (c *ArtworkCache) GetLatest(ctx context.Context) ([]*domain.Artwork, error) {
	data, err := c.client.Get(ctx, latestKey).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("cache get latest artworks: %w", err)
	}
	var artworks []*domain.Artwork
	if err := json.Unmarshal(data, &artworks); err != nil {
		return nil, fmt.Errorf("cache decode latest artworks: %w", err)
	}
	return artworks, nil
}

func (c *ArtworkCache) SetLatest(ctx context.Context, artworks []*domain.Artwork, ttl time.Duration) error {
	data, err := json.Marshal(artworks)
	if err != nil {
		return fmt.Errorf("cache encode latest artworks: %w", err)
	}
	return c.client.Set(ctx, latestKey, data, ttl).Err()
}

func (c *ArtworkCache) InvalidateLatest(ctx context.Context) error {
	return c.client.Del(ctx, latestKey).Err()
}
