package nats

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/nats-io/nats.go"
	"github.com/rakib120822/artify-server/internal/artwork/domain"
	"github.com/rakib120822/artify-server/internal/config"
	"go.uber.org/zap"
)

const (
	ArtworkCreatedSubject = "artwork.created"
	ArtworkUpdatedSubject = "artwork.updated"
	ArtworkDeletedSubject = "artwork.deleted"
	ArtworkLikedSubject   = "artwork.liked"
)

type Publisher struct {
	nc     *nats.Conn
	logger *zap.Logger
}

type deletedEventPayload struct {
	ID string `json:"id"`
}

type likedEventPayload struct {
	ArtworkID string `json:"artwork_id"`
	UserEmail string `json:"user_email"`
	Liked     bool   `json:"liked"`
}

func NewNATSPublisher(cfg *config.NATSConfig, logger *zap.Logger) (*Publisher, error) {
	opts := []nats.Option{
		nats.Timeout(cfg.ConnectTimeout),
		nats.ErrorHandler(func(nc *nats.Conn, sub *nats.Subscription, err error) {
			logger.Error("NATS error", zap.Error(err))
		}),
		nats.ClosedHandler(func(nc *nats.Conn) {
			logger.Info("NATS connection closed")
		}),
		nats.ReconnectHandler(func(nc *nats.Conn) {
			logger.Info("NATS reconnected", zap.String("url", nc.ConnectedUrl()))
		}),
		nats.DisconnectErrHandler(func(nc *nats.Conn, err error) {
			logger.Warn("NATS disconnected", zap.Error(err))
		}),
	}

	nc, err := nats.Connect(cfg.URL, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to NATS: %w", err)
	}
	logger.Info("Successfully connected to NATS", zap.String("url", nc.ConnectedUrl()))

	return &Publisher{nc: nc, logger: logger}, nil
}

func (p *Publisher) PublishArtworkCreated(ctx context.Context, artwork *domain.Artwork) error {
	return p.publish(ArtworkCreatedSubject, artwork, artwork.ID)
}

func (p *Publisher) PublishArtworkUpdated(ctx context.Context, artwork *domain.Artwork) error {
	return p.publish(ArtworkUpdatedSubject, artwork, artwork.ID)
}

func (p *Publisher) PublishArtworkDeleted(ctx context.Context, artworkID string) error {
	return p.publish(ArtworkDeletedSubject, deletedEventPayload{ID: artworkID}, artworkID)
}

func (p *Publisher) PublishArtworkLiked(ctx context.Context, artworkID, userEmail string, liked bool) error {
	payload := likedEventPayload{ArtworkID: artworkID, UserEmail: userEmail, Liked: liked}
	return p.publish(ArtworkLikedSubject, payload, artworkID)
}

func (p *Publisher) publish(subject string, payload interface{}, artworkID string) error {
	data, err := json.Marshal(payload)
	if err != nil {
		p.logger.Error("Failed to marshal NATS payload",
			zap.String("subject", subject), zap.String("artwork_id", artworkID), zap.Error(err))
		return fmt.Errorf("failed to marshal payload for %s: %w", subject, err)
	}
	if err := p.nc.Publish(subject, data); err != nil {
		p.logger.Error("Failed to publish NATS message",
			zap.String("subject", subject), zap.String("artwork_id", artworkID), zap.Error(err))
		return fmt.Errorf("failed to publish NATS message for %s: %w", subject, err)
	}
	p.logger.Debug("Published NATS message",
		zap.String("subject", subject), zap.String("artwork_id", artworkID))
	return nil
}

func (p *Publisher) Close() {
	if p.nc != nil && !p.nc.IsClosed() {
		if err := p.nc.Drain(); err != nil {
			p.logger.Error("Error draining NATS connection", zap.Error(err))
		}
		p.nc.Close()
		p.logger.Info("NATS publisher connection closed")
	}
}
