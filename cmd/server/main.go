package main

import (
	"context"
	"log"
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"go.uber.org/zap"

	natsAdapter "github.com/rakib120822/artify-server/internal/adapter/messaging/nats"
	"github.com/rakib120822/artify-server/internal/adapter/repository/cache"
	"github.com/rakib120822/artify-server/internal/adapter/repository/mongodb"
	"github.com/rakib120822/artify-server/internal/adapter/storage/s3"
	"github.com/rakib120822/artify-server/internal/artwork/usecase"
	"github.com/rakib120822/artify-server/internal/config"
	"github.com/rakib120822/artify-server/internal/handler"
	"github.com/rakib120822/artify-server/internal/mailer"
	"github.com/rakib120822/artify-server/internal/middleware"
	"github.com/rakib120822/artify-server/internal/router"
)

func main() {
	configPath := "config.yaml"
	if cp := os.Getenv("CONFIG_PATH"); cp != "" {
		configPath = cp
	}

	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger, err := zap.NewProductionConfig().Build()
	if err != nil {
		log.Fatalf("can't initialize zap logger: %v", err)
	}
	defer logger.Sync()

	logger.Info("Configuration loaded",
		zap.String("http_port", cfg.HTTP.Port),
		zap.String("mongo_database", cfg.Mongo.Database),
	)

	mongoClient, err := mongodb.NewMongoDBConnection(&cfg.Mongo)
	if err != nil {
		logger.Fatal("Failed to connect to MongoDB", zap.Error(err))
	}
	defer func() {
		if err := mongoClient.Disconnect(context.TODO()); err != nil {
			logger.Error("Failed to disconnect MongoDB", zap.Error(err))
		}
	}()
	logger.Info("Successfully connected to MongoDB")
	db := mongoClient.Database(cfg.Mongo.Database)

	artworkRepo := mongodb.NewArtworkRepository(db, logger)
	favoriteRepo := mongodb.NewFavoriteRepository(db, logger)
	likeRepo := mongodb.NewLikeRepository(db, logger)

	redisClient, err := cache.NewRedisClient(&cfg.Redis, logger)
	if err != nil {
		logger.Fatal("Failed to connect to Redis", zap.Error(err))
	}
	defer redisClient.Close()
	artworkCache := cache.NewArtworkCache(redisClient, logger)

	publisher, err := natsAdapter.NewNATSPublisher(&cfg.NATS, logger)
	if err != nil {
		logger.Fatal("Failed to connect to NATS", zap.Error(err))
	}
	defer publisher.Close()

	photoStorage, err := s3.NewS3Storage(&cfg.MinIO, logger)
	if err != nil {
		logger.Fatal("Failed to initialize photo storage", zap.Error(err))
	}

	artworkMailer := mailer.NewMailer(&cfg.SMTP)

	artworkUC := usecase.NewArtworkUsecase(artworkRepo, artworkCache, publisher, artworkMailer, logger)
	favoriteUC := usecase.NewFavoriteUsecase(favoriteRepo, artworkRepo, logger)
	likeUC := usecase.NewLikeUsecase(likeRepo, artworkRepo, artworkCache, publisher, logger)
	photoUC := usecase.NewPhotoUsecase(artworkUC, artworkRepo, photoStorage, logger)

	artworkHandler := handler.NewArtworkHandler(artworkUC, photoUC, logger)
	favoriteHandler := handler.NewFavoriteHandler(favoriteUC, logger)
	likeHandler := handler.NewLikeHandler(likeUC, logger)

	r := chi.NewRouter()
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
	}))
	r.Use(middleware.Logger(logger))
	router.SetupArtworkRoutes(r, artworkHandler, favoriteHandler, likeHandler, cfg.JWT.Secret, logger)

	addr := ":" + cfg.HTTP.Port
	logger.Info("Starting artify HTTP server", zap.String("address", addr))
	if err := http.ListenAndServe(addr, r); err != nil {
		logger.Fatal("Failed to start HTTP server", zap.Error(err))
	}
}
