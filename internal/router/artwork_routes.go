package router

import (
	"github.com/go-chi/chi/v5"
	"github.com/rakib120822/artify-server/internal/handler"
	"github.com/rakib120822/artify-server/internal/middleware"
	"go.uber.org/zap"
)

// SetupArtworkRoutes wires the route table. Listing, latest and search are
// public; everything else sits behind token verification. The like route is
// inside the protected group but is not ownership-guarded: any authenticated
// identity may like any artwork.
func SetupArtworkRoutes(
	mux *chi.Mux,
	artworkHandler *handler.ArtworkHandler,
	favoriteHandler *handler.FavoriteHandler,
	likeHandler *handler.LikeHandler,
	jwtSecret string,
	logger *zap.Logger,
) {
	mux.Get("/artworks", artworkHandler.HandleList)
	mux.Get("/artworks/latest", artworkHandler.HandleLatest)
	mux.Get("/artworks/search", artworkHandler.HandleSearch)

	mux.Group(func(r chi.Router) {
		r.Use(middleware.JWTAuth(jwtSecret, logger))

		r.Get("/artwork/{id}", artworkHandler.HandleGetByID)
		r.Get("/my-artworks", artworkHandler.HandleMyArtworks)
		r.Post("/artworks", artworkHandler.HandleCreate)
		r.Put("/artwork/{id}", artworkHandler.HandleUpdate)
		r.Delete("/artwork/{id}", artworkHandler.HandleDelete)
		r.Post("/artwork/{id}/photo", artworkHandler.HandleUploadPhoto)

		r.Get("/favorite-artworks", favoriteHandler.HandleFavoriteArtworks)
		r.Get("/user/favorite-artworks", favoriteHandler.HandleListFavorites)
		r.Post("/favorite/{id}", favoriteHandler.HandleAdd)
		r.Delete("/favorite/{id}", favoriteHandler.HandleRemove)

		r.Put("/artwork/like/{id}", likeHandler.HandleToggle)
		r.Get("/user/likes", likeHandler.HandleUserLikes)
	})
}
