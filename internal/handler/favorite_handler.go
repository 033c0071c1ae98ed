package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rakib120822/artify-server/internal/artwork/usecase"
	"go.uber.org/zap"
)

type FavoriteHandler struct {
	favoriteUC *usecase.FavoriteUsecase
	logger     *zap.Logger
}

func NewFavoriteHandler(favoriteUC *usecase.FavoriteUsecase, logger *zap.Logger) *FavoriteHandler {
	return &FavoriteHandler{favoriteUC: favoriteUC, logger: logger}
}

// HandleAdd serves POST /favorite/{id}?identity=. Adding an existing favorite
// is a no-op answered with 200.
func (h *FavoriteHandler) HandleAdd(w http.ResponseWriter, r *http.Request) {
	artworkID := chi.URLParam(r, "id")
	identity := callerIdentity(r)

	favorite, alreadyExists, err := h.favoriteUC.Add(r.Context(), identity, artworkID)
	if err != nil {
		respondError(w, h.logger, err)
		return
	}
	if alreadyExists {
		respondJSON(w, http.StatusOK, map[string]string{"message": "Already in favorites"})
		return
	}
	respondJSON(w, http.StatusCreated, map[string]interface{}{
		"acknowledged": true,
		"insertedId":   favorite.ID,
	})
}

// HandleRemove serves DELETE /favorite/{id}?identity=. A missing pair still
// answers 200 with deletedCount 0.
func (h *FavoriteHandler) HandleRemove(w http.ResponseWriter, r *http.Request) {
	artworkID := chi.URLParam(r, "id")
	identity := callerIdentity(r)

	removed, err := h.favoriteUC.Remove(r.Context(), identity, artworkID)
	if err != nil {
		respondError(w, h.logger, err)
		return
	}
	deletedCount := 0
	if removed {
		deletedCount = 1
	}
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"acknowledged": true,
		"deletedCount": deletedCount,
	})
}

// HandleFavoriteArtworks serves GET /favorite-artworks?identity=, resolving
// the user's favorites into full artwork records.
func (h *FavoriteHandler) HandleFavoriteArtworks(w http.ResponseWriter, r *http.Request) {
	artworks, err := h.favoriteUC.ResolveArtworks(r.Context(), callerIdentity(r))
	if err != nil {
		respondError(w, h.logger, err)
		return
	}
	respondJSON(w, http.StatusOK, artworks)
}

// HandleListFavorites serves GET /user/favorite-artworks?identity=, returning
// the raw favorite pairs.
func (h *FavoriteHandler) HandleListFavorites(w http.ResponseWriter, r *http.Request) {
	favorites, err := h.favoriteUC.List(r.Context(), callerIdentity(r))
	if err != nil {
		respondError(w, h.logger, err)
		return
	}
	respondJSON(w, http.StatusOK, favorites)
}
