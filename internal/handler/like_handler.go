package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rakib120822/artify-server/internal/artwork/domain"
	"github.com/rakib120822/artify-server/internal/artwork/usecase"
	"go.uber.org/zap"
)

type LikeHandler struct {
	likeUC *usecase.LikeUsecase
	logger *zap.Logger
}

func NewLikeHandler(likeUC *usecase.LikeUsecase, logger *zap.Logger) *LikeHandler {
	return &LikeHandler{likeUC: likeUC, logger: logger}
}

// HandleToggle serves PUT /artwork/like/{id}?identity=. Any identity may like
// any artwork; there is deliberately no ownership guard here.
func (h *LikeHandler) HandleToggle(w http.ResponseWriter, r *http.Request) {
	artworkID := chi.URLParam(r, "id")
	identity := callerIdentity(r)

	result, err := h.likeUC.Toggle(r.Context(), identity, artworkID)
	if err != nil {
		respondError(w, h.logger, err)
		return
	}

	message := "Unliked"
	if result.Liked {
		message = "Liked"
	}
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"message":       message,
		"result":        result.UserLikes,
		"artworkObject": result.Artwork,
	})
}

// HandleUserLikes serves GET /user/likes?identity=. The response is an array
// for compatibility with callers that treat it as a collection scan.
func (h *LikeHandler) HandleUserLikes(w http.ResponseWriter, r *http.Request) {
	userLikes, err := h.likeUC.GetUserLikes(r.Context(), callerIdentity(r))
	if err != nil {
		respondError(w, h.logger, err)
		return
	}
	docs := []*domain.UserLikes{}
	if userLikes.ID != "" {
		docs = append(docs, userLikes)
	}
	respondJSON(w, http.StatusOK, docs)
}
