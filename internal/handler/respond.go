package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/rakib120822/artify-server/internal/artwork/domain"
	"go.uber.org/zap"
)

func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}

type errorResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// respondError maps domain errors to HTTP statuses. Store failures surface as
// a generic 500; the details stay in the log.
func respondError(w http.ResponseWriter, logger *zap.Logger, err error) {
	switch {
	case errors.Is(err, domain.ErrInvalidArtworkID):
		respondJSON(w, http.StatusBadRequest, errorResponse{Message: "Invalid artwork ID"})
	case errors.Is(err, domain.ErrValidation):
		respondJSON(w, http.StatusBadRequest, errorResponse{Message: "Email and artwork ID are required"})
	case errors.Is(err, domain.ErrArtworkNotFound):
		respondJSON(w, http.StatusNotFound, errorResponse{Message: "Artwork not found"})
	case errors.Is(err, domain.ErrFavoriteNotFound):
		respondJSON(w, http.StatusNotFound, errorResponse{Message: "Favorite not found"})
	case errors.Is(err, domain.ErrForbidden):
		respondJSON(w, http.StatusForbidden, errorResponse{Message: "Forbidden — you are not the owner"})
	default:
		logger.Error("request failed with store error", zap.Error(err))
		respondJSON(w, http.StatusInternalServerError, errorResponse{Message: "Server error"})
	}
}

// callerIdentity extracts the claimed caller identity. The token middleware
// has already verified the token; the identity itself travels as a query
// parameter ("identity", with "email" kept for older callers).
func callerIdentity(r *http.Request) string {
	if identity := r.URL.Query().Get("identity"); identity != "" {
		return identity
	}
	return r.URL.Query().Get("email")
}
