package handler

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rakib120822/artify-server/internal/artwork/domain"
	"github.com/rakib120822/artify-server/internal/artwork/usecase"
	"go.uber.org/zap"
)

// ArtworkHandler serves the artwork CRUD, search and photo routes.
type ArtworkHandler struct {
	artworkUC *usecase.ArtworkUsecase
	photoUC   *usecase.PhotoUsecase
	logger    *zap.Logger
}

func NewArtworkHandler(artworkUC *usecase.ArtworkUsecase, photoUC *usecase.PhotoUsecase, logger *zap.Logger) *ArtworkHandler {
	return &ArtworkHandler{artworkUC: artworkUC, photoUC: photoUC, logger: logger}
}

// HandleList serves GET /artworks.
func (h *ArtworkHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	artworks, err := h.artworkUC.List(r.Context())
	if err != nil {
		respondError(w, h.logger, err)
		return
	}
	respondJSON(w, http.StatusOK, artworks)
}

// HandleLatest serves GET /artworks/latest: the six newest artworks,
// newest first.
func (h *ArtworkHandler) HandleLatest(w http.ResponseWriter, r *http.Request) {
	artworks, err := h.artworkUC.Latest(r.Context())
	if err != nil {
		respondError(w, h.logger, err)
		return
	}
	respondJSON(w, http.StatusOK, artworks)
}

// HandleSearch serves GET /artworks/search?query=. An empty query returns the
// whole collection.
func (h *ArtworkHandler) HandleSearch(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("query")
	if query == "" {
		query = r.URL.Query().Get("search")
	}
	artworks, err := h.artworkUC.Search(r.Context(), query)
	if err != nil {
		respondError(w, h.logger, err)
		return
	}
	respondJSON(w, http.StatusOK, artworks)
}

// HandleGetByID serves GET /artwork/{id}.
func (h *ArtworkHandler) HandleGetByID(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	artwork, err := h.artworkUC.GetByID(r.Context(), id)
	if err != nil {
		respondError(w, h.logger, err)
		return
	}
	respondJSON(w, http.StatusOK, artwork)
}

// HandleMyArtworks serves GET /my-artworks?identity=.
func (h *ArtworkHandler) HandleMyArtworks(w http.ResponseWriter, r *http.Request) {
	artworks, err := h.artworkUC.ListByArtist(r.Context(), callerIdentity(r))
	if err != nil {
		respondError(w, h.logger, err)
		return
	}
	respondJSON(w, http.StatusOK, artworks)
}

// HandleCreate serves POST /artworks.
func (h *ArtworkHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var artwork domain.Artwork
	if err := json.NewDecoder(r.Body).Decode(&artwork); err != nil {
		h.logger.Warn("HandleCreate: invalid request body", zap.Error(err))
		respondJSON(w, http.StatusBadRequest, errorResponse{Message: "Invalid request body"})
		return
	}

	created, err := h.artworkUC.Create(r.Context(), &artwork)
	if err != nil {
		respondError(w, h.logger, err)
		return
	}
	// Insert-result echo, the shape existing frontend callers expect.
	respondJSON(w, http.StatusCreated, map[string]interface{}{
		"acknowledged": true,
		"insertedId":   created.ID,
	})
}

// HandleUpdate serves PUT /artwork/{id}?identity= and is ownership-guarded.
func (h *ArtworkHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	identity := callerIdentity(r)
	if identity == "" {
		respondError(w, h.logger, domain.ErrValidation)
		return
	}

	var update domain.ArtworkUpdate
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
		h.logger.Warn("HandleUpdate: invalid request body", zap.String("artwork_id", id), zap.Error(err))
		respondJSON(w, http.StatusBadRequest, errorResponse{Message: "Invalid request body"})
		return
	}

	if _, err := h.artworkUC.Update(r.Context(), id, identity, update); err != nil {
		respondError(w, h.logger, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]bool{"success": true})
}

// HandleDelete serves DELETE /artwork/{id}?identity= and is ownership-guarded.
func (h *ArtworkHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	identity := callerIdentity(r)
	if identity == "" {
		respondError(w, h.logger, domain.ErrValidation)
		return
	}

	if err := h.artworkUC.Delete(r.Context(), id, identity); err != nil {
		respondError(w, h.logger, err)
		return
	}
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("Deleted successfully"))
}

// HandleUploadPhoto serves POST /artwork/{id}/photo?identity= with a
// multipart "photo" field; ownership-guarded.
func (h *ArtworkHandler) HandleUploadPhoto(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	identity := callerIdentity(r)
	if identity == "" {
		respondError(w, h.logger, domain.ErrValidation)
		return
	}

	file, header, err := r.FormFile("photo")
	if err != nil {
		respondJSON(w, http.StatusBadRequest, errorResponse{Message: "Photo file is required"})
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		h.logger.Error("HandleUploadPhoto: failed to read upload", zap.String("artwork_id", id), zap.Error(err))
		respondJSON(w, http.StatusInternalServerError, errorResponse{Message: "Server error"})
		return
	}

	url, err := h.photoUC.Upload(r.Context(), id, identity, header.Filename, data)
	if err != nil {
		respondError(w, h.logger, err)
		return
	}
	respondJSON(w, http.StatusCreated, map[string]string{"url": url})
}
