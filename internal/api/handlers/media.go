package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/jaewoo-dev/instalite/internal/api/middleware"
	"github.com/jaewoo-dev/instalite/internal/service"
)

type MediaHandler struct {
	mediaService *service.MediaService
}

func NewMediaHandler(mediaService *service.MediaService) *MediaHandler {
	return &MediaHandler{mediaService: mediaService}
}

// Upload accepts a multipart form with a single "file" field, stores the
// image in object storage and returns the record with its public URL.
func (h *MediaHandler) Upload(w http.ResponseWriter, r *http.Request) {
	uploaderID, ok := middleware.GetUserID(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		respondError(w, http.StatusBadRequest, "File is required")
		return
	}
	defer file.Close()

	media, err := h.mediaService.Upload(r.Context(), uploaderID, file, header)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrMediaTooLarge):
			respondError(w, http.StatusBadRequest, "File exceeds upload size limit")
		case errors.Is(err, service.ErrUnsupportedType):
			respondError(w, http.StatusBadRequest, "Only image uploads are supported")
		default:
			log.Printf("ERROR [media.Upload] upload failed: %v", err)
			respondError(w, http.StatusInternalServerError, "Upload failed")
		}
		return
	}

	respondJSON(w, http.StatusCreated, media)
}
