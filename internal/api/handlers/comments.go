package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/jaewoo-dev/instalite/internal/api/middleware"
	"github.com/jaewoo-dev/instalite/internal/domain"
	"github.com/jaewoo-dev/instalite/internal/service"
)

type CommentHandler struct {
	commentService *service.CommentService
}

func NewCommentHandler(commentService *service.CommentService) *CommentHandler {
	return &CommentHandler{commentService: commentService}
}

type UpdateCommentRequest struct {
	Text string `json:"text"`
}

func (h *CommentHandler) Update(w http.ResponseWriter, r *http.Request) {
	actorID, ok := middleware.GetUserID(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	commentID, err := urlParamUint(r, "id")
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid comment id")
		return
	}

	var req UpdateCommentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	comment, err := h.commentService.UpdateText(r.Context(), commentID, actorID, req.Text)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrCommentNotFound):
			respondError(w, http.StatusNotFound, "Comment not found")
		case errors.Is(err, domain.ErrForbidden):
			respondError(w, http.StatusForbidden, "Forbidden")
		default:
			log.Printf("ERROR [comments.Update] failed to update comment: %v", err)
			respondError(w, http.StatusInternalServerError, "Error updating comment")
		}
		return
	}

	respondJSON(w, http.StatusOK, comment)
}

func (h *CommentHandler) Delete(w http.ResponseWriter, r *http.Request) {
	actorID, ok := middleware.GetUserID(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	commentID, err := urlParamUint(r, "id")
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid comment id")
		return
	}

	if err := h.commentService.Delete(r.Context(), commentID, actorID); err != nil {
		switch {
		case errors.Is(err, domain.ErrCommentNotFound):
			respondError(w, http.StatusNotFound, "Comment not found")
		case errors.Is(err, domain.ErrForbidden):
			respondError(w, http.StatusForbidden, "Forbidden")
		default:
			log.Printf("ERROR [comments.Delete] failed to delete comment: %v", err)
			respondError(w, http.StatusInternalServerError, "Error deleting comment")
		}
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{"message": "Comment deleted successfully"})
}
