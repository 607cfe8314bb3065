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

type PostHandler struct {
	postService    *service.PostService
	commentService *service.CommentService
}

func NewPostHandler(postService *service.PostService, commentService *service.CommentService) *PostHandler {
	return &PostHandler{
		postService:    postService,
		commentService: commentService,
	}
}

type CreatePostRequest struct {
	ImageURL string `json:"imageUrl"`
	Caption  string `json:"caption"`
}

type UpdatePostRequest struct {
	Caption string `json:"caption"`
}

type CreateCommentRequest struct {
	Text string `json:"text"`
}

func (h *PostHandler) Create(w http.ResponseWriter, r *http.Request) {
	authorID, ok := middleware.GetUserID(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var req CreatePostRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if req.ImageURL == "" || req.Caption == "" {
		respondError(w, http.StatusBadRequest, "Image URL and caption are required")
		return
	}

	post, err := h.postService.Create(r.Context(), authorID, service.CreatePostInput{
		ImageURL: req.ImageURL,
		Caption:  req.Caption,
	})
	if err != nil {
		log.Printf("ERROR [posts.Create] failed to create post: %v", err)
		respondError(w, http.StatusInternalServerError, "Error creating post")
		return
	}

	respondJSON(w, http.StatusCreated, post)
}

func (h *PostHandler) List(w http.ResponseWriter, r *http.Request) {
	posts, err := h.postService.List(r.Context())
	if err != nil {
		log.Printf("ERROR [posts.List] failed to list posts: %v", err)
		respondError(w, http.StatusInternalServerError, "Error fetching posts")
		return
	}

	respondJSON(w, http.StatusOK, posts)
}

func (h *PostHandler) Get(w http.ResponseWriter, r *http.Request) {
	postID, err := urlParamUint(r, "id")
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid post id")
		return
	}

	post, err := h.postService.Get(r.Context(), postID)
	if err != nil {
		if errors.Is(err, domain.ErrPostNotFound) {
			respondError(w, http.StatusNotFound, "Post not found")
			return
		}
		log.Printf("ERROR [posts.Get] failed to fetch post: %v", err)
		respondError(w, http.StatusInternalServerError, "Error fetching post")
		return
	}

	respondJSON(w, http.StatusOK, post)
}

func (h *PostHandler) Update(w http.ResponseWriter, r *http.Request) {
	actorID, ok := middleware.GetUserID(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	postID, err := urlParamUint(r, "id")
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid post id")
		return
	}

	var req UpdatePostRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	post, err := h.postService.UpdateCaption(r.Context(), postID, actorID, req.Caption)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrPostNotFound):
			respondError(w, http.StatusNotFound, "Post not found")
		case errors.Is(err, domain.ErrForbidden):
			respondError(w, http.StatusForbidden, "You do not have permission to edit this post")
		default:
			log.Printf("ERROR [posts.Update] failed to update post: %v", err)
			respondError(w, http.StatusInternalServerError, "Error updating post")
		}
		return
	}

	respondJSON(w, http.StatusOK, post)
}

func (h *PostHandler) Delete(w http.ResponseWriter, r *http.Request) {
	actorID, ok := middleware.GetUserID(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	postID, err := urlParamUint(r, "id")
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid post id")
		return
	}

	if err := h.postService.Delete(r.Context(), postID, actorID); err != nil {
		switch {
		case errors.Is(err, domain.ErrPostNotFound):
			respondError(w, http.StatusNotFound, "Post not found")
		case errors.Is(err, domain.ErrForbidden):
			respondError(w, http.StatusForbidden, "You do not have permission to delete this post")
		default:
			log.Printf("ERROR [posts.Delete] failed to delete post: %v", err)
			respondError(w, http.StatusInternalServerError, "Error deleting post")
		}
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{"message": "Successfully deleted"})
}

func (h *PostHandler) Like(w http.ResponseWriter, r *http.Request) {
	actorID, ok := middleware.GetUserID(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	postID, err := urlParamUint(r, "id")
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid post id")
		return
	}

	like, err := h.postService.Like(r.Context(), postID, actorID)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrAlreadyLiked):
			respondError(w, http.StatusConflict, "Post already liked")
		case errors.Is(err, domain.ErrPostNotFound):
			respondError(w, http.StatusNotFound, "Post not found")
		default:
			log.Printf("ERROR [posts.Like] failed to like post: %v", err)
			respondError(w, http.StatusInternalServerError, "Could not process the like action")
		}
		return
	}

	respondJSON(w, http.StatusCreated, like)
}

func (h *PostHandler) Unlike(w http.ResponseWriter, r *http.Request) {
	actorID, ok := middleware.GetUserID(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	postID, err := urlParamUint(r, "id")
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid post id")
		return
	}

	if err := h.postService.Unlike(r.Context(), postID, actorID); err != nil {
		if errors.Is(err, domain.ErrLikeNotFound) {
			respondError(w, http.StatusNotFound, "Like not found")
			return
		}
		log.Printf("ERROR [posts.Unlike] failed to unlike post: %v", err)
		respondError(w, http.StatusInternalServerError, "Could not remove the like")
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{"message": "Like removed successfully"})
}

func (h *PostHandler) GetComments(w http.ResponseWriter, r *http.Request) {
	postID, err := urlParamUint(r, "id")
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid post id")
		return
	}

	comments, err := h.commentService.ListForPost(r.Context(), postID)
	if err != nil {
		if errors.Is(err, domain.ErrPostNotFound) {
			respondError(w, http.StatusNotFound, "Post not found")
			return
		}
		log.Printf("ERROR [posts.GetComments] failed to fetch comments: %v", err)
		respondError(w, http.StatusInternalServerError, "Could not fetch comments")
		return
	}

	respondJSON(w, http.StatusOK, comments)
}

func (h *PostHandler) CreateComment(w http.ResponseWriter, r *http.Request) {
	authorID, ok := middleware.GetUserID(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	postID, err := urlParamUint(r, "id")
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid post id")
		return
	}

	var req CreateCommentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if req.Text == "" {
		respondError(w, http.StatusBadRequest, "Text is required")
		return
	}

	comment, err := h.commentService.CreateOnPost(r.Context(), postID, authorID, req.Text)
	if err != nil {
		if errors.Is(err, domain.ErrPostNotFound) {
			respondError(w, http.StatusNotFound, "Post not found")
			return
		}
		log.Printf("ERROR [posts.CreateComment] failed to create comment: %v", err)
		respondError(w, http.StatusInternalServerError, "Error creating comment")
		return
	}

	respondJSON(w, http.StatusCreated, comment)
}
