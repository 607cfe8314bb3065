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

type UserHandler struct {
	authService   *service.AuthService
	userService   *service.UserService
	followService *service.FollowService
}

func NewUserHandler(authService *service.AuthService, userService *service.UserService, followService *service.FollowService) *UserHandler {
	return &UserHandler{
		authService:   authService,
		userService:   userService,
		followService: followService,
	}
}

type RegisterRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type followerRef struct {
	FollowerID uint `json:"followerId"`
}

// ProfileResponse is a user with their posts and follower ids, password
// excluded by the domain model's json tags.
type ProfileResponse struct {
	*domain.User
	Followers []followerRef `json:"followers"`
}

func (h *UserHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if req.Username == "" || req.Email == "" || req.Password == "" {
		respondError(w, http.StatusBadRequest, "All fields are required")
		return
	}

	user, err := h.authService.Register(r.Context(), service.RegisterInput{
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		if errors.Is(err, service.ErrUserExists) {
			respondError(w, http.StatusConflict, "Username or email already taken")
			return
		}
		log.Printf("ERROR [users.Create] registration failed: %v", err)
		respondError(w, http.StatusInternalServerError, "Error creating user")
		return
	}

	respondJSON(w, http.StatusCreated, user)
}

func (h *UserHandler) List(w http.ResponseWriter, r *http.Request) {
	users, err := h.userService.List(r.Context())
	if err != nil {
		log.Printf("ERROR [users.List] failed to list users: %v", err)
		respondError(w, http.StatusInternalServerError, "Error fetching users")
		return
	}

	respondJSON(w, http.StatusOK, users)
}

func (h *UserHandler) Get(w http.ResponseWriter, r *http.Request) {
	userID, err := urlParamUint(r, "id")
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid user id")
		return
	}

	user, followerIDs, err := h.userService.GetProfile(r.Context(), userID)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			respondError(w, http.StatusNotFound, "User not found")
			return
		}
		log.Printf("ERROR [users.Get] failed to fetch profile: %v", err)
		respondError(w, http.StatusInternalServerError, "Error fetching user profile")
		return
	}

	followers := make([]followerRef, 0, len(followerIDs))
	for _, id := range followerIDs {
		followers = append(followers, followerRef{FollowerID: id})
	}

	respondJSON(w, http.StatusOK, ProfileResponse{User: user, Followers: followers})
}

func (h *UserHandler) GetLikedPosts(w http.ResponseWriter, r *http.Request) {
	userID, err := urlParamUint(r, "id")
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid user id")
		return
	}

	posts, err := h.userService.ListLikedPosts(r.Context(), userID)
	if err != nil {
		log.Printf("ERROR [users.GetLikedPosts] failed to fetch liked posts: %v", err)
		respondError(w, http.StatusInternalServerError, "Could not fetch user's liked posts")
		return
	}

	respondJSON(w, http.StatusOK, posts)
}

func (h *UserHandler) Follow(w http.ResponseWriter, r *http.Request) {
	actorID, ok := middleware.GetUserID(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	followedID, err := urlParamUint(r, "id")
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid user id")
		return
	}

	follow, err := h.followService.Follow(r.Context(), actorID, followedID)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrSelfFollow):
			respondError(w, http.StatusBadRequest, "You cannot follow yourself")
		case errors.Is(err, domain.ErrAlreadyFollowing):
			respondError(w, http.StatusConflict, "User already followed")
		case errors.Is(err, domain.ErrUserNotFound):
			respondError(w, http.StatusNotFound, "User not found")
		default:
			log.Printf("ERROR [users.Follow] failed to follow: %v", err)
			respondError(w, http.StatusInternalServerError, "Could not follow user")
		}
		return
	}

	respondJSON(w, http.StatusCreated, follow)
}

func (h *UserHandler) Unfollow(w http.ResponseWriter, r *http.Request) {
	actorID, ok := middleware.GetUserID(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	followedID, err := urlParamUint(r, "id")
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid user id")
		return
	}

	if err := h.followService.Unfollow(r.Context(), actorID, followedID); err != nil {
		switch {
		case errors.Is(err, domain.ErrSelfFollow):
			respondError(w, http.StatusBadRequest, "You cannot unfollow yourself")
		case errors.Is(err, domain.ErrFollowNotFound):
			respondError(w, http.StatusNotFound, "Follow relationship not found")
		default:
			log.Printf("ERROR [users.Unfollow] failed to unfollow: %v", err)
			respondError(w, http.StatusInternalServerError, "Could not unfollow user")
		}
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{"message": "Successfully unfollowed user"})
}

func (h *UserHandler) GetFollowers(w http.ResponseWriter, r *http.Request) {
	userID, err := urlParamUint(r, "id")
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid user id")
		return
	}

	followers, err := h.followService.Followers(r.Context(), userID)
	if err != nil {
		log.Printf("ERROR [users.GetFollowers] failed to fetch followers: %v", err)
		respondError(w, http.StatusInternalServerError, "Could not fetch followers")
		return
	}

	respondJSON(w, http.StatusOK, followers)
}

func (h *UserHandler) GetFollowings(w http.ResponseWriter, r *http.Request) {
	userID, err := urlParamUint(r, "id")
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid user id")
		return
	}

	followings, err := h.followService.Following(r.Context(), userID)
	if err != nil {
		log.Printf("ERROR [users.GetFollowings] failed to fetch followings: %v", err)
		respondError(w, http.StatusInternalServerError, "Could not fetch followings")
		return
	}

	respondJSON(w, http.StatusOK, followings)
}
