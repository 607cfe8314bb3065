package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/jaewoo-dev/instalite/internal/api/handlers"
	"github.com/jaewoo-dev/instalite/internal/api/middleware"
	"github.com/jaewoo-dev/instalite/internal/service"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func NewRouter(services *service.Services) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(chiMiddleware.Logger)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.RequestID)
	r.Use(middleware.CORS)
	r.Use(middleware.Metrics)

	// Health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("OK"))
	})

	r.Handle("/metrics", promhttp.Handler())

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(services.Auth)
	userHandler := handlers.NewUserHandler(services.Auth, services.User, services.Follow)
	postHandler := handlers.NewPostHandler(services.Post, services.Comment)
	commentHandler := handlers.NewCommentHandler(services.Comment)

	requireAuth := middleware.Auth(services.Auth)

	r.Route("/auth", func(r chi.Router) {
		r.Post("/login", authHandler.Login)
	})

	r.Route("/users", func(r chi.Router) {
		r.Post("/", userHandler.Create)
		r.Get("/", userHandler.List)
		r.Get("/{id}", userHandler.Get)
		r.Get("/{id}/likes", userHandler.GetLikedPosts)
		r.Get("/{id}/followers", userHandler.GetFollowers)

		r.Group(func(r chi.Router) {
			r.Use(requireAuth)
			r.Post("/{id}/follow", userHandler.Follow)
			r.Delete("/{id}/follow", userHandler.Unfollow)
			r.Get("/{id}/followings", userHandler.GetFollowings)
		})
	})

	r.Route("/posts", func(r chi.Router) {
		r.Get("/", postHandler.List)
		r.Get("/{id}", postHandler.Get)
		r.Get("/{id}/comments", postHandler.GetComments)

		r.Group(func(r chi.Router) {
			r.Use(requireAuth)
			r.Post("/", postHandler.Create)
			r.Patch("/{id}", postHandler.Update)
			r.Delete("/{id}", postHandler.Delete)
			r.Post("/{id}/like", postHandler.Like)
			r.Delete("/{id}/like", postHandler.Unlike)
			r.Post("/{id}/comments", postHandler.CreateComment)
		})
	})

	r.Route("/comments", func(r chi.Router) {
		r.Use(requireAuth)
		r.Patch("/{id}", commentHandler.Update)
		r.Delete("/{id}", commentHandler.Delete)
	})

	if services.Media != nil {
		mediaHandler := handlers.NewMediaHandler(services.Media)
		r.Route("/media", func(r chi.Router) {
			r.Use(requireAuth)
			r.Post("/", mediaHandler.Upload)
		})
	}

	return r
}
