package service

import (
	"github.com/jaewoo-dev/instalite/internal/config"
	"github.com/jaewoo-dev/instalite/internal/repository"
)

type Services struct {
	Auth    *AuthService
	User    *UserService
	Post    *PostService
	Comment *CommentService
	Follow  *FollowService

	// Media is nil when no object store is configured; the router skips the
	// media routes in that case.
	Media *MediaService
}

func NewServices(repos *repository.Repositories, cfg *config.Config, store ObjectStore) *Services {
	s := &Services{
		Auth:    NewAuthService(repos.User, cfg),
		User:    NewUserService(repos.User, repos.Post, repos.Follow),
		Post:    NewPostService(repos.Post, repos.Like),
		Comment: NewCommentService(repos.Comment, repos.Post),
		Follow:  NewFollowService(repos.Follow),
	}

	if store != nil {
		s.Media = NewMediaService(repos.Media, store)
	}

	return s
}
