package service

import (
	"context"
	"errors"

	"github.com/jaewoo-dev/instalite/internal/domain"
	"github.com/jaewoo-dev/instalite/internal/repository"
	"gorm.io/gorm"
)

type UserService struct {
	userRepo   repository.UserRepository
	postRepo   repository.PostRepository
	followRepo repository.FollowRepository
}

func NewUserService(userRepo repository.UserRepository, postRepo repository.PostRepository, followRepo repository.FollowRepository) *UserService {
	return &UserService{
		userRepo:   userRepo,
		postRepo:   postRepo,
		followRepo: followRepo,
	}
}

func (s *UserService) List(ctx context.Context) ([]*domain.User, error) {
	return s.userRepo.List(ctx)
}

// GetProfile returns the user with their posts (newest first) and the ids of
// the users following them.
func (s *UserService) GetProfile(ctx context.Context, id uint) (*domain.User, []uint, error) {
	user, err := s.userRepo.GetProfile(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, domain.ErrUserNotFound
		}
		return nil, nil, err
	}

	followerIDs, err := s.followRepo.ListFollowerIDs(ctx, id)
	if err != nil {
		return nil, nil, err
	}

	return user, followerIDs, nil
}

func (s *UserService) ListLikedPosts(ctx context.Context, userID uint) ([]*domain.Post, error) {
	return s.postRepo.ListLikedByUser(ctx, userID)
}
