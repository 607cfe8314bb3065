package service

import (
	"context"
	"errors"
	"time"

	"github.com/jaewoo-dev/instalite/internal/domain"
	"github.com/jaewoo-dev/instalite/internal/repository"
	"gorm.io/gorm"
)

type FollowService struct {
	followRepo repository.FollowRepository
}

func NewFollowService(followRepo repository.FollowRepository) *FollowService {
	return &FollowService{followRepo: followRepo}
}

// Follow creates the edge followerID -> followedID. The follower id always
// comes from the verified token. Self-follows are rejected before touching
// storage.
func (s *FollowService) Follow(ctx context.Context, followerID, followedID uint) (*domain.Follow, error) {
	if followerID == followedID {
		return nil, domain.ErrSelfFollow
	}

	follow := &domain.Follow{
		FollowerID: followerID,
		FollowedID: followedID,
		CreatedAt:  time.Now(),
	}

	if err := s.followRepo.Create(ctx, follow); err != nil {
		switch {
		case errors.Is(err, gorm.ErrDuplicatedKey):
			return nil, domain.ErrAlreadyFollowing
		case errors.Is(err, gorm.ErrForeignKeyViolated):
			return nil, domain.ErrUserNotFound
		default:
			return nil, err
		}
	}

	return follow, nil
}

func (s *FollowService) Unfollow(ctx context.Context, followerID, followedID uint) error {
	if followerID == followedID {
		return domain.ErrSelfFollow
	}

	rows, err := s.followRepo.Delete(ctx, followerID, followedID)
	if err != nil {
		return err
	}
	if rows == 0 {
		return domain.ErrFollowNotFound
	}

	return nil
}

func (s *FollowService) Followers(ctx context.Context, userID uint) ([]*domain.User, error) {
	return s.followRepo.ListFollowers(ctx, userID)
}

func (s *FollowService) Following(ctx context.Context, userID uint) ([]*domain.User, error) {
	return s.followRepo.ListFollowing(ctx, userID)
}
