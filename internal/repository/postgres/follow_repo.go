package postgres

import (
	"context"

	"github.com/jaewoo-dev/instalite/internal/domain"
	"gorm.io/gorm"
)

type followRepository struct {
	db *gorm.DB
}

func NewFollowRepository(db *gorm.DB) *followRepository {
	return &followRepository{db: db}
}

func (r *followRepository) Create(ctx context.Context, follow *domain.Follow) error {
	return r.db.WithContext(ctx).Create(follow).Error
}

func (r *followRepository) Delete(ctx context.Context, followerID, followedID uint) (int64, error) {
	res := r.db.WithContext(ctx).
		Where("follower_id = ? AND followed_id = ?", followerID, followedID).
		Delete(&domain.Follow{})
	return res.RowsAffected, res.Error
}

func (r *followRepository) ListFollowers(ctx context.Context, userID uint) ([]*domain.User, error) {
	var users []*domain.User
	err := r.db.WithContext(ctx).
		Model(&domain.User{}).
		Joins("JOIN follows ON follows.follower_id = users.id").
		Where("follows.followed_id = ?", userID).
		Order("follows.created_at DESC").
		Find(&users).Error
	if err != nil {
		return nil, err
	}
	return users, nil
}

func (r *followRepository) ListFollowing(ctx context.Context, userID uint) ([]*domain.User, error) {
	var users []*domain.User
	err := r.db.WithContext(ctx).
		Model(&domain.User{}).
		Joins("JOIN follows ON follows.followed_id = users.id").
		Where("follows.follower_id = ?", userID).
		Order("follows.created_at DESC").
		Find(&users).Error
	if err != nil {
		return nil, err
	}
	return users, nil
}

func (r *followRepository) ListFollowerIDs(ctx context.Context, userID uint) ([]uint, error) {
	var ids []uint
	err := r.db.WithContext(ctx).
		Model(&domain.Follow{}).
		Where("followed_id = ?", userID).
		Pluck("follower_id", &ids).Error
	if err != nil {
		return nil, err
	}
	return ids, nil
}
