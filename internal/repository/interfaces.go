package repository

import (
	"context"

	"github.com/jaewoo-dev/instalite/internal/domain"
)

type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id uint) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	GetProfile(ctx context.Context, id uint) (*domain.User, error)
	List(ctx context.Context) ([]*domain.User, error)
}

type PostRepository interface {
	Create(ctx context.Context, post *domain.Post) error
	GetByID(ctx context.Context, id uint) (*domain.Post, error)
	GetDetail(ctx context.Context, id uint) (*domain.Post, error)
	List(ctx context.Context) ([]*domain.Post, error)
	ListLikedByUser(ctx context.Context, userID uint) ([]*domain.Post, error)
	UpdateCaption(ctx context.Context, id, authorID uint, caption string) (int64, error)
	DeleteOwned(ctx context.Context, id, authorID uint) (int64, error)
}

type CommentRepository interface {
	Create(ctx context.Context, comment *domain.Comment) error
	GetByID(ctx context.Context, id uint) (*domain.Comment, error)
	ListByPostID(ctx context.Context, postID uint) ([]*domain.Comment, error)
	UpdateText(ctx context.Context, id, authorID uint, text string) (int64, error)
	DeleteOwned(ctx context.Context, id, authorID uint) (int64, error)
}

type LikeRepository interface {
	Create(ctx context.Context, like *domain.Like) error
	Delete(ctx context.Context, postID, userID uint) (int64, error)
}

type FollowRepository interface {
	Create(ctx context.Context, follow *domain.Follow) error
	Delete(ctx context.Context, followerID, followedID uint) (int64, error)
	ListFollowers(ctx context.Context, userID uint) ([]*domain.User, error)
	ListFollowing(ctx context.Context, userID uint) ([]*domain.User, error)
	ListFollowerIDs(ctx context.Context, userID uint) ([]uint, error)
}

type MediaRepository interface {
	Create(ctx context.Context, media *domain.Media) error
	GetByID(ctx context.Context, id uint) (*domain.Media, error)
}

type Repositories struct {
	User    UserRepository
	Post    PostRepository
	Comment CommentRepository
	Like    LikeRepository
	Follow  FollowRepository
	Media   MediaRepository
}
