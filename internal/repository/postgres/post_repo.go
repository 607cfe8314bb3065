package postgres

import (
	"context"

	"github.com/jaewoo-dev/instalite/internal/domain"
	"gorm.io/gorm"
)

type postRepository struct {
	db *gorm.DB
}

func NewPostRepository(db *gorm.DB) *postRepository {
	return &postRepository{db: db}
}

func (r *postRepository) Create(ctx context.Context, post *domain.Post) error {
	return r.db.WithContext(ctx).Create(post).Error
}

func (r *postRepository) GetByID(ctx context.Context, id uint) (*domain.Post, error) {
	var post domain.Post
	err := r.db.WithContext(ctx).First(&post, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &post, nil
}

func (r *postRepository) GetDetail(ctx context.Context, id uint) (*domain.Post, error) {
	var post domain.Post
	err := r.db.WithContext(ctx).
		Preload("Author").
		Preload("Likes").
		Preload("Comments").
		Preload("Comments.Author").
		First(&post, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &post, nil
}

func (r *postRepository) List(ctx context.Context) ([]*domain.Post, error) {
	var posts []*domain.Post
	err := r.db.WithContext(ctx).
		Preload("Author").
		Preload("Likes").
		Order("created_at DESC").
		Find(&posts).Error
	if err != nil {
		return nil, err
	}
	return posts, nil
}

func (r *postRepository) ListLikedByUser(ctx context.Context, userID uint) ([]*domain.Post, error) {
	var posts []*domain.Post
	err := r.db.WithContext(ctx).
		Joins("JOIN likes ON likes.post_id = posts.id").
		Where("likes.user_id = ?", userID).
		Order("likes.created_at DESC").
		Find(&posts).Error
	if err != nil {
		return nil, err
	}
	return posts, nil
}

// UpdateCaption mutates the caption only when the row still belongs to
// authorID, in a single conditional statement. Returns rows affected.
func (r *postRepository) UpdateCaption(ctx context.Context, id, authorID uint, caption string) (int64, error) {
	res := r.db.WithContext(ctx).
		Model(&domain.Post{}).
		Where("id = ? AND author_id = ?", id, authorID).
		Update("caption", caption)
	return res.RowsAffected, res.Error
}

func (r *postRepository) DeleteOwned(ctx context.Context, id, authorID uint) (int64, error) {
	res := r.db.WithContext(ctx).
		Where("id = ? AND author_id = ?", id, authorID).
		Delete(&domain.Post{})
	return res.RowsAffected, res.Error
}
