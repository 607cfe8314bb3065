package postgres

import (
	"context"

	"github.com/jaewoo-dev/instalite/internal/domain"
	"gorm.io/gorm"
)

type commentRepository struct {
	db *gorm.DB
}

func NewCommentRepository(db *gorm.DB) *commentRepository {
	return &commentRepository{db: db}
}

func (r *commentRepository) Create(ctx context.Context, comment *domain.Comment) error {
	return r.db.WithContext(ctx).Create(comment).Error
}

func (r *commentRepository) GetByID(ctx context.Context, id uint) (*domain.Comment, error) {
	var comment domain.Comment
	err := r.db.WithContext(ctx).First(&comment, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &comment, nil
}

func (r *commentRepository) ListByPostID(ctx context.Context, postID uint) ([]*domain.Comment, error) {
	var comments []*domain.Comment
	err := r.db.WithContext(ctx).
		Preload("Author").
		Where("post_id = ?", postID).
		Order("created_at ASC").
		Find(&comments).Error
	if err != nil {
		return nil, err
	}
	return comments, nil
}

func (r *commentRepository) UpdateText(ctx context.Context, id, authorID uint, text string) (int64, error) {
	res := r.db.WithContext(ctx).
		Model(&domain.Comment{}).
		Where("id = ? AND author_id = ?", id, authorID).
		Update("text", text)
	return res.RowsAffected, res.Error
}

func (r *commentRepository) DeleteOwned(ctx context.Context, id, authorID uint) (int64, error) {
	res := r.db.WithContext(ctx).
		Where("id = ? AND author_id = ?", id, authorID).
		Delete(&domain.Comment{})
	return res.RowsAffected, res.Error
}
