package service

import (
	"context"
	"errors"
	"time"

	"github.com/jaewoo-dev/instalite/internal/domain"
	"github.com/jaewoo-dev/instalite/internal/repository"
	"gorm.io/gorm"
)

type CommentService struct {
	commentRepo repository.CommentRepository
	postRepo    repository.PostRepository
}

func NewCommentService(commentRepo repository.CommentRepository, postRepo repository.PostRepository) *CommentService {
	return &CommentService{
		commentRepo: commentRepo,
		postRepo:    postRepo,
	}
}

func (s *CommentService) CreateOnPost(ctx context.Context, postID, authorID uint, text string) (*domain.Comment, error) {
	if _, err := s.postRepo.GetByID(ctx, postID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrPostNotFound
		}
		return nil, err
	}

	comment := &domain.Comment{
		Text:      text,
		AuthorID:  authorID,
		PostID:    postID,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}

	if err := s.commentRepo.Create(ctx, comment); err != nil {
		return nil, err
	}

	return comment, nil
}

func (s *CommentService) ListForPost(ctx context.Context, postID uint) ([]*domain.Comment, error) {
	if _, err := s.postRepo.GetByID(ctx, postID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrPostNotFound
		}
		return nil, err
	}

	return s.commentRepo.ListByPostID(ctx, postID)
}

// UpdateText follows the same ownership policy as posts: 404 before 403,
// then a single conditional UPDATE.
func (s *CommentService) UpdateText(ctx context.Context, id, actorID uint, text string) (*domain.Comment, error) {
	comment, err := s.commentRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrCommentNotFound
		}
		return nil, err
	}

	if comment.AuthorID != actorID {
		return nil, domain.ErrForbidden
	}

	rows, err := s.commentRepo.UpdateText(ctx, id, actorID, text)
	if err != nil {
		return nil, err
	}
	if rows == 0 {
		return nil, domain.ErrCommentNotFound
	}

	return s.commentRepo.GetByID(ctx, id)
}

func (s *CommentService) Delete(ctx context.Context, id, actorID uint) error {
	comment, err := s.commentRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrCommentNotFound
		}
		return err
	}

	if comment.AuthorID != actorID {
		return domain.ErrForbidden
	}

	rows, err := s.commentRepo.DeleteOwned(ctx, id, actorID)
	if err != nil {
		return err
	}
	if rows == 0 {
		return domain.ErrCommentNotFound
	}

	return nil
}
