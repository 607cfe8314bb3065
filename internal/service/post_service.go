package service

import (
	"context"
	"errors"
	"time"

	"github.com/jaewoo-dev/instalite/internal/domain"
	"github.com/jaewoo-dev/instalite/internal/repository"
	"gorm.io/gorm"
)

type PostService struct {
	postRepo repository.PostRepository
	likeRepo repository.LikeRepository
}

func NewPostService(postRepo repository.PostRepository, likeRepo repository.LikeRepository) *PostService {
	return &PostService{
		postRepo: postRepo,
		likeRepo: likeRepo,
	}
}

type CreatePostInput struct {
	ImageURL string
	Caption  string
}

// Create fixes the author to the acting identity; authorship never changes
// after this point.
func (s *PostService) Create(ctx context.Context, authorID uint, input CreatePostInput) (*domain.Post, error) {
	post := &domain.Post{
		ImageURL:  input.ImageURL,
		Caption:   input.Caption,
		AuthorID:  authorID,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}

	if err := s.postRepo.Create(ctx, post); err != nil {
		return nil, err
	}

	return post, nil
}

func (s *PostService) Get(ctx context.Context, id uint) (*domain.Post, error) {
	post, err := s.postRepo.GetDetail(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrPostNotFound
		}
		return nil, err
	}
	return post, nil
}

func (s *PostService) List(ctx context.Context) ([]*domain.Post, error) {
	return s.postRepo.List(ctx)
}

// UpdateCaption enforces the ownership policy: absent post first (404), then
// ownership mismatch (403). The mutation itself is a single conditional
// UPDATE keyed on (id, author_id) so a concurrent delete cannot slip between
// the check and the write.
func (s *PostService) UpdateCaption(ctx context.Context, id, actorID uint, caption string) (*domain.Post, error) {
	post, err := s.postRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrPostNotFound
		}
		return nil, err
	}

	if post.AuthorID != actorID {
		return nil, domain.ErrForbidden
	}

	rows, err := s.postRepo.UpdateCaption(ctx, id, actorID, caption)
	if err != nil {
		return nil, err
	}
	if rows == 0 {
		// Row vanished between the read and the conditional write.
		return nil, domain.ErrPostNotFound
	}

	return s.postRepo.GetByID(ctx, id)
}

func (s *PostService) Delete(ctx context.Context, id, actorID uint) error {
	post, err := s.postRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrPostNotFound
		}
		return err
	}

	if post.AuthorID != actorID {
		return domain.ErrForbidden
	}

	rows, err := s.postRepo.DeleteOwned(ctx, id, actorID)
	if err != nil {
		return err
	}
	if rows == 0 {
		return domain.ErrPostNotFound
	}

	return nil
}

// Like records that userID likes postID. The user id comes from the verified
// token, never from the request body.
func (s *PostService) Like(ctx context.Context, postID, userID uint) (*domain.Like, error) {
	like := &domain.Like{
		PostID:    postID,
		UserID:    userID,
		CreatedAt: time.Now(),
	}

	if err := s.likeRepo.Create(ctx, like); err != nil {
		switch {
		case errors.Is(err, gorm.ErrDuplicatedKey):
			return nil, domain.ErrAlreadyLiked
		case errors.Is(err, gorm.ErrForeignKeyViolated):
			return nil, domain.ErrPostNotFound
		default:
			return nil, err
		}
	}

	return like, nil
}

func (s *PostService) Unlike(ctx context.Context, postID, userID uint) error {
	rows, err := s.likeRepo.Delete(ctx, postID, userID)
	if err != nil {
		return err
	}
	if rows == 0 {
		return domain.ErrLikeNotFound
	}
	return nil
}
