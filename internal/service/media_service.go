package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jaewoo-dev/instalite/internal/domain"
	"github.com/jaewoo-dev/instalite/internal/repository"
)

var (
	ErrMediaTooLarge   = errors.New("file exceeds upload size limit")
	ErrUnsupportedType = errors.New("only image uploads are supported")
)

const maxUploadSize = 10 << 20 // 10 MiB

// ObjectStore is the object-storage surface the media service needs.
type ObjectStore interface {
	Put(ctx context.Context, key string, contentType string, data []byte) error
	ObjectURL(key string) string
}

type MediaService struct {
	mediaRepo repository.MediaRepository
	store     ObjectStore
}

func NewMediaService(mediaRepo repository.MediaRepository, store ObjectStore) *MediaService {
	return &MediaService{
		mediaRepo: mediaRepo,
		store:     store,
	}
}

func (s *MediaService) Upload(ctx context.Context, uploaderID uint, file multipart.File, header *multipart.FileHeader) (*domain.Media, error) {
	data, err := io.ReadAll(io.LimitReader(file, maxUploadSize+1))
	if err != nil {
		return nil, err
	}
	if len(data) > maxUploadSize {
		return nil, ErrMediaTooLarge
	}

	contentType := header.Header.Get("Content-Type")
	if !strings.HasPrefix(contentType, "image/") {
		return nil, ErrUnsupportedType
	}

	key := fmt.Sprintf("%s%s", uuid.New().String(), filepath.Ext(header.Filename))
	if err := s.store.Put(ctx, key, contentType, data); err != nil {
		return nil, err
	}

	media := &domain.Media{
		ObjectKey:   key,
		ContentType: contentType,
		Size:        int64(len(data)),
		URL:         s.store.ObjectURL(key),
		UploaderID:  uploaderID,
		CreatedAt:   time.Now(),
	}

	if err := s.mediaRepo.Create(ctx, media); err != nil {
		return nil, err
	}

	return media, nil
}

func (s *MediaService) Get(ctx context.Context, id uint) (*domain.Media, error) {
	return s.mediaRepo.GetByID(ctx, id)
}
