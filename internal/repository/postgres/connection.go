package postgres

import (
	"github.com/jaewoo-dev/instalite/internal/domain"
	"github.com/jaewoo-dev/instalite/internal/repository"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func NewConnection(databaseURL string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(databaseURL), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Info),
		// Unique and foreign key violations must surface as
		// gorm.ErrDuplicatedKey / gorm.ErrForeignKeyViolated so the
		// services can map them to Conflict and NotFound.
		TranslateError: true,
	})
	if err != nil {
		return nil, err
	}

	if err := Migrate(db); err != nil {
		return nil, err
	}

	return db, nil
}

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&domain.User{},
		&domain.Post{},
		&domain.Comment{},
		&domain.Like{},
		&domain.Follow{},
		&domain.Media{},
	)
}

func NewRepositories(db *gorm.DB) *repository.Repositories {
	return &repository.Repositories{
		User:    NewUserRepository(db),
		Post:    NewPostRepository(db),
		Comment: NewCommentRepository(db),
		Like:    NewLikeRepository(db),
		Follow:  NewFollowRepository(db),
		Media:   NewMediaRepository(db),
	}
}
