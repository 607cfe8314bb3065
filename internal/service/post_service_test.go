package service_test

import (
	"context"
	"testing"

	"github.com/jaewoo-dev/instalite/internal/domain"
	"github.com/jaewoo-dev/instalite/internal/repository/postgres"
	"github.com/jaewoo-dev/instalite/internal/service"
	"github.com/jaewoo-dev/instalite/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPostService_UpdateCaption(t *testing.T) {
	testDB := testutil.NewTestDB(t)
	repos := postgres.NewRepositories(testDB.DB)
	postService := service.NewPostService(repos.Post, repos.Like)
	ctx := context.Background()

	owner, _ := testutil.NewUserBuilder().Build(t, testDB.DB)
	other, _ := testutil.NewUserBuilder().Build(t, testDB.DB)
	post := testutil.NewPostBuilder().WithAuthor(owner).WithCaption("before").Build(t, testDB.DB)

	tests := []struct {
		name    string
		postID  uint
		actorID uint
		wantErr error
	}{
		{
			name:    "non-existent post fails before ownership",
			postID:  post.ID + 1000,
			actorID: other.ID,
			wantErr: domain.ErrPostNotFound,
		},
		{
			name:    "non-owner is forbidden",
			postID:  post.ID,
			actorID: other.ID,
			wantErr: domain.ErrForbidden,
		},
		{
			name:    "owner succeeds",
			postID:  post.ID,
			actorID: owner.ID,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			updated, err := postService.UpdateCaption(ctx, tt.postID, tt.actorID, "after")
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, "after", updated.Caption)

			// The change must be persisted
			stored, err := postService.Get(ctx, tt.postID)
			require.NoError(t, err)
			assert.Equal(t, "after", stored.Caption)
		})
	}
}

func TestPostService_Delete(t *testing.T) {
	testDB := testutil.NewTestDB(t)
	repos := postgres.NewRepositories(testDB.DB)
	postService := service.NewPostService(repos.Post, repos.Like)
	ctx := context.Background()

	owner, _ := testutil.NewUserBuilder().Build(t, testDB.DB)
	other, _ := testutil.NewUserBuilder().Build(t, testDB.DB)
	post := testutil.NewPostBuilder().WithAuthor(owner).Build(t, testDB.DB)

	err := postService.Delete(ctx, post.ID, other.ID)
	assert.ErrorIs(t, err, domain.ErrForbidden)

	err = postService.Delete(ctx, post.ID, owner.ID)
	require.NoError(t, err)

	_, err = postService.Get(ctx, post.ID)
	assert.ErrorIs(t, err, domain.ErrPostNotFound)

	err = postService.Delete(ctx, post.ID, owner.ID)
	assert.ErrorIs(t, err, domain.ErrPostNotFound)
}

func TestPostService_Like(t *testing.T) {
	testDB := testutil.NewTestDB(t)
	repos := postgres.NewRepositories(testDB.DB)
	postService := service.NewPostService(repos.Post, repos.Like)
	ctx := context.Background()

	user, _ := testutil.NewUserBuilder().Build(t, testDB.DB)
	post := testutil.NewPostBuilder().Build(t, testDB.DB)

	like, err := postService.Like(ctx, post.ID, user.ID)
	require.NoError(t, err)
	assert.Equal(t, post.ID, like.PostID)
	assert.Equal(t, user.ID, like.UserID)

	// At most one like per (post, user)
	_, err = postService.Like(ctx, post.ID, user.ID)
	assert.ErrorIs(t, err, domain.ErrAlreadyLiked)

	_, err = postService.Like(ctx, post.ID+1000, user.ID)
	assert.ErrorIs(t, err, domain.ErrPostNotFound)
}

func TestPostService_Unlike(t *testing.T) {
	testDB := testutil.NewTestDB(t)
	repos := postgres.NewRepositories(testDB.DB)
	postService := service.NewPostService(repos.Post, repos.Like)
	ctx := context.Background()

	user, _ := testutil.NewUserBuilder().Build(t, testDB.DB)
	post := testutil.NewPostBuilder().Build(t, testDB.DB)

	err := postService.Unlike(ctx, post.ID, user.ID)
	assert.ErrorIs(t, err, domain.ErrLikeNotFound)

	_, err = postService.Like(ctx, post.ID, user.ID)
	require.NoError(t, err)

	err = postService.Unlike(ctx, post.ID, user.ID)
	require.NoError(t, err)

	err = postService.Unlike(ctx, post.ID, user.ID)
	assert.ErrorIs(t, err, domain.ErrLikeNotFound)
}
