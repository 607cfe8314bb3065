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

func TestFollowService_Follow(t *testing.T) {
	testDB := testutil.NewTestDB(t)
	repos := postgres.NewRepositories(testDB.DB)
	followService := service.NewFollowService(repos.Follow)
	ctx := context.Background()

	alice, _ := testutil.NewUserBuilder().Build(t, testDB.DB)
	bob, _ := testutil.NewUserBuilder().Build(t, testDB.DB)

	tests := []struct {
		name       string
		followerID uint
		followedID uint
		wantErr    error
	}{
		{
			name:       "self-follow is rejected",
			followerID: alice.ID,
			followedID: alice.ID,
			wantErr:    domain.ErrSelfFollow,
		},
		{
			name:       "follow succeeds",
			followerID: alice.ID,
			followedID: bob.ID,
		},
		{
			name:       "duplicate follow is rejected",
			followerID: alice.ID,
			followedID: bob.ID,
			wantErr:    domain.ErrAlreadyFollowing,
		},
		{
			name:       "following a missing user fails",
			followerID: alice.ID,
			followedID: bob.ID + 1000,
			wantErr:    domain.ErrUserNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			follow, err := followService.Follow(ctx, tt.followerID, tt.followedID)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.followerID, follow.FollowerID)
			assert.Equal(t, tt.followedID, follow.FollowedID)
		})
	}
}

func TestFollowService_Unfollow(t *testing.T) {
	testDB := testutil.NewTestDB(t)
	repos := postgres.NewRepositories(testDB.DB)
	followService := service.NewFollowService(repos.Follow)
	ctx := context.Background()

	alice, _ := testutil.NewUserBuilder().Build(t, testDB.DB)
	bob, _ := testutil.NewUserBuilder().Build(t, testDB.DB)

	err := followService.Unfollow(ctx, alice.ID, alice.ID)
	assert.ErrorIs(t, err, domain.ErrSelfFollow)

	err = followService.Unfollow(ctx, alice.ID, bob.ID)
	assert.ErrorIs(t, err, domain.ErrFollowNotFound)

	_, err = followService.Follow(ctx, alice.ID, bob.ID)
	require.NoError(t, err)

	err = followService.Unfollow(ctx, alice.ID, bob.ID)
	require.NoError(t, err)

	err = followService.Unfollow(ctx, alice.ID, bob.ID)
	assert.ErrorIs(t, err, domain.ErrFollowNotFound)
}

func TestFollowService_Listings(t *testing.T) {
	testDB := testutil.NewTestDB(t)
	repos := postgres.NewRepositories(testDB.DB)
	followService := service.NewFollowService(repos.Follow)
	ctx := context.Background()

	alice, _ := testutil.NewUserBuilder().Build(t, testDB.DB)
	bob, _ := testutil.NewUserBuilder().Build(t, testDB.DB)
	carol, _ := testutil.NewUserBuilder().Build(t, testDB.DB)

	_, err := followService.Follow(ctx, bob.ID, alice.ID)
	require.NoError(t, err)
	_, err = followService.Follow(ctx, carol.ID, alice.ID)
	require.NoError(t, err)
	_, err = followService.Follow(ctx, alice.ID, bob.ID)
	require.NoError(t, err)

	followers, err := followService.Followers(ctx, alice.ID)
	require.NoError(t, err)
	followerIDs := []uint{}
	for _, u := range followers {
		followerIDs = append(followerIDs, u.ID)
	}
	assert.ElementsMatch(t, []uint{bob.ID, carol.ID}, followerIDs)

	following, err := followService.Following(ctx, alice.ID)
	require.NoError(t, err)
	require.Len(t, following, 1)
	assert.Equal(t, bob.ID, following[0].ID)
}
