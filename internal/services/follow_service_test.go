package services

import (
	"testing"

	"github.com/EatRateLove/eatratelove_backend/internal/events"
	"github.com/EatRateLove/eatratelove_backend/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFollowService_FollowIsIdempotent(t *testing.T) {
	env := newTestEnv(t)
	svc := NewFollowService(env.follows, env.users, env.publisher)
	a := testutil.CreateUser(t, env.db, "a")
	b := testutil.CreateUser(t, env.db, "b")

	require.NoError(t, svc.Follow(a.ID, b.ID))
	require.NoError(t, svc.Follow(a.ID, b.ID))

	followers, err := svc.CountFollowers(b.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), followers)

	following, err := svc.CountFollowing(a.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), following)

	require.NoError(t, svc.Unfollow(a.ID, b.ID))
	require.NoError(t, svc.Unfollow(a.ID, b.ID))

	followers, err = svc.CountFollowers(b.ID)
	require.NoError(t, err)
	assert.Zero(t, followers)
}

func TestFollowService_SelfFollowIsNoop(t *testing.T) {
	env := newTestEnv(t)
	svc := NewFollowService(env.follows, env.users, env.publisher)
	a := testutil.CreateUser(t, env.db, "a")

	require.NoError(t, svc.Follow(a.ID, a.ID))
	require.NoError(t, svc.FollowByUsername(a.ID, "a"))

	followers, err := svc.CountFollowers(a.ID)
	require.NoError(t, err)
	assert.Zero(t, followers)
	assert.Empty(t, env.publisher.types())
}

func TestFollowService_CountsTrackDistinctFollowers(t *testing.T) {
	env := newTestEnv(t)
	svc := NewFollowService(env.follows, env.users, env.publisher)
	target := testutil.CreateUser(t, env.db, "target")
	x := testutil.CreateUser(t, env.db, "x")
	y := testutil.CreateUser(t, env.db, "y")
	z := testutil.CreateUser(t, env.db, "z")

	require.NoError(t, svc.Follow(x.ID, target.ID))
	require.NoError(t, svc.Follow(y.ID, target.ID))
	require.NoError(t, svc.Follow(y.ID, target.ID))
	require.NoError(t, svc.Follow(z.ID, target.ID))
	require.NoError(t, svc.Unfollow(x.ID, target.ID))

	followers, err := svc.CountFollowers(target.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(2), followers)
}

func TestFollowService_ByUsername(t *testing.T) {
	env := newTestEnv(t)
	svc := NewFollowService(env.follows, env.users, env.publisher)
	a := testutil.CreateUser(t, env.db, "a")
	b := testutil.CreateUser(t, env.db, "b")

	require.NoError(t, svc.FollowByUsername(a.ID, "b"))
	assert.ErrorIs(t, svc.FollowByUsername(a.ID, "ghost"), ErrNotFound)
	assert.ErrorIs(t, svc.UnfollowByUsername(a.ID, "ghost"), ErrNotFound)

	followers, err := svc.ListFollowers("b", 10, 0)
	require.NoError(t, err)
	require.Len(t, followers, 1)
	assert.Equal(t, a.ID, followers[0].UserID)
	assert.Equal(t, "a", followers[0].Username)

	following, err := svc.ListFollowing("a", 10, 0)
	require.NoError(t, err)
	require.Len(t, following, 1)
	assert.Equal(t, b.ID, following[0].UserID)

	_, err = svc.ListFollowers("ghost", 10, 0)
	assert.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, svc.UnfollowByUsername(a.ID, "b"))
	assert.Equal(t, []events.Type{events.TypeFollowed, events.TypeUnfollowed}, env.publisher.types())
}

func TestFollowService_PublishFailureIsIgnored(t *testing.T) {
	env := newTestEnv(t)
	env.publisher.err = errBrokerDown
	svc := NewFollowService(env.follows, env.users, env.publisher)
	a := testutil.CreateUser(t, env.db, "a")
	b := testutil.CreateUser(t, env.db, "b")

	require.NoError(t, svc.Follow(a.ID, b.ID))

	exists, err := env.follows.Exists(a.ID, b.ID)
	require.NoError(t, err)
	assert.True(t, exists)
}
