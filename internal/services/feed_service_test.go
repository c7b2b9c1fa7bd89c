package services

import (
	"testing"

	"github.com/EatRateLove/eatratelove_backend/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClampLimit(t *testing.T) {
	tests := []struct {
		in   int
		want int
	}{
		{in: 0, want: 1},
		{in: -5, want: 1},
		{in: 1, want: 1},
		{in: 50, want: 50},
		{in: 100, want: 100},
		{in: 1000, want: MaxPageLimit},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ClampLimit(tt.in), "limit=%d", tt.in)
	}
}

func TestFeedService_Scenario(t *testing.T) {
	env := newTestEnv(t)
	follows := NewFollowService(env.follows, env.users, env.publisher)
	posts := NewPostService(env.posts, env.comments, env.publisher)
	feed := NewFeedService(env.feeds)

	a := testutil.CreateUser(t, env.db, "A")
	b := testutil.CreateUser(t, env.db, "B")
	c := testutil.CreateUser(t, env.db, "C")

	require.NoError(t, follows.Follow(a.ID, b.ID))
	p1, err := posts.Create(b.ID, "img1", "")
	require.NoError(t, err)

	items, limit, err := feed.List(a.ID, 10, 0)
	require.NoError(t, err)
	assert.Equal(t, 10, limit)
	require.Len(t, items, 1)
	assert.Equal(t, p1.ID, items[0].ID)
	assert.Equal(t, "B", items[0].Username)
	assert.Zero(t, items[0].Likes)
	assert.Zero(t, items[0].Comments)

	_, err = posts.Create(c.ID, "img2", "")
	require.NoError(t, err)

	items, _, err = feed.List(a.ID, 10, 0)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, p1.ID, items[0].ID)
}

func TestFeedService_Pagination(t *testing.T) {
	env := newTestEnv(t)
	feed := NewFeedService(env.feeds)
	follows := NewFollowService(env.follows, env.users, env.publisher)

	a := testutil.CreateUser(t, env.db, "a")
	b := testutil.CreateUser(t, env.db, "b")
	require.NoError(t, follows.Follow(a.ID, b.ID))

	var want []uint
	for i := 0; i < 7; i++ {
		p := testutil.CreatePost(t, env.db, b.ID, "img")
		want = append([]uint{p.ID}, want...)
	}

	var got []uint
	for offset := 0; ; offset += 3 {
		items, _, err := feed.List(a.ID, 3, offset)
		require.NoError(t, err)
		if len(items) == 0 {
			break
		}
		for _, it := range items {
			got = append(got, it.ID)
		}
	}
	assert.Equal(t, want, got)
}

func TestFeedService_EmptyAndInvalid(t *testing.T) {
	env := newTestEnv(t)
	feed := NewFeedService(env.feeds)
	a := testutil.CreateUser(t, env.db, "a")

	items, limit, err := feed.List(a.ID, DefaultPageLimit, 0)
	require.NoError(t, err)
	assert.Equal(t, DefaultPageLimit, limit)
	assert.NotNil(t, items)
	assert.Empty(t, items)

	_, limit, err = feed.List(a.ID, 500, 0)
	require.NoError(t, err)
	assert.Equal(t, MaxPageLimit, limit)

	_, _, err = feed.List(a.ID, 10, -1)
	assert.ErrorIs(t, err, ErrValidation)
}

func TestFeedService_ZeroLimitClampsToOne(t *testing.T) {
	env := newTestEnv(t)
	feed := NewFeedService(env.feeds)
	follows := NewFollowService(env.follows, env.users, env.publisher)

	a := testutil.CreateUser(t, env.db, "a")
	b := testutil.CreateUser(t, env.db, "b")
	require.NoError(t, follows.Follow(a.ID, b.ID))

	var newest uint
	for i := 0; i < 5; i++ {
		newest = testutil.CreatePost(t, env.db, b.ID, "img").ID
	}

	items, limit, err := feed.List(a.ID, 0, 0)
	require.NoError(t, err)
	assert.Equal(t, 1, limit)
	require.Len(t, items, 1)
	assert.Equal(t, newest, items[0].ID)
}
