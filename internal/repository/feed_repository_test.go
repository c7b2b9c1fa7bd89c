package repository

import (
	"testing"

	"github.com/EatRateLove/eatratelove_backend/internal/models"
	"github.com/EatRateLove/eatratelove_backend/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFeedRepository_OnlyFolloweesNewestFirst(t *testing.T) {
	db := testutil.NewDB(t)
	feed := NewFeedRepository(db)
	follows := NewFollowRepository(db)
	posts := NewPostRepository(db)
	comments := NewCommentRepository(db)

	a := testutil.CreateUser(t, db, "A")
	b := testutil.CreateUser(t, db, "B")
	c := testutil.CreateUser(t, db, "C")
	d := testutil.CreateUser(t, db, "D")

	require.NoError(t, follows.Create(a.ID, b.ID))
	require.NoError(t, follows.Create(a.ID, d.ID))

	p1 := testutil.CreatePost(t, db, b.ID, "img1")
	testutil.CreatePost(t, db, c.ID, "img2")
	p3 := testutil.CreatePost(t, db, d.ID, "img3")
	testutil.CreatePost(t, db, a.ID, "own")

	require.NoError(t, posts.AddLike(a.ID, p1.ID))
	require.NoError(t, posts.AddLike(c.ID, p1.ID))
	require.NoError(t, comments.Create(&models.Comment{PostID: p1.ID, UserID: c.ID, Text: "nice"}))

	items, err := feed.List(a.ID, 10, 0)
	require.NoError(t, err)
	require.Len(t, items, 2)

	assert.Equal(t, p3.ID, items[0].ID)
	assert.Equal(t, "D", items[0].Username)
	assert.Zero(t, items[0].Likes)

	assert.Equal(t, p1.ID, items[1].ID)
	assert.Equal(t, "B", items[1].Username)
	assert.Equal(t, b.ID, items[1].UserID)
	assert.Equal(t, "img1", items[1].ImageURL)
	assert.Equal(t, int64(2), items[1].Likes)
	assert.Equal(t, int64(1), items[1].Comments)
}

func TestFeedRepository_NoFollowsIsEmpty(t *testing.T) {
	db := testutil.NewDB(t)
	feed := NewFeedRepository(db)
	a := testutil.CreateUser(t, db, "A")
	b := testutil.CreateUser(t, db, "B")
	testutil.CreatePost(t, db, b.ID, "img")

	items, err := feed.List(a.ID, 10, 0)
	require.NoError(t, err)
	assert.NotNil(t, items)
	assert.Empty(t, items)
}

func TestFeedRepository_PagesReconstructFullOrdering(t *testing.T) {
	db := testutil.NewDB(t)
	feed := NewFeedRepository(db)
	follows := NewFollowRepository(db)

	reader := testutil.CreateUser(t, db, "reader")
	authors := []*models.User{
		testutil.CreateUser(t, db, "w1"),
		testutil.CreateUser(t, db, "w2"),
		testutil.CreateUser(t, db, "w3"),
	}
	for _, au := range authors {
		require.NoError(t, follows.Create(reader.ID, au.ID))
	}
	for i := 0; i < 11; i++ {
		testutil.CreatePost(t, db, authors[i%len(authors)].ID, "img")
	}

	full, err := feed.List(reader.ID, 100, 0)
	require.NoError(t, err)
	require.Len(t, full, 11)
	for i := 1; i < len(full); i++ {
		assert.Greater(t, full[i-1].ID, full[i].ID)
	}

	const limit = 4
	var paged []uint
	for offset := 0; ; offset += limit {
		page, err := feed.List(reader.ID, limit, offset)
		require.NoError(t, err)
		if len(page) == 0 {
			break
		}
		assert.LessOrEqual(t, len(page), limit)
		for _, item := range page {
			paged = append(paged, item.ID)
		}
	}

	want := make([]uint, 0, len(full))
	for _, item := range full {
		want = append(want, item.ID)
	}
	assert.Equal(t, want, paged)
}
