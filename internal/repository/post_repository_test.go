package repository

import (
	"testing"

	"github.com/EatRateLove/eatratelove_backend/internal/models"
	"github.com/EatRateLove/eatratelove_backend/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPostRepository_CreateAndFind(t *testing.T) {
	db := testutil.NewDB(t)
	repo := NewPostRepository(db)
	author := testutil.CreateUser(t, db, "author")

	post := &models.Post{UserID: author.ID, ImageURL: "/media/1.png", Caption: "hi"}
	require.NoError(t, repo.Create(post))
	require.NotZero(t, post.ID)
	assert.False(t, post.CreatedAt.IsZero())

	got, err := repo.FindByID(post.ID)
	require.NoError(t, err)
	assert.Equal(t, "hi", got.Caption)
	assert.Equal(t, "/media/1.png", got.ImageURL)

	ok, err := repo.Exists(post.ID)
	require.NoError(t, err)
	assert.True(t, ok)

	_, err = repo.FindByID(post.ID + 100)
	assert.ErrorIs(t, err, ErrRecordNotFound)
}

func TestPostRepository_IDsIncrease(t *testing.T) {
	db := testutil.NewDB(t)
	author := testutil.CreateUser(t, db, "author")

	first := testutil.CreatePost(t, db, author.ID, "a")
	second := testutil.CreatePost(t, db, author.ID, "b")
	assert.Greater(t, second.ID, first.ID)
}

func TestPostRepository_LikesAreIdempotent(t *testing.T) {
	db := testutil.NewDB(t)
	repo := NewPostRepository(db)
	author := testutil.CreateUser(t, db, "author")
	fan := testutil.CreateUser(t, db, "fan")
	post := testutil.CreatePost(t, db, author.ID, "img")

	require.NoError(t, repo.AddLike(fan.ID, post.ID))
	require.NoError(t, repo.AddLike(fan.ID, post.ID))

	count, err := repo.CountLikes(post.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)

	liked, err := repo.HasLiked(fan.ID, post.ID)
	require.NoError(t, err)
	assert.True(t, liked)

	require.NoError(t, repo.RemoveLike(fan.ID, post.ID))
	require.NoError(t, repo.RemoveLike(fan.ID, post.ID))

	count, err = repo.CountLikes(post.ID)
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestPostRepository_LikeUnknownPostRejectedByStore(t *testing.T) {
	db := testutil.NewDB(t)
	repo := NewPostRepository(db)
	fan := testutil.CreateUser(t, db, "fan")

	assert.Error(t, repo.AddLike(fan.ID, 777))
}

func TestPostRepository_DeleteCascades(t *testing.T) {
	db := testutil.NewDB(t)
	repo := NewPostRepository(db)
	comments := NewCommentRepository(db)
	author := testutil.CreateUser(t, db, "author")
	fan := testutil.CreateUser(t, db, "fan")
	post := testutil.CreatePost(t, db, author.ID, "img")
	other := testutil.CreatePost(t, db, author.ID, "img2")

	require.NoError(t, repo.AddLike(fan.ID, post.ID))
	require.NoError(t, repo.AddLike(fan.ID, other.ID))
	require.NoError(t, comments.Create(&models.Comment{PostID: post.ID, UserID: fan.ID, Text: "x"}))

	require.NoError(t, repo.Delete(post.ID))

	likes, err := repo.CountLikes(post.ID)
	require.NoError(t, err)
	assert.Zero(t, likes)
	n, err := comments.CountByPost(post.ID)
	require.NoError(t, err)
	assert.Zero(t, n)

	likes, err = repo.CountLikes(other.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), likes)

	assert.ErrorIs(t, repo.Delete(post.ID), ErrRecordNotFound)
}
