package controllers

import (
	"net/http"

	"github.com/EatRateLove/eatratelove_backend/internal/services"

	"github.com/gin-gonic/gin"
)

// PostController 投稿・いいね・コメント・フィードに関するコントローラー
type PostController struct {
	postService services.PostService
	feedService services.FeedService
}

// NewPostController PostControllerを作成
func NewPostController(postService services.PostService, feedService services.FeedService) *PostController {
	return &PostController{
		postService: postService,
		feedService: feedService,
	}
}

// CreatePostRequest 投稿作成リクエスト
type CreatePostRequest struct {
	ImageURL string `json:"image_url"`
	Caption  string `json:"caption"`
}

// PostIDRequest いいね・いいね取り消しリクエスト
type PostIDRequest struct {
	PostID uint `json:"post_id" binding:"required"`
}

// CommentRequest コメントリクエスト
type CommentRequest struct {
	PostID uint   `json:"post_id" binding:"required"`
	Text   string `json:"text"`
}

// Create 投稿を作成
func (c *PostController) Create(ctx *gin.Context) {
	user, ok := currentUser(ctx)
	if !ok {
		return
	}

	var req CreatePostRequest
	if !bindJSON(ctx, &req) {
		return
	}

	post, err := c.postService.Create(user.ID, req.ImageURL, req.Caption)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"post": post})
}

// Get 投稿を取得
func (c *PostController) Get(ctx *gin.Context) {
	id, ok := parseID(ctx, "id")
	if !ok {
		return
	}

	post, err := c.postService.Get(id)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"post": post})
}

// Delete 投稿を削除
func (c *PostController) Delete(ctx *gin.Context) {
	user, ok := currentUser(ctx)
	if !ok {
		return
	}
	id, ok := parseID(ctx, "id")
	if !ok {
		return
	}

	if err := c.postService.Delete(user.ID, id); err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"ok": true})
}

// Like いいねする
func (c *PostController) Like(ctx *gin.Context) {
	user, ok := currentUser(ctx)
	if !ok {
		return
	}

	var req PostIDRequest
	if !bindJSON(ctx, &req) {
		return
	}

	if err := c.postService.Like(user.ID, req.PostID); err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"ok": true})
}

// Unlike いいねを取り消す
func (c *PostController) Unlike(ctx *gin.Context) {
	user, ok := currentUser(ctx)
	if !ok {
		return
	}

	var req PostIDRequest
	if !bindJSON(ctx, &req) {
		return
	}

	if err := c.postService.Unlike(user.ID, req.PostID); err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"ok": true})
}

// Comment コメントを追加
func (c *PostController) Comment(ctx *gin.Context) {
	user, ok := currentUser(ctx)
	if !ok {
		return
	}

	var req CommentRequest
	if !bindJSON(ctx, &req) {
		return
	}

	id, err := c.postService.AddComment(user.ID, req.PostID, req.Text)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"id": id})
}

// Feed フォロー中ユーザーの投稿を取得
func (c *PostController) Feed(ctx *gin.Context) {
	user, ok := currentUser(ctx)
	if !ok {
		return
	}
	limit, offset, ok := parsePage(ctx, services.DefaultPageLimit)
	if !ok {
		return
	}

	items, limit, err := c.feedService.List(user.ID, limit, offset)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"items": items, "limit": limit, "offset": offset})
}
