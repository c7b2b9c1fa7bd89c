package controllers

import (
	"net/http"

	"github.com/EatRateLove/eatratelove_backend/internal/services"

	"github.com/gin-gonic/gin"
)

// UserController ユーザーとフォローに関するコントローラー
type UserController struct {
	userService   services.UserService
	followService services.FollowService
}

// NewUserController UserControllerを作成
func NewUserController(userService services.UserService, followService services.FollowService) *UserController {
	return &UserController{
		userService:   userService,
		followService: followService,
	}
}

// FollowRequest フォロー・フォロー解除リクエスト
type FollowRequest struct {
	Username string `json:"username" binding:"required"`
}

// UpdateProfileRequest プロフィール更新リクエスト
type UpdateProfileRequest struct {
	Bio       *string `json:"bio"`
	AvatarURL *string `json:"avatar_url"`
}

// GetProfile プロフィールを取得
func (c *UserController) GetProfile(ctx *gin.Context) {
	profile, err := c.userService.GetProfile(ctx.Param("username"))
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, profile)
}

// Follow ユーザーをフォロー
func (c *UserController) Follow(ctx *gin.Context) {
	user, ok := currentUser(ctx)
	if !ok {
		return
	}

	var req FollowRequest
	if !bindJSON(ctx, &req) {
		return
	}

	if err := c.followService.FollowByUsername(user.ID, req.Username); err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"ok": true})
}

// Unfollow フォローを解除
func (c *UserController) Unfollow(ctx *gin.Context) {
	user, ok := currentUser(ctx)
	if !ok {
		return
	}

	var req FollowRequest
	if !bindJSON(ctx, &req) {
		return
	}

	if err := c.followService.UnfollowByUsername(user.ID, req.Username); err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"ok": true})
}

// Followers フォロワー一覧を取得
func (c *UserController) Followers(ctx *gin.Context) {
	limit, offset, ok := parsePage(ctx, services.DefaultPageLimit)
	if !ok {
		return
	}
	if offset < 0 {
		respondError(ctx, &services.ValidationError{Field: "offset", Message: "offsetは0以上で指定してください"})
		return
	}
	limit = services.ClampLimit(limit)

	items, err := c.followService.ListFollowers(ctx.Param("username"), limit, offset)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"items": items, "limit": limit, "offset": offset})
}

// Following フォロー中一覧を取得
func (c *UserController) Following(ctx *gin.Context) {
	limit, offset, ok := parsePage(ctx, services.DefaultPageLimit)
	if !ok {
		return
	}
	if offset < 0 {
		respondError(ctx, &services.ValidationError{Field: "offset", Message: "offsetは0以上で指定してください"})
		return
	}
	limit = services.ClampLimit(limit)

	items, err := c.followService.ListFollowing(ctx.Param("username"), limit, offset)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"items": items, "limit": limit, "offset": offset})
}

// UpdateProfile 自分のプロフィールを更新
func (c *UserController) UpdateProfile(ctx *gin.Context) {
	user, ok := currentUser(ctx)
	if !ok {
		return
	}

	var req UpdateProfileRequest
	if !bindJSON(ctx, &req) {
		return
	}

	updated, err := c.userService.UpdateProfile(user.ID, req.Bio, req.AvatarURL)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"id":         updated.ID,
		"username":   updated.Username,
		"bio":        updated.Bio,
		"avatar_url": updated.AvatarURL,
	})
}

// DeleteMe 自分のアカウントを削除
func (c *UserController) DeleteMe(ctx *gin.Context) {
	user, ok := currentUser(ctx)
	if !ok {
		return
	}

	if err := c.userService.DeleteAccount(user.ID); err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"ok": true})
}
