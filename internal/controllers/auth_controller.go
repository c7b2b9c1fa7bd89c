package controllers

import (
	"net/http"

	"github.com/EatRateLove/eatratelove_backend/internal/models"
	"github.com/EatRateLove/eatratelove_backend/internal/services"

	"github.com/gin-gonic/gin"
)

// AuthController 認証に関するコントローラー
type AuthController struct {
	authService services.AuthService
}

// NewAuthController AuthControllerを作成
func NewAuthController(authService services.AuthService) *AuthController {
	return &AuthController{
		authService: authService,
	}
}

// SignupRequest ユーザー登録リクエスト
type SignupRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginRequest ログインリクエスト
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// AuthUser 認証レスポンスに含めるユーザー
type AuthUser struct {
	ID       uint   `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

// AuthResponse 認証レスポンス
type AuthResponse struct {
	Token string   `json:"token"`
	User  AuthUser `json:"user"`
}

func newAuthResponse(user *models.User, token string) AuthResponse {
	return AuthResponse{
		Token: token,
		User: AuthUser{
			ID:       user.ID,
			Username: user.Username,
			Email:    user.Email,
		},
	}
}

// Signup ユーザー登録
func (c *AuthController) Signup(ctx *gin.Context) {
	var req SignupRequest
	if !bindJSON(ctx, &req) {
		return
	}

	user, token, err := c.authService.Register(req.Username, req.Email, req.Password)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, newAuthResponse(user, token))
}

// Login ログイン
func (c *AuthController) Login(ctx *gin.Context) {
	var req LoginRequest
	if !bindJSON(ctx, &req) {
		return
	}

	user, token, err := c.authService.Login(req.Username, req.Password)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, newAuthResponse(user, token))
}

// GetMe 現在のユーザー情報を取得
func (c *AuthController) GetMe(ctx *gin.Context) {
	user, ok := currentUser(ctx)
	if !ok {
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"id":         user.ID,
		"username":   user.Username,
		"email":      user.Email,
		"bio":        user.Bio,
		"avatar_url": user.AvatarURL,
	})
}
