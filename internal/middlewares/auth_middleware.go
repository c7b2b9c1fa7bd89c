package middlewares

import (
	"net/http"
	"strings"

	"github.com/EatRateLove/eatratelove_backend/internal/models"
	"github.com/EatRateLove/eatratelove_backend/internal/services"

	"github.com/gin-gonic/gin"
)

// コンテキストのキー
const (
	userKey   = "user"
	userIDKey = "userID"
)

// AuthMiddleware 認証ミドルウェア
func AuthMiddleware(authService services.AuthService) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		// Authorizationヘッダーを取得
		authHeader := ctx.GetHeader("Authorization")

		// ヘッダーがない場合は認証エラー
		if authHeader == "" {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "認証が必要です"})
			return
		}

		// Bearer トークンの形式かチェック
		if !strings.HasPrefix(authHeader, "Bearer ") {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "無効な認証形式です"})
			return
		}

		// ユーザーを取得
		tokenString := strings.TrimSpace(strings.TrimPrefix(authHeader, "Bearer "))
		user, err := authService.GetUserFromToken(tokenString)
		if err != nil {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "無効なトークンです"})
			return
		}

		// ユーザーをコンテキストに保存
		ctx.Set(userKey, user)
		ctx.Set(userIDKey, user.ID)
		ctx.Next()
	}
}

// CurrentUser 認証済みユーザーを取得
func CurrentUser(ctx *gin.Context) (*models.User, bool) {
	value, exists := ctx.Get(userKey)
	if !exists {
		return nil, false
	}
	user, ok := value.(*models.User)
	return user, ok
}
