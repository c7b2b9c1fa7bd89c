package controllers

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/EatRateLove/eatratelove_backend/internal/middlewares"
	"github.com/EatRateLove/eatratelove_backend/internal/models"
	"github.com/EatRateLove/eatratelove_backend/internal/services"

	"github.com/gin-gonic/gin"
)

// respondError サービスのエラーをHTTPステータスに変換して返す
func respondError(ctx *gin.Context, err error) {
	var verr *services.ValidationError
	switch {
	case errors.As(err, &verr):
		ctx.JSON(http.StatusUnprocessableEntity, gin.H{"error": verr.Message, "field": verr.Field})
	case errors.Is(err, services.ErrNotFound):
		ctx.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, services.ErrConflict):
		ctx.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, services.ErrUnauthorized):
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
	case errors.Is(err, services.ErrForbidden):
		ctx.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
	case errors.Is(err, services.ErrUnsupportedMediaType):
		ctx.JSON(http.StatusUnsupportedMediaType, gin.H{"error": err.Error()})
	case errors.Is(err, services.ErrFileTooLarge):
		ctx.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": err.Error()})
	default:
		log.Printf("リクエストの処理に失敗しました: %s %s: %v", ctx.Request.Method, ctx.Request.URL.Path, err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "サーバーエラーが発生しました"})
	}
}

// bindJSON リクエストボディをバインドし、失敗したら400を返す
func bindJSON(ctx *gin.Context, req interface{}) bool {
	if err := ctx.ShouldBindJSON(req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "リクエストの形式が正しくありません"})
		return false
	}
	return true
}

// currentUser 認証済みユーザーを取得し、なければ401を返す
func currentUser(ctx *gin.Context) (*models.User, bool) {
	user, ok := middlewares.CurrentUser(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "認証が必要です"})
		return nil, false
	}
	return user, true
}

// parseID パスパラメータのIDを解析
func parseID(ctx *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(ctx.Param(name), 10, 32)
	if err != nil || id == 0 {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "無効なIDです"})
		return 0, false
	}
	return uint(id), true
}

// parsePage limit と offset のクエリを解析
// limitが未指定の場合のみdefaultLimitを使う
func parsePage(ctx *gin.Context, defaultLimit int) (int, int, bool) {
	limit, err := queryInt(ctx, "limit", defaultLimit)
	if err != nil {
		respondError(ctx, &services.ValidationError{Field: "limit", Message: "limitは整数で指定してください"})
		return 0, 0, false
	}
	offset, err := queryInt(ctx, "offset", 0)
	if err != nil {
		respondError(ctx, &services.ValidationError{Field: "offset", Message: "offsetは整数で指定してください"})
		return 0, 0, false
	}
	return limit, offset, true
}

func queryInt(ctx *gin.Context, key string, defaultValue int) (int, error) {
	raw, ok := ctx.GetQuery(key)
	if !ok {
		return defaultValue, nil
	}
	return strconv.Atoi(raw)
}
