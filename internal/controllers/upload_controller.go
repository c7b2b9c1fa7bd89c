package controllers

import (
	"errors"
	"net/http"

	"github.com/EatRateLove/eatratelove_backend/internal/services"

	"github.com/gin-gonic/gin"
)

// UploadController アップロードに関するコントローラー
type UploadController struct {
	mediaService services.MediaService
	maxSize      int64
}

// NewUploadController UploadControllerを作成
func NewUploadController(mediaService services.MediaService, maxSize int64) *UploadController {
	return &UploadController{
		mediaService: mediaService,
		maxSize:      maxSize,
	}
}

// UploadImage 画像をアップロード
func (c *UploadController) UploadImage(ctx *gin.Context) {
	// 上限を少し超える分まで読み込み、超過はサービス側で判定する
	if c.maxSize > 0 {
		ctx.Request.Body = http.MaxBytesReader(ctx.Writer, ctx.Request.Body, c.maxSize+(1<<20))
	}

	// ファイルを取得
	header, err := ctx.FormFile("file")
	if err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			respondError(ctx, services.ErrFileTooLarge)
			return
		}
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "ファイルが必要です"})
		return
	}

	file, err := header.Open()
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "ファイルを開けませんでした"})
		return
	}
	defer file.Close()

	url, err := c.mediaService.Upload(ctx.Request.Context(), header.Header.Get("Content-Type"), header.Size, file)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"url": url})
}
