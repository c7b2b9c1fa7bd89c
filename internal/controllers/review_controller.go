package controllers

import (
	"net/http"

	"github.com/EatRateLove/eatratelove_backend/internal/services"

	"github.com/gin-gonic/gin"
)

// ReviewController レビューの感情分析に関するコントローラー
type ReviewController struct {
	reviewService services.ReviewService
}

// NewReviewController ReviewControllerを作成
func NewReviewController(reviewService services.ReviewService) *ReviewController {
	return &ReviewController{
		reviewService: reviewService,
	}
}

// ReviewRequest レビューリクエスト
type ReviewRequest struct {
	Review string `json:"review"`
}

// Analyze 保存せずに解析結果を返す
func (c *ReviewController) Analyze(ctx *gin.Context) {
	var req ReviewRequest
	if !bindJSON(ctx, &req) {
		return
	}

	review, err := c.reviewService.Analyze(req.Review)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"review":    review.Review,
		"sentiment": review.Sentiment,
		"keywords":  review.Keywords,
	})
}

// Save レビューを解析して保存
func (c *ReviewController) Save(ctx *gin.Context) {
	var req ReviewRequest
	if !bindJSON(ctx, &req) {
		return
	}

	review, err := c.reviewService.Save(req.Review)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"id":        review.ID,
		"review":    review.Review,
		"sentiment": review.Sentiment,
		"keywords":  review.Keywords,
	})
}

// List 保存済みレビューの一覧
func (c *ReviewController) List(ctx *gin.Context) {
	limit, offset, ok := parsePage(ctx, services.DefaultReviewLimit)
	if !ok {
		return
	}
	limit = services.ClampLimit(limit)

	items, total, err := c.reviewService.List(limit, offset)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"items":  items,
		"total":  total,
		"limit":  limit,
		"offset": offset,
	})
}
