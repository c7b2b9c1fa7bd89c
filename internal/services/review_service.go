package services

import (
	"strings"

	"github.com/EatRateLove/eatratelove_backend/internal/models"
	"github.com/EatRateLove/eatratelove_backend/internal/repository"
	"github.com/EatRateLove/eatratelove_backend/internal/sentiment"
)

// DefaultReviewLimit レビュー一覧の既定件数
const DefaultReviewLimit = 50

// ReviewService レビューの感情分析に関するサービスインターフェース
type ReviewService interface {
	Analyze(text string) (*models.Review, error)
	Save(text string) (*models.Review, error)
	List(limit, offset int) ([]models.Review, int64, error)
}

// reviewService ReviewServiceの実装
type reviewService struct {
	reviewRepo repository.ReviewRepository
	analyzer   *sentiment.Analyzer
}

// NewReviewService ReviewServiceを作成
func NewReviewService(reviewRepo repository.ReviewRepository, analyzer *sentiment.Analyzer) ReviewService {
	return &reviewService{
		reviewRepo: reviewRepo,
		analyzer:   analyzer,
	}
}

// Analyze 保存せずに感情とキーワードを求める
func (s *reviewService) Analyze(text string) (*models.Review, error) {
	if strings.TrimSpace(text) == "" {
		return nil, newValidationError("review", "レビューを入力してください")
	}
	res := s.analyzer.Analyze(text)
	return &models.Review{
		Review:    text,
		Sentiment: res.Sentiment,
		Keywords:  res.Keywords,
	}, nil
}

// Save 解析結果と合わせてレビューを保存
func (s *reviewService) Save(text string) (*models.Review, error) {
	review, err := s.Analyze(text)
	if err != nil {
		return nil, err
	}
	if err := s.reviewRepo.Create(review); err != nil {
		return nil, err
	}
	return review, nil
}

// List レビュー一覧と総数を取得
func (s *reviewService) List(limit, offset int) ([]models.Review, int64, error) {
	if offset < 0 {
		return nil, 0, newValidationError("offset", "offsetは0以上で指定してください")
	}
	limit = ClampLimit(limit)

	reviews, err := s.reviewRepo.List(limit, offset)
	if err != nil {
		return nil, 0, err
	}
	total, err := s.reviewRepo.Count()
	if err != nil {
		return nil, 0, err
	}
	return reviews, total, nil
}
