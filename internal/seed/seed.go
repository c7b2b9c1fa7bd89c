// Package seed 開発用のダミーデータを投入する
package seed

import (
	"errors"
	"fmt"
	"log"

	"github.com/EatRateLove/eatratelove_backend/internal/config"
	"github.com/EatRateLove/eatratelove_backend/internal/events"
	"github.com/EatRateLove/eatratelove_backend/internal/models"
	"github.com/EatRateLove/eatratelove_backend/internal/repository"
	"github.com/EatRateLove/eatratelove_backend/internal/services"

	"github.com/brianvoe/gofakeit/v6"
	"gorm.io/gorm"
)

// DefaultPassword 投入したユーザーのパスワード
const DefaultPassword = "password123"

// Options 投入するデータ量
type Options struct {
	Users           int
	PostsPerUser    int
	FollowsPerUser  int
	LikesPerPost    int
	CommentsPerPost int
	Seed            int64
}

// Result 投入した件数
type Result struct {
	Users    int
	Posts    int
	Follows  int
	Likes    int
	Comments int
}

// Run サービス経由でダミーデータを作成
func Run(db *gorm.DB, cfg *config.Config, opts Options) (*Result, error) {
	faker := gofakeit.New(opts.Seed)

	userRepo := repository.NewUserRepository(db)
	followRepo := repository.NewFollowRepository(db)
	publisher := events.NopPublisher{}

	authService := services.NewAuthService(userRepo, cfg)
	followService := services.NewFollowService(followRepo, userRepo, publisher)
	postService := services.NewPostService(repository.NewPostRepository(db), repository.NewCommentRepository(db), publisher)

	res := &Result{}

	// ユーザー
	users := make([]*models.User, 0, opts.Users)
	for len(users) < opts.Users {
		username := faker.Username()
		if len(users) > 0 && faker.Bool() {
			username = fmt.Sprintf("%s%d", username, faker.Number(1, 999))
		}
		user, _, err := authService.Register(username, faker.Email(), DefaultPassword)
		if errors.Is(err, services.ErrConflict) || errors.Is(err, services.ErrValidation) {
			continue
		}
		if err != nil {
			return res, fmt.Errorf("ユーザーの作成に失敗しました: %w", err)
		}
		users = append(users, user)
	}
	res.Users = len(users)

	// フォロー
	for _, user := range users {
		for i := 0; i < opts.FollowsPerUser && len(users) > 1; i++ {
			target := users[faker.Number(0, len(users)-1)]
			if target.ID == user.ID {
				continue
			}
			if err := followService.Follow(user.ID, target.ID); err != nil {
				return res, fmt.Errorf("フォローの作成に失敗しました: %w", err)
			}
			res.Follows++
		}
	}

	// 投稿といいね・コメント
	for _, user := range users {
		for i := 0; i < opts.PostsPerUser; i++ {
			post, err := postService.Create(user.ID, faker.ImageURL(640, 640), faker.Sentence(8))
			if err != nil {
				return res, fmt.Errorf("投稿の作成に失敗しました: %w", err)
			}
			res.Posts++

			for j := 0; j < opts.LikesPerPost; j++ {
				liker := users[faker.Number(0, len(users)-1)]
				if err := postService.Like(liker.ID, post.ID); err != nil {
					return res, fmt.Errorf("いいねの作成に失敗しました: %w", err)
				}
				res.Likes++
			}
			for j := 0; j < opts.CommentsPerPost; j++ {
				author := users[faker.Number(0, len(users)-1)]
				if _, err := postService.AddComment(author.ID, post.ID, faker.Sentence(6)); err != nil {
					return res, fmt.Errorf("コメントの作成に失敗しました: %w", err)
				}
				res.Comments++
			}
		}
	}

	log.Printf("ダミーデータを投入しました: users=%d posts=%d follows=%d likes=%d comments=%d",
		res.Users, res.Posts, res.Follows, res.Likes, res.Comments)
	return res, nil
}
