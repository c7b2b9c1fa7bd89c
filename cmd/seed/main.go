package main

import (
	"flag"
	"log"
	"os"
	"time"

	"github.com/EatRateLove/eatratelove_backend/internal/config"
	"github.com/EatRateLove/eatratelove_backend/internal/models"
	"github.com/EatRateLove/eatratelove_backend/internal/seed"
)

func main() {
	log.SetOutput(os.Stdout)
	log.SetFlags(log.LstdFlags | log.Lshortfile)

	var opts seed.Options
	flag.IntVar(&opts.Users, "users", 20, "作成するユーザー数")
	flag.IntVar(&opts.PostsPerUser, "posts", 3, "ユーザーごとの投稿数")
	flag.IntVar(&opts.FollowsPerUser, "follows", 5, "ユーザーごとのフォロー数")
	flag.IntVar(&opts.LikesPerPost, "likes", 4, "投稿ごとのいいね数")
	flag.IntVar(&opts.CommentsPerPost, "comments", 2, "投稿ごとのコメント数")
	flag.Int64Var(&opts.Seed, "seed", time.Now().UnixNano(), "乱数シード")
	flag.Parse()

	// 設定をロード
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("設定の読み込みに失敗しました: %v", err)
	}

	// データベース接続
	db, err := config.InitDB(cfg)
	if err != nil {
		log.Fatalf("データベース接続に失敗しました: %v", err)
	}
	if err := models.AutoMigrate(db); err != nil {
		log.Fatalf("マイグレーションに失敗しました: %v", err)
	}

	if _, err := seed.Run(db, cfg, opts); err != nil {
		log.Fatalf("ダミーデータの投入に失敗しました: %v", err)
	}
	log.Printf("ログイン用パスワード: %s", seed.DefaultPassword)
}
