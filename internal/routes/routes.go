package routes

import (
	"context"
	"log"
	"time"

	"github.com/EatRateLove/eatratelove_backend/internal/config"
	"github.com/EatRateLove/eatratelove_backend/internal/controllers"
	"github.com/EatRateLove/eatratelove_backend/internal/events"
	"github.com/EatRateLove/eatratelove_backend/internal/metrics"
	"github.com/EatRateLove/eatratelove_backend/internal/middlewares"
	"github.com/EatRateLove/eatratelove_backend/internal/repository"
	"github.com/EatRateLove/eatratelove_backend/internal/sentiment"
	"github.com/EatRateLove/eatratelove_backend/internal/services"
	"github.com/EatRateLove/eatratelove_backend/internal/storage"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"gorm.io/gorm"
)

// Dependencies 外部リソースに依存するコンポーネント
// nil の項目は設定から作成するか、無効として扱う
type Dependencies struct {
	Publisher events.Publisher
	Store     storage.Store
	Limiter   middlewares.Limiter
	Registry  *prometheus.Registry
}

// SetupRouter ルーターを設定
func SetupRouter(cfg *config.Config, db *gorm.DB, deps Dependencies) *gin.Engine {
	// Ginルーターを作成
	r := gin.New()

	// メトリクス
	registry := deps.Registry
	if registry == nil {
		registry = prometheus.NewRegistry()
	}
	m := metrics.New(registry)

	// ミドルウェアを設定
	r.Use(gin.Logger())
	r.Use(middlewares.ErrorMiddleware())
	r.Use(middlewares.CORSMiddleware())
	r.Use(middlewares.MetricsMiddleware(m))

	// 外部コンポーネント
	publisher := deps.Publisher
	if publisher == nil {
		publisher = events.NopPublisher{}
	}
	publisher = metrics.InstrumentPublisher(publisher, m)

	store := deps.Store
	if store == nil {
		s, err := storage.NewStore(context.Background(), cfg.Media)
		if err != nil {
			log.Fatalf("画像保存先の初期化に失敗しました: %v", err)
		}
		store = s
	}

	analyzer, err := sentiment.NewAnalyzer()
	if err != nil {
		log.Fatalf("感情解析モデルの読み込みに失敗しました: %v", err)
	}

	restaurantService, err := services.NewRestaurantService(cfg.Data.RestaurantsCSV)
	if err != nil {
		log.Fatalf("レストランデータの読み込みに失敗しました: %v", err)
	}

	// リポジトリを作成
	userRepo := repository.NewUserRepository(db)
	followRepo := repository.NewFollowRepository(db)
	postRepo := repository.NewPostRepository(db)
	commentRepo := repository.NewCommentRepository(db)
	feedRepo := repository.NewFeedRepository(db)
	reviewRepo := repository.NewReviewRepository(db)

	// サービスを作成
	authService := services.NewAuthService(userRepo, cfg)
	userService := services.NewUserService(userRepo, followRepo)
	followService := services.NewFollowService(followRepo, userRepo, publisher)
	postService := services.NewPostService(postRepo, commentRepo, publisher)
	feedService := services.NewFeedService(feedRepo)
	mediaService := services.NewMediaService(store, cfg.Media)
	reviewService := services.NewReviewService(reviewRepo, analyzer)
	healthService := services.NewHealthService(db)

	// コントローラーを作成
	authController := controllers.NewAuthController(authService)
	userController := controllers.NewUserController(userService, followService)
	postController := controllers.NewPostController(postService, feedService)
	uploadController := controllers.NewUploadController(mediaService, cfg.Media.MaxSize)
	reviewController := controllers.NewReviewController(reviewService)
	restaurantController := controllers.NewRestaurantController(restaurantService)
	healthController := controllers.NewHealthController(healthService)

	// 認証ミドルウェア
	authMiddleware := middlewares.AuthMiddleware(authService)

	// 書き込み系は認証後にレート制限をかける
	writeGuard := []gin.HandlerFunc{authMiddleware}
	if deps.Limiter != nil {
		window := cfg.Redis.RateWindow
		if window <= 0 {
			window = time.Minute
		}
		writeGuard = append(writeGuard, middlewares.RateLimitMiddleware(deps.Limiter, cfg.Redis.RateLimit, window, m))
	}
	guarded := func(h gin.HandlerFunc) []gin.HandlerFunc {
		return append(append([]gin.HandlerFunc{}, writeGuard...), h)
	}

	// 運用向けエンドポイント
	r.GET("/health", healthController.Check)
	r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(registry, promhttp.HandlerOpts{})))

	// ローカル保存の画像を配信
	if cfg.Media.Backend == "" || cfg.Media.Backend == "local" {
		r.Static(cfg.Media.PublicPath, cfg.Media.UploadDir)
	}

	// APIグループを作成
	api := r.Group("/api/v1")
	{
		api.GET("/health", healthController.Check)

		// 認証ルート
		auth := api.Group("/auth")
		{
			auth.POST("/signup", authController.Signup)
			auth.POST("/login", authController.Login)
			auth.GET("/me", authMiddleware, authController.GetMe)
		}

		// ユーザールート
		users := api.Group("/users")
		{
			users.GET("/profile/:username", userController.GetProfile)
			users.GET("/:username/followers", userController.Followers)
			users.GET("/:username/following", userController.Following)

			users.POST("/follow", guarded(userController.Follow)...)
			users.POST("/unfollow", guarded(userController.Unfollow)...)
			users.PUT("/profile", guarded(userController.UpdateProfile)...)
			users.DELETE("/me", authMiddleware, userController.DeleteMe)
		}

		// 投稿ルート
		posts := api.Group("/posts")
		{
			posts.GET("/feed", authMiddleware, postController.Feed)
			posts.GET("/:id", postController.Get)

			posts.POST("/create", guarded(postController.Create)...)
			posts.POST("/like", guarded(postController.Like)...)
			posts.POST("/unlike", guarded(postController.Unlike)...)
			posts.POST("/comment", guarded(postController.Comment)...)
			posts.DELETE("/:id", authMiddleware, postController.Delete)
		}

		// 画像アップロード
		api.POST("/media/upload", guarded(uploadController.UploadImage)...)

		// レビュー
		api.POST("/sentiment/analyze", reviewController.Analyze)
		upload := api.Group("/upload")
		{
			upload.POST("/review", reviewController.Save)
			upload.GET("/reviews", reviewController.List)
		}

		// レストランデータ
		api.GET("/yelp/restaurants", restaurantController.List)
	}

	return r
}
