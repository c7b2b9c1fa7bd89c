package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/EatRateLove/eatratelove_backend/internal/config"
	"github.com/EatRateLove/eatratelove_backend/internal/events"
	"github.com/EatRateLove/eatratelove_backend/internal/middlewares"
	"github.com/EatRateLove/eatratelove_backend/internal/models"
	"github.com/EatRateLove/eatratelove_backend/internal/routes"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/redis/go-redis/v9"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

func main() {
	// ログ設定
	log.SetOutput(os.Stdout)
	log.SetFlags(log.LstdFlags | log.Lshortfile)
	log.Println("サーバーを起動しています...")

	// 設定をロード
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("設定の読み込みに失敗しました: %v", err)
	}

	// Gin モードの設定（環境変数が設定されていない場合はデバッグモード）
	if cfg.Server.GinMode != "" {
		gin.SetMode(cfg.Server.GinMode)
	} else {
		gin.SetMode(gin.DebugMode)
	}

	// カスタムログフォーマットを設定
	gin.DebugPrintRouteFunc = func(httpMethod, absolutePath, handlerName string, nuHandlers int) {
		log.Printf("エンドポイント登録: %s %s -> %s (%d handlers)\n", httpMethod, absolutePath, handlerName, nuHandlers)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// トレース
	shutdownTracing, err := initTracing(ctx, cfg.Telemetry)
	if err != nil {
		log.Fatalf("トレースの初期化に失敗しました: %v", err)
	}
	defer func() {
		c, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdownTracing(c); err != nil {
			log.Printf("トレースの終了に失敗しました: %v", err)
		}
	}()

	// データベース接続
	db, err := config.InitDB(cfg)
	if err != nil {
		log.Fatalf("データベース接続に失敗しました: %v", err)
	}
	if err := models.AutoMigrate(db); err != nil {
		log.Fatalf("マイグレーションに失敗しました: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		log.Fatalf("SQLDBインスタンス取得に失敗しました: %v", err)
	}
	defer sqlDB.Close()
	log.Printf("データベース設定: driver=%s MaxOpenConns=%d\n", cfg.Database.Driver, sqlDB.Stats().MaxOpenConnections)

	// メトリクス
	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	deps := routes.Dependencies{Registry: registry}

	// アクティビティイベント
	if cfg.Kafka.Enabled {
		publisher := events.NewKafkaPublisher(cfg.Kafka.Brokers, cfg.Kafka.Topic)
		defer publisher.Close()
		deps.Publisher = publisher
		log.Printf("Kafkaへのイベント送信を有効にしました: topic=%s", cfg.Kafka.Topic)
	}

	// レート制限
	if cfg.Redis.Enabled {
		rdb := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		defer rdb.Close()
		if err := rdb.Ping(ctx).Err(); err != nil {
			log.Printf("Redisに接続できません。レート制限は接続回復まで無効になります: %v", err)
		}
		deps.Limiter = middlewares.NewRedisLimiter(rdb)
	}

	// ルーターをセットアップ
	router := routes.SetupRouter(cfg, db, deps)

	srv := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           otelhttp.NewHandler(router, "http.server"),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		IdleTimeout:       90 * time.Second,
	}

	// サーバー起動
	go func() {
		log.Printf("サーバーを開始しています... PORT: %s", cfg.Server.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("サーバーの起動に失敗しました: %v", err)
		}
	}()

	<-ctx.Done()
	log.Println("サーバーを停止しています...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("サーバーの停止に失敗しました: %v", err)
	}
}
