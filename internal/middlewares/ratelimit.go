package middlewares

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/EatRateLove/eatratelove_backend/internal/metrics"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

// Limiter 固定ウィンドウのレート制限
type Limiter interface {
	Allow(ctx context.Context, key string, limit int64, window time.Duration) (bool, int64, error)
}

// RedisLimiter Redisのカウンターによるレート制限
type RedisLimiter struct {
	client *redis.Client
}

// NewRedisLimiter RedisLimiterを作成
func NewRedisLimiter(client *redis.Client) *RedisLimiter {
	return &RedisLimiter{client: client}
}

// Allow ウィンドウ内のリクエスト数を加算し、上限以内か判定
// 有効期限のないキーには毎回期限を付け直す
func (l *RedisLimiter) Allow(ctx context.Context, key string, limit int64, window time.Duration) (bool, int64, error) {
	k := "rl:" + key
	pipe := l.client.TxPipeline()
	incr := pipe.Incr(ctx, k)
	ttl := pipe.TTL(ctx, k)
	if _, err := pipe.Exec(ctx); err != nil {
		return false, 0, err
	}

	n := incr.Val()
	// TTLが負なら期限未設定
	if ttl.Val() < 0 {
		if err := l.client.Expire(ctx, k, window).Err(); err != nil {
			return false, 0, err
		}
	}
	return n <= limit, n, nil
}

// RateLimitMiddleware 認証済みユーザー単位でリクエストを制限
// リミッターのエラー時は制限せずに通す
func RateLimitMiddleware(limiter Limiter, limit int64, window time.Duration, m *metrics.Metrics) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		user, ok := CurrentUser(ctx)
		if !ok {
			ctx.Next()
			return
		}

		key := "user:" + strconv.FormatUint(uint64(user.ID), 10)
		allowed, count, err := limiter.Allow(ctx.Request.Context(), key, limit, window)
		if err != nil {
			log.Printf("レート制限の確認に失敗しました: %v", err)
			ctx.Next()
			return
		}

		ctx.Header("X-RateLimit-Limit", strconv.FormatInt(limit, 10))
		remaining := limit - count
		if remaining < 0 {
			remaining = 0
		}
		ctx.Header("X-RateLimit-Remaining", strconv.FormatInt(remaining, 10))

		if !allowed {
			if m != nil {
				m.RateLimited.Inc()
			}
			ctx.Header("Retry-After", strconv.Itoa(int(window.Seconds())))
			ctx.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"error": fmt.Sprintf("リクエストが多すぎます (上限 %d 回 / %s)", limit, window),
			})
			return
		}

		ctx.Next()
	}
}
