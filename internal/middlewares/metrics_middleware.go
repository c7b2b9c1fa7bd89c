package middlewares

import (
	"strconv"
	"time"

	"github.com/EatRateLove/eatratelove_backend/internal/metrics"

	"github.com/gin-gonic/gin"
)

// MetricsMiddleware リクエスト数とレイテンシを記録
func MetricsMiddleware(m *metrics.Metrics) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		start := time.Now()
		ctx.Next()

		// 未登録のパスはラベルが増えないようにまとめる
		route := ctx.FullPath()
		if route == "" {
			route = "unmatched"
		}
		method := ctx.Request.Method
		m.RequestsTotal.WithLabelValues(method, route, strconv.Itoa(ctx.Writer.Status())).Inc()
		m.RequestDuration.WithLabelValues(method, route).Observe(time.Since(start).Seconds())
	}
}
