package middleware

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gookit/slog"

	"content-graph/config"
	"content-graph/metrics"
)

const headerRequestID = "X-Request-Id"

// ContextKeyRequestID 는 gin 컨텍스트에 저장되는 요청 ID 키다.
const ContextKeyRequestID = "request_id"

// RequestTrace 는 요청 ID 를 보장하고, 응답까지 걸린 시간을 로그와 메트릭에 남긴다.
func RequestTrace() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		requestID := c.GetHeader(headerRequestID)
		if requestID == "" {
			requestID = uuid.NewString()
		}
		c.Set(ContextKeyRequestID, requestID)
		c.Writer.Header().Set(headerRequestID, requestID)

		c.Next()

		// 라우트 템플릿을 라벨로 써서 경로 ID 별로 시계열이 늘어나지 않게 한다.
		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		status := c.Writer.Status()
		duration := time.Since(start)

		metrics.HttpRequestsTotal.WithLabelValues(c.Request.Method, path, strconv.Itoa(status)).Inc()
		metrics.HttpRequestDuration.WithLabelValues(c.Request.Method, path).Observe(duration.Seconds())

		config.Logger.WithFields(slog.M{
			"method":      c.Request.Method,
			"path":        c.Request.URL.Path,
			"status":      status,
			"duration_ms": duration.Milliseconds(),
			"request_id":  requestID,
		}).Info("api_request")
	}
}
