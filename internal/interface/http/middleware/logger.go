package middleware

import (
	"log"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// Logger 请求日志中间件
// 设计说明:
// 1. 记录每个请求的方法、路径、状态码、耗时、客户端IP
// 2. 生成唯一请求ID并回写X-Request-ID头,便于排查问题
// 3. 不记录请求体:更新接口可能携带16MB的图片
func Logger() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := uuid.New().String()
		c.Set("request_id", requestID)
		c.Header("X-Request-ID", requestID)

		startTime := time.Now()

		c.Next()

		latency := time.Since(startTime)

		var errMsg string
		if len(c.Errors) > 0 {
			errMsg = " | " + c.Errors.String()
		}

		log.Printf("[HTTP] %3d | %13v | %15s | %-7s %s%s",
			c.Writer.Status(),
			latency,
			c.ClientIP(),
			c.Request.Method,
			c.Request.URL.Path,
			errMsg,
		)

		// 慢请求单独告警(图片上传之外的请求应该在毫秒级完成)
		if latency > 3*time.Second {
			log.Printf("[WARN] Slow request: %s %s took %v",
				c.Request.Method,
				c.Request.URL.Path,
				latency,
			)
		}
	}
}
