package middleware

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/guyidk/BookTrack-DevOps-Project/pkg/metrics"
)

// Metrics HTTP指标采集中间件
// 设计说明:
// 1. path标签用路由模板(c.FullPath(),如/updateBook/:id),
//    不用真实URL,避免文档ID导致标签基数爆炸
// 2. 必须先调用metrics.InitMetrics(),否则本中间件不记录任何指标
func Metrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		if metrics.HTTPRequestsTotal == nil {
			c.Next()
			return
		}

		path := c.FullPath()
		if path == "" {
			// 未匹配到路由(404),统一归档避免基数爆炸
			path = "unmatched"
		}

		metrics.HTTPRequestsInProgress.Inc()
		start := time.Now()

		c.Next()

		metrics.HTTPRequestsInProgress.Dec()
		metrics.HTTPRequestDuration.WithLabelValues(c.Request.Method, path).
			Observe(time.Since(start).Seconds())
		metrics.HTTPRequestsTotal.WithLabelValues(
			c.Request.Method,
			path,
			strconv.Itoa(c.Writer.Status()),
		).Inc()
	}
}
