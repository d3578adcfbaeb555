// Package metrics 提供基于Prometheus的指标收集
//
// 指标类型约定:
// - Counter: 只增不减的累计值(请求总数、更新失败总数),以_total结尾
// - Gauge: 可增可减的瞬时值(处理中请求数)
// - Histogram: 观测值分布(请求耗时),以单位结尾(_seconds)
//
// 使用方式:
//
//	metrics.InitMetrics()
//	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// initialized 标记是否已初始化（防止重复注册）
	initialized bool

	// HTTP请求相关指标

	// HTTPRequestsTotal HTTP请求总数（Counter）
	// 标签：method（GET/PUT）、path（/updateBook/:id）、status（200/400/404/500）
	HTTPRequestsTotal *prometheus.CounterVec

	// HTTPRequestDuration HTTP请求耗时（Histogram）
	HTTPRequestDuration *prometheus.HistogramVec

	// HTTPRequestsInProgress 正在处理的HTTP请求数（Gauge）
	HTTPRequestsInProgress prometheus.Gauge

	// 业务指标

	// BookUpdatesTotal 图书更新总数（Counter）
	// 标签：result（success/rejected/failure）
	BookUpdatesTotal *prometheus.CounterVec

	// BooksCreatedTotal 图书新增总数（Counter）
	BooksCreatedTotal prometheus.Counter

	// ImageBytesIngested 上传图片字节数分布（Histogram）
	ImageBytesIngested prometheus.Histogram

	// 缓存指标

	// CacheRequestsTotal 图书列表缓存访问总数（Counter）
	// 标签：result（hit/miss/error）
	CacheRequestsTotal *prometheus.CounterVec
)

// InitMetrics 初始化所有Prometheus指标
//
// 必须在程序启动时调用一次，把指标注册到默认Registry
func InitMetrics() {
	// 防止重复初始化
	if initialized {
		return
	}
	initialized = true

	// HTTP请求指标
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "HTTP请求总数",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "http_request_duration_seconds",
			Help: "HTTP请求耗时（秒）",
			// 桶设置：1ms、10ms、100ms、500ms、1s、5s、10s
			Buckets: []float64{0.001, 0.01, 0.1, 0.5, 1, 5, 10},
		},
		[]string{"method", "path"},
	)

	HTTPRequestsInProgress = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "http_requests_in_progress",
			Help: "正在处理的HTTP请求数",
		},
	)

	// 图书业务指标
	BookUpdatesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "book_updates_total",
			Help: "图书更新总数",
		},
		[]string{"result"}, // success: 已写库; rejected: 校验/冲突拒绝; failure: 内部错误
	)

	BooksCreatedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "books_created_total",
			Help: "图书新增总数",
		},
	)

	ImageBytesIngested = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name: "image_bytes_ingested",
			Help: "上传封面图片大小（字节）",
			// 桶设置：1KB、64KB、512KB、1MB、4MB、16MB（上限与校验阈值一致）
			Buckets: []float64{1024, 65536, 524288, 1048576, 4194304, 16777216},
		},
	)

	// 缓存指标
	CacheRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cache_requests_total",
			Help: "图书列表缓存访问总数",
		},
		[]string{"result"},
	)
}
