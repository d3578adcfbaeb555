package book

import (
	"context"
	"log"

	"github.com/guyidk/BookTrack-DevOps-Project/internal/domain/book"
	"github.com/guyidk/BookTrack-DevOps-Project/internal/infrastructure/persistence/redis"
	"github.com/guyidk/BookTrack-DevOps-Project/pkg/metrics"
)

// ListBooksUseCase 图书列表查询用例
// 设计说明:
// 1. 列表是首页唯一数据源,走Cache-Aside:先查Redis,未命中查库并回填
// 2. 缓存任何一步失败都降级为直接查库,只记日志
// 3. 不分页:库存应用数据量小,前端需要全量列表做客户端标题预检
type ListBooksUseCase struct {
	bookService book.Service
	cache       *redis.BookCache
}

// NewListBooksUseCase 创建列表查询用例
func NewListBooksUseCase(bookService book.Service, cache *redis.BookCache) *ListBooksUseCase {
	return &ListBooksUseCase{
		bookService: bookService,
		cache:       cache,
	}
}

// Execute 执行列表查询用例
func (uc *ListBooksUseCase) Execute(ctx context.Context) ([]*BookDTO, error) {
	// 1. 查缓存
	if uc.cache != nil {
		cached, err := uc.cache.GetList(ctx)
		switch {
		case err != nil:
			log.Println("Error reading book list cache:", err)
			countCache("error")
		case cached != nil:
			countCache("hit")
			return toBookDTOs(cached), nil
		default:
			countCache("miss")
		}
	}

	// 2. 回源数据库
	books, err := uc.bookService.ListBooks(ctx)
	if err != nil {
		return nil, err
	}

	// 3. 回填缓存
	if uc.cache != nil {
		if err := uc.cache.SetList(ctx, books); err != nil {
			log.Println("Error writing book list cache:", err)
		}
	}

	return toBookDTOs(books), nil
}

// countCache 记录缓存命中指标(指标未初始化时跳过)
func countCache(result string) {
	if metrics.CacheRequestsTotal != nil {
		metrics.CacheRequestsTotal.WithLabelValues(result).Inc()
	}
}
