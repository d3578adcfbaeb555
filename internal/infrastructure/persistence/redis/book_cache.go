package redis

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/guyidk/BookTrack-DevOps-Project/internal/domain/book"
	apperrors "github.com/guyidk/BookTrack-DevOps-Project/pkg/errors"
)

// 缓存Key设计:
// - 前缀:业务模块(book)
// - 实体:实体类型(list)
// - 示例:book:list
const bookListKey = "book:list"

// BookCache 图书列表缓存
// 设计说明:
// 1. 首页每次打开都全量拉取图书列表,是最热的读路径,走Cache-Aside:
//    查询先查缓存,未命中查库并回填
// 2. 只缓存列表整体,新增/更新图书时整体失效(数据量小,重建便宜)
// 3. 缓存故障不影响主流程:调用方拿到错误后直接回源数据库
type BookCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewBookCache 创建图书列表缓存
func NewBookCache(client *redis.Client, ttl time.Duration) *BookCache {
	if ttl <= 0 {
		ttl = time.Minute
	}
	return &BookCache{client: client, ttl: ttl}
}

// GetList 获取缓存的图书列表
// 未命中返回(nil, nil),调用方回源数据库
func (c *BookCache) GetList(ctx context.Context) ([]*book.Book, error) {
	data, err := c.client.Get(ctx, bookListKey).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, apperrors.Wrap(err, "读取图书列表缓存失败")
	}

	var books []*book.Book
	if err := json.Unmarshal(data, &books); err != nil {
		// 缓存内容损坏按未命中处理,下次Set覆盖
		return nil, nil
	}
	return books, nil
}

// SetList 回填图书列表缓存
func (c *BookCache) SetList(ctx context.Context, books []*book.Book) error {
	data, err := json.Marshal(books)
	if err != nil {
		return apperrors.Wrap(err, "序列化图书列表失败")
	}

	if err := c.client.Set(ctx, bookListKey, data, c.ttl).Err(); err != nil {
		return apperrors.Wrap(err, "写入图书列表缓存失败")
	}
	return nil
}

// Invalidate 失效图书列表缓存(新增/更新图书后调用)
func (c *BookCache) Invalidate(ctx context.Context) error {
	if err := c.client.Del(ctx, bookListKey).Err(); err != nil {
		return apperrors.Wrap(err, "删除图书列表缓存失败")
	}
	return nil
}
