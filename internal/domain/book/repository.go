package book

import (
	"context"
)

// Repository 图书仓储接口(依赖倒置原则)
// 设计说明:
// 1. 由domain层定义接口,infrastructure层实现
// 2. 便于Mock测试,领域服务不依赖具体数据库实现
// 3. 实现方负责把数据库特有错误(唯一索引冲突、记录不存在)
//    转换为本包的领域错误
type Repository interface {
	// Create 创建图书
	// 书名唯一索引冲突时返回ErrTitleDuplicate
	Create(ctx context.Context, b *Book) error

	// FindByID 根据文档ID查找图书,不存在返回ErrBookNotFound
	FindByID(ctx context.Context, id string) (*Book, error)

	// FindByTitle 根据书名精确查找(区分大小写),不存在返回ErrBookNotFound
	// 更新流程用它做标题唯一性预检
	FindByTitle(ctx context.Context, title string) (*Book, error)

	// Update 持久化整个实体
	// 书名唯一索引冲突时返回ErrTitleDuplicate(预检查有并发窗口,索引兜底)
	Update(ctx context.Context, b *Book) error

	// List 返回全部图书(库存应用数据量小,不分页)
	List(ctx context.Context) ([]*Book, error)

	// SearchByTitle 书名子串匹配(不区分大小写)
	SearchByTitle(ctx context.Context, query string) ([]*Book, error)
}
