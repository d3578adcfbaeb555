package book

import (
	"context"
	"log"

	"github.com/guyidk/BookTrack-DevOps-Project/internal/domain/book"
	"github.com/guyidk/BookTrack-DevOps-Project/internal/infrastructure/persistence/redis"
)

// UpdateBookUseCase 图书更新用例
// 设计说明:
// 1. 应用层负责用例编排:调用领域服务完成更新,成功后失效列表缓存
// 2. 输入输出使用DTO,与HTTP层解耦
// 3. 业务规则(字段校验、标题唯一性、图片大小)全部在领域服务内
type UpdateBookUseCase struct {
	bookService book.Service
	cache       *redis.BookCache
}

// NewUpdateBookUseCase 创建更新用例
// cache允许为nil(单元测试、缓存未启用)
func NewUpdateBookUseCase(bookService book.Service, cache *redis.BookCache) *UpdateBookUseCase {
	return &UpdateBookUseCase{
		bookService: bookService,
		cache:       cache,
	}
}

// UpdateBookRequest 更新请求DTO
type UpdateBookRequest struct {
	ID              string // 路径里的文档ID
	Title           string
	Author          string
	ISBN            string
	Genre           string
	AvailableCopies int
	Image           []byte // 上传的图片原始字节
	ImageProvided   bool   // false=本次请求没带图片
}

// Execute 执行更新用例
func (uc *UpdateBookUseCase) Execute(ctx context.Context, req UpdateBookRequest) (*BookDTO, error) {
	updated, err := uc.bookService.UpdateBook(ctx, req.ID, book.UpdateInput{
		Title:           req.Title,
		Author:          req.Author,
		ISBN:            req.ISBN,
		Genre:           req.Genre,
		AvailableCopies: req.AvailableCopies,
		Image:           req.Image,
		ImageProvided:   req.ImageProvided,
	})
	if err != nil {
		return nil, err
	}

	// 更新成功后失效列表缓存;缓存失败只记日志,不影响更新结果
	if uc.cache != nil {
		if err := uc.cache.Invalidate(ctx); err != nil {
			log.Println("Error invalidating book list cache:", err)
		}
	}

	return toBookDTO(updated), nil
}
