package book

import (
	"context"
	"log"

	"github.com/guyidk/BookTrack-DevOps-Project/internal/domain/book"
	"github.com/guyidk/BookTrack-DevOps-Project/internal/infrastructure/persistence/redis"
)

// AddBookUseCase 图书新增用例
type AddBookUseCase struct {
	bookService book.Service
	cache       *redis.BookCache
}

// NewAddBookUseCase 创建新增用例
func NewAddBookUseCase(bookService book.Service, cache *redis.BookCache) *AddBookUseCase {
	return &AddBookUseCase{
		bookService: bookService,
		cache:       cache,
	}
}

// AddBookRequest 新增请求DTO
type AddBookRequest struct {
	Title           string
	Author          string
	ISBN            string
	Genre           string
	AvailableCopies int
	Image           []byte
	ImageProvided   bool
}

// Execute 执行新增用例
// 领域服务会处理:字段校验、ISBN校验位、标题唯一性、图片大小
func (uc *AddBookUseCase) Execute(ctx context.Context, req AddBookRequest) (*BookDTO, error) {
	created, err := uc.bookService.AddBook(ctx, book.AddInput{
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

	if uc.cache != nil {
		if err := uc.cache.Invalidate(ctx); err != nil {
			log.Println("Error invalidating book list cache:", err)
		}
	}

	return toBookDTO(created), nil
}
