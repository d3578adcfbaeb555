package book

import (
	"context"

	"github.com/guyidk/BookTrack-DevOps-Project/internal/domain/book"
)

// GetBookUseCase 图书详情查询用例
type GetBookUseCase struct {
	bookService book.Service
}

// NewGetBookUseCase 创建详情查询用例
func NewGetBookUseCase(bookService book.Service) *GetBookUseCase {
	return &GetBookUseCase{bookService: bookService}
}

// Execute 执行详情查询
// ID格式校验(24位十六进制)由HTTP层负责,这里只做存在性查询
func (uc *GetBookUseCase) Execute(ctx context.Context, id string) (*BookDTO, error) {
	b, err := uc.bookService.GetBook(ctx, id)
	if err != nil {
		return nil, err
	}
	return toBookDTO(b), nil
}
