package book

import (
	"context"

	"github.com/guyidk/BookTrack-DevOps-Project/internal/domain/book"
)

// SearchBooksUseCase 图书搜索用例
// 按书名子串匹配(不区分大小写);搜索结果不走缓存
type SearchBooksUseCase struct {
	bookService book.Service
}

// NewSearchBooksUseCase 创建搜索用例
func NewSearchBooksUseCase(bookService book.Service) *SearchBooksUseCase {
	return &SearchBooksUseCase{bookService: bookService}
}

// Execute 执行搜索
// query的必填和长度校验由HTTP层负责(错误文案属于接口契约)
func (uc *SearchBooksUseCase) Execute(ctx context.Context, query string) ([]*BookDTO, error) {
	books, err := uc.bookService.SearchBooks(ctx, query)
	if err != nil {
		return nil, err
	}
	return toBookDTOs(books), nil
}
