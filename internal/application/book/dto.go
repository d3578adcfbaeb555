package book

import (
	"time"

	"github.com/guyidk/BookTrack-DevOps-Project/internal/domain/book"
)

// BookDTO 图书响应DTO
// 字段名与对外JSON契约一致(availableCopies为camelCase)
type BookDTO struct {
	ID              string    `json:"id"`
	Title           string    `json:"title"`
	Author          string    `json:"author"`
	ISBN            string    `json:"isbn"`
	Genre           string    `json:"genre"`
	AvailableCopies int       `json:"availableCopies"`
	Image           string    `json:"image,omitempty"` // base64,无封面时省略
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

// toBookDTO 领域实体 → 响应DTO
func toBookDTO(b *book.Book) *BookDTO {
	return &BookDTO{
		ID:              b.ID,
		Title:           b.Title,
		Author:          b.Author,
		ISBN:            b.ISBN,
		Genre:           b.Genre,
		AvailableCopies: b.AvailableCopies,
		Image:           b.Image,
		CreatedAt:       b.CreatedAt,
		UpdatedAt:       b.UpdatedAt,
	}
}

// toBookDTOs 批量转换
func toBookDTOs(books []*book.Book) []*BookDTO {
	out := make([]*BookDTO, len(books))
	for i, b := range books {
		out[i] = toBookDTO(b)
	}
	return out
}
