package dto

import (
	"time"

	appbook "github.com/guyidk/BookTrack-DevOps-Project/internal/application/book"
)

// BookPayload HTTP图书响应体
// 字段名是对外契约:availableCopies为camelCase,image无封面时省略
type BookPayload struct {
	ID              string    `json:"id" example:"65a1f0c2b3d4e5f601234567"`
	Title           string    `json:"title" example:"The Pragmatic Programmer"`
	Author          string    `json:"author" example:"Andrew Hunt"`
	ISBN            string    `json:"isbn" example:"9780306406157"`
	Genre           string    `json:"genre" example:"Technology"`
	AvailableCopies int       `json:"availableCopies" example:"10"`
	Image           string    `json:"image,omitempty"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

// UpdateBookResponse 更新成功响应
type UpdateBookResponse struct {
	Message string       `json:"message" example:"Book updated successfully!"`
	Book    *BookPayload `json:"book"`
}

// AddBookResponse 新增成功响应
type AddBookResponse struct {
	Message string       `json:"message" example:"Book added successfully!"`
	Book    *BookPayload `json:"book"`
}

// ErrorResponse 错误响应
type ErrorResponse struct {
	Error string `json:"error" example:"Title already exists."`
}

// FromBookDTO 应用层DTO → HTTP响应体
func FromBookDTO(b *appbook.BookDTO) *BookPayload {
	if b == nil {
		return nil
	}
	return &BookPayload{
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

// FromBookDTOs 批量转换
func FromBookDTOs(books []*appbook.BookDTO) []*BookPayload {
	out := make([]*BookPayload, len(books))
	for i, b := range books {
		out[i] = FromBookDTO(b)
	}
	return out
}
