package book

import (
	apperrors "github.com/guyidk/BookTrack-DevOps-Project/pkg/errors"
)

// 图书领域错误定义
// 文案即对外契约,原样出现在HTTP响应的error字段中
var (
	// ErrBookNotFound 图书不存在
	ErrBookNotFound = apperrors.New(apperrors.ErrCodeBookNotFound, "Book not found")

	// ErrTitleDuplicate 书名已被其他图书占用
	ErrTitleDuplicate = apperrors.New(apperrors.ErrCodeDuplicateEntry, "Title already exists.")

	// ErrImageTooLarge 上传图片超过16MB
	ErrImageTooLarge = apperrors.New(apperrors.ErrCodeInvalidParams, "Image size should not exceed 16MB.")

	// ErrImageEmpty 上传了0字节文件
	ErrImageEmpty = apperrors.New(apperrors.ErrCodeInvalidParams, "Uploaded file is invalid.")

	// ErrInvalidISBN ISBN校验位不合法(仅新增流程使用,更新流程不校验ISBN)
	ErrInvalidISBN = apperrors.New(apperrors.ErrCodeInvalidParams, "Invalid ISBN. Please enter a valid ISBN-10 or ISBN-13.")
)

// 内部错误统一返回的用户文案
const (
	msgUpdateFailed = "An error occurred while updating the book."
	msgAddFailed    = "An error occurred while adding the book."
)
