package errors

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestHTTPStatus 测试业务错误码到HTTP状态码的映射
func TestHTTPStatus(t *testing.T) {
	tests := []struct {
		name string
		code int
		want int
	}{
		{"图书不存在映射404", ErrCodeBookNotFound, http.StatusNotFound},
		{"通用资源不存在映射404", ErrCodeNotFound, http.StatusNotFound},
		{"参数错误映射400", ErrCodeInvalidParams, http.StatusBadRequest},
		{"重复记录映射400", ErrCodeDuplicateEntry, http.StatusBadRequest},
		{"业务错误映射400", ErrCodeBusinessError, http.StatusBadRequest},
		{"内部错误映射500", ErrCodeInternal, http.StatusInternalServerError},
		{"数据库错误映射500", ErrCodeDatabaseError, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, HTTPStatus(tt.code))
		})
	}
}

// TestWrap 测试内部错误包装
func TestWrap(t *testing.T) {
	cause := errors.New("dial tcp: connection refused")
	err := Wrap(cause, "An error occurred while updating the book.")

	assert.Equal(t, ErrCodeInternal, err.Code)
	assert.Equal(t, "An error occurred while updating the book.", err.Message)
	assert.ErrorIs(t, err, cause, "Unwrap应能追溯到原始错误")
}

// TestGetAppError 测试错误提取
func TestGetAppError(t *testing.T) {
	t.Run("AppError原样提取", func(t *testing.T) {
		orig := New(ErrCodeDuplicateEntry, "Title already exists.")
		got := GetAppError(orig)
		assert.Same(t, orig, got)
	})

	t.Run("普通错误包装为内部错误", func(t *testing.T) {
		got := GetAppError(errors.New("boom"))
		assert.Equal(t, ErrCodeInternal, got.Code)
		assert.NotContains(t, got.Message, "boom", "原始错误细节不应出现在用户文案里")
	})
}
