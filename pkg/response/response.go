package response

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "github.com/guyidk/BookTrack-DevOps-Project/pkg/errors"
)

// 响应构造函数
// 设计说明：
// 1. 对外契约使用语义化HTTP状态码+扁平JSON体:
//    成功 → 200/201 {业务字段...}, 失败 → 4xx/5xx {"error": "提示文案"}
// 2. HTTP状态由AppError的业务错误码映射得到,handler不手写状态码
// 3. 内部错误的详细原因只进日志,响应体永远只含用户文案

// OK 200成功响应,payload由调用方组装
func OK(c *gin.Context, payload interface{}) {
	c.JSON(http.StatusOK, payload)
}

// Created 201创建成功响应
func Created(c *gin.Context, payload interface{}) {
	c.JSON(http.StatusCreated, payload)
}

// Error 错误响应(自动处理AppError)
// 用法：
//
//	book, err := updateBookUseCase.Execute(...)
//	if err != nil {
//	    response.Error(c, err)
//	    return
//	}
func Error(c *gin.Context, err error) {
	appErr := apperrors.GetAppError(err)
	c.JSON(apperrors.HTTPStatus(appErr.Code), gin.H{"error": appErr.Message})
}

// ErrorMessage 指定状态码和文案的错误响应
func ErrorMessage(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"error": message})
}

// Text 纯文本响应
// 按ID查询接口保留纯文本错误体("Invalid book ID format"等历史契约)
func Text(c *gin.Context, status int, message string) {
	c.String(status, message)
}
