package book

import (
	"crypto/rand"
	"encoding/hex"
	"time"
)

// Book 图书实体(聚合根)
// 设计说明:
// 1. Book是图书聚合的根实体,库存应用中的唯一实体
// 2. ID是24位十六进制文档ID,创建时生成,之后不可变
// 3. Title作为业务唯一标识(数据库层有唯一索引兜底)
// 4. Image存base64编码后的原始图片字节,空串表示没有封面
type Book struct {
	ID              string // 文档ID(24位十六进制)
	Title           string // 书名(全局唯一)
	Author          string // 作者
	ISBN            string // ISBN号(国际标准书号)
	Genre           string // 分类(自由文本,服务端不做枚举约束)
	AvailableCopies int    // 在库数量(>=0)
	Image           string // 封面图片(base64),空串=无封面
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// NewBook 创建新图书(工厂方法)
// 参数需调用方先通过校验(书名长度、ISBN格式、库存非负)
func NewBook(title, author, isbn, genre string, availableCopies int) *Book {
	now := time.Now()
	return &Book{
		ID:              NewBookID(),
		Title:           title,
		Author:          author,
		ISBN:            isbn,
		Genre:           genre,
		AvailableCopies: availableCopies,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
}

// NewBookID 生成24位十六进制文档ID
// 12字节随机数hex编码,与既有数据的ID格式保持一致
func NewBookID() string {
	buf := make([]byte, 12)
	// crypto/rand.Read只在系统熵源不可用时失败,此时无法继续
	if _, err := rand.Read(buf); err != nil {
		panic(err)
	}
	return hex.EncodeToString(buf)
}

// ApplyUpdate 整体覆盖可编辑字段(领域行为)
// 更新流程对title/author/isbn/genre/availableCopies无条件覆盖,
// Image不在此处处理:未上传新图片时必须保留原值
func (b *Book) ApplyUpdate(title, author, isbn, genre string, availableCopies int) {
	b.Title = title
	b.Author = author
	b.ISBN = isbn
	b.Genre = genre
	b.AvailableCopies = availableCopies
	b.UpdatedAt = time.Now()
}

// ReplaceImage 覆盖封面图片
func (b *Book) ReplaceImage(base64 string) {
	b.Image = base64
	b.UpdatedAt = time.Now()
}
