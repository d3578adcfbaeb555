// Package validate 提供纯函数的输入校验
//
// 设计说明:
// 1. 服务端handler和浏览器端表单共用同一套校验规则,
//    服务端以本包为唯一实现,避免两端规则漂移
// 2. 所有函数无状态、无副作用,便于单元测试
package validate

import (
	apperrors "github.com/guyidk/BookTrack-DevOps-Project/pkg/errors"
)

// 字段长度/范围限制
const (
	MaxTitleLen  = 100 // 书名最长100字符
	MaxAuthorLen = 150 // 作者最长150字符
	BookIDLen    = 24  // 文档ID为24位十六进制
)

// 校验失败错误(文案与对外契约一致,原样返回给客户端)
var (
	ErrTitleTooLong   = apperrors.New(apperrors.ErrCodeInvalidParams, "Title must be 100 characters or fewer.")
	ErrAuthorTooLong  = apperrors.New(apperrors.ErrCodeInvalidParams, "Author name must be 150 characters or fewer.")
	ErrNegativeCopies = apperrors.New(apperrors.ErrCodeInvalidParams, "Available copies should be more that 0")
)

// Title 校验书名长度(<=100字符合法,边界值100合法)
func Title(s string) error {
	if len(s) > MaxTitleLen {
		return ErrTitleTooLong
	}
	return nil
}

// Author 校验作者长度(<=150字符合法)
func Author(s string) error {
	if len(s) > MaxAuthorLen {
		return ErrAuthorTooLong
	}
	return nil
}

// AvailableCopies 校验在库数量(>=0合法,0是合法边界)
func AvailableCopies(n int) error {
	if n < 0 {
		return ErrNegativeCopies
	}
	return nil
}

// ISBN 校验ISBN-10/ISBN-13校验位
//
// 规则:
// - 先去掉所有连字符
// - 10位: 第0-8位必须是数字,加权和为Σ(i+1)*digit;
//   第9位(校验位)允许数字(权重10)或字母X(按10计,权重10);
//   加权和模11为0则合法
// - 13位: 全部必须是数字,偶数下标权重1、奇数下标权重3,
//   加权和模10为0则合法(13位不允许X)
// - 其他长度一律不合法
func ISBN(raw string) bool {
	isbn := stripHyphens(raw)

	switch len(isbn) {
	case 10:
		sum := 0
		for i := 0; i < 9; i++ {
			c := isbn[i]
			if c < '0' || c > '9' {
				return false
			}
			sum += (i + 1) * int(c-'0')
		}
		switch checksum := isbn[9]; {
		case checksum == 'X':
			sum += 10 * 10
		case checksum >= '0' && checksum <= '9':
			sum += 10 * int(checksum-'0')
		default:
			return false
		}
		return sum%11 == 0

	case 13:
		sum := 0
		for i := 0; i < 13; i++ {
			c := isbn[i]
			if c < '0' || c > '9' {
				return false
			}
			digit := int(c - '0')
			if i%2 == 0 {
				sum += digit
			} else {
				sum += digit * 3
			}
		}
		return sum%10 == 0
	}

	return false
}

// BookID 校验文档ID格式(24位十六进制字符)
// 用于按ID查询接口,更新接口不做格式校验(存储层查不到即404)
func BookID(s string) bool {
	if len(s) != BookIDLen {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c >= '0' && c <= '9':
		case c >= 'a' && c <= 'f':
		case c >= 'A' && c <= 'F':
		default:
			return false
		}
	}
	return true
}

// stripHyphens 去掉ISBN中的连字符
func stripHyphens(s string) string {
	out := make([]byte, 0, len(s))
	for i := 0; i < len(s); i++ {
		if s[i] != '-' {
			out = append(out, s[i])
		}
	}
	return string(out)
}
