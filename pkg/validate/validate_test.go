package validate

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	apperrors "github.com/guyidk/BookTrack-DevOps-Project/pkg/errors"
)

// TestISBN 测试ISBN-10/ISBN-13校验位算法
func TestISBN(t *testing.T) {
	tests := []struct {
		name string
		isbn string
		want bool
	}{
		// ISBN-10
		{"合法ISBN-10", "0306406152", true},
		{"合法ISBN-10带X校验位", "156881111X", true},
		{"合法ISBN-10带连字符", "0-306-40615-2", true},
		{"ISBN-10校验位错误", "0306406153", false},
		{"ISBN-10校验位是其他字母", "123456789Y", false},
		{"ISBN-10前9位含字母", "03064A6152", false},
		{"ISBN-10小写x不是合法校验位", "156881111x", false},
		// ISBN-13
		{"合法ISBN-13", "9780306406157", true},
		{"合法ISBN-13带连字符", "978-0-306-40615-7", true},
		{"ISBN-13校验位错误", "9780306406158", false},
		{"ISBN-13含字母", "978030640615X", false},
		// 其他长度
		{"空字符串", "", false},
		{"9位", "030640615", false},
		{"11位", "03064061521", false},
		{"12位", "978030640615", false},
		{"14位", "97803064061570", false},
		{"只有连字符", "---", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ISBN(tt.isbn), "ISBN(%q)", tt.isbn)
		})
	}
}

// TestTitle 测试书名长度校验(边界值100)
func TestTitle(t *testing.T) {
	t.Run("空书名合法", func(t *testing.T) {
		assert.NoError(t, Title(""))
	})

	t.Run("恰好100字符合法", func(t *testing.T) {
		assert.NoError(t, Title(strings.Repeat("a", 100)))
	})

	t.Run("101字符返回错误", func(t *testing.T) {
		err := Title(strings.Repeat("a", 101))
		assert.ErrorIs(t, err, ErrTitleTooLong)
		assert.Equal(t, "Title must be 100 characters or fewer.", apperrors.GetAppError(err).Message)
	})
}

// TestAuthor 测试作者长度校验(边界值150)
func TestAuthor(t *testing.T) {
	t.Run("恰好150字符合法", func(t *testing.T) {
		assert.NoError(t, Author(strings.Repeat("b", 150)))
	})

	t.Run("151字符返回错误", func(t *testing.T) {
		err := Author(strings.Repeat("b", 151))
		assert.ErrorIs(t, err, ErrAuthorTooLong)
		assert.Equal(t, "Author name must be 150 characters or fewer.", apperrors.GetAppError(err).Message)
	})
}

// TestAvailableCopies 测试在库数量校验(0是合法边界)
func TestAvailableCopies(t *testing.T) {
	t.Run("0合法", func(t *testing.T) {
		assert.NoError(t, AvailableCopies(0))
	})

	t.Run("正数合法", func(t *testing.T) {
		assert.NoError(t, AvailableCopies(42))
	})

	t.Run("负数返回错误", func(t *testing.T) {
		err := AvailableCopies(-1)
		assert.ErrorIs(t, err, ErrNegativeCopies)
		assert.Equal(t, "Available copies should be more that 0", apperrors.GetAppError(err).Message)
	})
}

// TestBookID 测试文档ID格式校验
func TestBookID(t *testing.T) {
	tests := []struct {
		name string
		id   string
		want bool
	}{
		{"24位小写十六进制", "507f1f77bcf86cd799439011", true},
		{"24位大写十六进制", "507F1F77BCF86CD799439011", true},
		{"含非十六进制字符", "507f1f77bcf86cd79943901z", false},
		{"23位", "507f1f77bcf86cd79943901", false},
		{"25位", "507f1f77bcf86cd7994390111", false},
		{"空字符串", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, BookID(tt.id))
		})
	}
}
