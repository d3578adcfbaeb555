package book

import (
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/guyidk/BookTrack-DevOps-Project/pkg/errors"
)

// TestIngestImage 测试封面图片的三态处理
func TestIngestImage(t *testing.T) {
	t.Run("未上传时返回无变化", func(t *testing.T) {
		img, err := IngestImage(nil, false)
		require.NoError(t, err)
		assert.False(t, img.Set, "未上传不应触发封面更新")
		assert.Empty(t, img.Base64)
	})

	t.Run("未上传时忽略data内容", func(t *testing.T) {
		// provided=false优先于一切检查,即使data非空
		img, err := IngestImage([]byte("ignored"), false)
		require.NoError(t, err)
		assert.False(t, img.Set)
	})

	t.Run("恰好16MB合法", func(t *testing.T) {
		data := make([]byte, MaxImageBytes)
		img, err := IngestImage(data, true)
		require.NoError(t, err)
		assert.True(t, img.Set)
	})

	t.Run("16MB加1字节被拒绝", func(t *testing.T) {
		data := make([]byte, MaxImageBytes+1)
		_, err := IngestImage(data, true)
		assert.ErrorIs(t, err, ErrImageTooLarge)
		assert.Equal(t, "Image size should not exceed 16MB.", apperrors.GetAppError(err).Message)
	})

	t.Run("0字节文件被拒绝", func(t *testing.T) {
		_, err := IngestImage([]byte{}, true)
		assert.ErrorIs(t, err, ErrImageEmpty)
		assert.Equal(t, "Uploaded file is invalid.", apperrors.GetAppError(err).Message)
	})

	t.Run("正常图片做base64编码", func(t *testing.T) {
		raw := []byte{0xFF, 0xD8, 0xFF, 0xE0} // JPEG魔数
		img, err := IngestImage(raw, true)
		require.NoError(t, err)
		assert.True(t, img.Set)
		assert.Equal(t, base64.StdEncoding.EncodeToString(raw), img.Base64)

		decoded, err := base64.StdEncoding.DecodeString(img.Base64)
		require.NoError(t, err)
		assert.Equal(t, raw, decoded, "编码应可无损还原")
	})

	t.Run("单字节文件合法", func(t *testing.T) {
		img, err := IngestImage([]byte{0x01}, true)
		require.NoError(t, err)
		assert.True(t, img.Set)
	})
}
