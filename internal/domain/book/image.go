package book

import (
	"encoding/base64"
)

// MaxImageBytes 封面图片大小上限(16MB)
const MaxImageBytes = 16 * 1024 * 1024

// ImageUpdate 封面更新的三态结果
// 设计说明:
// "本次请求没带图片"和"带了一张图片"必须可区分:
// 未上传时Set=false,持久化阶段不得触碰已存储的封面;
// 用nil/空串表达"无变化"会和"清空封面"混淆,所以用显式标志位
type ImageUpdate struct {
	Set    bool   // true=用Base64覆盖现有封面
	Base64 string // Set为true时有效
}

// IngestImage 处理可选的上传图片
//
// 规则(顺序固定):
// 1. 未上传(provided=false) → 返回"无变化",不报错
// 2. 超过16MB → ErrImageTooLarge
// 3. 0字节 → ErrImageEmpty
// 4. 其余 → base64编码原始字节
//
// 超限检查先于空文件检查,两者互斥,顺序只影响文档和测试的可读性
func IngestImage(data []byte, provided bool) (ImageUpdate, error) {
	if !provided {
		return ImageUpdate{}, nil
	}
	if len(data) > MaxImageBytes {
		return ImageUpdate{}, ErrImageTooLarge
	}
	if len(data) == 0 {
		return ImageUpdate{}, ErrImageEmpty
	}
	return ImageUpdate{
		Set:    true,
		Base64: base64.StdEncoding.EncodeToString(data),
	}, nil
}
