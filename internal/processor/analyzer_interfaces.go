package processor

import "context"

// TextExtractor 简历文本提取接口。
// 两个实现：基于eino文档解析器的主策略与逐页读取的回退策略。
// 文件无法解析返回错误；文件可解析但不含文本时返回空串与nil错误，
// 由调用方决定是否拒绝
type TextExtractor interface {
	ExtractText(ctx context.Context, filePath string) (string, error)
}
