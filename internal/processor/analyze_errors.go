package processor

import (
	"errors"
	"fmt"
)

// 定义基础错误类型
var (
	ErrTextExtractionFailed = errors.New("提取简历文本失败")
	ErrClassificationFailed = errors.New("简历判定未通过")
	ErrAnalysisPanicked     = errors.New("简历分析过程发生异常")
)

// AnalyzeError 包含详细错误信息的自定义错误
type AnalyzeError struct {
	FilePath string
	Op       string
	BaseErr  error
	Detail   string
}

func (e *AnalyzeError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("%s (操作:%s, 文件:%s): %s", e.BaseErr, e.Op, e.FilePath, e.Detail)
	}
	return fmt.Sprintf("%s (操作:%s, 文件:%s)", e.BaseErr, e.Op, e.FilePath)
}

func (e *AnalyzeError) Unwrap() error {
	return e.BaseErr
}

// Is 实现 errors.Is 接口以支持错误比较
func (e *AnalyzeError) Is(target error) bool {
	return errors.Is(e.BaseErr, target)
}

// 错误构造函数
func NewExtractionError(filePath, detail string) error {
	return &AnalyzeError{
		FilePath: filePath,
		Op:       "extract",
		BaseErr:  ErrTextExtractionFailed,
		Detail:   detail,
	}
}

func NewPanicError(filePath, detail string) error {
	return &AnalyzeError{
		FilePath: filePath,
		Op:       "analyze",
		BaseErr:  ErrAnalysisPanicked,
		Detail:   detail,
	}
}
