package parser

import (
	"context"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/dslipak/pdf"
)

// PagePDFTextExtractor 回退提取策略：逐页读取文本，页与页之间用换行符连接。
// 仅当主策略产出空文本时由上层调用
type PagePDFTextExtractor struct {
	logger *log.Logger
}

// PagePDFOption 回退提取器的配置选项
type PagePDFOption func(*PagePDFTextExtractor)

// WithPageLogger 配置自定义日志记录器
func WithPageLogger(logger *log.Logger) PagePDFOption {
	return func(p *PagePDFTextExtractor) {
		p.logger = logger
	}
}

// NewPagePDFTextExtractor 初始化逐页PDF文本提取器
func NewPagePDFTextExtractor(options ...PagePDFOption) *PagePDFTextExtractor {
	extractor := &PagePDFTextExtractor{
		logger: log.New(os.Stderr, "[PDF回退解析器] ", log.LstdFlags),
	}

	for _, option := range options {
		option(extractor)
	}

	return extractor
}

// ExtractText 实现 processor.TextExtractor 接口，逐页提取文本。
// 空白页跳过，非空页的文本按页序用换行符连接
func (p *PagePDFTextExtractor) ExtractText(ctx context.Context, filePath string) (string, error) {
	reader, err := pdf.Open(filePath)
	if err != nil {
		return "", fmt.Errorf("打开PDF文件 %s 失败: %w", filePath, err)
	}

	var pages []string
	numPages := reader.NumPage()
	for i := 1; i <= numPages; i++ {
		// 上层可通过ctx限制整体提取时长
		select {
		case <-ctx.Done():
			return "", ctx.Err()
		default:
		}

		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}

		text, err := page.GetPlainText(nil)
		if err != nil {
			p.logger.Printf("第 %d 页提取失败: %v", i, err)
			continue
		}
		if text != "" {
			pages = append(pages, text)
		}
	}

	if len(pages) == 0 {
		return "", nil
	}

	p.logger.Printf("回退策略提取完成: %d 页非空", len(pages))
	return strings.Join(pages, "\n"), nil
}
