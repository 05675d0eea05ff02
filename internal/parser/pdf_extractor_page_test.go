package parser

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestPageExtractorMissingFile 文件不存在时返回错误而不是空文本
func TestPageExtractorMissingFile(t *testing.T) {
	extractor := NewPagePDFTextExtractor()

	text, err := extractor.ExtractText(context.Background(), filepath.Join(t.TempDir(), "missing.pdf"))

	assert.Error(t, err)
	assert.Empty(t, text)
}

// TestPageExtractorCanceledContext 已取消的上下文立即中止提取
func TestPageExtractorCanceledContext(t *testing.T) {
	extractor := NewPagePDFTextExtractor()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := extractor.ExtractText(ctx, filepath.Join(t.TempDir(), "missing.pdf"))

	assert.Error(t, err)
}
