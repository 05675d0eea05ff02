package handler

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/cloudwego/hertz/pkg/protocol/consts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"resume-quiz-go/internal/config"
	"resume-quiz-go/internal/constants"
	"resume-quiz-go/internal/processor"
	"resume-quiz-go/internal/quiz"
)

const handlerResumeText = `John Smith
Email: john.smith@example.com
Phone: 9876543210

Skills:
Python, JavaScript, React, SQL

Experience:
Software Engineer at Acme Corp
Built internal tooling in Python.

Education:
Bachelor of Technology in Computer Science, Springfield University

Projects:
1. Resume Screening System using Python and Flask
`

// stubExtractor 忽略文件内容，直接返回固定文本
type stubExtractor struct {
	text string
}

func (s *stubExtractor) ExtractText(_ context.Context, _ string) (string, error) {
	return s.text, nil
}

// panicExtractor 模拟分析过程中的内部异常
type panicExtractor struct{}

func (panicExtractor) ExtractText(_ context.Context, _ string) (string, error) {
	panic("corrupted page tree")
}

func newTestHandler(t *testing.T, extractor processor.TextExtractor, keepFailed bool) (*AnalyzeHandler, string) {
	t.Helper()
	uploadDir := t.TempDir()
	cfg := config.DefaultConfig()
	cfg.Upload.Dir = uploadDir
	cfg.Upload.KeepFailedUploads = keepFailed

	a, err := processor.NewResumeAnalyzer(
		processor.WithPrimaryExtractor(extractor),
		processor.WithQuizGenerator(quiz.NewGenerator(quiz.WithSeed(42))),
	)
	require.NoError(t, err)
	return NewAnalyzeHandler(cfg, a), uploadDir
}

func uploadDirEntries(t *testing.T, dir string) []os.DirEntry {
	t.Helper()
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	return entries
}

// TestHandleResumeAnalyzeSuccess 正常简历返回200与完整分析结果，临时文件被删除
func TestHandleResumeAnalyzeSuccess(t *testing.T) {
	h, uploadDir := newTestHandler(t, &stubExtractor{text: handlerResumeText}, false)

	status, payload := h.HandleResumeAnalyze(context.Background(), strings.NewReader("%PDF-1.4 fake"), "resume.pdf")

	assert.Equal(t, consts.StatusOK, status)
	resp, ok := payload.(AnalyzeResponse)
	require.True(t, ok)
	assert.True(t, resp.Success)
	assert.Equal(t, "John Smith", resp.Analysis.CandidateName)
	assert.Len(t, resp.Questions, constants.QuestionCount)
	assert.Empty(t, uploadDirEntries(t, uploadDir), "成功路径应删除临时文件")
}

// TestHandleResumeAnalyzeRejection 判定失败返回400，临时文件同样被删除
func TestHandleResumeAnalyzeRejection(t *testing.T) {
	h, uploadDir := newTestHandler(t, &stubExtractor{text: "Shopping list\nmilk\neggs"}, false)

	status, payload := h.HandleResumeAnalyze(context.Background(), strings.NewReader("%PDF-1.4 fake"), "list.pdf")

	assert.Equal(t, consts.StatusBadRequest, status)
	resp, ok := payload.(ErrorResponse)
	require.True(t, ok)
	assert.Equal(t, ErrorTypeValidation, resp.Type)
	assert.NotEmpty(t, resp.Error)
	assert.Empty(t, uploadDirEntries(t, uploadDir), "失败路径默认也删除临时文件")
}

// TestHandleResumeAnalyzeKeepFailedUploads 开关打开时保留失败件
func TestHandleResumeAnalyzeKeepFailedUploads(t *testing.T) {
	h, uploadDir := newTestHandler(t, &stubExtractor{text: "Shopping list\nmilk\neggs"}, true)

	status, _ := h.HandleResumeAnalyze(context.Background(), strings.NewReader("%PDF-1.4 fake"), "list.pdf")

	assert.Equal(t, consts.StatusBadRequest, status)
	entries := uploadDirEntries(t, uploadDir)
	require.Len(t, entries, 1)
	assert.Equal(t, ".pdf", filepath.Ext(entries[0].Name()))
}

// TestHandleResumeAnalyzeProcessingError 内部异常映射到500与processing_error
func TestHandleResumeAnalyzeProcessingError(t *testing.T) {
	h, uploadDir := newTestHandler(t, panicExtractor{}, false)

	status, payload := h.HandleResumeAnalyze(context.Background(), strings.NewReader("%PDF-1.4 fake"), "weird.pdf")

	assert.Equal(t, consts.StatusInternalServerError, status)
	resp, ok := payload.(ErrorResponse)
	require.True(t, ok)
	assert.Equal(t, ErrorTypeProcessing, resp.Type)
	assert.NotContains(t, resp.Error, "corrupted page tree")
	assert.Empty(t, uploadDirEntries(t, uploadDir))
}
