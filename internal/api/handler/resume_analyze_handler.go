package handler

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/cloudwego/hertz/pkg/protocol/consts"
	"github.com/gofrs/uuid/v5"

	"resume-quiz-go/internal/config"
	"resume-quiz-go/internal/logger"
	"resume-quiz-go/internal/processor"
	"resume-quiz-go/internal/types"
)

// 错误响应的type字段取值
const (
	ErrorTypeUpload     = "upload_error"
	ErrorTypeValidation = "validation_error"
	ErrorTypeSize       = "size_error"
	ErrorTypeProcessing = "processing_error"
)

// AnalyzeHandler 简历分析处理器，负责落盘、调用分析流程与组装响应
type AnalyzeHandler struct {
	cfg      *config.Config
	analyzer *processor.ResumeAnalyzer
}

// NewAnalyzeHandler 创建一个新的简历分析处理器
func NewAnalyzeHandler(cfg *config.Config, analyzer *processor.ResumeAnalyzer) *AnalyzeHandler {
	return &AnalyzeHandler{
		cfg:      cfg,
		analyzer: analyzer,
	}
}

// AnalyzeResponse 分析成功响应
type AnalyzeResponse struct {
	Success   bool                  `json:"success"`
	Analysis  *types.AnalysisResult `json:"analysis"`
	Questions []string              `json:"questions"`
}

// ErrorResponse 分析失败响应
type ErrorResponse struct {
	Error string `json:"error"`
	Type  string `json:"type"`
}

// HandleResumeAnalyze 处理一次简历分析请求。
// 上传内容先写到临时文件，分析结束后无论成败都删除临时文件
// （KeepFailedUploads打开时保留失败件用于排查）。
// 返回HTTP状态码与响应体，由路由层负责序列化
func (h *AnalyzeHandler) HandleResumeAnalyze(ctx context.Context, reader io.Reader, filename string) (int, interface{}) {
	filePath, err := h.saveUpload(reader, filename)
	if err != nil {
		logger.Error().Err(err).Str("filename", filename).Msg("保存上传文件失败")
		return consts.StatusInternalServerError, ErrorResponse{
			Error: "An error occurred while processing your resume. Please try again.",
			Type:  ErrorTypeProcessing,
		}
	}

	report := h.analyzer.Analyze(ctx, filePath)
	h.cleanupUpload(filePath, report)

	if report.IsValid() {
		return consts.StatusOK, AnalyzeResponse{
			Success:   true,
			Analysis:  report.Result,
			Questions: report.Questions,
		}
	}

	status := consts.StatusBadRequest
	errType := ErrorTypeValidation
	if report.Rejection.Category == types.CategoryProcessing {
		status = consts.StatusInternalServerError
		errType = ErrorTypeProcessing
	}
	return status, ErrorResponse{
		Error: report.Rejection.Message,
		Type:  errType,
	}
}

// saveUpload 把上传内容写到以UUIDv7命名的临时文件
func (h *AnalyzeHandler) saveUpload(reader io.Reader, filename string) (string, error) {
	if err := os.MkdirAll(h.cfg.Upload.Dir, 0o755); err != nil {
		return "", fmt.Errorf("创建上传目录失败: %w", err)
	}

	uuidV7, err := uuid.NewV7()
	if err != nil {
		return "", fmt.Errorf("生成UUIDv7失败: %w", err)
	}
	ext := filepath.Ext(filename)
	if ext == "" {
		ext = ".pdf"
	}
	filePath := filepath.Join(h.cfg.Upload.Dir, uuidV7.String()+ext)

	dst, err := os.Create(filePath)
	if err != nil {
		return "", fmt.Errorf("创建临时文件失败: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, reader); err != nil {
		os.Remove(filePath)
		return "", fmt.Errorf("写入临时文件失败: %w", err)
	}
	return filePath, nil
}

// cleanupUpload 删除临时文件。失败件在开关打开时保留
func (h *AnalyzeHandler) cleanupUpload(filePath string, report *types.AnalysisReport) {
	if !report.IsValid() && h.cfg.Upload.KeepFailedUploads {
		logger.Debug().Str("file", filePath).Msg("保留分析失败的上传文件")
		return
	}
	if err := os.Remove(filePath); err != nil {
		logger.Warn().Err(err).Str("file", filePath).Msg("删除临时文件失败")
	}
}
