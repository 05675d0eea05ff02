package router

import (
	"context"
	"fmt"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/app/server"
	"github.com/cloudwego/hertz/pkg/common/utils"
	"github.com/cloudwego/hertz/pkg/protocol/consts"
	"github.com/hertz-contrib/keyauth"

	"resume-quiz-go/internal/api/handler"
	"resume-quiz-go/internal/config"
)

// RegisterRoutes 注册 API 路由
func RegisterRoutes(h *server.Hertz, cfg *config.Config, analyzeHandler *handler.AnalyzeHandler) {
	api := h.Group("/api/v1")

	// 健康检查不走鉴权
	api.GET("/health", func(c context.Context, ctx *app.RequestContext) {
		ctx.JSON(consts.StatusOK, utils.H{"status": "ok"})
	})

	resume := api.Group("/resume")
	if cfg.Auth.Enabled {
		resume.Use(apiKeyMiddleware(cfg))
	}

	resume.POST("/analyze", func(c context.Context, ctx *app.RequestContext) {
		// 获取上传的文件
		fileHeader, err := ctx.FormFile("file")
		if err != nil {
			ctx.JSON(consts.StatusBadRequest, handler.ErrorResponse{
				Error: "No file uploaded. Please select a PDF file.",
				Type:  handler.ErrorTypeUpload,
			})
			return
		}
		if fileHeader.Filename == "" {
			ctx.JSON(consts.StatusBadRequest, handler.ErrorResponse{
				Error: "No file selected. Please choose a PDF file.",
				Type:  handler.ErrorTypeUpload,
			})
			return
		}
		if !cfg.Upload.ExtensionAllowed(fileHeader.Filename) {
			ctx.JSON(consts.StatusBadRequest, handler.ErrorResponse{
				Error: "Invalid file type. Only PDF files are supported.",
				Type:  handler.ErrorTypeValidation,
			})
			return
		}
		if fileHeader.Size > cfg.Upload.MaxFileSizeBytes() {
			ctx.JSON(consts.StatusRequestEntityTooLarge, handler.ErrorResponse{
				Error: fmt.Sprintf("File too large. Maximum file size is %dMB.", cfg.Upload.MaxFileSizeMB),
				Type:  handler.ErrorTypeSize,
			})
			return
		}

		// 打开文件
		file, err := fileHeader.Open()
		if err != nil {
			ctx.JSON(consts.StatusInternalServerError, handler.ErrorResponse{
				Error: "An error occurred while processing your resume. Please try again.",
				Type:  handler.ErrorTypeProcessing,
			})
			return
		}
		defer file.Close()

		status, payload := analyzeHandler.HandleResumeAnalyze(c, file, fileHeader.Filename)
		ctx.JSON(status, payload)
	})
}

// apiKeyMiddleware 基于请求头X-API-Key的简单鉴权
func apiKeyMiddleware(cfg *config.Config) app.HandlerFunc {
	return keyauth.New(
		keyauth.WithKeyLookUp("header:X-API-Key", ""),
		keyauth.WithValidator(func(ctx context.Context, c *app.RequestContext, key string) (bool, error) {
			return key == cfg.Auth.APIKey, nil
		}),
	)
}
