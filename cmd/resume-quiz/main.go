package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/cloudwego/hertz/pkg/app/server"
	hertzconfig "github.com/cloudwego/hertz/pkg/common/config"
	"github.com/cloudwego/hertz/pkg/common/hlog"
	hertzZerolog "github.com/hertz-contrib/logger/zerolog"
	hertztracing "github.com/hertz-contrib/obs-opentelemetry/tracing"
	"github.com/spf13/pflag"

	"resume-quiz-go/internal/api/handler"
	"resume-quiz-go/internal/api/router"
	"resume-quiz-go/internal/config"
	"resume-quiz-go/internal/logger"
	"resume-quiz-go/internal/parser"
	"resume-quiz-go/internal/processor"
	"resume-quiz-go/internal/quiz"
	"resume-quiz-go/internal/tracing"
)

func main() {
	var configPath string
	pflag.StringVarP(&configPath, "config", "c", "", "配置文件路径，留空则在常见位置查找")
	pflag.Parse()

	// 1. 加载配置文件
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		logger.Fatal().Err(err).Msg("加载配置文件失败")
	}

	// 2. 初始化日志系统
	initLogger(cfg)

	ctx := context.Background()

	// 3. 初始化链路追踪
	if cfg.Tracing.Enabled {
		shutdown, err := tracing.Init(ctx, tracing.Config{
			Endpoint:    cfg.Tracing.Endpoint,
			ServiceName: cfg.Tracing.ServiceName,
			SampleRatio: cfg.Tracing.SampleRatio,
		})
		if err != nil {
			logger.Fatal().Err(err).Msg("初始化链路追踪失败")
		}
		defer func() {
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := shutdown(shutdownCtx); err != nil {
				logger.Warn().Err(err).Msg("链路追踪关闭失败")
			}
		}()
	}

	// 4. 初始化分析器组件
	analyzeHandler, err := initializeHandler(ctx, cfg)
	if err != nil {
		logger.Fatal().Err(err).Msg("初始化简历分析处理器失败")
	}
	logger.Info().Msg("简历分析处理器初始化成功")

	// 5. 创建HTTP服务器
	serverOpts := []hertzconfig.Option{
		server.WithHostPorts(cfg.Server.Address),
		// 请求体上限比文件上限略宽，留出multipart封装的余量
		server.WithMaxRequestBodySize(int(cfg.Upload.MaxFileSizeBytes()) + 1<<20),
	}
	var tracerCfg *hertztracing.Config
	if cfg.Tracing.Enabled {
		tracer, tcfg := hertztracing.NewServerTracer()
		tracerCfg = tcfg
		serverOpts = append(serverOpts, tracer)
	}
	h := server.Default(serverOpts...)
	if tracerCfg != nil {
		h.Use(hertztracing.ServerMiddleware(tracerCfg))
	}

	// 6. 注册路由
	router.RegisterRoutes(h, cfg, analyzeHandler)

	// 7. 启动HTTP服务器
	go func() {
		if err := h.Run(); err != nil {
			logger.Fatal().Err(err).Msg("启动HTTP服务器失败")
		}
	}()
	logger.Info().Str("address", cfg.Server.Address).Msg("HTTP服务器已启动")

	// 8. 等待终止信号
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info().Msg("接收到终止信号，正在优雅退出...")

	// 9. 优雅关闭HTTP服务器
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := h.Shutdown(shutdownCtx); err != nil {
		logger.Fatal().Err(err).Msg("服务器关闭失败")
	}

	logger.Info().Msg("优雅退出完成")
}

// initLogger 初始化日志系统并接管hertz框架日志
func initLogger(cfg *config.Config) {
	logger.Init(cfg.Logger)
	logger.Logger = logger.Logger.With().
		Str("app", "resume-quiz-go").
		Logger()

	// hertz框架日志走同一套zerolog输出
	hlog.SetLogger(hertzZerolog.From(logger.Logger))
}

// initializeHandler 组装文本提取器、问题生成器与分析器
func initializeHandler(ctx context.Context, cfg *config.Config) (*handler.AnalyzeHandler, error) {
	primary, err := parser.NewEinoPDFTextExtractor(ctx)
	if err != nil {
		return nil, err
	}
	fallback := parser.NewPagePDFTextExtractor()

	var quizOpts []quiz.GeneratorOption
	if cfg.Quiz.Seed != 0 {
		quizOpts = append(quizOpts, quiz.WithSeed(cfg.Quiz.Seed))
	}

	resumeAnalyzer, err := processor.NewResumeAnalyzer(
		processor.WithPrimaryExtractor(primary),
		processor.WithFallbackExtractor(fallback),
		processor.WithQuizGenerator(quiz.NewGenerator(quizOpts...)),
		processor.WithExtractTimeout(time.Duration(cfg.Analyzer.ExtractTimeoutSeconds)*time.Second),
	)
	if err != nil {
		return nil, err
	}

	return handler.NewAnalyzeHandler(cfg, resumeAnalyzer), nil
}
