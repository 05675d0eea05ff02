package processor

import (
	"time"

	"github.com/rs/zerolog"

	"resume-quiz-go/internal/quiz"
)

// AnalyzerOption 分析器选项函数类型
type AnalyzerOption func(*ResumeAnalyzer)

// WithPrimaryExtractor 设置主文本提取器
func WithPrimaryExtractor(extractor TextExtractor) AnalyzerOption {
	return func(a *ResumeAnalyzer) {
		a.primary = extractor
	}
}

// WithFallbackExtractor 设置回退文本提取器
func WithFallbackExtractor(extractor TextExtractor) AnalyzerOption {
	return func(a *ResumeAnalyzer) {
		a.fallback = extractor
	}
}

// WithQuizGenerator 设置面试问题生成器
func WithQuizGenerator(generator *quiz.Generator) AnalyzerOption {
	return func(a *ResumeAnalyzer) {
		a.generator = generator
	}
}

// WithAnalyzerLogger 设置分析器日志记录器
func WithAnalyzerLogger(logger zerolog.Logger) AnalyzerOption {
	return func(a *ResumeAnalyzer) {
		a.logger = logger
	}
}

// WithExtractTimeout 设置单次文本提取（主+回退策略合计）的超时时间，
// 0表示不限制
func WithExtractTimeout(timeout time.Duration) AnalyzerOption {
	return func(a *ResumeAnalyzer) {
		a.extractTimeout = timeout
	}
}
