package processor

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"resume-quiz-go/internal/analyzer"
	"resume-quiz-go/internal/constants"
	"resume-quiz-go/internal/logger"
	"resume-quiz-go/internal/quiz"
	"resume-quiz-go/internal/tracing"
	"resume-quiz-go/internal/types"
)

// 面向用户的提示语，与拒绝原因一一对应
const (
	msgExtractionFailed = "Unable to extract text from PDF. Please ensure the file is not corrupted or password-protected."
	msgProcessingError  = "An error occurred while analyzing the resume. Please try again with a different file."
)

// ResumeAnalyzer 简历分析器，编排一次完整的分析流程：
// 文本提取（主策略失败走回退策略）、简历判定、字段提取、
// 摘要合成与面试问题生成。
// 单次调用无内部状态，同一实例可被多个请求并发使用
type ResumeAnalyzer struct {
	primary        TextExtractor
	fallback       TextExtractor
	generator      *quiz.Generator
	logger         zerolog.Logger
	extractTimeout time.Duration
}

// NewResumeAnalyzer 创建简历分析器
func NewResumeAnalyzer(opts ...AnalyzerOption) (*ResumeAnalyzer, error) {
	a := &ResumeAnalyzer{
		logger: logger.Logger.With().Str("component", "resume_analyzer").Logger(),
	}
	for _, opt := range opts {
		opt(a)
	}
	if a.primary == nil {
		return nil, fmt.Errorf("缺少主文本提取器")
	}
	if a.generator == nil {
		a.generator = quiz.NewGenerator()
	}
	return a, nil
}

// Analyze 对指定路径的简历文件执行完整分析。
// 永远返回结构化报告而不是错误：提取失败、判定不通过与内部异常
// 都折叠成报告里的拒绝信息，原始内部错误细节不外泄
func (a *ResumeAnalyzer) Analyze(ctx context.Context, filePath string) (report *types.AnalysisReport) {
	ctx, span := tracing.Tracer().Start(ctx, "processor.Analyze")
	defer span.End()

	defer func() {
		if r := recover(); r != nil {
			err := NewPanicError(filePath, fmt.Sprintf("%v", r))
			a.logger.Error().Err(err).Str("file", filePath).Msg("简历分析过程发生异常")
			tracing.RecordError(span, err, tracing.ErrorTypeInternal)
			report = &types.AnalysisReport{
				Rejection: &types.Rejection{
					Reason:   types.ReasonProcessingError,
					Category: types.CategoryProcessing,
					Message:  msgProcessingError,
				},
			}
		}
	}()

	text := strings.TrimSpace(a.extractText(ctx, span, filePath))
	if text == "" {
		a.logger.Warn().Str("file", filePath).Msg("两种提取策略均未得到文本，拒绝处理")
		tracing.RecordRejection(span, string(types.ReasonExtractionFailed), string(types.CategoryUnreadable))
		return &types.AnalysisReport{
			Rejection: &types.Rejection{
				Reason:   types.ReasonExtractionFailed,
				Category: types.CategoryUnreadable,
				Message:  msgExtractionFailed,
			},
		}
	}

	verdict := analyzer.Classify(text)
	if !verdict.Accepted {
		category := types.CategoryNotResume
		if verdict.Reason == types.ReasonMissingSections {
			category = types.CategoryMissingSections
		}
		a.logger.Info().
			Str("file", filePath).
			Str("reason", string(verdict.Reason)).
			Msg("简历判定未通过")
		tracing.RecordRejection(span, string(verdict.Reason), string(category))
		return &types.AnalysisReport{
			Rejection: &types.Rejection{
				Reason:   verdict.Reason,
				Category: category,
				Message:  verdict.Message,
			},
		}
	}

	result := a.extractFields(text, verdict)
	questions := a.generator.Generate(result)

	span.SetAttributes(
		attribute.String("resume.analyzer_version", constants.DefaultAnalyzerVer),
		attribute.String("resume.candidate_name", tracing.SafeAttributeValue("candidate_name", result.CandidateName, tracing.DefaultMaxLength)),
		attribute.Int("resume.skill_count", len(result.Skills)),
		attribute.Int("resume.project_count", len(result.Projects)),
		attribute.Int("resume.question_count", len(questions)),
	)
	a.logger.Info().
		Str("file", filePath).
		Int("skills", len(result.Skills)).
		Int("projects", len(result.Projects)).
		Int("questions", len(questions)).
		Msg("简历分析完成")

	return &types.AnalysisReport{
		Result:    result,
		Questions: questions,
	}
}

// extractText 文本提取：主策略失败或为空时走回退策略
func (a *ResumeAnalyzer) extractText(ctx context.Context, span trace.Span, filePath string) string {
	if a.extractTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, a.extractTimeout)
		defer cancel()
	}
	if a.primary != nil {
		text, err := a.primary.ExtractText(ctx, filePath)
		if err == nil && strings.TrimSpace(text) != "" {
			span.SetAttributes(attribute.String("resume.extract_strategy", "primary"))
			return text
		}
		if err != nil {
			a.logger.Debug().Err(err).Str("file", filePath).Msg("主提取策略失败，尝试回退策略")
			tracing.RecordError(span, NewExtractionError(filePath, err.Error()), tracing.ErrorTypeExtraction)
		}
	}
	if a.fallback == nil {
		return ""
	}
	text, err := a.fallback.ExtractText(ctx, filePath)
	if err != nil {
		a.logger.Debug().Err(err).Str("file", filePath).Msg("回退提取策略失败")
		return ""
	}
	span.SetAttributes(attribute.String("resume.extract_strategy", "fallback"))
	return text
}

// extractFields 字段提取与摘要合成。
// 单个字段提取不到只会留空，不会让整个分析失败
func (a *ResumeAnalyzer) extractFields(text string, verdict types.ClassificationVerdict) *types.AnalysisResult {
	result := &types.AnalysisResult{
		CandidateName: analyzer.ExtractName(text),
		Contact:       analyzer.ExtractContactInfo(text),
		Skills:        analyzer.ExtractSkills(text),
		Education:     analyzer.ExtractEducation(text),
		Experience:    analyzer.ExtractExperience(text),
		Projects:      analyzer.ExtractProjects(text),
		Sections:      verdict.Sections,
		FullText:      text,
	}
	result.Summary = analyzer.Summarize(result)
	return result
}
