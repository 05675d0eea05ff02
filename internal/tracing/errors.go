package tracing

import (
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// ErrorType 定义错误类型，便于分类和过滤
type ErrorType string

const (
	// ErrorTypeHTTP HTTP层错误
	ErrorTypeHTTP ErrorType = "http"
	// ErrorTypeExtraction 文本提取错误
	ErrorTypeExtraction ErrorType = "extraction"
	// ErrorTypeValidation 文档校验/分类拒绝
	ErrorTypeValidation ErrorType = "validation"
	// ErrorTypeInternal 内部错误
	ErrorTypeInternal ErrorType = "internal"
)

// RecordError 记录错误，附带统一的错误类型属性并把span标记为失败
func RecordError(span trace.Span, err error, errorType ErrorType) {
	if span == nil || err == nil {
		return
	}

	span.RecordError(err)
	span.SetAttributes(
		attribute.String("error.type", string(errorType)),
		attribute.String("error.message", err.Error()),
	)
	span.SetStatus(codes.Error, err.Error())
}

// RecordRejection 记录一次业务拒绝。拒绝不是系统错误，span保持OK状态，
// 但原因码和类别作为属性写入便于检索
func RecordRejection(span trace.Span, reason string, category string) {
	if span == nil {
		return
	}

	span.SetAttributes(
		attribute.String("analysis.reject_reason", reason),
		attribute.String("analysis.reject_category", category),
	)
}
