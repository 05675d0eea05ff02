package tracing

import (
	"strings"
)

const (
	// DefaultMaxLength 默认最大属性长度
	DefaultMaxLength = 200

	// MaxResumeTextLength 简历文本属性最大长度
	MaxResumeTextLength = 150

	// MaxQuestionLength 面试问题属性最大长度
	MaxQuestionLength = 120
)

// maskPIILookup 需要掩码处理的属性名关键字。
// 简历属于高密度PII数据，任何命中这些关键字的属性值都必须脱敏后才能上报
var maskPIILookup = map[string]bool{
	"email":     true,
	"phone":     true,
	"address":   true,
	"name":      true,
	"candidate": true,
	"secret":    true,
	"token":     true,
	"api_key":   true,
}

// SafeAttributeValue 确保span属性值安全：
// 敏感属性名对应的值先做掩码，过长的值截断并加省略号
func SafeAttributeValue(name string, value string, maxLength int) string {
	lowerName := strings.ToLower(name)
	for keyword := range maskPIILookup {
		if strings.Contains(lowerName, keyword) {
			return MaskPII(value)
		}
	}
	return TruncateString(value, maxLength)
}

// MaskPII 对个人敏感信息做掩码：保留首尾各一个字符，中间以星号代替
func MaskPII(value string) string {
	runes := []rune(value)
	if len(runes) <= 2 {
		return "**"
	}
	return string(runes[0]) + strings.Repeat("*", len(runes)-2) + string(runes[len(runes)-1])
}

// TruncateString 截断超过maxLength的字符串并加省略号
func TruncateString(value string, maxLength int) string {
	if maxLength <= 0 {
		maxLength = DefaultMaxLength
	}
	runes := []rune(value)
	if len(runes) <= maxLength {
		return value
	}
	return string(runes[:maxLength]) + "..."
}
