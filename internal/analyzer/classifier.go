package analyzer

import (
	"fmt"
	"strings"

	"resume-quiz-go/internal/constants"
	"resume-quiz-go/internal/types"
)

// Classify 对提取到的纯文本做简历判定。
// 三道闸门按顺序执行：官方信函检测、简历信号检测、章节完整性检测。
// 任何一道不通过都直接拒绝，verdict里带上拒绝原因与面向用户的提示
func Classify(text string) types.ClassificationVerdict {
	lowered := strings.ToLower(text)

	// 闸门一：命中两个及以上官方信函特征即判定为非简历文档
	officialHits := 0
	for _, indicator := range nonResumeIndicators {
		if strings.Contains(lowered, indicator) {
			officialHits++
		}
	}
	if officialHits >= 2 {
		return types.ClassificationVerdict{
			Reason:  types.ReasonNotResumeOfficialDoc,
			Message: "This document appears to be an official letter or notice, not a resume. Please upload a valid resume.",
		}
	}

	// 闸门二：简历特征模式少于3个不同命中即认为信号不足
	signalHits := 0
	for _, pattern := range resumeIndicators {
		if pattern.MatchString(text) {
			signalHits++
		}
	}
	if signalHits < 3 {
		return types.ClassificationVerdict{
			Reason:  types.ReasonInsufficientSignal,
			Message: "This document does not look like a resume. Please upload a valid industry resume.",
		}
	}

	// 闸门三：按固定顺序检查四个预期章节，缺失3个及以上则拒绝
	sections := make(map[string]bool, len(constants.SectionNames))
	var missing []string
	for _, name := range constants.SectionNames {
		found := false
		for _, keyword := range sectionKeywords[name] {
			if strings.Contains(lowered, keyword) {
				found = true
				break
			}
		}
		sections[name] = found
		if !found {
			missing = append(missing, titleCase(name))
		}
	}
	if len(missing) >= 3 {
		return types.ClassificationVerdict{
			Sections: sections,
			Reason:   types.ReasonMissingSections,
			Message: fmt.Sprintf(
				"Please enter a valid industry resume. Missing key sections: %s.",
				strings.Join(missing, ", ")),
		}
	}

	return types.ClassificationVerdict{
		Accepted: true,
		Sections: sections,
	}
}

// titleCase 首字母大写，其余保持小写。仅用于展示层的单词处理
func titleCase(word string) string {
	if word == "" {
		return word
	}
	return strings.ToUpper(word[:1]) + strings.ToLower(word[1:])
}
