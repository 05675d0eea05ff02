package analyzer

import (
	"strings"

	"resume-quiz-go/internal/constants"
)

// ExtractSkills 在全文里扫描技能词表与复合短语。
// 输出顺序由扫描顺序决定：先词表（按类别序），后复合模式。
// 展示形式按缩写表/混排表/首字母大写三级规则处理，
// 大小写不敏感去重后截断到上限
func ExtractSkills(text string) []string {
	var skills []string
	seen := make(map[string]bool)

	appendSkill := func(display string) {
		key := strings.ToLower(display)
		if seen[key] || len(skills) >= constants.MaxSkills {
			return
		}
		seen[key] = true
		skills = append(skills, display)
	}

	for _, sp := range skillWordPatterns {
		if sp.Pattern.MatchString(text) {
			appendSkill(displayForm(sp.Term))
		}
	}
	for _, cp := range compositePatterns {
		if cp.Pattern.MatchString(text) {
			appendSkill(cp.Display)
		}
	}
	return skills
}

// displayForm 词表项的对外展示形式
func displayForm(term string) string {
	if acronymDisplay[term] {
		return strings.ToUpper(term)
	}
	if display, ok := mixedCaseDisplay[term]; ok {
		return display
	}
	words := strings.Fields(term)
	for i, w := range words {
		words[i] = titleCase(w)
	}
	return strings.Join(words, " ")
}
