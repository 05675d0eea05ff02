package quiz

import (
	"regexp"
	"strings"
)

// 问题实体抽取：从经历/教育文本里挖出可填进模板的职位与学历短语。
// 抽取失败返回空列表，调用方降级处理，不报错

const (
	maxPositions = 3
	maxDegrees   = 2
)

// positionPatterns 职位短语模式，按具体到宽泛的顺序排列
var positionPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\b(software|web|mobile|frontend|backend|full-stack|data|machine learning|ai|devops|cloud)\s+(developer|engineer|architect|analyst|scientist)\b`),
	regexp.MustCompile(`(?i)\b(senior|junior|lead|principal|associate)\s+\w+\s+(developer|engineer|analyst|manager)\b`),
	regexp.MustCompile(`(?i)\b(project|product|engineering|technical|development)\s+(manager|lead|coordinator)\b`),
	regexp.MustCompile(`(?i)\b(intern|trainee|consultant|specialist)\b`),
	regexp.MustCompile(`(?i)\b(developer|engineer|analyst|manager|coordinator|specialist|consultant|architect|designer)\b`),
}

// degreePatterns 学历短语模式，整体匹配作为学历标签
var degreePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\b(bachelor|master|phd|doctorate)(\s+of\s+(science|arts|engineering|technology)|\s+of|\s+in)?\s+[^.\n,]+`),
	regexp.MustCompile(`(?i)\b(b\.?(sc|tech|com|e|a)|m\.?(sc|tech|com|e|a)|associate)\b\.?\s+[^.\n,]+`),
	regexp.MustCompile(`(?i)\b(diploma|certificate)\s+in\s+[^.\n,]+`),
}

// ExtractPositions 从经历文本里抽取职位短语，首次出现顺序去重，最多3个
func ExtractPositions(experience string) []string {
	if experience == "" {
		return nil
	}
	var positions []string
	seen := make(map[string]bool)
	for _, pattern := range positionPatterns {
		for _, match := range pattern.FindAllString(experience, -1) {
			position := titleWords(match)
			if seen[position] {
				continue
			}
			seen[position] = true
			positions = append(positions, position)
			if len(positions) >= maxPositions {
				return positions
			}
		}
	}
	return positions
}

// ExtractDegrees 从教育文本里抽取学历短语，首次出现顺序去重，最多2个
func ExtractDegrees(education string) []string {
	if education == "" {
		return nil
	}
	var degrees []string
	seen := make(map[string]bool)
	for _, pattern := range degreePatterns {
		for _, match := range pattern.FindAllString(education, -1) {
			degree := titleWords(match)
			if seen[degree] {
				continue
			}
			seen[degree] = true
			degrees = append(degrees, degree)
			if len(degrees) >= maxDegrees {
				return degrees
			}
		}
	}
	return degrees
}

// cleanBulletPattern 项目名前导的编号与符号
var cleanBulletPattern = regexp.MustCompile(`^[\d.)•*\-\s]+`)

// CleanProjectName 清理项目名：去掉前导编号，取首行首句，超长截断加省略号
func CleanProjectName(project string) string {
	project = cleanBulletPattern.ReplaceAllString(project, "")
	if idx := strings.IndexByte(project, '\n'); idx >= 0 {
		project = project[:idx]
	}
	if idx := strings.IndexByte(project, '.'); idx >= 0 {
		project = project[:idx]
	}
	if len(project) > 60 {
		project = project[:60] + "..."
	}
	return strings.TrimSpace(project)
}

func titleWords(s string) string {
	words := strings.Fields(strings.ToLower(s))
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
