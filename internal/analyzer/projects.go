package analyzer

import (
	"strings"
	"unicode"

	"resume-quiz-go/internal/constants"
)

// ExtractProjects 提取项目名列表。
// 先取项目章节文本，按大写字母开头的行切块，块首行清理后作为候选标题，
// 再走两道过滤：启发式判定"像项目名"，然后剔除残留噪声。
// 找不到任何合格项目时返回空列表，不做兜底填充
func ExtractProjects(text string) []string {
	section := ExtractSectionText(text, sectionKeywords[constants.SectionProjects])
	if section == "" {
		return nil
	}

	var projects []string
	for _, title := range candidateTitles(section) {
		if !looksLikeProject(title) {
			continue
		}
		if isResidualNoise(title) {
			continue
		}
		projects = append(projects, title)
		if len(projects) >= constants.MaxProjects {
			break
		}
	}
	return projects
}

// candidateTitles 按大写开头的行切块，每块取清理后的首行。
// 小写开头的行视为上一块的续行，不产生候选标题
func candidateTitles(section string) []string {
	var titles []string
	for _, line := range strings.Split(section, "\n") {
		stripped := bulletPrefixPattern.ReplaceAllString(line, "")
		if stripped == "" {
			continue
		}
		if unicode.IsUpper([]rune(stripped)[0]) {
			titles = append(titles, strings.TrimSpace(stripped))
		}
	}
	return titles
}

// looksLikeProject 候选标题的启发式判定：
// 长度在(20,100)区间、不以结构性/行政性噪声词开头、
// 且包含项目名词或"using <技术>"短语
func looksLikeProject(title string) bool {
	if len(title) <= 20 || len(title) >= 100 {
		return false
	}
	lowered := strings.ToLower(title)
	for _, noise := range projectStructuralNoise {
		if strings.HasPrefix(lowered, noise) {
			return false
		}
	}
	for _, noise := range projectAdminNoise {
		if strings.HasPrefix(lowered, noise) {
			return false
		}
	}
	for _, noun := range projectNouns {
		if strings.Contains(lowered, noun) {
			return true
		}
	}
	return projectUsingPattern.MatchString(title)
}

// isResidualNoise 第二道过滤：过短、行政性开头或没有内部空格的标题剔除
func isResidualNoise(title string) bool {
	if len(title) <= 25 {
		return true
	}
	lowered := strings.ToLower(title)
	if strings.HasPrefix(lowered, "academic") || strings.HasPrefix(lowered, "department") {
		return true
	}
	return !strings.Contains(strings.TrimSpace(title), " ")
}
