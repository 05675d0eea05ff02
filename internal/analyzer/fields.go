package analyzer

import (
	"regexp"
	"strings"

	"resume-quiz-go/internal/constants"
)

// ExtractName 从文本头部提取候选人姓名。
// 只扫描前几个非空行：不超过4个词、仅字母/空格/句点、
// 且不含联系方式关键词的行即视为姓名。找不到则返回默认占位名
func ExtractName(text string) string {
	scanned := 0
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		scanned++
		if scanned > constants.NameScanLines {
			break
		}
		if isNameLine(line) {
			return normalizeSpaces(line)
		}
	}
	return constants.DefaultCandidateName
}

func isNameLine(line string) bool {
	if len(line) <= 2 || !namePattern.MatchString(line) {
		return false
	}
	if len(strings.Fields(line)) > 4 {
		return false
	}
	lowered := strings.ToLower(line)
	for _, noise := range nameNoiseKeywords {
		if strings.Contains(lowered, noise) {
			return false
		}
	}
	return true
}

// ExtractSectionText 按关键词提取某一章节的正文。
// 每个关键词依次尝试三种定位策略：行首"关键词:"标题、
// 独占一行的裸标题、行内"关键词: 内容"。
// 第一个清理后长度超过阈值的结果胜出，全部失败则返回空串
func ExtractSectionText(text string, keywords []string) string {
	for _, keyword := range keywords {
		for _, locate := range sectionStrategies {
			content, ok := locate(text, keyword)
			if !ok {
				continue
			}
			cleaned := cleanSectionContent(content)
			if len(cleaned) > constants.SectionMinContentLen {
				return cleaned
			}
		}
	}
	return ""
}

type sectionStrategy func(text, keyword string) (string, bool)

var sectionStrategies = []sectionStrategy{
	locateHeaderColon,
	locateHeaderLine,
	locateInline,
}

// locateHeaderColon 定位形如 "Experience:" 的标题行，取其后至下一标题前的内容
func locateHeaderColon(text, keyword string) (string, bool) {
	re := regexp.MustCompile(`(?im)^[ \t]*` + regexp.QuoteMeta(keyword) + `[ \t]*:`)
	loc := re.FindStringIndex(text)
	if loc == nil {
		return "", false
	}
	return collectUntilNextHeader(text[loc[1]:]), true
}

// locateHeaderLine 定位独占一行、不带冒号的裸标题
func locateHeaderLine(text, keyword string) (string, bool) {
	re := regexp.MustCompile(`(?im)^[ \t]*` + regexp.QuoteMeta(keyword) + `[ \t]*$`)
	loc := re.FindStringIndex(text)
	if loc == nil {
		return "", false
	}
	return collectUntilNextHeader(text[loc[1]:]), true
}

// locateInline 定位行内任意位置的 "关键词: 内容" 或 "关键词 内容"
func locateInline(text, keyword string) (string, bool) {
	re := regexp.MustCompile(`(?i)` + regexp.QuoteMeta(keyword) + `[:\s]+`)
	loc := re.FindStringIndex(text)
	if loc == nil {
		return "", false
	}
	return collectUntilNextHeader(text[loc[1]:]), true
}

// sectionHeaderPattern 下一章节标题：冒号结尾的大写开头短行，或全大写短行
var sectionHeaderPattern = regexp.MustCompile(`^[ \t]*([A-Z][A-Za-z &/]{0,38}:|[A-Z][A-Z &/]{2,38})[ \t]*$`)

// collectUntilNextHeader 逐行收集内容，遇到下一个章节标题行即停止
func collectUntilNextHeader(text string) string {
	var collected []string
	for i, line := range strings.Split(text, "\n") {
		// 首行是标题所在行的残余，原样保留
		if i > 0 && sectionHeaderPattern.MatchString(line) {
			break
		}
		collected = append(collected, line)
	}
	return strings.Join(collected, "\n")
}

// cleanSectionContent 去掉空行，并把每行内部的连续空白压成单个空格
func cleanSectionContent(content string) string {
	var lines []string
	for _, line := range strings.Split(content, "\n") {
		line = normalizeSpaces(line)
		if line != "" {
			lines = append(lines, line)
		}
	}
	return strings.Join(lines, "\n")
}

func normalizeSpaces(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// ExtractEducation 提取教育经历文本。
// 章节命中时保留清理后的原始行结构，
// 章节缺失时回退为全篇扫描学历关键词句子
func ExtractEducation(text string) string {
	section := ExtractSectionText(text, sectionKeywords[constants.SectionEducation])
	if section != "" {
		return section
	}
	sentences := degreePattern.FindAllString(text, -1)
	if len(sentences) == 0 {
		return ""
	}
	for i, s := range sentences {
		sentences[i] = normalizeSpaces(s)
	}
	return strings.Join(sentences, ". ")
}

// ExtractExperience 提取工作经历文本。
// 章节命中时保留清理后的原始行结构，
// 章节缺失时回退为按职位关键词逐行捞取上下文
func ExtractExperience(text string) string {
	section := ExtractSectionText(text, sectionKeywords[constants.SectionExperience])
	if section != "" {
		return section
	}

	lines := strings.Split(text, "\n")
	var collected []string
	for i := 0; i < len(lines); i++ {
		line := strings.TrimSpace(lines[i])
		if line == "" || !jobTitlePattern.MatchString(line) {
			continue
		}
		collected = append(collected, normalizeSpaces(line))
		// 带上职位行之后最多3个有实质内容的上下文行
		taken := 0
		for j := i + 1; j < len(lines) && taken < 3; j++ {
			follow := strings.TrimSpace(lines[j])
			if len(follow) <= 5 {
				continue
			}
			if jobTitlePattern.MatchString(follow) {
				break
			}
			collected = append(collected, normalizeSpaces(follow))
			taken++
			i = j
		}
	}
	if len(collected) == 0 {
		return ""
	}
	return punctuationSpacing(strings.Join(collected, " "))
}

var punctuationRunPattern = regexp.MustCompile(`([.!?])\s*`)

// punctuationSpacing 保证句末标点后恰好一个空格
func punctuationSpacing(s string) string {
	return strings.TrimSpace(punctuationRunPattern.ReplaceAllString(s, "$1 "))
}
