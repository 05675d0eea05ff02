package analyzer

import (
	"regexp"
	"strings"

	"resume-quiz-go/internal/types"
)

// 联系方式提取。三个字段各自独立，提取失败就留空，绝不猜测填充

var emailPattern = regexp.MustCompile(`[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}`)

// 电话匹配按优先级排列：带国家码的印度号、带国家码的美国号、
// 裸10位号按首位数字归属。所有模式都带数字边界，防止从长数字串里截取
var phoneStrategies = []struct {
	Pattern *regexp.Regexp
	Group   int
	Prefix  string
}{
	{regexp.MustCompile(`\+91[\s-]?([6-9][0-9]{9})([^0-9]|$)`), 1, "+91 "},
	{regexp.MustCompile(`\+1[\s-]?([2-9][0-9]{9})([^0-9]|$)`), 1, "+1 "},
	{regexp.MustCompile(`(^|[^0-9+])([6-9][0-9]{9})([^0-9]|$)`), 2, "+91 "},
	{regexp.MustCompile(`(^|[^0-9+])([2-5][0-9]{9})([^0-9]|$)`), 2, "+1 "},
}

// 地址匹配两种版式：门牌号开头的街道地址、"城市, 州码 邮编"
var addressPatterns = []*regexp.Regexp{
	regexp.MustCompile(`[0-9]{1,5}\s+[A-Za-z0-9 .'\-]+,\s*[A-Za-z .]+,?\s*[A-Z]{2}\s+[0-9]{5}(-[0-9]{4})?`),
	regexp.MustCompile(`[A-Za-z][A-Za-z .]+,\s*[A-Z]{2}\s+[0-9]{5}(-[0-9]{4})?`),
}

var zipPattern = regexp.MustCompile(`[0-9]{5}`)

// addressNoiseKeywords 含这些内容的行不可能是邮政地址
var addressNoiseKeywords = []string{"@", "http", "www", "email", "phone"}

// ExtractContactInfo 提取邮箱、电话与地址
func ExtractContactInfo(text string) types.ContactInfo {
	return types.ContactInfo{
		Email:   extractEmail(text),
		Phone:   extractPhone(text),
		Address: extractAddress(text),
	}
}

func extractEmail(text string) string {
	match := emailPattern.FindString(text)
	if match == "" {
		return ""
	}
	if len(match) < 5 || len(match) > 100 || strings.Count(match, "@") != 1 {
		return ""
	}
	return match
}

func extractPhone(text string) string {
	for _, strategy := range phoneStrategies {
		groups := strategy.Pattern.FindStringSubmatch(text)
		if groups != nil {
			return strategy.Prefix + groups[strategy.Group]
		}
	}
	return ""
}

func extractAddress(text string) string {
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || hasAddressNoise(line) {
			continue
		}
		for _, pattern := range addressPatterns {
			candidate := strings.TrimSpace(pattern.FindString(line))
			if candidate == "" {
				continue
			}
			if len(candidate) < 20 || len(candidate) > 80 {
				continue
			}
			if !strings.Contains(candidate, ",") || !zipPattern.MatchString(candidate) {
				continue
			}
			return candidate
		}
	}
	return ""
}

func hasAddressNoise(line string) bool {
	lowered := strings.ToLower(line)
	for _, noise := range addressNoiseKeywords {
		if strings.Contains(lowered, noise) {
			return true
		}
	}
	return false
}
