package analyzer

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"resume-quiz-go/internal/constants"
	"resume-quiz-go/internal/types"
)

// TestExtractName 验证头部姓名提取与回退占位名
func TestExtractName(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{"首行姓名", sampleResume, "John Smith"},
		{"带中间名", "Mary Jane Watson\nEmail: mj@example.com", "Mary Jane Watson"},
		{"跳过空行", "\n\n  Alice Brown  \nPhone: 9876543210", "Alice Brown"},
		{"单个词姓名", "Madonna\nEmail: m@example.com\nPhone: 9876543210", "Madonna"},
		{"全小写姓名", "john smith\nEmail: j@example.com", "john smith"},
		{"超过4个词的行不算姓名", "A Very Long Line Of Words\nPhone: 9876543210", constants.DefaultCandidateName},
		{"含联系关键词的行不算姓名", "Email John Smith\nPhone: 9876543210", constants.DefaultCandidateName},
		{"含数字的行不算姓名", "John Smith 42\nContact: 9876543210", constants.DefaultCandidateName},
		{"空文本", "", constants.DefaultCandidateName},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExtractName(tt.text))
		})
	}
}

// TestExtractContactInfo 验证邮箱、电话、地址的提取与边界规则
func TestExtractContactInfo(t *testing.T) {
	contact := ExtractContactInfo(sampleResume)

	assert.Equal(t, "john.smith@example.com", contact.Email)
	assert.Equal(t, "+91 9876543210", contact.Phone)
	assert.Equal(t, "123 Park Avenue, Springfield, IL 62704", contact.Address)
}

func TestExtractPhoneVariants(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{"印度号带国家码", "call me at +91 9876543210 today", "+91 9876543210"},
		{"印度号国家码连写", "+919876543210", "+91 9876543210"},
		{"美国号带国家码", "reach me: +1 2125551234", "+1 2125551234"},
		{"裸印度号", "phone 9876543210 home", "+91 9876543210"},
		{"裸美国号", "phone 2125551234 home", "+1 2125551234"},
		{"11位数字不截取", "id 12345678901 end", ""},
		{"首位1不归属任何规则", "1234567890", ""},
		{"无号码", "no digits here", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, extractPhone(tt.text))
		})
	}
}

func TestExtractAddressRejectsNoise(t *testing.T) {
	// 带邮箱/URL的行绝不能当地址
	assert.Empty(t, extractAddress("john@example.com, Springfield, IL 62704"))
	assert.Empty(t, extractAddress("visit http://example.com 123 Park Avenue, Springfield, IL 62704"))
	// 没有邮编或逗号的行不算地址
	assert.Empty(t, extractAddress("123 Park Avenue Springfield Illinois"))
	// 过短的匹配不算地址
	assert.Empty(t, extractAddress("a, NY 10001"))
}

// TestExtractSkills 验证词表扫描顺序、展示形式、去重与上限
func TestExtractSkills(t *testing.T) {
	skills := ExtractSkills(sampleResume)

	assert.Equal(t, []string{
		"Python", "JavaScript", "Go", "React", "Node.js", "Flask",
		"SQL", "Docker", "Machine Learning",
	}, skills)
}

func TestExtractSkillsDisplayForms(t *testing.T) {
	skills := ExtractSkills("Worked with python, MYSQL, aws, c++ and rest apis daily.")

	assert.Equal(t, []string{"Python", "MySQL", "AWS", "C++", "REST API"}, skills)
}

func TestExtractSkillsDeduplicatesAndCaps(t *testing.T) {
	// 同一技能的不同大小写只出现一次
	skills := ExtractSkills("Python PYTHON python Java JAVA")
	assert.Equal(t, []string{"Python", "Java"}, skills)

	// 超过上限截断
	many := "python java javascript typescript go rust php ruby swift kotlin scala html css react"
	assert.Len(t, ExtractSkills(many), constants.MaxSkills)
}

func TestExtractSkillsWordBoundary(t *testing.T) {
	// "javascript" 里不应再命中 "java"
	skills := ExtractSkills("Expert in JavaScript applications")
	assert.Equal(t, []string{"JavaScript"}, skills)
}

// TestExtractSectionText 验证三种定位策略与长度阈值
func TestExtractSectionText(t *testing.T) {
	t.Run("标题冒号策略", func(t *testing.T) {
		got := ExtractSectionText(sampleResume, []string{"skills"})
		assert.Equal(t, "Python, JavaScript, React, SQL, Docker, Machine Learning", got)
	})

	t.Run("裸标题行策略", func(t *testing.T) {
		text := "Education\nBachelor of Science in Physics, State University\n\nSKILLS:\nPython"
		got := ExtractSectionText(text, []string{"education"})
		assert.Equal(t, "Bachelor of Science in Physics, State University", got)
	})

	t.Run("行内策略", func(t *testing.T) {
		text := "my education background covers a Bachelor of Arts from City College"
		got := ExtractSectionText(text, []string{"education"})
		assert.Contains(t, got, "Bachelor of Arts from City College")
	})

	t.Run("内容过短返回空", func(t *testing.T) {
		got := ExtractSectionText("Skills:\nPython\n\nEDUCATION", []string{"skills"})
		assert.Empty(t, got)
	})

	t.Run("在下一标题处截断", func(t *testing.T) {
		got := ExtractSectionText(sampleResume, []string{"experience"})
		assert.NotContains(t, got, "Bachelor")
	})
}

// TestExtractSectionKeepsLineStructure 章节路径保留行结构，
// 只去空行并压缩行内空白
func TestExtractSectionKeepsLineStructure(t *testing.T) {
	t.Run("教育", func(t *testing.T) {
		text := "Education:\nBachelor of Science  in Physics,   State University\n\nGraduated May 2020 with honors\n\nSkills:\nPython"
		got := ExtractEducation(text)
		assert.Equal(t, "Bachelor of Science in Physics, State University\nGraduated May 2020 with honors", got)
	})

	t.Run("经历", func(t *testing.T) {
		text := "Experience:\nSoftware Engineer at Acme Corp\nBuilt internal tooling in Python.\n\nEducation:\nBachelor of Science"
		got := ExtractExperience(text)
		assert.Equal(t, "Software Engineer at Acme Corp\nBuilt internal tooling in Python.", got)
	})
}

// TestExtractEducationFallback 教育章节缺失时按学历关键词句子回退
func TestExtractEducationFallback(t *testing.T) {
	text := "I completed my Bachelor of Technology in 2022 and then a Master of Science in 2024"
	got := ExtractEducation(text)

	assert.Contains(t, got, "Bachelor of Technology in 2022")
	assert.Contains(t, got, "Master of Science in 2024")
}

// TestExtractExperienceFallback 经历章节缺失时按职位关键词逐行捞取
func TestExtractExperienceFallback(t *testing.T) {
	text := `Summary of background
Software Engineer at Initech
Shipped the billing pipeline rewrite.
Reduced costs by 30 percent.
Hobbies: chess`
	got := ExtractExperience(text)

	assert.Contains(t, got, "Software Engineer at Initech")
	assert.Contains(t, got, "billing pipeline rewrite")
}

// TestExtractProjects 验证项目块切分、标题清理与两道过滤
func TestExtractProjects(t *testing.T) {
	projects := ExtractProjects(sampleResume)

	require.Len(t, projects, 2)
	assert.Equal(t, "Resume Screening System using Python and Flask", projects[0])
	assert.Equal(t, "Realtime Chat Application using Node.js", projects[1])
}

func TestExtractProjectsFiltersNoise(t *testing.T) {
	text := `Projects:
Tools and technologies used in all projects below
Department of Computer Science annual showcase
Inventory Management System using Java and MySQL
ShortTitle
Academic coursework related management system records
`
	projects := ExtractProjects(text)

	require.Len(t, projects, 1)
	assert.Equal(t, "Inventory Management System using Java and MySQL", projects[0])
}

func TestExtractProjectsEmptyWithoutSection(t *testing.T) {
	assert.Empty(t, ExtractProjects("no relevant content at all"))
}

// TestSummarizeDeterministic 相同输入必须产生相同摘要
func TestSummarizeDeterministic(t *testing.T) {
	result := &types.AnalysisResult{
		CandidateName: "John Smith",
		Skills:        []string{"Python", "JavaScript", "React", "SQL", "Docker", "Git"},
		Education:     "Bachelor of Technology in Computer Science",
		Experience:    "Software Engineer at Acme Corp",
		Projects:      []string{"Resume Screening System using Python", "Realtime Chat Application"},
	}

	first := Summarize(result)
	second := Summarize(result)

	assert.Equal(t, first, second)
	assert.True(t, strings.HasPrefix(first, "John Smith is a motivated candidate"))
	assert.Contains(t, first, "strong academic foundation")
	// 技能句只展示前5项
	assert.Contains(t, first, "Python, JavaScript, React, SQL and Docker")
	assert.NotContains(t, first, "Git")
	assert.Contains(t, first, "built 2 notable projects")
	assert.Contains(t, first, "web and application development")
	assert.Contains(t, first, "well-positioned for their next role")
}

// TestSummarizeEmptyFields 各分支在字段缺失时的回退句
func TestSummarizeEmptyFields(t *testing.T) {
	result := &types.AnalysisResult{CandidateName: "Candidate"}
	summary := Summarize(result)

	assert.Contains(t, summary, "self-driven learner")
	assert.Contains(t, summary, "enthusiastic about taking on new projects")
	assert.Contains(t, summary, "emerging professional")
	assert.NotContains(t, summary, "toolkit")
}

// TestSummarizeInternBranch 含intern的经历走新人分支
func TestSummarizeInternBranch(t *testing.T) {
	result := &types.AnalysisResult{
		CandidateName: "Jane Doe",
		Experience:    "Software Intern at Globex",
	}
	assert.Contains(t, Summarize(result), "emerging professional")
}
