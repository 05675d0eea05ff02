package analyzer

import (
	"regexp"

	"resume-quiz-go/internal/constants"
)

// 本文件集中存放所有固定词表与模式表。
// 全部为进程启动时构建一次的只读配置，并发调用共享，不允许修改

// nonResumeIndicators 官方信函（offer/录用函等）特征词。
// 命中其中任意两个不同的模式即可判定为非简历文档
var nonResumeIndicators = []string{
	"offer letter",
	"letter of appointment",
	"appointment letter",
	"letter of intent",
	"dear",
	"congratulations",
	"pleased to offer",
	"pleased to inform",
	"terms and conditions",
	"joining date",
	"date of joining",
	"compensation structure",
	"salary package",
	"yours sincerely",
	"yours faithfully",
	"this is to certify",
}

// resumeIndicators 简历特征模式。少于3个不同模式命中则认为简历信号不足
var resumeIndicators = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\b(resume|curriculum vitae|cv)\b`),
	regexp.MustCompile(`(?i)\b(objective|summary|profile|about me)\b`),
	regexp.MustCompile(`(?i)\b(email|phone|contact|mobile)\b`),
	regexp.MustCompile(`(?i)\b(bachelor|master|degree|university|college)\b|(?i)b\.?tech|(?i)m\.?tech`),
	regexp.MustCompile(`(?i)\b(developer|engineer|analyst|intern|consultant|manager|architect)\b`),
	regexp.MustCompile(`(?i)\b(programming|software|technical|projects?|technologies)\b`),
}

// sectionKeywords 每个预期章节的同义关键词，用于章节存在性检测与章节文本提取
var sectionKeywords = map[string][]string{
	constants.SectionExperience: {
		"experience", "work experience", "employment", "career",
		"professional experience", "work history",
	},
	constants.SectionEducation: {
		"education", "academic", "degree", "university", "college",
		"school", "qualification",
	},
	constants.SectionSkills: {
		"skills", "technical skills", "competencies", "expertise",
		"technologies", "programming",
	},
	constants.SectionProjects: {
		"projects", "project", "portfolio", "work samples", "achievements",
	},
}

// skillCategories 技能词表，按类别分组。
// 类别顺序与类别内顺序共同决定首次匹配顺序，进而决定输出顺序。
// 所有词项首尾均为单词字符，可安全加\b边界；C++/C#等特殊词由composite模式负责
var skillCategories = []struct {
	Name  string
	Terms []string
}{
	{"languages", []string{
		"python", "java", "javascript", "typescript", "go", "rust",
		"php", "ruby", "swift", "kotlin", "scala",
	}},
	{"web", []string{
		"html", "css", "react", "angular", "vue", "node.js", "express",
		"django", "flask", "spring", "laravel", "jquery", "bootstrap",
	}},
	{"databases", []string{
		"sql", "mysql", "postgresql", "mongodb", "oracle", "sqlite",
		"redis", "elasticsearch", "cassandra",
	}},
	{"cloud", []string{
		"aws", "azure", "gcp", "docker", "kubernetes", "jenkins",
		"terraform", "ansible", "linux", "nginx",
	}},
	{"datascience", []string{
		"machine learning", "deep learning", "tensorflow", "pytorch",
		"pandas", "numpy", "scikit-learn", "keras", "opencv", "nlp",
	}},
	{"tools", []string{
		"git", "github", "gitlab", "jira", "confluence", "slack",
		"postman", "maven", "gradle",
	}},
	{"mobile", []string{
		"android", "ios", "flutter", "react native", "xamarin",
	}},
	{"testing", []string{
		"selenium", "junit", "pytest", "cypress", "jest", "mocha",
	}},
}

// acronymDisplay 展示为全大写的缩写词
var acronymDisplay = map[string]bool{
	"sql": true,
	"aws": true,
	"gcp": true,
	"css": true,
	"php": true,
	"nlp": true,
}

// mixedCaseDisplay 保留原有大小写形式的词项
var mixedCaseDisplay = map[string]string{
	"html":          "HTML",
	"javascript":    "JavaScript",
	"typescript":    "TypeScript",
	"node.js":       "Node.js",
	"mysql":         "MySQL",
	"postgresql":    "PostgreSQL",
	"mongodb":       "MongoDB",
	"sqlite":        "SQLite",
	"github":        "GitHub",
	"gitlab":        "GitLab",
	"tensorflow":    "TensorFlow",
	"pytorch":       "PyTorch",
	"numpy":         "NumPy",
	"scikit-learn":  "scikit-learn",
	"opencv":        "OpenCV",
	"jquery":        "jQuery",
	"junit":         "JUnit",
	"ios":           "iOS",
	"deep learning": "Deep Learning",
}

// compositePattern 复合技术短语模式，词表无法用\b边界表达的写在这里
type compositePattern struct {
	Pattern *regexp.Regexp
	Display string
}

var compositePatterns = []compositePattern{
	{regexp.MustCompile(`(?i)c\+\+`), "C++"},
	{regexp.MustCompile(`(?i)c#`), "C#"},
	{regexp.MustCompile(`(?i)\brest\s?apis?\b`), "REST API"},
	{regexp.MustCompile(`(?i)\bci/cd\b`), "CI/CD"},
	{regexp.MustCompile(`(?i)\bmachine\s+learning\b`), "Machine Learning"},
}

// skillWordPatterns 词表项的预编译匹配模式，按类别扫描顺序排列
var skillWordPatterns = buildSkillPatterns()

type skillPattern struct {
	Term    string
	Pattern *regexp.Regexp
}

func buildSkillPatterns() []skillPattern {
	var patterns []skillPattern
	for _, category := range skillCategories {
		for _, term := range category.Terms {
			patterns = append(patterns, skillPattern{
				Term:    term,
				Pattern: regexp.MustCompile(`(?i)\b` + regexp.QuoteMeta(term) + `\b`),
			})
		}
	}
	return patterns
}

// nameNoiseKeywords 姓名候选行中不应出现的联系方式/元信息关键词
var nameNoiseKeywords = []string{"email", "phone", "address", "resume", "cv", "@", "http"}

// namePattern 姓名字符类：字母、空格与英文句点
var namePattern = regexp.MustCompile(`^[A-Za-z .]+$`)

// degreePattern 学历关键词句子模式，教育章节缺失时的回退提取
var degreePattern = regexp.MustCompile(`(?i)\b(bachelor|master|phd|doctorate|b\.?tech|m\.?tech|b\.?sc|m\.?sc|associate|diploma)\b[^.\n]*`)

// jobTitlePattern 职位关键词，经历章节缺失时的回退提取与职位抽取共用
var jobTitlePattern = regexp.MustCompile(`(?i)\b(developer|engineer|analyst|manager|coordinator|specialist|consultant|architect|designer|intern)\b`)

// projectNouns 判定候选标题"像项目"的名词
var projectNouns = []string{
	"system", "application", "platform", "tool", "analyzer",
	"generator", "classification", "management", "detection",
}

// projectUsingPattern "using <领域>" 短语，也可判定候选标题为项目
var projectUsingPattern = regexp.MustCompile(`(?i)\busing\s+\w+`)

// projectStructuralNoise 项目块里的结构性小节标题，不是项目名
var projectStructuralNoise = []string{"algorithms", "tools", "outcome", "technologies"}

// projectAdminNoise 行政性噪声，出现在标题开头则排除
var projectAdminNoise = []string{"department", "college", "university", "academic projects"}

// bulletPrefixPattern 项目标题的前导编号/符号
var bulletPrefixPattern = regexp.MustCompile(`^[\d.)•*\-\s]+`)
