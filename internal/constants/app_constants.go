package constants

const (
	// 应用级常量
	DefaultAnalyzerVer = "1.0" // 当前规则版本，写入响应元数据和span属性

	// QuestionCount 每次分析固定生成的面试问题数量
	QuestionCount = 10

	// MaxSkills 技能列表上限
	MaxSkills = 12
	// MaxProjects 项目列表上限
	MaxProjects = 3
	// MaxProjectsForQuestions 问题分配时参与配额计算的项目上限
	MaxProjectsForQuestions = 5
	// QuestionsPerProject 每个项目固定生成的问题数
	QuestionsPerProject = 2

	// NameScanLines 姓名提取时扫描的非空行数上限
	NameScanLines = 5

	// SectionMinContentLen 章节内容被认为"有实质内容"的最小长度
	SectionMinContentLen = 20

	// DefaultCandidateName 姓名提取失败时的占位名
	DefaultCandidateName = "Candidate"
)

// 四个预期的简历章节名，分类器与字段提取器共用
const (
	SectionExperience = "experience"
	SectionEducation  = "education"
	SectionSkills     = "skills"
	SectionProjects   = "projects"
)

// SectionNames 固定顺序的章节名列表，用于缺失章节消息的确定性输出
var SectionNames = []string{SectionExperience, SectionEducation, SectionSkills, SectionProjects}
