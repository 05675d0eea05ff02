package quiz

import "resume-quiz-go/internal/constants"

// Allocation 各类别的问题定额。五个定额之和不超过总数，
// 生成阶段的缺口由软技能问题补齐
type Allocation struct {
	Project    int
	Skill      int
	Experience int
	Education  int
	SoftSkill  int
}

// computeQuotas 定额分配算法。
// 项目优先，每个项目固定2题，项目数超过5个时截断到5个；
// 剩余名额里技能类每题预留2个名额，经历类最多2题，教育类最多1题，
// 最后全部余量归软技能类
func computeQuotas(projectCount, skillCount int, hasExperience, hasEducation bool) Allocation {
	var alloc Allocation

	if projectCount > constants.MaxProjectsForQuestions {
		projectCount = constants.MaxProjectsForQuestions
	}
	alloc.Project = projectCount * constants.QuestionsPerProject
	remaining := constants.QuestionCount - alloc.Project
	if remaining < 0 {
		alloc.Project = constants.QuestionCount
		remaining = 0
	}

	if skillCount > 0 && remaining > 0 {
		alloc.Skill = min(skillCount, remaining/2)
		remaining -= alloc.Skill * 2
	}
	if hasExperience && remaining > 0 {
		alloc.Experience = min(2, remaining/2)
		remaining -= alloc.Experience
	}
	if hasEducation && remaining > 0 {
		alloc.Education = min(1, remaining)
		remaining -= alloc.Education
	}
	alloc.SoftSkill = remaining
	return alloc
}
