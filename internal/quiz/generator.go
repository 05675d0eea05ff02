package quiz

import (
	"fmt"
	"math/rand"
	"sync"
	"time"

	"resume-quiz-go/internal/constants"
	"resume-quiz-go/internal/types"
)

// Generator 面试问题生成器。
// 问题数量与类别顺序是确定性的，只有模板措辞由随机源决定。
// 内部用互斥锁保护随机源，单个实例可被多个请求并发使用
type Generator struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewGenerator 创建问题生成器，默认使用时间种子的随机源
func NewGenerator(opts ...GeneratorOption) *Generator {
	g := &Generator{
		rng: rand.New(rand.NewSource(time.Now().UnixNano())),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Generate 根据分析结果生成固定数量的面试问题。
// 生成顺序固定：项目、技能、经历、教育、软技能，拼装后绝不重排。
// 配额阶段产出不足时（如经历里提不出职位），缺口统一并入末尾的
// 软技能抽样：先无放回抽完整个池子，池子耗尽才允许重复。
// 项目问题成对生成且排在最前，问题对永远不会被拆散
func (g *Generator) Generate(result *types.AnalysisResult) []string {
	alloc := computeQuotas(
		len(result.Projects), len(result.Skills),
		result.Experience != "", result.Education != "")

	questions := make([]string, 0, constants.QuestionCount)
	questions = append(questions, g.projectQuestions(result.Projects, alloc.Project)...)
	questions = append(questions, g.skillQuestions(result.Skills, alloc.Skill)...)
	questions = append(questions, g.experienceQuestions(result.Experience, alloc.Experience)...)
	questions = append(questions, g.educationQuestions(result.Education, alloc.Education)...)

	return append(questions, g.softSkillQuestions(constants.QuestionCount-len(questions))...)
}

// projectQuestions 每个项目成对生成2个问题，同一项目内模板不重复
func (g *Generator) projectQuestions(projects []string, quota int) []string {
	pairs := quota / constants.QuestionsPerProject
	if pairs > len(projects) {
		pairs = len(projects)
	}
	var questions []string
	for _, project := range projects[:pairs] {
		name := CleanProjectName(project)
		first := g.intn(len(projectTemplates))
		second := g.intn(len(projectTemplates) - 1)
		if second >= first {
			second++
		}
		questions = append(questions,
			fmt.Sprintf(projectTemplates[first], name),
			fmt.Sprintf(projectTemplates[second], name))
	}
	return questions
}

func (g *Generator) skillQuestions(skills []string, quota int) []string {
	var questions []string
	for i := 0; i < quota && i < len(skills); i++ {
		template := skillTemplates[g.intn(len(skillTemplates))]
		questions = append(questions, fmt.Sprintf(template, skills[i]))
	}
	return questions
}

func (g *Generator) experienceQuestions(experience string, quota int) []string {
	positions := ExtractPositions(experience)
	if len(positions) == 0 {
		return nil
	}
	var questions []string
	for i := 0; i < quota; i++ {
		template := experienceTemplates[g.intn(len(experienceTemplates))]
		questions = append(questions, fmt.Sprintf(template, positions[i%len(positions)]))
	}
	return questions
}

func (g *Generator) educationQuestions(education string, quota int) []string {
	degrees := ExtractDegrees(education)
	if len(degrees) == 0 {
		return nil
	}
	var questions []string
	for i := 0; i < quota; i++ {
		template := educationTemplates[g.intn(len(educationTemplates))]
		questions = append(questions, fmt.Sprintf(template, degrees[i%len(degrees)]))
	}
	return questions
}

// softSkillQuestions 先无放回抽样，定额超过池子容量时再有放回补足
func (g *Generator) softSkillQuestions(count int) []string {
	if count <= 0 {
		return nil
	}
	var questions []string
	for _, idx := range g.perm(len(softSkillTemplates)) {
		if len(questions) >= count {
			break
		}
		questions = append(questions, softSkillTemplates[idx])
	}
	for len(questions) < count {
		questions = append(questions, softSkillTemplates[g.intn(len(softSkillTemplates))])
	}
	return questions
}

func (g *Generator) intn(n int) int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.rng.Intn(n)
}

func (g *Generator) perm(n int) []int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.rng.Perm(n)
}
