package quiz

// 各类别的面试问题模板池。
// 进程启动时构建一次的只读数据，所有Generator实例共享。
// 带%s占位符的模板由对应类别的实体（技能名、职位、项目名、学历）填充

var skillTemplates = []string{
	"If you had to teach %s to a junior developer, what would be your approach?",
	"What's the most complex problem you've solved using %s?",
	"How do you debug issues when working with %s?",
	"What are the performance considerations when using %s in production?",
	"Describe the learning curve you experienced with %s.",
	"What libraries or frameworks complement %s in your workflow?",
}

var projectTemplates = []string{
	"What inspired you to build %s?",
	"How did you validate the requirements for %s?",
	"What was your testing strategy for %s?",
	"How did you handle data management in %s?",
	"What performance optimizations did you implement in %s?",
	"How did you ensure user experience in %s?",
	"What security considerations did you address in %s?",
}

var experienceTemplates = []string{
	"What were your main responsibilities as a %s?",
	"What achievement are you most proud of from your time as a %s?",
	"What was the biggest challenge you faced working as a %s?",
	"How did working as a %s shape your approach to software development?",
	"What skills did you develop most during your work as a %s?",
}

var educationTemplates = []string{
	"How has your %s prepared you for a role in the industry?",
	"What coursework from your %s do you apply most in practice?",
	"What motivated you to pursue a %s?",
	"How do you connect the theory from your %s with hands-on work?",
}

// softSkillTemplates 无占位符的通用问题，也用作凑满定额的填充池
var softSkillTemplates = []string{
	"Describe a time when you had to learn a new technology quickly for a project.",
	"How do you approach breaking down complex technical problems?",
	"Tell me about a bug that took you the longest to fix.",
	"How do you balance technical debt with feature development?",
	"Describe your process for code reviews and quality assurance.",
	"How do you handle conflicting technical requirements?",
	"What's your approach to choosing between multiple technical solutions?",
	"What emerging technologies in your field excite you the most?",
	"How do you evaluate new tools before adopting them in projects?",
	"What's your perspective on current industry best practices?",
	"How do you contribute to the developer community?",
	"What resources do you use to stay current with technology trends?",
	"How do you approach technical documentation and knowledge sharing?",
	"What's your experience with agile development methodologies?",
	"How would you optimize a slow-performing application?",
	"Describe your approach to building scalable systems.",
	"How do you handle version control and collaboration in team projects?",
	"What's your strategy for handling production incidents?",
	"How do you approach API design and integration?",
	"Describe your experience with cloud platforms and deployment.",
	"How do you ensure accessibility in your applications?",
}
