package analyzer

import (
	"fmt"
	"strings"

	"resume-quiz-go/internal/types"
)

// Summarize 由已提取的字段确定性地合成候选人摘要。
// 五个分支各产出一到两句话，相同输入永远得到相同摘要
func Summarize(result *types.AnalysisResult) string {
	sentences := []string{
		fmt.Sprintf("%s is a motivated candidate with a drive for building practical software.", result.CandidateName),
		educationSentence(result.Education),
	}
	if s := skillsSentence(result.Skills); s != "" {
		sentences = append(sentences, s)
	}
	sentences = append(sentences, projectSentences(result.Projects)...)
	sentences = append(sentences, experienceSentence(result.Experience))
	return strings.Join(sentences, " ")
}

func educationSentence(education string) string {
	lowered := strings.ToLower(education)
	switch {
	case strings.Contains(lowered, "bachelor") || strings.Contains(lowered, "master"):
		return "They have a strong academic foundation with formal higher education."
	case education != "":
		return "They have pursued formal education to support their technical growth."
	default:
		return "They are a self-driven learner who built their skills outside formal classrooms."
	}
}

func skillsSentence(skills []string) string {
	if len(skills) == 0 {
		return ""
	}
	shown := skills
	if len(shown) > 5 {
		shown = shown[:5]
	}
	var list string
	if len(shown) == 1 {
		list = shown[0]
	} else {
		list = strings.Join(shown[:len(shown)-1], ", ") + " and " + shown[len(shown)-1]
	}
	return fmt.Sprintf("Their technical toolkit includes %s.", list)
}

func projectSentences(projects []string) []string {
	var sentences []string
	switch {
	case len(projects) >= 2:
		sentences = append(sentences, fmt.Sprintf(
			"They have built %d notable projects including %s and %s.",
			len(projects), projects[0], projects[1]))
	case len(projects) == 1:
		sentences = append(sentences, fmt.Sprintf("They have built a project called %s.", projects[0]))
	default:
		return []string{"They are enthusiastic about taking on new projects to grow hands-on experience."}
	}

	joined := strings.ToLower(strings.Join(projects, " "))
	switch {
	case strings.Contains(joined, "machine learning") || strings.Contains(joined, "ai"):
		sentences = append(sentences, "Their project work shows a clear interest in machine learning and AI.")
	case strings.Contains(joined, "web") || strings.Contains(joined, "application"):
		sentences = append(sentences, "Their project work leans toward web and application development.")
	default:
		sentences = append(sentences, "Their project portfolio reflects diverse technical interests.")
	}
	return sentences
}

func experienceSentence(experience string) string {
	lowered := strings.ToLower(experience)
	if experience == "" || strings.Contains(lowered, "intern") {
		return "As an emerging professional, they are ready to convert their knowledge into impact."
	}
	return "With hands-on industry experience, they are well-positioned for their next role."
}
