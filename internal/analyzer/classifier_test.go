package analyzer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"resume-quiz-go/internal/constants"
	"resume-quiz-go/internal/types"
)

const sampleResume = `John Smith
Email: john.smith@example.com
Phone: +91 9876543210
123 Park Avenue, Springfield, IL 62704

Summary:
Software developer with a passion for building web applications.

Skills:
Python, JavaScript, React, SQL, Docker, Machine Learning

Experience:
Software Engineer at Acme Corp
Built internal tooling in Python and Go.

Education:
Bachelor of Technology in Computer Science, Springfield University

Projects:
1. Resume Screening System using Python and Flask
2. Realtime Chat Application using Node.js
`

// TestClassifyAcceptsResume 验证正常简历通过全部三道闸门
func TestClassifyAcceptsResume(t *testing.T) {
	verdict := Classify(sampleResume)

	require.True(t, verdict.Accepted)
	assert.Empty(t, verdict.Reason)
	assert.Empty(t, verdict.Message)
	for _, name := range constants.SectionNames {
		assert.True(t, verdict.Sections[name], "应检测到章节: %s", name)
	}
}

// TestClassifyRejectsOfficialLetter 验证官方信函被第一道闸门拒绝
func TestClassifyRejectsOfficialLetter(t *testing.T) {
	letter := `Dear Mr. Smith,

Congratulations! We are pleased to offer you the position of Software Engineer.
Your joining date will be 1st September. Details of your salary package are enclosed.

Yours sincerely,
HR Department`

	verdict := Classify(letter)

	require.False(t, verdict.Accepted)
	assert.Equal(t, types.ReasonNotResumeOfficialDoc, verdict.Reason)
	assert.Contains(t, verdict.Message, "official letter or notice")
}

// TestClassifyRejectsNonResumeText 验证简历信号不足被第二道闸门拒绝
func TestClassifyRejectsNonResumeText(t *testing.T) {
	verdict := Classify("Shopping list\nmilk\neggs\nbread\nbutter")

	require.False(t, verdict.Accepted)
	assert.Equal(t, types.ReasonInsufficientSignal, verdict.Reason)
	assert.Contains(t, verdict.Message, "does not look like a resume")
}

// TestClassifyRejectsMissingSections 验证缺失3个及以上章节被第三道闸门拒绝，
// 缺失章节名按固定顺序出现在提示里
func TestClassifyRejectsMissingSections(t *testing.T) {
	partial := `Resume
Objective: seeking a software role
Email: someone@example.com
Skills: Python`

	verdict := Classify(partial)

	require.False(t, verdict.Accepted)
	assert.Equal(t, types.ReasonMissingSections, verdict.Reason)
	assert.Equal(t,
		"Please enter a valid industry resume. Missing key sections: Experience, Education, Projects.",
		verdict.Message)
	assert.True(t, verdict.Sections[constants.SectionSkills])
	assert.False(t, verdict.Sections[constants.SectionExperience])
}

// TestClassifyTwoSectionsMissingStillAccepted 只缺2个章节不应触发拒绝
func TestClassifyTwoSectionsMissingStillAccepted(t *testing.T) {
	partial := `Resume
Objective: seeking a software role as a developer
Email: someone@example.com
Phone: 9876543210
Skills: Python, SQL
Education: Bachelor of Science, State University`

	verdict := Classify(partial)

	require.True(t, verdict.Accepted)
	assert.False(t, verdict.Sections[constants.SectionExperience])
	assert.False(t, verdict.Sections[constants.SectionProjects])
}
