package quiz

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestComputeQuotas 验证定额分配算法的各种分布
func TestComputeQuotas(t *testing.T) {
	tests := []struct {
		name          string
		projects      int
		skills        int
		hasExperience bool
		hasEducation  bool
		want          Allocation
	}{
		{
			// 无项目、5个技能且有经历教育：技能类每题预留2个名额，
			// 经历教育分不到名额，缺口由生成阶段的软技能补齐
			name:     "五技能无项目",
			projects: 0, skills: 5, hasExperience: true, hasEducation: true,
			want: Allocation{Project: 0, Skill: 5, Experience: 0, Education: 0, SoftSkill: 0},
		},
		{
			name:     "典型分布",
			projects: 2, skills: 8, hasExperience: true, hasEducation: true,
			want: Allocation{Project: 4, Skill: 3, Experience: 0, Education: 0, SoftSkill: 0},
		},
		{
			name:     "项目占满全部名额",
			projects: 5, skills: 10, hasExperience: true, hasEducation: true,
			want: Allocation{Project: 10},
		},
		{
			name:     "项目超过上限截断到5个",
			projects: 7, skills: 3, hasExperience: false, hasEducation: false,
			want: Allocation{Project: 10},
		},
		{
			name:     "全空简历全归软技能",
			projects: 0, skills: 0, hasExperience: false, hasEducation: false,
			want: Allocation{SoftSkill: 10},
		},
		{
			name:     "单项目少技能",
			projects: 1, skills: 2, hasExperience: true, hasEducation: true,
			want: Allocation{Project: 2, Skill: 2, Experience: 2, Education: 1, SoftSkill: 1},
		},
		{
			name:     "三项目两技能",
			projects: 3, skills: 2, hasExperience: true, hasEducation: true,
			want: Allocation{Project: 6, Skill: 2, Experience: 0, Education: 0, SoftSkill: 0},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := computeQuotas(tt.projects, tt.skills, tt.hasExperience, tt.hasEducation)
			assert.Equal(t, tt.want, got)
		})
	}
}
