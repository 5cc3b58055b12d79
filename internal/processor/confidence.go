package processor

import (
	"cv-autofill-go/internal/types"
)

// personalInfoFieldCount 个人信息的可能字段数：姓名、邮箱、电话、地址、职业主页、作品集
const personalInfoFieldCount = 6

// ConfidenceScorer 置信度评分器
// 每个类别独立计算[0, 上限]内的分数；启发式匹配不应宣称满分，
// 因此所有分数统一乘以高置信度上限常数
type ConfidenceScorer struct {
	expectedWorkEntries      int
	expectedEducationEntries int
	expectedSkillCount       int
	ceiling                  float64
}

// NewConfidenceScorer 创建置信度评分器
func NewConfidenceScorer(expectedWork, expectedEducation, expectedSkills int, ceiling float64) *ConfidenceScorer {
	if expectedWork <= 0 {
		expectedWork = 3
	}
	if expectedEducation <= 0 {
		expectedEducation = 2
	}
	if expectedSkills <= 0 {
		expectedSkills = 10
	}
	if ceiling <= 0 || ceiling > 1 {
		ceiling = 0.8
	}
	return &ConfidenceScorer{
		expectedWorkEntries:      expectedWork,
		expectedEducationEntries: expectedEducation,
		expectedSkillCount:       expectedSkills,
		ceiling:                  ceiling,
	}
}

// Score 计算四个类别的置信度
func (s *ConfidenceScorer) Score(profile *types.ExtractedProfileData) types.ConfidenceScores {
	return types.ConfidenceScores{
		PersonalInfo:   s.scorePersonalInfo(profile.PersonalInfo),
		WorkExperience: s.scoreByCount(len(profile.WorkExperience), s.expectedWorkEntries),
		Education:      s.scoreByCount(len(profile.Education), s.expectedEducationEntries),
		Skills:         s.scoreByCount(len(profile.Skills), s.expectedSkillCount),
	}
}

// scorePersonalInfo 按已填充字段占比评分
func (s *ConfidenceScorer) scorePersonalInfo(info *types.PersonalInfo) float64 {
	if info == nil {
		return 0
	}

	populated := 0
	if info.HasName() {
		populated++
	}
	if info.Email != "" {
		populated++
	}
	if info.Phone != "" {
		populated++
	}
	if info.Address != nil {
		populated++
	}
	if info.LinkedInURL != "" {
		populated++
	}
	if info.PortfolioURL != "" {
		populated++
	}

	return float64(populated) / personalInfoFieldCount * s.ceiling
}

// scoreByCount 按有效条数相对期望条数评分，封顶为1后乘以上限
func (s *ConfidenceScorer) scoreByCount(count, expected int) float64 {
	ratio := float64(count) / float64(expected)
	if ratio > 1 {
		ratio = 1
	}
	return ratio * s.ceiling
}
