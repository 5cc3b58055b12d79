package processor

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cv-autofill-go/internal/config"
	"cv-autofill-go/internal/parser"
	"cv-autofill-go/internal/types"
)

// 一份典型的单页简历文本，覆盖四个类别
const sampleResume = `John Doe
john.doe@email.com | (555) 123-4567
linkedin.com/in/john-doe

WORK EXPERIENCE
Senior Engineer at Tech Corp
Jan 2020 - Present
• Led a team of 5 developers

EDUCATION
Bachelor of Science in Computer Science
State University
Graduated: May 2018

SKILLS
JavaScript, Python, React`

func newTestProcessor(t *testing.T) *ProfileProcessor {
	t.Helper()
	return NewProfileProcessor(config.DefaultConfig())
}

func TestProcessFullResume(t *testing.T) {
	p := newTestProcessor(t)

	profile, err := p.Process(context.Background(), sampleResume)
	require.NoError(t, err)
	require.NotNil(t, profile)

	// 个人信息
	require.NotNil(t, profile.PersonalInfo)
	assert.Equal(t, "John", profile.PersonalInfo.FirstName)
	assert.Equal(t, "Doe", profile.PersonalInfo.LastName)
	assert.Equal(t, "john.doe@email.com", profile.PersonalInfo.Email)
	assert.Equal(t, "+15551234567", profile.PersonalInfo.Phone)
	assert.Equal(t, "linkedin.com/in/john-doe", profile.PersonalInfo.LinkedInURL)

	// 工作经历
	require.Len(t, profile.WorkExperience, 1)
	work := profile.WorkExperience[0]
	assert.Equal(t, "Senior Engineer", work.Title)
	assert.Equal(t, "Tech Corp", work.Company)
	assert.Equal(t, "01/2020", work.StartDate)
	assert.True(t, work.IsCurrent)
	require.Len(t, work.Achievements, 1)
	assert.Equal(t, "Led a team of 5 developers", work.Achievements[0])

	// 教育经历
	require.Len(t, profile.Education, 1)
	edu := profile.Education[0]
	assert.Equal(t, "Bachelor of Science", edu.Degree)
	assert.Equal(t, "Computer Science", edu.FieldOfStudy)
	assert.Equal(t, "State University", edu.Institution)
	assert.Equal(t, "05/2018", edu.GraduationDate)

	// 技能：恰好三项，按字母序排列
	assert.Equal(t, []string{"JavaScript", "Python", "React"}, profile.Skills)

	// 置信度：四个类别都应大于零且不超过上限
	for name, score := range map[string]float64{
		"personal_info":   profile.Confidence.PersonalInfo,
		"work_experience": profile.Confidence.WorkExperience,
		"education":       profile.Confidence.Education,
		"skills":          profile.Confidence.Skills,
	} {
		assert.Greater(t, score, 0.0, name)
		assert.LessOrEqual(t, score, 0.8, name)
	}
}

func TestProcessValidationFailures(t *testing.T) {
	p := newTestProcessor(t)
	ctx := context.Background()

	t.Run("空文本", func(t *testing.T) {
		_, err := p.Process(ctx, "")
		assert.True(t, errors.Is(err, ErrEmptyContent))
	})

	t.Run("纯空白文本", func(t *testing.T) {
		_, err := p.Process(ctx, "  \r\n \t \n  ")
		assert.True(t, errors.Is(err, ErrEmptyContent))
	})

	t.Run("内容不足", func(t *testing.T) {
		_, err := p.Process(ctx, "just a few words")
		assert.True(t, errors.Is(err, ErrInsufficientContent))
	})
}

// 章节缺失产生空结果和低置信度，而不是错误
func TestProcessMissingSections(t *testing.T) {
	p := newTestProcessor(t)

	text := "John Doe\njohn@example.com\n" + strings.Repeat("general narrative text without any section ", 3)
	profile, err := p.Process(context.Background(), text)
	require.NoError(t, err)

	assert.Empty(t, profile.WorkExperience)
	assert.Empty(t, profile.Education)
	assert.Empty(t, profile.Skills)
	assert.Zero(t, profile.Confidence.WorkExperience)
	assert.Zero(t, profile.Confidence.Education)
	assert.Zero(t, profile.Confidence.Skills)
	assert.Greater(t, profile.Confidence.PersonalInfo, 0.0)
}

// 工作章节的词表命中也计入技能
func TestProcessSkillsFromWorkSection(t *testing.T) {
	p := newTestProcessor(t)

	text := `Jane Smith
jane@example.com

WORK EXPERIENCE
Backend Developer at CloudBase
Jan 2019 - Present
• Achieved high availability with Kubernetes and PostgreSQL`

	profile, err := p.Process(context.Background(), text)
	require.NoError(t, err)
	assert.Contains(t, profile.Skills, "Kubernetes")
	assert.Contains(t, profile.Skills, "PostgreSQL")
}

// 选项注入替换管道组件后，处理流程使用注入的组件
func TestProcessorComponentOptions(t *testing.T) {
	locator := parser.NewSectionLocator(
		parser.WithSectionSynonyms(types.SectionSkills, []string{"Tech Stack"}),
	)
	p := NewProfileProcessor(config.DefaultConfig(),
		WithContentValidator(NewContentValidator(10, 3)),
		WithSectionLocator(locator),
		WithEntrySegmenter(parser.NewEntrySegmenter()),
		WithConfidenceScorer(NewConfidenceScorer(3, 2, 3, 0.8)),
	)
	ctx := context.Background()

	text := `Jane Smith
jane@example.com

TECH STACK
JavaScript, Python, React`

	profile, err := p.Process(ctx, text)
	require.NoError(t, err)

	// 注入的定位器以Tech Stack为技能章节标题
	assert.Equal(t, []string{"JavaScript", "Python", "React"}, profile.Skills)
	// 注入的评分器期望技能数为3，三项技能达到置信度上限
	assert.InDelta(t, 0.8, profile.Confidence.Skills, 1e-9)

	// 注入的校验器放宽了内容下限
	_, err = p.Process(ctx, "short but still valid text")
	assert.NoError(t, err)
}

func TestProcessWithTimeout(t *testing.T) {
	p := newTestProcessor(t)

	t.Run("预算充足时正常返回", func(t *testing.T) {
		profile, err := p.ProcessWithTimeout(context.Background(), sampleResume, 5*time.Second)
		require.NoError(t, err)
		assert.NotNil(t, profile)
	})

	t.Run("父context已取消时返回超时错误", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := p.ProcessWithTimeout(ctx, sampleResume, 5*time.Second)
		require.Error(t, err)
		assert.Equal(t, CodeTimeout, ErrorCodeOf(err))
	})
}

// 同一输入重复处理产生一致的结果，管道不携带调用间状态
func TestProcessDeterministic(t *testing.T) {
	p := newTestProcessor(t)
	ctx := context.Background()

	first, err := p.Process(ctx, sampleResume)
	require.NoError(t, err)
	second, err := p.Process(ctx, sampleResume)
	require.NoError(t, err)

	assert.Equal(t, first.PersonalInfo, second.PersonalInfo)
	assert.Equal(t, first.Skills, second.Skills)
	assert.Equal(t, first.Confidence, second.Confidence)
	require.Len(t, second.WorkExperience, len(first.WorkExperience))
}
