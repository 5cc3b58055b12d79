package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSkillsExtract(t *testing.T) {
	extractor := NewSkillsExtractor()

	t.Run("逗号分隔的技能列表", func(t *testing.T) {
		skills := extractor.Extract("JavaScript, Python, React", "", "")
		assert.Equal(t, []string{"JavaScript", "Python", "React"}, skills)
	})

	t.Run("显式标签被剥离", func(t *testing.T) {
		skills := extractor.Extract("Skills: Go; Docker; Terraform", "", "")
		assert.Equal(t, []string{"Docker", "Go", "Terraform"}, skills)
	})

	t.Run("列表符号分隔", func(t *testing.T) {
		skills := extractor.Extract("• Kubernetes • PostgreSQL • Redis", "", "")
		assert.Equal(t, []string{"Kubernetes", "PostgreSQL", "Redis"}, skills)
	})

	t.Run("跨来源去重保留首次出现形式", func(t *testing.T) {
		skills := extractor.Extract("Python, AWS", "Built services in python on AWS", "")
		assert.Equal(t, []string{"AWS", "Python"}, skills)
	})

	t.Run("词表命中不依赖分隔符", func(t *testing.T) {
		skills := extractor.Extract("", "Wrote microservices in Golang and deployed them on Kubernetes", "")
		assert.Equal(t, []string{"Golang", "Kubernetes"}, skills)
	})

	t.Run("特殊符号名称的词边界", func(t *testing.T) {
		skills := extractor.Extract("C++, C#, .NET", "", "")
		assert.Contains(t, skills, "C++")
		assert.Contains(t, skills, "C#")
		assert.Contains(t, skills, ".NET")
	})

	t.Run("Java不会命中JavaScript", func(t *testing.T) {
		skills := extractor.Extract("", "Ten years of JavaScript development", "")
		assert.Contains(t, skills, "JavaScript")
		assert.NotContains(t, skills, "Java")
	})

	t.Run("叙述句不产生技能token", func(t *testing.T) {
		skills := extractor.Extract("", "Led a team of 5 developers\nJan 2020 - Present", "")
		assert.Empty(t, skills)
	})

	t.Run("输入顺序不影响结果集合", func(t *testing.T) {
		expected := []string{"JavaScript", "Python", "React"}
		assert.Equal(t, expected, extractor.Extract("React, Python, JavaScript", "", ""))
		assert.Equal(t, expected, extractor.Extract("JavaScript, React, Python", "", ""))
		// 换行分隔时由词表命中，集合仍然一致
		assert.Equal(t, expected, extractor.Extract("Python\nJavaScript\nReact", "", ""))
	})

	t.Run("全部来源为空", func(t *testing.T) {
		assert.Empty(t, extractor.Extract("", "", ""))
	})
}

func TestValidateSkillToken(t *testing.T) {
	tests := []struct {
		name     string
		token    string
		valid    bool
		expected string
	}{
		{"正常技能", "Python", true, "Python"},
		{"带列表符号前缀", "• Docker", true, "Docker"},
		{"带尾部句号", "Redis.", true, "Redis"},
		{"过短", "x", false, ""},
		{"停用词", "and", false, ""},
		{"停用词大小写不敏感", "Experience", false, ""},
		{"超过词数上限", "managed a large team of engineers", false, ""},
		{"数字为主的token", "2020 - 2021", false, ""},
		{"空token", "   ", false, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			valid, clean := validateSkillToken(tt.token)
			assert.Equal(t, tt.valid, valid)
			assert.Equal(t, tt.expected, clean)
		})
	}
}
