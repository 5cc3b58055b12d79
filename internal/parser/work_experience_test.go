package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWorkParseTitleCompany(t *testing.T) {
	tests := []struct {
		name            string
		header          string
		expectedTitle   string
		expectedCompany string
	}{
		{"at分隔", "Senior Engineer at Tech Corp", "Senior Engineer", "Tech Corp"},
		{"竖线分隔", "Product Manager | Acme Inc", "Product Manager", "Acme Inc"},
		{"破折号分隔", "Data Analyst - DataWorks Ltd", "Data Analyst", "DataWorks Ltd"},
		{"逗号分隔", "Designer, Creative Studio", "Designer", "Creative Studio"},
		{"艾特符号分隔", "Backend Developer @ CloudBase", "Backend Developer", "CloudBase"},
		{"公司在前时交换两侧", "Acme Inc - Senior Developer", "Senior Developer", "Acme Inc"},
		{"无分隔符时两者皆空", "Senior Engineer", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			title, company := parseTitleCompany(tt.header)
			assert.Equal(t, tt.expectedTitle, title)
			assert.Equal(t, tt.expectedCompany, company)
		})
	}
}

func TestWorkExperienceExtract(t *testing.T) {
	extractor := NewWorkExperienceExtractor()

	t.Run("完整条目", func(t *testing.T) {
		entries := []string{
			"Senior Engineer at Tech Corp\nJan 2020 - Present\n• Led a team of 5 developers\nResponsible for the core platform services",
		}

		results := extractor.Extract(entries)
		require.Len(t, results, 1)

		r := results[0]
		assert.Equal(t, "Senior Engineer", r.Title)
		assert.Equal(t, "Tech Corp", r.Company)
		assert.Equal(t, "01/2020", r.StartDate)
		assert.Empty(t, r.EndDate)
		assert.True(t, r.IsCurrent)
		require.Len(t, r.Achievements, 1)
		assert.Equal(t, "Led a team of 5 developers", r.Achievements[0])
		assert.Equal(t, "Responsible for the core platform services", r.Description)
	})

	t.Run("成果动词行计入成就", func(t *testing.T) {
		entries := []string{
			"Engineer at Acme\n2018 - 2020\nImproved system throughput significantly",
		}

		results := extractor.Extract(entries)
		require.Len(t, results, 1)
		require.Len(t, results[0].Achievements, 1)
		assert.Equal(t, "Improved system throughput significantly", results[0].Achievements[0])
		assert.Empty(t, results[0].Description)
	})

	t.Run("缺少公司的条目被丢弃", func(t *testing.T) {
		entries := []string{
			"Senior Engineer\nJan 2020 - Present\nDid some important work there",
		}
		assert.Empty(t, extractor.Extract(entries))
	})

	t.Run("在职条目排在最前", func(t *testing.T) {
		entries := []string{
			"Engineer at OldCo\nJan 2015 - Dec 2017",
			"Engineer at MidCo\nJan 2018 - Dec 2019",
			"Engineer at NewCo\nJan 2020 - Present",
		}

		results := extractor.Extract(entries)
		require.Len(t, results, 3)
		assert.Equal(t, "NewCo", results[0].Company)
		assert.True(t, results[0].IsCurrent)
		// 其余按起始日期降序
		assert.Equal(t, "MidCo", results[1].Company)
		assert.Equal(t, "OldCo", results[2].Company)
	})

	t.Run("无法解析日期的条目排在最后", func(t *testing.T) {
		entries := []string{
			"Engineer at NoDateCo\nWorked on several internal projects",
			"Engineer at DatedCo\nJan 2019 - Dec 2020",
		}

		results := extractor.Extract(entries)
		require.Len(t, results, 2)
		assert.Equal(t, "DatedCo", results[0].Company)
		assert.Equal(t, "NoDateCo", results[1].Company)
	})

	t.Run("空输入", func(t *testing.T) {
		assert.Empty(t, extractor.Extract(nil))
	})
}
