package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSegmentWorkSection(t *testing.T) {
	segmenter := NewEntrySegmenter()

	t.Run("职位行开启新条目", func(t *testing.T) {
		section := `Senior Engineer at Tech Corp
Jan 2020 - Present
• Led a team of 5 developers

Software Engineer at Startup Inc
Mar 2017 - Dec 2019
• Built the payment service`

		entries := segmenter.SegmentWorkSection(section)
		require.Len(t, entries, 2)
		assert.Contains(t, entries[0], "Senior Engineer at Tech Corp")
		assert.Contains(t, entries[0], "Led a team of 5 developers")
		assert.Contains(t, entries[1], "Software Engineer at Startup Inc")
	})

	t.Run("标题行和日期行不被切开", func(t *testing.T) {
		section := `Developer at Acme
Jan 2018 - Dec 2019`

		entries := segmenter.SegmentWorkSection(section)
		require.Len(t, entries, 1)
		assert.Contains(t, entries[0], "Developer at Acme")
		assert.Contains(t, entries[0], "Jan 2018 - Dec 2019")
	})

	t.Run("第二个日期区间行开启新条目", func(t *testing.T) {
		// 两段经历都只有日期可作为边界信号
		section := `Freelance work for various clients
Jan 2020 - Present
2015 - 2019
Another engagement description here`

		entries := segmenter.SegmentWorkSection(section)
		require.Len(t, entries, 2)
		assert.Contains(t, entries[0], "Jan 2020 - Present")
		assert.Contains(t, entries[1], "2015 - 2019")
	})

	t.Run("列表符号行不开启新条目", func(t *testing.T) {
		section := `Manager at BigCo
2019 - 2021
• Managed a budget of $2M
- Improved delivery speed by 30%`

		entries := segmenter.SegmentWorkSection(section)
		require.Len(t, entries, 1)
		assert.Contains(t, entries[0], "Managed a budget")
		assert.Contains(t, entries[0], "Improved delivery speed")
	})

	t.Run("过短的噪声条目被丢弃", func(t *testing.T) {
		entries := segmenter.SegmentWorkSection("x, y")
		assert.Empty(t, entries)
	})

	t.Run("空章节", func(t *testing.T) {
		assert.Empty(t, segmenter.SegmentWorkSection(""))
	})
}

func TestSegmentEducationSection(t *testing.T) {
	segmenter := NewEntrySegmenter()

	t.Run("学位行和院校行属于同一条目", func(t *testing.T) {
		section := `Bachelor of Science in Computer Science
State University
Graduated: May 2018
GPA: 3.8/4.0`

		entries := segmenter.SegmentEducationSection(section)
		require.Len(t, entries, 1)
		assert.Contains(t, entries[0], "Bachelor of Science")
		assert.Contains(t, entries[0], "State University")
		assert.Contains(t, entries[0], "GPA: 3.8/4.0")
	})

	t.Run("第二个学位开启新条目", func(t *testing.T) {
		section := `Master of Science, Tech University
2019 - 2021

Bachelor of Arts, Liberal College
2015 - 2019`

		entries := segmenter.SegmentEducationSection(section)
		require.Len(t, entries, 2)
		assert.Contains(t, entries[0], "Master of Science")
		assert.Contains(t, entries[1], "Bachelor of Arts")
	})

	t.Run("第二个院校行开启新条目", func(t *testing.T) {
		section := `State University
B.S. in Computer Science

City College
A.A. in Mathematics`

		entries := segmenter.SegmentEducationSection(section)
		require.Len(t, entries, 2)
		assert.Contains(t, entries[0], "State University")
		assert.Contains(t, entries[1], "City College")
	})

	t.Run("GPA行不单独成条目", func(t *testing.T) {
		section := `Bachelor of Engineering, Tech Institute
GPA: 3.5`

		entries := segmenter.SegmentEducationSection(section)
		require.Len(t, entries, 1)
		assert.Contains(t, entries[0], "GPA: 3.5")
	})
}
