package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractName(t *testing.T) {
	extractor := NewPersonalInfoExtractor()

	tests := []struct {
		name          string
		text          string
		expectedFirst string
		expectedLast  string
	}{
		{
			name:          "首行姓名",
			text:          "John Doe\nSenior Engineer\njohn@example.com",
			expectedFirst: "John",
			expectedLast:  "Doe",
		},
		{
			name:          "带礼貌称谓",
			text:          "Dr. Jane Smith\njane@example.com",
			expectedFirst: "Jane",
			expectedLast:  "Smith",
		},
		{
			name:          "三个单词取首尾",
			text:          "Mary Anne Johnson",
			expectedFirst: "Mary",
			expectedLast:  "Johnson",
		},
		{
			name:          "连字符姓氏规范化",
			text:          "Amelie Garcia-Lopez",
			expectedFirst: "Amelie",
			expectedLast:  "Garcia-Lopez",
		},
		{
			name:          "撇号姓氏",
			text:          "Sean O'Brien",
			expectedFirst: "Sean",
			expectedLast:  "O'Brien",
		},
		{
			name:          "超出前5个非空行不再查找",
			text:          "resume\nof\na\ngreat\nperson\nJohn Doe",
			expectedFirst: "",
			expectedLast:  "",
		},
		{
			name:          "小写行不是姓名",
			text:          "resume of a software engineer",
			expectedFirst: "",
			expectedLast:  "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			info := extractor.Extract(tt.text)
			assert.Equal(t, tt.expectedFirst, info.FirstName)
			assert.Equal(t, tt.expectedLast, info.LastName)
		})
	}
}

func TestExtractEmail(t *testing.T) {
	extractor := NewPersonalInfoExtractor()

	t.Run("基本邮箱", func(t *testing.T) {
		info := extractor.Extract("Contact: jane@example.com")
		assert.Equal(t, "jane@example.com", info.Email)
	})

	t.Run("带加号和点的本地部分", func(t *testing.T) {
		info := extractor.Extract("john.doe+cv@email.co.uk")
		assert.Equal(t, "john.doe+cv@email.co.uk", info.Email)
	})

	t.Run("取第一个出现的邮箱", func(t *testing.T) {
		info := extractor.Extract("a@example.com and b@example.com")
		assert.Equal(t, "a@example.com", info.Email)
	})

	t.Run("无邮箱时为空", func(t *testing.T) {
		info := extractor.Extract("no contact info here")
		assert.Empty(t, info.Email)
	})
}

func TestExtractPhone(t *testing.T) {
	extractor := NewPersonalInfoExtractor()

	tests := []struct {
		name     string
		text     string
		expected string
	}{
		{"美式括号格式", "(555) 123-4567", "+15551234567"},
		{"连字符格式", "555-123-4567", "+15551234567"},
		{"裸10位数字", "Phone: 5551234567", "+15551234567"},
		{"带国家码", "+1 555 123 4567", "+15551234567"},
		{"国际号码保留国家码", "+44 20 7946 0958", "+442079460958"},
		{"1开头的11位号码", "1-555-123-4567", "+15551234567"},
		{"位数不足不提取", "call 12345", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			info := extractor.Extract(tt.text)
			assert.Equal(t, tt.expected, info.Phone)
		})
	}
}

func TestExtractAddress(t *testing.T) {
	extractor := NewPersonalInfoExtractor()

	t.Run("城市州邮编", func(t *testing.T) {
		info := extractor.Extract("John Doe\nSpringfield, IL 62704")
		require.NotNil(t, info.Address)
		assert.Equal(t, "Springfield", info.Address.City)
		assert.Equal(t, "IL", info.Address.State)
		assert.Equal(t, "62704", info.Address.PostalCode)
	})

	t.Run("街道行", func(t *testing.T) {
		info := extractor.Extract("123 Main Street\nSpringfield, IL 62704")
		require.NotNil(t, info.Address)
		assert.Equal(t, "123 Main Street", info.Address.Street)
	})

	t.Run("国家名", func(t *testing.T) {
		info := extractor.Extract("Based in Canada since 2015\nmore than ten words of content")
		require.NotNil(t, info.Address)
		assert.Equal(t, "Canada", info.Address.Country)
	})

	t.Run("无地址组件时为nil", func(t *testing.T) {
		info := extractor.Extract("John Doe\nEngineer")
		assert.Nil(t, info.Address)
	})
}

func TestExtractLinkedInAndPortfolio(t *testing.T) {
	extractor := NewPersonalInfoExtractor()

	t.Run("职业社交主页", func(t *testing.T) {
		info := extractor.Extract("linkedin.com/in/john-doe")
		assert.Equal(t, "linkedin.com/in/john-doe", info.LinkedInURL)
	})

	t.Run("带协议前缀", func(t *testing.T) {
		info := extractor.Extract("https://www.linkedin.com/in/jdoe")
		assert.Equal(t, "https://www.linkedin.com/in/jdoe", info.LinkedInURL)
	})

	t.Run("代码托管主页作为作品集", func(t *testing.T) {
		info := extractor.Extract("github.com/johndoe")
		assert.Equal(t, "github.com/johndoe", info.PortfolioURL)
	})

	t.Run("显式作品集标签", func(t *testing.T) {
		info := extractor.Extract("Portfolio: johndoe.dev")
		assert.Equal(t, "johndoe.dev", info.PortfolioURL)
	})

	t.Run("职业社交主页不计入作品集", func(t *testing.T) {
		info := extractor.Extract("linkedin.com/in/john-doe")
		assert.Empty(t, info.PortfolioURL)
	})

	t.Run("邮箱域名不计入作品集", func(t *testing.T) {
		info := extractor.Extract("john@company.io")
		assert.Empty(t, info.PortfolioURL)
	})
}

func TestPersonalInfoHasName(t *testing.T) {
	extractor := NewPersonalInfoExtractor()

	info := extractor.Extract("John Doe\njohn@example.com")
	assert.True(t, info.HasName())

	info = extractor.Extract("no name here at all")
	assert.False(t, info.HasName())
}
