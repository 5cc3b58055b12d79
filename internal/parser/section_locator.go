package parser

import (
	"strings"
	"unicode"

	"cv-autofill-go/internal/types"
)

// maxHeaderLength 章节标题行的最大长度，过长的行视为正文
const maxHeaderLength = 50

// defaultSectionSynonyms 各章节标题的同义词表，全部使用小写
var defaultSectionSynonyms = map[types.SectionKind][]string{
	types.SectionWorkExperience: {
		"work experience",
		"professional experience",
		"employment history",
		"work history",
		"career history",
		"experience",
		"employment",
	},
	types.SectionEducation: {
		"education",
		"academic background",
		"educational background",
		"academics",
		"qualifications",
	},
	types.SectionSkills: {
		"technical skills",
		"core competencies",
		"skills",
		"technologies",
		"competencies",
		"expertise",
	},
	types.SectionSummary: {
		"professional summary",
		"career objective",
		"summary",
		"objective",
		"profile",
		"about me",
	},
	types.SectionProjects: {
		"personal projects",
		"projects",
	},
	types.SectionCertifications: {
		"certifications",
		"certificates",
		"licenses",
	},
}

// SectionLocator 在归一化文本中定位带标题的章节区域
type SectionLocator struct {
	synonyms map[types.SectionKind][]string
}

// SectionLocatorOption 章节定位器的配置选项
type SectionLocatorOption func(*SectionLocator)

// WithSectionSynonyms 覆盖某个章节类型的同义词表
func WithSectionSynonyms(kind types.SectionKind, synonyms []string) SectionLocatorOption {
	return func(l *SectionLocator) {
		lowered := make([]string, 0, len(synonyms))
		for _, s := range synonyms {
			// 与标题行相同的整词归一化，保证多词同义词可命中
			lowered = append(lowered, strings.TrimSpace(headerWords(s)))
		}
		l.synonyms[kind] = lowered
	}
}

// NewSectionLocator 创建章节定位器
func NewSectionLocator(options ...SectionLocatorOption) *SectionLocator {
	locator := &SectionLocator{
		synonyms: make(map[types.SectionKind][]string, len(defaultSectionSynonyms)),
	}
	for kind, synonyms := range defaultSectionSynonyms {
		locator.synonyms[kind] = synonyms
	}

	for _, option := range options {
		option(locator)
	}

	return locator
}

// Locate 查找指定类型的章节内容
// 自上而下扫描：一个短行（<50字符）按整词包含该类型的任一同义词，
// 即视为章节标题；其后一行开始为章节正文，遇到下一个属于其他章节的标题行
// 或文本结束即为章节边界。未找到标题时返回ok=false，这是正常情况（章节缺失），不是错误。
func (l *SectionLocator) Locate(text string, kind types.SectionKind) (string, bool) {
	lines := strings.Split(text, "\n")

	headerIdx := -1
	for i, line := range lines {
		if l.matchesKind(line, kind) {
			headerIdx = i
			break
		}
	}
	if headerIdx < 0 {
		return "", false
	}

	end := len(lines)
	for j := headerIdx + 1; j < len(lines); j++ {
		// 属于当前章节同义词的行不构成边界
		if l.matchesKind(lines[j], kind) {
			continue
		}
		if l.matchesAnyKind(lines[j]) {
			end = j
			break
		}
	}

	return strings.TrimSpace(strings.Join(lines[headerIdx+1:end], "\n")), true
}

// matchesKind 判断某行是否为指定章节类型的标题行
// 短行按整词包含同义词即算命中，"MY WORK EXPERIENCE"这类带修饰的标题也能识别；
// 整词而非子串：experienced不会命中experience。
// 以句末标点结尾的行是正文句子而不是标题。
func (l *SectionLocator) matchesKind(line string, kind types.SectionKind) bool {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" || len(trimmed) >= maxHeaderLength {
		return false
	}
	switch trimmed[len(trimmed)-1] {
	case '.', ',', ';', '!', '?':
		return false
	}
	padded := headerWords(trimmed)
	for _, synonym := range l.synonyms[kind] {
		if strings.Contains(padded, " "+synonym+" ") {
			return true
		}
	}
	return false
}

// headerWords 小写化并把非字母字符折叠为单个空格，首尾补空格，
// 使多词同义词可以用带空格包裹的子串做整词包含判断
func headerWords(s string) string {
	var b strings.Builder
	b.WriteByte(' ')
	lastSpace := true
	for _, r := range strings.ToLower(s) {
		if unicode.IsLetter(r) {
			b.WriteRune(r)
			lastSpace = false
		} else if !lastSpace {
			b.WriteByte(' ')
			lastSpace = true
		}
	}
	if !lastSpace {
		b.WriteByte(' ')
	}
	return b.String()
}

// matchesAnyKind 判断某行是否为任意已知章节的标题行
func (l *SectionLocator) matchesAnyKind(line string) bool {
	for kind := range l.synonyms {
		if l.matchesKind(line, kind) {
			return true
		}
	}
	return false
}
