package parser

import (
	"regexp"
	"sort"
	"strings"
	"unicode"
)

// 技能token的校验边界
const (
	minSkillLength = 2
	maxSkillLength = 50
	maxSkillWords  = 4
)

// skillStopWords 不能单独作为技能的停用词
var skillStopWords = map[string]bool{
	"and":          true,
	"or":           true,
	"the":          true,
	"with":         true,
	"of":           true,
	"in":           true,
	"on":           true,
	"for":          true,
	"to":           true,
	"experience":   true,
	"experienced":  true,
	"proficient":   true,
	"familiar":     true,
	"knowledge":    true,
	"skills":       true,
	"skill":        true,
	"strong":       true,
	"excellent":    true,
	"years":        true,
	"various":      true,
	"other":        true,
	"tools":        true,
	"technologies": true,
}

var (
	// skillLabelRegex 显式的技能列表标签
	skillLabelRegex = regexp.MustCompile(`(?i)^(?:skills|technologies|tools|languages)\b\s*[:：]?\s*`)

	// skillDelimiterRegex 技能列表的分隔符：逗号、分号、竖线、列表符号
	skillDelimiterRegex = regexp.MustCompile(`[,;|•●‣]+`)

	// skillBulletStripRegex 去除token首尾残留的列表符号
	skillBulletStripRegex = regexp.MustCompile(`^[-–•●‣◦*\s]+|[.\s]+$`)
)

// 固定技术词汇表。语言词表使用边界匹配避免部分命中（如Java与JavaScript）
var (
	platformVocab = []string{
		"AWS", "Azure", "GCP", "Google Cloud", "Docker", "Kubernetes",
		"Linux", "Unix", "Windows", "macOS", "Android", "iOS",
		"Salesforce", "Heroku",
	}
	languageVocab = []string{
		"JavaScript", "TypeScript", "Python", "Java", "Golang", "Go",
		"C++", "C#", "Ruby", "PHP", "Swift", "Kotlin", "Rust", "Scala",
		"Perl", "SQL", "HTML", "CSS", "MATLAB",
	}
	frameworkVocab = []string{
		"React", "Angular", "Vue", "Next.js", "Node.js", "Express",
		"Django", "Flask", "FastAPI", "Spring Boot", "Spring", "Rails",
		"Laravel", ".NET", "TensorFlow", "PyTorch", "Pandas", "NumPy",
	}
	toolVocab = []string{
		"Git", "GitHub", "GitLab", "Jenkins", "Jira", "Terraform",
		"Ansible", "Maven", "Gradle", "Webpack", "Postman", "Figma",
		"Tableau", "Redis", "PostgreSQL", "MySQL", "MongoDB",
		"Elasticsearch", "Kafka", "RabbitMQ", "GraphQL",
	}
)

// vocabularyEntry 预编译的词表项
type vocabularyEntry struct {
	canonical string
	pattern   *regexp.Regexp
}

// SkillsExtractor 技能提取器
type SkillsExtractor struct {
	vocabulary []vocabularyEntry
}

// NewSkillsExtractor 创建技能提取器并预编译词表
func NewSkillsExtractor() *SkillsExtractor {
	e := &SkillsExtractor{}
	for _, vocab := range [][]string{platformVocab, languageVocab, frameworkVocab, toolVocab} {
		for _, name := range vocab {
			e.vocabulary = append(e.vocabulary, vocabularyEntry{
				canonical: name,
				// 词边界用非标识符字符表达，兼容C++、C#、.NET这类名称
				pattern: regexp.MustCompile(`(?i)(?:^|[^\w+#.])` + regexp.QuoteMeta(name) + `(?:[^\w+#.]|$)`),
			})
		}
	}
	return e
}

// Extract 从技能章节、工作经历章节和总结章节收集技能
// 合并为一个去重、大小写归一、按字母序排列的列表
func (e *SkillsExtractor) Extract(skillsSection, workSection, summarySection string) []string {
	// lower -> 首选展示形式
	seen := make(map[string]string)

	add := func(skill string) {
		key := strings.ToLower(skill)
		if _, ok := seen[key]; !ok {
			seen[key] = skill
		}
	}

	for _, source := range []string{skillsSection, workSection, summarySection} {
		if source == "" {
			continue
		}
		for _, skill := range e.collectFromText(source) {
			add(skill)
		}
	}

	result := make([]string, 0, len(seen))
	for _, skill := range seen {
		result = append(result, skill)
	}
	sort.Slice(result, func(i, j int) bool {
		return strings.ToLower(result[i]) < strings.ToLower(result[j])
	})
	return result
}

// collectFromText 从单个来源收集候选技能
// 带分隔符或显式标签的行按列表切分；同时每一行都过一遍固定词表，
// 词表命中不依赖分隔符，并且使用词表中的规范大小写。
func (e *SkillsExtractor) collectFromText(text string) []string {
	var skills []string

	for _, line := range strings.Split(text, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}

		if isDelimitedSkillLine(trimmed) {
			stripped := skillLabelRegex.ReplaceAllString(trimmed, "")
			for _, token := range skillDelimiterRegex.Split(stripped, -1) {
				if valid, clean := validateSkillToken(token); valid {
					skills = append(skills, clean)
				}
			}
		}

		// 词表扫描独立于分隔符提取
		for _, entry := range e.vocabulary {
			if entry.pattern.MatchString(trimmed) {
				skills = append(skills, entry.canonical)
			}
		}
	}

	return skills
}

// isDelimitedSkillLine 判断一行是否为分隔的技能列表
func isDelimitedSkillLine(line string) bool {
	if skillLabelRegex.MatchString(line) {
		return true
	}
	return strings.ContainsAny(line, ",;|•●‣")
}

// validateSkillToken 校验并清理单个技能token
// 要求：长度2-50、不超过4个词、非停用词、多数字符为字母
func validateSkillToken(token string) (bool, string) {
	clean := skillBulletStripRegex.ReplaceAllString(strings.TrimSpace(token), "")
	if len(clean) < minSkillLength || len(clean) > maxSkillLength {
		return false, ""
	}
	if len(strings.Fields(clean)) > maxSkillWords {
		return false, ""
	}
	if skillStopWords[strings.ToLower(clean)] {
		return false, ""
	}

	letters := 0
	for _, r := range clean {
		if unicode.IsLetter(r) {
			letters++
		}
	}
	if letters*2 <= len(clean) {
		return false, ""
	}

	return true, clean
}
