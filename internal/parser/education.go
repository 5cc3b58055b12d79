package parser

import (
	"regexp"
	"strconv"
	"strings"

	"cv-autofill-go/internal/types"
)

// degreeAbbreviations 学位缩写到规范全称的固定映射
// 键为去掉点号和空格后的小写形式；未命中的token原样通过
var degreeAbbreviations = map[string]string{
	"ba":  "Bachelor of Arts",
	"bs":  "Bachelor of Science",
	"bsc": "Bachelor of Science",
	"be":  "Bachelor of Engineering",
	"bba": "Bachelor of Business Administration",
	"ma":  "Master of Arts",
	"ms":  "Master of Science",
	"msc": "Master of Science",
	"mba": "Master of Business Administration",
	"phd": "Doctor of Philosophy",
	"aa":  "Associate of Arts",
	"as":  "Associate of Science",
	"jd":  "Juris Doctor",
	"md":  "Doctor of Medicine",
}

// honorPhrases 拉丁/英文荣誉短语固定列表，按特异性排列
var honorPhrases = []string{
	"Summa Cum Laude",
	"Magna Cum Laude",
	"Cum Laude",
	"With Highest Honors",
	"With Honors",
	"With Distinction",
	"Dean's List",
	"Valedictorian",
	"Salutatorian",
}

var (
	// 首行"学位/院校"的四种顺序模式，按优先级排列：
	// 学位全称在前、学位缩写在前、院校在前（破折号分隔）、院校在前（逗号分隔）。
	// 模式顺序即平局裁决顺序，调整前需有误分类的测试用例支撑。
	degreeFirstRegex = regexp.MustCompile(`(?i)^((?:Bachelor|Master|Doctor(?:ate)?|Associate)(?:\s+of\s+[A-Za-z ]+?)?|Ph\.?D\.?|Certificate(?:\s+of\s+[A-Za-z ]+?)?|Diploma)(?:\s+in\s+([A-Za-z &]+?))?\s*,\s*(.+)$`)

	abbrevFirstRegex = regexp.MustCompile(`^(B\.?A\.?|B\.?S\.?c?\.?|B\.?E\.?|B\.?B\.?A\.?|M\.?A\.?|M\.?S\.?c?\.?|M\.?B\.?A\.?|Ph\.?D\.?|A\.?A\.?|A\.?S\.?|J\.?D\.?|M\.?D\.?)(?:\s+in\s+([A-Za-z &]+?))?\s*,\s*(.+)$`)

	institutionDashRegex = regexp.MustCompile(`^(.+?)\s+[-–]\s+(.+)$`)

	institutionCommaRegex = regexp.MustCompile(`^(.+?),\s+(.+)$`)

	// 毕业日期模式
	graduatedRegex = regexp.MustCompile(`(?i)graduat(?:ed|ion)\s*[:\s]\s*(.+)$`)
	classOfRegex   = regexp.MustCompile(`(?i)class\s+of\s+(\d{4})`)
	bareDateRegex  = regexp.MustCompile(`(?i)((?:Jan|Feb|Mar|Apr|May|Jun|Jul|Aug|Sep|Oct|Nov|Dec)[a-z]*\.?,?\s+\d{4}|\d{1,2}/\d{4}|\b(?:19|20)\d{2}\b)`)

	// GPA模式，按优先级排列；数值必须落在0.0-4.0之间
	gpaPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)\bGPA\s*[:\s]\s*(\d\.\d{1,2})(?:\s*/\s*4\.0)?`),
		regexp.MustCompile(`(?i)(\d\.\d{1,2})\s*GPA\b`),
		regexp.MustCompile(`(?i)cumulative\s+GPA\s*[:\s]\s*(\d\.\d{1,2})`),
	}
)

// EducationExtractor 教育经历提取器
type EducationExtractor struct{}

// NewEducationExtractor 创建教育经历提取器
func NewEducationExtractor() *EducationExtractor {
	return &EducationExtractor{}
}

// Extract 解析切分后的教育条目
// 缺少学位或院校的条目直接丢弃
func (e *EducationExtractor) Extract(entries []string) []*types.EducationEntry {
	var results []*types.EducationEntry
	for _, entry := range entries {
		if parsed := e.parseEntry(entry); parsed != nil {
			results = append(results, parsed)
		}
	}
	return results
}

// parseEntry 解析单个教育条目，无效条目返回nil
func (e *EducationExtractor) parseEntry(entry string) *types.EducationEntry {
	lines := strings.Split(entry, "\n")

	headerIdx := -1
	for i, line := range lines {
		if strings.TrimSpace(line) != "" {
			headerIdx = i
			break
		}
	}
	if headerIdx < 0 {
		return nil
	}

	result := &types.EducationEntry{}
	header := strings.TrimSpace(lines[headerIdx])
	e.parseDegreeInstitution(header, result)

	// 首行只有学位或只有院校（无分隔符）时，整行作为对应字段
	if result.Degree == "" && result.Institution == "" {
		if degreeKeywordRegex.MatchString(header) {
			result.Degree, result.FieldOfStudy = splitDegreeField(header)
		} else if institutionKeywordRegex.MatchString(header) {
			result.Institution = header
		}
	}

	// 仍缺失的字段在条目其余行中补查
	if result.Degree == "" || result.Institution == "" {
		for i, line := range lines {
			if i == headerIdx {
				continue
			}
			trimmed := strings.TrimSpace(line)
			if trimmed == "" {
				continue
			}
			if result.Institution == "" && institutionKeywordRegex.MatchString(trimmed) {
				result.Institution = trimmed
			} else if result.Degree == "" && degreeKeywordRegex.MatchString(trimmed) {
				result.Degree = expandDegreeToken(trimmed)
			}
		}
	}

	if result.Degree == "" || result.Institution == "" {
		return nil
	}

	result.GraduationDate = e.extractGraduationDate(entry)
	result.GPA = e.extractGPA(entry)
	result.Honors = e.extractHonors(entry)

	return result
}

// parseDegreeInstitution 按四种顺序模式解析首行
// 平局时的取向由模式顺序决定：学位在前的模式优先于院校在前的模式
func (e *EducationExtractor) parseDegreeInstitution(header string, result *types.EducationEntry) {
	if m := degreeFirstRegex.FindStringSubmatch(header); m != nil {
		result.Degree = expandDegreeToken(strings.TrimSpace(m[1]))
		result.FieldOfStudy = strings.TrimSpace(m[2])
		result.Institution = strings.TrimSpace(m[3])
		return
	}

	if m := abbrevFirstRegex.FindStringSubmatch(header); m != nil {
		result.Degree = expandDegreeToken(strings.TrimSpace(m[1]))
		result.FieldOfStudy = strings.TrimSpace(m[2])
		result.Institution = strings.TrimSpace(m[3])
		return
	}

	// 院校在前的两种模式由院校关键词判别
	if m := institutionDashRegex.FindStringSubmatch(header); m != nil {
		first := strings.TrimSpace(m[1])
		second := strings.TrimSpace(m[2])
		if institutionKeywordRegex.MatchString(first) {
			result.Institution = first
			result.Degree, result.FieldOfStudy = splitDegreeField(second)
			return
		}
	}

	if m := institutionCommaRegex.FindStringSubmatch(header); m != nil {
		first := strings.TrimSpace(m[1])
		second := strings.TrimSpace(m[2])
		if institutionKeywordRegex.MatchString(first) {
			result.Institution = first
			result.Degree, result.FieldOfStudy = splitDegreeField(second)
			return
		}
	}
}

// splitDegreeField 将 "B.S. in Computer Science" 拆为学位与专业
func splitDegreeField(raw string) (degree, field string) {
	parts := regexp.MustCompile(`(?i)\s+in\s+`).Split(raw, 2)
	degree = expandDegreeToken(strings.TrimSpace(parts[0]))
	if len(parts) > 1 {
		field = strings.TrimSpace(parts[1])
	}
	return degree, field
}

// expandDegreeToken 将学位缩写展开为规范全称，未知token原样返回
func expandDegreeToken(raw string) string {
	key := strings.ToLower(raw)
	key = strings.ReplaceAll(key, ".", "")
	key = strings.ReplaceAll(key, " ", "")
	if expanded, ok := degreeAbbreviations[key]; ok {
		return expanded
	}
	return raw
}

// extractGraduationDate 按 "Graduated:"、"Class of YYYY"、裸日期的顺序提取毕业日期
func (e *EducationExtractor) extractGraduationDate(entry string) string {
	for _, line := range strings.Split(entry, "\n") {
		if m := graduatedRegex.FindStringSubmatch(line); m != nil {
			if d := bareDateRegex.FindString(m[1]); d != "" {
				return NormalizeDate(strings.TrimSpace(d))
			}
			return NormalizeDate(strings.TrimSpace(m[1]))
		}
	}

	if m := classOfRegex.FindStringSubmatch(entry); m != nil {
		return NormalizeDate(m[1])
	}

	if d := bareDateRegex.FindString(entry); d != "" {
		return NormalizeDate(strings.TrimSpace(d))
	}
	return ""
}

// extractGPA 提取GPA，只接受0.0-4.0范围内的数值
func (e *EducationExtractor) extractGPA(entry string) string {
	for _, pattern := range gpaPatterns {
		m := pattern.FindStringSubmatch(entry)
		if m == nil {
			continue
		}
		value, err := strconv.ParseFloat(m[1], 64)
		if err != nil || value < 0.0 || value > 4.0 {
			continue
		}
		return m[1]
	}
	return ""
}

// extractHonors 按固定荣誉短语列表匹配，返回第一个命中的规范形式
func (e *EducationExtractor) extractHonors(entry string) string {
	lowered := strings.ToLower(entry)
	for _, phrase := range honorPhrases {
		if strings.Contains(lowered, strings.ToLower(phrase)) {
			return phrase
		}
	}
	return ""
}
