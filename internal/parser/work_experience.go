package parser

import (
	"regexp"
	"sort"
	"strings"

	"cv-autofill-go/internal/types"
)

// minDescriptionLineLength 短于该长度的行不计入描述
const minDescriptionLineLength = 10

var (
	// titleCompanyPatterns 首行"职位/公司"的五种分隔模式，按优先级排列
	titleCompanyPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)^(.+?)\s+at\s+(.+)$`),
		regexp.MustCompile(`^(.+?)\s*\|\s*(.+)$`),
		regexp.MustCompile(`^(.+?)\s+[-–]\s+(.+)$`),
		regexp.MustCompile(`^(.+?),\s+(.+)$`),
		regexp.MustCompile(`^(.+?)\s+@\s+(.+)$`),
	}

	// legalEntityRegex 公司法律实体关键词，用于判别哪一侧是公司
	legalEntityRegex = regexp.MustCompile(`(?i)\b(Inc|LLC|Corp|Corporation|Ltd|Company|Co|Technologies|Solutions|Systems|Group)\b\.?`)

	// achievementVerbRegex 成果动词，命中的行视为成就条目
	achievementVerbRegex = regexp.MustCompile(`(?i)\b(achieved|improved|increased|reduced|led|managed)\b`)

	// bulletStripRegex 去除行首的列表符号
	bulletStripRegex = regexp.MustCompile(`^[•●‣◦*–-]+\s*`)
)

// WorkExperienceExtractor 工作经历提取器
type WorkExperienceExtractor struct{}

// NewWorkExperienceExtractor 创建工作经历提取器
func NewWorkExperienceExtractor() *WorkExperienceExtractor {
	return &WorkExperienceExtractor{}
}

// Extract 解析切分后的候选条目并按时间排序
// 缺少职位或公司的条目直接丢弃，不产出部分记录；
// 结果排序：在职条目在前，其余按起始日期降序。
func (e *WorkExperienceExtractor) Extract(entries []string) []*types.WorkExperienceEntry {
	var results []*types.WorkExperienceEntry
	for _, entry := range entries {
		if parsed := e.parseEntry(entry); parsed != nil {
			results = append(results, parsed)
		}
	}

	sort.SliceStable(results, func(i, j int) bool {
		a, b := results[i], results[j]
		if a.IsCurrent != b.IsCurrent {
			return a.IsCurrent
		}
		at, aok := DateTokenTime(a.StartDate)
		bt, bok := DateTokenTime(b.StartDate)
		if aok != bok {
			return aok // 无法解析日期的条目排在后面
		}
		return at.After(bt)
	})

	return results
}

// parseEntry 解析单个候选条目，无效条目返回nil
func (e *WorkExperienceExtractor) parseEntry(entry string) *types.WorkExperienceEntry {
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

	result := &types.WorkExperienceEntry{}
	header := strings.TrimSpace(lines[headerIdx])
	result.Title, result.Company = parseTitleCompany(header)
	if result.Title == "" || result.Company == "" {
		return nil
	}

	dateRange := FindDateRange(entry)
	if dateRange != nil {
		result.StartDate = dateRange.Start
		result.EndDate = dateRange.End
		result.IsCurrent = dateRange.Current
	}

	var description []string
	for i, line := range lines {
		if i == headerIdx {
			continue
		}
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || len(trimmed) <= minDescriptionLineLength {
			continue
		}
		// 跳过日期行
		if IsDateRangeLine(trimmed) {
			continue
		}
		if dateRange != nil && strings.Contains(trimmed, dateRange.Raw) {
			continue
		}

		isBullet := bulletStripRegex.MatchString(trimmed)
		if isBullet || achievementVerbRegex.MatchString(trimmed) {
			result.Achievements = append(result.Achievements, bulletStripRegex.ReplaceAllString(trimmed, ""))
		} else {
			description = append(description, trimmed)
		}
	}
	result.Description = strings.Join(description, "\n")

	return result
}

// parseTitleCompany 按五种分隔模式解析首行的职位与公司
// 若第一部分含法律实体关键词，则认为它是公司名并交换两侧
func parseTitleCompany(header string) (title, company string) {
	for _, pattern := range titleCompanyPatterns {
		m := pattern.FindStringSubmatch(header)
		if m == nil {
			continue
		}
		first := strings.TrimSpace(m[1])
		second := strings.TrimSpace(m[2])
		if first == "" || second == "" {
			continue
		}

		if legalEntityRegex.MatchString(first) && !legalEntityRegex.MatchString(second) {
			return second, first
		}
		return first, second
	}
	return "", ""
}
