package parser

import (
	"regexp"
	"strings"
)

// minEntryLength 小于该字符数的候选条目视为噪声丢弃
const minEntryLength = 10

// 条目起始行的启发式模式
var (
	// roleKeywordRegex 以职级/角色关键词开头的行
	roleKeywordRegex = regexp.MustCompile(`(?i)^(senior|junior|lead|principal|staff|chief|head|manager|director|developer|engineer|analyst|consultant|architect|designer|administrator|specialist|coordinator|intern)\b`)

	// titleCompanyRegex "职位 <分隔符> 公司" 或反向的行形状
	// 分隔符：" at "、"|"、" - "、","
	titleCompanyRegex = regexp.MustCompile(`(?i)^[A-Za-z][^•●‣]*?(?:\s+at\s+|\s*\|\s*|\s+[-–]\s+|,\s+)[A-Za-z(].*$`)

	// degreeKeywordRegex 以学位关键词（全称或缩写）开头的行
	degreeKeywordRegex = regexp.MustCompile(`(?i)^(bachelor|master|doctor|doctorate|ph\.?d|associate|certificate|diploma|b\.?a\.?|b\.?s\.?c?\.?|b\.?e\.?|m\.?a\.?|m\.?s\.?c?\.?|m\.?b\.?a\.?|a\.?a\.?|a\.?s\.?|j\.?d\.?|m\.?d\.?)\b`)

	// institutionKeywordRegex 包含院校关键词的行
	institutionKeywordRegex = regexp.MustCompile(`(?i)\b(university|college|institute|school|academy)\b`)

	// gpaMarkerRegex GPA标记
	gpaMarkerRegex = regexp.MustCompile(`(?i)\bgpa\b`)

	// bulletPrefixRegex 列表符号开头的行，永远不会开启新条目
	bulletPrefixRegex = regexp.MustCompile(`^[•●‣◦*]|^[-–]\s`)
)

// EntrySegmenter 将定位到的章节切分为独立的候选条目
type EntrySegmenter struct {
	minLength int
}

// NewEntrySegmenter 创建条目切分器
func NewEntrySegmenter() *EntrySegmenter {
	return &EntrySegmenter{minLength: minEntryLength}
}

// entryState 当前条目中已出现的信号，用于抑制同一条目内的二次切分
type entryState struct {
	hasDateRange   bool
	hasGPA         bool
	hasDegree      bool
	hasInstitution bool
	hasContent     bool
}

// SegmentWorkSection 切分工作经历章节
// 新条目起始于："职位 <分隔符> 公司"形状的行、以职级/角色关键词开头的行，
// 或一条独立的日期区间行（仅当当前条目已经含有日期区间时，避免把标题行和其日期切开）。
func (s *EntrySegmenter) SegmentWorkSection(section string) []string {
	return s.segment(section, func(line string, state *entryState) bool {
		if bulletPrefixRegex.MatchString(line) {
			return false
		}
		if IsDateRangeLine(line) {
			return state.hasDateRange
		}
		if titleCompanyRegex.MatchString(line) || roleKeywordRegex.MatchString(line) {
			return true
		}
		return false
	})
}

// SegmentEducationSection 切分教育经历章节
// 候选起始信号：学位关键词开头的行、含院校关键词的行、独立日期区间行、GPA标记行。
// 每种信号仅在当前条目已出现同类信号时才真正开启新条目，
// 这样 "学位一行、院校一行" 的多行条目不会被切开。
func (s *EntrySegmenter) SegmentEducationSection(section string) []string {
	return s.segment(section, func(line string, state *entryState) bool {
		if bulletPrefixRegex.MatchString(line) {
			return false
		}
		if degreeKeywordRegex.MatchString(line) {
			return state.hasDegree
		}
		if institutionKeywordRegex.MatchString(line) {
			return state.hasInstitution
		}
		if IsDateRangeLine(line) {
			return state.hasDateRange
		}
		if gpaMarkerRegex.MatchString(line) {
			return state.hasGPA
		}
		return false
	})
}

// segment 通用切分循环：空行保留为条目内的段落分隔，但不开启新条目
func (s *EntrySegmenter) segment(section string, isStart func(string, *entryState) bool) []string {
	lines := strings.Split(section, "\n")

	var entries []string
	var current []string
	state := &entryState{}

	flush := func() {
		if len(current) == 0 {
			return
		}
		entry := strings.TrimSpace(strings.Join(current, "\n"))
		if len(entry) >= s.minLength {
			entries = append(entries, entry)
		}
		current = current[:0]
		state = &entryState{}
	}

	for _, line := range lines {
		trimmed := strings.TrimSpace(line)

		if trimmed == "" {
			// 空行保留为段落分隔
			if state.hasContent {
				current = append(current, "")
			}
			continue
		}

		if state.hasContent && isStart(trimmed, state) {
			flush()
		}

		current = append(current, line)
		state.hasContent = true
		if IsDateRangeLine(trimmed) || FindDateRange(trimmed) != nil {
			state.hasDateRange = true
		}
		if gpaMarkerRegex.MatchString(trimmed) {
			state.hasGPA = true
		}
		if degreeKeywordRegex.MatchString(trimmed) {
			state.hasDegree = true
		}
		if institutionKeywordRegex.MatchString(trimmed) {
			state.hasInstitution = true
		}
	}
	flush()

	return entries
}
