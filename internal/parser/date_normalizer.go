package parser

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// monthTable 月份名称（取前三个字母）到两位月份的固定映射
var monthTable = map[string]string{
	"jan": "01",
	"feb": "02",
	"mar": "03",
	"apr": "04",
	"may": "05",
	"jun": "06",
	"jul": "07",
	"aug": "08",
	"sep": "09",
	"oct": "10",
	"nov": "11",
	"dec": "12",
}

// 单个日期token的形状
var (
	monthYearRegex        = regexp.MustCompile(`^(?i)([A-Za-z]{3,9})\.?,?\s+(\d{4})$`)
	numericMonthYearRegex = regexp.MustCompile(`^(\d{1,2})/(\d{4})$`)
	bareYearRegex         = regexp.MustCompile(`^(\d{4})$`)
	// currentTokenRegex "在职"字面量：present/current/now
	currentTokenRegex = regexp.MustCompile(`^(?i)(present|current|now)$`)
)

// 日期token的非锚定形状，用于在区间正则中复用
const (
	monthNamePart = `(?:Jan|Feb|Mar|Apr|May|Jun|Jul|Aug|Sep|Oct|Nov|Dec)[a-z]*\.?,?\s+\d{4}`
	numericPart   = `\d{1,2}/\d{4}`
	yearPart      = `\d{4}`
	presentPart   = `(?:Present|Current|Now)`
	rangeSep      = `\s*(?:-|–|—|~|to|until)\s*`
)

// dateRangePatterns 六种日期区间形状，按优先级排列
// 依次为：月份名区间、月份名到在职、数字月区间、数字月到在职、年份区间、年份到在职
var dateRangePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)(` + monthNamePart + `)` + rangeSep + `(` + monthNamePart + `)`),
	regexp.MustCompile(`(?i)(` + monthNamePart + `)` + rangeSep + `(` + presentPart + `)`),
	regexp.MustCompile(`(?i)(` + numericPart + `)` + rangeSep + `(` + numericPart + `)`),
	regexp.MustCompile(`(?i)(` + numericPart + `)` + rangeSep + `(` + presentPart + `)`),
	regexp.MustCompile(`(?i)(` + yearPart + `)` + rangeSep + `(` + yearPart + `)`),
	regexp.MustCompile(`(?i)(` + yearPart + `)` + rangeSep + `(` + presentPart + `)`),
}

// dateRangeLineRegex 判断整行是否就是一个日期区间
var dateRangeLineRegex = regexp.MustCompile(
	`^(?i)(?:` + monthNamePart + `|` + numericPart + `|` + yearPart + `)` +
		rangeSep +
		`(?:` + monthNamePart + `|` + numericPart + `|` + yearPart + `|` + presentPart + `)$`)

// NormalizeDate 将异构日期表达转换为规范的 "MM/YYYY" token
// 支持 "Jan 2020"、"01/2020"、"2020" 三种形状；无法识别的形状原样返回
func NormalizeDate(raw string) string {
	token := strings.TrimSpace(raw)
	if token == "" {
		return token
	}

	if m := monthYearRegex.FindStringSubmatch(token); m != nil {
		key := strings.ToLower(m[1])
		if len(key) > 3 {
			key = key[:3]
		}
		if mm, ok := monthTable[key]; ok {
			return mm + "/" + m[2]
		}
		return token
	}

	if m := numericMonthYearRegex.FindStringSubmatch(token); m != nil {
		month, err := strconv.Atoi(m[1])
		if err != nil || month < 1 || month > 12 {
			return token
		}
		return fmt.Sprintf("%02d/%s", month, m[2])
	}

	if m := bareYearRegex.FindStringSubmatch(token); m != nil {
		// 裸年份规范化为当年1月，便于排序比较
		return "01/" + m[1]
	}

	return token
}

// IsCurrentToken 判断token是否为"在职"字面量
func IsCurrentToken(raw string) bool {
	return currentTokenRegex.MatchString(strings.TrimSpace(raw))
}

// DateTokenTime 将规范化的 "MM/YYYY" token 转换为可比较的时间值
// 第二个返回值表示token是否可解析
func DateTokenTime(token string) (time.Time, bool) {
	m := numericMonthYearRegex.FindStringSubmatch(strings.TrimSpace(token))
	if m == nil {
		return time.Time{}, false
	}
	month, err := strconv.Atoi(m[1])
	if err != nil || month < 1 || month > 12 {
		return time.Time{}, false
	}
	year, err := strconv.Atoi(m[2])
	if err != nil {
		return time.Time{}, false
	}
	return time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC), true
}

// DateRange 一段起止日期，End为空且Current为真表示至今
type DateRange struct {
	Start   string // 规范化的 "MM/YYYY"
	End     string // 规范化的 "MM/YYYY"，在职时为空
	Current bool
	Raw     string // 命中的原始文本
}

// FindDateRange 在文本中定位第一个日期区间并规范化两端
// 未找到时返回nil
func FindDateRange(text string) *DateRange {
	for _, pattern := range dateRangePatterns {
		m := pattern.FindStringSubmatch(text)
		if m == nil {
			continue
		}
		r := &DateRange{
			Start: NormalizeDate(m[1]),
			Raw:   m[0],
		}
		if IsCurrentToken(m[2]) {
			r.Current = true
		} else {
			r.End = NormalizeDate(m[2])
		}
		return r
	}
	return nil
}

// IsDateRangeLine 判断整行是否只是一个日期区间
func IsDateRangeLine(line string) bool {
	return dateRangeLineRegex.MatchString(strings.TrimSpace(line))
}
