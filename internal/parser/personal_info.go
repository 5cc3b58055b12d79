package parser

import (
	"regexp"
	"strings"

	"cv-autofill-go/internal/types"
)

// nameScanLines 姓名只在前几个非空行中查找
const nameScanLines = 5

// maxEmailLength RFC 5321规定的地址长度上限
const maxEmailLength = 254

var (
	// nameRegex 2-4个首字母大写的单词，可选礼貌称谓前缀
	nameRegex = regexp.MustCompile(`^(?:(?:Mr|Mrs|Ms|Dr|Prof)\.?\s+)?([A-Z][A-Za-z'’-]+(?:\s+[A-Z][A-Za-z'’-]+){1,3})$`)

	// emailRegex 基本的 local@domain.tld 形状
	emailRegex = regexp.MustCompile(`[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}`)

	// phonePatterns 电话模式，按优先级排列：
	// 国际格式（可带括号）、美式括号、连字符、裸10位、空格分组
	phonePatterns = []*regexp.Regexp{
		regexp.MustCompile(`\+\d{1,3}[\s.-]?\(?\d{1,4}\)?[\s.-]?\d{3,4}[\s.-]?\d{3,4}`),
		regexp.MustCompile(`\(\d{3}\)[\s.-]?\d{3}[\s.-]?\d{4}`),
		regexp.MustCompile(`\b\d{3}-\d{3}-\d{4}\b`),
		regexp.MustCompile(`\b\d{10}\b`),
		regexp.MustCompile(`\b\d{3}\s\d{3}\s\d{4}\b`),
	}

	// 邮编：美式5/9位、6位数字、加拿大式字母数字
	postalCodeRegex = regexp.MustCompile(`\b(\d{5}(?:-\d{4})?|\d{6}|[A-Za-z]\d[A-Za-z]\s?\d[A-Za-z]\d)\b`)

	// cityStateRegex "City, ST ####" 形状
	cityStateRegex = regexp.MustCompile(`([A-Za-z][A-Za-z .'-]*?),\s*([A-Z]{2})\s+(?:\d{5}(?:-\d{4})?|\d{6}|[A-Za-z]\d[A-Za-z]\s?\d[A-Za-z]\d)\b`)

	// streetRegex 以门牌号开头、以街道类型词结尾的行
	streetRegex = regexp.MustCompile(`(?i)^\d+\s+[A-Za-z0-9 .'-]+\b(street|st|avenue|ave|road|rd|boulevard|blvd|lane|ln|drive|dr|court|ct|place|pl|way|terrace|ter|circle|cir)\.?$`)

	// linkedinRegex 职业社交网络主页
	linkedinRegex = regexp.MustCompile(`(?i)(?:https?://)?(?:www\.)?linkedin\.com/(?:in|pub)/[A-Za-z0-9_-]+/?`)

	// portfolioPatterns 作品集匹配模式：显式标签、常见托管域名、个人域名
	portfolioPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)(?:portfolio|website)\s*[:：]\s*(\S+)`),
		regexp.MustCompile(`(?i)(?:https?://)?(?:www\.)?(?:github\.com|gitlab\.com|bitbucket\.org|behance\.net|dribbble\.com)/[A-Za-z0-9_./-]+`),
		regexp.MustCompile(`(?i)(?:https?://)?(?:www\.)?[A-Za-z0-9-]+\.(?:dev|io|me|design)\b(?:/[A-Za-z0-9_./-]*)?`),
	}
)

// knownCountries 国家名固定列表
var knownCountries = []string{
	"United States", "USA", "Canada", "United Kingdom", "UK",
	"Australia", "Germany", "France", "Netherlands", "Ireland",
	"India", "China", "Japan", "Singapore", "Brazil", "Mexico",
}

// PersonalInfoExtractor 个人联系信息提取器
type PersonalInfoExtractor struct{}

// NewPersonalInfoExtractor 创建个人信息提取器
func NewPersonalInfoExtractor() *PersonalInfoExtractor {
	return &PersonalInfoExtractor{}
}

// Extract 从归一化文本中提取个人联系信息
// 各字段彼此独立，缺失的字段保持为空；该阶段从不失败
func (e *PersonalInfoExtractor) Extract(text string) *types.PersonalInfo {
	info := &types.PersonalInfo{}

	e.extractName(text, info)
	info.Email = e.extractEmail(text)
	info.Phone = e.extractPhone(text)
	info.Address = e.extractAddress(text)
	info.LinkedInURL = strings.TrimSpace(linkedinRegex.FindString(text))
	info.PortfolioURL = e.extractPortfolio(text)

	return info
}

// extractName 在前5个非空行中查找2-4个首字母大写单词组成的姓名
func (e *PersonalInfoExtractor) extractName(text string, info *types.PersonalInfo) {
	scanned := 0
	for _, line := range strings.Split(text, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		scanned++
		if scanned > nameScanLines {
			return
		}

		m := nameRegex.FindStringSubmatch(trimmed)
		if m == nil {
			continue
		}

		parts := strings.Fields(m[1])
		for i, part := range parts {
			parts[i] = normalizeNamePart(part)
		}
		info.FirstName = parts[0]
		info.LastName = parts[len(parts)-1]
		return
	}
}

// normalizeNamePart 规范化连字符/撇号姓名片段的大小写
// 例如 "o'brien-SMITH" -> "O'Brien-Smith"
func normalizeNamePart(part string) string {
	capitalize := func(s string) string {
		if s == "" {
			return s
		}
		return strings.ToUpper(s[:1]) + strings.ToLower(s[1:])
	}

	hyphenated := strings.Split(part, "-")
	for i, h := range hyphenated {
		apostrophed := strings.Split(h, "'")
		for j, a := range apostrophed {
			apostrophed[j] = capitalize(a)
		}
		hyphenated[i] = strings.Join(apostrophed, "'")
	}
	return strings.Join(hyphenated, "-")
}

// extractEmail 返回第一个通过严格校验的邮箱地址
func (e *PersonalInfoExtractor) extractEmail(text string) string {
	for _, candidate := range emailRegex.FindAllString(text, -1) {
		if len(candidate) > maxEmailLength {
			continue
		}
		if strings.Count(candidate, "@") != 1 {
			continue
		}
		return candidate
	}
	return ""
}

// extractPhone 按模式优先级提取第一个有效电话并规范化
func (e *PersonalInfoExtractor) extractPhone(text string) string {
	for _, pattern := range phonePatterns {
		for _, candidate := range pattern.FindAllString(text, -1) {
			if normalized := normalizePhone(candidate); normalized != "" {
				return normalized
			}
		}
	}
	return ""
}

// normalizePhone 规范化电话号码
// 美式10位或1开头的11位号码规范化为 "+1..." 形式；
// 最终数字位数必须在10-15之间，否则视为无效返回空串
func normalizePhone(raw string) string {
	raw = strings.TrimSpace(raw)
	hasPlus := strings.HasPrefix(raw, "+")

	var digits strings.Builder
	for _, r := range raw {
		if r >= '0' && r <= '9' {
			digits.WriteRune(r)
		}
	}
	d := digits.String()

	if len(d) < 10 || len(d) > 15 {
		return ""
	}

	switch {
	case len(d) == 10:
		return "+1" + d
	case len(d) == 11 && d[0] == '1':
		return "+" + d
	case hasPlus:
		return "+" + d
	default:
		return d
	}
}

// extractAddress 逐行扫描地址组件，全部缺失时返回nil
func (e *PersonalInfoExtractor) extractAddress(text string) *types.Address {
	addr := &types.Address{}

	for _, line := range strings.Split(text, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}

		if addr.PostalCode == "" {
			if m := postalCodeRegex.FindStringSubmatch(trimmed); m != nil {
				addr.PostalCode = m[1]
				// 同一行上尝试提取 "City, ST ####" 形状
				if cm := cityStateRegex.FindStringSubmatch(trimmed); cm != nil {
					addr.City = strings.TrimSpace(cm[1])
					addr.State = cm[2]
				}
			}
		}

		if addr.Street == "" && streetRegex.MatchString(trimmed) {
			addr.Street = trimmed
		}
	}

	if addr.Country == "" {
		for _, country := range knownCountries {
			if containsWord(text, country) {
				addr.Country = country
				break
			}
		}
	}

	if addr.Street == "" && addr.City == "" && addr.State == "" &&
		addr.PostalCode == "" && addr.Country == "" {
		return nil
	}
	return addr
}

// containsWord 大小写不敏感的整词包含判断
func containsWord(text, word string) bool {
	pattern := regexp.MustCompile(`(?i)\b` + regexp.QuoteMeta(word) + `\b`)
	return pattern.MatchString(text)
}

// extractPortfolio 提取作品集URL
// 显式排除职业社交网络和邮箱样式的命中，避免交叉分类
func (e *PersonalInfoExtractor) extractPortfolio(text string) string {
	// 先抹掉邮箱，避免邮箱域名被当作个人网站
	text = emailRegex.ReplaceAllString(text, " ")

	for _, pattern := range portfolioPatterns {
		for _, m := range pattern.FindAllStringSubmatch(text, -1) {
			candidate := m[0]
			if len(m) > 1 && m[1] != "" {
				candidate = m[1]
			}
			candidate = strings.TrimSpace(candidate)
			lowered := strings.ToLower(candidate)
			if strings.Contains(lowered, "linkedin.com") || strings.Contains(candidate, "@") {
				continue
			}
			return candidate
		}
	}
	return ""
}
