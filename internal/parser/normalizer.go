package parser

import (
	"regexp"
	"strings"
)

// 预编译的归一化正则
var (
	// 2个以上的空行折叠为一个空行
	blankLinesRegex = regexp.MustCompile(`\n{3,}`)
	// 连续的水平空白或单个制表符折叠为一个空格
	horizontalWSRegex = regexp.MustCompile(`[ \t]{2,}|\t`)
)

// NormalizeText 归一化原始文本
// 依次执行：统一换行符、折叠多余空行、折叠水平空白、去除首尾空白
// 永远不会失败，空输入产生空输出；重复执行结果不变
func NormalizeText(raw string) string {
	// 统一化换行符
	text := strings.ReplaceAll(raw, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")

	// 折叠多余空行
	text = blankLinesRegex.ReplaceAllString(text, "\n\n")

	// 折叠连续的水平空白
	text = horizontalWSRegex.ReplaceAllString(text, " ")

	return strings.TrimSpace(text)
}
