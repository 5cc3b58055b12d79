package processor

import (
	"fmt"
	"strings"
)

// ContentValidator 内容校验器
// 在结构化解析之前运行，按顺序检查：非空、最小长度、最小词数
// 失败时报告具体违反的规则，而不是笼统的失败
type ContentValidator struct {
	minLength    int
	minWordCount int
}

// NewContentValidator 创建内容校验器
func NewContentValidator(minLength, minWordCount int) *ContentValidator {
	if minLength <= 0 {
		minLength = 50
	}
	if minWordCount <= 0 {
		minWordCount = 10
	}
	return &ContentValidator{
		minLength:    minLength,
		minWordCount: minWordCount,
	}
}

// Validate 校验文本内容
// 空文本返回空内容错误；过短或词数不足返回内容不足错误，Detail中注明具体规则
func (v *ContentValidator) Validate(text string) error {
	trimmed := strings.TrimSpace(text)

	if trimmed == "" {
		return NewEmptyContentError()
	}

	if len(trimmed) < v.minLength {
		return NewInsufficientContentError(
			fmt.Sprintf("文本长度%d小于最小要求%d", len(trimmed), v.minLength))
	}

	if words := len(strings.Fields(trimmed)); words < v.minWordCount {
		return NewInsufficientContentError(
			fmt.Sprintf("词数%d小于最小要求%d", words, v.minWordCount))
	}

	return nil
}
