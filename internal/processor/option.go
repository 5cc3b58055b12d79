package processor

import (
	"time"

	"cv-autofill-go/internal/parser"
)

// ProcessorOption 处理器配置选项
type ProcessorOption func(*ProfileProcessor)

// WithContentValidator 替换内容校验器
func WithContentValidator(validator *ContentValidator) ProcessorOption {
	return func(p *ProfileProcessor) {
		p.validator = validator
	}
}

// WithSectionLocator 替换章节定位器
func WithSectionLocator(locator *parser.SectionLocator) ProcessorOption {
	return func(p *ProfileProcessor) {
		p.locator = locator
	}
}

// WithEntrySegmenter 替换条目切分器
func WithEntrySegmenter(segmenter *parser.EntrySegmenter) ProcessorOption {
	return func(p *ProfileProcessor) {
		p.segmenter = segmenter
	}
}

// WithConfidenceScorer 替换置信度评分器
func WithConfidenceScorer(scorer *ConfidenceScorer) ProcessorOption {
	return func(p *ProfileProcessor) {
		p.scorer = scorer
	}
}

// WithParseTimeout 设置结构化解析阶段的时间预算
func WithParseTimeout(timeout time.Duration) ProcessorOption {
	return func(p *ProfileProcessor) {
		p.parseTimeout = timeout
	}
}
