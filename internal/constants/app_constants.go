package constants

import "time"

const (
	// PipelineVersion 当前解析管道版本号
	PipelineVersion = "1.0"

	// DefaultMinContentLength 提取文本的最小字符数
	DefaultMinContentLength = 50
	// DefaultMinWordCount 提取文本的最小词数
	DefaultMinWordCount = 10

	// DefaultMaxUploadBytes 上传文件大小上限（在任何提取动作之前检查）
	DefaultMaxUploadBytes = 10 << 20 // 10 MiB

	// DefaultPDFTimeout PDF提取的默认超时（含大量图片的PDF较慢，预算更宽）
	DefaultPDFTimeout = 30 * time.Second
	// DefaultDOCXTimeout DOCX提取的默认超时
	DefaultDOCXTimeout = 20 * time.Second
	// DefaultParseTimeout 结构化解析阶段的默认超时
	DefaultParseTimeout = 10 * time.Second

	// DefaultExpectedWorkEntries 评分时工作经历的期望条数
	DefaultExpectedWorkEntries = 3
	// DefaultExpectedEducationEntries 评分时教育经历的期望条数
	DefaultExpectedEducationEntries = 2
	// DefaultExpectedSkillCount 评分时技能的期望数量
	DefaultExpectedSkillCount = 10

	// DefaultHighConfidenceCeiling 置信度上限，启发式匹配不应给出满分
	DefaultHighConfidenceCeiling = 0.8
)
