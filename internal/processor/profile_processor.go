package processor

import (
	"context"
	"time"

	"cv-autofill-go/internal/config"
	"cv-autofill-go/internal/constants"
	"cv-autofill-go/internal/logger"
	"cv-autofill-go/internal/parser"
	"cv-autofill-go/internal/types"
)

// ProfileProcessor 简历理解管道
// 数据严格单向流动：原始文本 -> 归一化 -> 内容校验 -> 章节定位 -> 条目切分
// -> 字段提取 -> 置信度评分 -> 结构化结果。
// 通过内容校验之后的结构化阶段永远不会报错：未匹配的章节/条目/字段只会
// 产生空结果和更低的置信度。管道不持有任何锁、文件或网络句柄，
// 每次调用都是输入文本的纯函数，可以安全地并发运行多个实例。
type ProfileProcessor struct {
	validator *ContentValidator
	locator   *parser.SectionLocator
	segmenter *parser.EntrySegmenter
	personal  *parser.PersonalInfoExtractor
	work      *parser.WorkExperienceExtractor
	education *parser.EducationExtractor
	skills    *parser.SkillsExtractor
	scorer    *ConfidenceScorer

	parseTimeout time.Duration
}

// NewProfileProcessor 按配置组装管道
func NewProfileProcessor(cfg *config.Config, options ...ProcessorOption) *ProfileProcessor {
	p := &ProfileProcessor{
		validator: NewContentValidator(cfg.Pipeline.MinContentLength, cfg.Pipeline.MinWordCount),
		locator:   parser.NewSectionLocator(),
		segmenter: parser.NewEntrySegmenter(),
		personal:  parser.NewPersonalInfoExtractor(),
		work:      parser.NewWorkExperienceExtractor(),
		education: parser.NewEducationExtractor(),
		skills:    parser.NewSkillsExtractor(),
		scorer: NewConfidenceScorer(
			cfg.Pipeline.ExpectedWorkEntries,
			cfg.Pipeline.ExpectedEducationEntries,
			cfg.Pipeline.ExpectedSkillCount,
			cfg.Pipeline.HighConfidenceCeiling,
		),
		parseTimeout: config.GetDuration(cfg.Pipeline.ParseTimeout, constants.DefaultParseTimeout),
	}

	for _, option := range options {
		option(p)
	}

	return p
}

// Process 对单份文档文本运行完整管道
// 校验失败返回分类错误；校验通过后只返回结构化结果，不再失败
func (p *ProfileProcessor) Process(ctx context.Context, rawText string) (*types.ExtractedProfileData, error) {
	normalized := parser.NormalizeText(rawText)

	if err := p.validator.Validate(normalized); err != nil {
		return nil, err
	}

	profile := p.parse(ctx, normalized)
	return profile, nil
}

// ProcessWithTimeout 在给定的时间预算内运行管道
// 预算耗尽时丢弃已计算的部分结果，返回超时错误
func (p *ProfileProcessor) ProcessWithTimeout(ctx context.Context, rawText string, budget time.Duration) (*types.ExtractedProfileData, error) {
	if budget <= 0 {
		budget = p.parseTimeout
	}
	ctx, cancel := context.WithTimeout(ctx, budget)
	defer cancel()

	if ctx.Err() != nil {
		return nil, NewTimeoutError("parse")
	}

	type outcome struct {
		profile *types.ExtractedProfileData
		err     error
	}
	resultCh := make(chan outcome, 1)

	go func() {
		profile, err := p.Process(ctx, rawText)
		resultCh <- outcome{profile: profile, err: err}
	}()

	select {
	case <-ctx.Done():
		return nil, NewTimeoutError("parse")
	case result := <-resultCh:
		return result.profile, result.err
	}
}

// parse 执行结构化阶段，该阶段从不报错
func (p *ProfileProcessor) parse(ctx context.Context, text string) *types.ExtractedProfileData {
	log := logger.Ctx(ctx)
	profile := &types.ExtractedProfileData{}

	profile.PersonalInfo = p.personal.Extract(text)

	workSection, workFound := p.locator.Locate(text, types.SectionWorkExperience)
	if workFound {
		entries := p.segmenter.SegmentWorkSection(workSection)
		profile.WorkExperience = p.work.Extract(entries)
	}

	educationSection, educationFound := p.locator.Locate(text, types.SectionEducation)
	if educationFound {
		entries := p.segmenter.SegmentEducationSection(educationSection)
		profile.Education = p.education.Extract(entries)
	}

	skillsSection, _ := p.locator.Locate(text, types.SectionSkills)
	summarySection, _ := p.locator.Locate(text, types.SectionSummary)
	profile.Skills = p.skills.Extract(skillsSection, workSection, summarySection)

	profile.Confidence = p.scorer.Score(profile)

	log.Debug().
		Bool("work_section_found", workFound).
		Bool("education_section_found", educationFound).
		Int("work_entries", len(profile.WorkExperience)).
		Int("education_entries", len(profile.Education)).
		Int("skills", len(profile.Skills)).
		Msg("结构化解析完成")

	return profile
}
