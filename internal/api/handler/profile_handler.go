package handler

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/gofrs/uuid/v5"

	"cv-autofill-go/internal/config"
	"cv-autofill-go/internal/constants"
	"cv-autofill-go/internal/logger"
	"cv-autofill-go/internal/processor"
	"cv-autofill-go/internal/types"
)

// ProfileHandler 档案解析处理器，负责协调一次解析请求的处理流程：
// 大小/格式预检 -> 选择提取后端 -> 限时提取 -> 限时结构化解析
type ProfileHandler struct {
	cfg *config.Config

	pdfExtractor  processor.TextExtractor
	docxExtractor processor.TextExtractor
	textExtractor processor.TextExtractor

	processorModule *processor.ProfileProcessor
}

// NewProfileHandler 创建一个新的档案解析处理器
func NewProfileHandler(
	cfg *config.Config,
	pdfExtractor processor.TextExtractor,
	docxExtractor processor.TextExtractor,
	textExtractor processor.TextExtractor,
	processorModule *processor.ProfileProcessor,
) *ProfileHandler {
	return &ProfileHandler{
		cfg:             cfg,
		pdfExtractor:    pdfExtractor,
		docxExtractor:   docxExtractor,
		textExtractor:   textExtractor,
		processorModule: processorModule,
	}
}

// ParseResponse 档案解析响应
type ParseResponse struct {
	SubmissionUUID  string                      `json:"submission_uuid"`
	Status          string                      `json:"status"`
	PipelineVersion string                      `json:"pipeline_version"`
	Profile         *types.ExtractedProfileData `json:"profile,omitempty"`
	Metadata        *types.ExtractionMetadata   `json:"metadata,omitempty"`
}

// HandleParseRequest 处理一次文件解析请求
// 校验类失败（大小、格式）在任何提取动作之前报告；
// 提取/超时失败在管道边界被捕获并重新归类到错误分类体系
func (h *ProfileHandler) HandleParseRequest(ctx context.Context, reader io.Reader, fileSize int64, filename string) (*ParseResponse, error) {
	// 0. 大小预检，必须在读取文件内容之前
	if fileSize > h.cfg.Server.MaxUploadBytes {
		return nil, processor.NewSizeLimitError(fileSize, h.cfg.Server.MaxUploadBytes)
	}

	data, err := io.ReadAll(io.LimitReader(reader, h.cfg.Server.MaxUploadBytes+1))
	if err != nil {
		return nil, fmt.Errorf("读取上传内容失败: %w", err)
	}
	if int64(len(data)) > h.cfg.Server.MaxUploadBytes {
		return nil, processor.NewSizeLimitError(int64(len(data)), h.cfg.Server.MaxUploadBytes)
	}

	// 1. 格式预检：扩展名优先，失败时按文件头嗅探
	format, err := detectFormat(filename, data)
	if err != nil {
		return nil, err
	}
	extractor, budget := h.selectBackend(format)

	// 2. 生成提交UUID，用于日志关联
	uuidV7, err := uuid.NewV7()
	if err != nil {
		return nil, fmt.Errorf("生成UUIDv7失败: %w", err)
	}
	submissionUUID := uuidV7.String()

	log := logger.Logger.With().
		Str("submission_uuid", submissionUUID).
		Str("filename", filename).
		Str("format", format).
		Logger()
	ctx = log.WithContext(ctx)

	// 3. 限时提取文本
	extractCtx, cancel := context.WithTimeout(ctx, budget)
	defer cancel()

	text, metadata, err := extractor.ExtractTextFromBytes(extractCtx, data, filename)
	if err != nil {
		classified := processor.ClassifyExtractionError(err)
		log.Warn().Err(err).Str("code", string(processor.ErrorCodeOf(classified))).Msg("文本提取失败")
		return nil, classified
	}
	log.Info().Int("text_length", len(text)).Msg("文本提取完成")

	// 4. 限时结构化解析
	parseBudget := config.GetDuration(h.cfg.Pipeline.ParseTimeout, constants.DefaultParseTimeout)
	profile, err := h.processorModule.ProcessWithTimeout(ctx, text, parseBudget)
	if err != nil {
		log.Warn().Err(err).Msg("结构化解析失败")
		return nil, err
	}

	log.Info().
		Float64("personal_info_confidence", profile.Confidence.PersonalInfo).
		Float64("work_confidence", profile.Confidence.WorkExperience).
		Float64("education_confidence", profile.Confidence.Education).
		Float64("skills_confidence", profile.Confidence.Skills).
		Msg("档案解析完成")

	return &ParseResponse{
		SubmissionUUID:  submissionUUID,
		Status:          "PARSED",
		PipelineVersion: constants.PipelineVersion,
		Profile:         profile,
		Metadata:        metadata,
	}, nil
}

// selectBackend 按文件格式选择提取后端与对应的超时预算
func (h *ProfileHandler) selectBackend(format string) (processor.TextExtractor, time.Duration) {
	switch format {
	case "pdf":
		return h.pdfExtractor, config.GetDuration(h.cfg.Pipeline.PDFTimeout, constants.DefaultPDFTimeout)
	case "docx", "doc":
		return h.docxExtractor, config.GetDuration(h.cfg.Pipeline.DOCXTimeout, constants.DefaultDOCXTimeout)
	default: // txt
		return h.textExtractor, config.GetDuration(h.cfg.Pipeline.DOCXTimeout, constants.DefaultDOCXTimeout)
	}
}

// detectFormat 判定上传文件的格式
// 扩展名可信时直接采用；无扩展名或未知扩展名时按文件头魔数嗅探，
// 两者都失败返回不支持的格式错误
func detectFormat(filename string, data []byte) (string, error) {
	ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(filename)), ".")
	switch ext {
	case "pdf", "docx", "doc", "txt":
		return ext, nil
	}

	switch {
	case bytes.HasPrefix(data, []byte("%PDF-")):
		return "pdf", nil
	case bytes.HasPrefix(data, []byte("PK\x03\x04")):
		// OOXML容器（docx本质是zip包）
		return "docx", nil
	case len(data) > 0 && utf8.Valid(data) && !bytes.ContainsRune(data, 0):
		return "txt", nil
	}

	return "", processor.NewUnsupportedFormatError(ext)
}
