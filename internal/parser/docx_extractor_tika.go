package parser

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"cv-autofill-go/internal/logger"
	"cv-autofill-go/internal/types"
)

// TikaDOCXExtractor 基于Apache Tika服务器的DOCX文本提取器
type TikaDOCXExtractor struct {
	// Tika服务器地址，例如 http://localhost:9998
	ServerURL string
	// HTTP客户端，可配置超时等参数
	Client *http.Client
	// 是否额外请求元数据（用于收集结构告警）
	extractMetadata bool
	logger          zerolog.Logger
}

// TikaOption 定义配置选项函数
type TikaOption func(*TikaDOCXExtractor)

// WithTikaMetadata 配置是否提取元数据
func WithTikaMetadata(extract bool) TikaOption {
	return func(e *TikaDOCXExtractor) {
		e.extractMetadata = extract
	}
}

// WithTikaLogger 配置自定义日志记录器
func WithTikaLogger(l zerolog.Logger) TikaOption {
	return func(e *TikaDOCXExtractor) {
		e.logger = l
	}
}

// WithTikaTimeout 配置HTTP客户端超时时间
func WithTikaTimeout(timeout time.Duration) TikaOption {
	return func(e *TikaDOCXExtractor) {
		e.Client.Timeout = timeout
	}
}

// NewTikaDOCXExtractor 创建一个新的Tika DOCX提取器
func NewTikaDOCXExtractor(serverURL string, options ...TikaOption) *TikaDOCXExtractor {
	extractor := &TikaDOCXExtractor{
		ServerURL: serverURL,
		Client: &http.Client{
			Timeout: 60 * time.Second,
		},
		extractMetadata: true,
		logger:          logger.Logger.With().Str("component", "docx_extractor").Logger(),
	}

	for _, option := range options {
		option(extractor)
	}

	return extractor
}

// ExtractTextFromReader 从io.Reader提取DOCX文本内容
func (e *TikaDOCXExtractor) ExtractTextFromReader(ctx context.Context, reader io.Reader, uri string) (string, *types.ExtractionMetadata, error) {
	data, err := io.ReadAll(reader)
	if err != nil {
		return "", nil, fmt.Errorf("读取DOCX内容失败: %w", err)
	}
	return e.ExtractTextFromBytes(ctx, data, uri)
}

// ExtractTextFromBytes 从字节数组提取DOCX文本内容
// 文本通过Tika的纯文本模式获取；元数据单独请求，失败时只降级为无告警
func (e *TikaDOCXExtractor) ExtractTextFromBytes(ctx context.Context, data []byte, uri string) (string, *types.ExtractionMetadata, error) {
	startTime := time.Now()
	e.logger.Debug().Str("uri", uri).Msg("开始从Tika提取DOCX文本")

	text, err := e.requestText(ctx, data, uri)
	if err != nil {
		e.logger.Warn().Err(err).Str("uri", uri).Msg("DOCX提取失败")
		return "", nil, err
	}

	metadata := &types.ExtractionMetadata{
		SourceFormat: "docx",
		TextLength:   len(text),
	}

	if e.extractMetadata {
		// 元数据提取失败不是致命错误，继续返回文本
		if warnings, err := e.requestWarnings(ctx, data, uri); err == nil {
			metadata.Warnings = warnings
		} else {
			e.logger.Debug().Err(err).Msg("元数据提取失败，忽略结构告警")
		}
	}

	e.logger.Debug().
		Str("uri", uri).
		Int("text_length", len(text)).
		Int("warnings", len(metadata.Warnings)).
		Dur("duration", time.Since(startTime)).
		Msg("DOCX提取完成")
	return text, metadata, nil
}

// requestText 请求Tika的纯文本提取接口
func (e *TikaDOCXExtractor) requestText(ctx context.Context, data []byte, uri string) (string, error) {
	url := fmt.Sprintf("%s/tika", e.ServerURL)

	req, err := http.NewRequestWithContext(ctx, http.MethodPut, url, bytes.NewReader(data))
	if err != nil {
		return "", fmt.Errorf("创建HTTP请求失败: %w", err)
	}
	req.Header.Set("Content-Type", "application/vnd.openxmlformats-officedocument.wordprocessingml.document")
	req.Header.Set("Accept", "text/plain")
	if uri != "" {
		req.Header.Set("X-Tika-Resource-Name", uri)
	}

	resp, err := e.Client.Do(req)
	if err != nil {
		return "", fmt.Errorf("发送请求到Tika服务器失败: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("tika服务器返回错误状态码: %d", resp.StatusCode)
	}

	textBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("读取Tika响应失败: %w", err)
	}
	return string(textBytes), nil
}

// requestWarnings 请求元数据接口并收集非致命结构告警
func (e *TikaDOCXExtractor) requestWarnings(ctx context.Context, data []byte, uri string) ([]string, error) {
	url := fmt.Sprintf("%s/meta", e.ServerURL)

	req, err := http.NewRequestWithContext(ctx, http.MethodPut, url, bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("创建HTTP请求失败: %w", err)
	}
	req.Header.Set("Content-Type", "application/vnd.openxmlformats-officedocument.wordprocessingml.document")
	req.Header.Set("Accept", "application/json")
	if uri != "" {
		req.Header.Set("X-Tika-Resource-Name", uri)
	}

	resp, err := e.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("发送请求到Tika服务器失败: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("tika服务器返回错误状态码: %d", resp.StatusCode)
	}

	var meta map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&meta); err != nil {
		return nil, fmt.Errorf("解析Tika元数据失败: %w", err)
	}

	// Tika把解析过程中的非致命问题记录在这些键下
	var warnings []string
	for _, key := range []string{"X-TIKA:EXCEPTION:warn", "X-TIKA:WARN"} {
		switch v := meta[key].(type) {
		case string:
			warnings = append(warnings, v)
		case []any:
			for _, item := range v {
				if s, ok := item.(string); ok {
					warnings = append(warnings, s)
				}
			}
		}
	}
	return warnings, nil
}
