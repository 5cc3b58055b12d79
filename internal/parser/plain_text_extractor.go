package parser

import (
	"bytes"
	"context"
	"fmt"
	"io"

	"cv-autofill-go/internal/types"
)

// PlainTextExtractor 纯文本文件的直通提取器
type PlainTextExtractor struct{}

// NewPlainTextExtractor 创建纯文本提取器
func NewPlainTextExtractor() *PlainTextExtractor {
	return &PlainTextExtractor{}
}

// ExtractTextFromReader 读取全部内容并原样返回
func (e *PlainTextExtractor) ExtractTextFromReader(ctx context.Context, reader io.Reader, uri string) (string, *types.ExtractionMetadata, error) {
	data, err := io.ReadAll(reader)
	if err != nil {
		return "", nil, fmt.Errorf("读取文本内容失败: %w", err)
	}
	return e.ExtractTextFromBytes(ctx, data, uri)
}

// ExtractTextFromBytes 从字节数组返回文本
func (e *PlainTextExtractor) ExtractTextFromBytes(_ context.Context, data []byte, _ string) (string, *types.ExtractionMetadata, error) {
	// 去掉可能存在的UTF-8 BOM
	data = bytes.TrimPrefix(data, []byte{0xEF, 0xBB, 0xBF})
	text := string(data)
	return text, &types.ExtractionMetadata{
		SourceFormat: "txt",
		TextLength:   len(text),
	}, nil
}
