package processor

import (
	"context"
	"io"

	"cv-autofill-go/internal/types"
)

// TextExtractor 上游文本提取后端的契约
// 给定已知格式的二进制文档，返回纯文本与后端元数据
// （PDF后端额外报告页数，DOCX后端额外报告非致命结构告警）
type TextExtractor interface {
	// ExtractTextFromReader 从io.Reader提取文本和元数据
	ExtractTextFromReader(ctx context.Context, reader io.Reader, uri string) (string, *types.ExtractionMetadata, error)

	// ExtractTextFromBytes 从字节数组提取文本和元数据
	ExtractTextFromBytes(ctx context.Context, data []byte, uri string) (string, *types.ExtractionMetadata, error)
}
