package processor

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

// ErrorCode 解析失败的分类码
type ErrorCode string

const (
	// CodeUnsupportedFormat 文件扩展名/MIME不被支持
	CodeUnsupportedFormat ErrorCode = "UNSUPPORTED_FORMAT"
	// CodeCorruptedFile 后端报告文件结构/签名无效
	CodeCorruptedFile ErrorCode = "CORRUPTED_FILE"
	// CodePasswordProtected 后端报告文件已加密或需要密码
	CodePasswordProtected ErrorCode = "PASSWORD_PROTECTED"
	// CodeExtractionFailed 不属于更具体类别的后端提取失败
	CodeExtractionFailed ErrorCode = "EXTRACTION_FAILED"
	// CodeEmptyContent 提取后的文本为空或全部是空白
	CodeEmptyContent ErrorCode = "EMPTY_CONTENT"
	// CodeInsufficientContent 文本非空但低于长度/词数阈值
	CodeInsufficientContent ErrorCode = "INSUFFICIENT_CONTENT"
	// CodeSizeLimitExceeded 输入文件超过配置的字节上限
	CodeSizeLimitExceeded ErrorCode = "SIZE_LIMIT_EXCEEDED"
	// CodeTimeout 提取或解析阶段超出时间预算
	CodeTimeout ErrorCode = "TIMEOUT"
)

// 定义基础错误类型
var (
	ErrUnsupportedFormat   = errors.New("不支持的文件格式")
	ErrCorruptedFile       = errors.New("文件已损坏")
	ErrPasswordProtected   = errors.New("文件受密码保护")
	ErrExtractionFailed    = errors.New("文本提取失败")
	ErrEmptyContent        = errors.New("提取内容为空")
	ErrInsufficientContent = errors.New("提取内容不足")
	ErrSizeLimitExceeded   = errors.New("文件大小超出限制")
	ErrTimeout             = errors.New("处理超时")
)

// userMessages 各分类码对应的用户可读提示
var userMessages = map[ErrorCode]string{
	CodeUnsupportedFormat:   "暂不支持该文件格式，请上传PDF、DOCX或TXT文件",
	CodeCorruptedFile:       "文件似乎已损坏，请尝试重新导出后再上传",
	CodePasswordProtected:   "文件受密码保护，请先去除密码后再上传",
	CodeExtractionFailed:    "无法读取该文件的内容，请尝试其他文件",
	CodeEmptyContent:        "未能从文件中读取到文字内容",
	CodeInsufficientContent: "简历内容过少，请上传一份完整的简历",
	CodeSizeLimitExceeded:   "文件过大，请上传10MB以内的文件",
	CodeTimeout:             "处理时间过长已中止，请稍后重试",
}

// baseErrors 分类码到基础错误的映射
var baseErrors = map[ErrorCode]error{
	CodeUnsupportedFormat:   ErrUnsupportedFormat,
	CodeCorruptedFile:       ErrCorruptedFile,
	CodePasswordProtected:   ErrPasswordProtected,
	CodeExtractionFailed:    ErrExtractionFailed,
	CodeEmptyContent:        ErrEmptyContent,
	CodeInsufficientContent: ErrInsufficientContent,
	CodeSizeLimitExceeded:   ErrSizeLimitExceeded,
	CodeTimeout:             ErrTimeout,
}

// ProfileError 带分类码和双重消息的解析错误
// 技术信息面向日志，UserMessage面向最终用户
type ProfileError struct {
	Code        ErrorCode
	Op          string
	BaseErr     error
	Detail      string
	UserMessage string
}

func (e *ProfileError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("%s (操作:%s, 代码:%s): %s", e.BaseErr, e.Op, e.Code, e.Detail)
	}
	return fmt.Sprintf("%s (操作:%s, 代码:%s)", e.BaseErr, e.Op, e.Code)
}

func (e *ProfileError) Unwrap() error {
	return e.BaseErr
}

// Is 实现 errors.Is 接口以支持错误比较
func (e *ProfileError) Is(target error) bool {
	return errors.Is(e.BaseErr, target)
}

// newProfileError 按分类码构造错误，补齐基础错误与用户提示
func newProfileError(code ErrorCode, op, detail string) *ProfileError {
	return &ProfileError{
		Code:        code,
		Op:          op,
		BaseErr:     baseErrors[code],
		Detail:      detail,
		UserMessage: userMessages[code],
	}
}

// 错误构造函数
func NewUnsupportedFormatError(ext string) error {
	return newProfileError(CodeUnsupportedFormat, "detect_format", fmt.Sprintf("扩展名 %q", ext))
}

func NewCorruptedFileError(detail string) error {
	return newProfileError(CodeCorruptedFile, "extract", detail)
}

func NewPasswordProtectedError(detail string) error {
	return newProfileError(CodePasswordProtected, "extract", detail)
}

func NewExtractionError(detail string) error {
	return newProfileError(CodeExtractionFailed, "extract", detail)
}

func NewEmptyContentError() error {
	return newProfileError(CodeEmptyContent, "validate", "")
}

func NewInsufficientContentError(detail string) error {
	return newProfileError(CodeInsufficientContent, "validate", detail)
}

func NewSizeLimitError(size, limit int64) error {
	return newProfileError(CodeSizeLimitExceeded, "precheck", fmt.Sprintf("%d字节，上限%d字节", size, limit))
}

func NewTimeoutError(op string) error {
	return newProfileError(CodeTimeout, op, "")
}

// ClassifyExtractionError 检查后端错误文本，将其重新归类到错误分类体系
// 密码/加密 -> 受密码保护；结构无效 -> 文件损坏；超时 -> 超时；其余 -> 提取失败
func ClassifyExtractionError(err error) error {
	if err == nil {
		return nil
	}

	var pe *ProfileError
	if errors.As(err, &pe) {
		return err // 已经分类过
	}

	if errors.Is(err, context.DeadlineExceeded) {
		return NewTimeoutError("extract")
	}

	msg := strings.ToLower(err.Error())
	switch {
	case containsAny(msg, "password", "encrypted", "encryption", "protected"):
		return NewPasswordProtectedError(err.Error())
	case containsAny(msg, "corrupt", "invalid", "malformed", "damaged", "signature", "not a pdf", "bad xref", "unexpected eof"):
		return NewCorruptedFileError(err.Error())
	case containsAny(msg, "timeout", "deadline"):
		return NewTimeoutError("extract")
	default:
		return NewExtractionError(err.Error())
	}
}

func containsAny(s string, substrings ...string) bool {
	for _, sub := range substrings {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}

// ErrorCodeOf 提取错误的分类码，未分类错误返回空串
func ErrorCodeOf(err error) ErrorCode {
	var pe *ProfileError
	if errors.As(err, &pe) {
		return pe.Code
	}
	return ""
}

// UserMessageOf 提取错误的用户可读提示
func UserMessageOf(err error) string {
	var pe *ProfileError
	if errors.As(err, &pe) {
		return pe.UserMessage
	}
	return userMessages[CodeExtractionFailed]
}
