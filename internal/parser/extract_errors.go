package parser

import (
	"errors"
	"fmt"
)

// 定义基础错误类型
var (
	ErrUnsupportedFormat = errors.New("不支持的文档格式")
	ErrImageNotSupported = errors.New("Image upload not supported. Please upload a text-based PDF resume.")
	ErrExtractTextFailed = errors.New("提取文档文本失败")
	ErrEmptyDocument     = errors.New("文档中没有可提取的文本")
)

// ExtractError 包含详细错误信息的自定义错误
type ExtractError struct {
	Filename string
	Op       string
	BaseErr  error
	Detail   string
}

func (e *ExtractError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("%s (操作:%s, 文件:%s): %s", e.BaseErr, e.Op, e.Filename, e.Detail)
	}
	return fmt.Sprintf("%s (操作:%s, 文件:%s)", e.BaseErr, e.Op, e.Filename)
}

func (e *ExtractError) Unwrap() error {
	return e.BaseErr
}

// Is 实现 errors.Is 接口以支持错误比较
func (e *ExtractError) Is(target error) bool {
	return errors.Is(e.BaseErr, target)
}

// 错误构造函数
func NewUnsupportedFormatError(filename, detail string) error {
	return &ExtractError{
		Filename: filename,
		Op:       "dispatch",
		BaseErr:  ErrUnsupportedFormat,
		Detail:   detail,
	}
}

func NewImageNotSupportedError(filename string) error {
	return &ExtractError{
		Filename: filename,
		Op:       "dispatch",
		BaseErr:  ErrImageNotSupported,
	}
}

func NewExtractError(filename, detail string) error {
	return &ExtractError{
		Filename: filename,
		Op:       "extract",
		BaseErr:  ErrExtractTextFailed,
		Detail:   detail,
	}
}

func NewEmptyDocumentError(filename string) error {
	return &ExtractError{
		Filename: filename,
		Op:       "extract",
		BaseErr:  ErrEmptyDocument,
	}
}
