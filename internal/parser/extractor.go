package parser

import (
	"context"
	"log"
	"os"
	"path/filepath"
	"strings"

	"resume-match-go/internal/constants"
)

// PDFExtractor PDF 文本提取能力
type PDFExtractor interface {
	ExtractTextFromBytes(ctx context.Context, data []byte, uri string) (string, error)
}

// DocumentExtractor 按媒体类型分发到对应的提取器
type DocumentExtractor struct {
	pdf    PDFExtractor
	docx   *DocxTextExtractor
	logger *log.Logger
}

// NewDocumentExtractor 构造文档提取器。pdf 为 nil 时 PDF 文档将返回提取错误
func NewDocumentExtractor(pdf PDFExtractor, logger *log.Logger) *DocumentExtractor {
	if logger == nil {
		logger = log.New(os.Stderr, "[文档提取] ", log.LstdFlags)
	}
	return &DocumentExtractor{
		pdf:    pdf,
		docx:   NewDocxTextExtractor(logger),
		logger: logger,
	}
}

// ExtractText 根据媒体类型（或文件扩展名兜底）提取纯文本。
// 图片类文档直接拒绝，其余未知类型返回不支持错误
func (d *DocumentExtractor) ExtractText(ctx context.Context, data []byte, filename, contentType string) (string, error) {
	mediaType := normalizeMediaType(contentType)
	if mediaType == "" || mediaType == "application/octet-stream" {
		mediaType = mediaTypeFromExtension(filename)
	}

	switch {
	case strings.HasPrefix(mediaType, "image/"):
		d.logger.Printf("拒绝图片文档: %s (%s)", filename, mediaType)
		return "", NewImageNotSupportedError(filename)

	case mediaType == constants.MediaTypePDF:
		if d.pdf == nil {
			return "", NewExtractError(filename, "PDF 提取器未初始化")
		}
		text, err := d.pdf.ExtractTextFromBytes(ctx, data, filename)
		if err != nil {
			return "", NewExtractError(filename, err.Error())
		}
		return text, nil

	case mediaType == constants.MediaTypeDOCX:
		return d.docx.ExtractTextFromBytes(data, filename)

	case mediaType == constants.MediaTypePlainText || strings.HasPrefix(mediaType, "text/"):
		return string(data), nil

	default:
		d.logger.Printf("不支持的媒体类型: %s (%s)", filename, mediaType)
		return "", NewUnsupportedFormatError(filename, mediaType)
	}
}

// normalizeMediaType 去掉参数部分（如 "; charset=utf-8"）并统一小写
func normalizeMediaType(contentType string) string {
	mediaType := contentType
	if idx := strings.Index(mediaType, ";"); idx >= 0 {
		mediaType = mediaType[:idx]
	}
	return strings.ToLower(strings.TrimSpace(mediaType))
}

func mediaTypeFromExtension(filename string) string {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".pdf":
		return constants.MediaTypePDF
	case ".docx":
		return constants.MediaTypeDOCX
	case ".txt":
		return constants.MediaTypePlainText
	case ".png":
		return "image/png"
	case ".jpg", ".jpeg":
		return "image/jpeg"
	default:
		return ""
	}
}
