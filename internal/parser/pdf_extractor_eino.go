package parser

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/cloudwego/eino-ext/components/document/parser/pdf"
	einoParser "github.com/cloudwego/eino/components/document/parser"
)

// EinoPDFTextExtractor 使用 Eino PDF Parser 提取文本
type EinoPDFTextExtractor struct {
	parser *pdf.PDFParser
	logger *log.Logger
}

// EinoPDFOption PDF提取器的配置选项
type EinoPDFOption func(*EinoPDFTextExtractor)

// WithEinoLogger 配置自定义日志记录器
func WithEinoLogger(logger *log.Logger) EinoPDFOption {
	return func(e *EinoPDFTextExtractor) {
		e.logger = logger
	}
}

// NewEinoPDFTextExtractor 初始化 Eino PDF 文本提取器
// 默认配置为不按页面分割，以获取整个文档的连续文本
func NewEinoPDFTextExtractor(ctx context.Context, options ...EinoPDFOption) (*EinoPDFTextExtractor, error) {
	p, err := pdf.NewPDFParser(ctx, &pdf.Config{
		ToPages: false, // 我们希望获取整个PDF的文本作为单个字符串
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create Eino PDF parser: %w", err)
	}

	extractor := &EinoPDFTextExtractor{
		parser: p,
		logger: log.New(os.Stderr, "[PDF解析器] ", log.LstdFlags),
	}

	// 应用选项
	for _, option := range options {
		option(extractor)
	}

	return extractor, nil
}

// ExtractTextFromReader 从 io.Reader 中提取PDF文本
func (e *EinoPDFTextExtractor) ExtractTextFromReader(ctx context.Context, reader io.Reader, uri string) (string, error) {
	startTime := time.Now()
	e.logger.Printf("开始从Reader提取PDF文本 (URI: %s)", uri)

	// 创建带超时的上下文
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	docs, err := e.parser.Parse(ctx, reader,
		einoParser.WithURI(uri),
	)

	duration := time.Since(startTime)
	if err != nil {
		e.logger.Printf("从Reader提取PDF失败: %s (用时 %.2f秒)", err, duration.Seconds())
		return "", fmt.Errorf("eino PDF parser failed for URI %s: %w", uri, err)
	}

	if len(docs) == 0 {
		e.logger.Printf("PDF解析无结果 (用时 %.2f秒)", duration.Seconds())
		return "", fmt.Errorf("eino PDF parser returned no documents for URI %s", uri)
	}

	if len(docs) > 1 {
		e.logger.Printf("注意: 返回了多个文档 (%d) (用时 %.2f秒)", len(docs), duration.Seconds())
	}

	// 合并所有文档的内容（以防万一返回了多个）
	var fullContent string
	for i, doc := range docs {
		fullContent += doc.Content
		if i < len(docs)-1 {
			fullContent += "\n\n"
		}
	}

	e.logger.Printf("PDF提取完成: 提取了 %d 个字符 (用时 %.2f秒)", len(fullContent), duration.Seconds())
	return fullContent, nil
}

// ExtractTextFromBytes 从字节数组提取PDF文本内容
func (e *EinoPDFTextExtractor) ExtractTextFromBytes(ctx context.Context, data []byte, uri string) (string, error) {
	return e.ExtractTextFromReader(ctx, bytes.NewReader(data), uri)
}
