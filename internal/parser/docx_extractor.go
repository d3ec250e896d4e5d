package parser

import (
	"bytes"
	"log"
	"os"
	"regexp"
	"strings"

	"github.com/nguyenthenguyen/docx"
)

// DOCX 正文是 WordprocessingML，提取后需要剥掉标签才是纯文本。
// 段落和换行标签先替换为换行，保持原文的行结构
var (
	docxBlockPattern = regexp.MustCompile(`</w:p>|<w:br[^>]*/?>`)
	docxTagPattern   = regexp.MustCompile(`<[^>]+>`)
)

// 常见的 XML 实体还原
var docxEntityReplacer = strings.NewReplacer(
	"&amp;", "&",
	"&lt;", "<",
	"&gt;", ">",
	"&quot;", `"`,
	"&apos;", "'",
)

// DocxTextExtractor 从 DOCX 文档提取纯文本
type DocxTextExtractor struct {
	logger *log.Logger
}

// NewDocxTextExtractor 初始化 DOCX 文本提取器
func NewDocxTextExtractor(logger *log.Logger) *DocxTextExtractor {
	if logger == nil {
		logger = log.New(os.Stderr, "[DOCX解析器] ", log.LstdFlags)
	}
	return &DocxTextExtractor{logger: logger}
}

// ExtractTextFromBytes 从字节数组提取 DOCX 文本内容
func (e *DocxTextExtractor) ExtractTextFromBytes(data []byte, filename string) (string, error) {
	doc, err := docx.ReadDocxFromMemory(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		e.logger.Printf("读取DOCX失败: %s (%s)", filename, err)
		return "", NewExtractError(filename, err.Error())
	}
	defer doc.Close()

	content := doc.Editable().GetContent()
	text := stripDocxMarkup(content)

	e.logger.Printf("DOCX提取完成: %s, 提取了 %d 个字符", filename, len(text))
	return text, nil
}

func stripDocxMarkup(content string) string {
	text := docxBlockPattern.ReplaceAllString(content, "\n")
	text = docxTagPattern.ReplaceAllString(text, " ")
	text = docxEntityReplacer.Replace(text)

	// 逐行压缩空白，保留段落边界
	lines := strings.Split(text, "\n")
	out := make([]string, 0, len(lines))
	for _, line := range lines {
		line = strings.Join(strings.Fields(line), " ")
		if line != "" {
			out = append(out, line)
		}
	}
	return strings.Join(out, "\n")
}
