package handler

import (
	"context"
	"errors"
	"io"
	"strings"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/common/utils"
	"github.com/cloudwego/hertz/pkg/protocol/consts"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"resume-match-go/internal/analyzer"
	"resume-match-go/internal/config"
	"resume-match-go/internal/constants"
	"resume-match-go/internal/logger"
	"resume-match-go/internal/parser"
	"resume-match-go/internal/tracing"
)

// AnalyzeHandler 匹配分析处理器，负责协调上传文档的提取与打分
type AnalyzeHandler struct {
	cfg       *config.Config
	extractor *parser.DocumentExtractor
	analyzer  *analyzer.Analyzer
	tracer    trace.Tracer
}

// NewAnalyzeHandler 创建一个新的匹配分析处理器
func NewAnalyzeHandler(
	cfg *config.Config,
	extractor *parser.DocumentExtractor,
	matchAnalyzer *analyzer.Analyzer,
) *AnalyzeHandler {
	return &AnalyzeHandler{
		cfg:       cfg,
		extractor: extractor,
		analyzer:  matchAnalyzer,
		tracer:    otel.Tracer("resume-match-go/api"),
	}
}

// HandleAnalyze 处理简历与职位描述的匹配分析请求
func (h *AnalyzeHandler) HandleAnalyze(c context.Context, ctx *app.RequestContext) {
	requestID := uuid.New().String()
	c, span := h.tracer.Start(c, "api.analyze")
	defer span.End()
	span.SetAttributes(attribute.String("request.id", requestID))

	// 1. 取简历文件
	fileHeader, err := ctx.FormFile(constants.FormFieldResume)
	if err != nil {
		tracing.RecordHTTPError(span, err, consts.StatusBadRequest)
		ctx.JSON(consts.StatusBadRequest, utils.H{"error": "No resume file uploaded"})
		return
	}

	// 2. 取职位描述
	jobDescription := ctx.PostForm(constants.FormFieldJobDescription)
	if strings.TrimSpace(jobDescription) == "" {
		err := errors.New("missing job description")
		tracing.RecordError(span, err, tracing.ErrorTypeValidation)
		ctx.JSON(consts.StatusBadRequest, utils.H{"error": "No job description provided"})
		return
	}

	// 3. 尺寸限制：文件大小与文本长度各有上限
	maxFileBytes := int64(h.cfg.Upload.MaxFileSizeMB) << 20
	if fileHeader.Size > maxFileBytes {
		err := errors.New("resume file too large")
		tracing.RecordError(span, err, tracing.ErrorTypeValidation)
		ctx.JSON(consts.StatusBadRequest, utils.H{"error": "Resume file exceeds the size limit"})
		return
	}
	if len(jobDescription) > h.cfg.Analyzer.MaxInputBytes {
		err := errors.New("job description too large")
		tracing.RecordError(span, err, tracing.ErrorTypeValidation)
		ctx.JSON(consts.StatusBadRequest, utils.H{"error": "Job description exceeds the size limit"})
		return
	}

	// 4. 读取文件内容
	file, err := fileHeader.Open()
	if err != nil {
		tracing.RecordError(span, err, tracing.ErrorTypeInternal)
		ctx.JSON(consts.StatusInternalServerError, utils.H{"error": "Error processing file"})
		return
	}
	defer file.Close()

	fileBytes, err := io.ReadAll(file)
	if err != nil {
		tracing.RecordError(span, err, tracing.ErrorTypeInternal)
		ctx.JSON(consts.StatusInternalServerError, utils.H{"error": "Error processing file"})
		return
	}

	contentType := fileHeader.Header.Get("Content-Type")
	span.SetAttributes(
		attribute.String("resume.filename", tracing.SafeAttributeValue("resume.filename", fileHeader.Filename, tracing.MaxHeaderLength)),
		attribute.String("resume.content_type", contentType),
		attribute.Int64("resume.size_bytes", fileHeader.Size),
	)

	// 5. 提取纯文本
	resumeText, err := h.extractor.ExtractText(c, fileBytes, fileHeader.Filename, contentType)
	if err != nil {
		switch {
		case errors.Is(err, parser.ErrImageNotSupported):
			tracing.RecordError(span, err, tracing.ErrorTypeValidation)
			ctx.JSON(consts.StatusBadRequest, utils.H{"error": parser.ErrImageNotSupported.Error()})
		case errors.Is(err, parser.ErrUnsupportedFormat):
			tracing.RecordError(span, err, tracing.ErrorTypeValidation)
			ctx.JSON(consts.StatusBadRequest, utils.H{"error": "Unsupported file format. Please upload a PDF, DOCX, or plain text resume."})
		default:
			logger.Error().
				Err(err).
				Str("request_id", requestID).
				Str("filename", fileHeader.Filename).
				Msg("简历文本提取失败")
			tracing.RecordError(span, err, tracing.ErrorTypeExtraction)
			ctx.JSON(consts.StatusInternalServerError, utils.H{"error": err.Error()})
		}
		return
	}

	if strings.TrimSpace(resumeText) == "" {
		err := parser.NewEmptyDocumentError(fileHeader.Filename)
		tracing.RecordError(span, err, tracing.ErrorTypeValidation)
		ctx.JSON(consts.StatusBadRequest, utils.H{"error": "Could not extract text from resume"})
		return
	}
	if len(resumeText) > h.cfg.Analyzer.MaxInputBytes {
		err := errors.New("extracted resume text too large")
		tracing.RecordError(span, err, tracing.ErrorTypeValidation)
		ctx.JSON(consts.StatusBadRequest, utils.H{"error": "Resume text exceeds the size limit"})
		return
	}

	// 原文只在 span 上留截断后的预览，完整内容不进链路
	span.SetAttributes(
		attribute.String("analysis.resume_preview", tracing.SafeResumeContent(resumeText)),
		attribute.String("analysis.job_description_preview", tracing.SafeJobDescription(jobDescription)),
	)

	// 6. 计算匹配分
	result := h.analyzer.CalculateMatchScore(resumeText, jobDescription)

	logger.Info().
		Str("request_id", requestID).
		Str("filename", fileHeader.Filename).
		Int("overall_score", result.OverallScore).
		Int("resume_chars", len(resumeText)).
		Msg("匹配分析完成")
	span.SetAttributes(attribute.Int("analysis.overall_score", result.OverallScore))

	ctx.JSON(consts.StatusOK, result)
}

// HandleHealth 健康检查
func (h *AnalyzeHandler) HandleHealth(c context.Context, ctx *app.RequestContext) {
	ctx.JSON(consts.StatusOK, utils.H{"status": "ok"})
}
