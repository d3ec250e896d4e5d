package handler_test

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/textproto"
	"testing"

	"github.com/cloudwego/hertz/pkg/app/server"
	"github.com/cloudwego/hertz/pkg/common/ut"
	"github.com/cloudwego/hertz/pkg/route"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"resume-match-go/internal/analyzer"
	"resume-match-go/internal/api/handler"
	"resume-match-go/internal/api/router"
	"resume-match-go/internal/config"
	"resume-match-go/internal/parser"
)

func newTestEngine(t *testing.T) *route.Engine {
	t.Helper()

	cfg, err := config.LoadConfig("")
	require.NoError(t, err)

	matchAnalyzer, err := analyzer.NewAnalyzer()
	require.NoError(t, err)

	// 路由测试只覆盖文本类简历，不注入 PDF 提取器
	extractor := parser.NewDocumentExtractor(nil, nil)

	h := server.Default()
	router.RegisterRoutes(h, cfg, handler.NewAnalyzeHandler(cfg, extractor, matchAnalyzer))
	return h.Engine
}

// multipartBody 构造分析请求的 multipart 表单
func multipartBody(t *testing.T, resume []byte, filename, contentType, jobDescription string) (*bytes.Buffer, string) {
	t.Helper()

	buf := &bytes.Buffer{}
	writer := multipart.NewWriter(buf)

	if resume != nil {
		header := textproto.MIMEHeader{}
		header.Set("Content-Disposition", `form-data; name="resume"; filename="`+filename+`"`)
		header.Set("Content-Type", contentType)
		part, err := writer.CreatePart(header)
		require.NoError(t, err)
		_, err = part.Write(resume)
		require.NoError(t, err)
	}
	if jobDescription != "" {
		require.NoError(t, writer.WriteField("job_description", jobDescription))
	}
	require.NoError(t, writer.Close())

	return buf, writer.FormDataContentType()
}

func performAnalyze(t *testing.T, engine *route.Engine, body *bytes.Buffer, contentType string) *ut.ResponseRecorder {
	t.Helper()
	return ut.PerformRequest(engine, "POST", "/api/v1/analyze",
		&ut.Body{Body: bytes.NewReader(body.Bytes()), Len: body.Len()},
		ut.Header{Key: "Content-Type", Value: contentType},
	)
}

// TestAnalyzeMissingResume 缺少简历文件部分返回 400 和固定错误体
func TestAnalyzeMissingResume(t *testing.T) {
	engine := newTestEngine(t)

	body, contentType := multipartBody(t, nil, "", "", "Requires Python and AWS.")
	w := performAnalyze(t, engine, body, contentType)

	resp := w.Result()
	assert.Equal(t, 400, resp.StatusCode())
	assert.JSONEq(t, `{"error":"No resume file uploaded"}`, string(resp.Body()))
}

// TestAnalyzeMissingJobDescription 缺少职位描述返回 400 和固定错误体
func TestAnalyzeMissingJobDescription(t *testing.T) {
	engine := newTestEngine(t)

	body, contentType := multipartBody(t, []byte("Python developer"), "resume.txt", "text/plain", "")
	w := performAnalyze(t, engine, body, contentType)

	resp := w.Result()
	assert.Equal(t, 400, resp.StatusCode())
	assert.JSONEq(t, `{"error":"No job description provided"}`, string(resp.Body()))
}

// TestAnalyzeBlankResumeText 提取文本为空白时返回 400
func TestAnalyzeBlankResumeText(t *testing.T) {
	engine := newTestEngine(t)

	body, contentType := multipartBody(t, []byte("   \n\t "), "resume.txt", "text/plain", "Requires Python.")
	w := performAnalyze(t, engine, body, contentType)

	resp := w.Result()
	assert.Equal(t, 400, resp.StatusCode())
	assert.JSONEq(t, `{"error":"Could not extract text from resume"}`, string(resp.Body()))
}

// TestAnalyzeImageRejected 图片简历返回固定的拒绝消息
func TestAnalyzeImageRejected(t *testing.T) {
	engine := newTestEngine(t)

	body, contentType := multipartBody(t, []byte{0x89, 0x50, 0x4E, 0x47}, "resume.png", "image/png", "Requires Python.")
	w := performAnalyze(t, engine, body, contentType)

	resp := w.Result()
	assert.Equal(t, 400, resp.StatusCode())
	assert.JSONEq(t,
		`{"error":"Image upload not supported. Please upload a text-based PDF resume."}`,
		string(resp.Body()))
}

// TestAnalyzePlainTextSuccess 文本简历走通完整分析流程
func TestAnalyzePlainTextSuccess(t *testing.T) {
	engine := newTestEngine(t)

	resume := []byte("Experienced in Python and Java development.")
	jd := "We are committed to diversity. Requires Python, AWS, and strong communication in a fast paced environment."

	body, contentType := multipartBody(t, resume, "resume.txt", "text/plain", jd)
	w := performAnalyze(t, engine, body, contentType)

	resp := w.Result()
	require.Equal(t, 200, resp.StatusCode())

	var result analyzer.ScoreBreakdown
	require.NoError(t, json.Unmarshal(resp.Body(), &result))

	assert.Equal(t, []string{"python"}, result.MatchedHardSkills)
	assert.Equal(t, []string{"aws"}, result.MissingHardSkills)
	assert.Equal(t, 50, result.HardSkillsScore)
	assert.NotEmpty(t, result.Recommendations)
}

// TestHealthEndpoint 健康检查
func TestHealthEndpoint(t *testing.T) {
	engine := newTestEngine(t)

	w := ut.PerformRequest(engine, "GET", "/api/v1/health", nil)
	resp := w.Result()

	assert.Equal(t, 200, resp.StatusCode())
	assert.JSONEq(t, `{"status":"ok"}`, string(resp.Body()))
}
