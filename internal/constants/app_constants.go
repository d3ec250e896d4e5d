package constants

const (
	// 分析接口的 multipart 表单字段名
	FormFieldResume         = "resume"
	FormFieldJobDescription = "job_description"

	// 支持的上传文档媒体类型
	MediaTypePDF       = "application/pdf"
	MediaTypeDOCX      = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
	MediaTypePlainText = "text/plain"

	// DefaultMaxUploadMB 上传文件大小上限（MB）
	DefaultMaxUploadMB = 10
	// DefaultMaxInputBytes 进入分析流程的单篇文本长度上限，
	// 约束 TF-IDF 在超大文档上的耗时
	DefaultMaxInputBytes = 1 << 20
)
