package tracing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestMaskPII 不同长度的敏感值掩码规则
func TestMaskPII(t *testing.T) {
	assert.Equal(t, "", MaskPII(""))
	assert.Equal(t, "*", MaskPII("a"))
	assert.Equal(t, "张*", MaskPII("张三"))
	assert.Equal(t, "王*明", MaskPII("王小明"))
	assert.Equal(t, "13*******78", MaskPII("13812345678"))
}

// TestTruncateString 超长字符串保留首尾，中间省略
func TestTruncateString(t *testing.T) {
	assert.Equal(t, "short", TruncateString("short", 10))
	assert.Equal(t, "abc", TruncateString("abcdef", 3))

	out := TruncateString("abcdefghijklmnopqrstuvwxyz", 11)
	assert.Equal(t, "abcd...wxyz", out)
}

// TestSafeAttributeValue 敏感属性名触发掩码，普通属性只截断
func TestSafeAttributeValue(t *testing.T) {
	masked := SafeAttributeValue("user.email", "myemail@example.com", DefaultMaxLength)
	assert.Equal(t, "my***************om", masked)

	plain := SafeAttributeValue("resume.format", "application/pdf", DefaultMaxLength)
	assert.Equal(t, "application/pdf", plain)
}

// TestSafeResumeContent 简历内容按限长截断
func TestSafeResumeContent(t *testing.T) {
	long := make([]byte, 0, 400)
	for i := 0; i < 400; i++ {
		long = append(long, 'r')
	}

	out := SafeResumeContent(string(long))
	assert.LessOrEqual(t, len([]rune(out)), MaxResumeLength)
	assert.Contains(t, out, "...")
}

// TestSafeJobDescription 职位描述按限长截断，短文本原样返回
func TestSafeJobDescription(t *testing.T) {
	short := "Requires Python and AWS."
	assert.Equal(t, short, SafeJobDescription(short))

	long := make([]byte, 0, 400)
	for i := 0; i < 400; i++ {
		long = append(long, 'j')
	}

	out := SafeJobDescription(string(long))
	assert.LessOrEqual(t, len([]rune(out)), MaxJobDescriptionLength)
	assert.Contains(t, out, "...")
}
