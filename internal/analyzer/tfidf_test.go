package analyzer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestCosineCoverageIdenticalDocuments 同一文本自比较的覆盖度为 100
func TestCosineCoverageIdenticalDocuments(t *testing.T) {
	text := "senior python developer with kubernetes and aws experience"

	assert.Equal(t, 100.0, CosineCoverage(text, text))
}

// TestCosineCoverageDisjointDocuments 完全无交集的文档覆盖度为 0
func TestCosineCoverageDisjointDocuments(t *testing.T) {
	assert.Equal(t, 0.0, CosineCoverage("golang rust systems", "cooking baking pastry"))
}

// TestCosineCoverageDegenerateInput 词汇表为空或单侧为零向量时降级为 0，不报错
func TestCosineCoverageDegenerateInput(t *testing.T) {
	assert.Equal(t, 0.0, CosineCoverage("", ""))
	// 所有词元长度不足 2，向量化后词汇表为空
	assert.Equal(t, 0.0, CosineCoverage("a b c", "x y z"))
	// 单侧为空
	assert.Equal(t, 0.0, CosineCoverage("python developer", ""))
}

// TestCosineCoveragePartialOverlap 部分重叠的文档得分落在 (0,100) 开区间
func TestCosineCoveragePartialOverlap(t *testing.T) {
	score := CosineCoverage(
		"python developer with cloud experience",
		"python engineer with database experience",
	)

	assert.Greater(t, score, 0.0)
	assert.Less(t, score, 100.0)
}

// TestCosineCoverageSymmetric 余弦相似度对文档顺序对称
func TestCosineCoverageSymmetric(t *testing.T) {
	docA := "backend services in go and postgresql"
	docB := "frontend react application with typescript"

	assert.InDelta(t, CosineCoverage(docA, docB), CosineCoverage(docB, docA), 1e-9)
}
