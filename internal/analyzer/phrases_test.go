package analyzer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestFindRepeatedPhrases 只保留出现 2 次及以上的条目，且按首次出现顺序排列
func TestFindRepeatedPhrases(t *testing.T) {
	a, err := NewAnalyzer()
	require.NoError(t, err)

	repeated := a.FindRepeatedPhrases("data science and data science teams")

	// unigram 在 bigram 之前生成，所以首次出现顺序是 data, science, "data science"
	require.Len(t, repeated, 3)
	assert.Equal(t, PhraseCount{Phrase: "data", Count: 2}, repeated[0])
	assert.Equal(t, PhraseCount{Phrase: "science", Count: 2}, repeated[1])
	assert.Equal(t, PhraseCount{Phrase: "data science", Count: 2}, repeated[2])
}

// TestFindRepeatedPhrasesNoRepeats 无重复时返回空结果
func TestFindRepeatedPhrasesNoRepeats(t *testing.T) {
	a, err := NewAnalyzer()
	require.NoError(t, err)

	assert.Empty(t, a.FindRepeatedPhrases("python golang rust"))
	assert.Empty(t, a.FindRepeatedPhrases(""))
}

// TestTopRepeatedPhrases 按次数降序取前 N，平票保持首次出现顺序
func TestTopRepeatedPhrases(t *testing.T) {
	repeated := []PhraseCount{
		{Phrase: "cloud", Count: 2},
		{Phrase: "python", Count: 4},
		{Phrase: "docker", Count: 2},
		{Phrase: "testing", Count: 3},
	}

	top := topRepeatedPhrases(repeated, 3)

	// cloud 与 docker 平票，cloud 先出现所以排在前面
	assert.Equal(t, []string{"python", "testing", "cloud"}, top)

	// 取 N 不修改原切片顺序
	assert.Equal(t, "cloud", repeated[0].Phrase)
}
