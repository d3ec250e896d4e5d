package analyzer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestExtractHardSkillsPatterns 验证正则通路：缩写、点后缀工具名、专有名词
func TestExtractHardSkillsPatterns(t *testing.T) {
	s, err := NewSkillExtractor(nil)
	require.NoError(t, err)

	skills := s.ExtractHardSkills("Built APIs on AWS using Node.js and Django Framework")

	assert.Contains(t, skills, "AWS")
	assert.Contains(t, skills, "Node.js")
	assert.Contains(t, skills, "Django Framework")
}

// TestExtractHardSkillsVocabulary 验证词表通路：小写子串匹配
func TestExtractHardSkillsVocabulary(t *testing.T) {
	s, err := NewSkillExtractor(nil)
	require.NoError(t, err)

	skills := s.ExtractHardSkills("experience with kubernetes, docker and postgresql")

	assert.Contains(t, skills, "kubernetes")
	assert.Contains(t, skills, "docker")
	assert.Contains(t, skills, "postgresql")
	// "postgresql" 同时命中子串 "sql"
	assert.Contains(t, skills, "sql")
}

// TestExtractHardSkillsCaseVariants 两条通路各自入集，大小写变体允许共存。
// 这是对外可观察的既有行为，不做跨通路去重。
func TestExtractHardSkillsCaseVariants(t *testing.T) {
	s, err := NewSkillExtractor(nil)
	require.NoError(t, err)

	skills := s.ExtractHardSkills("Deployed services on AWS")

	assert.Contains(t, skills, "AWS", "正则通路保留原始大小写")
	assert.Contains(t, skills, "aws", "词表通路加入小写形式")
}

// TestExtractImplicitKeywords 验证触发短语到软技能标签的推断
func TestExtractImplicitKeywords(t *testing.T) {
	s, err := NewSkillExtractor(nil)
	require.NoError(t, err)

	tests := []struct {
		name string
		text string
		want []string
	}{
		{
			name: "fast paced",
			text: "We work in a Fast Paced environment",
			want: []string{"prioritization", "time management", "adaptability"},
		},
		{
			name: "stakeholder",
			text: "regular stakeholder meetings",
			want: []string{"communication", "presentation", "relationship"},
		},
		{
			name: "无触发短语",
			text: "quiet and steady work",
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := s.ExtractImplicitKeywords(tt.text)
			assert.Len(t, got, len(tt.want))
			for _, label := range tt.want {
				assert.Contains(t, got, label)
			}
		})
	}
}

// TestExtractImplicitKeywordsUnion 多个触发短语的标签集取并集
func TestExtractImplicitKeywordsUnion(t *testing.T) {
	s, err := NewSkillExtractor(nil)
	require.NoError(t, err)

	got := s.ExtractImplicitKeywords("cross functional team, end to end ownership")

	// "communication" 来自 cross functional，"ownership" 来自 end to end
	assert.Contains(t, got, "communication")
	assert.Contains(t, got, "teamwork")
	assert.Contains(t, got, "ownership")
	assert.Contains(t, got, "project management")
}
