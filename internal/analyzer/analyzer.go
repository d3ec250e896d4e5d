package analyzer

import (
	"fmt"
	"io"
	"log"
	"regexp"
	"sort"
	"strings"
)

// 各分项在总分中的固定权重
const (
	keywordWeight    = 0.4
	hardSkillsWeight = 0.4
	coverageWeight   = 0.2

	// 关键词列表排序后截断的上限
	maxKeywordResults = 30
	// 单条建议里最多列出的技能数
	maxListedSkills = 5
	// 建议里最多列出的重复短语数
	maxListedPhrases = 3
	// 分项得分低于该值时追加通用建议
	lowScoreThreshold = 50
)

// ScoreBreakdown 一次简历-岗位匹配分析的完整结果。
// 所有集合差/交都以岗位描述为参照集：JD 有而简历没有的是 missing，
// 两边都有的是 matched。分数一律为 [0,100] 的整数，浮点转整数用截断。
type ScoreBreakdown struct {
	OverallScore      int      `json:"overall_score"`
	KeywordScore      int      `json:"keyword_score"`
	HardSkillsScore   int      `json:"hard_skills_score"`
	CoverageScore     int      `json:"coverage_score"`
	MatchedKeywords   []string `json:"matched_keywords"`
	MissingKeywords   []string `json:"missing_keywords"`
	MatchedHardSkills []string `json:"matched_hard_skills"`
	MissingHardSkills []string `json:"missing_hard_skills"`
	Recommendations   []string `json:"recommendations"`
}

// Analyzer 匹配分析聚合器。持有的词表和编译后的正则在初始化后只读，
// 每次分析的中间状态全部局部创建，可安全并发调用。
type Analyzer struct {
	vocab      *Vocabulary
	normalizer *Normalizer
	skills     *SkillExtractor
	fluff      []*regexp.Regexp
	logger     *log.Logger
}

// NewAnalyzer 创建匹配分析器。
func NewAnalyzer(options ...Option) (*Analyzer, error) {
	a := &Analyzer{
		vocab:  DefaultVocabulary(),
		logger: log.New(io.Discard, "", 0),
	}
	for _, option := range options {
		option(a)
	}

	a.normalizer = NewNormalizer(a.vocab)

	skills, err := NewSkillExtractor(a.vocab)
	if err != nil {
		return nil, err
	}
	a.skills = skills

	a.fluff = make([]*regexp.Regexp, 0, len(a.vocab.FluffPatterns))
	for _, p := range a.vocab.FluffPatterns {
		re, err := regexp.Compile(`(?i)` + p)
		if err != nil {
			return nil, fmt.Errorf("编译模板段落正则 %q 失败: %w", p, err)
		}
		a.fluff = append(a.fluff, re)
	}
	return a, nil
}

// Normalizer 返回内部的文本归一化器。
func (a *Analyzer) Normalizer() *Normalizer { return a.normalizer }

// SkillExtractor 返回内部的技能提取器。
func (a *Analyzer) SkillExtractor() *SkillExtractor { return a.skills }

// CleanJobDescription 小写化岗位描述并删除模板化段落。
// 删除是纯文本层面的涂抹：每个模式的匹配段整体替换为空串。
// 对已清洗的文本再次清洗不产生变化。
func (a *Analyzer) CleanJobDescription(jdText string) string {
	cleaned := strings.ToLower(jdText)
	for _, re := range a.fluff {
		cleaned = re.ReplaceAllString(cleaned, "")
	}
	return cleaned
}

// CalculateMatchScore 对一对（简历文本, 岗位描述文本）执行完整的匹配分析。
// 步骤顺序是固定的，保证结果可复现：
// 清洗 JD → 提取关键词集 → 提取技能集 → 重复短语与隐含技能（仅 JD）→
// 集合交/差 → 分项得分 → 余弦覆盖 → 加权总分 → 生成建议。
func (a *Analyzer) CalculateMatchScore(resumeText, jdText string) *ScoreBreakdown {
	jdCleaned := a.CleanJobDescription(jdText)
	resumeLower := strings.ToLower(resumeText)

	jdKeywords := toSet(a.normalizer.ExtractKeywords(jdCleaned))
	resumeKeywords := toSet(a.normalizer.ExtractKeywords(resumeLower))

	jdSkills := a.skills.ExtractHardSkills(jdCleaned)
	resumeSkills := a.skills.ExtractHardSkills(resumeLower)

	jdRepeated := a.FindRepeatedPhrases(jdCleaned)
	jdImplicit := a.skills.ExtractImplicitKeywords(jdCleaned)

	matchedKeywords := intersect(jdKeywords, resumeKeywords)
	missingKeywords := difference(jdKeywords, resumeKeywords)
	matchedSkills := intersect(jdSkills, resumeSkills)
	missingSkills := difference(jdSkills, resumeSkills)

	// 参照集为空时得分为 0，不做除零
	var keywordScore, hardSkillsScore float64
	if len(jdKeywords) > 0 {
		keywordScore = float64(len(matchedKeywords)) / float64(len(jdKeywords)) * 100
	}
	if len(jdSkills) > 0 {
		hardSkillsScore = float64(len(matchedSkills)) / float64(len(jdSkills)) * 100
	}

	coverageScore := CosineCoverage(jdCleaned, resumeLower)

	overallScore := int(keywordScore*keywordWeight +
		hardSkillsScore*hardSkillsWeight +
		coverageScore*coverageWeight)

	recommendations := a.buildRecommendations(
		missingSkills, jdRepeated, jdImplicit, keywordScore, hardSkillsScore)

	a.logger.Printf("匹配分析完成: overall=%d keyword=%.1f skills=%.1f coverage=%.1f jd_keywords=%d",
		overallScore, keywordScore, hardSkillsScore, coverageScore, len(jdKeywords))

	return &ScoreBreakdown{
		OverallScore:      overallScore,
		KeywordScore:      int(keywordScore),
		HardSkillsScore:   int(hardSkillsScore),
		CoverageScore:     int(coverageScore),
		MatchedKeywords:   capSorted(matchedKeywords, maxKeywordResults),
		MissingKeywords:   capSorted(missingKeywords, maxKeywordResults),
		MatchedHardSkills: sortedSlice(matchedSkills),
		MissingHardSkills: sortedSlice(missingSkills),
		Recommendations:   recommendations,
	}
}

// buildRecommendations 按固定顺序生成建议，条件不满足的条目整行省略。
func (a *Analyzer) buildRecommendations(
	missingSkills map[string]struct{},
	jdRepeated []PhraseCount,
	jdImplicit map[string]struct{},
	keywordScore, hardSkillsScore float64,
) []string {
	recommendations := make([]string, 0)

	if len(missingSkills) > 0 {
		listed := takeAny(missingSkills, maxListedSkills)
		recommendations = append(recommendations, fmt.Sprintf(
			"Add %d missing hard skills: %s", len(listed), strings.Join(listed, ", ")))
	}

	if top := topRepeatedPhrases(jdRepeated, maxListedPhrases); len(top) > 0 {
		recommendations = append(recommendations,
			"Emphasize these repeated phrases: "+strings.Join(top, ", "))
	}

	if len(jdImplicit) > 0 {
		recommendations = append(recommendations,
			"Include implicit skills: "+strings.Join(takeAny(jdImplicit, maxListedSkills), ", "))
	}

	if keywordScore < lowScoreThreshold {
		recommendations = append(recommendations,
			"Your resume is missing many key terms. Review the job description and add relevant keywords naturally.")
	}

	if hardSkillsScore < lowScoreThreshold {
		recommendations = append(recommendations,
			"Focus on adding technical skills and tools mentioned in the job description.")
	}

	return recommendations
}

func toSet(items []string) map[string]struct{} {
	set := make(map[string]struct{}, len(items))
	for _, item := range items {
		set[item] = struct{}{}
	}
	return set
}

func intersect(a, b map[string]struct{}) map[string]struct{} {
	out := make(map[string]struct{})
	for item := range a {
		if _, ok := b[item]; ok {
			out[item] = struct{}{}
		}
	}
	return out
}

func difference(a, b map[string]struct{}) map[string]struct{} {
	out := make(map[string]struct{})
	for item := range a {
		if _, ok := b[item]; !ok {
			out[item] = struct{}{}
		}
	}
	return out
}

func sortedSlice(set map[string]struct{}) []string {
	out := make([]string, 0, len(set))
	for item := range set {
		out = append(out, item)
	}
	sort.Strings(out)
	return out
}

// capSorted 字典序排序后截断到前 n 个，是确定性的截断而不是按相关度取 top-N。
func capSorted(set map[string]struct{}, n int) []string {
	out := sortedSlice(set)
	if len(out) > n {
		out = out[:n]
	}
	return out
}

// takeAny 以集合的自然迭代顺序取最多 n 个元素（顺序不保证）。
func takeAny(set map[string]struct{}, n int) []string {
	out := make([]string, 0, n)
	for item := range set {
		out = append(out, item)
		if len(out) == n {
			break
		}
	}
	return out
}
