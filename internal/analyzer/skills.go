package analyzer

import (
	"fmt"
	"regexp"
	"strings"
)

// SkillExtractor 硬技能与隐含技能提取器。
type SkillExtractor struct {
	vocab        *Vocabulary
	techPatterns []*regexp.Regexp
}

// NewSkillExtractor 创建技能提取器并预编译全部正则。
// vocab 为 nil 时使用默认词表。
func NewSkillExtractor(vocab *Vocabulary) (*SkillExtractor, error) {
	if vocab == nil {
		vocab = DefaultVocabulary()
	}
	patterns := make([]*regexp.Regexp, 0, len(vocab.TechPatterns))
	for _, p := range vocab.TechPatterns {
		re, err := regexp.Compile(p)
		if err != nil {
			return nil, fmt.Errorf("编译技能正则 %q 失败: %w", p, err)
		}
		patterns = append(patterns, re)
	}
	return &SkillExtractor{vocab: vocab, techPatterns: patterns}, nil
}

// ExtractHardSkills 提取显式技术技能。
// 先用正则（大小写敏感）匹配专有名词/缩写等，按原样大小写入集；
// 再把全文小写后对技术关键词表做子串匹配，命中的以小写入集。
// 两路各自独立，"AWS" 与 "aws" 可以同时出现——这是刻意保留的行为，
// 下游输出依赖它，不做跨路去重。
func (s *SkillExtractor) ExtractHardSkills(text string) map[string]struct{} {
	skills := make(map[string]struct{})

	for _, re := range s.techPatterns {
		for _, m := range re.FindAllString(text, -1) {
			skills[m] = struct{}{}
		}
	}

	lower := strings.ToLower(text)
	for _, kw := range s.vocab.TechKeywords {
		if strings.Contains(lower, kw) {
			skills[kw] = struct{}{}
		}
	}

	return skills
}

// ExtractImplicitKeywords 从触发短语推断软技能。
// 纯子串包含判断，不考虑位置或邻近度；命中短语的标签集取并集。
func (s *SkillExtractor) ExtractImplicitKeywords(text string) map[string]struct{} {
	skills := make(map[string]struct{})
	lower := strings.ToLower(text)
	for _, entry := range s.vocab.ImplicitPhrases {
		if strings.Contains(lower, entry.Phrase) {
			for _, label := range entry.Skills {
				skills[label] = struct{}{}
			}
		}
	}
	return skills
}
