package analyzer

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/kljensen/snowball/english"
)

// wordPattern 按自然语言词边界切词：连续的字母/数字为一个词，
// 标点一律作为分隔符而不并入词内。
var wordPattern = regexp.MustCompile(`[\p{L}\p{N}]+`)

// Normalizer 文本归一化器：小写化、分词、停用词过滤、n-gram 生成。
type Normalizer struct {
	vocab *Vocabulary
}

// NewNormalizer 创建归一化器。vocab 为 nil 时使用默认词表。
func NewNormalizer(vocab *Vocabulary) *Normalizer {
	if vocab == nil {
		vocab = DefaultVocabulary()
	}
	return &Normalizer{vocab: vocab}
}

// Tokenize 小写化后按词边界切分，返回全部词元（未过滤）。
func (n *Normalizer) Tokenize(text string) []string {
	return wordPattern.FindAllString(strings.ToLower(text), -1)
}

// ExtractKeywords 提取关键词序列：保留长度大于 2 且非停用词的词元作为 unigram，
// 并在其上生成 bigram 和 trigram（相邻词元以单个空格连接）。
// 返回 unigram + bigram + trigram 的拼接，允许重复；去重由调用方转集合时完成。
// 词元不足时只返回存在的部分，空输入返回空序列。
func (n *Normalizer) ExtractKeywords(text string) []string {
	tokens := n.Tokenize(text)

	keywords := make([]string, 0, len(tokens))
	for _, tok := range tokens {
		if utf8.RuneCountInString(tok) <= 2 {
			continue
		}
		if _, stop := n.vocab.StopWords[tok]; stop {
			continue
		}
		keywords = append(keywords, tok)
	}

	all := make([]string, 0, len(keywords)*3)
	all = append(all, keywords...)
	for i := 0; i+1 < len(keywords); i++ {
		all = append(all, keywords[i]+" "+keywords[i+1])
	}
	for i := 0; i+2 < len(keywords); i++ {
		all = append(all, keywords[i]+" "+keywords[i+1]+" "+keywords[i+2])
	}
	return all
}

// NormalizeVerbs 把每个词元还原为词干（Porter 系后缀剥离）后以空格重新拼接。
// 该变换目前不参与打分流程，作为独立可调用的工具保留。
func (n *Normalizer) NormalizeVerbs(text string) string {
	tokens := n.Tokenize(text)
	stemmed := make([]string, 0, len(tokens))
	for _, tok := range tokens {
		stemmed = append(stemmed, english.Stem(tok, true))
	}
	return strings.Join(stemmed, " ")
}
