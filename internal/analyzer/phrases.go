package analyzer

import "sort"

// PhraseCount 一个关键词/n-gram 及其出现次数。
type PhraseCount struct {
	Phrase string
	Count  int
}

// FindRepeatedPhrases 统计文本中关键词/n-gram 的出现次数，
// 只保留出现 2 次及以上的条目。
// 结果按首次出现顺序排列（保序计数），这样下游取 top-N 时
// 平票顺序是确定可复现的。
func (a *Analyzer) FindRepeatedPhrases(text string) []PhraseCount {
	keywords := a.normalizer.ExtractKeywords(text)

	counts := make(map[string]int, len(keywords))
	order := make([]string, 0, len(keywords))
	for _, kw := range keywords {
		if counts[kw] == 0 {
			order = append(order, kw)
		}
		counts[kw]++
	}

	repeated := make([]PhraseCount, 0)
	for _, kw := range order {
		if counts[kw] >= 2 {
			repeated = append(repeated, PhraseCount{Phrase: kw, Count: counts[kw]})
		}
	}
	return repeated
}

// topRepeatedPhrases 按出现次数降序取前 n 个短语。
// 稳定排序保证同次数的短语保持首次出现顺序，不按字典序重排。
func topRepeatedPhrases(repeated []PhraseCount, n int) []string {
	ranked := make([]PhraseCount, len(repeated))
	copy(ranked, repeated)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Count > ranked[j].Count
	})
	if len(ranked) > n {
		ranked = ranked[:n]
	}
	phrases := make([]string, 0, len(ranked))
	for _, pc := range ranked {
		phrases = append(phrases, pc.Phrase)
	}
	return phrases
}
