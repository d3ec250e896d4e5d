package analyzer

import (
	"math"
	"regexp"
	"strings"
)

// tfidfTokenPattern 向量化用的分词：两个及以上单词字符为一个词项。
var tfidfTokenPattern = regexp.MustCompile(`\b\w\w+\b`)

// CosineCoverage 在 {岗位描述, 简历} 两篇文档上构建 TF-IDF 向量空间，
// 计算余弦相似度并放大到 [0,100]。
// 词汇表为两篇文档词项的并集；idf 采用平滑形式 ln((1+n)/(1+df))+1，
// 向量做 L2 归一化。任一向量为零向量或词汇表为空时返回 0，
// 这是允许的降级而不是错误。
func CosineCoverage(docA, docB string) float64 {
	tokensA := tfidfTokenPattern.FindAllString(strings.ToLower(docA), -1)
	tokensB := tfidfTokenPattern.FindAllString(strings.ToLower(docB), -1)

	tfA := termCounts(tokensA)
	tfB := termCounts(tokensB)
	if len(tfA) == 0 && len(tfB) == 0 {
		return 0
	}

	// 词汇表 = 两篇文档词项的并集
	vocab := make(map[string]struct{}, len(tfA)+len(tfB))
	for term := range tfA {
		vocab[term] = struct{}{}
	}
	for term := range tfB {
		vocab[term] = struct{}{}
	}

	const docCount = 2.0
	var dot, normA, normB float64
	for term := range vocab {
		df := 0.0
		if tfA[term] > 0 {
			df++
		}
		if tfB[term] > 0 {
			df++
		}
		idf := math.Log((1+docCount)/(1+df)) + 1

		wa := float64(tfA[term]) * idf
		wb := float64(tfB[term]) * idf
		dot += wa * wb
		normA += wa * wa
		normB += wb * wb
	}

	if normA == 0 || normB == 0 {
		return 0
	}

	similarity := dot / (math.Sqrt(normA) * math.Sqrt(normB))
	// 同一文档自比较时浮点误差可能让结果略偏离 1，这里收口
	if similarity > 1 || math.Abs(similarity-1) < 1e-12 {
		similarity = 1
	}
	return similarity * 100
}

func termCounts(tokens []string) map[string]int {
	counts := make(map[string]int, len(tokens))
	for _, t := range tokens {
		counts[t]++
	}
	return counts
}
