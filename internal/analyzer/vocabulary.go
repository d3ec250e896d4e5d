package analyzer

// Vocabulary 分析器使用的全部静态词表。
// 进程启动时构建一次，之后只读，可在并发分析之间安全共享。
// 组件通过注入 Vocabulary 获得词表，便于测试时替换。
type Vocabulary struct {
	// StopWords 英文停用词集合，关键词提取时被过滤
	StopWords map[string]struct{}
	// TechKeywords 技术关键词表（全小写），对全文做子串匹配
	TechKeywords []string
	// TechPatterns 识别专有名词/缩写/点后缀工具名的正则表达式
	TechPatterns []string
	// FluffPatterns JD 模板化段落（福利、多元化声明等）的正则表达式，
	// 匹配段从触发词起删除到句末/行末
	FluffPatterns []string
	// ImplicitPhrases 触发短语到软技能标签的映射
	ImplicitPhrases []ImplicitPhrase
}

// ImplicitPhrase 一个触发短语及其隐含的软技能标签
type ImplicitPhrase struct {
	Phrase string
	Skills []string
}

// DefaultVocabulary 返回内置的默认词表。
func DefaultVocabulary() *Vocabulary {
	return &Vocabulary{
		StopWords:       defaultStopWords(),
		TechKeywords:    defaultTechKeywords(),
		TechPatterns:    defaultTechPatterns(),
		FluffPatterns:   defaultFluffPatterns(),
		ImplicitPhrases: defaultImplicitPhrases(),
	}
}

// defaultTechPatterns 技术术语的正则模式：
// 连续首字母大写的多词专有名词、两个字母以上的全大写缩写、
// 形如 x.js 的点后缀工具名，以及 C++ / C# 两个带符号的特例。
func defaultTechPatterns() []string {
	return []string{
		`\b[A-Z][a-z]+(?:\s+[A-Z][a-z]+)*\b`,
		`\b[A-Z]{2,}\b`,
		`\b\w+\.js\b`,
		`\bC\+\+\b`,
		`\bC#\b`,
	}
}

// defaultFluffPatterns 招聘描述中的模板化段落。
// 每个模式从触发词起吞掉本句剩余部分（不跨句号/换行），
// 连同句尾标点一起删除，因此重复清洗是幂等的。
func defaultFluffPatterns() []string {
	return []string{
		`equal opportunity employer[^.!?\n]*[.!?]?`,
		`we are committed to[^.!?\n]*diversity[^.!?\n]*[.!?]?`,
		`benefits include[^.!?\n]*[.!?]?`,
		`our company[^.!?\n]*culture[^.!?\n]*[.!?]?`,
		`about us:[^.!?\n]*[.!?]?`,
		`company overview[^.!?\n]*[.!?]?`,
		`why join us[^.!?\n]*[.!?]?`,
		`perks and benefits[^.!?\n]*[.!?]?`,
		`we offer[^.!?\n]*competitive[^.!?\n]*[.!?]?`,
	}
}

func defaultTechKeywords() []string {
	return []string{
		"python", "java", "javascript", "sql", "aws", "azure", "gcp",
		"docker", "kubernetes", "react", "angular", "vue", "node",
		"tensorflow", "pytorch", "scikit-learn", "pandas", "numpy",
		"git", "ci/cd", "agile", "scrum", "rest", "api", "graphql",
		"mongodb", "postgresql", "mysql", "redis", "elasticsearch",
		"machine learning", "data analysis", "deep learning",
		"cloud computing", "devops", "microservices",
	}
}

func defaultImplicitPhrases() []ImplicitPhrase {
	return []ImplicitPhrase{
		{Phrase: "cross functional", Skills: []string{"communication", "collaboration", "teamwork"}},
		{Phrase: "end to end", Skills: []string{"project management", "ownership", "accountability"}},
		{Phrase: "fast paced", Skills: []string{"prioritization", "time management", "adaptability"}},
		{Phrase: "self starter", Skills: []string{"initiative", "proactive", "independent"}},
		{Phrase: "stakeholder", Skills: []string{"communication", "presentation", "relationship"}},
	}
}

// defaultStopWords 常见英文停用词
func defaultStopWords() map[string]struct{} {
	words := []string{
		"i", "me", "my", "myself", "we", "our", "ours", "ourselves",
		"you", "your", "yours", "yourself", "yourselves",
		"he", "him", "his", "himself", "she", "her", "hers", "herself",
		"it", "its", "itself", "they", "them", "their", "theirs", "themselves",
		"what", "which", "who", "whom", "this", "that", "these", "those",
		"am", "is", "are", "was", "were", "be", "been", "being",
		"have", "has", "had", "having", "do", "does", "did", "doing",
		"a", "an", "the", "and", "but", "if", "or", "because", "as",
		"until", "while", "of", "at", "by", "for", "with", "about",
		"against", "between", "into", "through", "during", "before",
		"after", "above", "below", "to", "from", "up", "down", "in",
		"out", "on", "off", "over", "under", "again", "further", "then",
		"once", "here", "there", "when", "where", "why", "how", "all",
		"any", "both", "each", "few", "more", "most", "other", "some",
		"such", "no", "nor", "not", "only", "own", "same", "so", "than",
		"too", "very", "can", "will", "just", "should", "now",
		"also", "may", "might", "must", "shall", "could", "would",
		"don", "didn", "doesn", "hasn", "haven", "isn", "wasn", "weren",
		"won", "wouldn", "shouldn", "couldn", "aren", "ain",
		"etc", "via", "per", "within", "without", "across", "along",
		"among", "around", "behind", "beside", "beyond", "near",
		"toward", "towards", "upon", "whether", "yet", "however",
		"therefore", "thus", "hence", "although", "though", "since",
		"well", "able", "like", "use", "using", "used", "one", "two",
		"new", "make", "get", "see", "way", "even", "first", "many",
		"much", "need", "every", "including", "include", "includes",
	}
	set := make(map[string]struct{}, len(words))
	for _, w := range words {
		set[w] = struct{}{}
	}
	return set
}
