package analyzer

import "log"

// Option 定义了 Analyzer 的配置选项函数类型。
type Option func(*Analyzer)

// WithVocabulary 替换默认词表，主要用于测试注入替代词表。
func WithVocabulary(vocab *Vocabulary) Option {
	return func(a *Analyzer) {
		a.vocab = vocab
	}
}

// WithAnalyzerLogger 设置 Analyzer 使用的日志记录器。
func WithAnalyzerLogger(logger *log.Logger) Option {
	return func(a *Analyzer) {
		a.logger = logger
	}
}
