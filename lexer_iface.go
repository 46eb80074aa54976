package asmlex

// TokenSource 是对词法分析器行为的抽象.
// Tokenizer 实现了此接口, 下游的语句解析器只依赖它.
type TokenSource interface {
	Next() (Token, error)
}

var _ TokenSource = (*Tokenizer)(nil)
