package asmlex

import (
	"bytes"
	"io"
)

// Tokenizer 将 ByteStream 中的字节分组为 Token.
// 它独占底层的 ByteStream, 只能单向读取一次.
type Tokenizer struct {
	s       *ByteStream
	last    Token
	hasLast bool
	err     error
	// Reusable buffer for building literals.
	literalBuf bytes.Buffer
}

// NewTokenizer takes ownership of s.
func NewTokenizer(s *ByteStream) *Tokenizer {
	return &Tokenizer{s: s}
}

// NewReaderTokenizer creates a tokenizer over a fresh ByteStream on r.
func NewReaderTokenizer(r io.Reader, opts ...Option) *Tokenizer {
	return NewTokenizer(NewByteStream(r, opts...))
}

// Next returns the next token. At the end of input it returns ErrEndOfInput.
// A failing reader yields a *SourceError and malformed input a *LexicalError.
// Once an error is returned, every later call returns the same error.
func (t *Tokenizer) Next() (Token, error) {
	if t.err != nil {
		return Token{}, t.err
	}

	t.readWhile(isWhitespace)
	ch, ok := t.s.Peek()
	if !ok {
		return t.fail(t.endErr())
	}
	pos := t.s.LastPos()

	switch {
	case isIdentifierStart(ch):
		return t.readName(pos)
	default:
		return t.fail(t.s.errorAt(pos, "unexpected byte %q", ch))
	}
}

// Last returns the most recently produced token. It reports false before the
// first token and after the tokenizer has stopped.
func (t *Tokenizer) Last() (Token, bool) {
	return t.last, t.hasLast
}

// Pos returns the current position of the underlying stream.
func (t *Tokenizer) Pos() Position {
	return t.s.Pos()
}

func (t *Tokenizer) readName(pos Position) (Token, error) {
	literal, ok := t.readUntil(isIdentifierChar, isWhitespace)
	if !ok {
		found, _ := t.s.Peek()
		return t.fail(t.s.errorAt(t.s.LastPos(), "identifier %q not terminated by whitespace (found %q)", literal, found))
	}
	// A failed read may have cut the identifier short.
	if err := t.s.Err(); err != nil {
		return t.fail(&SourceError{Pos: t.s.Pos(), Err: err})
	}
	return t.consume(LookupIdentifier(literal, pos))
}

// readWhile collects the maximal run of bytes satisfying check, starting
// with the byte under Peek. The returned slice is only valid until the next
// read.
func (t *Tokenizer) readWhile(check func(byte) bool) []byte {
	t.literalBuf.Reset()
	ch, ok := t.s.Peek()
	if !ok {
		if t.s.done {
			return nil
		}
		ch, ok = t.s.Next()
	}
	for ok && check(ch) {
		t.literalBuf.WriteByte(ch)
		ch, ok = t.s.Next()
	}
	return t.literalBuf.Bytes()
}

// readUntil is readWhile followed by a boundary check: the run must be
// followed by end of input or a byte satisfying end.
func (t *Tokenizer) readUntil(check, end func(byte) bool) ([]byte, bool) {
	literal := t.readWhile(check)
	ch, ok := t.s.Peek()
	return literal, !ok || end(ch)
}

func (t *Tokenizer) endErr() error {
	if err := t.s.Err(); err != nil {
		return &SourceError{Pos: t.s.Pos(), Err: err}
	}
	return ErrEndOfInput
}

func (t *Tokenizer) consume(tok Token) (Token, error) {
	t.last, t.hasLast = tok, true
	return tok, nil
}

func (t *Tokenizer) fail(err error) (Token, error) {
	t.last, t.hasLast = Token{}, false
	t.err = err
	return Token{}, err
}

func isWhitespace(ch byte) bool {
	return ch == ' ' || ch == '\t' || ch == '\n' || ch == '\f' || ch == '\r'
}

func isIdentifierStart(ch byte) bool {
	return (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z') || ch == '_'
}

func isIdentifierChar(ch byte) bool {
	return isIdentifierStart(ch) || (ch >= '0' && ch <= '9')
}
