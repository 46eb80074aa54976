package asmlex

import (
	"fmt"
	"sort"
	"strconv"
)

// Position is a 1-based line/column location in the source.
type Position struct {
	Filename string `json:"filename,omitempty"`
	Line     int    `json:"line"`
	Column   int    `json:"column"`
}

func (p Position) String() string {
	if p.Filename != "" {
		return p.Filename + ":" + strconv.Itoa(p.Line) + ":" + strconv.Itoa(p.Column)
	}
	return strconv.Itoa(p.Line) + ":" + strconv.Itoa(p.Column)
}

type AtomKind string

const (
	INT  AtomKind = "INT"
	STR  AtomKind = "STR"
	NAME AtomKind = "NAME"
)

// Atom 是源码中的标量字面值. 目前词法分析只产生 NAME.
type Atom struct {
	Kind AtomKind `json:"kind"`
	Int  int64    `json:"int,omitzero"`
	Str  string   `json:"str,omitempty"`
	Name string   `json:"name,omitempty"`
}

func IntAtom(v int64) Atom   { return Atom{Kind: INT, Int: v} }
func StrAtom(s string) Atom  { return Atom{Kind: STR, Str: s} }
func NameAtom(s string) Atom { return Atom{Kind: NAME, Name: s} }

func (a Atom) String() string {
	switch a.Kind {
	case INT:
		return strconv.FormatInt(a.Int, 10)
	case STR:
		return strconv.Quote(a.Str)
	default:
		return a.Name
	}
}

type TokenType string

const (
	ATOM    TokenType = "ATOM"
	KEYWORD TokenType = "KEYWORD"
	PATH    TokenType = "PATH"
	PUNC    TokenType = "PUNC"
)

// Token is the unit produced by the Tokenizer. Literal holds the exact
// spelling for keywords and paths; Atom is set for ATOM tokens and Punc for
// PUNC tokens.
type Token struct {
	Type    TokenType `json:"type"`
	Literal string    `json:"literal,omitempty"`
	Atom    *Atom     `json:"atom,omitempty"`
	Punc    byte      `json:"punc,omitzero"`
	Pos     Position  `json:"pos"`
}

func KeywordToken(op string, pos Position) Token {
	return Token{Type: KEYWORD, Literal: op, Pos: pos}
}

func AtomToken(a Atom, pos Position) Token {
	return Token{Type: ATOM, Atom: &a, Pos: pos}
}

func PathToken(path string, pos Position) Token {
	return Token{Type: PATH, Literal: path, Pos: pos}
}

func PuncToken(b byte, pos Position) Token {
	return Token{Type: PUNC, Punc: b, Pos: pos}
}

// Text returns the source spelling of the token.
func (t Token) Text() string {
	switch t.Type {
	case ATOM:
		if t.Atom == nil {
			return ""
		}
		return t.Atom.String()
	case PUNC:
		return string(t.Punc)
	default:
		return t.Literal
	}
}

// Equal compares tokens by value, including position.
func (t Token) Equal(o Token) bool {
	if t.Type != o.Type || t.Literal != o.Literal || t.Punc != o.Punc || t.Pos != o.Pos {
		return false
	}
	if (t.Atom == nil) != (o.Atom == nil) {
		return false
	}
	return t.Atom == nil || *t.Atom == *o.Atom
}

func (t Token) String() string {
	return fmt.Sprintf("Line:%d, Col:%d, Type:%s, Literal:`%s`", t.Pos.Line, t.Pos.Column, t.Type, t.Text())
}

// keywords 是保留操作码集合, 在包初始化时构建, 之后只读.
var keywords = func() map[string]struct{} {
	ops := []string{"put", "add", "sub", "mul", "div",
		"mod", "gth", "lth", "geq", "leq", "eq", "neq", "ini", "ins", "out", "outl",
		"nl", "con", "sti", "not", "and", "or", "jump", "jmpt", "jmpf", "br", "brt",
		"brf", "back", "err", "end"}
	m := make(map[string]struct{}, len(ops))
	for _, op := range ops {
		m[op] = struct{}{}
	}
	return m
}()

// IsKeyword reports whether ident is a reserved opcode. Matching is exact and
// case-sensitive.
func IsKeyword(ident string) bool {
	_, ok := keywords[ident]
	return ok
}

// Keywords returns a sorted copy of the reserved opcode set.
func Keywords() []string {
	out := make([]string, 0, len(keywords))
	for k := range keywords {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// LookupIdentifier 将标识符分类为关键字或 NAME 原子.
func LookupIdentifier(ident []byte, pos Position) Token {
	// map 查找中的 string(ident) 转换不会分配内存.
	if _, ok := keywords[string(ident)]; ok {
		return KeywordToken(string(ident), pos)
	}
	return AtomToken(NameAtom(string(ident)), pos)
}
