package asmlex

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"
)

// Tokenize reads r to the end and returns every token. On a lexical or read
// error it returns the tokens produced so far along with the error.
func Tokenize(r io.Reader, opts ...Option) ([]Token, error) {
	return collect(NewReaderTokenizer(r, opts...))
}

func collect(src TokenSource) ([]Token, error) {
	var toks []Token
	for {
		tok, err := src.Next()
		if errors.Is(err, ErrEndOfInput) {
			return toks, nil
		}
		if err != nil {
			return toks, err
		}
		toks = append(toks, tok)
	}
}

// Lint tokenizes r and reports problems as diagnostics. Tokenizer errors are
// reported at LevelError; names that look like misspelled opcodes are
// reported at LevelWarning.
func Lint(r io.Reader, opts ...Option) ([]Token, []Diagnostic) {
	toks, err := Tokenize(r, opts...)
	analyzer := &typoAnalyzer{keywords: Keywords(), uses: make(map[string]int)}
	analyzer.Analyze(toks)
	diags := analyzer.diags
	if err != nil {
		if d, ok := diagnosticFromError(err); ok {
			diags = append(diags, d)
		}
	}
	return toks, diags
}

const minTypoLength = 3

// typoAnalyzer flags names that are probably misspelled opcodes. A name that
// differs from an opcode only by case is always flagged. A name one edit away
// from an opcode is flagged only when it starts a line, where an opcode is
// expected, and is used nowhere else; repeated names are user symbols.
type typoAnalyzer struct {
	keywords []string
	uses     map[string]int
	diags    []Diagnostic
}

func (a *typoAnalyzer) Analyze(toks []Token) {
	// First pass: count name uses.
	for _, tok := range toks {
		if name, ok := nameOf(tok); ok {
			a.uses[name]++
		}
	}

	// Second pass: check names.
	line := 0
	for _, tok := range toks {
		lineStart := tok.Pos.Line != line
		line = tok.Pos.Line
		a.check(tok, lineStart)
	}
}

func (a *typoAnalyzer) check(tok Token, lineStart bool) {
	name, ok := nameOf(tok)
	if !ok || len(name) < minTypoLength {
		return
	}
	op, ok := a.closestKeyword(name, lineStart && a.uses[name] == 1)
	if !ok {
		return
	}
	a.diags = append(a.diags, Diagnostic{
		Filename:  tok.Pos.Filename,
		Line:      tok.Pos.Line,
		Column:    tok.Pos.Column,
		EndLine:   tok.Pos.Line,
		EndColumn: tok.Pos.Column + len(name),
		Message:   fmt.Sprintf("name %q looks like opcode %q", name, op),
		Level:     LevelWarning,
		Type:      DiagKeywordTypo,
		Args:      []string{name, op},
	})
}

// closestKeyword returns the opcode name matches ignoring case, or, when
// nearMiss is set, the first opcode (in sorted order) a single edit away.
func (a *typoAnalyzer) closestKeyword(name string, nearMiss bool) (string, bool) {
	lower := strings.ToLower(name)
	if IsKeyword(lower) {
		return lower, true
	}
	if !nearMiss {
		return "", false
	}
	for _, op := range a.keywords {
		if fuzzy.LevenshteinDistance(name, op) == 1 {
			return op, true
		}
	}
	return "", false
}

func nameOf(tok Token) (string, bool) {
	if tok.Type != ATOM || tok.Atom == nil || tok.Atom.Kind != NAME {
		return "", false
	}
	return tok.Atom.Name, true
}
