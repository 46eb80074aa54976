package asmlex

import (
	"errors"
	"fmt"
)

type DiagnosticLevel int

const (
	LevelError DiagnosticLevel = iota
	LevelWarning
)

func (l DiagnosticLevel) String() string {
	switch l {
	case LevelError:
		return "ERROR"
	case LevelWarning:
		return "WARN"
	default:
		return "UNKNOWN"
	}
}

type DiagnosticType int

const (
	DiagUnknown DiagnosticType = iota
	DiagLexical
	DiagSource
	DiagKeywordTypo
)

type Diagnostic struct {
	Filename  string          `json:"filename,omitempty"`
	Line      int             `json:"line"`
	Column    int             `json:"column"`
	EndLine   int             `json:"endLine"`
	EndColumn int             `json:"endColumn"`
	Message   string          `json:"message"`
	Level     DiagnosticLevel `json:"level"`
	Type      DiagnosticType  `json:"type"`
	Args      []string        `json:"args,omitempty"`
}

func (d Diagnostic) Error() string {
	return fmt.Sprintf("line %d:%d: %s", d.Line, d.Column, d.Message)
}

// diagnosticFromError converts a Tokenizer error into a Diagnostic. It
// returns false for ErrEndOfInput.
func diagnosticFromError(err error) (Diagnostic, bool) {
	var lexErr *LexicalError
	var srcErr *SourceError
	switch {
	case errors.Is(err, ErrEndOfInput):
		return Diagnostic{}, false
	case errors.As(err, &lexErr):
		return Diagnostic{
			Filename:  lexErr.Pos.Filename,
			Line:      lexErr.Pos.Line,
			Column:    lexErr.Pos.Column,
			EndLine:   lexErr.Pos.Line,
			EndColumn: lexErr.Pos.Column + 1,
			Message:   lexErr.Reason,
			Level:     LevelError,
			Type:      DiagLexical,
		}, true
	case errors.As(err, &srcErr):
		return Diagnostic{
			Filename:  srcErr.Pos.Filename,
			Line:      srcErr.Pos.Line,
			Column:    srcErr.Pos.Column,
			EndLine:   srcErr.Pos.Line,
			EndColumn: srcErr.Pos.Column,
			Message:   fmt.Sprintf("read error: %v", srcErr.Err),
			Level:     LevelError,
			Type:      DiagSource,
		}, true
	default:
		return Diagnostic{Message: err.Error(), Level: LevelError, Type: DiagUnknown}, true
	}
}
