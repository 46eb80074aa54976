package asmlex

import (
	"fmt"
	"io"
)

// ErrEndOfInput is returned by Tokenizer.Next once the input is cleanly
// exhausted. It is io.EOF so callers can use the usual io idiom.
var ErrEndOfInput = io.EOF

// SourceError reports a failure of the underlying reader.
type SourceError struct {
	Pos Position
	Err error
}

func (e *SourceError) Error() string {
	if e.Pos.Filename != "" {
		return fmt.Sprintf("%s: [%d:%d] read error: %v", e.Pos.Filename, e.Pos.Line, e.Pos.Column, e.Err)
	}
	return fmt.Sprintf("[%d:%d] read error: %v", e.Pos.Line, e.Pos.Column, e.Err)
}

func (e *SourceError) Unwrap() error { return e.Err }

// LexicalError reports malformed input at a position.
type LexicalError struct {
	Pos    Position
	Reason string
}

func (e *LexicalError) Error() string {
	if e.Pos.Filename != "" {
		return fmt.Sprintf("%s: [%d:%d] %s", e.Pos.Filename, e.Pos.Line, e.Pos.Column, e.Reason)
	}
	return fmt.Sprintf("[%d:%d] %s", e.Pos.Line, e.Pos.Column, e.Reason)
}
