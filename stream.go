package asmlex

import (
	"bufio"
	"errors"
	"fmt"
	"io"
)

// ByteStream 从 io.Reader 中逐字节读取数据, 并记录行列位置.
//
// 读取失败和正常结束对 Next 的调用者来说是一样的: 都不再返回字节.
// 如果需要区分, 可以在结束后调用 Err.
type ByteStream struct {
	r       *bufio.Reader
	last    byte
	hasLast bool
	done    bool
	err     error
	// pos is where the next byte will land; lastPos is where the byte
	// returned by Peek was read.
	pos     Position
	lastPos Position
}

// NewByteStream returns a stream that exclusively owns r.
func NewByteStream(r io.Reader, opts ...Option) *ByteStream {
	c := newConfig(opts)
	start := Position{Filename: c.filename, Line: 1, Column: 1}
	return &ByteStream{
		r:       bufio.NewReaderSize(r, c.bufferSize),
		pos:     start,
		lastPos: start,
	}
}

// Next returns the next byte. ok is false once the source is exhausted or a
// read failed, and stays false from then on.
func (s *ByteStream) Next() (b byte, ok bool) {
	if s.done {
		return s.consume(0, false)
	}
	b, err := s.r.ReadByte()
	if err != nil {
		s.done = true
		if !errors.Is(err, io.EOF) {
			s.err = err
		}
		s.lastPos = s.pos
		return s.consume(0, false)
	}

	s.lastPos = s.pos
	if b == '\n' {
		s.pos.Line++
		s.pos.Column = 1
	} else {
		s.pos.Column++
	}
	return s.consume(b, true)
}

// Peek returns the byte last returned by Next without reading further.
func (s *ByteStream) Peek() (byte, bool) {
	return s.last, s.hasLast
}

// EOF reports whether Peek has no byte. This is also true before the first
// call to Next.
func (s *ByteStream) EOF() bool {
	return !s.hasLast
}

// Err returns the read error that ended the stream, or nil for a clean end.
func (s *ByteStream) Err() error {
	return s.err
}

// Pos returns the current position, i.e. the position of the next byte.
func (s *ByteStream) Pos() Position {
	return s.pos
}

// LastPos returns the position of the byte reported by Peek.
func (s *ByteStream) LastPos() Position {
	return s.lastPos
}

// Errorf builds a diagnostic prefixed with the current [line:col] for the
// caller to return. It does not change the stream.
func (s *ByteStream) Errorf(format string, args ...interface{}) error {
	return s.errorAt(s.pos, format, args...)
}

func (s *ByteStream) errorAt(pos Position, format string, args ...interface{}) error {
	return &LexicalError{Pos: pos, Reason: fmt.Sprintf(format, args...)}
}

func (s *ByteStream) consume(b byte, ok bool) (byte, bool) {
	s.last, s.hasLast = b, ok
	return b, ok
}
