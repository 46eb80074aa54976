package asmlex

import (
	"errors"
	"io"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestByteStreamWords(t *testing.T) {
	input := "  jump main"
	s := NewByteStream(strings.NewReader(input))
	var buf []byte
	var toks []string

	for {
		b, ok := s.Next()
		if !ok {
			if len(buf) > 0 {
				toks = append(toks, string(buf))
			}
			break
		}
		if b == ' ' {
			if len(buf) > 0 {
				toks = append(toks, string(buf))
				buf = buf[:0]
			}
		} else {
			buf = append(buf, b)
		}
	}

	assert.Equal(t, []string{"jump", "main"}, toks)
	assert.Equal(t, len(input)+1, s.Pos().Column, "unexpected end before EOF")
	assert.True(t, s.EOF())
	assert.NoError(t, s.Err())
}

func TestByteStreamBeforeFirstRead(t *testing.T) {
	s := NewByteStream(strings.NewReader("x"))
	_, ok := s.Peek()
	assert.False(t, ok)
	assert.True(t, s.EOF(), "EOF is true before the first read")
	assert.Equal(t, Position{Line: 1, Column: 1}, s.Pos())

	b, ok := s.Next()
	require.True(t, ok)
	assert.Equal(t, byte('x'), b)
	peeked, ok := s.Peek()
	assert.True(t, ok)
	assert.Equal(t, byte('x'), peeked)
	assert.False(t, s.EOF())
}

func TestByteStreamPosition(t *testing.T) {
	tests := []struct {
		input    string
		wantLine int
		wantCol  int
		lastLine int
		lastCol  int
	}{
		{"", 1, 1, 1, 1},
		{"abc", 1, 4, 1, 3},
		{"a\nb", 2, 2, 2, 1},
		{"a\n", 2, 1, 1, 2},
		{"\n\n", 3, 1, 2, 1},
		{"ab\ncd\nefg", 3, 4, 3, 3},
		{"a\r\nb", 2, 2, 2, 1},
	}

	for i, tt := range tests {
		s := NewByteStream(strings.NewReader(tt.input))
		var lastPos Position
		for {
			if _, ok := s.Next(); !ok {
				break
			}
			lastPos = s.LastPos()
		}
		pos := s.Pos()
		if pos.Line != tt.wantLine || pos.Column != tt.wantCol {
			t.Fatalf("tests[%d] - position wrong. expected=%d:%d, got=%s", i, tt.wantLine, tt.wantCol, pos)
		}
		if tt.input != "" && (lastPos.Line != tt.lastLine || lastPos.Column != tt.lastCol) {
			t.Fatalf("tests[%d] - last byte position wrong. expected=%d:%d, got=%s", i, tt.lastLine, tt.lastCol, lastPos)
		}
	}
}

// flakyReader reports EOF once and then starts producing data again.
type flakyReader struct {
	calls int
}

func (r *flakyReader) Read(p []byte) (int, error) {
	r.calls++
	if r.calls == 1 {
		return 0, io.EOF
	}
	return copy(p, "jump"), nil
}

func TestByteStreamExhaustionIsTerminal(t *testing.T) {
	r := &flakyReader{}
	s := NewByteStream(r)
	for i := 0; i < 5; i++ {
		_, ok := s.Next()
		assert.False(t, ok, "read %d resurrected the stream", i)
		assert.True(t, s.EOF())
	}
	assert.Equal(t, 1, r.calls)
}

func TestByteStreamReadError(t *testing.T) {
	errBoom := errors.New("boom")
	s := NewByteStream(io.MultiReader(strings.NewReader("ab"), iotest.ErrReader(errBoom)))

	b, ok := s.Next()
	require.True(t, ok)
	assert.Equal(t, byte('a'), b)
	b, ok = s.Next()
	require.True(t, ok)
	assert.Equal(t, byte('b'), b)

	_, ok = s.Next()
	assert.False(t, ok, "a read error looks like the end of the stream")
	assert.True(t, s.EOF())
	assert.ErrorIs(t, s.Err(), errBoom)
	assert.Equal(t, Position{Line: 1, Column: 3}, s.Pos(), "failed reads must not advance the position")

	_, ok = s.Next()
	assert.False(t, ok)
}

func TestByteStreamErrorf(t *testing.T) {
	s := NewByteStream(strings.NewReader("ab\ncd"))
	for i := 0; i < 4; i++ {
		s.Next()
	}

	err := s.Errorf("unexpected %s", "thing")
	assert.EqualError(t, err, "[2:2] unexpected thing")

	var lexErr *LexicalError
	require.ErrorAs(t, err, &lexErr)
	assert.Equal(t, Position{Line: 2, Column: 2}, lexErr.Pos)

	b, ok := s.Peek()
	assert.True(t, ok)
	assert.Equal(t, byte('c'), b, "Errorf must not move the stream")
	assert.Equal(t, Position{Line: 2, Column: 2}, s.Pos())
}

func TestByteStreamOptions(t *testing.T) {
	input := strings.Repeat("x", 100)
	s := NewByteStream(strings.NewReader(input), WithFilename("prog.asm"), WithBufferSize(1))
	n := 0
	for {
		if _, ok := s.Next(); !ok {
			break
		}
		n++
	}
	assert.Equal(t, len(input), n)
	assert.Equal(t, "prog.asm:1:101", s.Pos().String())
	assert.EqualError(t, s.Errorf("boom"), "prog.asm: [1:101] boom")
}
