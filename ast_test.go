package asmlex

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProgramFormat(t *testing.T) {
	program := &Program{Statements: []Statement{
		&Include{Path: "lib/io.asm"},
		&Label{Name: "main"},
		&Instruction{Opcode: "put", Operands: []Atom{IntAtom(1), NameAtom("x"), StrAtom("hi")}},
		&Instruction{Opcode: "end"},
	}}

	assert.Equal(t, "include lib/io.asm\nmain:\n\tput 1, x, \"hi\"\n\tend", program.String())

	single := render(program.Format, FormatOptions{Style: StyleSingleLine})
	assert.Equal(t, `include lib/io.asm; main:; put 1, x, "hi"; end`, single)

	indented := render(program.Format, FormatOptions{Indent: "  "})
	assert.Equal(t, "include lib/io.asm\nmain:\n  put 1, x, \"hi\"\n  end", indented)
}

func TestStatementString(t *testing.T) {
	assert.Equal(t, "jump loop", (&Instruction{Opcode: "jump", Operands: []Atom{NameAtom("loop")}}).String())
	assert.Equal(t, "loop:", (&Label{Name: "loop"}).String())
	assert.Equal(t, "-7", IntAtom(-7).String())
}
