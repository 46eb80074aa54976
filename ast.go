package asmlex

import (
	"bytes"
	"sync"
)

var bufferPool = sync.Pool{
	New: func() interface{} {
		return &bytes.Buffer{}
	},
}

// OutputStyle selects how a Program is rendered.
type OutputStyle int

const (
	// StyleMultiLine writes one statement per line and indents instructions.
	StyleMultiLine OutputStyle = iota

	// StyleSingleLine writes the whole program on one line, separating
	// statements with semicolons.
	StyleSingleLine
)

type FormatOptions struct {
	Style  OutputStyle
	Indent string // Used before instructions in StyleMultiLine. Defaults to a tab.
}

// Statement 是下游解析器构建的语句节点. 词法分析器本身不创建它们.
type Statement interface {
	String() string
	Format(w *bytes.Buffer, opts FormatOptions)
	statementNode()
}

// Program is the statement list of one source file.
type Program struct {
	Statements []Statement
}

func (p *Program) String() string {
	return render(p.Format, FormatOptions{})
}

func (p *Program) Format(w *bytes.Buffer, opts FormatOptions) {
	for i, s := range p.Statements {
		if i > 0 {
			if opts.Style == StyleSingleLine {
				w.WriteString("; ")
			} else {
				w.WriteString("\n")
			}
		}
		s.Format(w, opts)
	}
}

// Include 表示 `include path` 指令.
type Include struct {
	Path string
}

func (in *Include) statementNode() {}
func (in *Include) String() string { return render(in.Format, FormatOptions{}) }
func (in *Include) Format(w *bytes.Buffer, opts FormatOptions) {
	w.WriteString("include ")
	w.WriteString(in.Path)
}

// Label 表示标签定义, 如 `main:`.
type Label struct {
	Name string
}

func (l *Label) statementNode() {}
func (l *Label) String() string { return render(l.Format, FormatOptions{}) }
func (l *Label) Format(w *bytes.Buffer, opts FormatOptions) {
	w.WriteString(l.Name)
	w.WriteByte(':')
}

// Instruction 表示一条指令及其操作数列表.
type Instruction struct {
	Opcode   string
	Operands []Atom
}

func (ins *Instruction) statementNode() {}
func (ins *Instruction) String() string {
	return render(ins.Format, FormatOptions{Style: StyleSingleLine})
}
func (ins *Instruction) Format(w *bytes.Buffer, opts FormatOptions) {
	if opts.Style != StyleSingleLine {
		if opts.Indent == "" {
			w.WriteByte('\t')
		} else {
			w.WriteString(opts.Indent)
		}
	}
	w.WriteString(ins.Opcode)
	for i, op := range ins.Operands {
		if i == 0 {
			w.WriteByte(' ')
		} else {
			w.WriteString(", ")
		}
		w.WriteString(op.String())
	}
}

func render(format func(*bytes.Buffer, FormatOptions), opts FormatOptions) string {
	buf := bufferPool.Get().(*bytes.Buffer)
	defer bufferPool.Put(buf)
	buf.Reset()
	format(buf, opts)
	return buf.String()
}
