// Package prettyprinter renders syntax trees back into canonical source
// text. The output is the one defined form for each tree shape, meant for
// error messages and tooling; it does not try to reproduce the original
// file.
package prettyprinter

import (
	"bytes"
	"strconv"
	"strings"

	"github.com/funvibe/funex/internal/ast"
	"github.com/funvibe/funex/internal/config"
	"github.com/funvibe/funex/internal/inspect"
)

// ValueFormatter renders the literal leaf values the printer does not
// recognize as tree shapes.
type ValueFormatter interface {
	FormatValue(value any) string
}

// FormatterFunc adapts a function to the ValueFormatter interface.
type FormatterFunc func(value any) string

func (f FormatterFunc) FormatValue(value any) string { return f(value) }

// CodePrinter accumulates the canonical text of syntax trees.
type CodePrinter struct {
	buf       bytes.Buffer
	formatter ValueFormatter
}

func NewCodePrinter() *CodePrinter {
	return &CodePrinter{formatter: FormatterFunc(inspect.Value)}
}

func NewCodePrinterWithFormatter(f ValueFormatter) *CodePrinter {
	return &CodePrinter{formatter: f}
}

// Render returns the canonical text of node using the default value
// formatter.
func Render(node ast.Node) string {
	p := NewCodePrinter()
	p.Print(node)
	return p.String()
}

func (p *CodePrinter) String() string {
	return p.buf.String()
}

func (p *CodePrinter) write(s string) {
	p.buf.WriteString(s)
}

// Print appends the canonical text of node to the buffer. Print is total:
// every tree shape has a rendering, and leaf values fall through to the
// value formatter.
func (p *CodePrinter) Print(node ast.Node) {
	switch n := node.(type) {
	case *ast.Var:
		p.write(n.Name.String())
	case *ast.AliasPath:
		p.printAliasPath(n)
	case *ast.Block:
		p.printBlock(n)
	case *ast.Bits:
		p.write("<<")
		p.printSeq(n.Elements)
		p.write(">>")
	case *ast.Tuple:
		p.write("{")
		p.printSeq(n.Elements)
		p.write("}")
	case *ast.List:
		p.write("[")
		p.printSeq(n.Elements)
		p.write("]")
	case *ast.Call:
		p.printCall(n)
	case *ast.DotCall:
		p.printDotCall(n)
	case *ast.Pair:
		p.write("{")
		p.Print(n.Left)
		p.write(", ")
		p.Print(n.Right)
		p.write("}")
	case *ast.Capture:
		p.write(config.CaptureOperator)
		p.write(strconv.Itoa(n.Index))
	case *ast.PseudoVar:
		p.write(n.Kind.String())
	case *ast.Literal:
		p.printValue(n.Value)
	default:
		p.write(p.formatter.FormatValue(node))
	}
}

// Segments render recursively: a segment may be a nested expandable node
// rather than an identifier leaf.
func (p *CodePrinter) printAliasPath(path *ast.AliasPath) {
	for i, seg := range path.Segments {
		if i > 0 {
			p.write(".")
		}
		p.Print(seg)
	}
}

func (p *CodePrinter) printBlock(block *ast.Block) {
	parts := make([]string, len(block.Statements))
	for i, stmt := range block.Statements {
		parts[i] = p.render(stmt)
	}
	joined := strings.Join(parts, "\n")
	// The indent rewrite is byte-level over the already-joined text, so
	// nested blocks compound their indentation.
	indented := strings.ReplaceAll(joined, "\n", "\n  ")
	p.write("(\n  ")
	p.write(indented)
	p.write("\n)")
}

// render prints node through a scratch printer sharing the formatter.
func (p *CodePrinter) render(node ast.Node) string {
	sub := &CodePrinter{formatter: p.formatter}
	sub.Print(node)
	return sub.String()
}

func (p *CodePrinter) printCall(call *ast.Call) {
	p.printCallHead(call.Target)
	if ast.NoArgs(call.Args) {
		return
	}
	p.write("(")
	p.printSeq(call.Args)
	p.write(")")
}

// printCallHead writes an unqualified call target. A plain identifier goes
// out as bare text, anything else renders as a tree.
func (p *CodePrinter) printCallHead(target ast.Node) {
	if name, ok := ast.IdentOf(target); ok {
		p.write(name.String())
		return
	}
	p.Print(target)
}

func (p *CodePrinter) printDotCall(call *ast.DotCall) {
	p.Print(call.Receiver)
	p.write(".")
	p.write(call.Member.String())
	if ast.NoArgs(call.Args) {
		return
	}
	p.write("(")
	p.printSeq(call.Args)
	p.write(")")
}

func (p *CodePrinter) printSeq(elements []ast.Node) {
	for i, el := range elements {
		if i > 0 {
			p.write(", ")
		}
		p.Print(el)
	}
}

// printValue handles literal payloads. A bare sequence of nodes renders in
// list shape, an embedded node renders as itself, and everything else is a
// leaf for the value formatter.
func (p *CodePrinter) printValue(v any) {
	switch x := v.(type) {
	case []ast.Node:
		p.write("[")
		p.printSeq(x)
		p.write("]")
	case []any:
		p.write("[")
		for i, el := range x {
			if i > 0 {
				p.write(", ")
			}
			p.printValue(el)
		}
		p.write("]")
	case ast.Node:
		p.Print(x)
	default:
		p.write(p.formatter.FormatValue(v))
	}
}
