package ast

import (
	"github.com/funvibe/funex/internal/config"
	"github.com/funvibe/funex/internal/symbols"
)

// Meta carries the source position attached to a node. Nodes synthesized by
// macro expansion carry the zero Meta.
type Meta struct {
	Line   int
	Column int
}

// Node is the base interface for all tree nodes. The variant set is closed:
// every transformation in this repository switches exhaustively over the
// types below and treats anything unexpected as an opaque leaf.
type Node interface {
	Pos() Meta
	node()
}

// Literal is a self-quoting leaf: a symbol, number, string, boolean, byte
// slice, or any other host value that represents itself in quoted form.
type Literal struct {
	Value any
}

func (l *Literal) Pos() Meta { return Meta{} }
func (l *Literal) node()     {}

// Pair is a two-element grouping, e.g. {:ok, value}. Pairs are kept distinct
// from Tuple so that two-element groupings survive quoting unchanged.
type Pair struct {
	Left  Node
	Right Node
}

func (p *Pair) Pos() Meta { return Meta{} }
func (p *Pair) node()     {}

// Tuple is an n-ary grouping for any n other than two, e.g. {1, 2, 3}.
// The explicit node keeps literal tuples apart from call shapes.
type Tuple struct {
	Meta     Meta
	Elements []Node
}

func (t *Tuple) Pos() Meta { return t.Meta }
func (t *Tuple) node()     {}

// List is a literal sequence, e.g. [1, 2, 3].
type List struct {
	Meta     Meta
	Elements []Node
}

func (l *List) Pos() Meta { return l.Meta }
func (l *List) node()     {}

// Bits is a binary/bitstring construction, e.g. <<1, 2, x>>.
type Bits struct {
	Meta     Meta
	Elements []Node
}

func (b *Bits) Pos() Meta { return b.Meta }
func (b *Bits) node()     {}

// Block is a sequence of statements forming one compound expression, the
// body of a do-end or a parenthesized group.
type Block struct {
	Meta       Meta
	Statements []Node
}

func (b *Block) Pos() Meta { return b.Meta }
func (b *Block) node()     {}

// Var references a local binding. Context is the absent symbol for a plain
// source identifier; expansion-generated variables carry the namespace that
// minted them so hygiene can tell them apart.
type Var struct {
	Name    symbols.Symbol
	Meta    Meta
	Context symbols.Symbol
}

func (v *Var) Pos() Meta { return v.Meta }
func (v *Var) node()     {}

// AliasPath is a (possibly multi-segment) namespace reference such as
// My.Module. Each segment is either an identifier leaf or a nested node that
// still needs expansion before the path can be resolved.
type AliasPath struct {
	Meta     Meta
	Segments []Node
}

func (a *AliasPath) Pos() Meta { return a.Meta }
func (a *AliasPath) node()     {}

// Call is an unqualified invocation, e.g. foo(1, 2). Target is an identifier
// leaf for ordinary calls and an arbitrary node for computed ones. A nil Args
// slice is the no-argument-list marker: `foo` written without parentheses.
// An empty non-nil slice is `foo()`.
type Call struct {
	Target Node
	Meta   Meta
	Args   []Node
}

func (c *Call) Pos() Meta { return c.Meta }
func (c *Call) node()     {}

// DotCall is a qualified invocation, e.g. Mod.fun(1). Args follows the same
// nil/non-nil convention as Call.
type DotCall struct {
	Receiver Node
	Member   symbols.Symbol
	Meta     Meta
	Args     []Node
}

func (d *DotCall) Pos() Meta { return d.Meta }
func (d *DotCall) node()     {}

// Capture is the partial-application placeholder &N. A call carrying one in
// its arguments is a partial application, never a macro invocation.
type Capture struct {
	Index int
}

func (c *Capture) Pos() Meta { return Meta{} }
func (c *Capture) node()     {}

// PseudoKind enumerates the compile-time pseudo-variables.
type PseudoKind int

const (
	PseudoMain   PseudoKind = iota // __MAIN__, the root namespace marker
	PseudoModule                   // __MODULE__
	PseudoFile                     // __FILE__
	PseudoEnv                      // __ENV__
)

func (k PseudoKind) String() string {
	switch k {
	case PseudoMain:
		return config.PseudoMainName
	case PseudoModule:
		return config.PseudoModuleName
	case PseudoFile:
		return config.PseudoFileName
	case PseudoEnv:
		return config.PseudoEnvName
	default:
		return "__UNKNOWN__"
	}
}

// PseudoVar is a compile-time placeholder resolved during expansion rather
// than at runtime.
type PseudoVar struct {
	Kind PseudoKind
}

func (p *PseudoVar) Pos() Meta { return Meta{} }
func (p *PseudoVar) node()     {}
