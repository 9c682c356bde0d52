package ast

import "github.com/funvibe/funex/internal/symbols"

// Ident wraps an interned identifier as a tree leaf. Alias segments, call
// targets, and resolved module paths are all identifier leaves.
func Ident(name symbols.Symbol) *Literal {
	return &Literal{Value: name}
}

// IdentOf returns the identifier a node stands for, when it is a plain
// identifier leaf.
func IdentOf(n Node) (symbols.Symbol, bool) {
	lit, ok := n.(*Literal)
	if !ok {
		return symbols.None, false
	}
	sym, ok := lit.Value.(symbols.Symbol)
	if !ok || sym.IsZero() {
		return symbols.None, false
	}
	return sym, true
}

// IsIdent reports whether n is a plain identifier leaf.
func IsIdent(n Node) bool {
	_, ok := IdentOf(n)
	return ok
}

// NoArgs reports whether args is the no-argument-list marker, i.e. the call
// was written without parentheses.
func NoArgs(args []Node) bool {
	return args == nil
}

// NormalizeArgs turns the no-argument-list marker into an empty argument
// list; explicit argument lists pass through untouched.
func NormalizeArgs(args []Node) []Node {
	if args == nil {
		return []Node{}
	}
	return args
}

// HasCapture reports whether any top-level argument is a partial-application
// placeholder. Placeholders nested deeper belong to an inner call and do not
// make the outer one partial.
func HasCapture(args []Node) bool {
	for _, arg := range args {
		if _, ok := arg.(*Capture); ok {
			return true
		}
	}
	return false
}
