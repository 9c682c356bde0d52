package macro

import (
	"github.com/funvibe/funex/internal/ast"
	"github.com/funvibe/funex/internal/symbols"
)

// ImportDispatcher resolves an unqualified macro call against whatever
// registry the enclosing compiler maintains. A false second return means "no
// such macro here" and is an ordinary outcome, not an error: the resolver
// answers it by leaving the call untouched.
type ImportDispatcher interface {
	ExpandImport(meta ast.Meta, ref Ref, args []ast.Node, env Env) (ast.Node, bool)
}

// RequireDispatcher resolves a qualified macro call on a namespace the scope
// has required. Absence is reported the same comma-ok way as ImportDispatcher.
type RequireDispatcher interface {
	ExpandRequire(meta ast.Meta, receiver symbols.Symbol, ref Ref, args []ast.Node, env Env) (ast.Node, bool)
}

// ImportFunc adapts a function to the ImportDispatcher interface.
type ImportFunc func(meta ast.Meta, ref Ref, args []ast.Node, env Env) (ast.Node, bool)

func (f ImportFunc) ExpandImport(meta ast.Meta, ref Ref, args []ast.Node, env Env) (ast.Node, bool) {
	return f(meta, ref, args, env)
}

// RequireFunc adapts a function to the RequireDispatcher interface.
type RequireFunc func(meta ast.Meta, receiver symbols.Symbol, ref Ref, args []ast.Node, env Env) (ast.Node, bool)

func (f RequireFunc) ExpandRequire(meta ast.Meta, receiver symbols.Symbol, ref Ref, args []ast.Node, env Env) (ast.Node, bool) {
	return f(meta, receiver, ref, args, env)
}
