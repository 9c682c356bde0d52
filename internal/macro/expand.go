package macro

import (
	"github.com/funvibe/funex/internal/ast"
	"github.com/funvibe/funex/internal/config"
	"github.com/funvibe/funex/internal/symbols"
)

// Expander rewrites one node at a time. Each Expand call performs at most a
// single step; driving a tree to its fully expanded form is the caller's
// loop. The zero value resolves aliases and pseudo-variables on its own,
// macro dispatch happens only through the configured ports.
type Expander struct {
	Imports  ImportDispatcher
	Requires RequireDispatcher
}

// Expand applies one rewrite step to the top of node and returns the result.
// When no rule applies the input comes back as received, which is how
// callers detect that expansion has converged. Expand never descends into
// children except where a rule says so: alias segments past the head and the
// receiver of a qualified call.
func (e *Expander) Expand(node ast.Node, env Env) ast.Node {
	switch n := node.(type) {
	case *ast.AliasPath:
		return e.expandAlias(n, env)
	case *ast.PseudoVar:
		return expandPseudo(n, env)
	case *ast.Call:
		return e.expandCall(n, env)
	case *ast.DotCall:
		return e.expandDotCall(n, env)
	default:
		return node
	}
}

// expandAlias resolves a namespace path. A single plain identifier resolves
// through the alias table, falling back to its root-anchored form. A longer
// path resolves its head the same way and then needs every remaining segment
// to be, or expand to, a plain identifier before the whole path collapses
// into one canonical symbol. When some segment refuses, the resolved head is
// kept and the original tail is carried verbatim for a later pass.
func (e *Expander) expandAlias(path *ast.AliasPath, env Env) ast.Node {
	segments := path.Segments
	if len(segments) == 0 {
		return path
	}
	head, ok := ast.IdentOf(segments[0])
	if !ok {
		return path
	}
	resolved := ast.Ident(symbols.LookupAlias(env.Aliases, head))
	if len(segments) == 1 {
		return resolved
	}

	names := make([]symbols.Symbol, len(segments))
	names[0], _ = ast.IdentOf(resolved)
	complete := true
	for i := 1; i < len(segments); i++ {
		if name, ok := ast.IdentOf(e.Expand(segments[i], env)); ok {
			names[i] = name
		} else {
			complete = false
		}
	}
	if complete {
		return ast.Ident(symbols.Concat(names))
	}
	partial := make([]ast.Node, len(segments))
	copy(partial, segments)
	partial[0] = resolved
	return &ast.AliasPath{Meta: path.Meta, Segments: partial}
}

func expandPseudo(pseudo *ast.PseudoVar, env Env) ast.Node {
	switch pseudo.Kind {
	case ast.PseudoMain:
		return ast.Ident(symbols.Symbol(config.RootNamespace))
	case ast.PseudoModule:
		if env.Module.IsZero() {
			return &ast.Literal{Value: nil}
		}
		return &ast.Literal{Value: env.Module}
	case ast.PseudoFile:
		return &ast.Literal{Value: env.File}
	case ast.PseudoEnv:
		return Escape(env)
	default:
		return pseudo
	}
}

// expandCall resolves an unqualified call against the import port. Calls
// with a capture placeholder among their arguments are partial applications,
// never macro invocations, and skip dispatch entirely.
func (e *Expander) expandCall(call *ast.Call, env Env) ast.Node {
	name, ok := ast.IdentOf(call.Target)
	if !ok {
		return call
	}
	args := ast.NormalizeArgs(call.Args)
	if ast.HasCapture(args) || e.Imports == nil {
		return call
	}
	if replacement, ok := e.Imports.ExpandImport(call.Meta, Ref{Name: name, Arity: len(args)}, args, env); ok {
		return replacement
	}
	return call
}

// expandDotCall resolves a qualified call against the require port. The
// receiver is expanded first so that aliased and pseudo-variable receivers
// reach dispatch in canonical form. Every failure path returns the call as
// received: the expanded receiver is dropped, never substituted into a
// partially rewritten result.
func (e *Expander) expandDotCall(call *ast.DotCall, env Env) ast.Node {
	if isRootMarker(call.Receiver) && len(call.Args) == 0 {
		return ast.Ident(call.Member)
	}
	receiver, ok := ast.IdentOf(e.Expand(call.Receiver, env))
	if !ok {
		return call
	}
	args := ast.NormalizeArgs(call.Args)
	if ast.HasCapture(args) || e.Requires == nil {
		return call
	}
	if replacement, ok := e.Requires.ExpandRequire(call.Meta, receiver, Ref{Name: call.Member, Arity: len(args)}, args, env); ok {
		return replacement
	}
	return call
}

// isRootMarker recognizes the two spellings of the root namespace in
// receiver position: the bare identifier and the single-segment alias path.
// A member picked off the root marker with no arguments is the verbatim
// escape hatch, returning the member as an uninterpreted identifier.
func isRootMarker(receiver ast.Node) bool {
	root := symbols.Symbol(config.RootNamespace)
	if name, ok := ast.IdentOf(receiver); ok {
		return name == root
	}
	if path, ok := receiver.(*ast.AliasPath); ok && len(path.Segments) == 1 {
		name, ok := ast.IdentOf(path.Segments[0])
		return ok && name == root
	}
	return false
}
