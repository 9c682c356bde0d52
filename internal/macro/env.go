package macro

import (
	"fmt"

	"github.com/funvibe/funex/internal/symbols"
)

// Ref names a macro or function by name and arity, e.g. unless/2.
type Ref struct {
	Name  symbols.Symbol
	Arity int
}

func (r Ref) String() string {
	return fmt.Sprintf("%s/%d", r.Name, r.Arity)
}

// Import records the macros one namespace contributes to the current scope.
type Import struct {
	Module symbols.Symbol
	Refs   []Ref
}

// Env is an immutable snapshot of the lexical state expansion runs against.
// The outer compiler builds one per scope and passes it down by value; this
// package only ever reads it. An Env is itself embeddable in a tree as a
// literal value, which is how __ENV__ resolves.
type Env struct {
	// Module is the namespace being compiled, or the absent symbol at the
	// top level of a file.
	Module symbols.Symbol

	// File is the path of the source file being compiled.
	File string

	// Function is the enclosing function definition, or nil outside one.
	Function *Ref

	// Aliases is the scope's alias table.
	Aliases symbols.AliasTable

	// Requires lists the namespaces whose macros may be invoked qualified.
	Requires []symbols.Symbol

	// Macros lists the imported macros visible unqualified in this scope.
	Macros []Import
}

// Required reports whether module's macros may be used qualified here. A
// namespace never needs to require itself.
func (e Env) Required(module symbols.Symbol) bool {
	if module == e.Module && !module.IsZero() {
		return true
	}
	for _, r := range e.Requires {
		if r == module {
			return true
		}
	}
	return false
}

// ImportedFrom returns the namespace that provides ref to this scope, or the
// absent symbol when ref is not imported.
func (e Env) ImportedFrom(ref Ref) symbols.Symbol {
	for _, imp := range e.Macros {
		for _, r := range imp.Refs {
			if r == ref {
				return imp.Module
			}
		}
	}
	return symbols.None
}

// InFunction reports whether expansion is happening inside the definition of
// ref itself.
func (e Env) InFunction(ref Ref) bool {
	return e.Function != nil && *e.Function == ref
}

// Inspect renders the snapshot the way diagnostics show embedded
// environments.
func (e Env) Inspect() string {
	if e.Module.IsZero() {
		return "#Env<>"
	}
	return fmt.Sprintf("#Env<%s>", e.Module)
}
