// Package registry holds the macro definitions the resolver dispatches
// against: an in-memory table of macro implementations, YAML manifests
// declaring a module's macro surface, and a sqlite index aggregating those
// surfaces across compilation units.
package registry

import (
	"sync"

	"github.com/funvibe/funex/internal/ast"
	"github.com/funvibe/funex/internal/macro"
	"github.com/funvibe/funex/internal/symbols"
)

// MacroFunc is a macro implementation. It receives the call site's position
// and arguments together with the environment snapshot and returns the
// replacement node. Implementations typically build their result with
// macro.Escape.
type MacroFunc func(meta ast.Meta, args []ast.Node, env macro.Env) ast.Node

// Module is one namespace's registered macros, keyed by name/arity.
type Module struct {
	Name   symbols.Symbol
	macros map[macro.Ref]MacroFunc
}

// Table maps namespaces to macro implementations and implements both
// dispatch ports of macro.Expander. Registration takes an exclusive lock and
// dispatch a shared one, so a single expansion step observes one consistent
// snapshot of the table.
type Table struct {
	mu      sync.RWMutex
	modules map[symbols.Symbol]*Module
}

func NewTable() *Table {
	return &Table{modules: make(map[symbols.Symbol]*Module)}
}

// Register binds an implementation for ref under module. Registering the
// same name/arity again replaces the earlier implementation.
func (t *Table) Register(module symbols.Symbol, ref macro.Ref, fn MacroFunc) {
	t.mu.Lock()
	defer t.mu.Unlock()
	m, ok := t.modules[module]
	if !ok {
		m = &Module{Name: module, macros: make(map[macro.Ref]MacroFunc)}
		t.modules[module] = m
	}
	m.macros[ref] = fn
}

// Defines reports whether module has an implementation for ref.
func (t *Table) Defines(module symbols.Symbol, ref macro.Ref) bool {
	_, ok := t.lookup(module, ref)
	return ok
}

func (t *Table) lookup(module symbols.Symbol, ref macro.Ref) (MacroFunc, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	m, ok := t.modules[module]
	if !ok {
		return nil, false
	}
	fn, ok := m.macros[ref]
	return fn, ok
}

// ExpandImport resolves an unqualified macro call. The namespace is taken
// from the environment's imported-macro bindings, falling back to the module
// being compiled. A macro never expands inside its own definition, so a call
// to ref while env.Function is ref reports absence.
func (t *Table) ExpandImport(meta ast.Meta, ref macro.Ref, args []ast.Node, env macro.Env) (ast.Node, bool) {
	if env.InFunction(ref) {
		return nil, false
	}
	module := env.ImportedFrom(ref)
	if module.IsZero() {
		module = env.Module
	}
	if module.IsZero() {
		return nil, false
	}
	fn, ok := t.lookup(module, ref)
	if !ok {
		return nil, false
	}
	return fn(meta, args, env), true
}

// ExpandRequire resolves a qualified macro call. The receiver namespace must
// be required by the environment (a module always counts as requiring
// itself); otherwise the call reports absence and stays unexpanded.
func (t *Table) ExpandRequire(meta ast.Meta, receiver symbols.Symbol, ref macro.Ref, args []ast.Node, env macro.Env) (ast.Node, bool) {
	if !env.Required(receiver) {
		return nil, false
	}
	fn, ok := t.lookup(receiver, ref)
	if !ok {
		return nil, false
	}
	return fn(meta, args, env), true
}

// Modules returns the namespaces with at least one registered macro.
func (t *Table) Modules() []symbols.Symbol {
	t.mu.RLock()
	defer t.mu.RUnlock()
	names := make([]symbols.Symbol, 0, len(t.modules))
	for name := range t.modules {
		names = append(names, name)
	}
	return names
}

// Macros returns the refs registered under module.
func (t *Table) Macros(module symbols.Symbol) []macro.Ref {
	t.mu.RLock()
	defer t.mu.RUnlock()
	m, ok := t.modules[module]
	if !ok {
		return nil
	}
	refs := make([]macro.Ref, 0, len(m.macros))
	for ref := range m.macros {
		refs = append(refs, ref)
	}
	return refs
}
