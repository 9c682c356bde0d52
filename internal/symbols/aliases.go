package symbols

import (
	"strings"

	"github.com/funvibe/funex/internal/config"
)

// Alias is one binding from a short alias to the canonical module path it
// stands for, e.g. `My` -> `Funex.MyHelpers`.
type Alias struct {
	Name      Symbol
	Canonical Symbol
}

// AliasTable is the ordered alias snapshot of one lexical scope. It is data,
// not a service: tables are built by the outer compiler, carried inside an
// environment, and read here. Lookup scans front to back, and Bind prepends,
// so a rebound alias shadows its older binding.
type AliasTable []Alias

// Bind returns a table extended with one more binding. The receiver is not
// modified.
func (t AliasTable) Bind(name, canonical Symbol) AliasTable {
	extended := make(AliasTable, 0, len(t)+1)
	extended = append(extended, Alias{Name: name, Canonical: canonical})
	extended = append(extended, t...)
	return extended
}

// Lookup returns the canonical path bound to name, if any.
func (t AliasTable) Lookup(name Symbol) (Symbol, bool) {
	for _, a := range t {
		if a.Name == name {
			return a.Canonical, true
		}
	}
	return None, false
}

// LookupAlias resolves name against the table: the bound canonical path when
// one exists, otherwise name itself in absolute (root-prefixed) form. The
// fallback is idempotent, so resolving an already-absolute path returns it
// unchanged rather than double-prefixed.
func LookupAlias(t AliasTable, name Symbol) Symbol {
	if canonical, ok := t.Lookup(name); ok {
		return canonical
	}
	return Rooted(name)
}

// IsAbsolute reports whether name is already anchored at the root namespace.
func IsAbsolute(name Symbol) bool {
	if name == Symbol(config.RootNamespace) {
		return true
	}
	return strings.HasPrefix(string(name), config.RootNamespace+config.NamespaceSeparator)
}

// Rooted anchors name at the root namespace unless it already is.
func Rooted(name Symbol) Symbol {
	if name.IsZero() || IsAbsolute(name) {
		return name
	}
	return Symbol(config.RootNamespace + config.NamespaceSeparator + string(name))
}

// StripRoot removes the root-namespace prefix from name, if present. The root
// marker itself strips to the absent symbol.
func StripRoot(name Symbol) Symbol {
	if name == Symbol(config.RootNamespace) {
		return None
	}
	trimmed := strings.TrimPrefix(string(name), config.RootNamespace+config.NamespaceSeparator)
	return Symbol(trimmed)
}

// Concat combines plain identifier segments into one canonical path. The head
// keeps whatever anchoring it already has; redundant root prefixes on later
// segments are dropped, so Concat(Funex.My, Funex.Mod) is `Funex.My.Mod`, and
// Concat(MyHelpers, Module) is `MyHelpers.Module`.
func Concat(segments []Symbol) Symbol {
	parts := make([]string, 0, len(segments))
	for i, seg := range segments {
		if i > 0 {
			seg = StripRoot(seg)
		}
		if seg.IsZero() {
			continue
		}
		parts = append(parts, string(seg))
	}
	return Symbol(strings.Join(parts, config.NamespaceSeparator))
}
