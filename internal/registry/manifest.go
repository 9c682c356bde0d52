package registry

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/funvibe/funex/internal/ast"
	"github.com/funvibe/funex/internal/config"
	"github.com/funvibe/funex/internal/diagnostics"
	"github.com/funvibe/funex/internal/macro"
	"github.com/funvibe/funex/internal/symbols"
)

// Manifest is the funex.yaml declaration of one compiled module's macro
// surface. The compiler writes one per module and the index aggregates them;
// macro bodies are never serialized, a manifest carries signatures only.
type Manifest struct {
	// Module is the namespace the manifest describes, without the root
	// prefix (e.g. "MyHelpers.Module").
	Module string `yaml:"module"`

	// Macros lists the name/arity pairs the module exports as macros.
	Macros []MacroSignature `yaml:"macros"`

	// Aliases lists alias bindings the module suggests to its consumers.
	// Optional; most modules export none.
	Aliases []AliasDefault `yaml:"aliases,omitempty"`
}

// MacroSignature is one exported macro.
type MacroSignature struct {
	Name  string `yaml:"name"`
	Arity int    `yaml:"arity"`
}

// AliasDefault is one suggested alias binding.
type AliasDefault struct {
	// Alias is the short name, a single path segment (e.g. "My").
	Alias string `yaml:"alias"`

	// Target is the path the alias stands for (e.g. "MyHelpers"). Stored as
	// written; it is rooted when turned into an alias table.
	Target string `yaml:"target"`
}

// LoadManifest reads and parses a manifest file.
func LoadManifest(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading manifest %s: %w", path, err)
	}
	return ParseManifest(data, path)
}

// ParseManifest parses manifest content from bytes. The path argument is
// used only for error messages.
func ParseManifest(data []byte, path string) (*Manifest, error) {
	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	if err := m.validate(path); err != nil {
		return nil, err
	}
	return &m, nil
}

// FindManifest searches for a manifest starting from dir and walking up to
// parent directories. Returns the path and nil error if found, or an empty
// string and nil error if not found.
func FindManifest(dir string) (string, error) {
	dir, err := filepath.Abs(dir)
	if err != nil {
		return "", fmt.Errorf("resolving directory: %w", err)
	}
	for {
		for _, name := range config.ManifestFileNames {
			candidate := filepath.Join(dir, name)
			if _, err := os.Stat(candidate); err == nil {
				return candidate, nil
			}
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", nil
		}
		dir = parent
	}
}

// validate checks the manifest for semantic errors.
func (m *Manifest) validate(path string) error {
	if m.Module == "" {
		return fmt.Errorf("%s: module is required", path)
	}
	seen := make(map[MacroSignature]bool)
	for i, sig := range m.Macros {
		if sig.Name == "" {
			return fmt.Errorf("%s: macros[%d]: name is required", path, i)
		}
		if sig.Arity < 0 {
			return fmt.Errorf("%s: macros[%d] (%s): arity must not be negative", path, i, sig.Name)
		}
		if seen[sig] {
			return fmt.Errorf("%s: macros[%d]: duplicate signature %s/%d", path, i, sig.Name, sig.Arity)
		}
		seen[sig] = true
	}
	for i, a := range m.Aliases {
		if a.Alias == "" {
			return fmt.Errorf("%s: aliases[%d]: alias is required", path, i)
		}
		if strings.Contains(a.Alias, config.NamespaceSeparator) {
			return fmt.Errorf("%s: aliases[%d]: alias %q must be a single segment", path, i, a.Alias)
		}
		if a.Target == "" {
			return fmt.Errorf("%s: aliases[%d] (%s): target is required", path, i, a.Alias)
		}
	}
	return nil
}

// Lint reports findings that are worth a look but do not make the manifest
// unusable. Hard errors are validate's job.
func (m *Manifest) Lint(path string) *diagnostics.Bag {
	bag := diagnostics.NewBag()
	if len(m.Macros) == 0 {
		bag.Add(diagnostics.NewWarning(diagnostics.ErrR002, ast.Meta{},
			"manifest exports no macros").WithFile(path))
	}
	if !symbols.Symbol(m.Module).IsReference() {
		bag.Add(diagnostics.NewWarning(diagnostics.ErrR003,
			ast.Meta{}, fmt.Sprintf("module name %q does not start with an upper-case letter", m.Module)).
			WithFile(path).
			WithHelp("namespace references are spelled upper-case"))
	}
	for _, a := range m.Aliases {
		if !symbols.Symbol(a.Alias).IsReference() {
			bag.Add(diagnostics.NewWarning(diagnostics.ErrR003, ast.Meta{},
				fmt.Sprintf("alias %q does not start with an upper-case letter", a.Alias)).WithFile(path))
		}
		if !symbols.Symbol(a.Target).IsReference() {
			bag.Add(diagnostics.NewWarning(diagnostics.ErrR004, ast.Meta{},
				fmt.Sprintf("alias target %q does not look like a namespace path", a.Target)).WithFile(path))
		}
	}
	return bag
}

// ModuleSymbol returns the manifest's module name as an absolute symbol.
func (m *Manifest) ModuleSymbol() symbols.Symbol {
	return symbols.Rooted(symbols.Intern(m.Module))
}

// Refs returns the exported signatures as dispatch refs.
func (m *Manifest) Refs() []macro.Ref {
	refs := make([]macro.Ref, len(m.Macros))
	for i, sig := range m.Macros {
		refs[i] = macro.Ref{Name: symbols.Intern(sig.Name), Arity: sig.Arity}
	}
	return refs
}

// AliasTable returns the suggested bindings as an alias table with rooted
// canonical targets.
func (m *Manifest) AliasTable() symbols.AliasTable {
	var table symbols.AliasTable
	for _, a := range m.Aliases {
		table = table.Bind(symbols.Intern(a.Alias), symbols.Rooted(symbols.Intern(a.Target)))
	}
	return table
}
