package registry

import (
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"

	"github.com/funvibe/funex/internal/macro"
	"github.com/funvibe/funex/internal/symbols"
)

const indexSchema = `
CREATE TABLE IF NOT EXISTS modules (
	name TEXT PRIMARY KEY
);
CREATE TABLE IF NOT EXISTS macros (
	module TEXT NOT NULL,
	name   TEXT NOT NULL,
	arity  INTEGER NOT NULL,
	PRIMARY KEY (module, name, arity)
);
CREATE TABLE IF NOT EXISTS aliases (
	module TEXT NOT NULL,
	alias  TEXT NOT NULL,
	target TEXT NOT NULL,
	PRIMARY KEY (module, alias)
);
`

// Index is the on-disk macro index shared between compilation units. Each
// compiled module contributes its manifest; later builds query the index to
// learn which namespace exports which macros without reloading every
// manifest. Only signatures are stored, never macro bodies.
type Index struct {
	db *sql.DB
}

// OpenIndex opens the index database at path, creating it and its schema
// when missing.
func OpenIndex(path string) (*Index, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening index %s: %w", path, err)
	}
	if _, err := db.Exec(indexSchema); err != nil {
		db.Close()
		return nil, fmt.Errorf("preparing index %s: %w", path, err)
	}
	return &Index{db: db}, nil
}

func (ix *Index) Close() error {
	return ix.db.Close()
}

// SaveManifest records a manifest's surface, replacing whatever the index
// held for that module before.
func (ix *Index) SaveManifest(m *Manifest) error {
	tx, err := ix.db.Begin()
	if err != nil {
		return fmt.Errorf("saving %s: %w", m.Module, err)
	}
	defer tx.Rollback()

	module := m.ModuleSymbol().String()
	if _, err := tx.Exec(`INSERT OR IGNORE INTO modules (name) VALUES (?)`, module); err != nil {
		return fmt.Errorf("saving %s: %w", m.Module, err)
	}
	if _, err := tx.Exec(`DELETE FROM macros WHERE module = ?`, module); err != nil {
		return fmt.Errorf("saving %s: %w", m.Module, err)
	}
	if _, err := tx.Exec(`DELETE FROM aliases WHERE module = ?`, module); err != nil {
		return fmt.Errorf("saving %s: %w", m.Module, err)
	}
	for _, sig := range m.Macros {
		if _, err := tx.Exec(`INSERT INTO macros (module, name, arity) VALUES (?, ?, ?)`,
			module, sig.Name, sig.Arity); err != nil {
			return fmt.Errorf("saving %s: macro %s/%d: %w", m.Module, sig.Name, sig.Arity, err)
		}
	}
	for _, a := range m.Aliases {
		if _, err := tx.Exec(`INSERT INTO aliases (module, alias, target) VALUES (?, ?, ?)`,
			module, a.Alias, a.Target); err != nil {
			return fmt.Errorf("saving %s: alias %s: %w", m.Module, a.Alias, err)
		}
	}
	return tx.Commit()
}

// Modules lists the indexed namespaces in name order.
func (ix *Index) Modules() ([]symbols.Symbol, error) {
	rows, err := ix.db.Query(`SELECT name FROM modules ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("listing modules: %w", err)
	}
	defer rows.Close()

	var modules []symbols.Symbol
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("listing modules: %w", err)
		}
		modules = append(modules, symbols.Intern(name))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("listing modules: %w", err)
	}
	return modules, nil
}

// Known reports whether module has been indexed.
func (ix *Index) Known(module symbols.Symbol) (bool, error) {
	var one int
	err := ix.db.QueryRow(`SELECT 1 FROM modules WHERE name = ?`, module.String()).Scan(&one)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("querying module %s: %w", module, err)
	}
	return true, nil
}

// Macros lists the signatures module exports, in name then arity order.
func (ix *Index) Macros(module symbols.Symbol) ([]macro.Ref, error) {
	rows, err := ix.db.Query(
		`SELECT name, arity FROM macros WHERE module = ? ORDER BY name, arity`, module.String())
	if err != nil {
		return nil, fmt.Errorf("listing macros of %s: %w", module, err)
	}
	defer rows.Close()

	var refs []macro.Ref
	for rows.Next() {
		var name string
		var arity int
		if err := rows.Scan(&name, &arity); err != nil {
			return nil, fmt.Errorf("listing macros of %s: %w", module, err)
		}
		refs = append(refs, macro.Ref{Name: symbols.Intern(name), Arity: arity})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("listing macros of %s: %w", module, err)
	}
	return refs, nil
}

// Aliases returns module's suggested alias bindings with rooted canonical
// targets, matching Manifest.AliasTable.
func (ix *Index) Aliases(module symbols.Symbol) (symbols.AliasTable, error) {
	rows, err := ix.db.Query(
		`SELECT alias, target FROM aliases WHERE module = ? ORDER BY alias`, module.String())
	if err != nil {
		return nil, fmt.Errorf("listing aliases of %s: %w", module, err)
	}
	defer rows.Close()

	var table symbols.AliasTable
	for rows.Next() {
		var alias, target string
		if err := rows.Scan(&alias, &target); err != nil {
			return nil, fmt.Errorf("listing aliases of %s: %w", module, err)
		}
		table = table.Bind(symbols.Intern(alias), symbols.Rooted(symbols.Intern(target)))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("listing aliases of %s: %w", module, err)
	}
	return table, nil
}

// Lookup reports whether module exports ref.
func (ix *Index) Lookup(module symbols.Symbol, ref macro.Ref) (bool, error) {
	var one int
	err := ix.db.QueryRow(
		`SELECT 1 FROM macros WHERE module = ? AND name = ? AND arity = ?`,
		module.String(), ref.Name.String(), ref.Arity).Scan(&one)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("looking up %s.%s: %w", module, ref, err)
	}
	return true, nil
}
