// Package diagnostics carries the findings human-facing tooling reports.
// The macro core itself is total and silent; diagnostics belong to the
// surfaces around it, such as manifest validation and the index tool.
package diagnostics

import (
	"fmt"
	"sync"

	"github.com/funvibe/funex/internal/ast"
)

// ErrorCode identifies one kind of finding. R codes come from the registry,
// X codes from the index tooling.
type ErrorCode string

const (
	ErrR001 ErrorCode = "R001" // manifest unreadable or malformed
	ErrR002 ErrorCode = "R002" // manifest exports no macros
	ErrR003 ErrorCode = "R003" // suspicious module or alias casing
	ErrR004 ErrorCode = "R004" // suspicious alias target
	ErrX001 ErrorCode = "X001" // index unavailable
	ErrX002 ErrorCode = "X002" // unknown module queried
)

// Severity distinguishes findings that stop a run from advisory ones.
type Severity int

const (
	SeverityError Severity = iota
	SeverityWarning
)

func (s Severity) String() string {
	switch s {
	case SeverityError:
		return "error"
	case SeverityWarning:
		return "warning"
	default:
		return "unknown"
	}
}

// DiagnosticError is one reported finding. It implements error so call
// sites can hand it up through ordinary error returns.
type DiagnosticError struct {
	Code     ErrorCode
	Severity Severity
	File     string
	Pos      ast.Meta
	Message  string
	Notes    []string
	Help     string
}

// NewError creates an error-severity finding at pos. Pass a zero Meta for
// findings without a source position.
func NewError(code ErrorCode, pos ast.Meta, message string) *DiagnosticError {
	return &DiagnosticError{Code: code, Severity: SeverityError, Pos: pos, Message: message}
}

// NewWarning creates a warning-severity finding at pos.
func NewWarning(code ErrorCode, pos ast.Meta, message string) *DiagnosticError {
	return &DiagnosticError{Code: code, Severity: SeverityWarning, Pos: pos, Message: message}
}

// WithFile sets the source file the finding refers to.
func (d *DiagnosticError) WithFile(file string) *DiagnosticError {
	d.File = file
	return d
}

// WithNote attaches an additional line of context.
func (d *DiagnosticError) WithNote(note string) *DiagnosticError {
	d.Notes = append(d.Notes, note)
	return d
}

// WithHelp sets a suggestion for resolving the finding.
func (d *DiagnosticError) WithHelp(help string) *DiagnosticError {
	d.Help = help
	return d
}

func (d *DiagnosticError) location() string {
	switch {
	case d.File != "" && d.Pos.Line > 0:
		return fmt.Sprintf("%s:%d:%d", d.File, d.Pos.Line, d.Pos.Column)
	case d.File != "":
		return d.File
	case d.Pos.Line > 0:
		return fmt.Sprintf("%d:%d", d.Pos.Line, d.Pos.Column)
	default:
		return ""
	}
}

func (d *DiagnosticError) Error() string {
	if loc := d.location(); loc != "" {
		return fmt.Sprintf("%s[%s] %s: %s", d.Severity, d.Code, loc, d.Message)
	}
	return fmt.Sprintf("%s[%s]: %s", d.Severity, d.Code, d.Message)
}

// Bag collects findings across one tool run.
type Bag struct {
	mu    sync.Mutex
	items []*DiagnosticError
	errs  int
	warns int
}

func NewBag() *Bag {
	return &Bag{}
}

func (b *Bag) Add(d *DiagnosticError) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.items = append(b.items, d)
	switch d.Severity {
	case SeverityError:
		b.errs++
	case SeverityWarning:
		b.warns++
	}
}

// HasErrors reports whether any error-severity finding was collected.
func (b *Bag) HasErrors() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.errs > 0
}

// Items returns the collected findings in insertion order.
func (b *Bag) Items() []*DiagnosticError {
	b.mu.Lock()
	defer b.mu.Unlock()
	items := make([]*DiagnosticError, len(b.items))
	copy(items, b.items)
	return items
}

// Counts returns the number of errors and warnings collected.
func (b *Bag) Counts() (errs, warns int) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.errs, b.warns
}
