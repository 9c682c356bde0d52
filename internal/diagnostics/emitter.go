package diagnostics

import (
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"
)

const (
	ansiReset  = "\x1b[0m"
	ansiBold   = "\x1b[1m"
	ansiRed    = "\x1b[31m"
	ansiYellow = "\x1b[33m"
)

// Emitter writes findings to a stream, coloring severity markers when the
// stream is a terminal.
type Emitter struct {
	out   io.Writer
	color bool
}

// NewEmitter writes to stderr, colored when stderr is a terminal.
func NewEmitter() *Emitter {
	useColor := isatty.IsTerminal(os.Stderr.Fd()) || isatty.IsCygwinTerminal(os.Stderr.Fd())
	return &Emitter{out: os.Stderr, color: useColor}
}

// NewEmitterWithWriter writes to w without color.
func NewEmitterWithWriter(w io.Writer) *Emitter {
	return &Emitter{out: w}
}

func (e *Emitter) paint(s Severity) string {
	if s == SeverityError {
		return ansiRed
	}
	return ansiYellow
}

// Emit writes one finding.
func (e *Emitter) Emit(d *DiagnosticError) {
	head := fmt.Sprintf("%s[%s]", d.Severity, d.Code)
	if e.color {
		head = e.paint(d.Severity) + ansiBold + head + ansiReset
	}
	fmt.Fprintf(e.out, "%s: %s\n", head, d.Message)
	if loc := d.location(); loc != "" {
		fmt.Fprintf(e.out, "  --> %s\n", loc)
	}
	for _, note := range d.Notes {
		fmt.Fprintf(e.out, "  note: %s\n", note)
	}
	if d.Help != "" {
		fmt.Fprintf(e.out, "  help: %s\n", d.Help)
	}
}

// EmitAll writes every finding in the bag, followed by a summary line when
// anything was collected.
func (e *Emitter) EmitAll(bag *Bag) {
	for _, d := range bag.Items() {
		e.Emit(d)
	}
	errs, warns := bag.Counts()
	switch {
	case errs > 0 && warns > 0:
		fmt.Fprintf(e.out, "%d error(s), %d warning(s)\n", errs, warns)
	case errs > 0:
		fmt.Fprintf(e.out, "%d error(s)\n", errs)
	case warns > 0:
		fmt.Fprintf(e.out, "%d warning(s)\n", warns)
	}
}
