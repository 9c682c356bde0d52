// Package inspect renders runtime values the way diagnostics and tooling
// show them. It is the leaf formatter behind the code printer: the printer
// handles tree shapes, inspect handles the literal values at the leaves.
package inspect

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/funvibe/funex/internal/config"
	"github.com/funvibe/funex/internal/symbols"
)

// Inspectable lets a value carry its own canonical rendering. Compiler-owned
// values such as environment snapshots implement it; everything else goes
// through the built-in rules.
type Inspectable interface {
	Inspect() string
}

// Value renders a literal value in canonical form.
func Value(v any) string {
	switch x := v.(type) {
	case nil:
		return "nil"
	case Inspectable:
		return x.Inspect()
	case symbols.Symbol:
		return Symbol(x)
	case string:
		return Quote(x)
	case bool:
		return fmt.Sprintf("%t", x)
	case int:
		return fmt.Sprintf("%d", x)
	case int64:
		return fmt.Sprintf("%d", x)
	case float64:
		return fmt.Sprintf("%g", x)
	case []byte:
		return Bytes(x)
	default:
		return fmt.Sprintf("%v", x)
	}
}

// Symbol renders an interned symbol. Namespace references print bare with
// the root prefix stripped, so `Funex.MyHelpers.Module` shows as
// `MyHelpers.Module`. Ordinary symbols print in colon form, quoted when the
// spelling is not a plain identifier.
func Symbol(s symbols.Symbol) string {
	if symbols.IsAbsolute(s) {
		if stripped := symbols.StripRoot(s); !stripped.IsZero() {
			return stripped.String()
		}
		return config.RootNamespace
	}
	if s.IsReference() {
		return s.String()
	}
	if s.IsPlainIdent() {
		return ":" + s.String()
	}
	return ":" + Quote(s.String())
}

// Bytes renders a binary in bit-container form, one decimal octet per
// element.
func Bytes(b []byte) string {
	parts := make([]string, len(b))
	for i, octet := range b {
		parts[i] = strconv.Itoa(int(octet))
	}
	return "<<" + strings.Join(parts, ", ") + ">>"
}

var stringEscapes = map[rune]string{
	'"':  `\"`,
	'\\': `\\`,
	'\n': `\n`,
	'\t': `\t`,
	'\r': `\r`,
}

// Quote wraps s in double quotes, escaping the characters that would break
// out of the literal.
func Quote(s string) string {
	var b strings.Builder
	b.WriteByte('"')
	for _, r := range s {
		if esc, ok := stringEscapes[r]; ok {
			b.WriteString(esc)
			continue
		}
		b.WriteRune(r)
	}
	b.WriteByte('"')
	return b.String()
}
