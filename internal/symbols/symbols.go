package symbols

import (
	"sync"
	"unicode"
	"unicode/utf8"
)

// Symbol is an interned identifier. The zero value means "no symbol" and is
// used wherever the language allows an absent name (e.g. an environment
// outside any module). Symbols compare with ==; interning keeps equal names
// sharing one backing string so comparisons stay cheap across a compilation
// unit.
type Symbol string

// None is the absent symbol.
const None Symbol = ""

func (s Symbol) String() string { return string(s) }

// IsZero reports whether s is the absent symbol.
func (s Symbol) IsZero() bool { return s == None }

// IsReference reports whether s looks like a namespace reference, i.e. starts
// with an upper-case letter. References print bare; other symbols print in
// their quoted form.
func (s Symbol) IsReference() bool {
	r, _ := utf8.DecodeRuneInString(string(s))
	return unicode.IsUpper(r)
}

// IsPlainIdent reports whether s consists solely of identifier characters
// (letters, digits, underscores, and the namespace separator), so it can be
// printed without quoting.
func (s Symbol) IsPlainIdent() bool {
	if s == None {
		return false
	}
	for i, r := range string(s) {
		switch {
		case unicode.IsLetter(r) || r == '_':
		case r == '.' && i > 0:
		case unicode.IsDigit(r) && i > 0:
		default:
			return false
		}
	}
	return true
}

// Interner deduplicates identifier spellings. One interner is scoped to a
// compilation unit; the package-level Intern uses a shared default table for
// callers that don't manage their own.
type Interner struct {
	mu    sync.Mutex
	table map[string]Symbol
}

func NewInterner() *Interner {
	return &Interner{table: make(map[string]Symbol)}
}

// Intern returns the canonical Symbol for name. Subsequent calls with an
// equal name return a Symbol sharing the same backing string.
func (in *Interner) Intern(name string) Symbol {
	in.mu.Lock()
	defer in.mu.Unlock()
	if sym, ok := in.table[name]; ok {
		return sym
	}
	sym := Symbol(name)
	in.table[name] = sym
	return sym
}

// Len returns the number of distinct symbols interned so far.
func (in *Interner) Len() int {
	in.mu.Lock()
	defer in.mu.Unlock()
	return len(in.table)
}

var defaultInterner = NewInterner()

// Intern interns name in the shared default table.
func Intern(name string) Symbol {
	return defaultInterner.Intern(name)
}
