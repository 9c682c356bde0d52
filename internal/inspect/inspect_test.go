package inspect

import (
	"testing"

	"github.com/funvibe/funex/internal/symbols"
)

type fakeEnv struct{}

func (fakeEnv) Inspect() string { return "#Env<Funex.Kernel>" }

func TestValue(t *testing.T) {
	tests := []struct {
		name  string
		value any
		want  string
	}{
		{"nil", nil, "nil"},
		{"integer", 42, "42"},
		{"large integer", int64(1 << 40), "1099511627776"},
		{"float", 2.5, "2.5"},
		{"whole float", 1.0, "1"},
		{"boolean", false, "false"},
		{"string", "hi", `"hi"`},
		{"escaped string", "a\"b\nc", `"a\"b\nc"`},
		{"symbol", symbols.Symbol("ok"), ":ok"},
		{"binary", []byte{0, 255}, "<<0, 255>>"},
		{"inspectable", fakeEnv{}, "#Env<Funex.Kernel>"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Value(tt.value); got != tt.want {
				t.Errorf("Value(%v) = %q, want %q", tt.value, got, tt.want)
			}
		})
	}
}

func TestSymbol(t *testing.T) {
	tests := []struct {
		name string
		sym  symbols.Symbol
		want string
	}{
		{"plain atom", "ok", ":ok"},
		{"dotted atom", "foo.bar", ":foo.bar"},
		{"reference", "MyHelpers", "MyHelpers"},
		{"dotted reference", "MyHelpers.Module", "MyHelpers.Module"},
		{"absolute reference", "Funex.MyHelpers.Module", "MyHelpers.Module"},
		{"root marker", "Funex", "Funex"},
		{"quoted atom", "foo bar", `:"foo bar"`},
		{"absent symbol", symbols.None, `:""`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Symbol(tt.sym); got != tt.want {
				t.Errorf("Symbol(%q) = %q, want %q", tt.sym, got, tt.want)
			}
		})
	}
}

func TestBytes(t *testing.T) {
	if got := Bytes(nil); got != "<<>>" {
		t.Errorf("Bytes(nil) = %q, want %q", got, "<<>>")
	}
	if got := Bytes([]byte{1, 2, 3}); got != "<<1, 2, 3>>" {
		t.Errorf("Bytes = %q, want %q", got, "<<1, 2, 3>>")
	}
}

func TestQuote(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"", `""`},
		{`a\b`, `"a\\b"`},
		{"tab\there", `"tab\there"`},
		{"line\r\n", `"line\r\n"`},
		{"héllo", `"héllo"`},
	}

	for _, tt := range tests {
		if got := Quote(tt.in); got != tt.want {
			t.Errorf("Quote(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
