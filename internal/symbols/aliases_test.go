package symbols

import "testing"

func TestBindShadowsOlderBinding(t *testing.T) {
	var table AliasTable
	table = table.Bind("My", "Funex.MyHelpers")
	table = table.Bind("My", "Funex.Fresh")

	got, ok := table.Lookup("My")
	if !ok {
		t.Fatalf("Lookup(My) found nothing")
	}
	if got != "Funex.Fresh" {
		t.Errorf("Lookup(My) = %s, want Funex.Fresh", got)
	}
}

func TestBindLeavesReceiverUntouched(t *testing.T) {
	base := AliasTable{}.Bind("A", "Funex.A1")
	_ = base.Bind("B", "Funex.B1")
	if _, ok := base.Lookup("B"); ok {
		t.Errorf("binding B mutated the base table")
	}
}

func TestLookupAlias(t *testing.T) {
	table := AliasTable{}.Bind("My", "Funex.MyHelpers")

	tests := []struct {
		name Symbol
		want Symbol
	}{
		{"My", "Funex.MyHelpers"},      // bound
		{"Other", "Funex.Other"},       // unbound, rooted
		{"Funex.Other", "Funex.Other"}, // already absolute, unchanged
		{"Funex", "Funex"},             // the root marker itself
	}
	for _, tt := range tests {
		if got := LookupAlias(table, tt.name); got != tt.want {
			t.Errorf("LookupAlias(%s) = %s, want %s", tt.name, got, tt.want)
		}
	}
}

func TestLookupAliasIdempotent(t *testing.T) {
	var table AliasTable
	once := LookupAlias(table, "Mod")
	twice := LookupAlias(table, once)
	if once != twice {
		t.Errorf("second resolution changed the symbol: %s -> %s", once, twice)
	}
}

func TestRooted(t *testing.T) {
	tests := []struct {
		in   Symbol
		want Symbol
	}{
		{"X", "Funex.X"},
		{"Funex.X", "Funex.X"},
		{"Funex", "Funex"},
		{None, None},
	}
	for _, tt := range tests {
		if got := Rooted(tt.in); got != tt.want {
			t.Errorf("Rooted(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestStripRoot(t *testing.T) {
	tests := []struct {
		in   Symbol
		want Symbol
	}{
		{"Funex.X", "X"},
		{"Funex.A.B", "A.B"},
		{"X", "X"},
		{"Funex", None},
	}
	for _, tt := range tests {
		if got := StripRoot(tt.in); got != tt.want {
			t.Errorf("StripRoot(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestConcat(t *testing.T) {
	tests := []struct {
		name     string
		segments []Symbol
		want     Symbol
	}{
		{"plain head keeps its form", []Symbol{"MyHelpers", "Module"}, "MyHelpers.Module"},
		{"rooted head kept", []Symbol{"Funex.My", "Mod"}, "Funex.My.Mod"},
		{"root prefix dropped on later segments", []Symbol{"Funex.My", "Funex.Mod"}, "Funex.My.Mod"},
		{"root marker heads the path", []Symbol{"Funex", "Foo"}, "Funex.Foo"},
		{"single segment", []Symbol{"Funex.Only"}, "Funex.Only"},
	}
	for _, tt := range tests {
		if got := Concat(tt.segments); got != tt.want {
			t.Errorf("%s: Concat(%v) = %q, want %q", tt.name, tt.segments, got, tt.want)
		}
	}
}
