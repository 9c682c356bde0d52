package macro

import (
	"reflect"
	"testing"

	"github.com/sirkon/deepequal"

	"github.com/funvibe/funex/internal/ast"
)

func TestEscapeScalars(t *testing.T) {
	tests := []struct {
		name  string
		value any
	}{
		{"integer", 42},
		{"float", 2.5},
		{"string", "hello"},
		{"boolean", true},
		{"nil", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			node := Escape(tt.value)
			lit, ok := node.(*ast.Literal)
			if !ok {
				t.Fatalf("Escape(%v) = %T, want *ast.Literal", tt.value, node)
			}
			if lit.Value != tt.value {
				t.Errorf("escaped value = %v, want %v", lit.Value, tt.value)
			}
		})
	}
}

func TestEscapePassesNodesThrough(t *testing.T) {
	nodes := []ast.Node{
		ast.Ident("foo"),
		&ast.Var{Name: "x"},
		&ast.Call{Target: ast.Ident("sum"), Args: []ast.Node{&ast.Literal{Value: 1}}},
		&ast.Block{Statements: []ast.Node{&ast.Literal{Value: 1}}},
	}

	for _, node := range nodes {
		if got := Escape(node); got != node {
			t.Errorf("Escape(%T) built a new node, want the argument itself", node)
		}
	}
}

func TestEscapeIsIdempotent(t *testing.T) {
	values := []any{42, "hi", Tup{1, 2}, Tup{1, 2, 3}, []any{1, 2}}

	for _, value := range values {
		once := Escape(value)
		twice := Escape(once)
		if twice != once {
			t.Errorf("Escape(Escape(%v)) built a new node, want passthrough", value)
		}
	}
}

func TestEscapePairShape(t *testing.T) {
	node := Escape(Tup{"ok", 1})
	pair, ok := node.(*ast.Pair)
	if !ok {
		t.Fatalf("two-element tuple escaped to %T, want *ast.Pair", node)
	}

	left, ok := pair.Left.(*ast.Literal)
	if !ok || left.Value != "ok" {
		t.Errorf("pair left = %v, want literal \"ok\"", pair.Left)
	}
	right, ok := pair.Right.(*ast.Literal)
	if !ok || right.Value != 1 {
		t.Errorf("pair right = %v, want literal 1", pair.Right)
	}
}

func TestEscapeTupleShapes(t *testing.T) {
	tests := []struct {
		name  string
		value Tup
	}{
		{"empty", Tup{}},
		{"single", Tup{1}},
		{"triple", Tup{1, 2, 3}},
		{"quadruple", Tup{1, 2, 3, 4}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			node := Escape(tt.value)
			tuple, ok := node.(*ast.Tuple)
			if !ok {
				t.Fatalf("Escape = %T, want *ast.Tuple", node)
			}
			if len(tuple.Elements) != len(tt.value) {
				t.Fatalf("%d elements, want %d", len(tuple.Elements), len(tt.value))
			}
			for i, elem := range tuple.Elements {
				lit, ok := elem.(*ast.Literal)
				if !ok || lit.Value != tt.value[i] {
					t.Errorf("element %d = %v, want literal %v", i, elem, tt.value[i])
				}
			}
		})
	}
}

func TestEscapeNestedContainers(t *testing.T) {
	got := Escape(Tup{"pipeline", []any{1, 2}, Tup{"meta", 8}})

	var want ast.Node = &ast.Tuple{Elements: []ast.Node{
		&ast.Literal{Value: "pipeline"},
		&ast.List{Elements: []ast.Node{&ast.Literal{Value: 1}, &ast.Literal{Value: 2}}},
		&ast.Pair{Left: &ast.Literal{Value: "meta"}, Right: &ast.Literal{Value: 8}},
	}}

	if !reflect.DeepEqual(want, got) {
		deepequal.SideBySide(t, "node", want, got)
	}
}

func TestEscapeNodeSliceCopiesBacking(t *testing.T) {
	elems := []ast.Node{ast.Ident("a"), ast.Ident("b")}
	node := Escape(elems)
	list, ok := node.(*ast.List)
	if !ok {
		t.Fatalf("node slice escaped to %T, want *ast.List", node)
	}
	if len(list.Elements) != 2 || list.Elements[0] != elems[0] || list.Elements[1] != elems[1] {
		t.Fatalf("escaped list does not hold the original elements")
	}

	elems[0] = ast.Ident("c")
	if list.Elements[0] == elems[0] {
		t.Errorf("escaped list aliases the caller's slice")
	}
}

func TestEscapedSyntaxInsideContainers(t *testing.T) {
	call := &ast.Call{Target: ast.Ident("sum"), Args: []ast.Node{&ast.Literal{Value: 1}}}
	node := Escape([]any{call, 2})

	list, ok := node.(*ast.List)
	if !ok {
		t.Fatalf("Escape = %T, want *ast.List", node)
	}
	if list.Elements[0] != call {
		t.Errorf("pre-built syntax was rebuilt instead of passed through")
	}
}
