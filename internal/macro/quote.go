package macro

import (
	"github.com/funvibe/funex/internal/ast"
)

// Tup is the host-side tuple value accepted by Escape. A two-element Tup
// escapes to the pair shape, any other length to an explicit tuple node.
type Tup []any

// Escape lifts a runtime value into syntax: evaluating the returned node
// would rebuild the value. An existing node passes through untouched, so
// already-built syntax can sit inside escaped containers. Escape never
// fails; a value with no syntax shape of its own is kept verbatim as a
// literal.
func Escape(value any) ast.Node {
	switch v := value.(type) {
	case nil:
		return &ast.Literal{Value: nil}
	case ast.Node:
		return v
	case Tup:
		if len(v) == 2 {
			return &ast.Pair{Left: Escape(v[0]), Right: Escape(v[1])}
		}
		return &ast.Tuple{Elements: escapeAll(v)}
	case []any:
		return &ast.List{Elements: escapeAll(v)}
	case []ast.Node:
		elems := make([]ast.Node, len(v))
		copy(elems, v)
		return &ast.List{Elements: elems}
	default:
		return &ast.Literal{Value: value}
	}
}

func escapeAll(values []any) []ast.Node {
	nodes := make([]ast.Node, len(values))
	for i, v := range values {
		nodes[i] = Escape(v)
	}
	return nodes
}
