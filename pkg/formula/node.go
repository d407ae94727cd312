package formula

import (
	"strings"

	"github.com/leftmike/smt/pkg/types"
)

// Symbol is a name bound to a fixed declared type. Symbols are created by a type
// environment; two symbols are the same symbol if their names and types are equal.
type Symbol struct {
	name types.Name
	typ  types.Type
}

func NewSymbol(name types.Name, typ types.Type) *Symbol {
	return &Symbol{
		name: name,
		typ:  typ,
	}
}

func (sym *Symbol) Name() types.Name {
	return sym.name
}

func (sym *Symbol) Type() types.Type {
	return sym.typ
}

func (sym *Symbol) String() string {
	return sym.name.String()
}

// Node is an immutable expression tree node. Nodes are only built by the constructors in
// this package; the payload depends on the kind:
//   - SymbolKind: *Symbol
//   - constants: types.Value
//   - ForallKind, ExistsKind: []*Symbol, the bound variables
//   - FunctionApplication: *Symbol, the applied function
type Node struct {
	kind    Kind
	args    []*Node
	payload interface{}
	typ     types.Type
}

func (n *Node) Kind() Kind {
	return n.kind
}

func (n *Node) NumArgs() int {
	return len(n.args)
}

func (n *Node) Arg(i int) *Node {
	return n.args[i]
}

func (n *Node) Args() []*Node {
	return append([]*Node(nil), n.args...)
}

// Type is the type computed when the node was constructed.
func (n *Node) Type() types.Type {
	return n.typ
}

func (n *Node) Payload() interface{} {
	if vars, ok := n.payload.([]*Symbol); ok {
		return append([]*Symbol(nil), vars...)
	}
	return n.payload
}

// Symbol returns the symbol of a SymbolKind node, or the applied function of a
// FunctionApplication node.
func (n *Node) Symbol() *Symbol {
	if n.kind != SymbolKind && n.kind != FunctionApplication {
		return nil
	}
	sym, _ := n.payload.(*Symbol)
	return sym
}

func (n *Node) Value() types.Value {
	if !n.kind.IsConstant() {
		return nil
	}
	v, _ := n.payload.(types.Value)
	return v
}

func (n *Node) BoundVars() []*Symbol {
	if !n.kind.IsQuantifier() {
		return nil
	}
	vars, _ := n.payload.([]*Symbol)
	return append([]*Symbol(nil), vars...)
}

func (n *Node) String() string {
	var buf strings.Builder
	n.format(&buf)
	return buf.String()
}

func (n *Node) format(buf *strings.Builder) {
	if n == nil {
		buf.WriteString("<nil>")
		return
	}

	switch n.kind {
	case SymbolKind:
		if sym := n.Symbol(); sym != nil {
			buf.WriteString(sym.String())
			return
		}
		buf.WriteString(n.kind.String())
	case BoolConst, IntConst, RealConst, BVConst:
		buf.WriteString(types.FormatValue(n.Value()))
		return
	case ForallKind, ExistsKind:
		buf.WriteString(n.kind.String())
		buf.WriteRune('[')
		for idx, v := range n.BoundVars() {
			if idx > 0 {
				buf.WriteString(", ")
			}
			buf.WriteString(v.String())
		}
		buf.WriteRune(']')
	case FunctionApplication:
		if sym := n.Symbol(); sym != nil {
			buf.WriteString(sym.String())
		} else {
			buf.WriteString(n.kind.String())
		}
	default:
		if n.kind.Valid() {
			buf.WriteString(n.kind.String())
		} else {
			buf.WriteString("UNKNOWN")
		}
	}

	buf.WriteRune('(')
	for idx, arg := range n.args {
		if idx > 0 {
			buf.WriteString(", ")
		}
		arg.format(buf)
	}
	buf.WriteRune(')')
}
