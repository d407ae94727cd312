package logic

import (
	"github.com/leftmike/smt/pkg/formula"
	"github.com/leftmike/smt/pkg/typecheck"
	"github.com/leftmike/smt/pkg/types"
)

// Theories returns the theories used by the tree rooted at n. Like the quantifier oracle,
// it is a structural query and does not require the tree to type check. Only INT and REAL
// multiplication and division count as non-linear; bit-vector arithmetic never does.
func Theories(n *formula.Node) Theory {
	t := Theory{Bool: true, Linear: true}
	seen := map[*formula.Node]struct{}{}

	var visit func(n *formula.Node)
	visit = func(n *formula.Node) {
		if n == nil {
			return
		}
		if _, ok := seen[n]; ok {
			return
		}
		seen[n] = struct{}{}

		switch n.Kind() {
		case formula.SymbolKind, formula.FunctionApplication:
			if sym := n.Symbol(); sym != nil {
				t.addType(sym.Type())
			}
		case formula.IntConst, formula.RealConst, formula.BVConst, formula.BoolConst:
			if v := n.Value(); v != nil {
				t.addType(v.Type())
			}
		case formula.ForallKind, formula.ExistsKind:
			for _, v := range n.BoundVars() {
				if v != nil {
					t.addType(v.Type())
				}
			}
		case formula.TimesKind:
			if n.Type().IsNumeric() && nonConstantArgs(n) > 1 {
				t.Linear = false
			}
		case formula.DivKind:
			if n.Type().IsNumeric() && n.NumArgs() == 2 && !isNumericConstant(n.Arg(1)) {
				t.Linear = false
			}
		}

		for idx := 0; idx < n.NumArgs(); idx += 1 {
			visit(n.Arg(idx))
		}
	}

	visit(n)
	return t
}

func (t *Theory) addType(typ types.Type) {
	switch typ.Kind {
	case types.IntType:
		t.Int = true
	case types.RealType:
		t.Real = true
	case types.BVType:
		t.BV = true
	case types.FunctionType:
		t.UF = true
		t.addType(typ.ReturnType())
		for _, p := range typ.ParamTypes() {
			t.addType(p)
		}
	}
}

func isNumericConstant(n *formula.Node) bool {
	return n != nil && (n.Kind() == formula.IntConst || n.Kind() == formula.RealConst)
}

func nonConstantArgs(n *formula.Node) int {
	cnt := 0
	for idx := 0; idx < n.NumArgs(); idx += 1 {
		if !isNumericConstant(n.Arg(idx)) {
			cnt += 1
		}
	}
	return cnt
}

// Target returns the logic describing exactly what the formula n uses.
func Target(n *formula.Node) Logic {
	return Logic{
		QuantifierFree: typecheck.IsQuantifierFree(n),
		Theory:         Theories(n),
	}
}

// Classify returns the smallest logic in r that covers the formula n.
func (r *Registry) Classify(n *formula.Node) (Logic, bool) {
	return r.Smallest(Target(n))
}
