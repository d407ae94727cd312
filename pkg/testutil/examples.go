package testutil

import (
	"github.com/leftmike/smt/pkg/env"
	"github.com/leftmike/smt/pkg/formula"
	"github.com/leftmike/smt/pkg/types"
)

type Example struct {
	Expr           *formula.Node
	QuantifierFree bool
	Logic          string // smallest standard logic containing Expr
}

// Examples returns a set of well typed formulas declared in e, covering every kind and
// the standard logics.
func Examples(e *env.Env) []Example {
	must := formula.Must
	ref := func(sym *formula.Symbol) *formula.Node {
		return must(formula.SymbolRef(sym))
	}
	bv8 := types.MustBV(8)

	xs := e.MustDeclare("x", types.Bool)
	ys := e.MustDeclare("y", types.Bool)
	ps := e.MustDeclare("p", types.Int)
	qs := e.MustDeclare("q", types.Int)
	rs := e.MustDeclare("r", types.Real)
	ss := e.MustDeclare("s", types.Real)
	as := e.MustDeclare("a", bv8)
	bs := e.MustDeclare("b", bv8)
	f := e.MustDeclare("f", types.MustFunction(types.Int, types.Real))
	g := e.MustDeclare("g", types.MustFunction(types.Real, types.Int))
	h := e.MustDeclare("h", types.MustFunction(bv8, bv8))
	k := e.MustDeclare("k", types.MustFunction(types.Int, types.Int))

	x, y := ref(xs), ref(ys)
	p, q := ref(ps), ref(qs)
	r, s := ref(rs), ref(ss)
	a, b := ref(as), ref(bs)

	return []Example{
		{must(formula.And(x, must(formula.Not(y)))), true, "QF_BOOL"},
		{must(formula.Implies(x, y)), true, "QF_BOOL"},
		{must(formula.Iff(x, must(formula.Equals(y, x)))), true, "QF_BOOL"},
		{must(formula.Or(x, y, formula.Bool(false))), true, "QF_BOOL"},
		{must(formula.Exists([]*formula.Symbol{xs}, must(formula.And(x, y)))), false, "BOOL"},
		{
			must(formula.ForAll([]*formula.Symbol{xs},
				must(formula.Exists([]*formula.Symbol{ys}, must(formula.Iff(x, y)))))),
			false,
			"BOOL",
		},
		{must(formula.LE(must(formula.Plus(p, q)), formula.Int(5))), true, "QF_LIA"},
		{must(formula.LT(must(formula.Times(p, formula.Int(2))), q)), true, "QF_LIA"},
		{must(formula.GT(must(formula.Times(p, q)), formula.Int(0))), true, "QF_NIA"},
		{
			must(formula.Equals(must(formula.Div(r, must(formula.Real(1, 2)))), s)),
			true,
			"QF_LRA",
		},
		{must(formula.GE(must(formula.Div(r, s)), must(formula.Real(0, 1)))), true, "QF_NRA"},
		{
			must(formula.ForAll([]*formula.Symbol{ps},
				must(formula.GE(must(formula.Plus(p, q)), must(formula.Minus(q, q)))))),
			false,
			"LIA",
		},
		{must(formula.Exists([]*formula.Symbol{rs}, must(formula.LT(r, s)))), false, "LRA"},
		{
			must(formula.Equals(must(formula.Plus(a, b)), must(formula.BV(3, 8)))),
			true,
			"QF_BV",
		},
		{
			must(formula.Equals(must(formula.Times(a, must(formula.BV(2, 8)))), b)),
			true,
			"QF_BV",
		},
		{must(formula.Equals(must(formula.Times(a, b)), b)), true, "QF_BV"},
		{must(formula.LE(must(formula.Div(a, b)), a)), true, "QF_BV"},
		{
			must(formula.ForAll([]*formula.Symbol{as},
				must(formula.Equals(must(formula.Plus(a, b)), b)))),
			false,
			"BV",
		},
		{must(formula.Equals(must(formula.Apply(f, r)), p)), true, "QF_UFLIRA"},
		{must(formula.Equals(must(formula.Apply(h, a)), b)), true, "QF_UFBV"},
		{must(formula.Equals(must(formula.Apply(k, p)), q)), true, "QF_UFLIA"},
		{
			must(formula.LE(must(formula.Apply(g, must(formula.Apply(f, r)))), s)),
			true,
			"QF_UFLIRA",
		},
		{
			must(formula.GT(must(formula.Ite(x, must(formula.Apply(f, r)), p)), q)),
			true,
			"QF_UFLIRA",
		},
		{
			must(formula.Exists([]*formula.Symbol{ps},
				must(formula.Equals(must(formula.Apply(f, r)), p)))),
			false,
			"UFLIRA",
		},
		{
			must(formula.Equals(must(formula.Times(must(formula.Apply(f, r)), p)), q)),
			true,
			"QF_UFNIRA",
		},
		{
			must(formula.And(must(formula.Equals(p, formula.Int(1))),
				must(formula.Equals(a, must(formula.BV(1, 8)))))),
			true,
			"ALL",
		},
	}
}
