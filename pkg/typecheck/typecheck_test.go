package typecheck_test

import (
	"errors"
	"reflect"
	"strings"
	"testing"

	"github.com/leftmike/smt/pkg/env"
	"github.com/leftmike/smt/pkg/formula"
	"github.com/leftmike/smt/pkg/testutil"
	"github.com/leftmike/smt/pkg/typecheck"
	"github.com/leftmike/smt/pkg/types"
)

var (
	must = formula.Must
)

type fixture struct {
	e          *env.Env
	x, y       *formula.Node
	p, q       *formula.Node
	r, s       *formula.Node
	xs, ys, ps *formula.Symbol
	f, g       *formula.Symbol
}

func newFixture() fixture {
	e := env.New(env.Options{})
	ref := func(sym *formula.Symbol) *formula.Node {
		return must(formula.SymbolRef(sym))
	}

	fx := fixture{
		e:  e,
		xs: e.MustDeclare("x", types.Bool),
		ys: e.MustDeclare("y", types.Bool),
		ps: e.MustDeclare("p", types.Int),
		f:  e.MustDeclare("f", types.MustFunction(types.Int, types.Real)),
		g:  e.MustDeclare("g", types.MustFunction(types.Real, types.Int)),
	}
	fx.x = ref(fx.xs)
	fx.y = ref(fx.ys)
	fx.p = ref(fx.ps)
	fx.q = ref(e.MustDeclare("q", types.Int))
	fx.r = ref(e.MustDeclare("r", types.Real))
	fx.s = ref(e.MustDeclare("s", types.Real))
	return fx
}

func TestInfer(t *testing.T) {
	fx := newFixture()
	at := ref(fx.e, "At", types.Int)
	bt := ref(fx.e, "Bt", types.Int)
	vr := ref(fx.e, "Vr", types.Real)

	cases := []struct {
		n   *formula.Node
		typ types.Type
	}{
		{must(formula.And(fx.x, fx.y)), types.Bool},
		{must(formula.Or(fx.x, fx.y)), types.Bool},
		{must(formula.Not(fx.x)), types.Bool},
		{fx.x, types.Bool},
		{must(formula.Equals(fx.p, fx.q)), types.Bool},
		{must(formula.Equals(fx.x, fx.y)), types.Bool},
		{must(formula.GE(fx.p, fx.q)), types.Bool},
		{must(formula.LE(fx.p, fx.q)), types.Bool},
		{must(formula.GT(fx.p, fx.q)), types.Bool},
		{must(formula.LT(fx.p, fx.q)), types.Bool},
		{formula.Bool(true), types.Bool},
		{must(formula.Ite(fx.x, fx.y, fx.x)), types.Bool},
		{fx.r, types.Real},
		{must(formula.Real(4, 1)), types.Real},
		{must(formula.Plus(fx.r, fx.s)), types.Real},
		{must(formula.Plus(fx.r, must(formula.Real(2, 1)))), types.Real},
		{must(formula.Minus(fx.s, fx.r)), types.Real},
		{must(formula.Times(fx.r, must(formula.Real(1, 1)))), types.Real},
		{must(formula.Div(fx.r, must(formula.Real(1, 1)))), types.Real},
		{must(formula.Ite(fx.x, fx.r, fx.s)), types.Real},
		{fx.p, types.Int},
		{formula.Int(4), types.Int},
		{must(formula.Plus(fx.p, fx.q)), types.Int},
		{must(formula.Plus(fx.p, formula.Int(2))), types.Int},
		{must(formula.Minus(fx.p, fx.q)), types.Int},
		{must(formula.Times(fx.p, formula.Int(1))), types.Int},
		{must(formula.Ite(fx.x, fx.p, fx.q)), types.Int},
		{must(formula.BV(3, 4)), types.MustBV(4)},
		{
			must(formula.Iff(
				must(formula.And(
					must(formula.LT(at, must(formula.Plus(bt, formula.Int(1))))),
					must(formula.GT(at, must(formula.Minus(bt, formula.Int(1))))))),
				must(formula.Equals(at, bt)))),
			types.Bool,
		},
		{must(formula.Apply(fx.f, vr)), types.Int},
		{must(formula.Apply(fx.g, at)), types.Real},
		{must(formula.Apply(fx.f, must(formula.Apply(fx.g, at)))), types.Int},
		{
			must(formula.LE(must(formula.Plus(at, must(formula.Apply(fx.f,
				must(formula.Real(4, 1)))))), formula.Int(8))),
			types.Bool,
		},
		{
			must(formula.LE(must(formula.Plus(vr, must(formula.Apply(fx.g, formula.Int(4))))),
				must(formula.Real(8, 1)))),
			types.Bool,
		},
		{
			must(formula.ForAll([]*formula.Symbol{fx.xs},
				must(formula.Exists([]*formula.Symbol{fx.ys}, must(formula.Iff(fx.x, fx.y)))))),
			types.Bool,
		},
	}

	c := typecheck.NewChecker(fx.e)
	for _, tc := range cases {
		typ, err := c.Infer(tc.n)
		if err != nil {
			t.Errorf("Infer(%s) failed with %s", tc.n, err)
			continue
		}
		if !typ.Equal(tc.typ) {
			t.Errorf("Infer(%s) got %s want %s", tc.n, typ, tc.typ)
		}

		typ2, err := c.Infer(tc.n)
		if err != nil || !typ2.Equal(typ) {
			t.Errorf("Infer(%s) not idempotent: got %s and %s (%v)", tc.n, typ, typ2, err)
		}
		if !typ.Equal(tc.n.Type()) {
			t.Errorf("Infer(%s) got %s but constructed as %s", tc.n, typ, tc.n.Type())
		}
	}
}

func ref(e *env.Env, name string, typ types.Type) *formula.Node {
	return must(formula.SymbolRef(e.MustDeclare(name, typ)))
}

func TestInferConstructionErrors(t *testing.T) {
	fx := newFixture()
	at := ref(fx.e, "At", types.Int)
	vr := ref(fx.e, "Vr", types.Real)

	cases := []struct {
		name string
		fn   func() error
	}{
		{
			"LE(Plus(Vr, g(4.0)), 8.0)",
			func() error {
				_, err := formula.Apply(fx.g, must(formula.Real(4, 1)))
				return err
			},
		},
		{
			"LE(Plus(At, f(4)), 8)",
			func() error {
				_, err := formula.Apply(fx.f, formula.Int(4))
				return err
			},
		},
		{
			"Plus(Vr, At)",
			func() error {
				_, err := formula.Plus(vr, at)
				return err
			},
		},
		{
			"LE(At, Vr)",
			func() error {
				_, err := formula.LE(at, vr)
				return err
			},
		},
	}

	for _, c := range cases {
		err, panicked := testutil.ErrorPanicked(c.fn)
		if panicked {
			t.Errorf("%s panicked: %s", c.name, err)
			continue
		}
		var tme *formula.TypeMismatchError
		if !errors.As(err, &tme) {
			t.Errorf("%s got %v want TypeMismatchError", c.name, err)
		}
	}
}

func TestInferSymbols(t *testing.T) {
	fx := newFixture()

	other := env.New(env.Options{})
	z := ref(other, "z", types.Int)
	x := ref(other, "x", types.Int)

	_, err := typecheck.Infer(fx.e, must(formula.Plus(z, fx.p)))
	var ue *formula.UndeclaredSymbolError
	if !errors.As(err, &ue) || ue.Name.String() != "z" {
		t.Errorf("Infer(z + p) got %v want UndeclaredSymbolError", err)
	}

	_, err = typecheck.Infer(fx.e, must(formula.Plus(fx.p, x)))
	var sce *formula.SymbolConflictError
	if !errors.As(err, &sce) || sce.Name.String() != "x" {
		t.Errorf("Infer(p + x) got %v want SymbolConflictError", err)
	}

	typ, err := typecheck.Infer(nil, must(formula.Plus(z, x)))
	if err != nil {
		t.Errorf("Infer(nil, z + x) failed with %s", err)
	} else if !typ.Equal(types.Int) {
		t.Errorf("Infer(nil, z + x) got %s want INT", typ)
	}
}

func TestInferLongNames(t *testing.T) {
	e := env.New(env.Options{})
	long := strings.Repeat("v", 1500)

	v := ref(e, long, types.Bool)
	typ, err := typecheck.Infer(e, v)
	if err != nil {
		t.Errorf("Infer(%d byte symbol) failed with %s", len(long), err)
	} else if !typ.Equal(types.Bool) {
		t.Errorf("Infer(%d byte symbol) got %s want BOOL", len(long), typ)
	}

	a := e.MustDeclare(long+"1", types.Int)
	b := e.MustDeclare(long+"2", types.Real)
	if a.Name() == b.Name() {
		t.Errorf("long names sharing a prefix got the same Name")
	}
	if e.Len() != 3 {
		t.Errorf("Len() got %d want 3", e.Len())
	}

	n := must(formula.Exists([]*formula.Symbol{a},
		must(formula.ForAll([]*formula.Symbol{b},
			must(formula.GT(must(formula.SymbolRef(a)), formula.Int(0)))))))
	_, err = typecheck.Infer(e, n)
	if err != nil {
		t.Errorf("Infer(nested long binders) failed with %s", err)
	}
}

func TestInferPath(t *testing.T) {
	fx := newFixture()
	n := must(formula.And(fx.x, must(formula.Or(fx.y, must(formula.Not(fx.x))))))

	// Replace the argument of NOT with an integer.
	not := n.Arg(1).Arg(1)
	formula.UnsafeSetArg(not, 0, fx.p)

	_, err := typecheck.Infer(fx.e, n)
	var we *typecheck.WalkError
	if !errors.As(err, &we) {
		t.Fatalf("Infer(%s) got %v want WalkError", n, err)
	}
	if !reflect.DeepEqual(we.Path, []int{1, 1}) {
		t.Errorf("Infer(%s) path got %v want [1 1]", n, we.Path)
	}
	if we.Node != not {
		t.Errorf("Infer(%s) node got %s want %s", n, we.Node, not)
	}

	var tme *formula.TypeMismatchError
	if !errors.As(err, &tme) {
		t.Errorf("Infer(%s) got %v want TypeMismatchError", n, err)
	} else if tme.Kind != formula.NotKind || tme.Index != 0 || !tme.Actual.Equal(types.Int) {
		t.Errorf("Infer(%s) got %#v", n, tme)
	}

	want := "typecheck: at 1.1: formula: NOT: argument 0: expected BOOL, got INT"
	if err.Error() != want {
		t.Errorf("Infer(%s) got %s want %s", n, err, want)
	}
}

func TestInferFirstError(t *testing.T) {
	fx := newFixture()
	n := must(formula.And(fx.x, fx.y, fx.x))
	formula.UnsafeSetArg(n, 1, fx.p)
	formula.UnsafeSetArg(n, 2, fx.r)

	_, err := typecheck.Infer(fx.e, n)
	var tme *formula.TypeMismatchError
	if !errors.As(err, &tme) || tme.Index != 1 {
		t.Errorf("Infer(%s) got %v want mismatch at argument 1", n, err)
	}
}

func TestInferArityChanged(t *testing.T) {
	fx := newFixture()
	n := must(formula.Not(fx.x))
	formula.UnsafeRebuild(n, []*formula.Node{fx.x, fx.y})

	_, err := typecheck.Infer(fx.e, n)
	var ice *formula.InternalConsistencyError
	if !errors.As(err, &ice) {
		t.Errorf("Infer(%s) got %v want InternalConsistencyError", n, err)
	}

	formula.UnsafeRebuild(n, []*formula.Node{nil})
	_, err = typecheck.Infer(fx.e, n)
	if !errors.As(err, &ice) {
		t.Errorf("Infer(NOT(nil)) got %v want InternalConsistencyError", err)
	}

	_, err = typecheck.Infer(fx.e, nil)
	if !errors.As(err, &ice) {
		t.Errorf("Infer(nil) got %v want InternalConsistencyError", err)
	}
}

func TestInferQuantifiers(t *testing.T) {
	fx := newFixture()
	body := must(formula.Iff(fx.x, fx.y))
	inner := must(formula.Exists([]*formula.Symbol{fx.xs}, body))

	// x is bound twice on the same path.
	n := must(formula.ForAll([]*formula.Symbol{fx.xs}, inner))
	_, err := typecheck.Infer(fx.e, n)
	var be *formula.BindingError
	if !errors.As(err, &be) {
		t.Errorf("Infer(%s) got %v want BindingError", n, err)
	} else if !be.Outer || be.Name.String() != "x" {
		t.Errorf("Infer(%s) got %#v", n, be)
	}

	// x is bound on two independent paths.
	n = must(formula.And(inner, must(formula.ForAll([]*formula.Symbol{fx.xs}, body))))
	if _, err := typecheck.Infer(fx.e, n); err != nil {
		t.Errorf("Infer(%s) failed with %s", n, err)
	}

	// The same quantified subtree is shared under two different binders.
	n = must(formula.And(
		must(formula.ForAll([]*formula.Symbol{fx.ys}, inner)),
		must(formula.ForAll([]*formula.Symbol{fx.xs}, must(formula.Not(inner))))))
	_, err = typecheck.Infer(fx.e, n)
	if !errors.As(err, &be) {
		t.Errorf("Infer(%s) got %v want BindingError", n, err)
	}

	// Payload returns a copy of the bound variables.
	q := must(formula.Exists([]*formula.Symbol{fx.xs}, body))
	vars := q.Payload().([]*formula.Symbol)
	vars[0] = fx.ys
	if q.BoundVars()[0] != fx.xs {
		t.Errorf("Payload() shares the bound variables")
	}
}

func TestWalkErrorNoPath(t *testing.T) {
	fx := newFixture()
	n := must(formula.And(fx.x, fx.y))
	formula.UnsafeSetArg(n, 0, fx.p)

	_, err := typecheck.Infer(fx.e, n)
	var we *typecheck.WalkError
	if !errors.As(err, &we) {
		t.Fatalf("Infer(%s) got %v want WalkError", n, err)
	}
	if len(we.Path) != 0 || we.Node != n {
		t.Errorf("Infer(%s) got path %v node %s", n, we.Path, we.Node)
	}
}

func TestInferExamples(t *testing.T) {
	e := env.New(env.Options{})
	c := typecheck.NewChecker(e)
	for _, ex := range testutil.Examples(e) {
		typ, err := c.Infer(ex.Expr)
		if err != nil {
			t.Errorf("Infer(%s) failed with %s", ex.Expr, err)
		} else if !typ.IsBool() {
			t.Errorf("Infer(%s) got %s want BOOL", ex.Expr, typ)
		}
	}
}
