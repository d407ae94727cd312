package formula

import (
	"math/big"

	"github.com/leftmike/smt/pkg/types"
)

func newNode(kind Kind, payload interface{}, args []*Node) (*Node, error) {
	n := &Node{
		kind:    kind,
		payload: payload,
		args:    args,
	}
	if err := CheckArity(n); err != nil {
		return nil, err
	}

	typ, err := TypeOf(n, ArgTypes(args))
	if err != nil {
		return nil, err
	}
	n.typ = typ
	return n, nil
}

func newConstant(kind Kind, val types.Value) *Node {
	return &Node{
		kind:    kind,
		payload: val,
		typ:     val.Type(),
	}
}

// Must panics if err is not nil; otherwise it returns n.
func Must(n *Node, err error) *Node {
	if err != nil {
		panic(err.Error())
	}
	return n
}

func SymbolRef(sym *Symbol) (*Node, error) {
	if sym == nil || !sym.Type().Valid() {
		return nil, &InternalConsistencyError{
			Kind:   SymbolKind,
			Reason: "missing or invalid symbol",
		}
	}
	return newNode(SymbolKind, sym, nil)
}

func Bool(b bool) *Node {
	return newConstant(BoolConst, types.BoolValue(b))
}

func Int(i int64) *Node {
	return newConstant(IntConst, types.NewIntValue(i))
}

func IntBig(i *big.Int) *Node {
	return newConstant(IntConst, types.NewBigIntValue(i))
}

func Real(num, den int64) (*Node, error) {
	r, err := types.NewRealValue(num, den)
	if err != nil {
		return nil, err
	}
	return newConstant(RealConst, r), nil
}

func RealRat(r *big.Rat) *Node {
	return newConstant(RealConst, types.NewRatValue(r))
}

func BV(v uint64, width uint32) (*Node, error) {
	bv, err := types.NewBVValue(v, width)
	if err != nil {
		return nil, err
	}
	return newConstant(BVConst, bv), nil
}

func BVBig(v *big.Int, width uint32) (*Node, error) {
	bv, err := types.NewBigBVValue(v, width)
	if err != nil {
		return nil, err
	}
	return newConstant(BVConst, bv), nil
}

func And(args ...*Node) (*Node, error) {
	return newNode(AndKind, nil, append([]*Node(nil), args...))
}

func Or(args ...*Node) (*Node, error) {
	return newNode(OrKind, nil, append([]*Node(nil), args...))
}

func Not(arg *Node) (*Node, error) {
	return newNode(NotKind, nil, []*Node{arg})
}

func Iff(left, right *Node) (*Node, error) {
	return newNode(IffKind, nil, []*Node{left, right})
}

func Implies(left, right *Node) (*Node, error) {
	return newNode(ImpliesKind, nil, []*Node{left, right})
}

// Equals is legal between two boolean operands; it stays a distinct kind from Iff.
func Equals(left, right *Node) (*Node, error) {
	return newNode(EqualsKind, nil, []*Node{left, right})
}

func LE(left, right *Node) (*Node, error) {
	return newNode(LEKind, nil, []*Node{left, right})
}

func LT(left, right *Node) (*Node, error) {
	return newNode(LTKind, nil, []*Node{left, right})
}

func GE(left, right *Node) (*Node, error) {
	return newNode(GEKind, nil, []*Node{left, right})
}

func GT(left, right *Node) (*Node, error) {
	return newNode(GTKind, nil, []*Node{left, right})
}

func Plus(args ...*Node) (*Node, error) {
	return newNode(PlusKind, nil, append([]*Node(nil), args...))
}

func Minus(left, right *Node) (*Node, error) {
	return newNode(MinusKind, nil, []*Node{left, right})
}

func Times(args ...*Node) (*Node, error) {
	return newNode(TimesKind, nil, append([]*Node(nil), args...))
}

func Div(left, right *Node) (*Node, error) {
	return newNode(DivKind, nil, []*Node{left, right})
}

func Ite(cond, then, els *Node) (*Node, error) {
	return newNode(IteKind, nil, []*Node{cond, then, els})
}

// ForAll quantifies body over vars. With no variables, body is returned unchanged.
func ForAll(vars []*Symbol, body *Node) (*Node, error) {
	return quantifier(ForallKind, vars, body)
}

// Exists quantifies body over vars. With no variables, body is returned unchanged.
func Exists(vars []*Symbol, body *Node) (*Node, error) {
	return quantifier(ExistsKind, vars, body)
}

func quantifier(kind Kind, vars []*Symbol, body *Node) (*Node, error) {
	if len(vars) == 0 && body != nil {
		return body, nil
	}

	seen := map[types.Name]struct{}{}
	for idx, v := range vars {
		if v == nil {
			return nil, &InternalConsistencyError{
				Kind:   kind,
				Reason: "nil bound variable",
			}
		}
		if _, ok := seen[v.Name()]; ok {
			return nil, &BindingError{
				Kind:  kind,
				Index: idx,
				Name:  v.Name(),
			}
		}
		seen[v.Name()] = struct{}{}
	}

	return newNode(kind, append([]*Symbol(nil), vars...), []*Node{body})
}

// Apply applies the function symbol fn to args.
func Apply(fn *Symbol, args ...*Node) (*Node, error) {
	if fn == nil {
		return nil, &InternalConsistencyError{
			Kind:   FunctionApplication,
			Reason: "missing function symbol",
		}
	}
	return newNode(FunctionApplication, fn, append([]*Node(nil), args...))
}

// New builds an operator node of kind from args. Kinds that carry a payload (symbols,
// constants, quantifiers, and function applications) must be built with their own
// constructors.
func New(kind Kind, args ...*Node) (*Node, error) {
	if !kind.Valid() || kind == SymbolKind || kind.IsConstant() || kind.IsQuantifier() ||
		kind == FunctionApplication {

		return nil, &InternalConsistencyError{
			Kind:   kind,
			Reason: "kind can not be built by New",
		}
	}
	return newNode(kind, nil, append([]*Node(nil), args...))
}
