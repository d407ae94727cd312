package formula

import (
	"fmt"

	"github.com/leftmike/smt/pkg/types"
)

// CheckArity checks that n has the number of arguments its kind requires and that none of
// them are nil. For FunctionApplication the arity is the number of parameters of the
// applied function.
func CheckArity(n *Node) error {
	if !n.kind.Valid() {
		return &InternalConsistencyError{
			Kind:   n.kind,
			Reason: "unknown kind",
		}
	}

	min, max := Arity(n.kind)
	if n.kind == FunctionApplication {
		fn, ok := n.payload.(*Symbol)
		if !ok || fn == nil || !fn.Type().IsFunction() {
			// Reported by TypeOf.
			min, max = len(n.args), len(n.args)
		} else {
			min = fn.Type().NumParams()
			max = min
		}
	}

	if len(n.args) < min || (max >= 0 && len(n.args) > max) {
		return &ArityError{
			Kind:  n.kind,
			Got:   len(n.args),
			Min:   min,
			Max:   max,
			Index: -1,
		}
	}

	for idx, arg := range n.args {
		if arg == nil {
			return &ArityError{
				Kind:  n.kind,
				Got:   len(n.args),
				Min:   min,
				Max:   max,
				Index: idx,
			}
		}
	}
	return nil
}

func badPayload(n *Node) error {
	return &InternalConsistencyError{
		Kind:   n.kind,
		Reason: fmt.Sprintf("unexpected payload %T", n.payload),
	}
}

// TypeOf applies the typing rule for the kind of n to the already known types of its
// arguments and returns the type of n. The arity of n must already have been checked.
func TypeOf(n *Node, ts []types.Type) (types.Type, error) {
	if len(ts) != len(n.args) {
		return types.Type{}, &InternalConsistencyError{
			Kind:   n.kind,
			Reason: fmt.Sprintf("got %d argument types for %d arguments", len(ts), len(n.args)),
		}
	}

	switch n.kind {
	case SymbolKind:
		sym, ok := n.payload.(*Symbol)
		if !ok || sym == nil || !sym.Type().Valid() {
			return types.Type{}, badPayload(n)
		}
		return sym.Type(), nil
	case BoolConst, IntConst, RealConst, BVConst:
		return constantType(n)
	case AndKind, OrKind, NotKind, IffKind, ImpliesKind:
		if err := assertBoolean(n.kind, ts, 0); err != nil {
			return types.Type{}, err
		}
		return types.Bool, nil
	case EqualsKind:
		if err := assertNoFunction(n.kind, ts, 0); err != nil {
			return types.Type{}, err
		} else if err := assertSameType(n.kind, ts, 0); err != nil {
			return types.Type{}, err
		}
		return types.Bool, nil
	case LEKind, LTKind, GEKind, GTKind:
		if err := arithmeticArgs(n.kind, ts); err != nil {
			return types.Type{}, err
		}
		return types.Bool, nil
	case PlusKind, MinusKind, TimesKind, DivKind:
		if err := arithmeticArgs(n.kind, ts); err != nil {
			return types.Type{}, err
		}
		return ts[0], nil
	case IteKind:
		if !ts[0].IsBool() {
			return types.Type{}, &TypeMismatchError{
				Kind:     n.kind,
				Index:    0,
				Expected: types.Bool.String(),
				Actual:   ts[0],
			}
		}
		if err := assertNoFunction(n.kind, ts[1:], 1); err != nil {
			return types.Type{}, err
		} else if err := assertSameType(n.kind, ts[1:], 1); err != nil {
			return types.Type{}, err
		}
		return ts[1], nil
	case ForallKind, ExistsKind:
		vars, ok := n.payload.([]*Symbol)
		if !ok || len(vars) == 0 {
			return types.Type{}, badPayload(n)
		}
		for _, v := range vars {
			if v == nil {
				return types.Type{}, badPayload(n)
			}
		}
		if err := assertBoolean(n.kind, ts, 0); err != nil {
			return types.Type{}, err
		}
		return types.Bool, nil
	case FunctionApplication:
		return applicationType(n, ts)
	}

	return types.Type{}, &InternalConsistencyError{
		Kind:   n.kind,
		Reason: "unknown kind",
	}
}

func arithmeticArgs(kind Kind, ts []types.Type) error {
	if err := assertNoBoolean(kind, ts, 0); err != nil {
		return err
	} else if err := assertNoFunction(kind, ts, 0); err != nil {
		return err
	}
	return assertSameType(kind, ts, 0)
}

func constantType(n *Node) (types.Type, error) {
	var ok bool
	switch n.kind {
	case BoolConst:
		_, ok = n.payload.(types.BoolValue)
	case IntConst:
		_, ok = n.payload.(types.IntValue)
	case RealConst:
		_, ok = n.payload.(types.RealValue)
	case BVConst:
		_, ok = n.payload.(types.BVValue)
	}
	if !ok {
		return types.Type{}, badPayload(n)
	}
	return n.payload.(types.Value).Type(), nil
}

func applicationType(n *Node, ts []types.Type) (types.Type, error) {
	fn, ok := n.payload.(*Symbol)
	if !ok || fn == nil {
		return types.Type{}, badPayload(n)
	}

	ft := fn.Type()
	if !ft.IsFunction() {
		return types.Type{}, &TypeMismatchError{
			Kind:     n.kind,
			Index:    -1,
			Expected: "function type for " + fn.String(),
			Actual:   ft,
		}
	}
	if ft.NumParams() != len(ts) {
		return types.Type{}, &ArityError{
			Kind:  n.kind,
			Got:   len(ts),
			Min:   ft.NumParams(),
			Max:   ft.NumParams(),
			Index: -1,
		}
	}

	for idx, t := range ts {
		if !t.Equal(ft.ParamType(idx)) {
			return types.Type{}, &TypeMismatchError{
				Kind:     n.kind,
				Index:    idx,
				Expected: ft.ParamType(idx).String(),
				Actual:   t,
			}
		}
	}
	return ft.ReturnType(), nil
}
