package formula

import (
	"github.com/leftmike/smt/pkg/types"
)

// ArgTypes returns the construction time types of args.
func ArgTypes(args []*Node) []types.Type {
	ts := make([]types.Type, len(args))
	for idx, arg := range args {
		ts[idx] = arg.Type()
	}
	return ts
}

func AssertNoBooleanInArgs(kind Kind, ts []types.Type) error {
	return assertNoBoolean(kind, ts, 0)
}

func assertNoBoolean(kind Kind, ts []types.Type, base int) error {
	for idx, t := range ts {
		if t.IsBool() {
			return &TypeMismatchError{
				Kind:     kind,
				Index:    base + idx,
				Expected: "non-boolean",
				Actual:   t,
			}
		}
	}
	return nil
}

func AssertBooleanArgs(kind Kind, ts []types.Type) error {
	return assertBoolean(kind, ts, 0)
}

func assertBoolean(kind Kind, ts []types.Type, base int) error {
	for idx, t := range ts {
		if !t.IsBool() {
			return &TypeMismatchError{
				Kind:     kind,
				Index:    base + idx,
				Expected: types.Bool.String(),
				Actual:   t,
			}
		}
	}
	return nil
}

// AssertSameTypeArgs fails at the first argument whose type differs from the type of the
// first argument.
func AssertSameTypeArgs(kind Kind, ts []types.Type) error {
	return assertSameType(kind, ts, 0)
}

func assertSameType(kind Kind, ts []types.Type, base int) error {
	for idx := 1; idx < len(ts); idx += 1 {
		if !ts[idx].Equal(ts[0]) {
			return &TypeMismatchError{
				Kind:     kind,
				Index:    base + idx,
				Expected: ts[0].String(),
				Actual:   ts[idx],
			}
		}
	}
	return nil
}

func AssertArgsTypeIn(kind Kind, ts []types.Type, allowed []types.Type) error {
	for idx, t := range ts {
		if !typeIn(t, allowed) {
			return &TypeMismatchError{
				Kind:     kind,
				Index:    idx,
				Expected: "one of " + types.FormatTypes(allowed),
				Actual:   t,
			}
		}
	}
	return nil
}

func typeIn(t types.Type, allowed []types.Type) bool {
	for _, a := range allowed {
		if t.Equal(a) {
			return true
		}
	}
	return false
}

// assertNoFunction rejects function typed operands; functions may only be applied.
func assertNoFunction(kind Kind, ts []types.Type, base int) error {
	for idx, t := range ts {
		if t.IsFunction() {
			return &TypeMismatchError{
				Kind:     kind,
				Index:    base + idx,
				Expected: "non-function",
				Actual:   t,
			}
		}
	}
	return nil
}

// TypeToType returns to if every type in ts is equal to from, otherwise it returns false.
func TypeToType(ts []types.Type, from, to types.Type) (types.Type, bool) {
	for _, t := range ts {
		if !t.Valid() || !t.Equal(from) {
			return types.Type{}, false
		}
	}
	return to, true
}
