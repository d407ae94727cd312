package typecheck

import (
	"github.com/leftmike/smt/pkg/env"
	"github.com/leftmike/smt/pkg/formula"
)

// Validate re-checks the whole tree rooted at n and that the type of n still agrees with the
// type it was constructed with. Any failure is returned as a
// *formula.StructuralInvariantError.
func Validate(e *env.Env, n *formula.Node) error {
	if n == nil {
		return &formula.StructuralInvariantError{
			Err: &formula.InternalConsistencyError{Reason: "nil node"},
		}
	}

	t, err := Infer(e, n)
	if err != nil {
		return &formula.StructuralInvariantError{
			Kind: n.Kind(),
			Err:  err,
		}
	}
	if !t.Equal(n.Type()) {
		return &formula.StructuralInvariantError{
			Kind: n.Kind(),
			Err: &formula.TypeMismatchError{
				Kind:     n.Kind(),
				Index:    -1,
				Expected: n.Type().String(),
				Actual:   t,
			},
		}
	}
	return nil
}

// Enforce returns op wrapped so that the node it returns is validated before it is handed
// back; a node that fails validation is never returned.
func Enforce(e *env.Env, op func() (*formula.Node, error)) func() (*formula.Node, error) {
	return func() (*formula.Node, error) {
		n, err := op()
		if err != nil {
			return nil, err
		}
		if err := Validate(e, n); err != nil {
			return nil, err
		}
		return n, nil
	}
}

func Enforce1[A any](e *env.Env,
	op func(A) (*formula.Node, error)) func(A) (*formula.Node, error) {

	return func(a A) (*formula.Node, error) {
		return Enforce(e, func() (*formula.Node, error) {
			return op(a)
		})()
	}
}
