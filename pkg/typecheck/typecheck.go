package typecheck

import (
	"fmt"
	"strings"

	"github.com/leftmike/smt/pkg/env"
	"github.com/leftmike/smt/pkg/formula"
	"github.com/leftmike/smt/pkg/types"
)

// WalkError locates the node at which type inference failed: Path is the sequence of
// argument indexes from the root to that node. It unwraps to the underlying error.
type WalkError struct {
	Path []int
	Node *formula.Node
	Err  error
}

func (e *WalkError) Error() string {
	if len(e.Path) == 0 {
		return fmt.Sprintf("typecheck: %s", e.Err)
	}

	var buf strings.Builder
	for idx, p := range e.Path {
		if idx > 0 {
			buf.WriteRune('.')
		}
		fmt.Fprintf(&buf, "%d", p)
	}
	return fmt.Sprintf("typecheck: at %s: %s", buf.String(), e.Err)
}

func (e *WalkError) Unwrap() error {
	return e.Err
}

// Checker infers the types of trees whose symbols are declared in an environment. A nil
// environment trusts the declared type carried by each symbol.
type Checker struct {
	env *env.Env
}

func NewChecker(e *env.Env) *Checker {
	return &Checker{
		env: e,
	}
}

func Infer(e *env.Env, n *formula.Node) (types.Type, error) {
	return NewChecker(e).Infer(n)
}

// scope is the chain of variables bound by the quantifiers enclosing a node.
type scope struct {
	parent *scope
	vars   []*formula.Symbol
}

func (s *scope) binds(name types.Name) bool {
	for ; s != nil; s = s.parent {
		for _, v := range s.vars {
			if v.Name() == name {
				return true
			}
		}
	}
	return false
}

type memoKey struct {
	n *formula.Node
	s *scope
}

type walker struct {
	env  *env.Env
	memo map[memoKey]types.Type
}

// Infer returns the type of n. The tree is walked depth first, left to right, with children
// before their parent; the first ill-typed node fails the walk with a *WalkError. Shared
// subtrees are typed once per call.
func (c *Checker) Infer(n *formula.Node) (types.Type, error) {
	if n == nil {
		return types.Type{}, &WalkError{
			Err: &formula.InternalConsistencyError{Reason: "nil node"},
		}
	}

	w := walker{
		env:  c.env,
		memo: map[memoKey]types.Type{},
	}
	t, err := w.walk(n, nil)
	if err != nil {
		if we, ok := err.(*WalkError); ok {
			return types.Type{}, we
		}
		return types.Type{}, &WalkError{Node: n, Err: err}
	}
	return t, nil
}

func (w *walker) walk(n *formula.Node, s *scope) (types.Type, error) {
	key := memoKey{n: n, s: s}
	if t, ok := w.memo[key]; ok {
		return t, nil
	}

	if err := formula.CheckArity(n); err != nil {
		if ae, ok := err.(*formula.ArityError); ok {
			err = &formula.InternalConsistencyError{
				Kind:   n.Kind(),
				Reason: "argument list changed after construction",
				Err:    ae,
			}
		}
		return types.Type{}, err
	}

	switch n.Kind() {
	case formula.SymbolKind, formula.FunctionApplication:
		if err := w.checkDeclared(n.Symbol()); err != nil {
			return types.Type{}, err
		}
	case formula.ForallKind, formula.ExistsKind:
		bound, err := w.bind(n, s)
		if err != nil {
			return types.Type{}, err
		}
		s = bound
	}

	ts := make([]types.Type, n.NumArgs())
	for idx := 0; idx < n.NumArgs(); idx += 1 {
		arg := n.Arg(idx)
		t, err := w.walk(arg, s)
		if err != nil {
			return types.Type{}, prependPath(idx, arg, err)
		}
		ts[idx] = t
	}

	t, err := formula.TypeOf(n, ts)
	if err != nil {
		return types.Type{}, err
	}
	w.memo[key] = t
	return t, nil
}

func prependPath(idx int, arg *formula.Node, err error) error {
	if we, ok := err.(*WalkError); ok {
		we.Path = append([]int{idx}, we.Path...)
		return we
	}
	return &WalkError{
		Path: []int{idx},
		Node: arg,
		Err:  err,
	}
}

func (w *walker) checkDeclared(sym *formula.Symbol) error {
	if w.env == nil || sym == nil {
		// A missing symbol is reported by TypeOf.
		return nil
	}

	decl, ok := w.env.LookupName(sym.Name())
	if !ok {
		return &formula.UndeclaredSymbolError{Name: sym.Name()}
	} else if !decl.Type().Equal(sym.Type()) {
		return &formula.SymbolConflictError{
			Name:      sym.Name(),
			Declared:  decl.Type(),
			Requested: sym.Type(),
		}
	}
	return nil
}

func (w *walker) bind(n *formula.Node, s *scope) (*scope, error) {
	vars := n.BoundVars()
	for idx, v := range vars {
		if v == nil {
			// Reported by TypeOf.
			continue
		}
		if err := w.checkDeclared(v); err != nil {
			return nil, err
		}
		for jdx := 0; jdx < idx; jdx += 1 {
			if vars[jdx] != nil && vars[jdx].Name() == v.Name() {
				return nil, &formula.BindingError{
					Kind:  n.Kind(),
					Index: idx,
					Name:  v.Name(),
				}
			}
		}
		if s.binds(v.Name()) {
			return nil, &formula.BindingError{
				Kind:  n.Kind(),
				Index: idx,
				Name:  v.Name(),
				Outer: true,
			}
		}
	}

	return &scope{
		parent: s,
		vars:   vars,
	}, nil
}
