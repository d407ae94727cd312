package formula

import (
	"fmt"

	"github.com/leftmike/smt/pkg/types"
)

// ArityError is returned when a node kind is given the wrong number of arguments, or a nil
// argument at Index.
type ArityError struct {
	Kind  Kind
	Got   int
	Min   int
	Max   int // -1 for variadic kinds
	Index int // index of a nil argument; -1 otherwise
}

func (e *ArityError) Error() string {
	if e.Index >= 0 {
		return fmt.Sprintf("formula: %s: argument %d is nil", e.Kind, e.Index)
	} else if e.Max < 0 {
		return fmt.Sprintf("formula: %s: expected at least %d arguments, got %d", e.Kind, e.Min,
			e.Got)
	} else if e.Min == e.Max {
		return fmt.Sprintf("formula: %s: expected %d arguments, got %d", e.Kind, e.Min, e.Got)
	}
	return fmt.Sprintf("formula: %s: expected %d to %d arguments, got %d", e.Kind, e.Min, e.Max,
		e.Got)
}

// TypeMismatchError is returned when the argument at Index does not satisfy the typing rule
// of Kind. Index is -1 when the payload itself (eg. the applied function) is at fault.
type TypeMismatchError struct {
	Kind     Kind
	Index    int
	Expected string
	Actual   types.Type
}

func (e *TypeMismatchError) Error() string {
	if e.Index < 0 {
		return fmt.Sprintf("formula: %s: expected %s, got %s", e.Kind, e.Expected, e.Actual)
	}
	return fmt.Sprintf("formula: %s: argument %d: expected %s, got %s", e.Kind, e.Index,
		e.Expected, e.Actual)
}

type SymbolConflictError struct {
	Name      types.Name
	Declared  types.Type
	Requested types.Type
}

func (e *SymbolConflictError) Error() string {
	return fmt.Sprintf("formula: symbol %s declared as %s, used as %s", e.Name, e.Declared,
		e.Requested)
}

type UndeclaredSymbolError struct {
	Name types.Name
}

func (e *UndeclaredSymbolError) Error() string {
	return fmt.Sprintf("formula: symbol %s not declared", e.Name)
}

// BindingError is returned when a quantifier binds the same variable twice, or binds a
// variable already bound by an enclosing quantifier.
type BindingError struct {
	Kind  Kind
	Index int // index into the bound variables
	Name  types.Name
	Outer bool // bound by an enclosing quantifier
}

func (e *BindingError) Error() string {
	if e.Outer {
		return fmt.Sprintf("formula: %s: variable %d (%s) already bound by an enclosing quantifier",
			e.Kind, e.Index, e.Name)
	}
	return fmt.Sprintf("formula: %s: variable %d (%s) bound more than once", e.Kind, e.Index,
		e.Name)
}

// StructuralInvariantError is returned by post-condition enforcement when a node that was
// about to be handed back no longer satisfies the invariants of its kind.
type StructuralInvariantError struct {
	Kind Kind
	Err  error
}

func (e *StructuralInvariantError) Error() string {
	if e.Kind.Valid() {
		return fmt.Sprintf("formula: %s: structural invariant violated: %s", e.Kind, e.Err)
	}
	return fmt.Sprintf("formula: structural invariant violated: %s", e.Err)
}

func (e *StructuralInvariantError) Unwrap() error {
	return e.Err
}

// InternalConsistencyError indicates a node whose shape could not have come from a
// constructor: an unknown kind, a payload of the wrong shape, or an argument list that was
// changed through the unchecked path.
type InternalConsistencyError struct {
	Kind   Kind
	Reason string
	Err    error
}

func (e *InternalConsistencyError) Error() string {
	kind := fmt.Sprintf("kind %d", int(e.Kind))
	if e.Kind.Valid() {
		kind = e.Kind.String()
	}
	if e.Err != nil {
		return fmt.Sprintf("formula: %s: internal consistency: %s: %s", kind, e.Reason, e.Err)
	}
	return fmt.Sprintf("formula: %s: internal consistency: %s", kind, e.Reason)
}

func (e *InternalConsistencyError) Unwrap() error {
	return e.Err
}
