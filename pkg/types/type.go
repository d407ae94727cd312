package types

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

type TypeKind int

const (
	BoolType TypeKind = iota + 1
	IntType
	RealType
	BVType
	FunctionType
)

const (
	MaxBVWidth = math.MaxUint32
)

func (tk TypeKind) String() string {
	switch tk {
	case BoolType:
		return "BOOL"
	case IntType:
		return "INT"
	case RealType:
		return "REAL"
	case BVType:
		return "BV"
	case FunctionType:
		return "FUNCTION"
	default:
		panic(fmt.Sprintf("unexpected type kind; got %#v", tk))
	}
}

// Type is compared structurally with Equal; the zero Type is not a valid type.
type Type struct {
	Kind TypeKind

	Width uint32 // bit-vector width; positive for BVType

	ret    *Type
	params []Type
}

var (
	Bool = Type{Kind: BoolType}
	Int  = Type{Kind: IntType}
	Real = Type{Kind: RealType}

	errZeroWidth    = errors.New("types: bit-vector width must be positive")
	errNoParams     = errors.New("types: function type must have at least one parameter")
	errNestedFunc   = errors.New("types: function types may not take or return functions")
	errInvalidParam = errors.New("types: function type parameter is not a valid type")
)

func BV(width uint32) (Type, error) {
	if width == 0 {
		return Type{}, errZeroWidth
	}
	return Type{Kind: BVType, Width: width}, nil
}

func MustBV(width uint32) Type {
	t, err := BV(width)
	if err != nil {
		panic(err.Error())
	}
	return t
}

func Function(ret Type, params ...Type) (Type, error) {
	if len(params) == 0 {
		return Type{}, errNoParams
	}
	if !ret.Valid() {
		return Type{}, errInvalidParam
	} else if ret.Kind == FunctionType {
		return Type{}, errNestedFunc
	}
	for _, p := range params {
		if !p.Valid() {
			return Type{}, errInvalidParam
		} else if p.Kind == FunctionType {
			return Type{}, errNestedFunc
		}
	}

	r := ret
	return Type{
		Kind:   FunctionType,
		ret:    &r,
		params: append([]Type(nil), params...),
	}, nil
}

func MustFunction(ret Type, params ...Type) Type {
	t, err := Function(ret, params...)
	if err != nil {
		panic(err.Error())
	}
	return t
}

func (t Type) Valid() bool {
	switch t.Kind {
	case BoolType, IntType, RealType:
		return true
	case BVType:
		return t.Width > 0
	case FunctionType:
		return t.ret != nil && len(t.params) > 0
	}
	return false
}

// ReturnType and ParamTypes are only meaningful for function types.
func (t Type) ReturnType() Type {
	if t.ret == nil {
		return Type{}
	}
	return *t.ret
}

func (t Type) ParamTypes() []Type {
	return append([]Type(nil), t.params...)
}

func (t Type) NumParams() int {
	return len(t.params)
}

func (t Type) ParamType(i int) Type {
	return t.params[i]
}

func (t Type) Equal(t2 Type) bool {
	if t.Kind != t2.Kind {
		return false
	}

	switch t.Kind {
	case BVType:
		return t.Width == t2.Width
	case FunctionType:
		if len(t.params) != len(t2.params) || !t.ReturnType().Equal(t2.ReturnType()) {
			return false
		}
		for idx := range t.params {
			if !t.params[idx].Equal(t2.params[idx]) {
				return false
			}
		}
	}
	return true
}

func (t Type) IsBool() bool {
	return t.Kind == BoolType
}

func (t Type) IsInt() bool {
	return t.Kind == IntType
}

func (t Type) IsReal() bool {
	return t.Kind == RealType
}

// IsNumeric is true for the arithmetic sorts INT and REAL; bit-vectors are not numeric.
func (t Type) IsNumeric() bool {
	return t.Kind == IntType || t.Kind == RealType
}

func (t Type) IsBV() bool {
	return t.Kind == BVType
}

func (t Type) IsBVOfWidth(w uint32) bool {
	return t.Kind == BVType && t.Width == w
}

func (t Type) IsFunction() bool {
	return t.Kind == FunctionType
}

func (t Type) String() string {
	switch t.Kind {
	case 0:
		return "<invalid>"
	case BVType:
		return fmt.Sprintf("BV{%d}", t.Width)
	case FunctionType:
		var buf strings.Builder
		buf.WriteString(t.ReturnType().String())
		buf.WriteString(" (")
		for idx, p := range t.params {
			if idx > 0 {
				buf.WriteString(", ")
			}
			buf.WriteString(p.String())
		}
		buf.WriteRune(')')
		return buf.String()
	default:
		return t.Kind.String()
	}
}

func FormatTypes(ts []Type) string {
	var buf strings.Builder
	buf.WriteRune('[')
	for idx, t := range ts {
		if idx > 0 {
			buf.WriteString(", ")
		}
		buf.WriteString(t.String())
	}
	buf.WriteRune(']')
	return buf.String()
}
