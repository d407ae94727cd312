package formula

import (
	"fmt"
)

type Kind int

const (
	SymbolKind Kind = iota + 1
	BoolConst
	IntConst
	RealConst
	BVConst
	AndKind
	OrKind
	NotKind
	IffKind
	ImpliesKind
	EqualsKind
	LEKind
	LTKind
	GEKind
	GTKind
	PlusKind
	MinusKind
	TimesKind
	DivKind
	IteKind
	ForallKind
	ExistsKind
	FunctionApplication

	numKinds
)

const (
	variadic = -1
)

type arity struct {
	min, max int
}

var (
	kindNames = [numKinds]string{
		SymbolKind:          "SYMBOL",
		BoolConst:           "BOOL_CONSTANT",
		IntConst:            "INT_CONSTANT",
		RealConst:           "REAL_CONSTANT",
		BVConst:             "BV_CONSTANT",
		AndKind:             "AND",
		OrKind:              "OR",
		NotKind:             "NOT",
		IffKind:             "IFF",
		ImpliesKind:         "IMPLIES",
		EqualsKind:          "EQUALS",
		LEKind:              "LE",
		LTKind:              "LT",
		GEKind:              "GE",
		GTKind:              "GT",
		PlusKind:            "PLUS",
		MinusKind:           "MINUS",
		TimesKind:           "TIMES",
		DivKind:             "DIV",
		IteKind:             "ITE",
		ForallKind:          "FORALL",
		ExistsKind:          "EXISTS",
		FunctionApplication: "FUNCTION_APPLICATION",
	}

	// FunctionApplication is missing: its arity comes from the applied function's type.
	arities = [numKinds]arity{
		SymbolKind:  {0, 0},
		BoolConst:   {0, 0},
		IntConst:    {0, 0},
		RealConst:   {0, 0},
		BVConst:     {0, 0},
		AndKind:     {1, variadic},
		OrKind:      {1, variadic},
		NotKind:     {1, 1},
		IffKind:     {2, 2},
		ImpliesKind: {2, 2},
		EqualsKind:  {2, 2},
		LEKind:      {2, 2},
		LTKind:      {2, 2},
		GEKind:      {2, 2},
		GTKind:      {2, 2},
		PlusKind:    {1, variadic},
		MinusKind:   {2, 2},
		TimesKind:   {1, variadic},
		DivKind:     {2, 2},
		IteKind:     {3, 3},
		ForallKind:  {1, 1},
		ExistsKind:  {1, 1},
	}
)

func (k Kind) Valid() bool {
	return k > 0 && k < numKinds
}

func (k Kind) String() string {
	if !k.Valid() {
		panic(fmt.Sprintf("unexpected formula kind; got %d", int(k)))
	}
	return kindNames[k]
}

func (k Kind) IsConstant() bool {
	return k == BoolConst || k == IntConst || k == RealConst || k == BVConst
}

func (k Kind) IsQuantifier() bool {
	return k == ForallKind || k == ExistsKind
}

// Kinds returns every node kind in declaration order.
func Kinds() []Kind {
	kinds := make([]Kind, 0, numKinds-1)
	for k := SymbolKind; k < numKinds; k++ {
		kinds = append(kinds, k)
	}
	return kinds
}

// Arity returns the minimum and maximum number of arguments for kind; max is -1 for
// variadic kinds. FunctionApplication reports -1, -1 since its arity depends on the
// applied function.
func Arity(k Kind) (int, int) {
	if k == FunctionApplication {
		return variadic, variadic
	}
	a := arities[k]
	return a.min, a.max
}
