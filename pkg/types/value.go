package types

import (
	"errors"
	"fmt"
	"math/big"
)

type Value interface {
	String() string
	Type() Type
}

type BoolValue bool

func (b BoolValue) String() string {
	if b {
		return "true"
	}
	return "false"
}

func (_ BoolValue) Type() Type {
	return Bool
}

type IntValue struct {
	v *big.Int
}

func NewIntValue(i int64) IntValue {
	return IntValue{v: big.NewInt(i)}
}

// NewBigIntValue copies i.
func NewBigIntValue(i *big.Int) IntValue {
	return IntValue{v: new(big.Int).Set(i)}
}

func (i IntValue) Big() *big.Int {
	return new(big.Int).Set(i.v)
}

func (i IntValue) String() string {
	return i.v.String()
}

func (_ IntValue) Type() Type {
	return Int
}

type RealValue struct {
	r *big.Rat
}

var (
	errZeroDenominator = errors.New("types: real value with zero denominator")
)

func NewRealValue(num, den int64) (RealValue, error) {
	if den == 0 {
		return RealValue{}, errZeroDenominator
	}
	return RealValue{r: big.NewRat(num, den)}, nil
}

func NewRatValue(r *big.Rat) RealValue {
	return RealValue{r: new(big.Rat).Set(r)}
}

func (r RealValue) Rat() *big.Rat {
	return new(big.Rat).Set(r.r)
}

func (r RealValue) String() string {
	if r.r.IsInt() {
		return r.r.Num().String() + ".0"
	}
	return r.r.RatString()
}

func (_ RealValue) Type() Type {
	return Real
}

type BVValue struct {
	v     *big.Int
	width uint32
}

func NewBVValue(v uint64, width uint32) (BVValue, error) {
	return NewBigBVValue(new(big.Int).SetUint64(v), width)
}

func NewBigBVValue(v *big.Int, width uint32) (BVValue, error) {
	if width == 0 {
		return BVValue{}, errZeroWidth
	} else if v.Sign() < 0 {
		return BVValue{}, fmt.Errorf("types: bit-vector value must not be negative: %s", v)
	} else if v.BitLen() > int(width) {
		return BVValue{}, fmt.Errorf("types: bit-vector value %s does not fit in %d bits", v,
			width)
	}
	return BVValue{v: new(big.Int).Set(v), width: width}, nil
}

func (bv BVValue) Big() *big.Int {
	return new(big.Int).Set(bv.v)
}

func (bv BVValue) Width() uint32 {
	return bv.width
}

func (bv BVValue) String() string {
	return fmt.Sprintf("%s_%d", bv.v, bv.width)
}

func (bv BVValue) Type() Type {
	return Type{Kind: BVType, Width: bv.width}
}

func FormatValue(v Value) string {
	if v == nil {
		return "<nil>"
	}

	return v.String()
}
