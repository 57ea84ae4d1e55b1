// Package mathutil implements the exact unsigned fixed-point arithmetic used to
// evaluate bonding curves. Every operation works on 256-bit integers and
// reports an error instead of wrapping around.
package mathutil

import (
	"errors"
	"fmt"

	"github.com/holiman/uint256"
	"github.com/shopspring/decimal"
)

// MaxExponent is the largest power of ten representable in 256 bits.
const MaxExponent = 77

var (
	// ErrOverflow is returned when the exact result of an operation does not
	// fit in the available width.
	ErrOverflow = errors.New("arithmetic overflow")
	// ErrDivisionByZero ...
	ErrDivisionByZero = errors.New("division by zero")
	// ErrInvalidRootDegree ...
	ErrInvalidRootDegree = errors.New("root degree must be greater than zero")
	// ErrInvalidPrecision is returned when a root is requested with more
	// fractional digits than its operand carries.
	ErrInvalidPrecision = errors.New("root precision exceeds operand decimal places")
	// ErrInvalidNumber is returned when a string is not a plain base-10
	// unsigned integer.
	ErrInvalidNumber = errors.New("invalid unsigned integer")
)

var (
	//MaxUint128 is the largest value of an amount or of a price in atomic units
	MaxUint128 = new(uint256.Int).Sub(
		new(uint256.Int).Lsh(uint256.NewInt(1), 128), uint256.NewInt(1),
	)

	pow10 [MaxExponent + 1]uint256.Int
)

func init() {
	pow10[0].SetOne()
	ten := uint256.NewInt(10)
	for i := 1; i <= MaxExponent; i++ {
		pow10[i].Mul(&pow10[i-1], ten)
	}
}

//Pow10 returns 10^n
func Pow10(n uint) (*uint256.Int, error) {
	if n > MaxExponent {
		return nil, fmt.Errorf("%w: 10^%d", ErrOverflow, n)
	}
	return new(uint256.Int).Set(&pow10[n]), nil
}

//Add takes two numbers and sum them x + y
func Add(x, y *uint256.Int) (*uint256.Int, error) {
	z, overflow := new(uint256.Int).AddOverflow(x, y)
	if overflow {
		return nil, ErrOverflow
	}
	return z, nil
}

//Mul takes two numbers and multiply them x * y
func Mul(x, y *uint256.Int) (*uint256.Int, error) {
	z, overflow := new(uint256.Int).MulOverflow(x, y)
	if overflow {
		return nil, ErrOverflow
	}
	return z, nil
}

//Div takes two numbers and divides them x / y rounding down
func Div(x, y *uint256.Int) (*uint256.Int, error) {
	if y.IsZero() {
		return nil, ErrDivisionByZero
	}
	return new(uint256.Int).Div(x, y), nil
}

// MulDiv returns floor(x * y / d). The product is kept at 512 bits so only a
// quotient wider than 256 bits overflows.
func MulDiv(x, y, d *uint256.Int) (*uint256.Int, error) {
	if d.IsZero() {
		return nil, ErrDivisionByZero
	}
	z, overflow := new(uint256.Int).MulDivOverflow(x, y, d)
	if overflow {
		return nil, ErrOverflow
	}
	return z, nil
}

// ScaledMul multiplies two fixed-point numbers with the given decimal places
// and returns the floored product with the same decimal places.
func ScaledMul(x, y *uint256.Int, places uint) (*uint256.Int, error) {
	unit, err := Pow10(places)
	if err != nil {
		return nil, err
	}
	return MulDiv(x, y, unit)
}

// ScaledDiv divides two fixed-point numbers with the given decimal places
// and returns the floored quotient with the same decimal places.
func ScaledDiv(x, y *uint256.Int, places uint) (*uint256.Int, error) {
	unit, err := Pow10(places)
	if err != nil {
		return nil, err
	}
	return MulDiv(x, unit, y)
}

// Rescale converts a fixed-point number from one number of decimal places to
// another. Digits dropped when lowering the precision are floored.
func Rescale(x *uint256.Int, from, to uint) (*uint256.Int, error) {
	if from == to {
		return x.Clone(), nil
	}
	if to > from {
		unit, err := Pow10(to - from)
		if err != nil {
			return nil, err
		}
		return Mul(x, unit)
	}
	unit, err := Pow10(from - to)
	if err != nil {
		return nil, err
	}
	return Div(x, unit)
}

// CheckUint128 returns ErrOverflow if x does not fit in 128 bits.
func CheckUint128(x *uint256.Int) error {
	if x.Gt(MaxUint128) {
		return fmt.Errorf("%w: %s exceeds 128 bits", ErrOverflow, x.Dec())
	}
	return nil
}

// ToDecimal returns the fixed-point number x with the given decimal places as
// a decimal.Decimal.
func ToDecimal(x *uint256.Int, places uint) decimal.Decimal {
	return decimal.NewFromBigInt(x.ToBig(), -int32(places))
}
