// Package formula defines the bonding curve shapes that implement the Curve
// interface. Every curve is evaluated on exact 18 decimals fixed-point
// numbers and floors at each step, so results never overstate the true value.
package formula

import (
	"errors"
	"fmt"

	"github.com/holiman/uint256"
	"github.com/shopspring/decimal"
	"github.com/tdex-network/tdex-bonding-curve/pkg/mathutil"
)

const (
	// PricePrecision is the number of fractional digits of a spot price and
	// of every internal fixed-point value.
	PricePrecision = 18
	// MaxDecimalPlaces is the largest number of decimal places an asset can
	// have.
	MaxDecimalPlaces = 18

	sqrtPrecision  = 18
	cbrtPrecision  = 12
	fifthPrecision = 9
)

var (
	// ErrInvalidCoefficient ...
	ErrInvalidCoefficient = errors.New("curve coefficient must be a 128 bits unsigned integer")
	// ErrInvalidDecimalPlaces ...
	ErrInvalidDecimalPlaces = errors.New("decimal places must be in range [0, 18]")
)

// Curve is the interface every bonding curve shape implements.
type Curve interface {
	// SpotPrice returns the price of one whole supply token in whole reserve
	// tokens when the given supply is outstanding.
	SpotPrice(supply *uint256.Int) (decimal.Decimal, error)
	// Reserve returns the amount of reserve, in base units, that backs the
	// given supply.
	Reserve(supply *uint256.Int) (*uint256.Int, error)
	// Supply returns the supply, in base units, issued against the given
	// reserve. It is the inverse of Reserve.
	Supply(reserve *uint256.Int) (*uint256.Int, error)
}

// DecimalPlaces holds the number of decimal places of the reserve and of the
// supply assets.
type DecimalPlaces struct {
	Reserve uint8 `json:"reserve"`
	Supply  uint8 `json:"supply"`
}

// Validate returns an error if any of the decimal places is out of range.
func (d DecimalPlaces) Validate() error {
	if d.Reserve > MaxDecimalPlaces || d.Supply > MaxDecimalPlaces {
		return fmt.Errorf(
			"%w: got reserve %d, supply %d",
			ErrInvalidDecimalPlaces, d.Reserve, d.Supply,
		)
	}
	return nil
}

// params holds the normalized coefficient K = coefficient / scale of a curve
// together with the decimal places used to convert amounts.
type params struct {
	coefficient *uint256.Int
	scale       *uint256.Int
	places      DecimalPlaces
}

func newParams(
	coefficient *uint256.Int, scale uint32, places DecimalPlaces,
) (params, error) {
	if coefficient == nil {
		return params{}, ErrInvalidCoefficient
	}
	if err := mathutil.CheckUint128(coefficient); err != nil {
		return params{}, fmt.Errorf("%w: %s", ErrInvalidCoefficient, err)
	}
	if scale == 0 {
		return params{}, fmt.Errorf("%w: curve scale is zero", mathutil.ErrDivisionByZero)
	}
	if err := places.Validate(); err != nil {
		return params{}, err
	}
	return params{
		coefficient: coefficient.Clone(),
		scale:       uint256.NewInt(uint64(scale)),
		places:      places,
	}, nil
}

// supplyToFixed converts a supply amount in base units to whole tokens with
// 18 decimal places.
func (p params) supplyToFixed(supply *uint256.Int) (*uint256.Int, error) {
	if err := mathutil.CheckUint128(supply); err != nil {
		return nil, err
	}
	return mathutil.Rescale(supply, uint(p.places.Supply), PricePrecision)
}

// supplyFromFixed converts whole supply tokens with 18 decimal places back to
// base units, rounding down.
func (p params) supplyFromFixed(x *uint256.Int) (*uint256.Int, error) {
	supply, err := mathutil.Rescale(x, PricePrecision, uint(p.places.Supply))
	if err != nil {
		return nil, err
	}
	if err := mathutil.CheckUint128(supply); err != nil {
		return nil, err
	}
	return supply, nil
}

// spotPrice returns K * g where g is the 18 decimals fixed-point value of the
// curve shape at the current supply.
func (p params) spotPrice(g *uint256.Int) (decimal.Decimal, error) {
	atomics, err := mathutil.MulDiv(p.coefficient, g, p.scale)
	if err != nil {
		return decimal.Zero, err
	}
	if err := mathutil.CheckUint128(atomics); err != nil {
		return decimal.Zero, err
	}
	return mathutil.ToDecimal(atomics, PricePrecision), nil
}

// reserve returns K * num/den * g converted to reserve base units, where g is
// the 18 decimals fixed-point value of the integral shape.
func (p params) reserve(g *uint256.Int, num, den uint64) (*uint256.Int, error) {
	n, err := mathutil.Mul(p.coefficient, uint256.NewInt(num))
	if err != nil {
		return nil, err
	}
	unit, err := mathutil.Pow10(PricePrecision - uint(p.places.Reserve))
	if err != nil {
		return nil, err
	}
	d, err := mathutil.Mul(p.scale, uint256.NewInt(den))
	if err != nil {
		return nil, err
	}
	if d, err = mathutil.Mul(d, unit); err != nil {
		return nil, err
	}

	reserve, err := mathutil.MulDiv(n, g, d)
	if err != nil {
		return nil, err
	}
	if err := mathutil.CheckUint128(reserve); err != nil {
		return nil, err
	}
	return reserve, nil
}

// inverseBase returns num/den * y / K with 18 decimal places, where y is the
// reserve amount in whole tokens. The supply is a root of this value.
func (p params) inverseBase(reserve *uint256.Int, num, den uint64) (*uint256.Int, error) {
	if err := mathutil.CheckUint128(reserve); err != nil {
		return nil, err
	}
	if p.coefficient.IsZero() {
		return nil, fmt.Errorf("%w: curve slope is zero", mathutil.ErrDivisionByZero)
	}

	y, err := mathutil.Rescale(reserve, uint(p.places.Reserve), PricePrecision)
	if err != nil {
		return nil, err
	}
	n, err := mathutil.Mul(y, uint256.NewInt(num))
	if err != nil {
		return nil, err
	}
	d, err := mathutil.Mul(p.coefficient, uint256.NewInt(den))
	if err != nil {
		return nil, err
	}
	return mathutil.MulDiv(n, p.scale, d)
}

func sqrt(x *uint256.Int) (*uint256.Int, error) {
	return mathutil.ScaledRoot(x, 2, PricePrecision, sqrtPrecision)
}

func cbrt(x *uint256.Int) (*uint256.Int, error) {
	return mathutil.ScaledRoot(x, 3, PricePrecision, cbrtPrecision)
}

func fifthRoot(x *uint256.Int) (*uint256.Int, error) {
	return mathutil.ScaledRoot(x, 5, PricePrecision, fifthPrecision)
}

func mul(x, y *uint256.Int) (*uint256.Int, error) {
	return mathutil.ScaledMul(x, y, PricePrecision)
}

// one is 1 with 18 decimal places.
var one = func() *uint256.Int {
	u, _ := mathutil.Pow10(PricePrecision)
	return u
}()
