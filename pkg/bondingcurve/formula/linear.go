package formula

import (
	"github.com/holiman/uint256"
	"github.com/shopspring/decimal"
)

// Linear is the curve whose price grows linearly with the supply:
// price = K * supply, reserve = K * supply^2 / 2.
type Linear struct {
	params
}

// NewLinear returns a linear curve with K = slope/scale.
func NewLinear(slope *uint256.Int, scale uint32, places DecimalPlaces) (*Linear, error) {
	p, err := newParams(slope, scale, places)
	if err != nil {
		return nil, err
	}
	return &Linear{p}, nil
}

// SpotPrice returns K * supply.
func (l *Linear) SpotPrice(supply *uint256.Int) (decimal.Decimal, error) {
	x, err := l.supplyToFixed(supply)
	if err != nil {
		return decimal.Zero, err
	}
	return l.spotPrice(x)
}

// Reserve returns K * supply^2 / 2.
func (l *Linear) Reserve(supply *uint256.Int) (*uint256.Int, error) {
	x, err := l.supplyToFixed(supply)
	if err != nil {
		return nil, err
	}
	square, err := mul(x, x)
	if err != nil {
		return nil, err
	}
	return l.reserve(square, 1, 2)
}

// Supply returns sqrt(2 * reserve / K).
func (l *Linear) Supply(reserve *uint256.Int) (*uint256.Int, error) {
	base, err := l.inverseBase(reserve, 2, 1)
	if err != nil {
		return nil, err
	}
	x, err := sqrt(base)
	if err != nil {
		return nil, err
	}
	return l.supplyFromFixed(x)
}
