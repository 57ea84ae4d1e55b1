package formula

import (
	"github.com/holiman/uint256"
	"github.com/shopspring/decimal"
	"github.com/tdex-network/tdex-bonding-curve/pkg/mathutil"
)

// Constant is a flat curve: every supply token is worth value/scale reserve
// tokens regardless of the supply.
type Constant struct {
	params
}

// NewConstant returns a flat curve priced at value/scale.
func NewConstant(value *uint256.Int, scale uint32, places DecimalPlaces) (*Constant, error) {
	p, err := newParams(value, scale, places)
	if err != nil {
		return nil, err
	}
	return &Constant{p}, nil
}

// SpotPrice returns K. The supply is only checked for width.
func (c *Constant) SpotPrice(supply *uint256.Int) (decimal.Decimal, error) {
	if err := mathutil.CheckUint128(supply); err != nil {
		return decimal.Zero, err
	}
	return c.spotPrice(one)
}

// Reserve returns K * supply.
func (c *Constant) Reserve(supply *uint256.Int) (*uint256.Int, error) {
	x, err := c.supplyToFixed(supply)
	if err != nil {
		return nil, err
	}
	return c.reserve(x, 1, 1)
}

// Supply returns reserve / K.
func (c *Constant) Supply(reserve *uint256.Int) (*uint256.Int, error) {
	x, err := c.inverseBase(reserve, 1, 1)
	if err != nil {
		return nil, err
	}
	return c.supplyFromFixed(x)
}
