package formula

import (
	"github.com/holiman/uint256"
	"github.com/shopspring/decimal"
)

// CubeRootSquared is the curve with price = K * supply^(2/3) and
// reserve = 3/5 * K * supply^(5/3).
type CubeRootSquared struct {
	params
}

// NewCubeRootSquared returns a cube root squared curve with K = slope/scale.
func NewCubeRootSquared(slope *uint256.Int, scale uint32, places DecimalPlaces) (*CubeRootSquared, error) {
	p, err := newParams(slope, scale, places)
	if err != nil {
		return nil, err
	}
	return &CubeRootSquared{p}, nil
}

// SpotPrice returns K * cbrt(supply)^2.
func (c *CubeRootSquared) SpotPrice(supply *uint256.Int) (decimal.Decimal, error) {
	x, err := c.supplyToFixed(supply)
	if err != nil {
		return decimal.Zero, err
	}
	g, err := cbrtSquared(x)
	if err != nil {
		return decimal.Zero, err
	}
	return c.spotPrice(g)
}

// Reserve returns 3/5 * K * supply * cbrt(supply)^2.
func (c *CubeRootSquared) Reserve(supply *uint256.Int) (*uint256.Int, error) {
	x, err := c.supplyToFixed(supply)
	if err != nil {
		return nil, err
	}
	g, err := cbrtSquared(x)
	if err != nil {
		return nil, err
	}
	if g, err = mul(x, g); err != nil {
		return nil, err
	}
	return c.reserve(g, 3, 5)
}

// Supply returns (5/3 * reserve / K)^(3/5).
func (c *CubeRootSquared) Supply(reserve *uint256.Int) (*uint256.Int, error) {
	base, err := c.inverseBase(reserve, 5, 3)
	if err != nil {
		return nil, err
	}
	root, err := fifthRoot(base)
	if err != nil {
		return nil, err
	}
	square, err := mul(root, root)
	if err != nil {
		return nil, err
	}
	x, err := mul(square, root)
	if err != nil {
		return nil, err
	}
	return c.supplyFromFixed(x)
}

func cbrtSquared(x *uint256.Int) (*uint256.Int, error) {
	root, err := cbrt(x)
	if err != nil {
		return nil, err
	}
	return mul(root, root)
}
