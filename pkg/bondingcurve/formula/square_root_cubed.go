package formula

import (
	"github.com/holiman/uint256"
	"github.com/shopspring/decimal"
)

// SquareRootCubed is the curve with price = K * supply^(3/2) and
// reserve = 2/5 * K * supply^(5/2).
type SquareRootCubed struct {
	params
}

// NewSquareRootCubed returns a square root cubed curve with K = slope/scale.
func NewSquareRootCubed(slope *uint256.Int, scale uint32, places DecimalPlaces) (*SquareRootCubed, error) {
	p, err := newParams(slope, scale, places)
	if err != nil {
		return nil, err
	}
	return &SquareRootCubed{p}, nil
}

// SpotPrice returns K * supply * sqrt(supply).
func (s *SquareRootCubed) SpotPrice(supply *uint256.Int) (decimal.Decimal, error) {
	x, err := s.supplyToFixed(supply)
	if err != nil {
		return decimal.Zero, err
	}
	root, err := sqrt(x)
	if err != nil {
		return decimal.Zero, err
	}
	g, err := mul(x, root)
	if err != nil {
		return decimal.Zero, err
	}
	return s.spotPrice(g)
}

// Reserve returns 2/5 * K * supply^2 * sqrt(supply).
func (s *SquareRootCubed) Reserve(supply *uint256.Int) (*uint256.Int, error) {
	x, err := s.supplyToFixed(supply)
	if err != nil {
		return nil, err
	}
	root, err := sqrt(x)
	if err != nil {
		return nil, err
	}
	square, err := mul(x, x)
	if err != nil {
		return nil, err
	}
	g, err := mul(square, root)
	if err != nil {
		return nil, err
	}
	return s.reserve(g, 2, 5)
}

// Supply returns (5/2 * reserve / K)^(2/5).
func (s *SquareRootCubed) Supply(reserve *uint256.Int) (*uint256.Int, error) {
	base, err := s.inverseBase(reserve, 5, 2)
	if err != nil {
		return nil, err
	}
	root, err := fifthRoot(base)
	if err != nil {
		return nil, err
	}
	x, err := mul(root, root)
	if err != nil {
		return nil, err
	}
	return s.supplyFromFixed(x)
}
