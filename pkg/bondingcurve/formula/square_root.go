package formula

import (
	"github.com/holiman/uint256"
	"github.com/shopspring/decimal"
)

// SquareRoot is the curve with price = K * supply^(1/2) and
// reserve = 2/3 * K * supply^(3/2).
type SquareRoot struct {
	params
}

// NewSquareRoot returns a square root curve with K = slope/scale.
func NewSquareRoot(slope *uint256.Int, scale uint32, places DecimalPlaces) (*SquareRoot, error) {
	p, err := newParams(slope, scale, places)
	if err != nil {
		return nil, err
	}
	return &SquareRoot{p}, nil
}

// SpotPrice returns K * sqrt(supply).
func (s *SquareRoot) SpotPrice(supply *uint256.Int) (decimal.Decimal, error) {
	x, err := s.supplyToFixed(supply)
	if err != nil {
		return decimal.Zero, err
	}
	root, err := sqrt(x)
	if err != nil {
		return decimal.Zero, err
	}
	return s.spotPrice(root)
}

// Reserve returns 2/3 * K * supply^(3/2).
func (s *SquareRoot) Reserve(supply *uint256.Int) (*uint256.Int, error) {
	x, err := s.supplyToFixed(supply)
	if err != nil {
		return nil, err
	}
	root, err := sqrt(x)
	if err != nil {
		return nil, err
	}
	g, err := mul(x, root)
	if err != nil {
		return nil, err
	}
	return s.reserve(g, 2, 3)
}

// Supply returns (3/2 * reserve / K)^(2/3).
func (s *SquareRoot) Supply(reserve *uint256.Int) (*uint256.Int, error) {
	base, err := s.inverseBase(reserve, 3, 2)
	if err != nil {
		return nil, err
	}
	square, err := mul(base, base)
	if err != nil {
		return nil, err
	}
	x, err := cbrt(square)
	if err != nil {
		return nil, err
	}
	return s.supplyFromFixed(x)
}
