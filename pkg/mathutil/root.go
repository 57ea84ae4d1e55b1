package mathutil

import (
	"fmt"

	"github.com/holiman/uint256"
)

// NthRoot returns floor(x^(1/n)), the largest r such that r^n <= x.
// The root is found by binary search over [0, 2^ceil(bits(x)/n)], so it takes
// at most 128 iterations for any 256-bit operand.
func NthRoot(x *uint256.Int, n uint) (*uint256.Int, error) {
	if n == 0 {
		return nil, ErrInvalidRootDegree
	}
	if n == 1 || x.IsZero() {
		return x.Clone(), nil
	}

	bits := uint(x.BitLen())
	if bits <= n {
		// 1 <= x < 2^n
		return uint256.NewInt(1), nil
	}

	one := uint256.NewInt(1)
	lo := new(uint256.Int)
	hi := new(uint256.Int).Lsh(one, (bits+n-1)/n)
	mid := new(uint256.Int)
	gap := new(uint256.Int)

	for gap.Sub(hi, lo).Gt(one) {
		mid.Add(lo, hi)
		mid.Rsh(mid, 1)
		if p, overflow := pow(mid, n); !overflow && !p.Gt(x) {
			lo.Set(mid)
		} else {
			hi.Set(mid)
		}
	}
	return lo, nil
}

// Sqrt returns floor(sqrt(x)).
func Sqrt(x *uint256.Int) *uint256.Int {
	r, _ := NthRoot(x, 2)
	return r
}

// Cbrt returns floor(cbrt(x)).
func Cbrt(x *uint256.Int) *uint256.Int {
	r, _ := NthRoot(x, 3)
	return r
}

// ScaledRoot returns the n-th root of the fixed-point number x with the given
// decimal places. The root is evaluated with precision fractional digits,
// floored, and returned with places decimal places.
func ScaledRoot(x *uint256.Int, n, places, precision uint) (*uint256.Int, error) {
	if n == 0 {
		return nil, ErrInvalidRootDegree
	}
	if precision > places {
		return nil, fmt.Errorf(
			"%w: precision %d, places %d", ErrInvalidPrecision, precision, places,
		)
	}

	// root(x / 10^places) * 10^precision == root(x * 10^(n*precision - places))
	radicand, err := Rescale(x, places, n*precision)
	if err != nil {
		return nil, err
	}
	root, err := NthRoot(radicand, n)
	if err != nil {
		return nil, err
	}
	return Rescale(root, precision, places)
}

// pow returns x^n, reporting whether the result overflowed 256 bits.
func pow(x *uint256.Int, n uint) (*uint256.Int, bool) {
	z := uint256.NewInt(1)
	for i := uint(0); i < n; i++ {
		if _, overflow := z.MulOverflow(z, x); overflow {
			return z, true
		}
	}
	return z, false
}
