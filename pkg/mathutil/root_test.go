package mathutil_test

import (
	"math/rand"
	"testing"

	"github.com/holiman/uint256"
	"github.com/stretchr/testify/require"
	"github.com/tdex-network/tdex-bonding-curve/pkg/mathutil"
)

func TestNthRoot(t *testing.T) {
	t.Parallel()

	tests := []struct {
		x    uint64
		n    uint
		want uint64
	}{
		{0, 2, 0},
		{1, 2, 1},
		{3, 2, 1},
		{4, 2, 2},
		{99, 2, 9},
		{100, 2, 10},
		{1000000, 3, 100},
		{999999, 3, 99},
		{7, 3, 1},
		{8, 3, 2},
		{32, 5, 2},
		{31, 5, 1},
		{1 << 40, 1, 1 << 40},
		{1 << 63, 64, 1},
	}

	for _, tt := range tests {
		got, err := mathutil.NthRoot(uint256.NewInt(tt.x), tt.n)
		require.NoError(t, err)
		require.Equal(t, tt.want, got.Uint64(), "root %d of %d", tt.n, tt.x)
	}

	_, err := mathutil.NthRoot(uint256.NewInt(4), 0)
	require.ErrorIs(t, err, mathutil.ErrInvalidRootDegree)
}

func TestNthRootWidestOperand(t *testing.T) {
	t.Parallel()

	max := new(uint256.Int).SetAllOne()

	got, err := mathutil.NthRoot(max, 2)
	require.NoError(t, err)
	require.True(t, got.Eq(mathutil.MaxUint128))
}

func TestNthRootBounds(t *testing.T) {
	t.Parallel()

	rnd := rand.New(rand.NewSource(1))
	for _, n := range []uint{2, 3, 5} {
		for i := 0; i < 2000; i++ {
			x := uint256.NewInt(rnd.Uint64())
			r, err := mathutil.NthRoot(x, n)
			require.NoError(t, err)

			lower, err := pow(r, n)
			require.NoError(t, err)
			require.False(t, lower.Gt(x), "r^n > x for x=%s n=%d", x.Dec(), n)

			next := new(uint256.Int).AddUint64(r, 1)
			upper, err := pow(next, n)
			require.NoError(t, err)
			require.True(t, upper.Gt(x), "(r+1)^n <= x for x=%s n=%d", x.Dec(), n)
		}
	}
}

func TestSqrtAndCbrt(t *testing.T) {
	t.Parallel()

	require.Equal(t, uint64(1414213562), mathutil.Sqrt(uint256.NewInt(2000000000000000000)).Uint64())
	require.Equal(t, uint64(1259921), mathutil.Cbrt(uint256.NewInt(2000000000000000000)).Uint64())
}

func TestScaledRoot(t *testing.T) {
	t.Parallel()

	e18, _ := mathutil.Pow10(18)

	tests := []struct {
		name      string
		x         *uint256.Int
		n         uint
		precision uint
		want      string
	}{
		{
			name:      "sqrt of 2",
			x:         new(uint256.Int).Mul(uint256.NewInt(2), e18),
			n:         2,
			precision: 18,
			want:      "1414213562373095048",
		},
		{
			name:      "cbrt of 1000",
			x:         new(uint256.Int).Mul(uint256.NewInt(1000), e18),
			n:         3,
			precision: 12,
			want:      "10000000000000000000",
		},
		{
			name:      "cbrt of 2 truncated to 12 digits",
			x:         new(uint256.Int).Mul(uint256.NewInt(2), e18),
			n:         3,
			precision: 12,
			want:      "1259921049894000000",
		},
		{
			name:      "fifth root of 32",
			x:         new(uint256.Int).Mul(uint256.NewInt(32), e18),
			n:         5,
			precision: 9,
			want:      "2000000000000000000",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := mathutil.ScaledRoot(tt.x, tt.n, 18, tt.precision)
			require.NoError(t, err)
			require.Equal(t, tt.want, got.Dec())
		})
	}

	_, err := mathutil.ScaledRoot(e18, 2, 6, 9)
	require.ErrorIs(t, err, mathutil.ErrInvalidPrecision)
}

func pow(x *uint256.Int, n uint) (*uint256.Int, error) {
	z := uint256.NewInt(1)
	for i := uint(0); i < n; i++ {
		var err error
		if z, err = mathutil.Mul(z, x); err != nil {
			return nil, err
		}
	}
	return z, nil
}
