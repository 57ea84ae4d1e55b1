package mathutil_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/tdex-network/tdex-bonding-curve/pkg/mathutil"
)

func TestParseUint128(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want string
	}{
		{"0", "0"},
		{"000", "0"},
		{"0042", "42"},
		{"1000", "1000"},
		{"340282366920938463463374607431768211455", "340282366920938463463374607431768211455"},
	}

	for _, tt := range tests {
		got, err := mathutil.ParseUint128(tt.in)
		require.NoError(t, err)
		require.Equal(t, tt.want, got.Dec())
	}
}

func TestFailingParseUint128(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		in          string
		expectedErr error
	}{
		{"empty", "", mathutil.ErrInvalidNumber},
		{"negative", "-1", mathutil.ErrInvalidNumber},
		{"plus sign", "+1", mathutil.ErrInvalidNumber},
		{"fraction", "1.5", mathutil.ErrInvalidNumber},
		{"exponent", "1e3", mathutil.ErrInvalidNumber},
		{"whitespace", " 1", mathutil.ErrInvalidNumber},
		{"hex", "0x10", mathutil.ErrInvalidNumber},
		{"129 bits", "340282366920938463463374607431768211456", mathutil.ErrOverflow},
		{"too many digits", strings.Repeat("9", 100), mathutil.ErrOverflow},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := mathutil.ParseUint128(tt.in)
			require.ErrorIs(t, err, tt.expectedErr)
		})
	}
}
