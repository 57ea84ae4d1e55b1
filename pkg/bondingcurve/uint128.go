package bondingcurve

import (
	"encoding/json"
	"fmt"

	"github.com/holiman/uint256"
	"github.com/tdex-network/tdex-bonding-curve/pkg/mathutil"
)

// Uint128 is an unsigned 128-bit amount. It is encoded in JSON as a base-10
// string.
type Uint128 struct {
	v uint256.Int
}

// NewUint128 returns the amount v.
func NewUint128(v uint64) Uint128 {
	var u Uint128
	u.v.SetUint64(v)
	return u
}

// ParseUint128 parses a base-10 amount.
func ParseUint128(s string) (Uint128, error) {
	v, err := mathutil.ParseUint128(s)
	if err != nil {
		return Uint128{}, fmt.Errorf("%w: %s", ErrInvalidCurveParameters, err)
	}
	return Uint128{*v}, nil
}

// MustParseUint128 is like ParseUint128 but panics on error.
func MustParseUint128(s string) Uint128 {
	u, err := ParseUint128(s)
	if err != nil {
		panic(err)
	}
	return u
}

// Int returns a copy of the amount as a 256-bit integer.
func (u Uint128) Int() *uint256.Int {
	return u.v.Clone()
}

// IsZero ...
func (u Uint128) IsZero() bool {
	return u.v.IsZero()
}

func (u Uint128) String() string {
	return u.v.Dec()
}

// MarshalJSON ...
func (u Uint128) MarshalJSON() ([]byte, error) {
	return json.Marshal(u.String())
}

// UnmarshalJSON ...
func (u *Uint128) UnmarshalJSON(buf []byte) error {
	var s string
	if err := json.Unmarshal(buf, &s); err != nil {
		return fmt.Errorf(
			"%w: amount must be a base-10 string, got %s",
			ErrInvalidCurveParameters, buf,
		)
	}
	v, err := ParseUint128(s)
	if err != nil {
		return err
	}
	*u = v
	return nil
}

func uint128FromInt(v *uint256.Int) Uint128 {
	return Uint128{*v}
}
