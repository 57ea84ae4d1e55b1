package mathutil

import (
	"fmt"
	"strings"

	"github.com/holiman/uint256"
)

// ParseUint parses a base-10 unsigned integer string. Signs, whitespace,
// separators and exponents are rejected.
func ParseUint(s string) (*uint256.Int, error) {
	if len(s) <= 0 {
		return nil, fmt.Errorf("%w: empty string", ErrInvalidNumber)
	}
	for _, c := range s {
		if c < '0' || c > '9' {
			return nil, fmt.Errorf("%w: %q", ErrInvalidNumber, s)
		}
	}

	digits := strings.TrimLeft(s, "0")
	if len(digits) <= 0 {
		return new(uint256.Int), nil
	}
	if len(digits) > MaxExponent+1 {
		return nil, fmt.Errorf("%w: %q", ErrOverflow, s)
	}
	z, err := uint256.FromDecimal(digits)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrOverflow, s)
	}
	return z, nil
}

// ParseUint128 parses a base-10 unsigned integer string that must fit in
// 128 bits.
func ParseUint128(s string) (*uint256.Int, error) {
	z, err := ParseUint(s)
	if err != nil {
		return nil, err
	}
	if err := CheckUint128(z); err != nil {
		return nil, err
	}
	return z, nil
}
