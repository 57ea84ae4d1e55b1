package bondingcurve

import (
	"errors"

	"github.com/tdex-network/tdex-bonding-curve/pkg/mathutil"
)

var (
	// ErrInvalidCurveParameters is returned for out of range decimal places,
	// unparseable integer strings or malformed requests.
	ErrInvalidCurveParameters = errors.New("invalid curve parameters")
	// ErrUnsupportedCurveType is returned for unknown curve type tags.
	ErrUnsupportedCurveType = errors.New("unsupported curve type")
	// ErrDivisionByZero is returned for a zero scale, or a zero slope when
	// inverting a curve.
	ErrDivisionByZero = mathutil.ErrDivisionByZero
	// ErrArithmeticOverflow is returned when a value does not fit in the
	// representable width.
	ErrArithmeticOverflow = mathutil.ErrOverflow
)
