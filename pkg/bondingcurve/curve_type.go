package bondingcurve

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/tdex-network/tdex-bonding-curve/pkg/bondingcurve/formula"
	"github.com/tdex-network/tdex-bonding-curve/pkg/mathutil"
)

// CurveKind identifies one of the supported curve shapes.
type CurveKind uint8

const (
	CurveKindUnknown CurveKind = iota
	CurveKindConstant
	CurveKindLinear
	CurveKindSquareRoot
	CurveKindSquareRootCubed
	CurveKindCubeRootSquared
)

var curveKindTags = map[CurveKind]string{
	CurveKindConstant:        "constant",
	CurveKindLinear:          "linear",
	CurveKindSquareRoot:      "square_root",
	CurveKindSquareRootCubed: "square_root_cubed",
	CurveKindCubeRootSquared: "cube_root_squared",
}

// CurveKinds returns all the supported curve kinds.
func CurveKinds() []CurveKind {
	return []CurveKind{
		CurveKindConstant,
		CurveKindLinear,
		CurveKindSquareRoot,
		CurveKindSquareRootCubed,
		CurveKindCubeRootSquared,
	}
}

// ParseCurveKind returns the kind identified by the given tag.
func ParseCurveKind(tag string) (CurveKind, error) {
	for k, t := range curveKindTags {
		if t == tag {
			return k, nil
		}
	}
	return CurveKindUnknown, fmt.Errorf("%w: %q", ErrUnsupportedCurveType, tag)
}

func (k CurveKind) String() string {
	if t, ok := curveKindTags[k]; ok {
		return t
	}
	return "unknown"
}

// CurveType is a curve shape together with its parameters. Coefficient is the
// base-10 value of a constant curve or the slope of any other curve, and
// Scale divides it: K = Coefficient / Scale.
type CurveType struct {
	Kind        CurveKind
	Scale       uint32
	Coefficient string
}

// NewConstantCurve returns a flat curve priced at value/scale.
func NewConstantCurve(value string, scale uint32) CurveType {
	return CurveType{CurveKindConstant, scale, value}
}

// NewLinearCurve ...
func NewLinearCurve(slope string, scale uint32) CurveType {
	return CurveType{CurveKindLinear, scale, slope}
}

// NewSquareRootCurve ...
func NewSquareRootCurve(slope string, scale uint32) CurveType {
	return CurveType{CurveKindSquareRoot, scale, slope}
}

// NewSquareRootCubedCurve ...
func NewSquareRootCubedCurve(slope string, scale uint32) CurveType {
	return CurveType{CurveKindSquareRootCubed, scale, slope}
}

// NewCubeRootSquaredCurve ...
func NewCubeRootSquaredCurve(slope string, scale uint32) CurveType {
	return CurveType{CurveKindCubeRootSquared, scale, slope}
}

// Validate checks that the kind is supported and that the coefficient is a
// 128 bits unsigned integer string.
func (c CurveType) Validate() error {
	if _, ok := curveKindTags[c.Kind]; !ok {
		return fmt.Errorf("%w: kind %d", ErrUnsupportedCurveType, c.Kind)
	}
	if _, err := mathutil.ParseUint128(c.Coefficient); err != nil {
		return fmt.Errorf(
			"%w: %s %s: %s", ErrInvalidCurveParameters, c.Kind, c.coefficientKey(), err,
		)
	}
	return nil
}

// Curve returns the formula of the curve type for assets with the given
// decimal places.
func (c CurveType) Curve(places DecimalPlaces) (formula.Curve, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	if err := places.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidCurveParameters, err)
	}

	coefficient, _ := mathutil.ParseUint128(c.Coefficient)

	var (
		curve formula.Curve
		err   error
	)
	switch c.Kind {
	case CurveKindConstant:
		curve, err = formula.NewConstant(coefficient, c.Scale, places)
	case CurveKindLinear:
		curve, err = formula.NewLinear(coefficient, c.Scale, places)
	case CurveKindSquareRoot:
		curve, err = formula.NewSquareRoot(coefficient, c.Scale, places)
	case CurveKindSquareRootCubed:
		curve, err = formula.NewSquareRootCubed(coefficient, c.Scale, places)
	case CurveKindCubeRootSquared:
		curve, err = formula.NewCubeRootSquared(coefficient, c.Scale, places)
	default:
		return nil, fmt.Errorf("%w: kind %d", ErrUnsupportedCurveType, c.Kind)
	}
	if err != nil {
		if errors.Is(err, ErrDivisionByZero) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %s", ErrInvalidCurveParameters, err)
	}
	return curve, nil
}

func (c CurveType) coefficientKey() string {
	if c.Kind == CurveKindConstant {
		return "value"
	}
	return "slope"
}

type curveParamsJSON struct {
	Scale *uint32 `json:"scale"`
	Slope *string `json:"slope,omitempty"`
	Value *string `json:"value,omitempty"`
}

// MarshalJSON encodes the curve type as an externally tagged object, ie.
// {"linear":{"scale":1,"slope":"1"}}.
func (c CurveType) MarshalJSON() ([]byte, error) {
	tag, ok := curveKindTags[c.Kind]
	if !ok {
		return nil, fmt.Errorf("%w: kind %d", ErrUnsupportedCurveType, c.Kind)
	}

	scale, coefficient := c.Scale, c.Coefficient
	params := curveParamsJSON{Scale: &scale}
	if c.Kind == CurveKindConstant {
		params.Value = &coefficient
	} else {
		params.Slope = &coefficient
	}
	return json.Marshal(map[string]curveParamsJSON{tag: params})
}

// UnmarshalJSON decodes an externally tagged curve type. The object must
// contain exactly one tag.
func (c *CurveType) UnmarshalJSON(buf []byte) error {
	var tagged map[string]json.RawMessage
	if err := json.Unmarshal(buf, &tagged); err != nil || tagged == nil {
		return fmt.Errorf("%w: curve type must be a tagged object", ErrInvalidCurveParameters)
	}
	if len(tagged) != 1 {
		return fmt.Errorf(
			"%w: curve type must have exactly one tag, got %d",
			ErrInvalidCurveParameters, len(tagged),
		)
	}

	for tag, raw := range tagged {
		kind, err := ParseCurveKind(tag)
		if err != nil {
			return err
		}

		var params curveParamsJSON
		if err := json.Unmarshal(raw, &params); err != nil {
			return fmt.Errorf("%w: %s: %s", ErrInvalidCurveParameters, tag, err)
		}
		if params.Scale == nil {
			return fmt.Errorf("%w: %s: missing scale", ErrInvalidCurveParameters, tag)
		}

		ct := CurveType{Kind: kind, Scale: *params.Scale}
		coefficient := params.Slope
		if kind == CurveKindConstant {
			coefficient = params.Value
		}
		if coefficient == nil {
			return fmt.Errorf(
				"%w: %s: missing %s", ErrInvalidCurveParameters, tag, ct.coefficientKey(),
			)
		}
		ct.Coefficient = *coefficient
		*c = ct
	}
	return nil
}
