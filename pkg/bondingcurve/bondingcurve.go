// Package bondingcurve computes prices, reserves and supplies of bonding
// curves. A curve is described by a CurveType and evaluated at a CurveState.
// All the computation is exact integer arithmetic, stateless and safe for
// concurrent use.
package bondingcurve

import (
	"github.com/shopspring/decimal"
	"github.com/tdex-network/tdex-bonding-curve/pkg/bondingcurve/formula"
)

// SpotPrice returns the price of one whole supply token in whole reserve
// tokens at the state's supply. The state's reserve is not consumed.
func SpotPrice(curveType CurveType, state CurveState) (decimal.Decimal, error) {
	curve, err := curveAt(curveType, state)
	if err != nil {
		return decimal.Zero, err
	}
	return curve.SpotPrice(state.Supply.Int())
}

// Reserve returns the reserve, in base units, that backs the state's supply.
func Reserve(curveType CurveType, state CurveState) (Uint128, error) {
	curve, err := curveAt(curveType, state)
	if err != nil {
		return Uint128{}, err
	}
	reserve, err := curve.Reserve(state.Supply.Int())
	if err != nil {
		return Uint128{}, err
	}
	return uint128FromInt(reserve), nil
}

// Supply returns the supply, in base units, issued against the state's
// reserve.
func Supply(curveType CurveType, state CurveState) (Uint128, error) {
	curve, err := curveAt(curveType, state)
	if err != nil {
		return Uint128{}, err
	}
	supply, err := curve.Supply(state.Reserve.Int())
	if err != nil {
		return Uint128{}, err
	}
	return uint128FromInt(supply), nil
}

func curveAt(curveType CurveType, state CurveState) (formula.Curve, error) {
	if err := state.Validate(); err != nil {
		return nil, err
	}
	return curveType.Curve(state.Decimals)
}
