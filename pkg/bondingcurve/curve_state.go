package bondingcurve

import (
	"fmt"

	"github.com/tdex-network/tdex-bonding-curve/pkg/bondingcurve/formula"
)

// DecimalPlaces holds the number of decimal places of the reserve and of the
// supply assets.
type DecimalPlaces = formula.DecimalPlaces

// CurveState is the current reserve and supply of a bonding curve. The
// denominations are labels and never take part in pricing.
type CurveState struct {
	Decimals     DecimalPlaces `json:"decimals"`
	Reserve      Uint128       `json:"reserve"`
	ReserveDenom string        `json:"reserve_denom"`
	Supply       Uint128       `json:"supply"`
	SupplyDenom  string        `json:"supply_denom"`
}

// NewCurveState returns an empty state for the given denominations.
func NewCurveState(reserveDenom, supplyDenom string, decimals DecimalPlaces) CurveState {
	return CurveState{
		Decimals:     decimals,
		ReserveDenom: reserveDenom,
		SupplyDenom:  supplyDenom,
	}
}

// Validate ...
func (s CurveState) Validate() error {
	if err := s.Decimals.Validate(); err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidCurveParameters, err)
	}
	if s.ReserveDenom != "" && s.ReserveDenom == s.SupplyDenom {
		return fmt.Errorf(
			"%w: reserve and supply denominations must differ, got %q",
			ErrInvalidCurveParameters, s.ReserveDenom,
		)
	}
	return nil
}
