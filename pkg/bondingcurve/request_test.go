package bondingcurve_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/tdex-network/tdex-bonding-curve/pkg/bondingcurve"
)

const spotPriceRequest = `{
  "quote_asset_denom": "usdc",
  "base_asset_denom": "btc",
  "curve_state": {
    "decimals": {
      "reserve": 6,
      "supply": 8
    },
    "reserve": "0",
    "reserve_denom": "btc",
    "supply": "1000",
    "supply_denom": "usdc"
  },
  "curve_type": {
    "cube_root_squared": {
      "scale": 1,
      "slope": "1"
    }
  }
}`

func TestParseRequest(t *testing.T) {
	t.Parallel()

	req, err := bondingcurve.ParseRequest([]byte(spotPriceRequest))
	require.NoError(t, err)
	require.Equal(t, "usdc", req.QuoteAssetDenom)
	require.Equal(t, "btc", req.BaseAssetDenom)
	require.Equal(t, bondingcurve.CurveKindCubeRootSquared, req.CurveType.Kind)
	require.Equal(t, bondingcurve.DecimalPlaces{Reserve: 6, Supply: 8}, req.CurveState.Decimals)
	require.Equal(t, "1000", req.CurveState.Supply.String())
	require.True(t, req.CurveState.Reserve.IsZero())

	price, err := req.SpotPrice()
	require.NoError(t, err)
	require.Equal(t, "0.000464158883347539", price)

	buf, err := json.Marshal(req)
	require.NoError(t, err)
	require.JSONEq(t, spotPriceRequest, string(buf))
}

func TestRequestDenomsAreLabels(t *testing.T) {
	t.Parallel()

	req, err := bondingcurve.ParseRequest([]byte(spotPriceRequest))
	require.NoError(t, err)

	swapped := req
	swapped.QuoteAssetDenom, swapped.BaseAssetDenom = req.BaseAssetDenom, req.QuoteAssetDenom

	want, err := req.SpotPrice()
	require.NoError(t, err)
	got, err := swapped.SpotPrice()
	require.NoError(t, err)
	require.Equal(t, want, got)
}

func TestRequestReserveAndSupply(t *testing.T) {
	t.Parallel()

	req := bondingcurve.Request{
		CurveType: bondingcurve.NewLinearCurve("1", 10),
		CurveState: bondingcurve.CurveState{
			Decimals:     bondingcurve.DecimalPlaces{Reserve: 8, Supply: 2},
			Reserve:      bondingcurve.NewUint128(125000000),
			ReserveDenom: "reserve",
			Supply:       bondingcurve.NewUint128(1000),
			SupplyDenom:  "supply",
		},
	}

	reserve, err := req.Reserve()
	require.NoError(t, err)
	require.Equal(t, "500000000", reserve)

	supply, err := req.Supply()
	require.NoError(t, err)
	require.Equal(t, "500", supply)
}

func TestFailingParseRequest(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		json        string
		expectedErr error
	}{
		{
			name:        "malformed json",
			json:        `{"curve_state":`,
			expectedErr: bondingcurve.ErrInvalidCurveParameters,
		},
		{
			name:        "numeric supply",
			json:        `{"curve_state":{"supply":1000},"curve_type":{"linear":{"scale":1,"slope":"1"}}}`,
			expectedErr: bondingcurve.ErrInvalidCurveParameters,
		},
		{
			name:        "decimals overflow u8",
			json:        `{"curve_state":{"decimals":{"reserve":256,"supply":0}},"curve_type":{"linear":{"scale":1,"slope":"1"}}}`,
			expectedErr: bondingcurve.ErrInvalidCurveParameters,
		},
		{
			name:        "unsupported curve",
			json:        `{"curve_type":{"sigmoid":{"scale":1,"slope":"1"}}}`,
			expectedErr: bondingcurve.ErrUnsupportedCurveType,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := bondingcurve.ParseRequest([]byte(tt.json))
			require.ErrorIs(t, err, tt.expectedErr)
		})
	}
}

func TestParseRequests(t *testing.T) {
	t.Parallel()

	reqs, err := bondingcurve.ParseRequests([]byte("[" + spotPriceRequest + "," + spotPriceRequest + "]"))
	require.NoError(t, err)
	require.Len(t, reqs, 2)

	_, err = bondingcurve.ParseRequests([]byte(`[{"curve_type":{"sigmoid":{"scale":1,"slope":"1"}}}]`))
	require.ErrorIs(t, err, bondingcurve.ErrUnsupportedCurveType)
}
