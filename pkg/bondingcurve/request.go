package bondingcurve

import (
	"encoding/json"
	"errors"
	"fmt"
)

// Request is a spot price query. The asset denominations are labels and do
// not affect the result.
type Request struct {
	QuoteAssetDenom string     `json:"quote_asset_denom,omitempty"`
	BaseAssetDenom  string     `json:"base_asset_denom,omitempty"`
	CurveState      CurveState `json:"curve_state"`
	CurveType       CurveType  `json:"curve_type"`
}

// ParseRequest decodes a JSON request.
func ParseRequest(buf []byte) (Request, error) {
	var req Request
	if err := json.Unmarshal(buf, &req); err != nil {
		if errors.Is(err, ErrInvalidCurveParameters) ||
			errors.Is(err, ErrUnsupportedCurveType) {
			return Request{}, err
		}
		return Request{}, fmt.Errorf("%w: %s", ErrInvalidCurveParameters, err)
	}
	return req, nil
}

// ParseRequests decodes a JSON array of requests.
func ParseRequests(buf []byte) ([]Request, error) {
	var raw []json.RawMessage
	if err := json.Unmarshal(buf, &raw); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidCurveParameters, err)
	}
	reqs := make([]Request, 0, len(raw))
	for i, r := range raw {
		req, err := ParseRequest(r)
		if err != nil {
			return nil, fmt.Errorf("request %d: %w", i, err)
		}
		reqs = append(reqs, req)
	}
	return reqs, nil
}

// SpotPrice returns the spot price as a decimal string, ie. "1000" or
// "0.000464158883347539".
func (r Request) SpotPrice() (string, error) {
	price, err := SpotPrice(r.CurveType, r.CurveState)
	if err != nil {
		return "", err
	}
	return price.String(), nil
}

// Reserve returns the reserve backing the request's supply as a base-10
// string.
func (r Request) Reserve() (string, error) {
	reserve, err := Reserve(r.CurveType, r.CurveState)
	if err != nil {
		return "", err
	}
	return reserve.String(), nil
}

// Supply returns the supply issued against the request's reserve as a
// base-10 string.
func (r Request) Supply() (string, error) {
	supply, err := Supply(r.CurveType, r.CurveState)
	if err != nil {
		return "", err
	}
	return supply.String(), nil
}
