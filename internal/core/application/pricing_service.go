package application

import (
	"context"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/tdex-network/tdex-bonding-curve/pkg/bondingcurve"
	"github.com/tdex-network/tdex-bonding-curve/pkg/stats"
	"golang.org/x/sync/errgroup"
)

const (
	OperationSpotPrice = "spotprice"
	OperationReserve   = "reserve"
	OperationSupply    = "supply"
)

// PricingService evaluates bonding curve requests.
type PricingService interface {
	SpotPrice(ctx context.Context, req bondingcurve.Request) (string, error)
	Reserve(ctx context.Context, req bondingcurve.Request) (string, error)
	Supply(ctx context.Context, req bondingcurve.Request) (string, error)
	// Batch evaluates the given operation for every request. A failing
	// request does not stop the others, its error is reported in its result.
	Batch(
		ctx context.Context, operation string, reqs []bondingcurve.Request,
	) ([]BatchResult, error)
}

// BatchResult is the outcome of a single request of a batch.
type BatchResult struct {
	Value string
	Err   error
}

type pricingService struct {
	recorder    *stats.Recorder
	concurrency int
}

// NewPricingService returns a PricingService that evaluates at most
// concurrency requests of a batch at the same time. Metrics are recorded only
// if recorder is not nil.
func NewPricingService(
	recorder *stats.Recorder, concurrency int,
) (PricingService, error) {
	if concurrency < 1 {
		return nil, ErrInvalidConcurrency
	}
	return &pricingService{recorder, concurrency}, nil
}

func (s *pricingService) SpotPrice(
	ctx context.Context, req bondingcurve.Request,
) (string, error) {
	return s.evaluate(ctx, OperationSpotPrice, req)
}

func (s *pricingService) Reserve(
	ctx context.Context, req bondingcurve.Request,
) (string, error) {
	return s.evaluate(ctx, OperationReserve, req)
}

func (s *pricingService) Supply(
	ctx context.Context, req bondingcurve.Request,
) (string, error) {
	return s.evaluate(ctx, OperationSupply, req)
}

func (s *pricingService) Batch(
	ctx context.Context, operation string, reqs []bondingcurve.Request,
) ([]BatchResult, error) {
	if _, err := evaluator(operation); err != nil {
		return nil, err
	}

	results := make([]BatchResult, len(reqs))
	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(s.concurrency)

	for i := range reqs {
		i := i
		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			value, err := s.evaluate(ctx, operation, reqs[i])
			results[i] = BatchResult{value, err}
			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func (s *pricingService) evaluate(
	ctx context.Context, operation string, req bondingcurve.Request,
) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	eval, err := evaluator(operation)
	if err != nil {
		return "", err
	}

	curve := req.CurveType.Kind.String()
	start := time.Now()
	value, err := eval(req)
	if s.recorder != nil {
		s.recorder.Observe(operation, curve, time.Since(start), err)
	}

	entry := log.WithFields(log.Fields{
		"operation": operation,
		"curve":     curve,
		"supply":    req.CurveState.Supply.String(),
		"reserve":   req.CurveState.Reserve.String(),
	})
	if err != nil {
		entry.WithError(err).Warn("curve evaluation failed")
		return "", err
	}
	entry.WithField("result", value).Debug("curve evaluated")
	return value, nil
}

func evaluator(operation string) (func(bondingcurve.Request) (string, error), error) {
	switch operation {
	case OperationSpotPrice:
		return bondingcurve.Request.SpotPrice, nil
	case OperationReserve:
		return bondingcurve.Request.Reserve, nil
	case OperationSupply:
		return bondingcurve.Request.Supply, nil
	default:
		return nil, ErrUnknownOperation
	}
}
