package main

import (
	"fmt"

	"github.com/tdex-network/tdex-bonding-curve/internal/core/application"
	"github.com/tdex-network/tdex-bonding-curve/pkg/bondingcurve"
	"github.com/urfave/cli/v2"
)

var batch = cli.Command{
	Name:  "batch",
	Usage: "evaluate a JSON array of requests, one result per line",
	Flags: []cli.Flag{
		requestFlag,
		fileFlag,
		&cli.StringFlag{
			Name:  "operation",
			Usage: "one of spotprice, reserve, supply",
			Value: application.OperationSpotPrice,
		},
	},
	Action: batchAction,
}

func batchAction(ctx *cli.Context) error {
	buf, err := readInput(ctx)
	if err != nil {
		return err
	}
	reqs, err := bondingcurve.ParseRequests(buf)
	if err != nil {
		return err
	}

	results, err := pricingSvc.Batch(ctx.Context, ctx.String("operation"), reqs)
	if err != nil {
		return err
	}

	failed := 0
	for _, r := range results {
		if r.Err != nil {
			failed++
			printLine(ctx, fmt.Sprintf("error: %s", r.Err))
			continue
		}
		printLine(ctx, r.Value)
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d requests failed", failed, len(results))
	}
	return nil
}
