package main

import (
	"github.com/tdex-network/tdex-bonding-curve/internal/core/application"
	"github.com/tdex-network/tdex-bonding-curve/pkg/bondingcurve"
	"github.com/urfave/cli/v2"
)

var spotprice = cli.Command{
	Name:   "spotprice",
	Usage:  "get the price of one supply token in reserve tokens",
	Flags:  []cli.Flag{requestFlag, fileFlag},
	Action: evaluateAction(application.OperationSpotPrice),
}

var reserve = cli.Command{
	Name:   "reserve",
	Usage:  "get the reserve backing the supply of the curve state",
	Flags:  []cli.Flag{requestFlag, fileFlag},
	Action: evaluateAction(application.OperationReserve),
}

var supply = cli.Command{
	Name:   "supply",
	Usage:  "get the supply issued against the reserve of the curve state",
	Flags:  []cli.Flag{requestFlag, fileFlag},
	Action: evaluateAction(application.OperationSupply),
}

func evaluateAction(operation string) cli.ActionFunc {
	return func(ctx *cli.Context) error {
		buf, err := readInput(ctx)
		if err != nil {
			return err
		}
		req, err := bondingcurve.ParseRequest(buf)
		if err != nil {
			return err
		}

		var value string
		switch operation {
		case application.OperationReserve:
			value, err = pricingSvc.Reserve(ctx.Context, req)
		case application.OperationSupply:
			value, err = pricingSvc.Supply(ctx.Context, req)
		default:
			value, err = pricingSvc.SpotPrice(ctx.Context, req)
		}
		if err != nil {
			return err
		}

		printLine(ctx, value)
		return nil
	}
}
