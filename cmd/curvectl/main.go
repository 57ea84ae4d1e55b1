package main

import (
	"fmt"
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/tdex-network/tdex-bonding-curve/internal/config"
	"github.com/tdex-network/tdex-bonding-curve/internal/core/application"
	"github.com/tdex-network/tdex-bonding-curve/pkg/stats"
	"github.com/urfave/cli/v2"
)

var (
	version = "dev"

	requestFlag = &cli.StringFlag{
		Name:    "request",
		Aliases: []string{"r"},
		Usage:   "the JSON encoded request",
	}
	fileFlag = &cli.StringFlag{
		Name:    "file",
		Aliases: []string{"f"},
		Usage:   "path of a file containing the JSON encoded request",
	}

	pricingSvc application.PricingService
	recorder   *stats.Recorder
)

func main() {
	if err := newApp().Run(os.Args); err != nil {
		fatal(err)
	}
}

func newApp() *cli.App {
	app := cli.NewApp()

	app.Version = version
	app.Name = "curvectl"
	app.Usage = "Command line interface to evaluate bonding curves"
	app.Before = initService
	app.After = dumpStats
	app.Commands = append(
		app.Commands,
		&spotprice,
		&reserve,
		&supply,
		&batch,
		&configCmd,
	)
	return app
}

func initService(_ *cli.Context) error {
	if err := config.InitConfig(); err != nil {
		return err
	}
	log.SetLevel(config.GetLogLevel())

	recorder = nil
	if config.GetBool(config.EnableStatsKey) {
		recorder = stats.NewRecorder()
	}

	svc, err := application.NewPricingService(
		recorder, config.GetInt(config.BatchConcurrencyKey),
	)
	if err != nil {
		return err
	}
	pricingSvc = svc
	return nil
}

func dumpStats(_ *cli.Context) error {
	if recorder == nil {
		return nil
	}
	if err := recorder.Dump(config.GetStatsPath()); err != nil {
		log.WithError(err).Warn("failed to dump statistics")
	}
	return nil
}

func fatal(err error) {
	fmt.Fprintf(os.Stderr, "[curvectl] %v\n", err)
	os.Exit(1)
}
