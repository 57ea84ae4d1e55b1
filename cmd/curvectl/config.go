package main

import (
	"fmt"
	"sort"

	"github.com/tdex-network/tdex-bonding-curve/internal/config"
	"github.com/urfave/cli/v2"
)

var configCmd = cli.Command{
	Name:   "config",
	Usage:  "print the current configuration",
	Action: configAction,
}

func configAction(ctx *cli.Context) error {
	settings := config.AllSettings()

	keys := make([]string, 0, len(settings))
	for k := range settings {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		printLine(ctx, fmt.Sprintf("%s=%v", k, settings[k]))
	}
	return nil
}
