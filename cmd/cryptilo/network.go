package main

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v2"
)

var network = cli.Command{
	Name:      "network",
	Usage:     "show or change the active network",
	ArgsUsage: "[devnet|testnet|mainnet-beta]",
	Action:    networkAction,
}

func networkAction(ctx *cli.Context) error {
	svc, cleanup, err := openServices()
	if err != nil {
		return err
	}
	defer cleanup()

	if ctx.Args().Len() <= 0 {
		active, err := svc.settings.GetNetwork(context.Background())
		if err != nil {
			return err
		}
		fmt.Printf("%s (%s)\n", active, active.RPCAddr())
		return nil
	}

	active, err := svc.settings.SetNetwork(context.Background(), ctx.Args().First())
	if err != nil {
		return err
	}
	fmt.Printf("switched to %s (%s)\n", active, active.RPCAddr())
	return nil
}
