package main

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v2"
)

var remove = cli.Command{
	Name:  "remove",
	Usage: "drop a wallet from the account's registry",
	Flags: []cli.Flag{
		usernameFlag,
		&cli.StringFlag{
			Name:     "index",
			Usage:    "the index of the wallet to remove",
			Required: true,
		},
	},
	Action: removeAction,
}

func removeAction(ctx *cli.Context) error {
	index, err := parseWalletIndex(ctx, "index")
	if err != nil {
		return err
	}

	password, err := promptPassword("password")
	if err != nil {
		return err
	}

	svc, cleanup, err := openServices()
	if err != nil {
		return err
	}
	defer cleanup()

	if err := svc.wallet.RemoveWallet(
		context.Background(), ctx.String("username"), index, password,
	); err != nil {
		return err
	}

	fmt.Printf("wallet %d removed, its funds stay reachable through the recovery phrase\n", index)
	return nil
}
