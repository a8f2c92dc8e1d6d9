package main

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v2"
)

var rename = cli.Command{
	Name:  "rename",
	Usage: "change the display name of a wallet",
	Flags: []cli.Flag{
		usernameFlag,
		&cli.StringFlag{
			Name:     "index",
			Usage:    "the index of the wallet to rename",
			Required: true,
		},
		&cli.StringFlag{
			Name:     "name",
			Usage:    "the new display name",
			Required: true,
		},
	},
	Action: renameAction,
}

func renameAction(ctx *cli.Context) error {
	index, err := parseWalletIndex(ctx, "index")
	if err != nil {
		return err
	}

	svc, cleanup, err := openServices()
	if err != nil {
		return err
	}
	defer cleanup()

	if err := svc.wallet.RenameWallet(
		context.Background(), ctx.String("username"), index, ctx.String("name"),
	); err != nil {
		return err
	}

	fmt.Printf("wallet %d renamed to %s\n", index, ctx.String("name"))
	return nil
}
