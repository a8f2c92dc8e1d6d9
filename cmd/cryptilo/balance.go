package main

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/cryptilo/cryptilo-daemon/pkg/lamports"
)

var balance = cli.Command{
	Name:  "balance",
	Usage: "show the on-ledger balance of a wallet",
	Flags: []cli.Flag{
		usernameFlag,
		&cli.StringFlag{
			Name:  "index",
			Usage: "the index of the wallet to inspect",
			Value: "0",
		},
	},
	Action: balanceAction,
}

func balanceAction(ctx *cli.Context) error {
	index, err := parseWalletIndex(ctx, "index")
	if err != nil {
		return err
	}

	svc, cleanup, err := openServices()
	if err != nil {
		return err
	}
	defer cleanup()

	amount, err := svc.transaction.GetBalance(
		context.Background(), ctx.String("username"), index,
	)
	if err != nil {
		return err
	}

	fmt.Printf("%s SOL (%d lamports)\n", lamports.ToCoin(amount), amount)
	return nil
}
