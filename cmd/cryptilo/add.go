package main

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v2"
)

var add = cli.Command{
	Name:  "add",
	Usage: "derive a new wallet for the account",
	Flags: []cli.Flag{
		usernameFlag,
		&cli.StringFlag{
			Name:     "name",
			Usage:    "the display name of the new wallet",
			Required: true,
		},
	},
	Action: addAction,
}

func addAction(ctx *cli.Context) error {
	password, err := promptPassword("password")
	if err != nil {
		return err
	}

	svc, cleanup, err := openServices()
	if err != nil {
		return err
	}
	defer cleanup()

	created, err := svc.wallet.CreateWallet(
		context.Background(), ctx.String("username"), ctx.String("name"), password,
	)
	if err != nil {
		return err
	}

	fmt.Printf("wallet %d created, address: %s\n", created.Index, created.Address)
	return nil
}
