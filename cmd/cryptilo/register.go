package main

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v2"
)

var register = cli.Command{
	Name:  "register",
	Usage: "create a new account from a recovery phrase",
	Flags: []cli.Flag{
		usernameFlag,
		&cli.StringFlag{
			Name:     "mnemonic",
			Usage:    "the recovery phrase to register, see genseed",
			Required: true,
		},
	},
	Action: registerAction,
}

func registerAction(ctx *cli.Context) error {
	password, err := promptPassword("choose a password")
	if err != nil {
		return err
	}
	confirmation, err := promptPassword("repeat the password")
	if err != nil {
		return err
	}
	if password != confirmation {
		return fmt.Errorf("passwords do not match")
	}

	svc, cleanup, err := openServices()
	if err != nil {
		return err
	}
	defer cleanup()

	primary, err := svc.account.Register(
		context.Background(), ctx.String("username"), ctx.String("mnemonic"), password,
	)
	if err != nil {
		return err
	}

	fmt.Printf("account created, primary wallet address: %s\n", primary.Address)
	return nil
}
