package main

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v2"
)

var mnemonic = cli.Command{
	Name:   "mnemonic",
	Usage:  "reveal the account's recovery phrase",
	Flags:  []cli.Flag{usernameFlag},
	Action: mnemonicAction,
}

func mnemonicAction(ctx *cli.Context) error {
	password, err := promptPassword("password")
	if err != nil {
		return err
	}

	svc, cleanup, err := openServices()
	if err != nil {
		return err
	}
	defer cleanup()

	seed, err := svc.account.RevealMnemonic(
		context.Background(), ctx.String("username"), password,
	)
	if err != nil {
		return err
	}

	fmt.Println()
	fmt.Println(seed)
	return nil
}
