package main

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v2"
)

var login = cli.Command{
	Name:   "login",
	Usage:  "verify the password of an account",
	Flags:  []cli.Flag{usernameFlag},
	Action: loginAction,
}

func loginAction(ctx *cli.Context) error {
	password, err := promptPassword("password")
	if err != nil {
		return err
	}

	svc, cleanup, err := openServices()
	if err != nil {
		return err
	}
	defer cleanup()

	if err := svc.account.Login(
		context.Background(), ctx.String("username"), password,
	); err != nil {
		return err
	}

	fmt.Println("credentials ok")
	return nil
}
