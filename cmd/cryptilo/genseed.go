package main

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v2"
)

var genseed = cli.Command{
	Name:   "genseed",
	Usage:  "generate a new recovery phrase",
	Action: genSeedAction,
}

func genSeedAction(ctx *cli.Context) error {
	svc, cleanup, err := openServices()
	if err != nil {
		return err
	}
	defer cleanup()

	seed, err := svc.account.GenSeed(context.Background())
	if err != nil {
		return err
	}

	fmt.Println()
	fmt.Println(seed)
	fmt.Println()
	fmt.Println("write the phrase down, it is shown once and never stored in plain text")

	return nil
}
