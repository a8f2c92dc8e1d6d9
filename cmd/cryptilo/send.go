package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/cryptilo/cryptilo-daemon/pkg/lamports"
)

var send = cli.Command{
	Name:  "send",
	Usage: "send funds from a wallet to an address",
	Flags: []cli.Flag{
		usernameFlag,
		&cli.StringFlag{
			Name:  "index",
			Usage: "the index of the sending wallet",
			Value: "0",
		},
		&cli.StringFlag{
			Name:     "to",
			Usage:    "the recipient address",
			Required: true,
		},
		&cli.StringFlag{
			Name:     "amount",
			Usage:    "the amount to send in SOL",
			Required: true,
		},
	},
	Action: sendAction,
}

func sendAction(ctx *cli.Context) error {
	index, err := parseWalletIndex(ctx, "index")
	if err != nil {
		return err
	}
	amount, err := lamports.ParseCoin(ctx.String("amount"))
	if err != nil {
		return err
	}

	svc, cleanup, err := openServices()
	if err != nil {
		return err
	}
	defer cleanup()

	flow, err := svc.transaction.NewTransferFlow(
		ctx.String("username"), index, ctx.String("to"), amount,
	)
	if err != nil {
		return err
	}

	password, err := promptPassword("password")
	if err != nil {
		return err
	}

	preview, err := flow.SubmitPassword(context.Background(), password)
	if err != nil {
		return err
	}

	fmt.Printf(
		"sending %s SOL from %s\nto %s\nnetwork fee %s SOL\n",
		lamports.ToCoin(preview.Amount), preview.FromAddress,
		preview.ToAddress, lamports.ToCoin(preview.Fee),
	)
	if !confirmPrompt() {
		_ = flow.Abandon()
		fmt.Println("transfer abandoned")
		return nil
	}

	signature, err := flow.Confirm(context.Background())
	if err != nil {
		return err
	}

	fmt.Printf("broadcasted, signature: %s\n", signature)
	return nil
}

func confirmPrompt() bool {
	fmt.Print("confirm? [y/N] ")
	answer, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil {
		return false
	}
	answer = strings.ToLower(strings.TrimSpace(answer))
	return answer == "y" || answer == "yes"
}
