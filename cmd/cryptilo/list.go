package main

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/urfave/cli/v2"
)

var list = cli.Command{
	Name:   "list",
	Usage:  "list the account's wallets",
	Flags:  []cli.Flag{usernameFlag},
	Action: listAction,
}

func listAction(ctx *cli.Context) error {
	svc, cleanup, err := openServices()
	if err != nil {
		return err
	}
	defer cleanup()

	wallets, err := svc.wallet.ListWallets(context.Background(), ctx.String("username"))
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 8, 2, ' ', 0)
	fmt.Fprintln(w, "INDEX\tNAME\tADDRESS\tCREATED")
	for _, wallet := range wallets {
		fmt.Fprintf(
			w, "%d\t%s\t%s\t%s\n",
			wallet.Index, wallet.Name, wallet.Address,
			wallet.CreatedAt.Format("2006-01-02 15:04"),
		)
	}
	return w.Flush()
}
