package main

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"syscall"

	log "github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"
	"golang.org/x/term"

	"github.com/cryptilo/cryptilo-daemon/internal/config"
	"github.com/cryptilo/cryptilo-daemon/internal/core/application"
	"github.com/cryptilo/cryptilo-daemon/internal/core/domain"
	dbbadger "github.com/cryptilo/cryptilo-daemon/internal/infrastructure/storage/db/badger"
)

var usernameFlag = &cli.StringFlag{
	Name:     "username",
	Usage:    "the account to operate on",
	Required: true,
}

func main() {
	log.SetLevel(log.Level(config.GetInt(config.LogLevelKey)))

	app := cli.NewApp()

	app.Version = "0.1.0"
	app.Name = "cryptilo CLI"
	app.Usage = "command line interface for the cryptilo wallet daemon"
	app.Commands = append(
		app.Commands,
		&genseed,
		&register,
		&login,
		&mnemonic,
		&list,
		&add,
		&rename,
		&remove,
		&balance,
		&send,
		&network,
	)

	err := app.Run(os.Args)
	if err != nil {
		fatal(err)
	}
}

type services struct {
	account     application.AccountService
	wallet      application.WalletService
	transaction application.TransactionService
	settings    application.SettingsService
}

// openServices opens the on-disk store and wires every application service on
// top of it. The returned closer must run before the process exits.
func openServices() (*services, func(), error) {
	repoManager, err := dbbadger.NewRepoManager(config.GetDbDir(), nil)
	if err != nil {
		return nil, nil, fmt.Errorf("opening datadir: %w", err)
	}

	// On the very first run persist the configured network so every later
	// invocation sticks to it until the network command changes it.
	ctx := context.Background()
	if _, err := repoManager.SettingsRepository().GetSettings(ctx); err == domain.ErrSettingsNotFound {
		settings := domain.Settings{Network: config.GetDefaultNetwork()}
		if err := repoManager.SettingsRepository().UpdateSettings(ctx, settings); err != nil {
			repoManager.Close()
			return nil, nil, fmt.Errorf("storing default network: %w", err)
		}
	}

	return &services{
		account: application.NewAccountService(repoManager),
		wallet:  application.NewWalletService(repoManager),
		transaction: application.NewTransactionService(
			repoManager, config.GetLedgerService,
		),
		settings: application.NewSettingsService(repoManager),
	}, repoManager.Close, nil
}

func promptPassword(label string) (string, error) {
	fmt.Printf("%s: ", label)
	password, err := term.ReadPassword(int(syscall.Stdin))
	fmt.Println()
	if err != nil {
		return "", err
	}
	return string(password), nil
}

func parseWalletIndex(ctx *cli.Context, name string) (uint32, error) {
	index, err := strconv.ParseUint(ctx.String(name), 10, 32)
	if err != nil {
		return 0, fmt.Errorf("%s must be a non-negative wallet index", name)
	}
	return uint32(index), nil
}

func fatal(err error) {
	_, _ = fmt.Fprintf(os.Stderr, "[cryptilo] %v\n", err)
	os.Exit(1)
}
