package application_test

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cryptilo/cryptilo-daemon/internal/core/application"
	"github.com/cryptilo/cryptilo-daemon/internal/core/domain"
)

func TestCreateAndListWallets(t *testing.T) {
	repoManager := newRegisteredRepoManager(t)
	walletService := application.NewWalletService(repoManager)
	ctx := context.Background()

	created, err := walletService.CreateWallet(ctx, testUsername, "Savings", testPassword)
	require.NoError(t, err)
	assert.Equal(t, uint32(1), created.Index)
	assert.Equal(t, "Savings", created.Name)

	wallets, err := walletService.ListWallets(ctx, testUsername)
	require.NoError(t, err)
	require.Len(t, wallets, 2)
	assert.Equal(t, domain.PrimaryWalletName, wallets[0].Name)
	assert.Equal(t, "Savings", wallets[1].Name)
	assert.NotEqual(t, wallets[0].Address, wallets[1].Address)

	// the secret of the new wallet must open with the user's password
	user, err := repoManager.UserRepository().GetUser(ctx, testUsername)
	require.NoError(t, err)
	record, err := user.GetWallet(created.Index)
	require.NoError(t, err)
	_, err = record.DecryptKey(testPassword)
	require.NoError(t, err)
}

func TestFailingCreateWallet(t *testing.T) {
	repoManager := newRegisteredRepoManager(t)
	walletService := application.NewWalletService(repoManager)
	ctx := context.Background()

	_, err := walletService.CreateWallet(ctx, testUsername, "Savings", "wrong password")
	assert.Equal(t, domain.ErrInvalidPassword, err)

	_, err = walletService.CreateWallet(ctx, testUsername, "", testPassword)
	assert.Equal(t, domain.ErrInvalidWalletName, err)

	// a failed creation must not burn an index
	wallets, err := walletService.ListWallets(ctx, testUsername)
	require.NoError(t, err)
	require.Len(t, wallets, 1)

	created, err := walletService.CreateWallet(ctx, testUsername, "Savings", testPassword)
	require.NoError(t, err)
	assert.Equal(t, uint32(1), created.Index)
}

func TestConcurrentCreateWallet(t *testing.T) {
	repoManager := newRegisteredRepoManager(t)
	walletService := application.NewWalletService(repoManager)
	ctx := context.Background()

	const n = 3
	indices := make(chan uint32, n)
	var wg sync.WaitGroup
	wg.Add(n)
	for i := 0; i < n; i++ {
		go func() {
			defer wg.Done()
			created, err := walletService.CreateWallet(ctx, testUsername, "Savings", testPassword)
			require.NoError(t, err)
			indices <- created.Index
		}()
	}
	wg.Wait()
	close(indices)

	seen := map[uint32]bool{}
	for index := range indices {
		assert.False(t, seen[index])
		seen[index] = true
	}
	assert.Len(t, seen, n)
}

func TestRenameAndRemoveWallet(t *testing.T) {
	repoManager := newRegisteredRepoManager(t)
	walletService := application.NewWalletService(repoManager)
	ctx := context.Background()

	created, err := walletService.CreateWallet(ctx, testUsername, "Savings", testPassword)
	require.NoError(t, err)

	require.NoError(t, walletService.RenameWallet(ctx, testUsername, created.Index, "Trading"))
	wallets, err := walletService.ListWallets(ctx, testUsername)
	require.NoError(t, err)
	assert.Equal(t, "Trading", wallets[1].Name)

	err = walletService.RemoveWallet(ctx, testUsername, created.Index, "wrong password")
	assert.Equal(t, domain.ErrInvalidPassword, err)

	err = walletService.RemoveWallet(ctx, testUsername, 0, testPassword)
	assert.Equal(t, domain.ErrPrimaryWalletImmutable, err)

	require.NoError(t, walletService.RemoveWallet(ctx, testUsername, created.Index, testPassword))
	wallets, err = walletService.ListWallets(ctx, testUsername)
	require.NoError(t, err)
	require.Len(t, wallets, 1)

	// removed indices stay burnt
	next, err := walletService.CreateWallet(ctx, testUsername, "Cold storage", testPassword)
	require.NoError(t, err)
	assert.Equal(t, uint32(2), next.Index)
}
