package application_test

import (
	"context"
	"encoding/base64"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/cryptilo/cryptilo-daemon/internal/core/application"
	"github.com/cryptilo/cryptilo-daemon/internal/core/domain"
	"github.com/cryptilo/cryptilo-daemon/internal/core/ports"
	"github.com/cryptilo/cryptilo-daemon/internal/infrastructure/storage/db/inmemory"
	"github.com/cryptilo/cryptilo-daemon/pkg/ledger"
)

const (
	testUsername = "satoshi"
	testMnemonic = "abandon abandon abandon abandon abandon abandon " +
		"abandon abandon abandon abandon abandon about"
	testPassword = "Sup3rS3cretPa$$"

	// 32 zero bytes in base58, decodable as both an address and a blockhash
	testRecipient = "11111111111111111111111111111111"
	testSignature = "2id3YC2jK9G5Wo2phDx4gJVAew8DcY5NAojnVuao8rkxwPYPe8cSwE5GzhEgJA2y8fVjDEo6iR6ykBvDxrTQrtpb"
)

// fakeLedger implements ledger.Service against canned values.
type fakeLedger struct {
	balance   uint64
	blockhash string
	fee       uint64

	balanceErr   error
	blockhashErr error
	feeErr       error
	broadcastErr error

	mtx          sync.Mutex
	broadcastTxs []string
}

func (f *fakeLedger) GetBalance(_ context.Context, _ string) (uint64, error) {
	return f.balance, f.balanceErr
}

func (f *fakeLedger) GetLatestBlockhash(_ context.Context) (string, error) {
	return f.blockhash, f.blockhashErr
}

func (f *fakeLedger) GetFeeForMessage(_ context.Context, base64Message string) (uint64, error) {
	if _, err := base64.StdEncoding.DecodeString(base64Message); err != nil {
		return 0, err
	}
	return f.fee, f.feeErr
}

func (f *fakeLedger) BroadcastTransaction(_ context.Context, base64Tx string) (string, error) {
	if _, err := base64.StdEncoding.DecodeString(base64Tx); err != nil {
		return "", err
	}
	if f.broadcastErr != nil {
		return "", f.broadcastErr
	}
	f.mtx.Lock()
	defer f.mtx.Unlock()
	f.broadcastTxs = append(f.broadcastTxs, base64Tx)
	return testSignature, nil
}

func newFakeLedger() *fakeLedger {
	return &fakeLedger{
		balance:   5_000_000_000,
		blockhash: testRecipient,
		fee:       5_000,
	}
}

func ledgerFactory(fake *fakeLedger) application.LedgerFactory {
	return func(_ domain.Network) (ledger.Service, error) {
		return fake, nil
	}
}

func newRegisteredRepoManager(t *testing.T) ports.RepoManager {
	t.Helper()
	repoManager := inmemory.NewRepoManager()
	accountService := application.NewAccountService(repoManager)
	_, err := accountService.Register(
		context.Background(), testUsername, testMnemonic, testPassword,
	)
	require.NoError(t, err)
	return repoManager
}
