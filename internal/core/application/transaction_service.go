package application

import (
	"context"

	"github.com/cryptilo/cryptilo-daemon/internal/core/domain"
	"github.com/cryptilo/cryptilo-daemon/internal/core/ports"
	"github.com/cryptilo/cryptilo-daemon/pkg/ledger"
	"github.com/cryptilo/cryptilo-daemon/pkg/wallet"
)

// TransactionService reads balances from the active network and starts
// transfer flows that move value out of a user's wallet.
type TransactionService interface {
	// GetBalance returns the on-ledger balance of one of the user's wallets
	// in base units.
	GetBalance(ctx context.Context, username string, walletIndex uint32) (uint64, error)
	// NewTransferFlow starts the multi-step flow sending the given amount of
	// base units from one of the user's wallets to a recipient address.
	NewTransferFlow(username string, walletIndex uint32, toAddress string, amount uint64) (*TransferFlow, error)
}

type transactionService struct {
	repoManager   ports.RepoManager
	ledgerFactory LedgerFactory
}

// NewTransactionService ...
func NewTransactionService(
	repoManager ports.RepoManager, ledgerFactory LedgerFactory,
) TransactionService {
	return &transactionService{repoManager, ledgerFactory}
}

func (s *transactionService) GetBalance(
	ctx context.Context, username string, walletIndex uint32,
) (uint64, error) {
	user, err := s.repoManager.UserRepository().GetUser(ctx, username)
	if err != nil {
		return 0, err
	}
	record, err := user.GetWallet(walletIndex)
	if err != nil {
		return 0, err
	}

	ledgerService, err := s.ledgerService(ctx)
	if err != nil {
		return 0, err
	}
	return ledgerService.GetBalance(ctx, record.PublicKey)
}

func (s *transactionService) NewTransferFlow(
	username string, walletIndex uint32, toAddress string, amount uint64,
) (*TransferFlow, error) {
	if amount <= 0 {
		return nil, ErrInvalidAmount
	}
	if _, err := wallet.DecodeAddress(toAddress); err != nil {
		return nil, err
	}

	return newTransferFlow(s, username, walletIndex, toAddress, amount), nil
}

func (s *transactionService) ledgerService(ctx context.Context) (ledger.Service, error) {
	network, err := activeNetwork(ctx, s.repoManager.SettingsRepository())
	if err != nil {
		return nil, err
	}
	return s.ledgerFactory(network)
}

// SettingsService reads and changes the daemon-wide network selection.
type SettingsService interface {
	// GetNetwork returns the active network.
	GetNetwork(ctx context.Context) (domain.Network, error)
	// SetNetwork persists a new active network. It applies to every
	// subsequent ledger call, in-flight transfer flows keep the network they
	// started with.
	SetNetwork(ctx context.Context, name string) (domain.Network, error)
}

type settingsService struct {
	repoManager ports.RepoManager
}

// NewSettingsService ...
func NewSettingsService(repoManager ports.RepoManager) SettingsService {
	return &settingsService{repoManager}
}

func (s *settingsService) GetNetwork(ctx context.Context) (domain.Network, error) {
	return activeNetwork(ctx, s.repoManager.SettingsRepository())
}

func (s *settingsService) SetNetwork(
	ctx context.Context, name string,
) (domain.Network, error) {
	network, err := domain.ParseNetwork(name)
	if err != nil {
		return "", err
	}
	if err := s.repoManager.SettingsRepository().UpdateSettings(
		ctx, domain.Settings{Network: network},
	); err != nil {
		return "", err
	}
	return network, nil
}
