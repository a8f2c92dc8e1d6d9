package application

import (
	"context"

	log "github.com/sirupsen/logrus"

	"github.com/cryptilo/cryptilo-daemon/internal/core/domain"
	"github.com/cryptilo/cryptilo-daemon/internal/core/ports"
	"github.com/cryptilo/cryptilo-daemon/pkg/wallet"
)

// AccountService handles the lifecycle of a user account: generating a
// recovery phrase, registering it behind a password and gating access to it.
type AccountService interface {
	// GenSeed returns a freshly generated recovery phrase. Nothing is
	// persisted until the phrase is registered.
	GenSeed(ctx context.Context) (string, error)
	// Register creates a new account from a recovery phrase and a password,
	// including its primary wallet at derivation account 0.
	Register(ctx context.Context, username, mnemonic, password string) (*WalletInfo, error)
	// Login verifies the password of an existing account.
	Login(ctx context.Context, username, password string) error
	// RevealMnemonic returns the account's recovery phrase in plain text. The
	// password is verified again regardless of any previous login.
	RevealMnemonic(ctx context.Context, username, password string) (string, error)
}

type accountService struct {
	repoManager ports.RepoManager
}

// NewAccountService ...
func NewAccountService(repoManager ports.RepoManager) AccountService {
	return &accountService{repoManager}
}

func (s *accountService) GenSeed(ctx context.Context) (string, error) {
	return wallet.NewMnemonic(wallet.NewMnemonicOpts{})
}

func (s *accountService) Register(
	ctx context.Context, username, mnemonic, password string,
) (*WalletInfo, error) {
	user, err := domain.NewUser(username, mnemonic, password)
	if err != nil {
		return nil, err
	}

	if err := s.repoManager.UserRepository().AddUser(ctx, user); err != nil {
		return nil, err
	}

	log.Infof("registered user %s with primary wallet %s", username, user.Wallets[0].PublicKey)
	primary := walletInfoFromRecord(&user.Wallets[0])
	return &primary, nil
}

func (s *accountService) Login(ctx context.Context, username, password string) error {
	user, err := s.repoManager.UserRepository().GetUser(ctx, username)
	if err != nil {
		return err
	}
	if !user.IsValidPassword(password) {
		return domain.ErrInvalidPassword
	}
	return nil
}

func (s *accountService) RevealMnemonic(
	ctx context.Context, username, password string,
) (string, error) {
	user, err := s.repoManager.UserRepository().GetUser(ctx, username)
	if err != nil {
		return "", err
	}
	return user.Mnemonic(password)
}
