package application

import (
	"context"
	"sync"

	log "github.com/sirupsen/logrus"

	"github.com/cryptilo/cryptilo-daemon/internal/core/domain"
	"github.com/cryptilo/cryptilo-daemon/internal/core/ports"
)

// WalletService manages the per-user wallet registry. Every mutation goes
// through a transactional update of the owning user, serialized per user, so
// concurrent requests can never be assigned the same derivation index.
type WalletService interface {
	// ListWallets returns the user's wallets in creation order.
	ListWallets(ctx context.Context, username string) ([]WalletInfo, error)
	// CreateWallet derives a new wallet at the user's next free derivation
	// account. The password gates the operation and opens the stored phrase.
	CreateWallet(ctx context.Context, username, name, password string) (*WalletInfo, error)
	// RenameWallet changes the display name of a wallet.
	RenameWallet(ctx context.Context, username string, index uint32, name string) error
	// RemoveWallet drops a wallet from the registry. The primary wallet is
	// not removable and freed indices are never reassigned.
	RemoveWallet(ctx context.Context, username string, index uint32, password string) error
}

type walletService struct {
	repoManager ports.RepoManager

	locks    map[string]*sync.Mutex
	locksMtx sync.Mutex
}

// NewWalletService ...
func NewWalletService(repoManager ports.RepoManager) WalletService {
	return &walletService{
		repoManager: repoManager,
		locks:       map[string]*sync.Mutex{},
	}
}

func (s *walletService) ListWallets(
	ctx context.Context, username string,
) ([]WalletInfo, error) {
	user, err := s.repoManager.UserRepository().GetUser(ctx, username)
	if err != nil {
		return nil, err
	}

	wallets := make([]WalletInfo, 0, len(user.Wallets))
	for i := range user.Wallets {
		wallets = append(wallets, walletInfoFromRecord(&user.Wallets[i]))
	}
	return wallets, nil
}

func (s *walletService) CreateWallet(
	ctx context.Context, username, name, password string,
) (*WalletInfo, error) {
	lock := s.lockFor(username)
	lock.Lock()
	defer lock.Unlock()

	var created *domain.WalletRecord
	err := s.repoManager.UserRepository().UpdateUser(
		ctx, username, func(u *domain.User) (*domain.User, error) {
			record, err := u.AddWallet(name, password)
			if err != nil {
				return nil, err
			}
			created = record
			return u, nil
		},
	)
	if err != nil {
		return nil, err
	}

	log.Infof("user %s created wallet %d (%s)", username, created.Index, created.PublicKey)
	info := walletInfoFromRecord(created)
	return &info, nil
}

func (s *walletService) RenameWallet(
	ctx context.Context, username string, index uint32, name string,
) error {
	lock := s.lockFor(username)
	lock.Lock()
	defer lock.Unlock()

	return s.repoManager.UserRepository().UpdateUser(
		ctx, username, func(u *domain.User) (*domain.User, error) {
			if err := u.RenameWallet(index, name); err != nil {
				return nil, err
			}
			return u, nil
		},
	)
}

func (s *walletService) RemoveWallet(
	ctx context.Context, username string, index uint32, password string,
) error {
	lock := s.lockFor(username)
	lock.Lock()
	defer lock.Unlock()

	err := s.repoManager.UserRepository().UpdateUser(
		ctx, username, func(u *domain.User) (*domain.User, error) {
			if !u.IsValidPassword(password) {
				return nil, domain.ErrInvalidPassword
			}
			if err := u.RemoveWallet(index); err != nil {
				return nil, err
			}
			return u, nil
		},
	)
	if err != nil {
		return err
	}

	log.Infof("user %s removed wallet %d", username, index)
	return nil
}

func (s *walletService) lockFor(username string) *sync.Mutex {
	s.locksMtx.Lock()
	defer s.locksMtx.Unlock()

	lock, ok := s.locks[username]
	if !ok {
		lock = &sync.Mutex{}
		s.locks[username] = lock
	}
	return lock
}
