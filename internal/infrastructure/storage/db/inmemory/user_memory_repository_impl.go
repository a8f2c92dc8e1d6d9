package inmemory

import (
	"context"

	"github.com/cryptilo/cryptilo-daemon/internal/core/domain"
)

type userRepositoryImpl struct {
	db *dbManager
}

// NewUserRepositoryImpl initialize an in-memory implementation of the
// domain.UserRepository
func NewUserRepositoryImpl(db *dbManager) domain.UserRepository {
	return userRepositoryImpl{db}
}

func (r userRepositoryImpl) AddUser(ctx context.Context, user *domain.User) error {
	r.db.lock.Lock()
	defer r.db.lock.Unlock()

	if _, ok := r.db.userStore[user.Username]; ok {
		return domain.ErrUserAlreadyExists
	}
	r.db.userStore[user.Username] = *user
	return nil
}

func (r userRepositoryImpl) GetUser(
	ctx context.Context, username string,
) (*domain.User, error) {
	r.db.lock.RLock()
	defer r.db.lock.RUnlock()

	user, ok := r.db.userStore[username]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return cloneUser(user), nil
}

func (r userRepositoryImpl) UpdateUser(
	ctx context.Context,
	username string, updateFn func(u *domain.User) (*domain.User, error),
) error {
	r.db.lock.Lock()
	defer r.db.lock.Unlock()

	user, ok := r.db.userStore[username]
	if !ok {
		return domain.ErrUserNotFound
	}

	updated, err := updateFn(cloneUser(user))
	if err != nil {
		return err
	}

	r.db.userStore[username] = *updated
	return nil
}

// cloneUser detaches the copy from the stored record so callers never mutate
// the store through a shared slice.
func cloneUser(user domain.User) *domain.User {
	wallets := make([]domain.WalletRecord, len(user.Wallets))
	copy(wallets, user.Wallets)
	user.Wallets = wallets
	return &user
}
