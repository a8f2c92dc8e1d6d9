package dbbadger

import (
	"context"

	"github.com/dgraph-io/badger/v3"
	"github.com/timshannon/badgerhold/v4"

	"github.com/cryptilo/cryptilo-daemon/internal/core/domain"
)

type userRepositoryImpl struct {
	store *badgerhold.Store
}

// NewUserRepositoryImpl initialize a badger implementation of the
// domain.UserRepository
func NewUserRepositoryImpl(store *badgerhold.Store) domain.UserRepository {
	return userRepositoryImpl{store}
}

func (r userRepositoryImpl) AddUser(ctx context.Context, user *domain.User) error {
	if err := r.store.Insert(user.Username, *user); err != nil {
		if err == badgerhold.ErrKeyExists {
			return domain.ErrUserAlreadyExists
		}
		return err
	}
	return nil
}

func (r userRepositoryImpl) GetUser(
	ctx context.Context, username string,
) (*domain.User, error) {
	var user domain.User
	if err := r.store.Get(username, &user); err != nil {
		if err == badgerhold.ErrNotFound {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (r userRepositoryImpl) UpdateUser(
	ctx context.Context,
	username string, updateFn func(u *domain.User) (*domain.User, error),
) error {
	return r.store.Badger().Update(func(tx *badger.Txn) error {
		var user domain.User
		if err := r.store.TxGet(tx, username, &user); err != nil {
			if err == badgerhold.ErrNotFound {
				return domain.ErrUserNotFound
			}
			return err
		}

		updated, err := updateFn(&user)
		if err != nil {
			return err
		}

		return r.store.TxUpdate(tx, username, *updated)
	})
}
